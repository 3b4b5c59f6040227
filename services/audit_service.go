// services/audit_service.go
package services

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"shatel-registry/models"
)

// AuditService periodically recounts each customer's live service rows and
// reports counters that drifted. services_count is never decremented, so a
// mismatch is expected the moment any other write path appears; the audit
// only observes, it never corrects.
type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// Drift is one customer whose stored counter disagrees with the row count.
type Drift struct {
	CustomerID    uint
	ServicesCount int
	LiveRows      int64
}

func (s *AuditService) StartScheduler() {
	c := cron.New()

	// Run every day at 3 AM, plus once at startup
	if _, err := c.AddFunc("0 3 * * *", s.RunAudit); err != nil {
		log.Printf("Failed to schedule integrity audit: %v", err)
		return
	}
	s.RunAudit()

	c.Start()
	log.Println("Integrity audit scheduler started")
}

func (s *AuditService) RunAudit() {
	log.Println("Starting services_count integrity audit...")

	drifted, err := s.FindDrift()
	if err != nil {
		log.Printf("Integrity audit failed: %v", err)
		return
	}

	for _, d := range drifted {
		log.Printf("Customer %d: services_count=%d but %d service rows exist",
			d.CustomerID, d.ServicesCount, d.LiveRows)
	}

	log.Printf("Integrity audit completed: %d customer(s) with drift", len(drifted))
}

// FindDrift returns every customer whose services_count does not equal the
// number of service rows referencing it.
func (s *AuditService) FindDrift() ([]Drift, error) {
	var customers []models.Customer
	if err := s.db.Find(&customers).Error; err != nil {
		return nil, err
	}

	var drifted []Drift
	for _, customer := range customers {
		var live int64
		if err := s.db.Model(&models.Service{}).
			Where("customer_id = ?", customer.ID).Count(&live).Error; err != nil {
			return nil, err
		}
		if int64(customer.ServicesCount) != live {
			drifted = append(drifted, Drift{
				CustomerID:    customer.ID,
				ServicesCount: customer.ServicesCount,
				LiveRows:      live,
			})
		}
	}

	return drifted, nil
}
