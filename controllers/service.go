// controllers/service.go
package controllers

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"shatel-registry/config"
	"shatel-registry/models"
)

const (
	MsgServiceCreated = "Service created successfully."
	MsgServiceLimit   = "Maximum number of services reached for this customer."

	// MaxServicesPerCustomer caps the denormalized services_count.
	MaxServicesPerCustomer = 10
)

// Notifier receives service lifecycle events after they are committed.
type Notifier interface {
	ServiceActivated(phoneNumber, serviceName string)
}

var notifier Notifier

// UseNotifier installs the notifier invoked on service activation.
// A nil notifier (the default) disables notifications.
func UseNotifier(n Notifier) {
	notifier = n
}

// CreateService attaches a new service to an existing customer. The
// customer must exist and hold fewer than MaxServicesPerCustomer services;
// the row insert and the counter increment commit in one transaction.
func CreateService(customerID, phoneNumber, serviceName string) (string, error) {
	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MsgCustomerNotFound, nil
		}
		return "", fmt.Errorf("get customer %s: %w", customerID, err)
	}

	if customer.ServicesCount >= MaxServicesPerCustomer {
		return MsgServiceLimit, nil
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		service := models.Service{
			Name:        serviceName,
			PhoneNumber: phoneNumber,
			CustomerID:  customer.ID,
		}
		if err := tx.Create(&service).Error; err != nil {
			return err
		}
		return tx.Model(&customer).
			Update("services_count", gorm.Expr("services_count + ?", 1)).Error
	})
	if err != nil {
		return "", fmt.Errorf("create service for customer %s: %w", customerID, err)
	}

	if notifier != nil {
		notifier.ServiceActivated(phoneNumber, serviceName)
	}

	return MsgServiceCreated, nil
}

// GetCustomerServices returns a customer summary followed by one block per
// associated service, or the not-found message.
func GetCustomerServices(customerID string) (string, error) {
	var customer models.Customer
	err := config.DB.Preload("Services").First(&customer, "id = ?", customerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MsgCustomerNotFound, nil
		}
		return "", fmt.Errorf("get customer %s services: %w", customerID, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nCustomer ID: %d\nName: %s\nFamily: %s\n\nServices:\n",
		customer.ID, customer.Name, customer.Family)
	for _, service := range customer.Services {
		fmt.Fprintf(&b, "Service ID: %d\nName: %s\nPhone Number: %s\n\n",
			service.ID, service.Name, service.PhoneNumber)
	}

	return b.String(), nil
}
