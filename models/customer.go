package models

import (
	"time"
)

type Customer struct {
	ID uint `gorm:"primaryKey"`

	Name         string
	Family       string
	FatherName   string
	NationalID   string
	ShenasnameID string
	BirthDate    time.Time
	Address      string `gorm:"type:text"`

	// Incremented on every service creation, never decremented.
	ServicesCount int `gorm:"default:0"`

	Services []Service `gorm:"foreignKey:CustomerID"`
}
