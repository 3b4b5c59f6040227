package models

type Service struct {
	ID          uint `gorm:"primaryKey"`
	Name        string
	PhoneNumber string
	CustomerID  uint `gorm:"index;not null"`
}
