package controllers

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"shatel-registry/config"
	"shatel-registry/models"
	"shatel-registry/utils"
)

// Outcome strings returned to SOAP callers. Failure and success are both
// plain text; callers pattern-match on these messages.
const (
	MsgCustomerAdded    = "Customer added successfully."
	MsgCustomerTooYoung = "Age must be 18 or older to register as a customer."
	MsgCustomerNotFound = "Customer not found."
)

// AddCustomer registers a new customer. The birth date must be in
// YYYY-MM-DD form and put the customer at 18 years or older as of today.
// National ids are not checked for uniqueness; duplicates are permitted.
func AddCustomer(name, family, fatherName, nationalID, shenasnameID, birthDate, address string) (string, error) {
	born, err := time.Parse(utils.BirthDateFormat, birthDate)
	if err != nil {
		return "", fmt.Errorf("invalid birth_date %q: %w", birthDate, err)
	}

	if utils.Age(born, time.Now()) < 18 {
		return MsgCustomerTooYoung, nil
	}

	customer := models.Customer{
		Name:         name,
		Family:       family,
		FatherName:   fatherName,
		NationalID:   nationalID,
		ShenasnameID: shenasnameID,
		BirthDate:    born,
		Address:      address,
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		return "", fmt.Errorf("create customer: %w", err)
	}

	return MsgCustomerAdded, nil
}

// GetCustomer looks a customer up by its text id and returns a formatted
// block of all fields. The id is passed through to the store as-is, so a
// non-numeric id behaves the same as a missing one.
func GetCustomer(customerID string) (string, error) {
	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MsgCustomerNotFound, nil
		}
		return "", fmt.Errorf("get customer %s: %w", customerID, err)
	}

	result := fmt.Sprintf("\nid: %d\nName: %s\nfamily: %s\nfather_name: %s\nnational_id: %s\nshenasname_id: %s\nbirth_date: %s\nAddress: %s\n\n",
		customer.ID, customer.Name, customer.Family, customer.FatherName,
		customer.NationalID, customer.ShenasnameID,
		customer.BirthDate.Format(utils.BirthDateFormat), customer.Address)

	return result, nil
}
