package controllers

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shatel-registry/models"
)

func TestAddCustomerAgeBoundary(t *testing.T) {
	today := time.Now()

	tests := []struct {
		name  string
		birth time.Time
		want  string
	}{
		{
			name:  "turns_18_today",
			birth: today.AddDate(-18, 0, 0),
			want:  MsgCustomerAdded,
		},
		{
			name:  "18th_birthday_tomorrow",
			birth: today.AddDate(-18, 0, 1),
			want:  MsgCustomerTooYoung,
		},
		{
			name:  "well_over_18",
			birth: today.AddDate(-40, 0, 0),
			want:  MsgCustomerAdded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestDB(t)

			got, err := AddCustomer("Ali", "Rezaei", "Hossein", "0012345678",
				"4321", tt.birth.Format("2006-01-02"), "Tehran")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddCustomerRejectedLeavesNoRow(t *testing.T) {
	db := setupTestDB(t)

	got, err := AddCustomer("Ali", "Rezaei", "Hossein", "0012345678", "4321",
		time.Now().AddDate(-17, 0, 0).Format("2006-01-02"), "Tehran")
	require.NoError(t, err)
	assert.Equal(t, MsgCustomerTooYoung, got)

	var count int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAddCustomerMalformedDate(t *testing.T) {
	setupTestDB(t)

	_, err := AddCustomer("Ali", "Rezaei", "Hossein", "0012345678", "4321",
		"10/05/1990", "Tehran")
	require.Error(t, err)
}

func TestAddCustomerPermitsDuplicateNationalID(t *testing.T) {
	db := setupTestDB(t)

	for i := 0; i < 2; i++ {
		got, err := AddCustomer("Ali", "Rezaei", "Hossein", "0012345678",
			"4321", "1990-05-10", "Tehran")
		require.NoError(t, err)
		require.Equal(t, MsgCustomerAdded, got)
	}

	var count int64
	require.NoError(t, db.Model(&models.Customer{}).
		Where("national_id = ?", "0012345678").Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestGetCustomerReturnsAllFields(t *testing.T) {
	db := setupTestDB(t)
	customer := seedCustomer(t, db)

	got, err := GetCustomer(fmt.Sprint(customer.ID))
	require.NoError(t, err)

	assert.Contains(t, got, fmt.Sprintf("id: %d", customer.ID))
	assert.Contains(t, got, "Name: Ali")
	assert.Contains(t, got, "family: Rezaei")
	assert.Contains(t, got, "father_name: Hossein")
	assert.Contains(t, got, "national_id: 0012345678")
	assert.Contains(t, got, "shenasname_id: 4321")
	assert.Contains(t, got, "birth_date: 1990-05-10")
	assert.Contains(t, got, "Address: Tehran, Valiasr St.")
}

func TestGetCustomerNotFound(t *testing.T) {
	setupTestDB(t)

	for _, id := range []string{"999", "not-a-number"} {
		got, err := GetCustomer(id)
		require.NoError(t, err)
		assert.Equal(t, MsgCustomerNotFound, got)
	}
}
