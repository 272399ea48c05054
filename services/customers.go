package services

import (
	"errors"

	"gorm.io/gorm"

	"boba-pos/models"
	"boba-pos/utils"
)

// findCustomerByPhone matches on normalized digits. New signups store
// the normalized form, but older rows may carry punctuation, so a miss
// falls back to scanning and normalizing stored numbers.
func findCustomerByPhone(db *gorm.DB, phone string) (*models.Customer, error) {
	normalized := utils.NormalizePhoneNumber(phone)
	if normalized == "" {
		return nil, ErrPhoneRequired
	}

	var customer models.Customer
	err := db.Where("phone_number = ?", normalized).First(&customer).Error
	if err == nil {
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var all []models.Customer
	if err := db.Where("phone_number <> ''").Find(&all).Error; err != nil {
		return nil, err
	}
	for i := range all {
		if utils.NormalizePhoneNumber(all[i].PhoneNumber) == normalized {
			return &all[i], nil
		}
	}
	return nil, ErrCustomerNotFound
}
