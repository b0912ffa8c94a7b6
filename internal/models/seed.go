package models

import (
	"fmt"

	"gorm.io/gorm"
)

// DefaultCategories is the category set created by SeedCategories.
var DefaultCategories = []Category{
	{NameEN: "Food & Groceries", NameTE: "ఆహారం & కిరాణా", NameHI: "भोजन और किराना", Icon: "utensils"},
	{NameEN: "Transport", NameTE: "రవాణా", NameHI: "परिवहन", Icon: "bus"},
	{NameEN: "Rent", NameTE: "అద్దె", NameHI: "किराया", Icon: "home"},
	{NameEN: "Bills & Utilities", NameTE: "బిల్లులు", NameHI: "बिल और उपयोगिताएँ", Icon: "zap"},
	{NameEN: "Health", NameTE: "ఆరోగ్యం", NameHI: "स्वास्थ्य", Icon: "heart-pulse"},
	{NameEN: "Education", NameTE: "విద్య", NameHI: "शिक्षा", Icon: "book"},
	{NameEN: "Entertainment", NameTE: "వినోదం", NameHI: "मनोरंजन", Icon: "film"},
	{NameEN: "Shopping", NameTE: "షాపింగ్", NameHI: "खरीदारी", Icon: "shopping-bag"},
	{NameEN: "Agriculture", NameTE: "వ్యవసాయం", NameHI: "कृषि", Icon: "sprout"},
	{NameEN: "Other", NameTE: "ఇతర", NameHI: "अन्य", Icon: "circle"},
}

// SeedCategories creates the default categories if there are none.
//
// It returns the number of categories created.
func SeedCategories(db *gorm.DB) (int, error) {
	var count int64
	err := db.Model(&Category{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting categories failed: %w", err)
	}

	if count > 0 {
		return 0, nil
	}

	categories := make([]Category, len(DefaultCategories))
	copy(categories, DefaultCategories)

	err = db.Create(&categories).Error
	if err != nil {
		return 0, fmt.Errorf("seeding categories failed: %w", err)
	}

	return len(categories), nil
}
