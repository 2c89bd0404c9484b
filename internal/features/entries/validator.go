// ================== internal/features/entries/validator.go ==================
package entries

import (
	"errors"

	"github.com/DexterPressley/calzone/internal/pkg/validator"
)

var validMealTypes = map[string]bool{
	"Breakfast": true,
	"Lunch":     true,
	"Dinner":    true,
	"Snack":     true,
}

const mealTypeMessage = "mealType must be one of: Breakfast, Lunch, Dinner, Snack"

func ValidateCreateEntry(req *CreateEntryRequest) error {
	if req.FoodID == nil {
		return errors.New("foodId is required")
	}
	if req.Amount == nil {
		return errors.New("amount is required")
	}
	if req.MealType == "" {
		return errors.New("mealType is required")
	}

	if !validator.IsFinitePositive(*req.Amount) {
		return errors.New("amount must be a valid positive number")
	}
	if !validMealTypes[req.MealType] {
		return errors.New(mealTypeMessage)
	}

	return nil
}

func ValidateUpdateEntry(req *UpdateEntryRequest) error {
	if req.Amount != nil && !validator.IsFinitePositive(*req.Amount) {
		return errors.New("amount must be a valid positive number")
	}
	if req.MealType != "" && !validMealTypes[req.MealType] {
		return errors.New(mealTypeMessage)
	}
	return nil
}
