// ================== internal/features/foods/validator.go ==================
package foods

import (
	"errors"
	"strings"

	"github.com/DexterPressley/calzone/internal/pkg/validator"
)

func ValidateCreateFood(req *CreateFoodRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("name is required")
	}
	if req.CaloriesPerUnit == nil {
		return errors.New("caloriesPerUnit is required")
	}
	if req.ProteinPerUnit == nil {
		return errors.New("proteinPerUnit is required")
	}
	if req.CarbsPerUnit == nil {
		return errors.New("carbsPerUnit is required")
	}
	if req.FatPerUnit == nil {
		return errors.New("fatPerUnit is required")
	}
	if strings.TrimSpace(req.Unit) == "" {
		return errors.New("unit is required")
	}

	if !validator.IsFiniteNonNegative(*req.CaloriesPerUnit) {
		return errors.New("caloriesPerUnit must be a valid positive number")
	}
	if !validator.IsFiniteNonNegative(*req.ProteinPerUnit) {
		return errors.New("proteinPerUnit must be a valid positive number")
	}
	if !validator.IsFiniteNonNegative(*req.CarbsPerUnit) {
		return errors.New("carbsPerUnit must be a valid positive number")
	}
	if !validator.IsFiniteNonNegative(*req.FatPerUnit) {
		return errors.New("fatPerUnit must be a valid positive number")
	}

	return nil
}

func ValidateUpdateFood(req *UpdateFoodRequest) error {
	if req.CaloriesPerUnit != nil && !validator.IsFiniteNonNegative(*req.CaloriesPerUnit) {
		return errors.New("caloriesPerUnit must be a valid positive number")
	}
	if req.ProteinPerUnit != nil && !validator.IsFiniteNonNegative(*req.ProteinPerUnit) {
		return errors.New("proteinPerUnit must be a valid positive number")
	}
	if req.CarbsPerUnit != nil && !validator.IsFiniteNonNegative(*req.CarbsPerUnit) {
		return errors.New("carbsPerUnit must be a valid positive number")
	}
	if req.FatPerUnit != nil && !validator.IsFiniteNonNegative(*req.FatPerUnit) {
		return errors.New("fatPerUnit must be a valid positive number")
	}
	return nil
}
