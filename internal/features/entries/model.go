// ================== internal/features/entries/model.go ==================
package entries

import (
	"github.com/DexterPressley/calzone/internal/features/days"
)

// CreateEntryRequest represents entry creation data
type CreateEntryRequest struct {
	FoodID   *int64   `json:"foodId" example:"1"`
	Amount   *float64 `json:"amount" example:"2"`
	MealType string   `json:"mealType" example:"Breakfast" enums:"Breakfast,Lunch,Dinner,Snack"`
}

// UpdateEntryRequest represents partial entry update data
type UpdateEntryRequest struct {
	FoodID   *int64   `json:"foodId" example:"1"`
	Amount   *float64 `json:"amount" example:"1.5"`
	MealType string   `json:"mealType" example:"Lunch" enums:"Breakfast,Lunch,Dinner,Snack"`
}

// EntryResponse wraps one enriched entry for create/update confirmations
type EntryResponse struct {
	Success bool               `json:"success" example:"true"`
	Message string             `json:"message" example:"Entry added successfully"`
	Entry   days.EnrichedEntry `json:"entry"`
}
