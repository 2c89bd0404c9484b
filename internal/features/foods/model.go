// ================== internal/features/foods/model.go ==================
package foods

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food is a per-user nutrition fact sheet. Values are per one Unit.
type Food struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	FoodID          int64              `bson:"foodId" json:"foodId" example:"1"`
	UserID          int64              `bson:"userId" json:"-"`
	Name            string             `bson:"name" json:"name" example:"Banana"`
	CaloriesPerUnit float64            `bson:"caloriesPerUnit" json:"caloriesPerUnit" example:"90"`
	ProteinPerUnit  float64            `bson:"proteinPerUnit" json:"proteinPerUnit" example:"1.1"`
	CarbsPerUnit    float64            `bson:"carbsPerUnit" json:"carbsPerUnit" example:"23"`
	FatPerUnit      float64            `bson:"fatPerUnit" json:"fatPerUnit" example:"0.3"`
	Unit            string             `bson:"unit" json:"unit" example:"each"`
	UPC             string             `bson:"upc,omitempty" json:"upc,omitempty" example:"012345678905"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateFoodRequest represents food creation data
type CreateFoodRequest struct {
	Name            string   `json:"name" example:"Banana"`
	CaloriesPerUnit *float64 `json:"caloriesPerUnit" example:"90"`
	ProteinPerUnit  *float64 `json:"proteinPerUnit" example:"1.1"`
	CarbsPerUnit    *float64 `json:"carbsPerUnit" example:"23"`
	FatPerUnit      *float64 `json:"fatPerUnit" example:"0.3"`
	Unit            string   `json:"unit" example:"each"`
	UPC             string   `json:"upc" example:"012345678905"`
}

// UpdateFoodRequest represents partial food update data
type UpdateFoodRequest struct {
	Name            string   `json:"name" example:"Banana"`
	CaloriesPerUnit *float64 `json:"caloriesPerUnit" example:"90"`
	ProteinPerUnit  *float64 `json:"proteinPerUnit" example:"1.1"`
	CarbsPerUnit    *float64 `json:"carbsPerUnit" example:"23"`
	FatPerUnit      *float64 `json:"fatPerUnit" example:"0.3"`
	Unit            string   `json:"unit" example:"each"`
}

// ListFoodsResponse is the list/search payload
type ListFoodsResponse struct {
	Success bool   `json:"success" example:"true"`
	Results []Food `json:"results"`
	Count   int    `json:"count" example:"1"`
}

// FoodResponse wraps a single food for create/update confirmations
type FoodResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Food added successfully"`
	Food    Food   `json:"food"`
}
