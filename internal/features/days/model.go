// ================== internal/features/days/model.go ==================
package days

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Day is one calendar date for one user. Entries live embedded in the day
// document and are mutated only through it.
type Day struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	DayID     int64              `bson:"dayId" json:"dayId" example:"1"`
	UserID    int64              `bson:"userId" json:"-"`
	Date      time.Time          `bson:"date" json:"date" example:"2026-01-15T00:00:00Z"`
	Entries   []Entry            `bson:"entries" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"-"`
}

// Entry is one logged consumption event. FoodID is a soft reference; the
// food may be edited or deleted after the entry is written.
type Entry struct {
	ID        primitive.ObjectID `bson:"_id" json:"entryId"`
	FoodID    int64              `bson:"foodId" json:"foodId" example:"1"`
	Amount    float64            `bson:"amount" json:"amount" example:"2"`
	MealType  string             `bson:"mealType" json:"mealType" example:"Breakfast"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// FoodFacts is the per-unit nutrition snapshot used to enrich entries at
// read time.
type FoodFacts struct {
	Name            string
	CaloriesPerUnit float64
	ProteinPerUnit  float64
	CarbsPerUnit    float64
	FatPerUnit      float64
	Unit            string
}

// EnrichedEntry is an entry joined with its food's CURRENT nutrition
// facts. A deleted food yields the placeholder name and zeroed values.
type EnrichedEntry struct {
	EntryID         string    `json:"entryId"`
	FoodID          int64     `json:"foodId" example:"1"`
	FoodName        string    `json:"foodName" example:"Banana"`
	Amount          float64   `json:"amount" example:"2"`
	MealType        string    `json:"mealType" example:"Breakfast"`
	CaloriesPerUnit float64   `json:"caloriesPerUnit" example:"90"`
	ProteinPerUnit  float64   `json:"proteinPerUnit" example:"1.1"`
	CarbsPerUnit    float64   `json:"carbsPerUnit" example:"23"`
	FatPerUnit      float64   `json:"fatPerUnit" example:"0.3"`
	Unit            string    `json:"unit" example:"each"`
	Calories        int       `json:"calories" example:"180"`
	Protein         int       `json:"protein" example:"2"`
	Carbs           int       `json:"carbs" example:"46"`
	Fat             int       `json:"fat" example:"1"`
	Timestamp       time.Time `json:"timestamp"`
}

// Totals sums the enriched entry values for one day.
type Totals struct {
	Calories int `json:"calories" example:"180"`
	Protein  int `json:"protein" example:"2"`
	Carbs    int `json:"carbs" example:"46"`
	Fat      int `json:"fat" example:"1"`
}

// DayView is the read payload for one day.
type DayView struct {
	DayID   int64           `json:"dayId" example:"1"`
	Date    time.Time       `json:"date" example:"2026-01-15T00:00:00Z"`
	Entries []EnrichedEntry `json:"entries"`
	Totals  Totals          `json:"totals"`
}

// UnknownFoodName marks entries whose referenced food no longer exists.
const UnknownFoodName = "Unknown food"

// Enrich joins one entry with the current food facts. A missing food
// degrades the entry, never the request.
func Enrich(entry Entry, facts map[int64]FoodFacts) EnrichedEntry {
	enriched := EnrichedEntry{
		EntryID:   entry.ID.Hex(),
		FoodID:    entry.FoodID,
		FoodName:  UnknownFoodName,
		Amount:    entry.Amount,
		MealType:  entry.MealType,
		Timestamp: entry.Timestamp,
	}

	f, ok := facts[entry.FoodID]
	if !ok {
		return enriched
	}

	enriched.FoodName = f.Name
	enriched.CaloriesPerUnit = f.CaloriesPerUnit
	enriched.ProteinPerUnit = f.ProteinPerUnit
	enriched.CarbsPerUnit = f.CarbsPerUnit
	enriched.FatPerUnit = f.FatPerUnit
	enriched.Unit = f.Unit
	enriched.Calories = int(math.Round(f.CaloriesPerUnit * entry.Amount))
	enriched.Protein = int(math.Round(f.ProteinPerUnit * entry.Amount))
	enriched.Carbs = int(math.Round(f.CarbsPerUnit * entry.Amount))
	enriched.Fat = int(math.Round(f.FatPerUnit * entry.Amount))
	return enriched
}

// BuildView enriches every entry of a day and sums the totals.
func BuildView(day *Day, facts map[int64]FoodFacts) DayView {
	view := DayView{
		DayID:   day.DayID,
		Date:    day.Date,
		Entries: make([]EnrichedEntry, 0, len(day.Entries)),
	}

	for _, entry := range day.Entries {
		enriched := Enrich(entry, facts)
		view.Entries = append(view.Entries, enriched)
		view.Totals.Calories += enriched.Calories
		view.Totals.Protein += enriched.Protein
		view.Totals.Carbs += enriched.Carbs
		view.Totals.Fat += enriched.Fat
	}

	return view
}

// CreateDayRequest represents day creation data
type CreateDayRequest struct {
	Date string `json:"date" example:"2026-01-15"`
}

// UpdateDayRequest represents day update data
type UpdateDayRequest struct {
	Date string `json:"date" example:"2026-01-16"`
}

// ListDaysResponse is the day range payload
type ListDaysResponse struct {
	Success bool      `json:"success" example:"true"`
	Results []DayView `json:"results"`
	Count   int       `json:"count" example:"1"`
}

// DayResponse wraps a single day view
type DayResponse struct {
	Success bool    `json:"success" example:"true"`
	Day     DayView `json:"day"`
}

// DayConflictResponse is the 409 body when the date is already logged. It
// carries the existing dayId so clients can navigate to it.
type DayConflictResponse struct {
	Error string `json:"error" example:"Day already exists for this date"`
	DayID int64  `json:"dayId" example:"1"`
}

// DayMutationResponse confirms create/update of a day
type DayMutationResponse struct {
	Success bool      `json:"success" example:"true"`
	Message string    `json:"message" example:"Day added successfully"`
	DayID   int64     `json:"dayId" example:"1"`
	Date    time.Time `json:"date" example:"2026-01-15T00:00:00Z"`
}
