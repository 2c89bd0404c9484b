// ================== internal/features/entries/handler.go ==================
package entries

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DexterPressley/calzone/internal/features/days"
	"github.com/DexterPressley/calzone/internal/features/foods"
	"github.com/DexterPressley/calzone/internal/pkg/response"
)

// DayStore is the day-aggregate surface the handler needs. The days
// repository implements it.
type DayStore interface {
	Get(ctx context.Context, dayID, userID int64) (*days.Day, error)
	AddEntry(ctx context.Context, dayID, userID int64, entry *days.Entry) error
	UpdateEntry(ctx context.Context, dayID, userID int64, entryID primitive.ObjectID, fields bson.M) error
	DeleteEntry(ctx context.Context, dayID, userID int64, entryID primitive.ObjectID) error
}

// FoodStore resolves foods readable by the user (their own plus the
// shared catalog). The foods repository implements it.
type FoodStore interface {
	Get(ctx context.Context, foodID, userID int64) (*foods.Food, error)
}

type Handler struct {
	daysStore DayStore
	foodStore FoodStore
}

func NewHandler(daysStore DayStore, foodStore FoodStore) *Handler {
	return &Handler{daysStore: daysStore, foodStore: foodStore}
}

func factsFor(food *foods.Food) map[int64]days.FoodFacts {
	if food == nil {
		return map[int64]days.FoodFacts{}
	}
	return map[int64]days.FoodFacts{
		food.FoodID: {
			Name:            food.Name,
			CaloriesPerUnit: food.CaloriesPerUnit,
			ProteinPerUnit:  food.ProteinPerUnit,
			CarbsPerUnit:    food.CarbsPerUnit,
			FatPerUnit:      food.FatPerUnit,
			Unit:            food.Unit,
		},
	}
}

func findEntry(day *days.Day, entryID primitive.ObjectID) *days.Entry {
	for i := range day.Entries {
		if day.Entries[i].ID == entryID {
			return &day.Entries[i]
		}
	}
	return nil
}

// Create godoc
// @Summary Add an entry to a day
// @Description Log a food consumption event on a day. The response entry is enriched with current food facts.
// @Tags entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param dayId path int true "Day ID"
// @Param request body CreateEntryRequest true "Entry data"
// @Success 201 {object} EntryResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/{userId}/days/{dayId}/entries [post]
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("userID")

	dayID, err := strconv.ParseInt(c.Param("dayId"), 10, 64)
	if err != nil {
		response.NotFound(c, "Day not found or does not belong to user")
		return
	}

	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreateEntry(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	day, err := h.daysStore.Get(c.Request.Context(), dayID, userID)
	if err != nil {
		response.DatabaseError(c, "Server error adding entry")
		return
	}
	if day == nil {
		response.NotFound(c, "Day not found or does not belong to user")
		return
	}

	food, err := h.foodStore.Get(c.Request.Context(), *req.FoodID, userID)
	if err != nil {
		response.DatabaseError(c, "Server error adding entry")
		return
	}
	if food == nil {
		response.NotFound(c, "Food not found or does not belong to user")
		return
	}

	entry := &days.Entry{
		FoodID:   *req.FoodID,
		Amount:   *req.Amount,
		MealType: req.MealType,
	}

	if err := h.daysStore.AddEntry(c.Request.Context(), dayID, userID, entry); err != nil {
		response.DatabaseError(c, "Server error adding entry")
		return
	}

	response.Created(c, EntryResponse{
		Success: true,
		Message: "Entry added successfully",
		Entry:   days.Enrich(*entry, factsFor(food)),
	})
}

// Update godoc
// @Summary Update an entry
// @Description Partially update an entry inside a day
// @Tags entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param dayId path int true "Day ID"
// @Param entryId path string true "Entry ID"
// @Param request body UpdateEntryRequest true "Fields to update"
// @Success 200 {object} EntryResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/{userId}/days/{dayId}/entries/{entryId} [patch]
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetInt64("userID")

	dayID, err := strconv.ParseInt(c.Param("dayId"), 10, 64)
	if err != nil {
		response.NotFound(c, "Day not found or does not belong to user")
		return
	}

	entryID, err := primitive.ObjectIDFromHex(c.Param("entryId"))
	if err != nil {
		response.NotFound(c, "Entry not found in this day")
		return
	}

	var req UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateUpdateEntry(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	day, err := h.daysStore.Get(c.Request.Context(), dayID, userID)
	if err != nil {
		response.DatabaseError(c, "Server error updating entry")
		return
	}
	if day == nil {
		response.NotFound(c, "Day not found or does not belong to user")
		return
	}

	entry := findEntry(day, entryID)
	if entry == nil {
		response.NotFound(c, "Entry not found in this day")
		return
	}

	fields := bson.M{}
	var food *foods.Food

	if req.FoodID != nil {
		food, err = h.foodStore.Get(c.Request.Context(), *req.FoodID, userID)
		if err != nil {
			response.DatabaseError(c, "Server error updating entry")
			return
		}
		if food == nil {
			response.NotFound(c, "Food not found or does not belong to user")
			return
		}
		entry.FoodID = *req.FoodID
		fields["foodId"] = *req.FoodID
	}
	if req.Amount != nil {
		entry.Amount = *req.Amount
		fields["amount"] = *req.Amount
	}
	if req.MealType != "" {
		entry.MealType = req.MealType
		fields["mealType"] = req.MealType
	}

	if len(fields) == 0 {
		response.BadRequest(c, "At least one field to update is required")
		return
	}

	if err := h.daysStore.UpdateEntry(c.Request.Context(), dayID, userID, entryID, fields); err != nil {
		response.DatabaseError(c, "Server error updating entry")
		return
	}

	// Resolve the food for the enriched response when the update did not
	// already fetch it. A missing food degrades to placeholder values.
	if food == nil {
		food, err = h.foodStore.Get(c.Request.Context(), entry.FoodID, userID)
		if err != nil {
			response.DatabaseError(c, "Server error updating entry")
			return
		}
	}

	response.Success(c, EntryResponse{
		Success: true,
		Message: "Entry updated successfully",
		Entry:   days.Enrich(*entry, factsFor(food)),
	})
}

// Delete godoc
// @Summary Delete an entry
// @Tags entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param dayId path int true "Day ID"
// @Param entryId path string true "Entry ID"
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/{userId}/days/{dayId}/entries/{entryId} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("userID")

	dayID, err := strconv.ParseInt(c.Param("dayId"), 10, 64)
	if err != nil {
		response.NotFound(c, "Day not found or does not belong to user")
		return
	}

	entryID, err := primitive.ObjectIDFromHex(c.Param("entryId"))
	if err != nil {
		response.NotFound(c, "Entry not found in this day")
		return
	}

	day, err := h.daysStore.Get(c.Request.Context(), dayID, userID)
	if err != nil {
		response.DatabaseError(c, "Server error deleting entry")
		return
	}
	if day == nil {
		response.NotFound(c, "Day not found or does not belong to user")
		return
	}

	if findEntry(day, entryID) == nil {
		response.NotFound(c, "Entry not found in this day")
		return
	}

	if err := h.daysStore.DeleteEntry(c.Request.Context(), dayID, userID, entryID); err != nil {
		response.DatabaseError(c, "Server error deleting entry")
		return
	}

	response.Message(c, "Entry deleted successfully")
}
