// ================== internal/features/foods/handler.go ==================
package foods

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/DexterPressley/calzone/internal/pkg/response"
	apperrors "github.com/DexterPressley/calzone/pkg/errors"
)

// Store is the persistence surface the handler needs. *Repository
// implements it.
type Store interface {
	List(ctx context.Context, userID int64, search string) ([]Food, error)
	Create(ctx context.Context, food *Food) error
	GetOwned(ctx context.Context, foodID, userID int64) (*Food, error)
	Update(ctx context.Context, foodID, userID int64, fields bson.M) (*Food, error)
	Delete(ctx context.Context, foodID, userID int64) error
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// List godoc
// @Summary List or search foods
// @Description List the user's foods plus the shared catalog, optionally filtered by name
// @Tags foods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param search query string false "Case-insensitive name filter"
// @Success 200 {object} ListFoodsResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/{userId}/foods [get]
func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("userID")
	search := c.Query("search")

	foods, err := h.store.List(c.Request.Context(), userID, search)
	if err != nil {
		response.DatabaseError(c, "Server error searching foods")
		return
	}

	response.Success(c, ListFoodsResponse{
		Success: true,
		Results: foods,
		Count:   len(foods),
	})
}

// Create godoc
// @Summary Add a food
// @Tags foods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param request body CreateFoodRequest true "Food data"
// @Success 201 {object} FoodResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/{userId}/foods [post]
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("userID")

	var req CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreateFood(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	food := &Food{
		UserID:          userID,
		Name:            strings.TrimSpace(req.Name),
		CaloriesPerUnit: *req.CaloriesPerUnit,
		ProteinPerUnit:  *req.ProteinPerUnit,
		CarbsPerUnit:    *req.CarbsPerUnit,
		FatPerUnit:      *req.FatPerUnit,
		Unit:            strings.TrimSpace(req.Unit),
		UPC:             strings.TrimSpace(req.UPC),
	}

	if err := h.store.Create(c.Request.Context(), food); err != nil {
		response.DatabaseError(c, "Server error adding food")
		return
	}

	response.Created(c, FoodResponse{
		Success: true,
		Message: "Food added successfully",
		Food:    *food,
	})
}

// Update godoc
// @Summary Update a food
// @Description Partially update an owned food
// @Tags foods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param foodId path int true "Food ID"
// @Param request body UpdateFoodRequest true "Fields to update"
// @Success 200 {object} FoodResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/{userId}/foods/{foodId} [patch]
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetInt64("userID")

	foodID, err := strconv.ParseInt(c.Param("foodId"), 10, 64)
	if err != nil {
		response.NotFound(c, "Food not found or does not belong to user")
		return
	}

	existing, err := h.store.GetOwned(c.Request.Context(), foodID, userID)
	if err != nil {
		response.DatabaseError(c, "Server error updating food")
		return
	}
	if existing == nil {
		response.NotFound(c, "Food not found or does not belong to user")
		return
	}

	var req UpdateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateUpdateFood(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	fields := bson.M{}
	if strings.TrimSpace(req.Name) != "" {
		fields["name"] = strings.TrimSpace(req.Name)
	}
	if req.CaloriesPerUnit != nil {
		fields["caloriesPerUnit"] = *req.CaloriesPerUnit
	}
	if req.ProteinPerUnit != nil {
		fields["proteinPerUnit"] = *req.ProteinPerUnit
	}
	if req.CarbsPerUnit != nil {
		fields["carbsPerUnit"] = *req.CarbsPerUnit
	}
	if req.FatPerUnit != nil {
		fields["fatPerUnit"] = *req.FatPerUnit
	}
	if strings.TrimSpace(req.Unit) != "" {
		fields["unit"] = strings.TrimSpace(req.Unit)
	}

	if len(fields) == 0 {
		response.BadRequest(c, "At least one field to update is required")
		return
	}

	food, err := h.store.Update(c.Request.Context(), foodID, userID, fields)
	if err != nil {
		if err == apperrors.ErrNotFound {
			response.NotFound(c, "Food not found or does not belong to user")
			return
		}
		response.DatabaseError(c, "Server error updating food")
		return
	}

	response.Success(c, FoodResponse{
		Success: true,
		Message: "Food updated successfully",
		Food:    *food,
	})
}

// Delete godoc
// @Summary Delete a food
// @Description Delete an owned food. Entries referencing it keep working with placeholder nutrition.
// @Tags foods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param foodId path int true "Food ID"
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/{userId}/foods/{foodId} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("userID")

	foodID, err := strconv.ParseInt(c.Param("foodId"), 10, 64)
	if err != nil {
		response.NotFound(c, "Food not found or does not belong to user")
		return
	}

	if err := h.store.Delete(c.Request.Context(), foodID, userID); err != nil {
		if err == apperrors.ErrNotFound {
			response.NotFound(c, "Food not found or does not belong to user")
			return
		}
		response.DatabaseError(c, "Server error deleting food")
		return
	}

	response.Message(c, "Food deleted successfully")
}
