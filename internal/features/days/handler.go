// ================== internal/features/days/handler.go ==================
package days

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DexterPressley/calzone/internal/pkg/response"
	"github.com/DexterPressley/calzone/internal/pkg/validator"
	apperrors "github.com/DexterPressley/calzone/pkg/errors"
)

// Store is the persistence surface the handler needs. *Repository
// implements it.
type Store interface {
	List(ctx context.Context, userID int64, startDate, endDate *time.Time) ([]Day, error)
	Get(ctx context.Context, dayID, userID int64) (*Day, error)
	FindByDate(ctx context.Context, userID int64, date time.Time) (*Day, error)
	Create(ctx context.Context, day *Day) error
	UpdateDate(ctx context.Context, dayID, userID int64, date time.Time) (*Day, error)
	Delete(ctx context.Context, dayID, userID int64) error
}

// FoodSource resolves current nutrition facts for entry enrichment. The
// foods repository implements it through an adapter in the route wiring.
type FoodSource interface {
	Facts(ctx context.Context, foodIDs []int64, userID int64) (map[int64]FoodFacts, error)
}

type Handler struct {
	store Store
	foods FoodSource
}

func NewHandler(store Store, foods FoodSource) *Handler {
	return &Handler{store: store, foods: foods}
}

// facts resolves the food records referenced by the given days. An
// enrichment failure degrades to placeholder entries instead of failing
// the read.
func (h *Handler) facts(ctx context.Context, userID int64, daysToEnrich ...*Day) map[int64]FoodFacts {
	seen := map[int64]bool{}
	var foodIDs []int64
	for _, day := range daysToEnrich {
		for _, entry := range day.Entries {
			if !seen[entry.FoodID] {
				seen[entry.FoodID] = true
				foodIDs = append(foodIDs, entry.FoodID)
			}
		}
	}

	facts, err := h.foods.Facts(ctx, foodIDs, userID)
	if err != nil {
		log.Printf("Entry enrichment error: %v", err)
		return map[int64]FoodFacts{}
	}
	return facts
}

// List godoc
// @Summary List days
// @Description List the user's days, newest first, optionally bounded by an inclusive date range
// @Tags days
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param startDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {object} ListDaysResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/{userId}/days [get]
func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("userID")

	var startDate, endDate *time.Time
	if raw := c.Query("startDate"); raw != "" {
		parsed, ok := validator.ParseDate(raw)
		if !ok {
			response.BadRequest(c, "Invalid startDate format")
			return
		}
		startDate = &parsed
	}
	if raw := c.Query("endDate"); raw != "" {
		parsed, ok := validator.ParseDate(raw)
		if !ok {
			response.BadRequest(c, "Invalid endDate format")
			return
		}
		endDate = &parsed
	}

	daysList, err := h.store.List(c.Request.Context(), userID, startDate, endDate)
	if err != nil {
		response.DatabaseError(c, "Server error searching days")
		return
	}

	dayPtrs := make([]*Day, len(daysList))
	for i := range daysList {
		dayPtrs[i] = &daysList[i]
	}
	facts := h.facts(c.Request.Context(), userID, dayPtrs...)

	results := make([]DayView, 0, len(daysList))
	for i := range daysList {
		results = append(results, BuildView(&daysList[i], facts))
	}

	response.Success(c, ListDaysResponse{
		Success: true,
		Results: results,
		Count:   len(results),
	})
}

// Get godoc
// @Summary Get a day
// @Description Get one day with its entries enriched from current food records
// @Tags days
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param dayId path int true "Day ID"
// @Success 200 {object} DayResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/{userId}/days/{dayId} [get]
func (h *Handler) Get(c *gin.Context) {
	userID := c.GetInt64("userID")

	dayID, err := strconv.ParseInt(c.Param("dayId"), 10, 64)
	if err != nil {
		response.NotFound(c, "Day not found or does not belong to user")
		return
	}

	day, err := h.store.Get(c.Request.Context(), dayID, userID)
	if err != nil {
		response.DatabaseError(c, "Server error retrieving day")
		return
	}
	if day == nil {
		response.NotFound(c, "Day not found or does not belong to user")
		return
	}

	facts := h.facts(c.Request.Context(), userID, day)

	response.Success(c, DayResponse{
		Success: true,
		Day:     BuildView(day, facts),
	})
}

// Create godoc
// @Summary Add a day
// @Description Create a day for a calendar date. Each user has at most one day per date.
// @Tags days
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param request body CreateDayRequest true "Day data"
// @Success 201 {object} DayMutationResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} DayConflictResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/{userId}/days [post]
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("userID")

	var req CreateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if req.Date == "" {
		response.BadRequest(c, "date is required")
		return
	}

	date, ok := validator.ParseDate(req.Date)
	if !ok {
		response.BadRequest(c, "Invalid date format")
		return
	}

	existing, err := h.store.FindByDate(c.Request.Context(), userID, date)
	if err != nil {
		response.DatabaseError(c, "Server error adding day")
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, DayConflictResponse{
			Error: "Day already exists for this date",
			DayID: existing.DayID,
		})
		return
	}

	day := &Day{UserID: userID, Date: date}
	if err := h.store.Create(c.Request.Context(), day); err != nil {
		// The existence check can race with a concurrent create; the
		// compound unique index is authoritative.
		if err == apperrors.ErrDuplicate {
			response.Conflict(c, "Day already exists for this date")
			return
		}
		response.DatabaseError(c, "Server error adding day")
		return
	}

	response.Created(c, DayMutationResponse{
		Success: true,
		Message: "Day added successfully",
		DayID:   day.DayID,
		Date:    day.Date,
	})
}

// Update godoc
// @Summary Update a day
// @Description Move a day to a different calendar date
// @Tags days
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param dayId path int true "Day ID"
// @Param request body UpdateDayRequest true "New date"
// @Success 200 {object} DayMutationResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/{userId}/days/{dayId} [patch]
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetInt64("userID")

	dayID, err := strconv.ParseInt(c.Param("dayId"), 10, 64)
	if err != nil {
		response.NotFound(c, "Day not found or does not belong to user")
		return
	}

	var req UpdateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if req.Date == "" {
		response.BadRequest(c, "date is required")
		return
	}

	date, ok := validator.ParseDate(req.Date)
	if !ok {
		response.BadRequest(c, "Invalid date format")
		return
	}

	day, err := h.store.UpdateDate(c.Request.Context(), dayID, userID, date)
	if err != nil {
		if err == apperrors.ErrNotFound {
			response.NotFound(c, "Day not found or does not belong to user")
			return
		}
		if err == apperrors.ErrDuplicate {
			response.Conflict(c, "Day already exists for this date")
			return
		}
		response.DatabaseError(c, "Server error updating day")
		return
	}

	response.Success(c, DayMutationResponse{
		Success: true,
		Message: "Day updated successfully",
		DayID:   day.DayID,
		Date:    day.Date,
	})
}

// Delete godoc
// @Summary Delete a day
// @Description Delete a day and the entries embedded in it
// @Tags days
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param dayId path int true "Day ID"
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/{userId}/days/{dayId} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("userID")

	dayID, err := strconv.ParseInt(c.Param("dayId"), 10, 64)
	if err != nil {
		response.NotFound(c, "Day not found or does not belong to user")
		return
	}

	if err := h.store.Delete(c.Request.Context(), dayID, userID); err != nil {
		if err == apperrors.ErrNotFound {
			response.NotFound(c, "Day not found or does not belong to user")
			return
		}
		response.DatabaseError(c, "Server error deleting day")
		return
	}

	response.Message(c, "Day deleted successfully")
}
