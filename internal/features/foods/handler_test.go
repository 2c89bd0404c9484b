package foods

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	apperrors "github.com/DexterPressley/calzone/pkg/errors"
)

// =============================================================================
// Mock Implementations
// =============================================================================

type mockStore struct {
	listFunc     func(ctx context.Context, userID int64, search string) ([]Food, error)
	createFunc   func(ctx context.Context, food *Food) error
	getOwnedFunc func(ctx context.Context, foodID, userID int64) (*Food, error)
	updateFunc   func(ctx context.Context, foodID, userID int64, fields bson.M) (*Food, error)
	deleteFunc   func(ctx context.Context, foodID, userID int64) error
}

func (m *mockStore) List(ctx context.Context, userID int64, search string) ([]Food, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, search)
	}
	return nil, errors.New("not implemented")
}

func (m *mockStore) Create(ctx context.Context, food *Food) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, food)
	}
	return errors.New("not implemented")
}

func (m *mockStore) GetOwned(ctx context.Context, foodID, userID int64) (*Food, error) {
	if m.getOwnedFunc != nil {
		return m.getOwnedFunc(ctx, foodID, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockStore) Update(ctx context.Context, foodID, userID int64, fields bson.M) (*Food, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, foodID, userID, fields)
	}
	return nil, errors.New("not implemented")
}

func (m *mockStore) Delete(ctx context.Context, foodID, userID int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, foodID, userID)
	}
	return errors.New("not implemented")
}

// =============================================================================
// Helpers
// =============================================================================

func setupRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(store)

	r := gin.New()
	owner := r.Group("/api/users/:userId")
	owner.Use(func(c *gin.Context) {
		c.Set("userID", int64(1))
	})
	RegisterRoutes(owner, handler)

	return r
}

func doJSON(r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	var body []byte
	if payload != nil {
		body, _ = json.Marshal(payload)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func floatPtr(f float64) *float64 { return &f }

// =============================================================================
// Tests
// =============================================================================

func TestListPassesSearchTerm(t *testing.T) {
	var gotSearch string
	store := &mockStore{
		listFunc: func(ctx context.Context, userID int64, search string) ([]Food, error) {
			gotSearch = search
			return []Food{{FoodID: 1, Name: "Banana"}}, nil
		},
	}
	r := setupRouter(store)

	w := doJSON(r, "GET", "/api/users/1/foods?search=ban", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ban", gotSearch)

	var body ListFoodsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Equal(t, 1, body.Count)
	require.Equal(t, "Banana", body.Results[0].Name)
}

func TestCreateFood(t *testing.T) {
	var created *Food
	store := &mockStore{
		createFunc: func(ctx context.Context, food *Food) error {
			food.FoodID = 7
			created = food
			return nil
		},
	}
	r := setupRouter(store)

	w := doJSON(r, "POST", "/api/users/1/foods", CreateFoodRequest{
		Name:            "  Banana  ",
		CaloriesPerUnit: floatPtr(90),
		ProteinPerUnit:  floatPtr(1.1),
		CarbsPerUnit:    floatPtr(23),
		FatPerUnit:      floatPtr(0.3),
		Unit:            "each",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, created)
	require.Equal(t, "Banana", created.Name)
	require.Equal(t, int64(1), created.UserID)

	var body FoodResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, int64(7), body.Food.FoodID)
}

func TestCreateFoodValidation(t *testing.T) {
	r := setupRouter(&mockStore{})

	tests := []struct {
		name    string
		req     CreateFoodRequest
		message string
	}{
		{
			"missing name",
			CreateFoodRequest{CaloriesPerUnit: floatPtr(90), ProteinPerUnit: floatPtr(1), CarbsPerUnit: floatPtr(1), FatPerUnit: floatPtr(1), Unit: "each"},
			"name is required",
		},
		{
			"missing calories",
			CreateFoodRequest{Name: "Banana", ProteinPerUnit: floatPtr(1), CarbsPerUnit: floatPtr(1), FatPerUnit: floatPtr(1), Unit: "each"},
			"caloriesPerUnit is required",
		},
		{
			"negative calories",
			CreateFoodRequest{Name: "Banana", CaloriesPerUnit: floatPtr(-5), ProteinPerUnit: floatPtr(1), CarbsPerUnit: floatPtr(1), FatPerUnit: floatPtr(1), Unit: "each"},
			"caloriesPerUnit must be a valid positive number",
		},
		{
			"missing unit",
			CreateFoodRequest{Name: "Banana", CaloriesPerUnit: floatPtr(90), ProteinPerUnit: floatPtr(1), CarbsPerUnit: floatPtr(1), FatPerUnit: floatPtr(1)},
			"unit is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, "POST", "/api/users/1/foods", tt.req)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, tt.message, body["error"])
		})
	}
}

func TestUpdateFood(t *testing.T) {
	var gotFields bson.M
	store := &mockStore{
		getOwnedFunc: func(ctx context.Context, foodID, userID int64) (*Food, error) {
			return &Food{FoodID: foodID, UserID: userID, Name: "Banana"}, nil
		},
		updateFunc: func(ctx context.Context, foodID, userID int64, fields bson.M) (*Food, error) {
			gotFields = fields
			return &Food{FoodID: foodID, UserID: userID, Name: "Banana", CaloriesPerUnit: 95}, nil
		},
	}
	r := setupRouter(store)

	w := doJSON(r, "PATCH", "/api/users/1/foods/7", UpdateFoodRequest{CaloriesPerUnit: floatPtr(95)})

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, bson.M{"caloriesPerUnit": float64(95)}, gotFields)
}

func TestUpdateFoodNoFields(t *testing.T) {
	store := &mockStore{
		getOwnedFunc: func(ctx context.Context, foodID, userID int64) (*Food, error) {
			return &Food{FoodID: foodID, UserID: userID}, nil
		},
	}
	r := setupRouter(store)

	w := doJSON(r, "PATCH", "/api/users/1/foods/7", UpdateFoodRequest{})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateFoodNotOwnedIs404(t *testing.T) {
	store := &mockStore{
		getOwnedFunc: func(ctx context.Context, foodID, userID int64) (*Food, error) {
			return nil, nil
		},
	}
	r := setupRouter(store)

	w := doJSON(r, "PATCH", "/api/users/1/foods/7", UpdateFoodRequest{CaloriesPerUnit: floatPtr(95)})

	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Food not found or does not belong to user", body["error"])
}

func TestDeleteFood(t *testing.T) {
	store := &mockStore{
		deleteFunc: func(ctx context.Context, foodID, userID int64) error { return nil },
	}
	r := setupRouter(store)

	w := doJSON(r, "DELETE", "/api/users/1/foods/7", nil)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteFoodMissingIs404(t *testing.T) {
	store := &mockStore{
		deleteFunc: func(ctx context.Context, foodID, userID int64) error { return apperrors.ErrNotFound },
	}
	r := setupRouter(store)

	w := doJSON(r, "DELETE", "/api/users/1/foods/999", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
}
