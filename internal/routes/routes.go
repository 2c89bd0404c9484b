package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/DexterPressley/calzone/internal/config"
	"github.com/DexterPressley/calzone/internal/features/days"
	"github.com/DexterPressley/calzone/internal/features/entries"
	"github.com/DexterPressley/calzone/internal/features/foods"
	"github.com/DexterPressley/calzone/internal/features/users"
	"github.com/DexterPressley/calzone/internal/middleware"
	"github.com/DexterPressley/calzone/internal/pkg/sequence"
	"github.com/DexterPressley/calzone/internal/pkg/token"
)

// foodFactsAdapter adapts foods.Repository to days.FoodSource
type foodFactsAdapter struct {
	repo *foods.Repository
}

func (a *foodFactsAdapter) Facts(ctx context.Context, foodIDs []int64, userID int64) (map[int64]days.FoodFacts, error) {
	byID, err := a.repo.GetMany(ctx, foodIDs, userID)
	if err != nil {
		return nil, err
	}

	facts := make(map[int64]days.FoodFacts, len(byID))
	for id, f := range byID {
		facts[id] = days.FoodFacts{
			Name:            f.Name,
			CaloriesPerUnit: f.CaloriesPerUnit,
			ProteinPerUnit:  f.ProteinPerUnit,
			CarbsPerUnit:    f.CarbsPerUnit,
			FatPerUnit:      f.FatPerUnit,
			Unit:            f.Unit,
		}
	}
	return facts, nil
}

func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config, mail users.Mailer) {
	api := router.Group("/api")

	tokens := token.NewService(cfg.JWTSecret, time.Duration(cfg.JWTExpireHours)*time.Hour)
	seq := sequence.NewAllocator(db)

	usersRepo := users.NewRepository(db, seq)
	foodsRepo := foods.NewRepository(db, seq)
	daysRepo := days.NewRepository(db, seq)

	usersHandler := users.NewHandler(usersRepo, tokens, mail)
	foodsHandler := foods.NewHandler(foodsRepo)
	daysHandler := days.NewHandler(daysRepo, &foodFactsAdapter{repo: foodsRepo})
	entriesHandler := entries.NewHandler(daysRepo, foodsRepo)

	// Public account endpoints
	users.RegisterPublicRoutes(api, usersHandler)

	// Everything under /users/:userId requires a valid token whose subject
	// matches the path. The refresh relay reissues the token on each request.
	owner := api.Group("/users/:userId")
	owner.Use(
		middleware.Auth(tokens),
		middleware.RefreshRelay(tokens),
		middleware.RequireOwner(),
	)

	users.RegisterOwnerRoutes(owner, usersHandler)
	foods.RegisterRoutes(owner, foodsHandler)
	days.RegisterRoutes(owner, daysHandler)
	entries.RegisterRoutes(owner, entriesHandler)
}
