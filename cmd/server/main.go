package main

import (
	"github.com/gin-gonic/gin"
	"github.com/simpledrinkmaker/sdm-server/internal/config"
	"github.com/simpledrinkmaker/sdm-server/internal/database"
	"github.com/simpledrinkmaker/sdm-server/internal/handlers"
	"github.com/simpledrinkmaker/sdm-server/internal/logger"
	"github.com/simpledrinkmaker/sdm-server/internal/mail"
	"github.com/simpledrinkmaker/sdm-server/internal/middleware"
	"github.com/simpledrinkmaker/sdm-server/internal/repository"
	"github.com/simpledrinkmaker/sdm-server/internal/services"
	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Close()

	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Load catalog fixtures when configured
	db := database.GetDB()
	if cfg.IngredientsCSV != "" {
		if err := database.SeedIngredients(db, cfg.IngredientsCSV); err != nil {
			logger.Fatal("failed to seed ingredients", zap.Error(err))
		}
	}
	if cfg.RecipesCSV != "" {
		if err := database.SeedRecipes(db, cfg.RecipesCSV); err != nil {
			logger.Fatal("failed to seed recipes", zap.Error(err))
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)

	// Initialize services
	mailer := mail.NewSMTPMailer(cfg)
	authService := services.NewAuthService(userRepo, mailer, []byte(cfg.SecretKey), cfg.ResetURLBase)
	inventoryService := services.NewInventoryService(ingredientRepo)
	recipeService := services.NewRecipeService(recipeRepo, ingredientRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	ingredientHandler := handlers.NewIngredientHandler(inventoryService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)

	// Initialize Gin router
	r := gin.Default()

	r.GET("/", handlers.Index)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/login", authHandler.Login)
		api.POST("/register", authHandler.Register)
		api.POST("/forgot-password", authHandler.ForgotPassword)
		api.POST("/forgot-password/:token", authHandler.ResetPassword)

		// Protected routes
		authed := api.Group("")
		authed.Use(middleware.RequireAuth(authService))
		{
			authed.POST("/authenticate", authHandler.Authenticate)

			authed.GET("/all-ingredients", ingredientHandler.ListAll)
			authed.PATCH("/all-ingredients", ingredientHandler.Update)

			authed.GET("/custom-ingredients", ingredientHandler.ListCustom)
			authed.POST("/custom-ingredients", ingredientHandler.CreateCustom)
			authed.DELETE("/custom-ingredients", ingredientHandler.DeleteCustom)

			authed.GET("/user-ingredients", ingredientHandler.ListCabinet)
			authed.POST("/user-ingredients", ingredientHandler.AddToCabinet)
			authed.DELETE("/user-ingredients", ingredientHandler.RemoveFromCabinet)

			authed.GET("/all-recipes", recipeHandler.ListAll)
			authed.GET("/filtered-recipes", recipeHandler.FullMatches)
			authed.GET("/partial-filter", recipeHandler.PartialMatches)
		}
	}

	// Start server
	logger.Info("server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
