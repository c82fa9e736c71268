package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/simpledrinkmaker/sdm-server/internal/constants"
	"github.com/simpledrinkmaker/sdm-server/internal/database"
	"github.com/simpledrinkmaker/sdm-server/internal/logger"
	"github.com/simpledrinkmaker/sdm-server/internal/middleware"
	"github.com/simpledrinkmaker/sdm-server/internal/models"
	"github.com/simpledrinkmaker/sdm-server/internal/repository"
	"github.com/simpledrinkmaker/sdm-server/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type recordedMail struct {
	To      string
	Subject string
	Body    string
}

// recorderMailer captures outbound mail instead of delivering it.
type recorderMailer struct {
	sent []recordedMail
}

func (m *recorderMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, recordedMail{To: to, Subject: subject, Body: body})
	return nil
}

type handlerTestEnv struct {
	db               *gorm.DB
	router           *gin.Engine
	mailer           *recorderMailer
	authService      *services.AuthService
	inventoryService *services.InventoryService
}

// setupHandlerTestEnv wires the full route table against an in-memory
// database, mirroring the server wiring.
func setupHandlerTestEnv(t *testing.T) handlerTestEnv {
	t.Helper()

	if logger.Logger == nil {
		logger.Init()
	}
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.CustomIngredient{},
		&models.Recipe{},
		&models.InventoryEntry{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)

	mailer := &recorderMailer{}
	authService := services.NewAuthService(userRepo, mailer, []byte("test-signing-key"), "http://localhost:3000/reset-pass")
	inventoryService := services.NewInventoryService(ingredientRepo)
	recipeService := services.NewRecipeService(recipeRepo, ingredientRepo)

	authHandler := NewAuthHandler(authService)
	ingredientHandler := NewIngredientHandler(inventoryService)
	recipeHandler := NewRecipeHandler(recipeService)

	r := gin.New()
	r.GET("/", Index)

	api := r.Group("/api")
	api.POST("/login", authHandler.Login)
	api.POST("/register", authHandler.Register)
	api.POST("/forgot-password", authHandler.ForgotPassword)
	api.POST("/forgot-password/:token", authHandler.ResetPassword)

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(authService))
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

	return handlerTestEnv{
		db:               db,
		router:           r,
		mailer:           mailer,
		authService:      authService,
		inventoryService: inventoryService,
	}
}

// registerAndLogin creates a user and returns a bearer token for it.
func (env handlerTestEnv) registerAndLogin(t *testing.T, username string) string {
	t.Helper()

	user, err := env.authService.Register(username, username+"@example.com", "supersecret")
	require.NoError(t, err)

	token, err := env.authService.IssueToken(user, constants.LoginTokenTTL)
	require.NoError(t, err)

	return token
}

func (env handlerTestEnv) createIngredient(t *testing.T, name, ingredientType string) *models.Ingredient {
	t.Helper()
	ingredient := &models.Ingredient{Name: name, IngredientType: ingredientType}
	require.NoError(t, env.db.Create(ingredient).Error)
	return ingredient
}

// request performs an HTTP request against the test router. A non-empty token
// is sent as a bearer Authorization header; a nil payload sends no body.
func (env handlerTestEnv) request(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// requestWithHeader sends a bodyless request with a raw Authorization header.
func (env handlerTestEnv) requestWithHeader(t *testing.T, method, path, authorization string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestIndex(t *testing.T) {
	env := setupHandlerTestEnv(t)

	w := env.request(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Please reference API documentation to view supported endpoints", decodeBody(t, w)["message"])
}
