package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/emreglvibecoder/darth-vader-api/internal/config"
	"github.com/emreglvibecoder/darth-vader-api/internal/constants"
	"github.com/emreglvibecoder/darth-vader-api/internal/handlers"
	"github.com/emreglvibecoder/darth-vader-api/internal/middleware"
	"github.com/emreglvibecoder/darth-vader-api/internal/repository"
	"github.com/emreglvibecoder/darth-vader-api/internal/services"
	"github.com/emreglvibecoder/darth-vader-api/internal/validation"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Dependencies are the process-wide handles the router wires together.
// HTTPClient and Scorer default to http.DefaultClient and the VADER scorer.
type Dependencies struct {
	Config     *config.Config
	Logger     *logrus.Logger
	DB         *gorm.DB
	HTTPClient services.HTTPDoer
	Scorer     services.PolarityScorer
}

// New builds the gin engine with every route registered.
func New(deps Dependencies) (*gin.Engine, error) {
	cfg := deps.Config

	tokens, err := services.NewTokenIssuer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to configure tokens: %w", err)
	}

	httpClient := deps.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	scorer := deps.Scorer
	if scorer == nil {
		scorer = services.NewVaderScorer()
	}

	validation.Init()

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(deps.DB)
	taskRepo := repository.NewTaskRepository(deps.DB)

	authService := services.NewAuthService(userRepo, tokens)
	taskService := services.NewTaskService(taskRepo)
	sentimentService := services.NewSentimentService(scorer)
	currencyService := services.NewCurrencyService(httpClient, cfg.RateAPIURL)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, deps.Logger)
	taskHandler := handlers.NewTaskHandler(taskService, deps.Logger)
	analysisHandler := handlers.NewAnalysisHandler(sentimentService, currencyService, deps.Logger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		corsCfg.AllowOrigins = origins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.GinMode == gin.ReleaseMode,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.GET("/", handlers.Root)
	r.GET("/health", handlers.Health)

	// Auth routes (public)
	r.POST("/register", authHandler.Register)
	r.POST("/token", authHandler.Token)

	// Task routes (protected)
	tasks := r.Group("")
	tasks.Use(middleware.RequireAuth(authService, deps.Logger))
	{
		tasks.POST("/ekle", taskHandler.CreateTask)
		tasks.GET("/listele", taskHandler.ListTasks)
	}

	// Analysis routes (public)
	r.GET("/analiz/:text", analysisHandler.Sentiment)
	r.GET("/doviz-hesapla/:amount", analysisHandler.ConvertCurrency)

	return r, nil
}
