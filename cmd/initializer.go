package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"aqarBack/internal/cache"
	"aqarBack/internal/config"
	"aqarBack/internal/handlers"
	"aqarBack/internal/repositories"
	"aqarBack/internal/services"
	"aqarBack/utils"
)

type application struct {
	errorLog          *log.Logger
	infoLog           *log.Logger
	db                *sql.DB
	userRepo          *repositories.UserRepository
	userHandler       *handlers.UserHandler
	propertyHandler   *handlers.PropertyHandler
	imageHandler      *handlers.ImageHandler
	inquiryHandler    *handlers.InquiryHandler
	predictionHandler *handlers.PredictionHandler
}

func initializeApp(db *sql.DB, redisClient *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	propertyRepo := repositories.PropertyRepository{DB: db}
	imageRepo := repositories.PropertyImageRepository{DB: db}
	modelRepo := repositories.PropertyModelRepository{DB: db}
	inquiryRepo := repositories.InquiryRepository{DB: db}

	searchCache := cache.NewSearchCache(redisClient, 2*time.Minute)

	tokenManager, err := utils.NewManager(signingSecret())
	if err != nil {
		errorLog.Fatal(err)
	}

	// Services
	userService := &services.UserService{UserRepo: &userRepo, TokenManager: tokenManager}
	propertyService := &services.PropertyService{
		PropertyRepo: &propertyRepo,
		ImageRepo:    &imageRepo,
		ModelRepo:    &modelRepo,
		SearchCache:  searchCache,
	}
	inquiryService := &services.InquiryService{InquiryRepo: &inquiryRepo, PropertyRepo: &propertyRepo}
	predictionService := &services.PredictionService{
		Client: services.NewPredictionClient(nil, cfg.Prediction.URL),
	}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	propertyHandler := &handlers.PropertyHandler{Service: propertyService}
	imageHandler := &handlers.ImageHandler{
		ImageRepo:       &imageRepo,
		ModelRepo:       &modelRepo,
		PropertyService: propertyService,
	}
	inquiryHandler := &handlers.InquiryHandler{Service: inquiryService, PropertyService: propertyService}
	predictionHandler := &handlers.PredictionHandler{Service: predictionService}

	return &application{
		errorLog:          errorLog,
		infoLog:           infoLog,
		db:                db,
		userRepo:          &userRepo,
		userHandler:       userHandler,
		propertyHandler:   propertyHandler,
		imageHandler:      imageHandler,
		inquiryHandler:    inquiryHandler,
		predictionHandler: predictionHandler,
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func signingSecret() string {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		return v
	}
	return "aqar-dev-secret"
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
