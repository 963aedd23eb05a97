package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/summer0102/real-estate-showcase/config"
	"github.com/summer0102/real-estate-showcase/handlers"
	"github.com/summer0102/real-estate-showcase/logger"
	"github.com/summer0102/real-estate-showcase/middleware"
	"github.com/summer0102/real-estate-showcase/prometheus"
	"github.com/summer0102/real-estate-showcase/routes"
	"github.com/summer0102/real-estate-showcase/services"
	"github.com/summer0102/real-estate-showcase/storage"
	"github.com/summer0102/real-estate-showcase/utils"
)

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func sessionMaxAge() time.Duration {
	hours := 24
	if v := os.Getenv("SESSION_MAX_AGE_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			hours = n
		}
	}
	return time.Duration(hours) * time.Hour
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	zlog := logger.Get()
	defer zlog.Sync()

	config.ConnectDB()
	utils.InitRedis()
	prometheus.InitMetrics()

	imageStore, err := storage.NewImageStore()
	if err != nil {
		zlog.Fatal("image store init failed", zap.Error(err))
	}

	collectionName := os.Getenv("MONGODB_COLLECTION_PROPERTIES")
	if collectionName == "" {
		collectionName = "properties"
	}
	collection := config.GetCollection(collectionName)

	propertySvc := services.NewPropertyService(collection)
	sessions := services.NewSessionStore(services.NewRedisSessionKV(utils.RedisClient), sessionMaxAge())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	services.VerifySetup(ctx, collection, imageStore, zlog)
	cancel()

	e := echo.New()
	e.Validator = &requestValidator{validate: validator.New()}

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.MetricsMiddleware)

	pc := handlers.NewPropertyControllerWithService(propertySvc)
	ac := handlers.NewAdminController(propertySvc, sessions, imageStore)
	routes.RegisterRoutes(e, pc, ac, sessions)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
