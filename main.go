package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"assessment-service/internal/cache"
	"assessment-service/internal/config"
	"assessment-service/internal/db"
	"assessment-service/internal/event"
	"assessment-service/internal/handlers"
	"assessment-service/internal/repository"
	"assessment-service/internal/service"
	"assessment-service/pkg/discovery"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	if cfg.MongoDB.URI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(cfg.MongoDB.URI)
	defer db.Disconnect()

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	// Redis-backed catalog cache, optional
	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	} else {
		log.Println("Redis not configured, catalog cache disabled")
	}
	catalogCache := cache.NewCatalogCache(redisClient, cfg.Redis.CatalogTTL)

	// Consul service registration, optional
	if cfg.Consul.Enabled {
		registry, err := discovery.NewServiceRegistry(cfg)
		if err != nil {
			log.Fatalf("Failed to create Consul registry: %v", err)
		}
		if err := registry.Register(); err != nil {
			log.Fatalf("Failed to register with Consul: %v", err)
		}
		defer registry.Deregister()
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.MongoDB.Database)

	// Catalog: questions and profiles
	questionRepo := repository.NewQuestionRepository(database)
	profileRepo := repository.NewProfileRepository(database)
	catalogService := service.NewCatalogService(questionRepo, profileRepo, catalogCache)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Individual assessments
	scoringConfig := service.BuildScoringConfig(cfg.Scoring)
	resultRepo := repository.NewResultRepository(database)
	assessmentService := service.NewAssessmentService(resultRepo, catalogService, scoringConfig)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)

	// Couple analysis
	coupleRepo := repository.NewCoupleRepository(database)
	coupleService := service.NewCoupleService(coupleRepo, assessmentService, scoringConfig)
	coupleHandler := handlers.NewCoupleHandler(coupleService)

	// Legacy batch import
	importService := service.NewImportService(assessmentService, cfg.Scoring.ImportWorkers)
	importHandler := handlers.NewImportHandler(importService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	publicCatalog := r.Group("/public/assessment/catalog")
	{
		publicCatalog.GET("/questions", catalogHandler.ListQuestions)
		publicCatalog.GET("/questions/:id", catalogHandler.GetQuestion)
		publicCatalog.GET("/profiles", catalogHandler.ListProfiles)
	}

	publicAssessment := r.Group("/public/assessment")
	{
		publicAssessment.POST("/submit", func(c *gin.Context) {
			assessmentHandler.SubmitAssessment(c)
			if publisher != nil {
				publisher.Publish(event.AssessmentScored, gin.H{
					"timestamp": time.Now(),
				})
			}
		})
		publicAssessment.POST("/couple/submit", func(c *gin.Context) {
			coupleHandler.SubmitCouple(c)
			if publisher != nil {
				publisher.Publish(event.CoupleAnalyzed, gin.H{
					"timestamp": time.Now(),
				})
			}
		})
	}

	setupProtectedRoutes(r, assessmentHandler, coupleHandler, catalogHandler, importHandler, publisher)

	r.Run(":" + cfg.Server.Port)
}

func setupProtectedRoutes(
	r *gin.Engine,
	assessmentHandler *handlers.AssessmentHandler,
	coupleHandler *handlers.CoupleHandler,
	catalogHandler *handlers.CatalogHandler,
	importHandler *handlers.ImportHandler,
	publisher *event.EventPublisher,
) {
	protected := r.Group("/protected/assessment")

	protected.Use(func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	})

	{
		protected.GET("/result/:id", assessmentHandler.GetResult)
		protected.GET("/results", assessmentHandler.GetResultsByEmail)
		protected.GET("/couple/result/:id", coupleHandler.GetCoupleResult)
		protected.GET("/couple/results", coupleHandler.GetCoupleResultsByEmail)

		protected.POST("/import", func(c *gin.Context) {
			importHandler.ImportBatch(c)
			if publisher != nil {
				publisher.Publish(event.ImportCompleted, gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
	}

	protectedCatalog := r.Group("/protected/assessment/catalog")
	protectedCatalog.Use(func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	})

	{
		protectedCatalog.POST("/questions", withCatalogEvent(catalogHandler.CreateQuestion, publisher))
		protectedCatalog.PUT("/questions/:id", withCatalogEvent(catalogHandler.UpdateQuestion, publisher))
		protectedCatalog.DELETE("/questions/:id", withCatalogEvent(catalogHandler.DeleteQuestion, publisher))
		protectedCatalog.POST("/profiles", withCatalogEvent(catalogHandler.CreateProfile, publisher))
		protectedCatalog.PUT("/profiles/:id", withCatalogEvent(catalogHandler.UpdateProfile, publisher))
		protectedCatalog.DELETE("/profiles/:id", withCatalogEvent(catalogHandler.DeleteProfile, publisher))
	}
}

func withCatalogEvent(handler gin.HandlerFunc, publisher *event.EventPublisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		handler(c)
		if publisher != nil {
			publisher.Publish(event.CatalogChanged, gin.H{
				"path":      c.Request.URL.Path,
				"method":    c.Request.Method,
				"timestamp": time.Now(),
			})
		}
	}
}
