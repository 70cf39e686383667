// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/motorinci/motorinci-api/internal/config"
	"github.com/motorinci/motorinci-api/internal/handlers"
	"github.com/motorinci/motorinci-api/internal/middleware"
	"github.com/motorinci/motorinci-api/internal/services"
	"github.com/motorinci/motorinci-api/internal/utils"
)

// Initialize wires services, handlers and routes into a ready http.Handler.
// The returned handler honors _method form overrides before dispatch.
func Initialize(db *gorm.DB, cfg *config.Config) http.Handler {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)
	authService := services.NewAuthService(db, cfg)
	brandService := services.NewBrandService(db, storageService)
	categoryService := services.NewCategoryService(db, storageService)
	colorService := services.NewColorService(db, storageService)
	featureService := services.NewFeatureService(db, storageService)
	specificationService := services.NewSpecificationService(db)
	motorService := services.NewMotorService(db, storageService)
	motorImageService := services.NewMotorImageService(db, storageService)
	reviewService := services.NewReviewService(db)
	ingestionService := services.NewIngestionService(db, cfg)
	searcher := services.NewGoogleImageSearcher(cfg.Google.APIKey, cfg.Google.SearchCX, time.Duration(cfg.Google.RequestTimeout)*time.Second)
	discoveryService := services.NewImageDiscoveryService(db, storageService, searcher, cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	brandHandler := handlers.NewBrandHandler(brandService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	colorHandler := handlers.NewColorHandler(colorService)
	featureHandler := handlers.NewFeatureHandler(featureService)
	specificationHandler := handlers.NewSpecificationHandler(specificationService)
	motorHandler := handlers.NewMotorHandler(motorService)
	motorImageHandler := handlers.NewMotorImageHandler(motorImageService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	generationHandler := handlers.NewGenerationHandler(ingestionService, discoveryService)
	webhookHandler := handlers.NewWebhookHandler(cfg)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api")
	{
		// Public routes
		api.POST("/login", middleware.AuthRateLimit(), authHandler.Login)
		api.POST("/webhook/deploy", webhookHandler.Deploy)

		generate := api.Group("")
		generate.Use(middleware.GenerationRateLimit())
		{
			generate.GET("/motorinci-generate", generationHandler.GenerateGemini)
			generate.GET("/motorinci-gen/:id", generationHandler.GenerateOpenRouter)
			generate.GET("/motorinci-generate-image", generationHandler.DiscoverImages)
		}

		// Authenticated catalog routes
		motorinci := api.Group("/motorinci")
		motorinci.Use(middleware.AuthRequired())
		{
			motorinci.GET("/me", authHandler.Me)

			registerCRUD(motorinci, "categories", categoryHandler.List, categoryHandler.Get, categoryHandler.Create, categoryHandler.Update, categoryHandler.Delete)
			registerCRUD(motorinci, "brands", brandHandler.List, brandHandler.Get, brandHandler.Create, brandHandler.Update, brandHandler.Delete)
			registerCRUD(motorinci, "colors", colorHandler.List, colorHandler.Get, colorHandler.Create, colorHandler.Update, colorHandler.Delete)
			registerCRUD(motorinci, "features", featureHandler.List, featureHandler.Get, featureHandler.Create, featureHandler.Update, featureHandler.Delete)
			registerCRUD(motorinci, "specification-groups", specificationHandler.ListGroups, specificationHandler.GetGroup, specificationHandler.CreateGroup, specificationHandler.UpdateGroup, specificationHandler.DeleteGroup)
			registerCRUD(motorinci, "specification-items", specificationHandler.ListItems, specificationHandler.GetItem, specificationHandler.CreateItem, specificationHandler.UpdateItem, specificationHandler.DeleteItem)
			registerCRUD(motorinci, "motors", motorHandler.List, motorHandler.Get, motorHandler.Create, motorHandler.Update, motorHandler.Delete)
			registerCRUD(motorinci, "available-colors", colorHandler.ListAvailable, colorHandler.GetAvailable, colorHandler.CreateAvailable, colorHandler.UpdateAvailable, colorHandler.DeleteAvailable)
			registerCRUD(motorinci, "motor-features", featureHandler.ListMotorFeatures, featureHandler.GetMotorFeature, featureHandler.CreateMotorFeature, featureHandler.UpdateMotorFeature, featureHandler.DeleteMotorFeature)
			registerCRUD(motorinci, "motor-images", motorImageHandler.List, motorImageHandler.Get, motorImageHandler.Create, motorImageHandler.Update, motorImageHandler.Delete)
			registerCRUD(motorinci, "motor-specifications", specificationHandler.ListMotorSpecifications, specificationHandler.GetMotorSpecification, specificationHandler.CreateMotorSpecification, specificationHandler.UpdateMotorSpecification, specificationHandler.DeleteMotorSpecification)
			registerCRUD(motorinci, "reviews", reviewHandler.List, reviewHandler.Get, reviewHandler.Create, reviewHandler.Update, reviewHandler.Delete)

			motorinci.GET("/search-motors", motorHandler.Search)
			motorinci.GET("/motors/random", motorHandler.Random)
			motorinci.GET("/compare/:id/:id2", motorHandler.Compare)
			motorinci.GET("/front/home", motorHandler.FrontHome)
			motorinci.GET("/brands/:id/motors", brandHandler.Motors)
			motorinci.GET("/categories/:id/motors", categoryHandler.Motors)

			ai := motorinci.Group("")
			ai.Use(middleware.GenerationRateLimit())
			{
				ai.POST("/ai", generationHandler.FreePrompt)
				ai.POST("/generate", generationHandler.Generate)
			}
			motorinci.POST("/generation-tasks", generationHandler.EnqueueTask)
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", cfg.Storage.LocalPath)
	}

	return middleware.MethodOverride(r)
}

func registerCRUD(g *gin.RouterGroup, resource string, list, get, create, update, remove gin.HandlerFunc) {
	g.GET("/"+resource, list)
	g.GET("/"+resource+"/:id", get)
	g.POST("/"+resource, create)
	g.PUT("/"+resource+"/:id", update)
	g.PATCH("/"+resource+"/:id", update)
	g.DELETE("/"+resource+"/:id", remove)
}
