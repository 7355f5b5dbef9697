package api

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/pageza/kcalsnap/backend/internal/catalog"
	"github.com/pageza/kcalsnap/backend/internal/service"
	"gorm.io/gorm"
)

func SetupAPI(router *gin.Engine, db *gorm.DB, cat *catalog.Catalog, logger *log.Logger) {
	v1 := router.Group("/api/v1")
	{
		// Initialize services
		calcService := service.NewCalculatorService(cat, logger)
		searchService := service.NewSearchService(cat)
		intakeService := service.NewIntakeService(searchService, calcService)
		logService := service.NewLogService(db)
		profileService := service.NewProfileService(db)

		// Initialize handlers
		foodHandler := NewFoodHandler(cat, searchService, calcService)
		mealHandler := NewMealHandler(intakeService, logService)
		logHandler := NewLogHandler(logService)
		profileHandler := NewProfileHandler(profileService)

		// Register routes
		foodHandler.RegisterRoutes(v1)
		mealHandler.RegisterRoutes(v1)
		logHandler.RegisterRoutes(v1)
		profileHandler.RegisterRoutes(v1)
	}
}
