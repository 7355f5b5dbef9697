package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pageza/kcalsnap/backend/internal/catalog"
	"github.com/pageza/kcalsnap/backend/internal/service"
)

type FoodHandler struct {
	catalog       *catalog.Catalog
	searchService *service.SearchService
	calcService   *service.CalculatorService
}

func NewFoodHandler(cat *catalog.Catalog, searchService *service.SearchService, calcService *service.CalculatorService) *FoodHandler {
	return &FoodHandler{
		catalog:       cat,
		searchService: searchService,
		calcService:   calcService,
	}
}

func (h *FoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	foods := router.Group("/foods")
	{
		foods.GET("/search", h.SearchFoods)
		foods.GET("/:id", h.GetFood)
		foods.GET("/:id/nutrients", h.CalculateNutrients)
	}
}

func (h *FoodHandler) SearchFoods(c *gin.Context) {
	results := h.searchService.Search(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"foods": results})
}

func (h *FoodHandler) GetFood(c *gin.Context) {
	item, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// CalculateNutrients returns the verified breakdown for ?grams= of the
// food, defaulting to the catalog portion when grams is omitted.
func (h *FoodHandler) CalculateNutrients(c *gin.Context) {
	item, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
		return
	}

	grams := item.DefaultPortionGrams
	if raw := c.Query("grams"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "grams must be a number"})
			return
		}
		grams = parsed
	}

	nutrients, err := h.calcService.Calculate(item.ID, grams)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrInvalidPortion):
			status = http.StatusBadRequest
		case errors.Is(err, service.ErrFoodNotFound):
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"food_id":   item.ID,
		"grams":     grams,
		"nutrients": nutrients,
	})
}
