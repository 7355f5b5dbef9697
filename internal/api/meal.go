package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pageza/kcalsnap/backend/internal/model"
	"github.com/pageza/kcalsnap/backend/internal/service"
)

type MealHandler struct {
	intakeService *service.IntakeService
	logService    *service.LogService
}

func NewMealHandler(intakeService *service.IntakeService, logService *service.LogService) *MealHandler {
	return &MealHandler{
		intakeService: intakeService,
		logService:    logService,
	}
}

func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		meals.POST("", h.CreateMeal)
		meals.POST("/resolve", h.ResolveCandidates)
		meals.DELETE("/:id", h.DeleteMeal)
	}
}

type createMealRequest struct {
	Type  string                 `json:"type"`
	AteAt time.Time              `json:"ate_at"`
	Items []service.RawCandidate `json:"items" binding:"required"`
}

// CreateMeal resolves the submitted candidates (recomputing nutrients
// for anything the catalog knows) and commits the meal to its day's log.
func (h *MealHandler) CreateMeal(c *gin.Context) {
	var req createMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := h.intakeService.ResolveAll(req.Items)
	if err != nil {
		c.JSON(candidateErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	meal := &model.Meal{
		Type:  req.Type,
		AteAt: req.AteAt,
		Items: items,
	}
	saved, err := h.logService.SaveMeal(c.Request.Context(), meal)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMeal) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save meal"})
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// ResolveCandidates previews resolution without persisting anything.
// This is the confirm-before-save step of the entry flow.
func (h *MealHandler) ResolveCandidates(c *gin.Context) {
	var raws []service.RawCandidate
	if err := c.ShouldBindJSON(&raws); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := h.intakeService.ResolveAll(raws)
	if err != nil {
		c.JSON(candidateErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *MealHandler) DeleteMeal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := h.logService.DeleteMeal(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Meal deleted successfully",
		"id":      id.String(),
	})
}

func candidateErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrUnresolvedCandidate),
		errors.Is(err, service.ErrInvalidPortion):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrFoodNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
