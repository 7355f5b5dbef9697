package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/kcalsnap/backend/internal/model"
	"github.com/pageza/kcalsnap/backend/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("/targets", h.GetTargets)
		profile.PUT("/targets", h.UpdateTargets)
	}
}

func (h *ProfileHandler) GetTargets(c *gin.Context) {
	targets, err := h.profileService.GetTargets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch targets"})
		return
	}
	c.JSON(http.StatusOK, targets)
}

func (h *ProfileHandler) UpdateTargets(c *gin.Context) {
	var targets model.NutritionTargets
	if err := c.ShouldBindJSON(&targets); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.UpdateTargets(c.Request.Context(), targets)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update targets"})
		return
	}
	c.JSON(http.StatusOK, profile.Targets)
}
