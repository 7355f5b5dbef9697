package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/kcalsnap/backend/internal/model"
	"github.com/pageza/kcalsnap/backend/internal/service"
)

type LogHandler struct {
	logService *service.LogService
}

func NewLogHandler(logService *service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

func (h *LogHandler) RegisterRoutes(router *gin.RouterGroup) {
	logs := router.Group("/logs")
	{
		logs.GET("", h.ListLogs)
		logs.GET("/:date", h.GetLog)
		logs.PUT("/:date/targets", h.UpdateTargets)
	}
}

// GetLog returns the log for a YYYY-MM-DD date, or for the current local
// day when the path segment is "today". Reads never create rows.
func (h *LogHandler) GetLog(c *gin.Context) {
	day, ok := h.resolveDay(c)
	if !ok {
		return
	}

	dayLog, err := h.logService.GetLogByDate(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch daily log"})
		return
	}
	c.JSON(http.StatusOK, dayLog)
}

func (h *LogHandler) ListLogs(c *gin.Context) {
	from, err := time.ParseInLocation("2006-01-02", c.Query("from"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be a YYYY-MM-DD date"})
		return
	}
	to, err := time.ParseInLocation("2006-01-02", c.Query("to"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be a YYYY-MM-DD date"})
		return
	}

	logs, err := h.logService.ListLogs(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch daily logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func (h *LogHandler) UpdateTargets(c *gin.Context) {
	day, ok := h.resolveDay(c)
	if !ok {
		return
	}

	var targets model.NutritionTargets
	if err := c.ShouldBindJSON(&targets); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dayLog, err := h.logService.UpdateDailyTargets(c.Request.Context(), day, targets)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update targets"})
		return
	}
	c.JSON(http.StatusOK, dayLog)
}

func (h *LogHandler) resolveDay(c *gin.Context) (time.Time, bool) {
	dateStr := c.Param("date")
	if dateStr == "today" {
		return time.Now(), true
	}
	day, err := service.ParseDateKey(dateStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD or 'today'"})
		return time.Time{}, false
	}
	return day, true
}
