package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hospital-api/internal/responses"
	"hospital-api/internal/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Get handles GET /stats.
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.statsService.Collect(c.Request.Context())
	if err != nil {
		responses.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
