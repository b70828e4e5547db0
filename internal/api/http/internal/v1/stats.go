package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/canref/backend/pkg/logger"
)

func (h *Handler) initStatsRoutes(api *gin.RouterGroup) {
	api.GET("/stats", h.getStats)
}

// @Summary Entity Counts
// @Tags Stats
// @Description Province and city totals for the admin dashboard
// @Produce  json
// @Success 200 {object} service.EntityCounts
// @Failure 500 {object} ErrorStruct
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	counts, err := h.services.Stats.Counts(c.Request.Context())
	if err != nil {
		logger.Error("get stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, counts)
}
