package v1

import (
	"github.com/canref/backend/internal/config"
	"github.com/canref/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// @title Reference Data Admin API
// @version 1.0
// @description Administrative API for province/city reference data

// @BasePath /api/v1

type Handler struct {
	services *service.Services
	config   *config.Config
}

func NewHandler(services *service.Services, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initProvincesRoutes(v1)
	h.initCitiesRoutes(v1)
	h.initSchemaRoutes(v1)
	h.initStatsRoutes(v1)
}
