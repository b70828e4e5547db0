package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canref/backend/internal/domain"
)

func (h *Handler) initSchemaRoutes(api *gin.RouterGroup) {
	schema := api.Group("/schema")
	schema.GET("/provinces", h.getProvinceSchema)
	schema.GET("/cities", h.getCitySchema)
}

// @Summary Province Form Schema
// @Tags Schema
// @Description Declarative field/rule descriptors the admin UI renders its province form from
// @Produce  json
// @Success 200 {object} domain.FormSchema
// @Router /schema/provinces [get]
func (h *Handler) getProvinceSchema(c *gin.Context) {
	c.JSON(http.StatusOK, domain.ProvinceFormSchema())
}

// @Summary City Form Schema
// @Tags Schema
// @Produce  json
// @Success 200 {object} domain.FormSchema
// @Router /schema/cities [get]
func (h *Handler) getCitySchema(c *gin.Context) {
	c.JSON(http.StatusOK, domain.CityFormSchema())
}
