package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/canref/backend/internal/service"
	"github.com/canref/backend/pkg/logger"
)

func (h *Handler) initCitiesRoutes(api *gin.RouterGroup) {
	cities := api.Group("/cities")
	cities.GET("", h.getCities)
	cities.POST("", h.createCity)
	cities.GET("/check-name", h.checkCityName)
	cities.POST("/bulk-delete", h.bulkDeleteCities)
	cities.GET("/:id", h.getCityByID)
	cities.PUT("/:id", h.updateCity)
	cities.DELETE("/:id", h.deleteCity)
}

type cityRequest struct {
	ProvinceID string `json:"province_id" binding:"required,uuid"`
	Name       string `json:"name" binding:"required,refname,max=255"`
}

type bulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}

// @Summary List Cities
// @Tags Cities
// @Description List cities annotated with their province's name, optionally filtered by province
// @Produce  json
// @Param province_id query string false "filter by owning province"
// @Success 200 {object} []domain.CityWithProvince
// @Failure 500 {object} ErrorStruct
// @Router /cities [get]
func (h *Handler) getCities(c *gin.Context) {
	var provinceID *uuid.UUID
	if raw := c.Query("province_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid province_id"})
			return
		}
		provinceID = &id
	}

	cities, err := h.services.Cities.GetAll(c.Request.Context(), provinceID)
	if err != nil {
		logger.Error("list cities failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, cities)
}

// @Summary Create City
// @Tags Cities
// @Description Create a city; its name must be unique within the owning province
// @Accept  json
// @Produce  json
// @Param input body cityRequest true "city data"
// @Success 201 {object} domain.City
// @Failure 400 {object} ValidationErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 422 {object} ErrorStruct
// @Router /cities [post]
func (h *Handler) createCity(c *gin.Context) {
	var req cityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, http.StatusBadRequest, err)
		return
	}
	provinceID := uuid.MustParse(req.ProvinceID)

	city, err := h.services.Cities.Create(c.Request.Context(), provinceID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCityNameTaken):
			errorResponse(c, http.StatusConflict, CityNameTakenCode)
		case errors.Is(err, service.ErrProvinceMissing):
			errorResponse(c, http.StatusUnprocessableEntity, ProvinceReferenceInvalidCode)
		default:
			logger.Error("create city failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, city)
}

// @Summary Check City Name
// @Tags Cities
// @Description Pre-submission collision check for the admin form: reports whether (province_id, name) is already taken
// @Produce  json
// @Param province_id query string true "proposed owning province"
// @Param name query string true "proposed city name"
// @Param exclude_id query string false "city id to ignore when editing"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorStruct
// @Router /cities/check-name [get]
func (h *Handler) checkCityName(c *gin.Context) {
	provinceID, err := uuid.Parse(c.Query("province_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid province_id"})
		return
	}
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	var excludeID *uuid.UUID
	if raw := c.Query("exclude_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exclude_id"})
			return
		}
		excludeID = &id
	}

	taken, err := h.services.Cities.NameTaken(c.Request.Context(), provinceID, name, excludeID)
	if err != nil {
		logger.Error("city name check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"taken": taken})
}

// @Summary Get City
// @Tags Cities
// @Produce  json
// @Param id path string true "city id"
// @Success 200 {object} domain.City
// @Failure 404 {object} ErrorStruct
// @Router /cities/{id} [get]
func (h *Handler) getCityByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid city id"})
		return
	}

	city, err := h.services.Cities.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCityNotFound) {
			errorResponse(c, http.StatusNotFound, CityNotFoundCode)
			return
		}
		logger.Error("get city failed", zap.Error(err), zap.String("city_id", id.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, city)
}

// @Summary Update City
// @Tags Cities
// @Description Rename a city or move it to another province; uniqueness is checked against the proposed province
// @Accept  json
// @Produce  json
// @Param id path string true "city id"
// @Param input body cityRequest true "city data"
// @Success 200 {object} domain.City
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 422 {object} ErrorStruct
// @Router /cities/{id} [put]
func (h *Handler) updateCity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid city id"})
		return
	}

	var req cityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, http.StatusBadRequest, err)
		return
	}
	provinceID := uuid.MustParse(req.ProvinceID)

	city, err := h.services.Cities.Update(c.Request.Context(), id, provinceID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCityNotFound):
			errorResponse(c, http.StatusNotFound, CityNotFoundCode)
		case errors.Is(err, service.ErrCityNameTaken):
			errorResponse(c, http.StatusConflict, CityNameTakenCode)
		case errors.Is(err, service.ErrProvinceMissing):
			errorResponse(c, http.StatusUnprocessableEntity, ProvinceReferenceInvalidCode)
		default:
			logger.Error("update city failed", zap.Error(err), zap.String("city_id", id.String()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, city)
}

// @Summary Delete City
// @Tags Cities
// @Produce  json
// @Param id path string true "city id"
// @Success 204
// @Failure 404 {object} ErrorStruct
// @Router /cities/{id} [delete]
func (h *Handler) deleteCity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid city id"})
		return
	}

	if err := h.services.Cities.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCityNotFound) {
			errorResponse(c, http.StatusNotFound, CityNotFoundCode)
			return
		}
		logger.Error("delete city failed", zap.Error(err), zap.String("city_id", id.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Bulk Delete Cities
// @Tags Cities
// @Description Delete a selection of cities in one call
// @Accept  json
// @Produce  json
// @Param input body bulkDeleteRequest true "city ids"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} ValidationErrorStruct
// @Router /cities/bulk-delete [post]
func (h *Handler) bulkDeleteCities(c *gin.Context) {
	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, http.StatusBadRequest, err)
		return
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		ids = append(ids, uuid.MustParse(raw))
	}

	deleted, err := h.services.Cities.DeleteMany(c.Request.Context(), ids)
	if err != nil {
		logger.Error("bulk delete cities failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
