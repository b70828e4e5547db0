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

func (h *Handler) initProvincesRoutes(api *gin.RouterGroup) {
	provinces := api.Group("/provinces")
	provinces.GET("", h.getProvinces)
	provinces.POST("", h.createProvince)
	provinces.GET("/:id", h.getProvinceByID)
	provinces.PUT("/:id", h.updateProvince)
	provinces.DELETE("/:id", h.deleteProvince)
}

type provinceRequest struct {
	Name string `json:"name" binding:"required,refname,max=255"`
}

// @Summary List Provinces
// @Tags Provinces
// @Description List provinces, optionally filtered by a name substring
// @Accept  json
// @Produce  json
// @Param search query string false "name substring filter"
// @Success 200 {object} []domain.Province
// @Failure 500 {object} ErrorStruct
// @Router /provinces [get]
func (h *Handler) getProvinces(c *gin.Context) {
	provinces, err := h.services.Provinces.GetAll(c.Request.Context(), c.Query("search"))
	if err != nil {
		logger.Error("list provinces failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, provinces)
}

// @Summary Create Province
// @Tags Provinces
// @Description Create a province with a globally unique name
// @Accept  json
// @Produce  json
// @Param input body provinceRequest true "province data"
// @Success 201 {object} domain.Province
// @Failure 400 {object} ValidationErrorStruct
// @Failure 409 {object} ErrorStruct
// @Router /provinces [post]
func (h *Handler) createProvince(c *gin.Context) {
	var req provinceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, http.StatusBadRequest, err)
		return
	}

	province, err := h.services.Provinces.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrProvinceNameTaken) {
			errorResponse(c, http.StatusConflict, ProvinceNameTakenCode)
			return
		}
		logger.Error("create province failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, province)
}

// @Summary Get Province
// @Tags Provinces
// @Produce  json
// @Param id path string true "province id"
// @Success 200 {object} domain.Province
// @Failure 404 {object} ErrorStruct
// @Router /provinces/{id} [get]
func (h *Handler) getProvinceByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid province id"})
		return
	}

	province, err := h.services.Provinces.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProvinceNotFound) {
			errorResponse(c, http.StatusNotFound, ProvinceNotFoundCode)
			return
		}
		logger.Error("get province failed", zap.Error(err), zap.String("province_id", id.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, province)
}

// @Summary Update Province
// @Tags Provinces
// @Description Rename a province; the new name must stay globally unique
// @Accept  json
// @Produce  json
// @Param id path string true "province id"
// @Param input body provinceRequest true "province data"
// @Success 200 {object} domain.Province
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Router /provinces/{id} [put]
func (h *Handler) updateProvince(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid province id"})
		return
	}

	var req provinceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, http.StatusBadRequest, err)
		return
	}

	province, err := h.services.Provinces.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProvinceNotFound):
			errorResponse(c, http.StatusNotFound, ProvinceNotFoundCode)
		case errors.Is(err, service.ErrProvinceNameTaken):
			errorResponse(c, http.StatusConflict, ProvinceNameTakenCode)
		default:
			logger.Error("update province failed", zap.Error(err), zap.String("province_id", id.String()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, province)
}

// @Summary Delete Province
// @Tags Provinces
// @Description Delete a province and, atomically, all its cities
// @Produce  json
// @Param id path string true "province id"
// @Success 204
// @Failure 404 {object} ErrorStruct
// @Router /provinces/{id} [delete]
func (h *Handler) deleteProvince(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid province id"})
		return
	}

	if err := h.services.Provinces.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProvinceNotFound) {
			errorResponse(c, http.StatusNotFound, ProvinceNotFoundCode)
			return
		}
		logger.Error("delete province failed", zap.Error(err), zap.String("province_id", id.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}
