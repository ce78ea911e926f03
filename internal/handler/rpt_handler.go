package handler

import (
	"net/http"

	"revenue/internal/service"
	"revenue/pkg/response"

	"github.com/gin-gonic/gin"
)

type RPTConfigHandler struct {
	rptService service.RPTConfigService
}

func NewRPTConfigHandler(rptService service.RPTConfigService) *RPTConfigHandler {
	return &RPTConfigHandler{rptService: rptService}
}

func (h *RPTConfigHandler) RegisterRoutes(router *gin.RouterGroup) {
	rpt := router.Group("/api/rpt")
	{
		land := rpt.Group("/land-configurations")
		land.GET("", h.ListLandConfigs)
		land.POST("", h.CreateLandConfig)
		land.PUT("/:id", h.UpdateLandConfig)
		land.PATCH("/:id", h.PatchLandConfig)
		land.POST("/:id/expire", h.ExpireLandConfig)
		land.DELETE("/:id", h.DeleteLandConfig)

		property := rpt.Group("/property-configurations")
		property.GET("", h.ListPropertyConfigs)
		property.POST("", h.CreatePropertyConfig)
		property.PUT("/:id", h.UpdatePropertyConfig)
		property.PATCH("/:id", h.PatchPropertyConfig)
		property.POST("/:id/expire", h.ExpirePropertyConfig)
		property.DELETE("/:id", h.DeletePropertyConfig)

		tax := rpt.Group("/tax-configurations")
		tax.GET("", h.ListRPTTaxConfigs)
		tax.GET("/active", h.GetActiveRPTTaxRate)
		tax.POST("", h.CreateRPTTaxConfig)
		tax.PUT("/:id", h.UpdateRPTTaxConfig)
		tax.PATCH("/:id", h.PatchRPTTaxConfig)
		tax.POST("/:id/expire", h.ExpireRPTTaxConfig)
		tax.DELETE("/:id", h.DeleteRPTTaxConfig)
	}
}

// --- Land ---

// ListLandConfigs returns the land entries applicable on current_date (default today)
func (h *RPTConfigHandler) ListLandConfigs(c *gin.Context) {
	configs, err := h.rptService.ListLandConfigs(c.Request.Context(), c.Query("current_date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, configs))
}

// CreateLandConfig creates a new land assessment entry
func (h *RPTConfigHandler) CreateLandConfig(c *gin.Context) {
	var req service.CreateLandConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	config, err := h.rptService.CreateLandConfig(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, config))
}

// UpdateLandConfig replaces every mutable field of a land entry
func (h *RPTConfigHandler) UpdateLandConfig(c *gin.Context) {
	var req service.CreateLandConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	config, err := h.rptService.UpdateLandConfig(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, config))
}

// PatchLandConfig applies an allow-listed partial update
func (h *RPTConfigHandler) PatchLandConfig(c *gin.Context) {
	var req service.PatchLandConfigRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	config, err := h.rptService.PatchLandConfig(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, config))
}

// ExpireLandConfig retires a land entry as of today
func (h *RPTConfigHandler) ExpireLandConfig(c *gin.Context) {
	config, err := h.rptService.ExpireLandConfig(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, config))
}

// DeleteLandConfig hard-removes a land entry
func (h *RPTConfigHandler) DeleteLandConfig(c *gin.Context) {
	if err := h.rptService.DeleteLandConfig(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Land configuration deleted successfully"}))
}

// --- Property ---

// ListPropertyConfigs returns the property entries applicable on current_date (default today)
func (h *RPTConfigHandler) ListPropertyConfigs(c *gin.Context) {
	configs, err := h.rptService.ListPropertyConfigs(c.Request.Context(), c.Query("current_date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, configs))
}

// CreatePropertyConfig creates a new property assessment entry
func (h *RPTConfigHandler) CreatePropertyConfig(c *gin.Context) {
	var req service.CreatePropertyConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	config, err := h.rptService.CreatePropertyConfig(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, config))
}

// UpdatePropertyConfig replaces every mutable field of a property entry
func (h *RPTConfigHandler) UpdatePropertyConfig(c *gin.Context) {
	var req service.CreatePropertyConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	config, err := h.rptService.UpdatePropertyConfig(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, config))
}

// PatchPropertyConfig applies an allow-listed partial update
func (h *RPTConfigHandler) PatchPropertyConfig(c *gin.Context) {
	var req service.PatchPropertyConfigRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	config, err := h.rptService.PatchPropertyConfig(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, config))
}

// ExpirePropertyConfig retires a property entry as of today
func (h *RPTConfigHandler) ExpirePropertyConfig(c *gin.Context) {
	config, err := h.rptService.ExpirePropertyConfig(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, config))
}

// DeletePropertyConfig hard-removes a property entry
func (h *RPTConfigHandler) DeletePropertyConfig(c *gin.Context) {
	if err := h.rptService.DeletePropertyConfig(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Property configuration deleted successfully"}))
}

// --- RPT tax rates ---

// ListRPTTaxConfigs returns the tax rates applicable on current_date (default today)
func (h *RPTConfigHandler) ListRPTTaxConfigs(c *gin.Context) {
	configs, err := h.rptService.ListRPTTaxConfigs(c.Request.Context(), c.Query("current_date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, configs))
}

// GetActiveRPTTaxRate answers which rate applies for a tax name on a date
func (h *RPTConfigHandler) GetActiveRPTTaxRate(c *gin.Context) {
	rate, err := h.rptService.GetActiveRPTTaxRate(c.Request.Context(), c.Query("tax_name"), c.Query("current_date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rate))
}

// CreateRPTTaxConfig creates a new tax rate; overlapping intervals for the
// same tax name are rejected with 409
func (h *RPTConfigHandler) CreateRPTTaxConfig(c *gin.Context) {
	var req service.CreateRPTTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	config, err := h.rptService.CreateRPTTaxConfig(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, config))
}

// UpdateRPTTaxConfig replaces every mutable field of a tax rate
func (h *RPTConfigHandler) UpdateRPTTaxConfig(c *gin.Context) {
	var req service.CreateRPTTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	config, err := h.rptService.UpdateRPTTaxConfig(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, config))
}

// PatchRPTTaxConfig applies an allow-listed partial update
func (h *RPTConfigHandler) PatchRPTTaxConfig(c *gin.Context) {
	var req service.PatchRPTTaxRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	config, err := h.rptService.PatchRPTTaxConfig(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, config))
}

// ExpireRPTTaxConfig retires a tax rate as of today
func (h *RPTConfigHandler) ExpireRPTTaxConfig(c *gin.Context) {
	config, err := h.rptService.ExpireRPTTaxConfig(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, config))
}

// DeleteRPTTaxConfig hard-removes a tax rate
func (h *RPTConfigHandler) DeleteRPTTaxConfig(c *gin.Context) {
	if err := h.rptService.DeleteRPTTaxConfig(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Tax configuration deleted successfully"}))
}
