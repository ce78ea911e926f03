package handler

import (
	"net/http"

	"revenue/internal/service"
	"revenue/pkg/response"

	"github.com/gin-gonic/gin"
)

type BusinessConfigHandler struct {
	businessService service.BusinessConfigService
}

func NewBusinessConfigHandler(businessService service.BusinessConfigService) *BusinessConfigHandler {
	return &BusinessConfigHandler{businessService: businessService}
}

func (h *BusinessConfigHandler) RegisterRoutes(router *gin.RouterGroup) {
	business := router.Group("/api/business")
	{
		tax := business.Group("/business-configurations")
		tax.GET("", h.ListBusinessTaxConfigs)
		tax.POST("", h.CreateBusinessTaxConfig)
		tax.PUT("/:id", h.UpdateBusinessTaxConfig)
		tax.PATCH("/:id", h.PatchBusinessTaxConfig)
		tax.POST("/:id/expire", h.ExpireBusinessTaxConfig)
		tax.DELETE("/:id", h.DeleteBusinessTaxConfig)

		fee := business.Group("/regulatory-configurations")
		fee.GET("", h.ListRegulatoryFees)
		fee.POST("", h.CreateRegulatoryFee)
		fee.PUT("/:id", h.UpdateRegulatoryFee)
		fee.PATCH("/:id", h.PatchRegulatoryFee)
		fee.POST("/:id/expire", h.ExpireRegulatoryFee)
		fee.DELETE("/:id", h.DeleteRegulatoryFee)
	}
}

// ListBusinessTaxConfigs returns the brackets applicable on current_date (default today)
func (h *BusinessConfigHandler) ListBusinessTaxConfigs(c *gin.Context) {
	configs, err := h.businessService.ListBusinessTaxConfigs(c.Request.Context(), c.Query("current_date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, configs))
}

// CreateBusinessTaxConfig creates a new bracket entry
func (h *BusinessConfigHandler) CreateBusinessTaxConfig(c *gin.Context) {
	var req service.CreateBusinessTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	config, err := h.businessService.CreateBusinessTaxConfig(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, config))
}

// UpdateBusinessTaxConfig replaces every mutable field of a bracket
func (h *BusinessConfigHandler) UpdateBusinessTaxConfig(c *gin.Context) {
	var req service.CreateBusinessTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	config, err := h.businessService.UpdateBusinessTaxConfig(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, config))
}

// PatchBusinessTaxConfig applies an allow-listed partial update
func (h *BusinessConfigHandler) PatchBusinessTaxConfig(c *gin.Context) {
	var req service.PatchBusinessTaxRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	config, err := h.businessService.PatchBusinessTaxConfig(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, config))
}

// ExpireBusinessTaxConfig retires a bracket as of today, keeping it for history
func (h *BusinessConfigHandler) ExpireBusinessTaxConfig(c *gin.Context) {
	config, err := h.businessService.ExpireBusinessTaxConfig(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, config))
}

// DeleteBusinessTaxConfig hard-removes a bracket
func (h *BusinessConfigHandler) DeleteBusinessTaxConfig(c *gin.Context) {
	if err := h.businessService.DeleteBusinessTaxConfig(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Business configuration deleted successfully"}))
}

// ListRegulatoryFees returns the fees applicable on current_date (default today)
func (h *BusinessConfigHandler) ListRegulatoryFees(c *gin.Context) {
	fees, err := h.businessService.ListRegulatoryFees(c.Request.Context(), c.Query("current_date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, fees))
}

// CreateRegulatoryFee creates a new fee entry
func (h *BusinessConfigHandler) CreateRegulatoryFee(c *gin.Context) {
	var req service.CreateRegulatoryFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	fee, err := h.businessService.CreateRegulatoryFee(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, fee))
}

// UpdateRegulatoryFee replaces every mutable field of a fee
func (h *BusinessConfigHandler) UpdateRegulatoryFee(c *gin.Context) {
	var req service.CreateRegulatoryFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	fee, err := h.businessService.UpdateRegulatoryFee(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, fee))
}

// PatchRegulatoryFee applies an allow-listed partial update
func (h *BusinessConfigHandler) PatchRegulatoryFee(c *gin.Context) {
	var req service.PatchRegulatoryFeeRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	fee, err := h.businessService.PatchRegulatoryFee(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, fee))
}

// ExpireRegulatoryFee retires a fee as of today, keeping it for history
func (h *BusinessConfigHandler) ExpireRegulatoryFee(c *gin.Context) {
	fee, err := h.businessService.ExpireRegulatoryFee(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, fee))
}

// DeleteRegulatoryFee hard-removes a fee
func (h *BusinessConfigHandler) DeleteRegulatoryFee(c *gin.Context) {
	if err := h.businessService.DeleteRegulatoryFee(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Regulatory configuration deleted successfully"}))
}
