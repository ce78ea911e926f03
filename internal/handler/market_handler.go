package handler

import (
	"net/http"

	"revenue/internal/service"
	"revenue/pkg/response"

	"github.com/gin-gonic/gin"
)

type MarketHandler struct {
	marketService service.MarketService
}

func NewMarketHandler(marketService service.MarketService) *MarketHandler {
	return &MarketHandler{marketService: marketService}
}

func (h *MarketHandler) RegisterRoutes(router *gin.RouterGroup) {
	market := router.Group("/api/market")
	{
		market.GET("/sections", h.GetSections)
		market.GET("/stall-classes", h.GetStallClasses)
		market.GET("/maps/:id", h.GetMapLayout)
		market.POST("/maps", h.SaveMapLayout)
	}
}

// GetSections lists the market sections available for stall assignment
// @Summary      List market sections
// @Tags         market
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/market/sections [get]
func (h *MarketHandler) GetSections(c *gin.Context) {
	sections, err := h.marketService.GetSections(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, sections))
}

// GetStallClasses lists the stall classes with their per-class pricing
// @Summary      List stall classes
// @Tags         market
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/market/stall-classes [get]
func (h *MarketHandler) GetStallClasses(c *gin.Context) {
	classes, err := h.marketService.GetStallClasses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, classes))
}

// GetMapLayout returns a saved map with its stall placements
// @Summary      Get market map layout
// @Tags         market
// @Produce      json
// @Param        id  path  string  true  "Map ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/market/maps/{id} [get]
func (h *MarketHandler) GetMapLayout(c *gin.Context) {
	layout, err := h.marketService.GetMapLayout(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, layout))
}

// SaveMapLayout saves map metadata and replaces its stall placements
// @Summary      Save market map layout
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        payload  body  service.SaveMapLayoutRequest  true  "Layout payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/market/maps [post]
func (h *MarketHandler) SaveMapLayout(c *gin.Context) {
	var req service.SaveMapLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	layout, err := h.marketService.SaveMapLayout(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, layout))
}
