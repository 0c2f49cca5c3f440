package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/payrec/backend/internal/interfaces/http/dto"
)

// SystemHandler handles system-level API endpoints
type SystemHandler struct {
	BaseHandler
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// RegisterRoutes registers system routes on the given group
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Root)
}

// Root godoc
// @Summary      Liveness message
// @Description  Report that the API is up
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.MessageResponse
// @Router       / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	h.Success(c, dto.MessageResponse{Message: "Payment API is up and running"})
}
