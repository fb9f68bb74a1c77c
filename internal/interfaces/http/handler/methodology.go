package handler

import (
	"github.com/gin-gonic/gin"

	zakatapp "github.com/slimatic/zakapp-sub007/internal/application/zakat"
)

// MethodologyHandler exposes the supported calculation methodologies
type MethodologyHandler struct {
	BaseHandler
	methodologyService *zakatapp.MethodologyService
}

// NewMethodologyHandler creates a new methodology handler
func NewMethodologyHandler(methodologyService *zakatapp.MethodologyService) *MethodologyHandler {
	return &MethodologyHandler{methodologyService: methodologyService}
}

// List returns every supported methodology
func (h *MethodologyHandler) List(c *gin.Context) {
	h.Success(c, h.methodologyService.List())
}

// Get returns a single methodology by name
func (h *MethodologyHandler) Get(c *gin.Context) {
	info, err := h.methodologyService.Get(c.Param("name"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, info)
}

// RegisterRoutes registers methodology routes on the given group
func (h *MethodologyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	methodologies := rg.Group("/methodologies")
	methodologies.GET("", h.List)
	methodologies.GET("/:name", h.Get)
}
