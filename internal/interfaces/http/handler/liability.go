package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	zakatapp "github.com/slimatic/zakapp-sub007/internal/application/zakat"
	"github.com/slimatic/zakapp-sub007/internal/domain/zakat"
	"github.com/slimatic/zakapp-sub007/internal/interfaces/http/dto"
)

// CreateLiabilityRequest is the payload for creating a liability
type CreateLiabilityRequest struct {
	Name     string          `json:"name" binding:"required,max=100"`
	Category string          `json:"category" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	DueDate  *time.Time      `json:"due_date"`
	Notes    string          `json:"notes" binding:"omitempty,max=1000"`
}

// UpdateLiabilityRequest is the payload for updating a liability. Omitted
// fields are left unchanged.
type UpdateLiabilityRequest struct {
	Name         *string          `json:"name" binding:"omitempty,max=100"`
	Amount       *decimal.Decimal `json:"amount"`
	DueDate      *time.Time       `json:"due_date"`
	ClearDueDate bool             `json:"clear_due_date"`
	Active       *bool            `json:"active"`
	Notes        *string          `json:"notes" binding:"omitempty,max=1000"`
}

// LiabilityResponse is the API representation of a liability
type LiabilityResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   *time.Time      `json:"due_date,omitempty"`
	Active    bool            `json:"active"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func toLiabilityResponse(liability *zakat.Liability) LiabilityResponse {
	return LiabilityResponse{
		ID:        liability.ID,
		Name:      liability.Name,
		Category:  liability.Category.String(),
		Amount:    liability.Amount,
		DueDate:   liability.DueDate,
		Active:    liability.Active,
		Notes:     liability.Notes,
		CreatedAt: liability.CreatedAt,
		UpdatedAt: liability.UpdatedAt,
	}
}

// LiabilityHandler handles liability HTTP requests
type LiabilityHandler struct {
	BaseHandler
	liabilityService *zakatapp.LiabilityService
}

// NewLiabilityHandler creates a new liability handler
func NewLiabilityHandler(liabilityService *zakatapp.LiabilityService) *LiabilityHandler {
	return &LiabilityHandler{liabilityService: liabilityService}
}

// Create adds a new liability for the authenticated user
func (h *LiabilityHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	liability, err := h.liabilityService.Create(c.Request.Context(), userID, zakatapp.CreateLiabilityInput{
		Name:     req.Name,
		Category: req.Category,
		Amount:   req.Amount,
		DueDate:  req.DueDate,
		Notes:    req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toLiabilityResponse(liability))
}

// List returns the authenticated user's liabilities
func (h *LiabilityHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	req.ApplyDefaults()

	liabilities, total, err := h.liabilityService.List(c.Request.Context(), userID, listFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]LiabilityResponse, 0, len(liabilities))
	for _, liability := range liabilities {
		responses = append(responses, toLiabilityResponse(liability))
	}

	h.SuccessWithMeta(c, responses, total, req.Page, req.PageSize)
}

// GetByID returns one liability owned by the authenticated user
func (h *LiabilityHandler) GetByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	liabilityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid liability ID")
		return
	}

	liability, err := h.liabilityService.Get(c.Request.Context(), userID, liabilityID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toLiabilityResponse(liability))
}

// Update modifies a liability owned by the authenticated user
func (h *LiabilityHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	liabilityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid liability ID")
		return
	}

	var req UpdateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	liability, err := h.liabilityService.Update(c.Request.Context(), userID, liabilityID, zakatapp.UpdateLiabilityInput{
		Name:         req.Name,
		Amount:       req.Amount,
		DueDate:      req.DueDate,
		ClearDueDate: req.ClearDueDate,
		Active:       req.Active,
		Notes:        req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toLiabilityResponse(liability))
}

// Delete removes a liability owned by the authenticated user
func (h *LiabilityHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	liabilityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid liability ID")
		return
	}

	if err := h.liabilityService.Delete(c.Request.Context(), userID, liabilityID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers liability routes on the given group
func (h *LiabilityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	liabilities := rg.Group("/liabilities")
	liabilities.POST("", h.Create)
	liabilities.GET("", h.List)
	liabilities.GET("/:id", h.GetByID)
	liabilities.PUT("/:id", h.Update)
	liabilities.DELETE("/:id", h.Delete)
}
