package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	zakatapp "github.com/slimatic/zakapp-sub007/internal/application/zakat"
	"github.com/slimatic/zakapp-sub007/internal/domain/shared"
	"github.com/slimatic/zakapp-sub007/internal/domain/zakat"
	"github.com/slimatic/zakapp-sub007/internal/interfaces/http/dto"
)

// CreateAssetRequest is the payload for creating an asset
type CreateAssetRequest struct {
	Name                       string           `json:"name" binding:"required,max=100"`
	Category                   string           `json:"category" binding:"required"`
	Value                      decimal.Decimal  `json:"value" binding:"required"`
	Override                   string           `json:"override" binding:"omitempty,oneof=INCLUDED EXCLUDED"`
	Modifier                   *decimal.Decimal `json:"modifier"`
	PassiveInvestment          bool             `json:"passive_investment"`
	EarlyWithdrawalPenaltyRate *decimal.Decimal `json:"early_withdrawal_penalty_rate"`
	TaxRate                    *decimal.Decimal `json:"tax_rate"`
	Notes                      string           `json:"notes" binding:"omitempty,max=1000"`
}

// UpdateAssetRequest is the payload for updating an asset. Omitted fields
// are left unchanged.
type UpdateAssetRequest struct {
	Name                       *string          `json:"name" binding:"omitempty,max=100"`
	Value                      *decimal.Decimal `json:"value"`
	Override                   *string          `json:"override" binding:"omitempty,oneof=INCLUDED EXCLUDED"`
	Modifier                   *decimal.Decimal `json:"modifier"`
	ClearModifier              bool             `json:"clear_modifier"`
	PassiveInvestment          *bool            `json:"passive_investment"`
	EarlyWithdrawalPenaltyRate *decimal.Decimal `json:"early_withdrawal_penalty_rate"`
	TaxRate                    *decimal.Decimal `json:"tax_rate"`
	Notes                      *string          `json:"notes" binding:"omitempty,max=1000"`
}

// AssetResponse is the API representation of an asset
type AssetResponse struct {
	ID                         uuid.UUID        `json:"id"`
	Name                       string           `json:"name"`
	Category                   string           `json:"category"`
	Value                      decimal.Decimal  `json:"value"`
	Override                   string           `json:"override,omitempty"`
	Modifier                   *decimal.Decimal `json:"modifier,omitempty"`
	PassiveInvestment          bool             `json:"passive_investment"`
	EarlyWithdrawalPenaltyRate *decimal.Decimal `json:"early_withdrawal_penalty_rate,omitempty"`
	TaxRate                    *decimal.Decimal `json:"tax_rate,omitempty"`
	Notes                      string           `json:"notes,omitempty"`
	CreatedAt                  time.Time        `json:"created_at"`
	UpdatedAt                  time.Time        `json:"updated_at"`
}

func toAssetResponse(asset *zakat.Asset) AssetResponse {
	return AssetResponse{
		ID:                         asset.ID,
		Name:                       asset.Name,
		Category:                   asset.Category.String(),
		Value:                      asset.Value,
		Override:                   string(asset.Override),
		Modifier:                   asset.Modifier,
		PassiveInvestment:          asset.PassiveInvestment,
		EarlyWithdrawalPenaltyRate: asset.EarlyWithdrawalPenaltyRate,
		TaxRate:                    asset.TaxRate,
		Notes:                      asset.Notes,
		CreatedAt:                  asset.CreatedAt,
		UpdatedAt:                  asset.UpdatedAt,
	}
}

// listFilter converts a list request into a repository filter
func listFilter(req dto.ListRequest) shared.Filter {
	req.ApplyDefaults()
	return shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	}
}

// AssetHandler handles asset HTTP requests
type AssetHandler struct {
	BaseHandler
	assetService *zakatapp.AssetService
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(assetService *zakatapp.AssetService) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// Create adds a new asset to the authenticated user's portfolio
func (h *AssetHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	asset, err := h.assetService.Create(c.Request.Context(), userID, zakatapp.CreateAssetInput{
		Name:                       req.Name,
		Category:                   req.Category,
		Value:                      req.Value,
		Override:                   req.Override,
		Modifier:                   req.Modifier,
		PassiveInvestment:          req.PassiveInvestment,
		EarlyWithdrawalPenaltyRate: req.EarlyWithdrawalPenaltyRate,
		TaxRate:                    req.TaxRate,
		Notes:                      req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toAssetResponse(asset))
}

// List returns the authenticated user's assets
func (h *AssetHandler) List(c *gin.Context) {
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

	assets, total, err := h.assetService.List(c.Request.Context(), userID, listFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]AssetResponse, 0, len(assets))
	for _, asset := range assets {
		responses = append(responses, toAssetResponse(asset))
	}

	h.SuccessWithMeta(c, responses, total, req.Page, req.PageSize)
}

// GetByID returns one asset owned by the authenticated user
func (h *AssetHandler) GetByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID")
		return
	}

	asset, err := h.assetService.Get(c.Request.Context(), userID, assetID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toAssetResponse(asset))
}

// Update modifies an asset owned by the authenticated user
func (h *AssetHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID")
		return
	}

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	asset, err := h.assetService.Update(c.Request.Context(), userID, assetID, zakatapp.UpdateAssetInput{
		Name:                       req.Name,
		Value:                      req.Value,
		Override:                   req.Override,
		Modifier:                   req.Modifier,
		ClearModifier:              req.ClearModifier,
		PassiveInvestment:          req.PassiveInvestment,
		EarlyWithdrawalPenaltyRate: req.EarlyWithdrawalPenaltyRate,
		TaxRate:                    req.TaxRate,
		Notes:                      req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toAssetResponse(asset))
}

// Delete removes an asset owned by the authenticated user
func (h *AssetHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID")
		return
	}

	if err := h.assetService.Delete(c.Request.Context(), userID, assetID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers asset routes on the given group
func (h *AssetHandler) RegisterRoutes(rg *gin.RouterGroup) {
	assets := rg.Group("/assets")
	assets.POST("", h.Create)
	assets.GET("", h.List)
	assets.GET("/:id", h.GetByID)
	assets.PUT("/:id", h.Update)
	assets.DELETE("/:id", h.Delete)
}
