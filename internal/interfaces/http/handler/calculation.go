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

// CalculateRequest controls a calculation run. All fields are optional:
// the methodology falls back to the user's preference resolution and the
// reference date defaults to today.
type CalculateRequest struct {
	Methodology   string     `json:"methodology" binding:"omitempty,oneof=standard hanafi shafi"`
	ReferenceDate *time.Time `json:"reference_date"`
	SaveSnapshot  bool       `json:"save_snapshot"`
}

// CategoryTotalsResponse mirrors per-category asset totals
type CategoryTotalsResponse struct {
	Total     decimal.Decimal `json:"total"`
	Zakatable decimal.Decimal `json:"zakatable"`
}

// LiabilityTotalsResponse mirrors per-category liability totals
type LiabilityTotalsResponse struct {
	Total      decimal.Decimal `json:"total"`
	Deductible decimal.Decimal `json:"deductible"`
}

// CalculationResponse is the API representation of a calculation result
type CalculationResponse struct {
	TotalAssets          decimal.Decimal `json:"total_assets"`
	TotalZakatableAssets decimal.Decimal `json:"total_zakatable_assets"`
	TotalLiabilities     decimal.Decimal `json:"total_liabilities"`
	TotalDeductible      decimal.Decimal `json:"total_deductible"`
	NetZakatableWorth    decimal.Decimal `json:"net_zakatable_worth"`
	ZakatDue             decimal.Decimal `json:"zakat_due"`
	ZakatObligatory      bool            `json:"zakat_obligatory"`

	AssetBreakdown     map[string]CategoryTotalsResponse  `json:"asset_breakdown"`
	LiabilityBreakdown map[string]LiabilityTotalsResponse `json:"liability_breakdown"`

	Methodology    string          `json:"methodology"`
	NisabBasis     string          `json:"nisab_basis"`
	NisabThreshold decimal.Decimal `json:"nisab_threshold"`
	Rate           decimal.Decimal `json:"rate"`
	ReferenceDate  time.Time       `json:"reference_date"`

	SnapshotID *uuid.UUID `json:"snapshot_id,omitempty"`
}

func toCalculationResponse(result *zakat.CalculationResult, snapshotID *uuid.UUID) CalculationResponse {
	resp := CalculationResponse{
		TotalAssets:          result.TotalAssets,
		TotalZakatableAssets: result.TotalZakatableAssets,
		TotalLiabilities:     result.TotalLiabilities,
		TotalDeductible:      result.TotalDeductible,
		NetZakatableWorth:    result.NetZakatableWorth,
		ZakatDue:             result.ZakatDue,
		ZakatObligatory:      result.ZakatObligatory,
		AssetBreakdown:       make(map[string]CategoryTotalsResponse, len(result.AssetBreakdown)),
		LiabilityBreakdown:   make(map[string]LiabilityTotalsResponse, len(result.LiabilityBreakdown)),
		Methodology:          result.Methodology,
		NisabBasis:           result.NisabBasis.String(),
		NisabThreshold:       result.NisabThreshold,
		Rate:                 result.Rate,
		ReferenceDate:        result.ReferenceDate,
		SnapshotID:           snapshotID,
	}
	for category, totals := range result.AssetBreakdown {
		resp.AssetBreakdown[category.String()] = CategoryTotalsResponse{
			Total:     totals.Total,
			Zakatable: totals.Zakatable,
		}
	}
	for category, totals := range result.LiabilityBreakdown {
		resp.LiabilityBreakdown[category.String()] = LiabilityTotalsResponse{
			Total:      totals.Total,
			Deductible: totals.Deductible,
		}
	}
	return resp
}

// SnapshotResponse is the API representation of a stored snapshot
type SnapshotResponse struct {
	ID                   uuid.UUID       `json:"id"`
	Methodology          string          `json:"methodology"`
	NisabBasis           string          `json:"nisab_basis"`
	NisabThreshold       decimal.Decimal `json:"nisab_threshold"`
	TotalAssets          decimal.Decimal `json:"total_assets"`
	TotalZakatableAssets decimal.Decimal `json:"total_zakatable_assets"`
	TotalLiabilities     decimal.Decimal `json:"total_liabilities"`
	TotalDeductible      decimal.Decimal `json:"total_deductible"`
	NetZakatableWorth    decimal.Decimal `json:"net_zakatable_worth"`
	ZakatDue             decimal.Decimal `json:"zakat_due"`
	ZakatObligatory      bool            `json:"zakat_obligatory"`
	ReferenceDate        time.Time       `json:"reference_date"`
	CreatedAt            time.Time       `json:"created_at"`
}

func toSnapshotResponse(s *zakat.CalculationSnapshot) SnapshotResponse {
	return SnapshotResponse{
		ID:                   s.ID,
		Methodology:          s.Methodology,
		NisabBasis:           s.NisabBasis.String(),
		NisabThreshold:       s.NisabThreshold,
		TotalAssets:          s.TotalAssets,
		TotalZakatableAssets: s.TotalZakatableAssets,
		TotalLiabilities:     s.TotalLiabilities,
		TotalDeductible:      s.TotalDeductible,
		NetZakatableWorth:    s.NetZakatableWorth,
		ZakatDue:             s.ZakatDue,
		ZakatObligatory:      s.ZakatObligatory,
		ReferenceDate:        s.ReferenceDate,
		CreatedAt:            s.CreatedAt,
	}
}

// CalculationHandler handles calculation and snapshot HTTP requests
type CalculationHandler struct {
	BaseHandler
	calculationService *zakatapp.CalculationService
}

// NewCalculationHandler creates a new calculation handler
func NewCalculationHandler(calculationService *zakatapp.CalculationService) *CalculationHandler {
	return &CalculationHandler{calculationService: calculationService}
}

// Calculate runs the zakat obligation pipeline for the authenticated user
func (h *CalculationHandler) Calculate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	input := zakatapp.CalculateInput{
		Methodology:  req.Methodology,
		SaveSnapshot: req.SaveSnapshot,
	}
	if req.ReferenceDate != nil {
		input.ReferenceDate = *req.ReferenceDate
	}

	output, err := h.calculationService.Calculate(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toCalculationResponse(output.Result, output.SnapshotID))
}

// ListSnapshots returns the authenticated user's snapshot history
func (h *CalculationHandler) ListSnapshots(c *gin.Context) {
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

	snapshots, err := h.calculationService.ListSnapshots(c.Request.Context(), userID, listFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]SnapshotResponse, 0, len(snapshots))
	for _, snapshot := range snapshots {
		responses = append(responses, toSnapshotResponse(snapshot))
	}

	h.Success(c, responses)
}

// GetSnapshot returns one snapshot owned by the authenticated user
func (h *CalculationHandler) GetSnapshot(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	snapshotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid snapshot ID")
		return
	}

	snapshot, err := h.calculationService.GetSnapshot(c.Request.Context(), userID, snapshotID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toSnapshotResponse(snapshot))
}

// DeleteSnapshot removes a snapshot owned by the authenticated user
func (h *CalculationHandler) DeleteSnapshot(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	snapshotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid snapshot ID")
		return
	}

	if err := h.calculationService.DeleteSnapshot(c.Request.Context(), userID, snapshotID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers calculation routes on the given group
func (h *CalculationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	zakatGroup := rg.Group("/zakat")
	zakatGroup.POST("/calculate", h.Calculate)
	zakatGroup.GET("/snapshots", h.ListSnapshots)
	zakatGroup.GET("/snapshots/:id", h.GetSnapshot)
	zakatGroup.DELETE("/snapshots/:id", h.DeleteSnapshot)
}
