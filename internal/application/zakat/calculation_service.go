package zakat

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/slimatic/zakapp-sub007/internal/domain/shared"
	"github.com/slimatic/zakapp-sub007/internal/domain/zakat"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/cache"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/pricefeed"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/telemetry"
)

// CalculationService runs the zakat obligation pipeline over a user's
// recorded assets and liabilities and manages persisted snapshots.
type CalculationService struct {
	assetRepo     zakat.AssetRepository
	liabilityRepo zakat.LiabilityRepository
	snapshotRepo  zakat.SnapshotRepository
	priceProvider pricefeed.MetalPriceProvider
	resultCache   cache.ResultCache
	cacheTTL      time.Duration
	logger        *zap.Logger
}

// NewCalculationService creates a new calculation service. resultCache may
// be nil, in which case every calculation runs fresh.
func NewCalculationService(
	assetRepo zakat.AssetRepository,
	liabilityRepo zakat.LiabilityRepository,
	snapshotRepo zakat.SnapshotRepository,
	priceProvider pricefeed.MetalPriceProvider,
	resultCache cache.ResultCache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *CalculationService {
	return &CalculationService{
		assetRepo:     assetRepo,
		liabilityRepo: liabilityRepo,
		snapshotRepo:  snapshotRepo,
		priceProvider: priceProvider,
		resultCache:   resultCache,
		cacheTTL:      cacheTTL,
		logger:        logger,
	}
}

// CalculateInput controls a single calculation run
type CalculateInput struct {
	Methodology   string
	ReferenceDate time.Time
	SaveSnapshot  bool
}

// CalculateOutput bundles the result with the snapshot ID when one was saved
type CalculateOutput struct {
	Result     *zakat.CalculationResult
	SnapshotID *uuid.UUID
}

// Calculate loads the user's full asset and liability set, resolves current
// metal prices and runs the obligation pipeline. Results are cached under a
// fingerprint of every input that influences the outcome, so an unchanged
// portfolio returns the cached result without recomputation.
func (s *CalculationService) Calculate(ctx context.Context, userID uuid.UUID, input CalculateInput) (*CalculateOutput, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "calculation", "calculate")
	defer span.End()

	referenceDate := input.ReferenceDate
	if referenceDate.IsZero() {
		referenceDate = time.Now().UTC()
	}

	assets, err := s.assetRepo.FindAllForUser(ctx, userID, shared.Filter{})
	if err != nil {
		s.logger.Error("Failed to load assets for calculation", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load assets")
	}
	liabilities, err := s.liabilityRepo.FindAllForUser(ctx, userID, shared.Filter{})
	if err != nil {
		s.logger.Error("Failed to load liabilities for calculation", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load liabilities")
	}

	prices, err := s.priceProvider.Prices(ctx)
	if err != nil {
		s.logger.Error("Failed to resolve metal prices", zap.Error(err))
		telemetry.RecordError(span, err)
		return nil, shared.NewDomainError("PRICE_UNAVAILABLE", "Metal prices are currently unavailable")
	}

	fingerprint := calculationFingerprint(assets, liabilities, prices, input.Methodology, referenceDate)

	result := s.cachedResult(ctx, userID, fingerprint)
	telemetry.SetAttribute(span, "cache_hit", result != nil)
	if result == nil {
		nisab := zakat.NewNisabValues(prices.GoldPerGram, prices.SilverPerGram)
		result = zakat.Calculate(assets, liabilities, nisab, input.Methodology, referenceDate)
		s.cacheResult(ctx, userID, fingerprint, result)
	}
	telemetry.SetAttribute(span, "methodology", result.Methodology)

	output := &CalculateOutput{Result: result}

	if input.SaveSnapshot {
		snapshot, err := zakat.NewCalculationSnapshot(userID, result)
		if err != nil {
			return nil, err
		}
		if err := s.snapshotRepo.Save(ctx, snapshot); err != nil {
			s.logger.Error("Failed to save calculation snapshot", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save snapshot")
		}
		id := snapshot.ID
		output.SnapshotID = &id
	}

	return output, nil
}

// GetSnapshot returns a snapshot owned by the user
func (s *CalculationService) GetSnapshot(ctx context.Context, userID, snapshotID uuid.UUID) (*zakat.CalculationSnapshot, error) {
	return s.snapshotRepo.FindByIDForUser(ctx, userID, snapshotID)
}

// ListSnapshots returns the user's snapshot history, newest first
func (s *CalculationService) ListSnapshots(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]*zakat.CalculationSnapshot, error) {
	return s.snapshotRepo.FindAllForUser(ctx, userID, filter)
}

// DeleteSnapshot removes a snapshot owned by the user
func (s *CalculationService) DeleteSnapshot(ctx context.Context, userID, snapshotID uuid.UUID) error {
	if _, err := s.snapshotRepo.FindByIDForUser(ctx, userID, snapshotID); err != nil {
		return err
	}
	return s.snapshotRepo.Delete(ctx, snapshotID)
}

func (s *CalculationService) cachedResult(ctx context.Context, userID uuid.UUID, fingerprint string) *zakat.CalculationResult {
	if s.resultCache == nil {
		return nil
	}
	result, err := s.resultCache.Get(ctx, userID.String(), fingerprint)
	if err != nil {
		s.logger.Warn("Result cache lookup failed", zap.Error(err))
		return nil
	}
	return result
}

func (s *CalculationService) cacheResult(ctx context.Context, userID uuid.UUID, fingerprint string, result *zakat.CalculationResult) {
	if s.resultCache == nil {
		return
	}
	if err := s.resultCache.Set(ctx, userID.String(), fingerprint, result, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache calculation result", zap.Error(err))
	}
}

type assetFingerprint struct {
	ID      uuid.UUID `json:"id"`
	Version int       `json:"version"`
}

type liabilityFingerprint struct {
	ID      uuid.UUID `json:"id"`
	Version int       `json:"version"`
}

type fingerprintInput struct {
	Assets        []assetFingerprint     `json:"assets"`
	Liabilities   []liabilityFingerprint `json:"liabilities"`
	GoldPerGram   decimal.Decimal        `json:"gold_per_gram"`
	SilverPerGram decimal.Decimal        `json:"silver_per_gram"`
	Methodology   string                 `json:"methodology"`
	ReferenceDate string                 `json:"reference_date"`
}

// calculationFingerprint hashes every input that can change the calculation
// outcome. Aggregate versions stand in for full asset state: any mutation
// bumps the version, so a stale cache entry can never be served.
func calculationFingerprint(
	assets []*zakat.Asset,
	liabilities []*zakat.Liability,
	prices pricefeed.MetalPrices,
	methodologyName string,
	referenceDate time.Time,
) string {
	input := fingerprintInput{
		Assets:        make([]assetFingerprint, 0, len(assets)),
		Liabilities:   make([]liabilityFingerprint, 0, len(liabilities)),
		GoldPerGram:   prices.GoldPerGram,
		SilverPerGram: prices.SilverPerGram,
		Methodology:   zakat.ResolveMethodology(methodologyName).Name,
		ReferenceDate: referenceDate.UTC().Format("2006-01-02"),
	}
	for _, asset := range assets {
		input.Assets = append(input.Assets, assetFingerprint{ID: asset.ID, Version: asset.GetVersion()})
	}
	for _, liability := range liabilities {
		input.Liabilities = append(input.Liabilities, liabilityFingerprint{ID: liability.ID, Version: liability.GetVersion()})
	}

	payload, _ := json.Marshal(input)
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
