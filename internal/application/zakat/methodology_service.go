package zakat

import (
	"strings"

	"github.com/slimatic/zakapp-sub007/internal/domain/shared"
	"github.com/slimatic/zakapp-sub007/internal/domain/zakat"
)

// MethodologyInfo is a read model describing one calculation methodology
type MethodologyInfo struct {
	Name                  string   `json:"name"`
	Description           string   `json:"description"`
	NisabBasis            string   `json:"nisab_basis"`
	JewelryExempt         bool     `json:"jewelry_exempt"`
	EligibleCategories    []string `json:"eligible_categories"`
	DeductibleLiabilities []string `json:"deductible_liabilities"`
}

// MethodologyService exposes the registered methodologies for display
type MethodologyService struct{}

// NewMethodologyService creates a new methodology service
func NewMethodologyService() *MethodologyService {
	return &MethodologyService{}
}

// List returns all registered methodologies in stable order
func (s *MethodologyService) List() []MethodologyInfo {
	configs := zakat.Methodologies()
	infos := make([]MethodologyInfo, 0, len(configs))
	for _, cfg := range configs {
		infos = append(infos, describeMethodology(cfg))
	}
	return infos
}

// Get returns one methodology by name. Unlike the calculator, unknown
// names are an error here rather than a fallback to the default.
func (s *MethodologyService) Get(name string) (MethodologyInfo, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, registered := range zakat.MethodologyNames() {
		if key == registered {
			return describeMethodology(zakat.ResolveMethodology(key)), nil
		}
	}
	return MethodologyInfo{}, shared.NewDomainError("NOT_FOUND", "Unknown methodology")
}

func describeMethodology(cfg zakat.MethodologyConfig) MethodologyInfo {
	info := MethodologyInfo{
		Name:          cfg.Name,
		Description:   cfg.Description,
		NisabBasis:    cfg.NisabBasis.String(),
		JewelryExempt: cfg.JewelryExempt,
	}
	for _, c := range zakat.AllAssetCategories {
		if cfg.IsEligibleCategory(c) {
			info.EligibleCategories = append(info.EligibleCategories, c.String())
		}
	}
	for _, c := range zakat.AllLiabilityCategories {
		if cfg.IsDeductibleCategory(c) {
			info.DeductibleLiabilities = append(info.DeductibleLiabilities, c.String())
		}
	}
	return info
}
