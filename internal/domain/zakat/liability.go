package zakat

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/slimatic/zakapp-sub007/internal/domain/shared"
	"github.com/slimatic/zakapp-sub007/internal/domain/shared/valueobject"
)

// Liability represents a debt obligation owned by a user.
// Like Asset it is a read-only input to the calculation engine.
type Liability struct {
	shared.OwnedAggregateRoot
	Name     string            `json:"name"`
	Category LiabilityCategory `json:"category"`
	Amount   decimal.Decimal   `json:"amount"`

	// DueDate is when the debt falls due. Nil means the due date is unknown
	// or was unparseable at the input boundary; such liabilities are never
	// deducted (conservative exclusion).
	DueDate *time.Time `json:"due_date,omitempty"`

	// Active marks whether the debt is still owed. Inactive liabilities are
	// kept for history but never deducted.
	Active bool `json:"active"`

	Notes string `json:"notes,omitempty"`
}

// NewLiability creates a new liability for the given owner
func NewLiability(userID uuid.UUID, name string, category LiabilityCategory, amount valueobject.Money, dueDate *time.Time) (*Liability, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Liability owner cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_LIABILITY_NAME", "Liability name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_LIABILITY_NAME", "Liability name cannot exceed 100 characters")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_LIABILITY_CATEGORY", "Liability category is not valid")
	}
	if amount.Amount().IsNegative() {
		return nil, shared.NewDomainError("INVALID_LIABILITY_AMOUNT", "Liability amount cannot be negative")
	}

	l := &Liability{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		Name:               name,
		Category:           category,
		Amount:             amount.Amount(),
		DueDate:            dueDate,
		Active:             true,
	}

	l.AddDomainEvent(NewLiabilityCreatedEvent(l))

	return l, nil
}

// UpdateAmount replaces the outstanding amount
func (l *Liability) UpdateAmount(amount valueobject.Money) error {
	if amount.Amount().IsNegative() {
		return shared.NewDomainError("INVALID_LIABILITY_AMOUNT", "Liability amount cannot be negative")
	}
	l.Amount = amount.Amount()
	l.touch()
	return nil
}

// Rename changes the liability's display name
func (l *Liability) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_LIABILITY_NAME", "Liability name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_LIABILITY_NAME", "Liability name cannot exceed 100 characters")
	}
	l.Name = name
	l.touch()
	return nil
}

// SetDueDate updates the due date; pass nil to mark it unknown
func (l *Liability) SetDueDate(dueDate *time.Time) {
	l.DueDate = dueDate
	l.touch()
}

// Settle marks the liability as no longer owed
func (l *Liability) Settle() {
	l.Active = false
	l.touch()
}

// Reactivate marks a settled liability as owed again
func (l *Liability) Reactivate() {
	l.Active = true
	l.touch()
}

// SetNotes sets the free-form notes
func (l *Liability) SetNotes(notes string) {
	l.Notes = notes
	l.touch()
}

// GetAmountMoney returns the amount as Money in the reporting currency
func (l *Liability) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(l.Amount)
}

func (l *Liability) touch() {
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
}
