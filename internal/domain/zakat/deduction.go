package zakat

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeductionWindowDays is one lunar year (~354 days) plus a one-day safety
// buffer. Only debts falling due inside this window may offset zakatable
// wealth; long-horizon principal such as a mortgage balance cannot zero out
// the obligation.
const DeductionWindowDays = 355

// IsWithinDeductionWindow reports whether a liability's due date falls
// within one lunar year of the reference date. Past-due debts count: an
// overdue debt is still currently owed. A nil due date is excluded
// conservatively rather than guessed at.
func IsWithinDeductionWindow(liability *Liability, referenceDate time.Time) bool {
	if !liability.Active {
		return false
	}
	if liability.DueDate == nil {
		return false
	}
	windowEnd := referenceDate.AddDate(0, 0, DeductionWindowDays)
	return !liability.DueDate.After(windowEnd)
}

// DeductibleAmount sums the amounts of liabilities deductible within the
// window, ignoring methodology category whitelists. The aggregator layers
// the whitelist on top of this time test.
func DeductibleAmount(liabilities []*Liability, referenceDate time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, l := range liabilities {
		if IsWithinDeductionWindow(l, referenceDate) {
			total = total.Add(l.Amount)
		}
	}
	return total
}
