// Package split implements the allocation of an expense between the two
// parties of the household and the aggregation of allocated expenses.
package split

import (
	"github.com/shopspring/decimal"
)

// Epsilon is the tolerance for allocation checks. It accounts for
// rounding to whole cents.
var Epsilon = decimal.NewFromFloat(0.01)

var hundred = decimal.NewFromInt(100)

// Amounts calculates both share amounts for an expense from the
// percentage the first party pays.
//
// The self share is rounded half up to whole cents, the wife share is
// the remainder. The two shares therefore always sum to the amount
// exactly.
func Amounts(amount, selfPercentage decimal.Decimal) (self, wife decimal.Decimal) {
	self = amount.Mul(selfPercentage).Div(hundred).Round(2)
	wife = amount.Sub(self)
	return
}

// Validation is the result of checking an allocation.
type Validation struct {
	Valid       bool            `json:"valid" example:"false"`                 // Do the two shares sum to the amount?
	Discrepancy decimal.Decimal `json:"discrepancy" example:"-0.5"`            // Signed difference (selfAmount + wifeAmount) - amount
}

// Validate checks that the two shares of an expense sum to its amount
// within Epsilon and returns the signed discrepancy for display.
func Validate(amount, self, wife decimal.Decimal) Validation {
	discrepancy := self.Add(wife).Sub(amount)

	return Validation{
		Valid:       discrepancy.Abs().LessThanOrEqual(Epsilon),
		Discrepancy: discrepancy,
	}
}
