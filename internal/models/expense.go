package models

import (
	"strings"
	"time"

	"github.com/Malrhis/Bills-handling-2/internal/categorize"
	"github.com/Malrhis/Bills-handling-2/internal/split"
	"github.com/Malrhis/Bills-handling-2/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is one statement line with its categorization and the split
// between the two parties.
type Expense struct {
	DefaultModel
	Date           time.Time       // Day the expense occurred
	Description    string          // Merchant or bill description
	Amount         decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Total amount, negative for credits and reversals
	Category       string          // Category name, lowercase
	SelfPercentage decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Share of the amount paid by self, in percent
	SelfAmount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Absolute share paid by self
	WifeAmount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Absolute share paid by wife
	OriginalText   string          // The raw pasted statement text the amount was extracted from
	BillMonth      types.Month     // Credit card bill month the expense is charged to
	ReviewRequired bool            // Set when the amount could not be parsed from the statement text
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
func (e *Expense) AfterFind(tx *gorm.DB) error {
	err := e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return nil
}

// BeforeSave
//   - trims string fields and defaults the category
//   - enforces dates to be in UTC and defaults the bill month to the
//     month of the expense
//   - calculates both share amounts from the percentage when no share
//     has been set yet, so that created splits always sum exactly
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.OriginalText = strings.TrimSpace(e.OriginalText)

	e.Category = strings.ToLower(strings.TrimSpace(e.Category))
	if e.Category == "" {
		e.Category = categorize.DefaultCategory
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	if e.BillMonth.IsZero() {
		e.BillMonth = types.MonthOf(e.Date)
	}

	if e.SelfAmount.IsZero() && e.WifeAmount.IsZero() && !e.Amount.IsZero() {
		e.SelfAmount, e.WifeAmount = split.Amounts(e.Amount, e.SelfPercentage)
	}

	return nil
}

// Validation checks the allocation of the expense.
func (e Expense) Validation() split.Validation {
	return split.Validate(e.Amount, e.SelfAmount, e.WifeAmount)
}

// SummaryRow converts the expense for aggregation.
func (e Expense) SummaryRow() split.Row {
	return split.Row{
		Category:   e.Category,
		BillMonth:  e.BillMonth,
		Amount:     e.Amount,
		SelfAmount: e.SelfAmount,
		WifeAmount: e.WifeAmount,
	}
}
