package split

import (
	"sort"

	"github.com/Malrhis/Bills-handling-2/internal/types"
	"github.com/shopspring/decimal"
)

// Row is one allocated expense as the aggregation sees it.
type Row struct {
	Category   string
	BillMonth  types.Month
	Amount     decimal.Decimal
	SelfAmount decimal.Decimal
	WifeAmount decimal.Decimal
}

// CategoryTotal is the sum of all expenses of one category.
type CategoryTotal struct {
	Category   string          `json:"category" example:"groceries"` // Name of the category
	Amount     decimal.Decimal `json:"amount" example:"123.45"`      // Total amount of the category
	SelfAmount decimal.Decimal `json:"selfAmount" example:"61.73"`   // Total self share of the category
	WifeAmount decimal.Decimal `json:"wifeAmount" example:"61.72"`   // Total wife share of the category
	Count      int             `json:"count" example:"7"`            // Number of expenses in the category
	Invalid    int             `json:"invalid" example:"0"`          // Number of expenses whose shares do not sum to their amount
}

// MonthTotal is the sum of all expenses of one credit card bill month.
type MonthTotal struct {
	Month      types.Month     `json:"month" example:"2026-08-01T00:00:00Z"` // Bill month
	Amount     decimal.Decimal `json:"amount" example:"1833.95"`             // Total amount of the month
	SelfAmount decimal.Decimal `json:"selfAmount" example:"916.98"`          // Total self share of the month
	WifeAmount decimal.Decimal `json:"wifeAmount" example:"916.97"`          // Total wife share of the month
	Count      int             `json:"count" example:"31"`                   // Number of expenses in the month
}

// GrandTotal sums every row regardless of category.
type GrandTotal struct {
	Amount         decimal.Decimal `json:"amount" example:"1833.95"`        // Total amount of all expenses
	SelfAmount     decimal.Decimal `json:"selfAmount" example:"916.98"`     // Total self share
	WifeAmount     decimal.Decimal `json:"wifeAmount" example:"916.97"`     // Total wife share
	SelfPercentage decimal.Decimal `json:"selfPercentage" example:"50.71"`  // Overall self share in percent, 0 when there are no expenses
	Count          int             `json:"count" example:"31"`              // Number of expenses
	Invalid        int             `json:"invalid" example:"1"`             // Number of expenses with invalid allocation
}

// Summary is the aggregation of a set of allocated expenses.
type Summary struct {
	Categories []CategoryTotal `json:"categories"` // Per category totals, sorted by category name
	Months     []MonthTotal    `json:"months"`     // Per bill month totals, chronological
	Total      GrandTotal      `json:"total"`      // Grand totals over all expenses
}

// Summarize folds a set of allocated expenses into per-category and
// per-month totals plus grand totals. Rows with an invalid allocation
// are summed like all others, but counted so that the caller can warn.
// An empty input yields all-zero totals.
func Summarize(rows []Row) Summary {
	categories := make(map[string]*CategoryTotal)
	months := make(map[string]*MonthTotal)

	var total GrandTotal

	for _, row := range rows {
		category, ok := categories[row.Category]
		if !ok {
			category = &CategoryTotal{Category: row.Category}
			categories[row.Category] = category
		}

		category.Amount = category.Amount.Add(row.Amount)
		category.SelfAmount = category.SelfAmount.Add(row.SelfAmount)
		category.WifeAmount = category.WifeAmount.Add(row.WifeAmount)
		category.Count++

		if !row.BillMonth.IsZero() {
			month, ok := months[row.BillMonth.String()]
			if !ok {
				month = &MonthTotal{Month: row.BillMonth}
				months[row.BillMonth.String()] = month
			}

			month.Amount = month.Amount.Add(row.Amount)
			month.SelfAmount = month.SelfAmount.Add(row.SelfAmount)
			month.WifeAmount = month.WifeAmount.Add(row.WifeAmount)
			month.Count++
		}

		total.Amount = total.Amount.Add(row.Amount)
		total.SelfAmount = total.SelfAmount.Add(row.SelfAmount)
		total.WifeAmount = total.WifeAmount.Add(row.WifeAmount)
		total.Count++

		if !Validate(row.Amount, row.SelfAmount, row.WifeAmount).Valid {
			category.Invalid++
			total.Invalid++
		}
	}

	if !total.Amount.IsZero() {
		total.SelfPercentage = total.SelfAmount.Mul(hundred).Div(total.Amount).Round(2)
	}

	summary := Summary{
		Categories: make([]CategoryTotal, 0, len(categories)),
		Months:     make([]MonthTotal, 0, len(months)),
		Total:      total,
	}

	for _, category := range categories {
		summary.Categories = append(summary.Categories, *category)
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		return summary.Categories[i].Category < summary.Categories[j].Category
	})

	for _, month := range months {
		summary.Months = append(summary.Months, *month)
	}
	sort.Slice(summary.Months, func(i, j int) bool {
		return summary.Months[i].Month.Before(summary.Months[j].Month)
	})

	return summary
}
