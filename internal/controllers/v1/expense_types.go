package v1

import (
	"strings"
	"time"

	"github.com/Malrhis/Bills-handling-2/internal/httputil"
	"github.com/Malrhis/Bills-handling-2/internal/models"
	"github.com/Malrhis/Bills-handling-2/internal/split"
	"github.com/Malrhis/Bills-handling-2/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Date           time.Time       `json:"date" example:"2026-08-02T00:00:00Z"`                    // Day the expense occurred
	Description    string          `json:"description" example:"NTUC FAIRPRICE BEDOK"`             // Merchant or bill description
	Amount         decimal.Decimal `json:"amount" example:"77.80"`                                 // Total amount, negative for credits
	Category       string          `json:"category" example:"groceries" default:"others"`          // Category the expense is filed under
	SelfPercentage decimal.Decimal `json:"selfPercentage" example:"50"`                            // Share of the amount paid by self, in percent
	SelfAmount     decimal.Decimal `json:"selfAmount" example:"38.90"`                             // Absolute share paid by self
	WifeAmount     decimal.Decimal `json:"wifeAmount" example:"38.90"`                             // Absolute share paid by wife
	OriginalText   string          `json:"originalText" example:"S$77.80" default:""`              // Raw statement text the amount was extracted from
	BillMonth      types.Month     `json:"billMonth" example:"2026-09-01T00:00:00Z"`               // Credit card bill month
	ReviewRequired bool            `json:"reviewRequired" example:"false" default:"false"`         // Does the expense need manual review?
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Date:           editable.Date,
		Description:    editable.Description,
		Amount:         editable.Amount,
		Category:       editable.Category,
		SelfPercentage: editable.SelfPercentage,
		SelfAmount:     editable.SelfAmount,
		WifeAmount:     editable.WifeAmount,
		OriginalText:   editable.OriginalText,
		BillMonth:      editable.BillMonth,
		ReviewRequired: editable.ReviewRequired,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/v1/expenses/3b1ea324-d438-4419-882a-2fc91d71772f"` // The expense itself
}

// Expense is the API representation of an expense.
type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Validation split.Validation `json:"validation"` // Does the allocation sum to the amount?
	Links      ExpenseLinks     `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := httputil.RequestHost(c)

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Date:           model.Date,
			Description:    model.Description,
			Amount:         model.Amount,
			Category:       model.Category,
			SelfPercentage: model.SelfPercentage,
			SelfAmount:     model.SelfAmount,
			WifeAmount:     model.WifeAmount,
			OriginalText:   model.OriginalText,
			BillMonth:      model.BillMonth,
			ReviewRequired: model.ReviewRequired,
		},
		Validation: model.Validation(),
		Links: ExpenseLinks{
			Self: url + "/v1/expenses/" + model.ID.String(),
		},
	}
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`  // Data for the expense
	Error *string  `json:"error"` // Error details for this transaction
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`       // List of expenses
	Error      *string     `json:"error"`      // The error, if any occurred
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type ExpenseCreateResponse struct {
	Error *string           `json:"error"` // The error, if any occurred for the whole request
	Data  []ExpenseResponse `json:"data"`  // List of created expenses
}

// appendError appends an ExpenseResponse with the error and returns the
// updated HTTP status
func (r *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		currentStatus = newStatus
	}

	return currentStatus
}

// ExpenseQueryFilter contains the fields the expense list endpoint
// filters on. Field names of directly filterable fields match the
// model so that they can be used in a gorm Where statement.
type ExpenseQueryFilter struct {
	Category       string `form:"category"`                     // By category name
	ReviewRequired bool   `form:"review"`                       // Only expenses that (do not) need review
	BillMonth      string `form:"billMonth" filterField:"false"` // By credit card bill month (YYYY-MM)
	From           string `form:"from" filterField:"false"`      // Expenses on or after this date (YYYY-MM-DD)
	To             string `form:"to" filterField:"false"`        // Expenses on or before this date (YYYY-MM-DD)
	Search         string `form:"search" filterField:"false"`    // Search in description and category
	Offset         uint   `form:"offset" filterField:"false"`    // The offset of the first expense returned. Defaults to 0.
	Limit          int    `form:"limit" filterField:"false"`     // Maximum number of expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		Category:       strings.ToLower(f.Category),
		ReviewRequired: f.ReviewRequired,
	}
}
