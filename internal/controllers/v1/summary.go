package v1

import (
	"net/http"

	"github.com/Malrhis/Bills-handling-2/internal/httputil"
	"github.com/Malrhis/Bills-handling-2/internal/models"
	"github.com/Malrhis/Bills-handling-2/internal/split"
	"github.com/gin-gonic/gin"
)

// RegisterSummaryRoutes registers the routes for the summary with
// the RouterGroup that is passed.
func RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSummary)
	r.GET("", GetSummary)
}

// SummaryResponse is the response for the summary endpoint.
type SummaryResponse struct {
	Data  *split.Summary `json:"data"`  // Per category, per month and grand totals
	Error *string        `json:"error"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Aggregates the matching expenses into per category totals, per bill month totals and grand totals including the overall self percentage
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		400	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Router			/v1/summary [get]
// @Param			category	query	string	false	"Filter by category"
// @Param			review		query	bool	false	"Does the expense need manual review?"
// @Param			billMonth	query	string	false	"Filter by credit card bill month (YYYY-MM)"
// @Param			from		query	string	false	"Expenses on or after this date (YYYY-MM-DD)"
// @Param			to			query	string	false	"Expenses on or before this date (YYYY-MM-DD)"
// @Param			search		query	string	false	"Search for this text in description and category"
func GetSummary(c *gin.Context) {
	var filter ExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	q, _, err := expenseQuery(c, filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return
	}

	var expenses []models.Expense
	err = q.Find(&expenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return
	}

	rows := make([]split.Row, 0, len(expenses))
	for _, expense := range expenses {
		rows = append(rows, expense.SummaryRow())
	}

	summary := split.Summarize(rows)
	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}
