package v1

import (
	"net/http"

	"github.com/Malrhis/Bills-handling-2/internal/httputil"
	"github.com/Malrhis/Bills-handling-2/internal/importer"
	"github.com/Malrhis/Bills-handling-2/internal/models"
	"github.com/Malrhis/Bills-handling-2/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterImportRoutes registers the routes for imports with
// the RouterGroup that is passed.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", Import)
}

// ImportResponse is the response for a parsed paste.
type ImportResponse struct {
	Data  []importer.ExpensePreview `json:"data"`  // The parsed expense previews
	Error *string                   `json:"error"` // The error, if any occurred
}

// ImportQuery contains the query parameters for the import endpoint.
type ImportQuery struct {
	BillMonth string `form:"billMonth" binding:"required"` // Credit card bill month (YYYY-MM) the paste belongs to
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Parse pasted statement data
// @Description	Parses a pasted tab separated statement table with the header "Date, Bills, Text", extracts amounts, classifies each line and proposes an even split. Nothing is saved; create the reviewed expenses with POST /v1/expenses.
// @Tags			Import
// @Accept			plain
// @Produce		json
// @Success		200			{object}	ImportResponse
// @Failure		400			{object}	ImportResponse
// @Failure		500			{object}	ImportResponse
// @Param			billMonth	query		string	true	"Credit card bill month (YYYY-MM)"
// @Param			data		body		string	true	"The pasted table"
// @Router			/v1/import [post]
func Import(c *gin.Context) {
	var query ImportQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		s := errBillMonthNotSet.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{
			Error: &s,
		})
		return
	}

	billMonth, err := types.ParseMonth(query.BillMonth)
	if err != nil {
		s := httputil.ErrInvalidMonth.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{
			Error: &s,
		})
		return
	}

	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		s := errBodyEmpty.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{
			Error: &s,
		})
		return
	}

	clf, err := classifier(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}

	previews, err := importer.Parse(c.Request.Context(), c.Request.Body, billMonth, clf)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ImportResponse{Data: previews})
}
