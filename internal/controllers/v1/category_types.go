package v1

import (
	"strings"

	"github.com/Malrhis/Bills-handling-2/internal/httputil"
	"github.com/Malrhis/Bills-handling-2/internal/models"
	"github.com/gin-gonic/gin"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name     string   `json:"name" example:"groceries" default:""`                        // Name of the category
	Keywords []string `json:"keywords" example:"fairprice,ntuc"`                          // Keywords that file expenses under this category. "*" wildcards are allowed.
	Note     string   `json:"note" example:"Supermarkets and wet markets" default:""`     // Notes about the category
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:     editable.Name,
		Keywords: strings.Join(editable.Keywords, ","),
		Note:     editable.Note,
	}
}

type CategoryLinks struct {
	Self     string `json:"self" example:"https://example.com/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`     // The category itself
	Expenses string `json:"expenses" example:"https://example.com/v1/expenses?category=groceries"`                     // Expenses filed under this category
}

// Category is the API representation of a category.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := httputil.RequestHost(c)

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:     model.Name,
			Keywords: model.KeywordList(),
			Note:     model.Note,
		},
		Links: CategoryLinks{
			Self:     url + "/v1/categories/" + model.ID.String(),
			Expenses: url + "/v1/expenses?category=" + model.Name,
		},
	}
}

type CategoryResponse struct {
	Data  *Category `json:"data"`  // Data for the category
	Error *string   `json:"error"` // Error details for this category
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`       // List of categories
	Error      *string     `json:"error"`      // The error, if any occurred
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type CategoryCreateResponse struct {
	Error *string            `json:"error"` // The error, if any occurred for the whole request
	Data  []CategoryResponse `json:"data"`  // List of created categories
}

// appendError appends a CategoryResponse with the error and returns the
// updated HTTP status
func (r *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		currentStatus = newStatus
	}

	return currentStatus
}

type CategoryQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Filter by name
	Note   string `form:"note" filterField:"false"`   // Filter by note
	Search string `form:"search" filterField:"false"` // Search in name and note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first category returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of categories to return. Defaults to 50.
}

// KeywordExport is the JSON import/export format for the category set:
// a mapping from category name to its keywords. It is compatible with
// the default_categories.json files of the previous tool.
type KeywordExport map[string][]string

type KeywordExportResponse struct {
	Data  KeywordExport `json:"data"`  // Mapping from category name to keywords
	Error *string       `json:"error"` // The error, if any occurred
}

// RecategorizeResult reports what re-categorizing all expenses changed.
type RecategorizeResult struct {
	Total   int `json:"total" example:"120"`  // Number of expenses checked
	Updated int `json:"updated" example:"17"` // Number of expenses whose category changed
}

type RecategorizeResponse struct {
	Data  *RecategorizeResult `json:"data"`  // Result of the re-categorization
	Error *string             `json:"error"` // The error, if any occurred
}
