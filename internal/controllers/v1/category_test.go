package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/Malrhis/Bills-handling-2/internal/controllers/v1"
	"github.com/Malrhis/Bills-handling-2/internal/models"
	"github.com/Malrhis/Bills-handling-2/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCategory(t *testing.T, c v1.CategoryEditable, expectedStatus ...int) v1.CategoryResponse {
	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.CategoryEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.CategoryResponse{}
}

// TestCategoriesSeeded verifies that a fresh database starts with the
// default category set.
func (suite *TestSuiteStandard) TestCategoriesSeeded() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	names := make([]string, 0, len(response.Data))
	for _, category := range response.Data {
		names = append(names, category.Name)
	}

	assert.Contains(suite.T(), names, "groceries")
	assert.Contains(suite.T(), names, "others")
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{
		Name:     "Pets",
		Keywords: []string{"petshop", "vet"},
	})

	data := category.Data
	require.NotNil(suite.T(), data)

	assert.Equal(suite.T(), "pets", data.Name, "Name is not lowercased")
	assert.Equal(suite.T(), []string{"petshop", "vet"}, data.Keywords)
}

// TestCategoriesCreateDuplicate verifies the errors for duplicate names
// and keywords already belonging to another category.
func (suite *TestSuiteStandard) TestCategoriesCreateDuplicate() {
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "pets", Keywords: []string{"petshop"}})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{{Name: "pets"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Data[0].Error, models.ErrCategoryNameNotUnique.Error())

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{{Name: "animals", Keywords: []string{"petshop"}}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Data[0].Error, models.ErrKeywordNotUnique.Error())
}

func (suite *TestSuiteStandard) TestCategoriesGetFilters() {
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "pets", Note: "Cats and dogs"})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"By name", "name=pets", 1},
		{"By note", "note=Cats and dogs", 1},
		{"Search", "search=dogs", 1},
		{"No match", "name=doesnotexist", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CategoryListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "pets", Keywords: []string{"petshop"}})

	r := test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]any{
		"keywords": []string{"petshop", "vet"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), []string{"petshop", "vet"}, response.Data.Keywords)
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	r := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestCategoriesExportImport verifies that an exported keyword set can
// be imported again and that imports update existing categories.
func (suite *TestSuiteStandard) TestCategoriesExportImport() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var export v1.KeywordExportResponse
	test.DecodeResponse(suite.T(), &r, &export)
	require.Contains(suite.T(), export.Data, "groceries")

	// Update an existing category and add a new one
	export.Data["groceries"] = append(export.Data["groceries"], "donki")
	export.Data["pets"] = []string{"petshop"}

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories/import", export.Data)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &export)
	assert.Contains(suite.T(), export.Data["groceries"], "donki")
	assert.Equal(suite.T(), []string{"petshop"}, export.Data["pets"])
}

// TestCategoriesRecategorize verifies that re-categorization applies the
// current keyword set to all stored expenses.
func (suite *TestSuiteStandard) TestCategoriesRecategorize() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "PAWTOPIA PETSHOP",
		Amount:      decimal.NewFromInt(42),
	})
	require.Equal(suite.T(), "others", expense.Data.Category)

	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "pets", Keywords: []string{"petshop"}})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories/recategorize", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RecategorizeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), 1, response.Data.Total)
	assert.Equal(suite.T(), 1, response.Data.Updated)

	r = test.Request(suite.T(), http.MethodGet, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "pets", updated.Data.Category)
}

// TestCategoriesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestCategoriesOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No category with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Category exists", createTestCategory(suite.T(), v1.CategoryEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/categories", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestCategoriesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestCategory(t, v1.CategoryEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/categories", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.CategoryListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}
