package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/Malrhis/Bills-handling-2/internal/controllers/v1"
	"github.com/Malrhis/Bills-handling-2/internal/models"
	"github.com/Malrhis/Bills-handling-2/internal/types"
	"github.com/Malrhis/Bills-handling-2/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestExpense(t *testing.T, e v1.ExpenseEditable, expectedStatus ...int) v1.ExpenseResponse {
	if e.Description == "" {
		e.Description = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.ExpenseEditable{e}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.ExpenseResponse{}
}

// TestExpensesCreateDefaults verifies that the shares are calculated
// from the percentage when they are not sent.
func (suite *TestSuiteStandard) TestExpensesCreateDefaults() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{
		Description:    "NTUC FAIRPRICE BEDOK",
		Amount:         decimal.RequireFromString("77.80"),
		SelfPercentage: decimal.NewFromInt(50),
	})

	data := expense.Data
	require.NotNil(suite.T(), data)

	assert.Equal(suite.T(), "others", data.Category, "Category does not default")
	assert.True(suite.T(), data.SelfAmount.Equal(decimal.RequireFromString("38.90")), "SelfAmount is %s", data.SelfAmount)
	assert.True(suite.T(), data.WifeAmount.Equal(decimal.RequireFromString("38.90")), "WifeAmount is %s", data.WifeAmount)
	assert.True(suite.T(), data.Validation.Valid, "Allocation does not sum to the amount")
	assert.False(suite.T(), data.BillMonth.IsZero(), "BillMonth does not default")
}

// TestExpensesCreateExplicitShares verifies that explicitly sent shares
// are not overwritten.
func (suite *TestSuiteStandard) TestExpensesCreateExplicitShares() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{
		Description:    "Dinner",
		Amount:         decimal.NewFromInt(100),
		SelfPercentage: decimal.NewFromInt(50),
		SelfAmount:     decimal.NewFromInt(80),
		WifeAmount:     decimal.NewFromInt(20),
	})

	data := expense.Data
	require.NotNil(suite.T(), data)

	assert.True(suite.T(), data.SelfAmount.Equal(decimal.NewFromInt(80)))
	assert.True(suite.T(), data.WifeAmount.Equal(decimal.NewFromInt(20)))
}

func (suite *TestSuiteStandard) TestExpensesCreateInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", `{ "description": "not a list" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpensesGetSingle() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{Amount: decimal.NewFromInt(10)})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing expense", expense.Data.ID.String(), http.StatusOK},
		{"No expense with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetFilters() {
	march := types.NewMonth(2026, 3)
	april := types.NewMonth(2026, 4)

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "GRAB 5-ABC123",
		Category:    "transport",
		Amount:      decimal.NewFromInt(15),
		Date:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		BillMonth:   march,
	})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "FAIRPRICE FINEST",
		Category:    "groceries",
		Amount:      decimal.NewFromInt(60),
		Date:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		BillMonth:   april,
	})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Description:    "UNKNOWN MERCHANT",
		Amount:         decimal.NewFromInt(1),
		Date:           time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		BillMonth:      april,
		ReviewRequired: true,
	})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"No filter", "", 3},
		{"By category", "category=transport", 1},
		{"Category is case insensitive", "category=TRANSPORT", 1},
		{"By bill month", fmt.Sprintf("billMonth=%s", april), 2},
		{"Review required", "review=true", 1},
		{"No review required", "review=false", 2},
		{"Search in description", "search=fairprice", 1},
		{"Search in category", "search=transp", 1},
		{"From", "from=2026-03-10", 2},
		{"To", "to=2026-03-15", 2},
		{"From and to", "from=2026-03-01&to=2026-03-31", 2},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

// TestExpensesGetOrder verifies that expenses are sorted by date,
// newest first.
func (suite *TestSuiteStandard) TestExpensesGetOrder() {
	older := createTestExpense(suite.T(), v1.ExpenseEditable{
		Amount: decimal.NewFromInt(1),
		Date:   time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
	})
	newer := createTestExpense(suite.T(), v1.ExpenseEditable{
		Amount: decimal.NewFromInt(1),
		Date:   time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), newer.Data.ID, response.Data[0].ID)
	assert.Equal(suite.T(), older.Data.ID, response.Data[1].ID)
}

func (suite *TestSuiteStandard) TestExpensesGetInvalidMonth() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?billMonth=notamonth", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestExpensesUpdateRecalculates verifies that updating the percentage
// without explicit shares recalculates both shares.
func (suite *TestSuiteStandard) TestExpensesUpdateRecalculates() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{
		Amount:         decimal.NewFromInt(100),
		SelfPercentage: decimal.NewFromInt(50),
	})

	r := test.Request(suite.T(), http.MethodPatch, expense.Data.Links.Self, map[string]any{
		"selfPercentage": 70,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.SelfAmount.Equal(decimal.NewFromInt(70)), "SelfAmount is %s", response.Data.SelfAmount)
	assert.True(suite.T(), response.Data.WifeAmount.Equal(decimal.NewFromInt(30)), "WifeAmount is %s", response.Data.WifeAmount)
}

// TestExpensesUpdateExplicitShares verifies that explicitly sent
// shares win over the percentage.
func (suite *TestSuiteStandard) TestExpensesUpdateExplicitShares() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{
		Amount:         decimal.NewFromInt(100),
		SelfPercentage: decimal.NewFromInt(50),
	})

	r := test.Request(suite.T(), http.MethodPatch, expense.Data.Links.Self, map[string]any{
		"selfPercentage": 70,
		"selfAmount":     99,
		"wifeAmount":     1,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.SelfAmount.Equal(decimal.NewFromInt(99)))
	assert.True(suite.T(), response.Data.WifeAmount.Equal(decimal.NewFromInt(1)))
}

func (suite *TestSuiteStandard) TestExpensesUpdateInvalid() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{Amount: decimal.NewFromInt(10)})

	tests := []struct {
		name   string
		id     string
		body   any
		status int
	}{
		{"Invalid body", expense.Data.ID.String(), `{ "amount": "definitely not a number" }`, http.StatusBadRequest},
		{"No expense with this ID", uuid.New().String(), map[string]any{"category": "dining"}, http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", map[string]any{"category": "dining"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/expenses/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesDelete() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{Amount: decimal.NewFromInt(10)})

	r := test.Request(suite.T(), http.MethodDelete, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestExpensesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestExpensesOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No expense with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Expense exists", createTestExpense(suite.T(), v1.ExpenseEditable{Amount: decimal.NewFromInt(10)}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/expenses", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestExpensesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestExpense(t, v1.ExpenseEditable{Amount: decimal.NewFromInt(17)}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/expenses", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.ExpenseListResponse
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
