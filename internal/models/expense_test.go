package models_test

import (
	"time"

	"github.com/Malrhis/Bills-handling-2/internal/models"
	"github.com/Malrhis/Bills-handling-2/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExpenseDefaults() {
	expense := models.Expense{
		Description:    "  NTUC FAIRPRICE  ",
		Amount:         decimal.RequireFromString("77.80"),
		SelfPercentage: decimal.NewFromInt(50),
		Date:           time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC),
	}

	err := models.DB.Create(&expense).Error
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), "NTUC FAIRPRICE", expense.Description)
	assert.Equal(suite.T(), "others", expense.Category, "category defaults when unset")
	assert.True(suite.T(), expense.BillMonth.Equal(types.NewMonth(2026, time.August)), "bill month defaults to the expense month")
	assert.True(suite.T(), expense.SelfAmount.Equal(decimal.RequireFromString("38.90")))
	assert.True(suite.T(), expense.WifeAmount.Equal(decimal.RequireFromString("38.90")))
	assert.True(suite.T(), expense.Validation().Valid)
}

func (suite *TestSuiteStandard) TestExpenseKeepsExplicitShares() {
	expense := models.Expense{
		Description:    "Dinner",
		Category:       "Dining",
		Amount:         decimal.NewFromInt(10),
		SelfPercentage: decimal.NewFromInt(50),
		SelfAmount:     decimal.NewFromInt(7),
		WifeAmount:     decimal.NewFromInt(3),
	}

	err := models.DB.Create(&expense).Error
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), "dining", expense.Category)
	assert.True(suite.T(), expense.SelfAmount.Equal(decimal.NewFromInt(7)), "explicit shares are not recalculated")
	assert.True(suite.T(), expense.WifeAmount.Equal(decimal.NewFromInt(3)))
}

func (suite *TestSuiteStandard) TestExpenseDateDefaultsToNow() {
	expense := models.Expense{Description: "No date", Amount: decimal.NewFromInt(1)}

	err := models.DB.Create(&expense).Error
	require.Nil(suite.T(), err)

	assert.WithinDuration(suite.T(), time.Now().In(time.UTC), expense.Date, time.Minute)
}

func (suite *TestSuiteStandard) TestExpenseNotFound() {
	var expense models.Expense
	err := models.DB.First(&expense, "description = ?", "does not exist").Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

// TestExpenseZeroAmountReview models the parse failure policy: the row
// is stored with amount zero and flagged for review.
func (suite *TestSuiteStandard) TestExpenseZeroAmountReview() {
	expense := models.Expense{
		Description:    "POKKA PTE LTD SINGAPORE SG",
		OriginalText:   "POKKA PTE LTD SINGAPORE SG",
		ReviewRequired: true,
	}

	err := models.DB.Create(&expense).Error
	require.Nil(suite.T(), err)

	assert.True(suite.T(), expense.Amount.IsZero())
	assert.True(suite.T(), expense.ReviewRequired)
	assert.True(suite.T(), expense.Validation().Valid, "0 = 0 + 0 is a valid allocation")
}
