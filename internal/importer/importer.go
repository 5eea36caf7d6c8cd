// Package importer turns pasted statement tables into expense previews.
package importer

import (
	"github.com/Malrhis/Bills-handling-2/internal/models"
	"github.com/Malrhis/Bills-handling-2/internal/split"
)

// ExpensePreview is a parsed and classified expense that has not been
// saved yet. The caller reviews and possibly edits it before creating
// the expense.
type ExpensePreview struct {
	Expense    models.Expense   `json:"expense"`    // The expense as it would be created
	Confidence int              `json:"confidence"` // Classification confidence from 0 to 100
	Validation split.Validation `json:"validation"` // Allocation check for the proposed split
}
