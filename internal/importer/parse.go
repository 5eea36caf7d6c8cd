package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Malrhis/Bills-handling-2/internal/categorize"
	"github.com/Malrhis/Bills-handling-2/internal/extract"
	"github.com/Malrhis/Bills-handling-2/internal/models"
	"github.com/Malrhis/Bills-handling-2/internal/split"
	"github.com/Malrhis/Bills-handling-2/internal/types"
	"github.com/shopspring/decimal"
)

// Column indexes of the pasted table.
const (
	columnDate = iota
	columnBills
	columnText
)

// header is the expected first line of a paste.
var header = []string{"Date", "Bills", "Text"}

var (
	ErrWrongHeader = errors.New("the pasted data must start with the header line Date, Bills, Text")
	ErrEmptyPaste  = errors.New("the pasted data does not contain any expenses")
)

// dateFormats are the formats statement dates are accepted in.
var dateFormats = []string{"02 Jan 2006", "02Jan2006", "2006-01-02"}

// defaultSelfPercentage starts every imported expense at an even split.
var defaultSelfPercentage = decimal.NewFromInt(50)

// Parse reads a pasted tab separated statement table and returns one
// preview per line.
//
// A malformed table (wrong header, wrong column count, unparsable date)
// fails the whole paste with a single error. An unparsable amount does
// not: the preview gets amount zero and is flagged for review.
func Parse(ctx context.Context, f io.Reader, billMonth types.Month, classifier categorize.Classifier) ([]ExpensePreview, error) {
	reader := csv.NewReader(f)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = len(header)

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	first, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyPaste
	}
	if err != nil {
		return nil, readError(reader, err)
	}

	for i, column := range header {
		if !strings.EqualFold(strings.TrimSpace(first[i]), column) {
			return nil, ErrWrongHeader
		}
	}

	var previews []ExpensePreview

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, readError(reader, fmt.Errorf("could not read line: %w", err))
		}

		date, err := parseDate(record[columnDate])
		if err != nil {
			return nil, readError(reader, err)
		}

		expense := models.Expense{
			Date:           date,
			Description:    strings.TrimSpace(record[columnBills]),
			OriginalText:   strings.TrimSpace(record[columnText]),
			BillMonth:      billMonth,
			SelfPercentage: defaultSelfPercentage,
		}

		expense.Amount, err = extract.Amount(record[columnText])
		if errors.Is(err, extract.ErrNoAmount) {
			expense.ReviewRequired = true
		}

		match, err := classifier.Classify(ctx, expense.Description)
		if err != nil {
			return nil, fmt.Errorf("could not classify %q: %w", expense.Description, err)
		}
		expense.Category = match.Category

		expense.SelfAmount, expense.WifeAmount = split.Amounts(expense.Amount, expense.SelfPercentage)

		previews = append(previews, ExpensePreview{
			Expense:    expense,
			Confidence: match.Confidence,
			Validation: split.Validate(expense.Amount, expense.SelfAmount, expense.WifeAmount),
		})
	}

	if len(previews) == 0 {
		return nil, ErrEmptyPaste
	}

	return previews, nil
}

// parseDate tries all accepted statement date formats.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, format := range dateFormats {
		date, err := time.Parse(format, s)
		if err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("could not parse date %q, accepted formats are %s", s, strings.Join(dateFormats, ", "))
}

// readError returns the error including the line of the input it
// occurred in.
func readError(r *csv.Reader, err error) error {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(0)

	return fmt.Errorf("error in line %d of the pasted data: %w", line, err)
}
