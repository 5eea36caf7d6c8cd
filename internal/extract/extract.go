// Package extract parses monetary amounts out of free-text statement lines.
package extract

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNoAmount is returned when a text was expected to contain an amount
// but no amount token was found. Callers should default the amount to
// zero and mark the row for manual review instead of failing the batch.
var ErrNoAmount = errors.New("no amount found in text")

// amountPattern matches a currency-prefixed amount like "S$77.80",
// "s$1,234.56" or "S$100". Cents are always two digits when present.
var amountPattern = regexp.MustCompile(`[Ss]\$\s?(\d{1,3}(?:,\d{3})*(?:\.\d{2})?|\d+(?:\.\d{2})?)`)

// Amount extracts the monetary amount from a statement text.
//
// A "cr" marker anywhere in the text marks a credit or reversal and
// negates the amount. Empty texts and texts containing "n/a" carry no
// amount on purpose and return zero without an error.
func Amount(text string) (decimal.Decimal, error) {
	lower := strings.ToLower(strings.TrimSpace(text))

	if lower == "" || strings.Contains(lower, "n/a") {
		return decimal.Zero, nil
	}

	match := amountPattern.FindStringSubmatch(text)
	if match == nil {
		return decimal.Zero, ErrNoAmount
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(match[1], ",", ""))
	if err != nil {
		return decimal.Zero, ErrNoAmount
	}

	if strings.Contains(lower, "cr") {
		amount = amount.Neg()
	}

	return amount, nil
}
