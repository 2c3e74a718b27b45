// Package money parses and formats the currency-formatted text the
// spreadsheet stores: an optional "FCFA" suffix, space digit-group
// separators, and a comma decimal separator.
package money

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Suffix is the currency unit token stripped on parse and appended on format.
const Suffix = "FCFA"

// Group separators seen in cells: plain space plus the no-break variants
// spreadsheets produce when locale-formatted numbers round-trip as text.
var separators = strings.NewReplacer(" ", "", " ", "", " ", "")

var printer = message.NewPrinter(language.French)

// Parse interprets a currency cell. "12 345,50 FCFA" parses to 12345.50.
// Empty or malformed text is reported as an error; the fallback-to-zero
// policy lives at the call site, see ParseOrZero.
func Parse(text string) (float64, error) {
	s := strings.ReplaceAll(text, Suffix, "")
	s = separators.Replace(s)
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("money: empty amount %q", text)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("money: parse %q: %w", text, err)
	}
	return v, nil
}

// ParseOrZero is the total variant: any unparseable cell is worth zero.
func ParseOrZero(text string) float64 {
	v, err := Parse(text)
	if err != nil {
		return 0
	}
	return v
}

// Format renders an amount for display: grouped digits, no decimals, and the
// currency suffix, e.g. "12 345 FCFA".
func Format(amount float64) string {
	return printer.Sprintf("%.0f", amount) + " " + Suffix
}
