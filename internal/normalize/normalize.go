// =============================================================================
// POS Catalog Sync - Normalizer
// =============================================================================
//
// This package converts the heterogeneous numeric encodings found in catalog
// exports into canonical representations:
//   - Prices arrive with currency symbols and either "." or "," as the
//     decimal separator ("€12,50", "$15.99") and normalize to a fixed
//     2-decimal string ("12.50", "15.99").
//   - EAN codes arrive as plain digits or in spreadsheet scientific notation
//     ("2.52E+12") and normalize to a digit-only string ("2520000000000").
//
// Both the CSV loader and the XML target loader run their raw text through
// these functions, so field comparisons during reconciliation are
// apples-to-apples regardless of which side introduced formatting drift.
//
// Every function here is total: bad input yields a documented default,
// never an error.
//
// =============================================================================

package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Price validation limits.
var (
	minPrice = decimal.Zero
	maxPrice = decimal.RequireFromString("999999.99")
)

var (
	// priceJunk matches every character that is not part of a decimal
	// number: currency symbols, spaces, letters.
	priceJunk = regexp.MustCompile(`[^\d.,-]`)

	// nonDigits matches everything that is not a decimal digit.
	nonDigits = regexp.MustCompile(`\D`)
)

// Price normalizes a raw price string to a plain decimal string with
// exactly 2 fractional digits.
//
// The value is stripped of everything but digits, ".", "," and "-". When a
// comma is present and no dot, the comma is treated as the decimal separator
// (European format). Any value that still fails to parse yields "0.00".
func Price(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "0.00"
	}

	value = priceJunk.ReplaceAllString(value, "")

	if strings.Contains(value, ",") && !strings.Contains(value, ".") {
		value = strings.ReplaceAll(value, ",", ".")
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return "0.00"
	}
	return d.StringFixed(2)
}

// EAN normalizes a raw barcode string to a digit-only string.
//
// Values exported through spreadsheets often arrive in scientific notation,
// so a float parse-then-truncate is attempted first ("2.52E+12" becomes
// "2520000000000"). If that fails, all non-digit characters are stripped.
// An empty result yields "0".
func EAN(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "0"
	}

	// Strict bounds: math.MaxInt64 rounds up to 2^63 as a float64, so values
	// at the boundary would overflow the int64 conversion. They fall through
	// to the digit strip instead.
	if f, err := strconv.ParseFloat(value, 64); err == nil &&
		!math.IsNaN(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return strconv.FormatInt(int64(f), 10)
	}

	digits := nonDigits.ReplaceAllString(value, "")
	if digits == "" {
		return "0"
	}
	return digits
}

// SafeInt parses a trimmed string as an integer, returning def on empty or
// invalid input.
func SafeInt(raw string, def int) int {
	value := strings.TrimSpace(raw)
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}

// SafeInt64 is SafeInt for 64-bit values (EAN codes exceed 32 bits).
func SafeInt64(raw string, def int64) int64 {
	value := strings.TrimSpace(raw)
	if value == "" {
		return def
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// PriceInRange reports whether a normalized price string lies within
// [0.00, 999999.99]. Unparsable input is out of range.
func PriceInRange(price string) bool {
	d, err := decimal.NewFromString(price)
	if err != nil {
		return false
	}
	return !d.LessThan(minPrice) && !d.GreaterThan(maxPrice)
}
