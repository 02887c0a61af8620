package triage

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// decimalComma matches values like "1,5" or "12,50" where the comma is a
// decimal separator rather than a thousands grouping separator.
var decimalComma = regexp.MustCompile(`,\d{1,2}$`)

// ToNumber coerces a raw cell into a float64. Currency symbols, percent
// signs, embedded whitespace, and thousands separators are stripped first.
// Empty or unparseable input yields NaN; the function is total and never
// fails.
func ToNumber(cell string) float64 {
	s := strings.TrimSpace(cell)
	if s == "" {
		return notANumber()
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "%", "")
	s = strings.Join(strings.Fields(s), "")

	if decimalComma.MatchString(s) {
		// European-style decimal comma: 1,5 -> 1.5
		s = strings.Replace(s, ",", ".", 1)
	} else {
		// Grouping commas: 1,234.50 -> 1234.50
		s = strings.ReplaceAll(s, ",", "")
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return notANumber()
	}
	return n
}

func notANumber() float64 { return math.NaN() }

// isFinite reports whether v is a usable number (not NaN, not ±Inf).
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
