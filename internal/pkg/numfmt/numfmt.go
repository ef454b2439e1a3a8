// Package numfmt renders prices the way the storefront displays them:
// Indian-convention digit grouping, where the last three integer digits
// form one group and every group before it has two digits
// (1234567 -> "12,34,567"). The fractional part is never grouped.
//
// Formatting and parsing are built on decimal.Decimal so a formatted
// value parses back to exactly the value that was formatted.
package numfmt

import (
	"strings"

	"github.com/shopspring/decimal"
)

// GroupDigits formats d with grouped integer digits.
func GroupDigits(d decimal.Decimal) string {
	s := d.String()

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(groupIndian(intPart))
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

// GroupDigitsFloat formats f with grouped integer digits. The float is
// converted through its shortest decimal representation, matching what
// a caller would see printing it directly.
func GroupDigitsFloat(f float64) string {
	return GroupDigits(decimal.NewFromFloat(f))
}

// ParseGrouped parses a grouped decimal string back to its exact value.
// Separators are ignored wherever they appear, so any grouping
// convention round-trips.
func ParseGrouped(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
}

// groupIndian inserts separators into a bare digit string: a comma
// before the final three digits, then before every pair.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)

	return strings.Join(groups, ",")
}
