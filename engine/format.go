package engine

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ============================================================================
// FORMATTING UTILITIES — Brazilian locale output
// ============================================================================

// FormatBRL formats an amount as Brazilian currency: dot for thousands,
// comma for decimals. FormatBRL(1234.5) → "R$ 1.234,50".
func FormatBRL(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2) // "1234.50"

	intPart := fixed[:len(fixed)-3]
	decPart := fixed[len(fixed)-2:]

	result := fmt.Sprintf("R$ %s,%s", groupThousands(intPart, "."), decPart)
	if negative {
		result = "-" + result
	}
	return result
}

// FormatCount formats an integer with dot thousand separators.
func FormatCount(n int) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}
	return groupThousands(fmt.Sprintf("%d", n), ".")
}

func groupThousands(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)
	return strings.Join(parts, sep)
}
