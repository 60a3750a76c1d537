package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatCurrencyPEN formats an amount in Peruvian soles.
// Example: 15000.5 -> "S/ 15,000.50"
func FormatCurrencyPEN(amount float64) string {
	cents := int64(math.Round(amount * 100))
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	integer := cents / 100
	decimal := cents % 100

	digits := fmt.Sprintf("%d", integer)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return fmt.Sprintf("%sS/ %s.%02d", sign, strings.Join(groups, ","), decimal)
}
