package utils

import (
	"fmt"
	"math"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// RoundMoney rounds to two decimals; all monetary values cross the API
// boundary with two-decimal precision.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}
