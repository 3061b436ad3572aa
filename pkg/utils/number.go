package utils

import (
	"fmt"
	"math"
)

var magnitudeUnits = []string{"", "mil"}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatNumber escreve o valor em escala de milhar ou milhão com duas casas decimais.
// Ex.: 500 -> "500.00 ", 1500 -> "1.50 mil", 2300000 -> "2.30 milhões".
func FormatNumber(value float64, prefix string) string {
	if prefix != "" {
		prefix += " "
	}

	for _, unit := range magnitudeUnits {
		if value < 1000 {
			return fmt.Sprintf("%s%.2f %s", prefix, value, unit)
		}
		value /= 1000
	}

	return fmt.Sprintf("%s%.2f milhões", prefix, value)
}
