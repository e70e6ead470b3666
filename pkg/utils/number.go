package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeRatio divide numerador por denominador com arredondamento de duas casas.
// Denominador zero ou negativo resulta em 0, nunca em NaN ou infinito.
func SafeRatio(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(numerator / denominator)
}
