package catalog

import (
	"errors"
	"math"
	"strconv"
)

// ParsePrice extracts the first contiguous run of ASCII digits from a price
// label such as "$50/hour" or "Rs. 1500 per month". ok is false when the text
// holds no digit at all, in which case the value is 0.
//
// Separators end the run: "$1,200" parses as 1 and "$49.99" as 49. A run
// too long for a float64 clamps to math.MaxFloat64.
func ParsePrice(text string) (value float64, ok bool) {
	start := -1
	end := len(text)
	for i := 0; i < len(text); i++ {
		isDigit := text[i] >= '0' && text[i] <= '9'
		if start < 0 && isDigit {
			start = i
			continue
		}
		if start >= 0 && !isDigit {
			end = i
			break
		}
	}
	if start < 0 {
		return 0, false
	}

	n, err := strconv.ParseFloat(text[start:end], 64)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxFloat64, true
	}
	if err != nil {
		return 0, false
	}
	return n, true
}

// PriceValue is ParsePrice with the 0 fallback, for sums and averages.
func PriceValue(text string) float64 {
	v, _ := ParsePrice(text)
	return v
}

// PriceOf adapts a text selector into a measure that skips unparseable
// labels, for MinOf and MaxOf.
func PriceOf[T any](text func(T) string) func(T) (float64, bool) {
	return func(t T) (float64, bool) {
		return ParsePrice(text(t))
	}
}
