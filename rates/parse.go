package rates

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errInvalidDecimal = errors.New("invalid decimal value")

// ParseDecimal parses locale-formatted decimal text, normalizing a
// decimal comma to a decimal point. Empty or non-numeric input yields
// an error, which downstream callers treat as an absent value
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errInvalidDecimal
	}

	// The source pages use a decimal comma on occasion:
	// "3,52" -> "3.52"
	s = strings.ReplaceAll(s, ",", ".")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to parse decimal %q: %w", s, err)
	}

	return f, nil
}

// Round4 rounds the value to 4 decimal places
func Round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
