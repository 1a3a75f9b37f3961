// README: Common money value object and currency-string parsing used across modules.
package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type Money struct {
	Amount   int64
	Currency string
}

var ErrBadAmount = errors.New("unparseable currency amount")

func (m Money) String() string {
	return fmt.Sprintf("$%d", m.Amount)
}

// ParseAmount extracts a whole-dollar amount from loosely formatted user or
// model output such as "$3,000", "3000 USD" or "$8,000 total". The first
// digit run (with thousands separators) wins; anything after it is ignored.
// Cents are dropped; budgets are modeled as whole dollars.
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrBadAmount
	}

	var digits strings.Builder
	started := false
loop:
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits.WriteRune(r)
			started = true
		case r == ',' && started:
			// thousands separator inside the run
		default:
			if started {
				break loop
			}
		}
	}
	if digits.Len() == 0 {
		return Money{}, fmt.Errorf("%w: %q", ErrBadAmount, s)
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrBadAmount, s)
	}
	return Money{Amount: n, Currency: "USD"}, nil
}
