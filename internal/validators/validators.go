package validators

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses user input into a decimal amount.
// Surrounding spaces are tolerated; anything non-numeric is rejected here,
// before the amount ever reaches an account operation. Sign checks are not
// done here, a negative amount is a valid number the core rejects itself.
func ParseAmount(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	amount, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", input)
	}
	return amount, nil
}
