package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrAmountNotNumber is returned by ParseAmount for values that are not numeric
var ErrAmountNotNumber = errors.New("amount must be a number")

// Truncate cuts s to at most maxLength runes
func Truncate(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength])
}

// ParseAmount converts a decoded JSON value (number, numeric string or json.Number) to a decimal
func ParseAmount(v interface{}) (decimal.Decimal, error) {
	switch val := v.(type) {
	case float64:
		return decimal.NewFromFloat(val), nil
	case int:
		return decimal.NewFromInt(int64(val)), nil
	case int64:
		return decimal.NewFromInt(val), nil
	case json.Number:
		return parseAmountString(val.String())
	case string:
		return parseAmountString(val)
	default:
		return decimal.Zero, fmt.Errorf("%w: unsupported type %T", ErrAmountNotNumber, v)
	}
}

func parseAmountString(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrAmountNotNumber, s)
	}
	return d, nil
}

// IsBlank reports whether a decoded JSON value counts as absent: null, empty string, or zero
func IsBlank(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case float64:
		return val == 0
	case json.Number:
		return val.String() == "" || val.String() == "0"
	case bool:
		return !val
	}
	return false
}
