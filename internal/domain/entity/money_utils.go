package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/astrodash/astro-api/internal/domain/error"
)

// MaxDecimalPlaces is the maximum number of decimal places accepted for amounts
const MaxDecimalPlaces = 2

// ParseAmount validates a decimal amount string and converts it to paise.
// The conversion is string-based to avoid floating point precision issues:
// "699" -> 69900, "699.5" -> 69950, "699.50" -> 69950.
// Zero and negative amounts are rejected; wallet operations always move a
// positive amount in one direction.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var integerValue string
	if len(parts) == 1 {
		integerValue = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			integerValue = parts[0] + "00"
		case 1:
			integerValue = parts[0] + parts[1] + "0"
		case 2:
			integerValue = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	if value == 0 {
		return 0, fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalidAmount)
	}

	return value, nil
}

// FormatPaise converts an amount in paise into a decimal string with exactly
// two decimal places: 69900 -> "699.00", 1015 -> "10.15".
func FormatPaise(paise int64) string {
	isNegative := paise < 0
	if isNegative {
		paise = -paise
	}

	s := strconv.FormatInt(paise, 10)
	for len(s) < 3 {
		s = "0" + s
	}

	decimalPos := len(s) - 2
	whole := s[:decimalPos]
	frac := s[decimalPos:]

	if isNegative {
		return "-" + whole + "." + frac
	}
	return whole + "." + frac
}
