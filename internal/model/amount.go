package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is an optional money value. The zero Amount is unset, which keeps
// "nothing entered" apart from an entered zero.
type Amount struct {
	Value decimal.Decimal
	Set   bool
}

// Unset is the empty amount.
var Unset = Amount{}

// AmountOf wraps d as a set amount.
func AmountOf(d decimal.Decimal) Amount {
	return Amount{Value: d, Set: true}
}

// MaxDigits caps the digits an amount or balance may carry.
const MaxDigits = 15

// ParseAmount parses user input. Empty or blank input yields Unset.
// Only plain decimals are accepted: digits with at most one '.', no sign
// and no exponent.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unset, nil
	}
	if err := checkPlain(s); err != nil {
		return Unset, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Unset, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return AmountOf(d), nil
}

// ParseBalance parses a stored balance, which may carry a leading minus.
func ParseBalance(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if err := checkPlain(strings.TrimPrefix(s, "-")); err != nil {
		return decimal.Zero, fmt.Errorf("parsing balance %q: %w", s, err)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing balance %q: %w", s, err)
	}
	return d, nil
}

var (
	errNotPlain = errors.New("not a plain decimal")
	errTooLong  = fmt.Errorf("more than %d digits", MaxDigits)
)

// checkPlain accepts digits with at most one '.' and at least one digit.
func checkPlain(s string) error {
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return errNotPlain
		}
	}
	if digits == 0 || dots > 1 {
		return errNotPlain
	}
	if digits > MaxDigits {
		return errTooLong
	}
	return nil
}

// IsZero reports whether the amount is unset or exactly zero.
func (a Amount) IsZero() bool {
	return !a.Set || a.Value.IsZero()
}

// OrZero returns the value, treating unset as zero.
func (a Amount) OrZero() decimal.Decimal {
	if !a.Set {
		return decimal.Zero
	}
	return a.Value
}

func (a Amount) String() string {
	if !a.Set {
		return ""
	}
	return a.Value.String()
}
