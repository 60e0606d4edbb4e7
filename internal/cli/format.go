// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/eatsplit/internal/model"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a money value as a plain decimal with trailing zeros
// dropped, e.g. 12.50 -> "12.5", -7 -> "-7".
func FormatAmount(d decimal.Decimal) string {
	return d.String()
}

// FormatBalance renders a balance with a leading sign for non-zero values.
func FormatBalance(d decimal.Decimal) string {
	if d.Sign() > 0 {
		return "+" + d.String()
	}
	return d.String()
}

// BalanceMessage describes who owes whom for a friend's balance.
func BalanceMessage(f model.Friend) string {
	switch f.Standing() {
	case model.Owing:
		return fmt.Sprintf("You owe %s $%s", f.Name, FormatAmount(f.Balance.Abs()))
	case model.Owed:
		return fmt.Sprintf("%s owes you $%s", f.Name, FormatAmount(f.Balance.Abs()))
	default:
		return fmt.Sprintf("%s and you are even", f.Name)
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// Plural returns "1 friend" / "3 friends".
func Plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return FormatNumber(int64(n)) + " " + noun + "s"
}
