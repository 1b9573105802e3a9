package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/divan/num2words"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with thousands separators and two decimals (1234.5 -> "1,234.50")
func FormatAmount(amount decimal.Decimal) string {
	fixed := amount.Round(2).StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}

	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + "." + frac
}

// FormatDate renders a date as unpadded month/day/year (3/4/2024)
func FormatDate(date time.Time) string {
	return date.Format("1/2/2006")
}

// SpellAmount writes an amount out the way it appears on the "Dollars" line:
// "Twelve thousand three hundred forty five and 67/100". Zero cents print as "XX".
func SpellAmount(amount decimal.Decimal) (string, error) {
	rounded := amount.Round(2)
	if rounded.IsNegative() {
		return "", NewAmountError("amount", "amount must not be negative").WithDetail("amount", amount.String())
	}

	dollars := rounded.Truncate(0)
	if !dollars.BigInt().IsInt64() || dollars.IntPart() > math.MaxInt32 {
		return "", NewAmountError("amount", "amount is too large to spell out").WithDetail("amount", amount.String())
	}
	cents := rounded.Sub(dollars).Shift(2).IntPart()

	words := normalizeWords(num2words.Convert(int(dollars.IntPart())))

	centsText := "XX"
	if cents != 0 {
		centsText = fmt.Sprintf("%02d", cents)
	}

	return fmt.Sprintf("%s and %s/100", words, centsText), nil
}

// normalizeWords strips conjunctions and separators so the only "and" left
// on the line is the one joining dollars and cents.
func normalizeWords(words string) string {
	words = strings.ReplaceAll(words, " and", "")
	words = strings.ReplaceAll(words, ",", "")
	words = strings.ReplaceAll(words, "-", " ")
	words = strings.Join(strings.Fields(words), " ")

	if words == "" {
		return words
	}
	words = strings.ToLower(words)
	return strings.ToUpper(words[:1]) + words[1:]
}

// NewAmountFromFloat converts a float amount, rejecting NaN, infinities and negatives
func NewAmountFromFloat(value float64) (decimal.Decimal, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Zero, NewAmountError("amount", "amount must be a finite number")
	}
	if value < 0 {
		return decimal.Zero, NewAmountError("amount", "amount must not be negative")
	}
	return decimal.NewFromFloat(value), nil
}

// ParseAmount parses a textual amount such as "1234.50", rejecting negatives
func ParseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(value), ",", ""))
	if err != nil {
		return decimal.Zero, WrapError(ErrorCodeValidationAmountInvalid, fmt.Sprintf("invalid amount %q", value), err)
	}
	if amount.IsNegative() {
		return decimal.Zero, NewAmountError("amount", "amount must not be negative").WithDetail("amount", value)
	}
	return amount, nil
}
