package utils

import (
	"fmt"
	"math"
	"strconv"
)

// GroupThousands inserts a thin space between thousands groups, the way the
// reports display rouble amounts. The value is rounded to the nearest integer
// first.
func GroupThousands(f float64) string {
	neg := f < 0
	s := strconv.FormatInt(int64(math.Abs(math.Round(f))), 10)

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, c)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// FormatMoney renders an amount as "1 234 ₽".
func FormatMoney(f float64) string {
	return GroupThousands(f) + " ₽"
}

// FormatMoney2 renders an amount with kopecks, "1 234.56 ₽".
func FormatMoney2(f float64) string {
	r := RoundWithTwoDecimalPlace(math.Abs(f))
	sign := ""
	if f < 0 {
		sign = "-"
	}

	whole := math.Floor(r)
	frac := int(math.Round((r - whole) * 100))
	if frac == 100 {
		whole++
		frac = 0
	}

	return fmt.Sprintf("%s%s.%02d ₽", sign, GroupThousands(whole), frac)
}

// Truncate cuts a string to at most n runes.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
