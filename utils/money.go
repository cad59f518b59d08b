package utils

import (
	"strconv"
	"strings"
)

// FormatINR renders amount in Indian digit grouping, e.g. 125000 -> "₹1,25,000".
// Fractional rupees are rounded. This is display formatting only; prices are
// stored as numbers.
func FormatINR(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(int64(amount+0.5), 10)

	var b strings.Builder
	if len(digits) > 3 {
		head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
		for i, r := range head {
			if i > 0 && (len(head)-i)%2 == 0 {
				b.WriteByte(',')
			}
			b.WriteRune(r)
		}
		b.WriteByte(',')
		b.WriteString(tail)
	} else {
		b.WriteString(digits)
	}

	if neg {
		return "-₹" + b.String()
	}
	return "₹" + b.String()
}
