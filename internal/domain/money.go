package domain

import (
	"strconv"
	"strings"
)

// FormatRupees renders paise as Indian-grouped rupees, dropping the paise part: 425000 -> "₹4,250".
func FormatRupees(paise int64) string {
	neg := paise < 0
	if neg {
		paise = -paise
	}
	digits := strconv.FormatInt(paise/100, 10)

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
