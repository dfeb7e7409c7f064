package pdf

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatEUR renders an amount with two fraction digits, a plain space as
// thousands separator and a comma as decimal separator, suffixed with the
// euro sign: 3500 -> "3 500,00€". The grouping uses an ordinary space on
// purpose; locale-aware formatters emit narrow no-break spaces that not
// every PDF viewer font carries, and the output must be byte-stable.
func FormatEUR(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	fixed := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, decPart, _ := strings.Cut(fixed, ".")
	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}
	var b strings.Builder
	b.WriteString(sign)
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}
	return b.String() + "," + decPart + "€"
}

// FormatDate renders an ISO-ish date as DD/MM/YYYY. Absent or malformed
// input silently falls back to today; this function never fails.
func FormatDate(raw string) string {
	const display = "02/01/2006"
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now().Format(display)
	}
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
		"02/01/2006",
	} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(display)
		}
	}
	return time.Now().Format(display)
}

// ParseDecimal coerces a stored numeric string to a float64, returning 0
// for anything unparsable. Like the source system's parseFloat it accepts a
// valid leading prefix ("12.5 m" -> 12.5), so legacy values with trailing
// units keep rendering.
func ParseDecimal(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(v) {
		return v
	}
	end := 0
	seenDigit := false
	seenDot := false
	for i, r := range s {
		switch {
		case r == '+' || r == '-':
			if i > 0 {
				goto done
			}
		case r == '.':
			if seenDot {
				goto done
			}
			seenDot = true
		case r >= '0' && r <= '9':
			seenDigit = true
		default:
			goto done
		}
		end = i + 1
	}
done:
	if !seenDigit {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimRight(s[:end], ".+-"), 64)
	if err != nil {
		return 0
	}
	return v
}
