// Package amount extracts rupiah amounts from free-form chat text.
package amount

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	millionWord = "juta"
	million     = 1_000_000
)

var (
	millionRe = regexp.MustCompile(`(\d+[.,]?\d*)\s*` + millionWord)
	// separated thousands ("15.000", "1,250,000") first, plain digit runs otherwise
	numberRe = regexp.MustCompile(`\d{1,3}(?:[.,]\d{3})+|\d+`)
)

// Parse returns the first amount found in text or 0 when there is none.
//
// A "." or "," is read as a thousands separator, except right before "juta"
// where it is a decimal point: "1.500" is 1500 while "1.5 juta" is 1500000.
func Parse(text string) int64 {
	text = strings.ToLower(text)

	if strings.Contains(text, millionWord) {
		if m := millionRe.FindStringSubmatch(text); m != nil {
			v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
			if err == nil {
				return fromMillions(v)
			}
		}
	}

	raw := numberRe.FindString(text)
	if raw == "" {
		return 0
	}
	raw = strings.NewReplacer(".", "", ",", "").Replace(raw)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// fromMillions is 0 for anything an int64 cannot hold.
func fromMillions(v float64) int64 {
	v = math.Round(v * million)
	if math.IsNaN(v) || v < 0 || v >= math.MaxInt64 {
		return 0
	}
	return int64(v)
}
