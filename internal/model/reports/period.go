package reports

import (
	"time"

	"github.com/jinzhu/now"
	"max.ks1230/expense-bot/internal/entity/expense"
)

var monthNames = map[string]time.Month{
	"januari":   time.January,
	"februari":  time.February,
	"maret":     time.March,
	"april":     time.April,
	"mei":       time.May,
	"juni":      time.June,
	"juli":      time.July,
	"agustus":   time.August,
	"september": time.September,
	"oktober":   time.October,
	"november":  time.November,
	"desember":  time.December,
}

// MonthByName resolves a lowercase Indonesian month name.
func MonthByName(name string) (time.Month, bool) {
	m, ok := monthNames[name]
	return m, ok
}

// MonthPeriod spans the first to the last calendar day of the month.
func MonthPeriod(year int, month time.Month, loc *time.Location) expense.Period {
	n := now.With(time.Date(year, month, 1, 0, 0, 0, 0, loc))
	return expense.Period{
		From: n.BeginningOfMonth(),
		To:   expense.Date(n.EndOfMonth()),
	}
}

// CurrentMonthPeriod starts on the first of t's month and is left open.
func CurrentMonthPeriod(t time.Time) expense.Period {
	return expense.Period{From: now.With(t).BeginningOfMonth()}
}
