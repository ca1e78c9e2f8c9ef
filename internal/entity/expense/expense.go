package expense

import "time"

const dateLayout = "2006-01-02"

type Record struct {
	UserID      string
	Category    string
	Amount      int64
	Description string
	Created     time.Time
}

type CategoryTotal struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// Period is an inclusive range of calendar dates. A zero To leaves the range open.
type Period struct {
	From time.Time
	To   time.Time
}

func (p Period) Bounded() bool {
	return !p.To.IsZero()
}

// Contains compares calendar dates of t in the location of From.
func (p Period) Contains(t time.Time) bool {
	day := Date(t.In(p.From.Location()))
	if day.Before(Date(p.From)) {
		return false
	}
	return !p.Bounded() || !day.After(Date(p.To))
}

func (p Period) String() string {
	if !p.Bounded() {
		return p.From.Format(dateLayout) + ".."
	}
	return p.From.Format(dateLayout) + ".." + p.To.Format(dateLayout)
}

func (p Period) FromDate() string {
	return p.From.Format(dateLayout)
}

func (p Period) ToDate() string {
	return p.To.Format(dateLayout)
}

func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
