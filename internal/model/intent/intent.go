// Package intent classifies normalized chat text. It has no side effects, the
// messages package acts on the result.
package intent

import (
	"regexp"
	"strings"
)

type Kind int

const (
	Unknown Kind = iota
	Help
	DeleteAll
	DeleteByKeyword
	RecordExpense
	MonthlyReport
	CategoryReport
	Report
)

var kindNames = map[Kind]string{
	Unknown:         "unknown",
	Help:            "help",
	DeleteAll:       "delete_all",
	DeleteByKeyword: "delete_by_keyword",
	RecordExpense:   "record_expense",
	MonthlyReport:   "monthly_report",
	CategoryReport:  "category_report",
	Report:          "report",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

const (
	deleteAllPhrase     = "hapus semua"
	deleteKeywordPrefix = "hapus beli"
	monthlyReportPhrase = "laporan bulan"
	reportWord          = "laporan"
)

var (
	helpWords   = []string{"/start", "/help", "bantuan"}
	recordVerbs = []string{"beli", "makan", "bayar"}
	recordRe    = regexp.MustCompile(`(beli|makan|bayar)\s+(.+?)\s+(.+)`)
	monthlyRe   = regexp.MustCompile(monthlyReportPhrase + ` (\w+)`)
)

// Intent is the classified message. Only the fields of its Kind are set.
type Intent struct {
	Kind Kind

	// Keyword is the search term of DeleteByKeyword and CategoryReport.
	Keyword string

	// Description and AmountText are the two halves of a RecordExpense.
	Description string
	AmountText  string

	// Month is the raw month word of a MonthlyReport, possibly empty.
	Month string

	// Malformed marks a recognized trigger whose arguments could not be extracted.
	Malformed bool
}

// Parse expects text that is already lowercased and trimmed. Rules are tried in
// a fixed priority order and the first match wins.
func Parse(text string) Intent {
	switch {
	case isOneOf(text, helpWords):
		return Intent{Kind: Help}
	case text == deleteAllPhrase:
		return Intent{Kind: DeleteAll}
	case strings.HasPrefix(text, deleteKeywordPrefix):
		return parseDeleteByKeyword(text)
	case hasAnyPrefix(text, recordVerbs):
		return parseRecordExpense(text)
	case strings.Contains(text, monthlyReportPhrase):
		return parseMonthlyReport(text)
	case strings.HasPrefix(text, reportWord+" "):
		return Intent{
			Kind:    CategoryReport,
			Keyword: strings.TrimSpace(strings.TrimPrefix(text, reportWord)),
		}
	case text == reportWord:
		return Intent{Kind: Report}
	}
	return Intent{Kind: Unknown}
}

func parseDeleteByKeyword(text string) Intent {
	keyword := strings.TrimSpace(strings.TrimPrefix(text, deleteKeywordPrefix))
	return Intent{
		Kind:      DeleteByKeyword,
		Keyword:   keyword,
		Malformed: keyword == "",
	}
}

// parseRecordExpense takes the first verb followed by two words, so the verb
// may appear later in the text ("makanan beli kopi 15000"). Both halves end at
// the first line break.
func parseRecordExpense(text string) Intent {
	m := recordRe.FindStringSubmatch(text)
	if m == nil {
		return Intent{Kind: RecordExpense, Malformed: true}
	}
	return Intent{
		Kind:        RecordExpense,
		Description: m[2],
		AmountText:  m[3],
	}
}

func parseMonthlyReport(text string) Intent {
	res := Intent{Kind: MonthlyReport}
	if m := monthlyRe.FindStringSubmatch(text); m != nil {
		res.Month = m[1]
	}
	return res
}

func isOneOf(text string, words []string) bool {
	for _, w := range words {
		if text == w {
			return true
		}
	}
	return false
}

func hasAnyPrefix(text string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}
	return false
}
