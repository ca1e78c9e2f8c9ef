package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnRecordExpense_ShouldSplitDescriptionAndAmount(t *testing.T) {
	assert.Equal(t, Intent{Kind: RecordExpense, Description: "kopi", AmountText: "15000"}, Parse("beli kopi 15000"))
	assert.Equal(t, Intent{Kind: RecordExpense, Description: "listrik", AmountText: "2 juta"}, Parse("bayar listrik 2 juta"))
	assert.Equal(t, Intent{Kind: RecordExpense, Description: "siang", AmountText: "25.000"}, Parse("makan siang 25.000"))
}

func Test_OnMultiWordDescription_ShouldKeepOnlyFirstWord(t *testing.T) {
	// the description is matched lazily, everything after the first word is amount text
	got := Parse("beli kopi susu 18000")

	assert.Equal(t, "kopi", got.Description)
	assert.Equal(t, "susu 18000", got.AmountText)
}

func Test_OnMultiLineCaption_ShouldStopAtLineBreak(t *testing.T) {
	assert.Equal(t,
		Intent{Kind: RecordExpense, Description: "kopi", AmountText: "15000"},
		Parse("beli kopi 15000\nbuat rapat"))
	assert.Equal(t,
		Intent{Kind: RecordExpense, Description: "nasi", AmountText: "2 juta"},
		Parse("bayar nasi 2 juta\nkantor\nlantai 3"))
}

func Test_OnVerbLaterInText_ShouldSplitFromThatVerb(t *testing.T) {
	assert.Equal(t,
		Intent{Kind: RecordExpense, Description: "kopi", AmountText: "15000"},
		Parse("makanan beli kopi 15000"))
}

func Test_OnRecordVerbWithoutArguments_ShouldBeMalformed(t *testing.T) {
	for _, text := range []string{"beli", "beli kopi", "makanan enak 5000", "bayar"} {
		got := Parse(text)
		assert.Equal(t, RecordExpense, got.Kind, text)
		assert.True(t, got.Malformed, text)
	}
}

func Test_OnDeleteByKeyword_ShouldExtractKeyword(t *testing.T) {
	assert.Equal(t, Intent{Kind: DeleteByKeyword, Keyword: "kopi"}, Parse("hapus beli kopi"))
	assert.Equal(t, Intent{Kind: DeleteByKeyword, Keyword: "nasi goreng"}, Parse("hapus beli   nasi goreng"))
	assert.Equal(t, Intent{Kind: DeleteByKeyword, Malformed: true}, Parse("hapus beli"))
}

func Test_OnDeleteByKeyword_ShouldWinOverRecordExpense(t *testing.T) {
	// "hapus beli" contains the record verb but is matched first
	assert.Equal(t, DeleteByKeyword, Parse("hapus beli kopi 15000").Kind)
}

func Test_OnDeleteAll_ShouldMatchExactPhrase(t *testing.T) {
	assert.Equal(t, Intent{Kind: DeleteAll}, Parse("hapus semua"))
	assert.Equal(t, Unknown, Parse("hapus semua dong").Kind)
}

func Test_OnMonthlyReport_ShouldCaptureMonthWord(t *testing.T) {
	assert.Equal(t, Intent{Kind: MonthlyReport, Month: "april"}, Parse("laporan bulan april"))
	assert.Equal(t, Intent{Kind: MonthlyReport, Month: "mars"}, Parse("tolong laporan bulan mars"))
	assert.Equal(t, Intent{Kind: MonthlyReport}, Parse("laporan bulan"))
}

func Test_OnReport_ShouldDistinguishFilteredAndPlain(t *testing.T) {
	assert.Equal(t, Intent{Kind: Report}, Parse("laporan"))
	assert.Equal(t, Intent{Kind: CategoryReport, Keyword: "makan"}, Parse("laporan makan"))
	assert.Equal(t, Intent{Kind: CategoryReport, Keyword: "ini"}, Parse("laporan   ini"))
}

func Test_OnHelpWords_ShouldReturnHelp(t *testing.T) {
	assert.Equal(t, Help, Parse("/start").Kind)
	assert.Equal(t, Help, Parse("bantuan").Kind)
}

func Test_OnUnrecognizedText_ShouldReturnUnknown(t *testing.T) {
	assert.Equal(t, Intent{Kind: Unknown}, Parse("halo"))
	assert.Equal(t, Intent{Kind: Unknown}, Parse(""))
	assert.Equal(t, Intent{Kind: Unknown}, Parse("laporanku"))
}

func Test_OnKindString_ShouldUseMetricFriendlyNames(t *testing.T) {
	assert.Equal(t, "record_expense", RecordExpense.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
