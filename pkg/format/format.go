// Package format holds the display formatting used by receipts and API
// consumers: Tanzanian shilling amounts with zero decimal places and
// day-first short timestamps.
package format

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	currencyCode = "TZS"
	dateLayout   = "02 Jan 15:04" // en-GB ordering, 24-hour clock
	datePlacehld = "-"
)

var printer = message.NewPrinter(language.MustParse("en-TZ"))

// Currency renders an amount as whole shillings with locale grouping,
// e.g. 1500 -> "TZS 1,500". Fractions are rounded half-up first.
func Currency(amount decimal.Decimal) string {
	return printer.Sprintf("%s %d", currencyCode, amount.Round(0).IntPart())
}

// CurrencyInt is Currency for amounts already held as integers.
func CurrencyInt(amount int64) string {
	return printer.Sprintf("%s %d", currencyCode, amount)
}

// Date renders a timestamp as "02 Jan 15:04". Nil or zero times render as
// the "-" placeholder so empty table cells stay aligned.
func Date(t *time.Time) string {
	if t == nil || t.IsZero() {
		return datePlacehld
	}
	return t.Format(dateLayout)
}
