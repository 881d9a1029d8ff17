// Package currency renders integer cents amounts as localized display
// strings.
package currency

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders cents amounts for a single locale and currency symbol.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter builds a formatter for the given BCP 47 locale tag, e.g.
// "en-US".
func NewFormatter(locale, symbol string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}

	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}, nil
}

// Cents formats an amount stored as cents, e.g. 1050 -> "$10.50".
func (f *Formatter) Cents(cents int64) string {
	dollars := float64(cents) / 100

	return f.printer.Sprintf("%s%v", f.symbol,
		number.Decimal(dollars, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
