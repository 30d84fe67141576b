package riskreward

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.English)

// FormatCurrency renders a dollar amount with precision picked by
// magnitude. Macro-priced instruments get the usual 2 decimals with
// thousands grouping; micro-priced ones (crypto) get progressively
// more decimals so the value isn't formatted away to $0.00.
func FormatCurrency(v float64) string {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1:
		return usd.Sprintf("$%.2f", v)
	case abs >= 0.01:
		return usd.Sprintf("$%.4f", v)
	case abs >= 0.0001:
		return usd.Sprintf("$%.6f", v)
	default:
		return usd.Sprintf("$%.8f", v)
	}
}
