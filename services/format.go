package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// MoneyFormatter renders an amount for display. It never changes the value.
type MoneyFormatter func(amount float64) string

// FormatEUR formats an amount in French notation with a space as thousands
// separator and a comma as decimal separator (e.g. "3 120,00 €").
func FormatEUR(amount float64) string {
	return humanize.FormatFloat("# ###,##", amount) + " €"
}

// FormatEURCompact is FormatEUR without the decimals when the amount is whole
// (e.g. "180 €", "412,50 €"). Used in derivation strings.
func FormatEURCompact(amount float64) string {
	if amount == float64(int64(amount)) {
		return humanize.FormatFloat("# ###,", amount) + " €"
	}
	return FormatEUR(amount)
}

// FormatDays renders a day count with its unit, e.g. "1 jour", "2,5 jours".
// Counts up to one take the singular.
func FormatDays(days float64) string {
	n := strings.Replace(strconv.FormatFloat(days, 'f', -1, 64), ".", ",", 1)
	if days <= 1 {
		return n + " jour"
	}
	return n + " jours"
}

// FormatPercent renders a rate such as 0.2 as "20 %".
func FormatPercent(rate float64) string {
	return formatCount(math.Round(rate*10000)/100) + " %"
}
