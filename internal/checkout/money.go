package checkout

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TaxRate is the KDV rate applied on top of every credit package price.
const TaxRate = 0.20

// Currency is the ISO currency every price is charged in.
var Currency = currency.TRY

var printer = message.NewPrinter(language.Turkish)

// Lira formats kuruş as a Turkish lira amount, e.g. ₺58,80.
func Lira(cents int64) string {
	return "₺" + printer.Sprintf("%.2f", float64(cents)/100)
}

// Decimal formats kuruş as a plain dot-separated amount, e.g. 58.80.
func Decimal(cents int64) string {
	sign := ""
	if cents < 0 {
		sign, cents = "-", -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// taxOn returns round(cents * TaxRate) with halves rounded away from zero.
func taxOn(cents int64) int64 {
	num := cents * 20 // TaxRate as a percentage
	if num >= 0 {
		return (num + 50) / 100
	}
	return -((-num + 50) / 100)
}
