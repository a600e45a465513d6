// Package format renders protocol figures as display strings. Missing values
// render as zero rather than failing.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	ZeroAmount = "0.00"
	ZeroUSD    = "$0.00"
	Infinity   = "∞"
)

// health factors above this are reported by the protocol for accounts without debt
var infiniteHealth = decimal.New(1, 18)

var printer = message.NewPrinter(language.English)

// Amount renders value with the given number of fraction digits and
// thousands grouping.
func Amount(value *decimal.Decimal, decimals int) string {
	if value == nil {
		return ZeroAmount
	}
	return fixed(*value, decimals)
}

func USD(value *decimal.Decimal) string {
	if value == nil {
		return ZeroUSD
	}
	return "$" + fixed(*value, 2)
}

// HealthFactor renders the health factor with two digits, or Infinity for
// accounts that carry no debt.
func HealthFactor(value *decimal.Decimal) string {
	if value == nil {
		return ZeroAmount
	}
	if value.GreaterThan(infiniteHealth) {
		return Infinity
	}
	return fixed(*value, 2)
}

// Percent renders a ratio such as an APY of 0.0451 as "4.51%".
func Percent(value *decimal.Decimal) string {
	if value == nil {
		return ZeroAmount + "%"
	}
	return fixed(value.Shift(2), 2) + "%"
}

func fixed(value decimal.Decimal, decimals int) string {
	return printer.Sprint(number.Decimal(value.Round(int32(decimals)).InexactFloat64(), number.Scale(decimals)))
}

type HealthClass string

const (
	HealthUnknown HealthClass = "unknown"
	HealthGood    HealthClass = "healthy"
	HealthWarning HealthClass = "warning"
	HealthDanger  HealthClass = "danger"
)

var (
	healthyAbove = decimal.RequireFromString("1.5")
	warningAbove = decimal.NewFromInt(1)
)

// ClassifyHealth buckets a health factor: above 1.5 is healthy, above 1.0 a
// warning and anything lower in danger of liquidation.
func ClassifyHealth(value *decimal.Decimal) HealthClass {
	switch {
	case value == nil:
		return HealthUnknown
	case value.GreaterThan(healthyAbove):
		return HealthGood
	case value.GreaterThan(warningAbove):
		return HealthWarning
	default:
		return HealthDanger
	}
}
