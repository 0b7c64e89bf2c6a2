package elements

import (
	"time"

	"github.com/shopspring/decimal"
)

// Factories for field declarations. Each returns the default value of the
// field, which also serves as the decode-dispatch target for its tag.

// TextOf declares a plain text field.
func TextOf(space, local string) func() Value {
	return func() Value { return NewText(space, local, "") }
}

// DecimalOf declares an exact-precision decimal field.
func DecimalOf(space, local string) func() Value {
	return func() Value { return NewDecimal(space, local, decimal.Zero) }
}

// QuantityOf declares a quantity field.
func QuantityOf(space, local string) func() Value {
	return func() Value { return NewQuantity(space, local, decimal.Zero, "") }
}

// CurrencyOf declares a currency-amount field (currency defaults to EUR).
func CurrencyOf(space, local string) func() Value {
	return func() Value { return NewCurrencyAmount(space, local, decimal.Zero) }
}

// ClassificationOf declares a coded classification field.
func ClassificationOf(space, local string) func() Value {
	return func() Value { return NewClassification(space, local, "", "", "") }
}

// AgencyIDOf declares an agency-qualified code field.
func AgencyIDOf(space, local string) func() Value {
	return func() Value { return NewAgencyID(space, local, "", "") }
}

// IDOf declares a scheme-qualified identifier field.
func IDOf(space, local string) func() Value {
	return func() Value { return NewID(space, local, "", "") }
}

// DateOf declares a calendar-date field (format code 102).
func DateOf(space, local string) func() Value {
	return func() Value { return NewDate(space, local, time.Time{}) }
}

// IndicatorOf declares a boolean indicator field.
func IndicatorOf(space, local string) func() Value {
	return func() Value { return NewIndicator(space, local, false) }
}

// ContainerOf declares a repeatable field of items produced by newItem.
func ContainerOf(newItem func() Value) func() Value {
	return func() Value { return NewContainer(newItem) }
}
