// Package models defines the ZUGFeRD 1.0 Cross Industry Document profile on
// top of the elements package: the document root, exchanged-document context
// and header, trade parties, delivery, settlement and trade line items.
//
// Importing the package registers the ZUGFeRD1p0 schema validator used by
// Serialize.
package models

import "github.com/olf42/drafthorse/elements"

// Field-factory shorthand for the ram vocabulary, which carries almost all
// business terms of the profile.

func text(local string) func() elements.Value { return elements.TextOf(elements.NSRAM, local) }

func date(local string) func() elements.Value { return elements.DateOf(elements.NSRAM, local) }

func indicator(local string) func() elements.Value {
	return elements.IndicatorOf(elements.NSRAM, local)
}

func amount(local string) func() elements.Value { return elements.CurrencyOf(elements.NSRAM, local) }

func quantity(local string) func() elements.Value {
	return elements.QuantityOf(elements.NSRAM, local)
}

func percent(local string) func() elements.Value { return elements.DecimalOf(elements.NSRAM, local) }

func id(local string) func() elements.Value { return elements.IDOf(elements.NSRAM, local) }

func agency(local string) func() elements.Value { return elements.AgencyIDOf(elements.NSRAM, local) }

func classification(local string) func() elements.Value {
	return elements.ClassificationOf(elements.NSRAM, local)
}

func of(t *elements.Type) func() elements.Value { return elements.Of(t) }

func listOf(t *elements.Type) func() elements.Value {
	return elements.ContainerOf(elements.Of(t))
}
