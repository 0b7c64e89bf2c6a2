package models

import "github.com/olf42/drafthorse/elements"

// TradeAgreement binds the contractual side of the transaction: references
// and the two parties.
var TradeAgreement = elements.Define(elements.NSRAM, "ApplicableSupplyChainTradeAgreement").
	Field("BuyerReference", text("BuyerReference")).
	Field("SellerTradeParty", of(SellerTradeParty)).
	Field("BuyerTradeParty", of(BuyerTradeParty)).
	MustBuild()

// DeliveryEvent is the actual delivery with its occurrence date.
var DeliveryEvent = elements.Define(elements.NSRAM, "ActualDeliverySupplyChainEvent").
	Field("OccurrenceDateTime", date("OccurrenceDateTime")).
	MustBuild()

// TradeDelivery carries the document-level delivery information.
var TradeDelivery = elements.Define(elements.NSRAM, "ApplicableSupplyChainTradeDelivery").
	Field("Event", of(DeliveryEvent)).
	MustBuild()

// PaymentMeans describes how the invoice is to be paid.
var PaymentMeans = elements.Define(elements.NSRAM, "SpecifiedTradeSettlementPaymentMeans").
	Field("TypeCode", agency("TypeCode")).
	Field("Information", text("Information")).
	MustBuild()

// TradeTax is one applicable tax with its calculation basis.
var TradeTax = elements.Define(elements.NSRAM, "ApplicableTradeTax").
	Field("CalculatedAmount", amount("CalculatedAmount")).
	Field("TypeCode", text("TypeCode")).
	Field("BasisAmount", amount("BasisAmount")).
	Field("CategoryCode", text("CategoryCode")).
	Field("ApplicablePercent", percent("ApplicablePercent")).
	MustBuild()

// MonetarySummation totals the settlement. Line items reuse the same type
// for their per-line summation, populating only the line total.
var MonetarySummation = elements.Define(elements.NSRAM, "SpecifiedTradeSettlementMonetarySummation").
	Field("LineTotal", amount("LineTotalAmount")).
	Field("ChargeTotal", amount("ChargeTotalAmount")).
	Field("AllowanceTotal", amount("AllowanceTotalAmount")).
	Field("TaxBasisTotal", amount("TaxBasisTotalAmount")).
	Field("TaxTotal", amount("TaxTotalAmount")).
	Field("GrandTotal", amount("GrandTotalAmount")).
	MustBuild()

// TradeSettlement carries payment reference, currency, payment means, taxes
// and the monetary summation.
var TradeSettlement = elements.Define(elements.NSRAM, "ApplicableSupplyChainTradeSettlement").
	Field("PaymentReference", text("PaymentReference")).
	Field("CurrencyCode", text("InvoiceCurrencyCode")).
	Field("PaymentMeans", listOf(PaymentMeans)).Default().
	Field("TradeTaxes", listOf(TradeTax)).Default().
	Field("MonetarySummation", of(MonetarySummation)).Default().
	MustBuild()
