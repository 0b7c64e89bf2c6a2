package models

import "github.com/olf42/drafthorse/elements"

// LineDocument numbers a trade line item within the document.
var LineDocument = elements.Define(elements.NSRAM, "AssociatedDocumentLineDocument").
	Field("LineID", text("LineID")).
	MustBuild()

// tradePrice is the shared shape of gross and net product prices.
var tradePrice = elements.Define(elements.NSRAM, "TradePrice").
	Field("Amount", amount("ChargeAmount")).
	Field("BasisQuantity", quantity("BasisQuantity")).
	MustBuild()

// GrossPrice is the product price before allowances and charges.
var GrossPrice = elements.Define(elements.NSRAM, "GrossPriceProductTradePrice").
	Extend(tradePrice).
	MustBuild()

// NetPrice is the effective product price.
var NetPrice = elements.Define(elements.NSRAM, "NetPriceProductTradePrice").
	Extend(tradePrice).
	MustBuild()

// LineAgreement carries the per-line pricing.
var LineAgreement = elements.Define(elements.NSRAM, "SpecifiedSupplyChainTradeAgreement").
	Field("GrossPrice", of(GrossPrice)).
	Field("NetPrice", of(NetPrice)).
	MustBuild()

// LineDelivery carries the billed quantity of the line.
var LineDelivery = elements.Define(elements.NSRAM, "SpecifiedSupplyChainTradeDelivery").
	Field("BilledQuantity", quantity("BilledQuantity")).
	MustBuild()

// LineSettlement carries the per-line taxes and summation.
var LineSettlement = elements.Define(elements.NSRAM, "SpecifiedSupplyChainTradeSettlement").
	Field("TradeTaxes", listOf(TradeTax)).Default().
	Field("MonetarySummation", of(MonetarySummation)).
	MustBuild()

// ProductClassification wraps the coded classification of a product.
var ProductClassification = elements.Define(elements.NSRAM, "DesignatedProductClassification").
	Field("ClassCode", classification("ClassCode")).
	MustBuild()

// TradeProduct describes the invoiced product.
var TradeProduct = elements.Define(elements.NSRAM, "SpecifiedTradeProduct").
	Field("GlobalID", id("GlobalID")).
	Field("SellerAssignedID", text("SellerAssignedID")).
	Field("BuyerAssignedID", text("BuyerAssignedID")).
	Field("Name", text("Name")).
	Field("Description", text("Description")).
	Field("Classification", of(ProductClassification)).
	MustBuild()

// LineItem is one invoiced position.
var LineItem = elements.Define(elements.NSRAM, "IncludedSupplyChainTradeLineItem").
	Field("Document", of(LineDocument)).
	Field("Agreement", of(LineAgreement)).
	Field("Delivery", of(LineDelivery)).
	Field("Settlement", of(LineSettlement)).
	Field("Product", of(TradeProduct)).
	MustBuild()
