package models

import "github.com/olf42/drafthorse/elements"

// PostalTradeAddress carries the structured postal address of a trade party.
var PostalTradeAddress = elements.Define(elements.NSRAM, "PostalTradeAddress").
	Field("PostcodeCode", text("PostcodeCode")).
	Field("LineOne", text("LineOne")).
	Field("LineTwo", text("LineTwo")).
	Field("CityName", text("CityName")).
	Field("CountryID", text("CountryID")).
	MustBuild()

// TaxRegistration is one tax registration of a trade party; the scheme ID
// distinguishes VAT from fiscal numbers.
var TaxRegistration = elements.Define(elements.NSRAM, "SpecifiedTaxRegistration").
	Field("ID", id("ID")).
	MustBuild()

// tradeParty is the shared field set of seller and buyer; the concrete
// types extend it under their own tags.
var tradeParty = elements.Define(elements.NSRAM, "TradeParty").
	Field("ID", text("ID")).
	Field("GlobalID", id("GlobalID")).
	Field("Name", text("Name")).
	Field("PostalAddress", of(PostalTradeAddress)).
	Field("TaxRegistrations", listOf(TaxRegistration)).Default().
	MustBuild()

// SellerTradeParty identifies the invoicing party.
var SellerTradeParty = elements.Define(elements.NSRAM, "SellerTradeParty").
	Extend(tradeParty).
	MustBuild()

// BuyerTradeParty identifies the invoiced party.
var BuyerTradeParty = elements.Define(elements.NSRAM, "BuyerTradeParty").
	Extend(tradeParty).
	MustBuild()
