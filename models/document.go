package models

import "github.com/olf42/drafthorse/elements"

// GuidelineParameter names the guideline (profile) the document follows.
var GuidelineParameter = elements.Define(elements.NSRAM, "GuidelineSpecifiedCIIDocumentContextParameter").
	Field("ID", text("ID")).
	MustBuild()

// DocumentContext is the exchanged-document context: test flag and
// guideline parameter.
var DocumentContext = elements.Define(elements.NSFERD, "SpecifiedExchangedDocumentContext").
	Field("TestIndicator", indicator("TestIndicator")).
	Field("GuidelineParameter", of(GuidelineParameter)).Default().
	MustBuild()

// IncludedNote is one free-text note on the document header.
var IncludedNote = elements.Define(elements.NSRAM, "IncludedNote").
	Field("Content", text("Content")).
	Field("SubjectCode", text("SubjectCode")).
	MustBuild()

// Header is the exchanged document header: identification, type and notes.
var Header = elements.Define(elements.NSFERD, "HeaderExchangedDocument").
	Field("ID", text("ID")).
	Field("Name", text("Name")).
	Field("TypeCode", text("TypeCode")).
	Field("IssueDateTime", date("IssueDateTime")).
	Field("LanguageID", text("LanguageID")).
	Field("Notes", listOf(IncludedNote)).Default().
	MustBuild()

// TradeTransaction groups agreement, delivery, settlement and the line
// items.
var TradeTransaction = elements.Define(elements.NSFERD, "SpecifiedSupplyChainTradeTransaction").
	Field("Agreement", of(TradeAgreement)).Default().
	Field("Delivery", of(TradeDelivery)).Default().
	Field("Settlement", of(TradeSettlement)).Default().
	Field("LineItems", listOf(LineItem)).Default().
	MustBuild()

// CrossIndustryDocument is the ZUGFeRD 1.0 document root. Serializing an
// element of this type validates the rendered bytes against the ZUGFeRD1p0
// schema profile.
var CrossIndustryDocument = elements.Define(elements.NSFERD, "CrossIndustryDocument").
	SchemaName(SchemaZUGFeRD1p0).
	Field("Context", of(DocumentContext)).Default().
	Field("Header", of(Header)).Default().
	Field("Transaction", of(TradeTransaction)).Default().
	MustBuild()

// NewDocument constructs an empty ZUGFeRD 1.0 document with context, header
// and transaction materialized.
func NewDocument() *elements.Element {
	return CrossIndustryDocument.New()
}
