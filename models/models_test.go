package models_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	drafthorse "github.com/olf42/drafthorse"
	"github.com/olf42/drafthorse/elements"
	"github.com/olf42/drafthorse/models"
)

func el(v elements.Value) *elements.Element { return v.(*elements.Element) }

func setText(e *elements.Element, name, text string) {
	e.Field(name).(*elements.Text).Text = text
}

func sampleInvoice() *elements.Element {
	doc := models.NewDocument()

	ctxEl := el(doc.Field("Context"))
	ctxEl.Field("TestIndicator").(*elements.Indicator).Value = true
	setText(el(ctxEl.Field("GuidelineParameter")), "ID", elements.NSFERD+":comfort")

	hdr := el(doc.Field("Header"))
	setText(hdr, "ID", "RE1337")
	setText(hdr, "Name", "RECHNUNG")
	setText(hdr, "TypeCode", "380")
	hdr.Field("IssueDateTime").(*elements.Date).Value = time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	note := models.IncludedNote.New()
	setText(note, "Content", "Vielen Dank.")
	hdr.Field("Notes").(*elements.Container).MustAppend(note)

	tx := el(doc.Field("Transaction"))
	agreement := el(tx.Field("Agreement"))
	seller := el(agreement.Field("SellerTradeParty"))
	setText(seller, "Name", "Lieferant GmbH")
	addr := el(seller.Field("PostalAddress"))
	setText(addr, "PostcodeCode", "80331")
	setText(addr, "LineOne", "Musterstr. 1")
	setText(addr, "CityName", "München")
	setText(addr, "CountryID", "DE")
	reg := models.TaxRegistration.New()
	vat := reg.Field("ID").(*elements.ID)
	vat.Text = "DE123456789"
	vat.SchemeID = "VA"
	seller.Field("TaxRegistrations").(*elements.Container).MustAppend(reg)
	setText(el(agreement.Field("BuyerTradeParty")), "Name", "Kunde AG")

	event := el(el(tx.Field("Delivery")).Field("Event"))
	event.Field("OccurrenceDateTime").(*elements.Date).Value = time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)

	settlement := el(tx.Field("Settlement"))
	setText(settlement, "PaymentReference", "RE1337")
	setText(settlement, "CurrencyCode", "EUR")
	tax := models.TradeTax.New()
	setText(tax, "TypeCode", "VAT")
	setText(tax, "CategoryCode", "S")
	tax.Field("ApplicablePercent").(*elements.Decimal).Value = decimal.RequireFromString("19.00")
	tax.Field("BasisAmount").(*elements.CurrencyAmount).Amount = decimal.RequireFromString("123.75")
	tax.Field("CalculatedAmount").(*elements.CurrencyAmount).Amount = decimal.RequireFromString("23.51")
	settlement.Field("TradeTaxes").(*elements.Container).MustAppend(tax)
	sum := el(settlement.Field("MonetarySummation"))
	sum.Field("LineTotal").(*elements.CurrencyAmount).Amount = decimal.RequireFromString("123.75")
	sum.Field("TaxTotal").(*elements.CurrencyAmount).Amount = decimal.RequireFromString("23.51")
	sum.Field("GrandTotal").(*elements.CurrencyAmount).Amount = decimal.RequireFromString("147.26")

	line := models.LineItem.New()
	setText(el(line.Field("Document")), "LineID", "1")
	product := el(line.Field("Product"))
	setText(product, "Name", "Rainbow")
	billed := el(line.Field("Delivery")).Field("BilledQuantity").(*elements.Quantity)
	billed.Amount = decimal.RequireFromString("12.50")
	billed.UnitCode = "C62"
	lineSum := el(el(line.Field("Settlement")).Field("MonetarySummation"))
	lineSum.Field("LineTotal").(*elements.CurrencyAmount).Amount = decimal.RequireFromString("123.75")
	tx.Field("LineItems").(*elements.Container).MustAppend(line)

	return doc
}

func TestInvoice_SerializeParseRoundTrip(t *testing.T) {
	doc := sampleInvoice()
	out, err := doc.Serialize(context.Background())
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if !strings.HasPrefix(string(out), `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Fatalf("missing prologue: %.60s", out)
	}
	for _, want := range []string{
		`xmlns:rsm="urn:ferd:CrossIndustryDocument:invoice:1p0"`,
		"<rsm:HeaderExchangedDocument>",
		"<ram:ID>RE1337</ram:ID>",
		`<udt:DateTimeString format="102">20230115</udt:DateTimeString>`,
		`<ram:BilledQuantity unitCode="C62">12.5</ram:BilledQuantity>`,
	} {
		if !strings.Contains(string(out), want) {
			t.Fatalf("rendered document misses %q:\n%s", want, out)
		}
	}

	back, err := models.CrossIndustryDocument.Parse(out)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	hdr := el(back.Field("Header"))
	if got := hdr.Field("ID").(*elements.Text).Text; got != "RE1337" {
		t.Fatalf("header ID changed: %q", got)
	}
	if got := hdr.Field("IssueDateTime").(*elements.Date).Value; !got.Equal(time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("issue date changed: %v", got)
	}
	tx := el(back.Field("Transaction"))
	seller := el(el(tx.Field("Agreement")).Field("SellerTradeParty"))
	if got := seller.Field("Name").(*elements.Text).Text; got != "Lieferant GmbH" {
		t.Fatalf("seller changed: %q", got)
	}
	regs := seller.Field("TaxRegistrations").(*elements.Container)
	if regs.Len() != 1 {
		t.Fatalf("tax registrations lost: %d", regs.Len())
	}
	vat := el(regs.Items()[0]).Field("ID").(*elements.ID)
	if vat.Text != "DE123456789" || vat.SchemeID != "VA" {
		t.Fatalf("vat registration changed: %s", vat)
	}
	lines := tx.Field("LineItems").(*elements.Container)
	if lines.Len() != 1 {
		t.Fatalf("line items lost: %d", lines.Len())
	}
	line := el(lines.Items()[0])
	billed := el(line.Field("Delivery")).Field("BilledQuantity").(*elements.Quantity)
	if !billed.Amount.Equal(decimal.RequireFromString("12.50")) || billed.UnitCode != "C62" {
		t.Fatalf("billed quantity changed: %s", billed)
	}
	sum := el(el(tx.Field("Settlement")).Field("MonetarySummation"))
	if got := sum.Field("GrandTotal").(*elements.CurrencyAmount); !got.Amount.Equal(decimal.RequireFromString("147.26")) || got.Currency != "EUR" {
		t.Fatalf("grand total changed: %s", got)
	}
	flag := el(back.Field("Context")).Field("TestIndicator").(*elements.Indicator)
	if !flag.Value {
		t.Fatalf("test indicator lost")
	}
}

func TestZUGFeRDValidator_RejectsForeignRoot(t *testing.T) {
	doc := []byte(`<?xml version="1.0" encoding="UTF-8"?><invoice/>`)
	err := drafthorse.Validate(context.Background(), doc, models.SchemaZUGFeRD1p0)
	iss, ok := drafthorse.AsIssues(err)
	if !ok || iss[0].Code != drafthorse.CodeValidationFailed {
		t.Fatalf("expected validation_failed, got %v", err)
	}
}

func TestZUGFeRDValidator_RequiresEnvelope(t *testing.T) {
	doc := []byte(`<?xml version="1.0" encoding="UTF-8"?>` +
		`<rsm:CrossIndustryDocument xmlns:rsm="urn:ferd:CrossIndustryDocument:invoice:1p0">` +
		`<rsm:HeaderExchangedDocument/>` +
		`</rsm:CrossIndustryDocument>`)
	err := drafthorse.Validate(context.Background(), doc, models.SchemaZUGFeRD1p0)
	iss, ok := drafthorse.AsIssues(err)
	if !ok || iss[0].Code != drafthorse.CodeValidationFailed {
		t.Fatalf("expected validation_failed for missing context, got %v", err)
	}
	if !strings.Contains(iss[0].Message, "SpecifiedExchangedDocumentContext") {
		t.Fatalf("issue should name the missing element, got %q", iss[0].Message)
	}
}

func TestZUGFeRDValidator_RejectsMalformedBytes(t *testing.T) {
	err := drafthorse.Validate(context.Background(), []byte("<oops"), models.SchemaZUGFeRD1p0)
	iss, ok := drafthorse.AsIssues(err)
	if !ok || iss[0].Code != drafthorse.CodeValidationFailed {
		t.Fatalf("expected validation_failed, got %v", err)
	}
}
