// Command drafthorse builds and validates ZUGFeRD 1.0 invoice documents.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	drafthorse "github.com/olf42/drafthorse"
	"github.com/olf42/drafthorse/elements"
	"github.com/olf42/drafthorse/models"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "build":
		buildCmd(os.Args[2:])
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "drafthorse CLI\n\nUsage:\n  drafthorse build -in invoice.yaml -o invoice.xml\n  drafthorse validate [-schema ZUGFeRD1p0] invoice.xml")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var schema string
	fs.StringVar(&schema, "schema", models.SchemaZUGFeRD1p0, "schema profile to validate against")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ctx := context.Background()
	err = drafthorse.Validate(ctx, data, schema)
	if err == nil && schema == models.SchemaZUGFeRD1p0 {
		_, err = models.CrossIndustryDocument.Parse(data)
	}
	if err != nil {
		report(err)
		os.Exit(1)
	}
	fmt.Println("ok")
}

// report prints validation issues as JSON, one object per issue.
func report(err error) {
	iss, ok := drafthorse.AsIssues(err)
	if !ok {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	out, jerr := json.MarshalIndent(iss, "", "  ")
	if jerr != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Fprintln(os.Stderr, string(out))
}

// invoiceSpec is the YAML description consumed by the build subcommand.
type invoiceSpec struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	TypeCode  string `yaml:"type_code"`
	IssueDate string `yaml:"issue_date"` // 2006-01-02
	Language  string `yaml:"language"`
	Guideline string `yaml:"guideline"`
	Test      bool   `yaml:"test"`
	Currency  string `yaml:"currency"`

	Notes []struct {
		Content string `yaml:"content"`
		Subject string `yaml:"subject"`
	} `yaml:"notes"`

	Seller       partySpec `yaml:"seller"`
	Buyer        partySpec `yaml:"buyer"`
	DeliveryDate string    `yaml:"delivery_date"`
	PaymentRef   string    `yaml:"payment_reference"`

	Lines []struct {
		LineID    string `yaml:"line_id"`
		Name      string `yaml:"name"`
		Quantity  string `yaml:"quantity"`
		Unit      string `yaml:"unit"`
		NetPrice  string `yaml:"net_price"`
		LineTotal string `yaml:"line_total"`
	} `yaml:"lines"`

	Totals struct {
		LineTotal     string `yaml:"line_total"`
		TaxBasisTotal string `yaml:"tax_basis_total"`
		TaxTotal      string `yaml:"tax_total"`
		GrandTotal    string `yaml:"grand_total"`
		TaxPercent    string `yaml:"tax_percent"`
		TaxCategory   string `yaml:"tax_category"`
	} `yaml:"totals"`
}

type partySpec struct {
	Name     string `yaml:"name"`
	Postcode string `yaml:"postcode"`
	LineOne  string `yaml:"line_one"`
	City     string `yaml:"city"`
	Country  string `yaml:"country"`
	VATID    string `yaml:"vat_id"`
}

func buildCmd(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	var in, out string
	fs.StringVar(&in, "in", "", "YAML invoice description")
	fs.StringVar(&out, "o", "", "output XML filename")
	_ = fs.Parse(args)
	if in == "" || out == "" {
		fs.Usage()
		os.Exit(2)
	}
	data, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	var spec invoiceSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		fmt.Fprintln(os.Stderr, "invalid invoice description:", err)
		os.Exit(1)
	}
	doc, err := buildDocument(&spec)
	if err != nil {
		report(err)
		os.Exit(1)
	}
	rendered, err := doc.Serialize(context.Background())
	if err != nil {
		report(err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, rendered, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildDocument(spec *invoiceSpec) (*elements.Element, error) {
	doc := models.NewDocument()

	ctxEl := doc.Field("Context").(*elements.Element)
	if spec.Test {
		ctxEl.Field("TestIndicator").(*elements.Indicator).Value = true
	}
	guideline := spec.Guideline
	if guideline == "" {
		guideline = elements.NSFERD + ":comfort"
	}
	param := ctxEl.Field("GuidelineParameter").(*elements.Element)
	param.Field("ID").(*elements.Text).Text = guideline

	hdr := doc.Field("Header").(*elements.Element)
	hdr.Field("ID").(*elements.Text).Text = spec.ID
	hdr.Field("Name").(*elements.Text).Text = spec.Name
	hdr.Field("TypeCode").(*elements.Text).Text = spec.TypeCode
	if spec.IssueDate != "" {
		d, err := parseDate(spec.IssueDate)
		if err != nil {
			return nil, err
		}
		hdr.Field("IssueDateTime").(*elements.Date).Value = d
	}
	if spec.Language != "" {
		hdr.Field("LanguageID").(*elements.Text).Text = spec.Language
	}
	notes := hdr.Field("Notes").(*elements.Container)
	for _, n := range spec.Notes {
		note := models.IncludedNote.New()
		note.Field("Content").(*elements.Text).Text = n.Content
		if n.Subject != "" {
			note.Field("SubjectCode").(*elements.Text).Text = n.Subject
		}
		notes.MustAppend(note)
	}

	tx := doc.Field("Transaction").(*elements.Element)
	agreement := tx.Field("Agreement").(*elements.Element)
	if err := fillParty(agreement.Field("SellerTradeParty").(*elements.Element), &spec.Seller); err != nil {
		return nil, err
	}
	if err := fillParty(agreement.Field("BuyerTradeParty").(*elements.Element), &spec.Buyer); err != nil {
		return nil, err
	}

	if spec.DeliveryDate != "" {
		d, err := parseDate(spec.DeliveryDate)
		if err != nil {
			return nil, err
		}
		event := tx.Field("Delivery").(*elements.Element).Field("Event").(*elements.Element)
		event.Field("OccurrenceDateTime").(*elements.Date).Value = d
	}

	settlement := tx.Field("Settlement").(*elements.Element)
	if spec.PaymentRef != "" {
		settlement.Field("PaymentReference").(*elements.Text).Text = spec.PaymentRef
	}
	currency := spec.Currency
	if currency == "" {
		currency = "EUR"
	}
	settlement.Field("CurrencyCode").(*elements.Text).Text = currency

	if spec.Totals.TaxTotal != "" {
		tax := models.TradeTax.New()
		tax.Field("TypeCode").(*elements.Text).Text = "VAT"
		if spec.Totals.TaxCategory != "" {
			tax.Field("CategoryCode").(*elements.Text).Text = spec.Totals.TaxCategory
		}
		if err := fillAmount(tax, "CalculatedAmount", spec.Totals.TaxTotal, currency); err != nil {
			return nil, err
		}
		if err := fillAmount(tax, "BasisAmount", spec.Totals.TaxBasisTotal, currency); err != nil {
			return nil, err
		}
		if spec.Totals.TaxPercent != "" {
			p, err := parseDecimal(spec.Totals.TaxPercent)
			if err != nil {
				return nil, err
			}
			tax.Field("ApplicablePercent").(*elements.Decimal).Value = p
		}
		settlement.Field("TradeTaxes").(*elements.Container).MustAppend(tax)
	}

	summation := settlement.Field("MonetarySummation").(*elements.Element)
	totals := []struct{ field, raw string }{
		{"LineTotal", spec.Totals.LineTotal},
		{"TaxBasisTotal", spec.Totals.TaxBasisTotal},
		{"TaxTotal", spec.Totals.TaxTotal},
		{"GrandTotal", spec.Totals.GrandTotal},
	}
	for _, t := range totals {
		if err := fillAmount(summation, t.field, t.raw, currency); err != nil {
			return nil, err
		}
	}

	lines := tx.Field("LineItems").(*elements.Container)
	for i, l := range spec.Lines {
		item := models.LineItem.New()
		lineID := l.LineID
		if lineID == "" {
			lineID = fmt.Sprintf("%d", i+1)
		}
		item.Field("Document").(*elements.Element).Field("LineID").(*elements.Text).Text = lineID
		item.Field("Product").(*elements.Element).Field("Name").(*elements.Text).Text = l.Name
		if l.Quantity != "" {
			q, err := parseDecimal(l.Quantity)
			if err != nil {
				return nil, err
			}
			billed := item.Field("Delivery").(*elements.Element).Field("BilledQuantity").(*elements.Quantity)
			billed.Amount = q
			billed.UnitCode = l.Unit
		}
		if l.NetPrice != "" {
			price := item.Field("Agreement").(*elements.Element).Field("NetPrice").(*elements.Element)
			if err := fillAmount(price, "Amount", l.NetPrice, currency); err != nil {
				return nil, err
			}
		}
		if l.LineTotal != "" {
			sum := item.Field("Settlement").(*elements.Element).Field("MonetarySummation").(*elements.Element)
			if err := fillAmount(sum, "LineTotal", l.LineTotal, currency); err != nil {
				return nil, err
			}
		}
		lines.MustAppend(item)
	}

	return doc, nil
}

func fillParty(el *elements.Element, spec *partySpec) error {
	if spec.Name == "" {
		return nil
	}
	el.Field("Name").(*elements.Text).Text = spec.Name
	addr := el.Field("PostalAddress").(*elements.Element)
	addr.Field("PostcodeCode").(*elements.Text).Text = spec.Postcode
	addr.Field("LineOne").(*elements.Text).Text = spec.LineOne
	addr.Field("CityName").(*elements.Text).Text = spec.City
	addr.Field("CountryID").(*elements.Text).Text = spec.Country
	if spec.VATID != "" {
		reg := models.TaxRegistration.New()
		vat := reg.Field("ID").(*elements.ID)
		vat.Text = spec.VATID
		vat.SchemeID = "VA"
		el.Field("TaxRegistrations").(*elements.Container).MustAppend(reg)
	}
	return nil
}

func fillAmount(el *elements.Element, field, raw, currency string) error {
	if raw == "" {
		return nil
	}
	v, err := parseDecimal(raw)
	if err != nil {
		return err
	}
	a := el.Field(field).(*elements.CurrencyAmount)
	a.Amount = v
	a.Currency = currency
	return nil
}

func parseDecimal(raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return v, nil
}

func parseDate(raw string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", raw, err)
	}
	return d, nil
}
