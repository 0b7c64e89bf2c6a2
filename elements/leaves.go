package elements

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	drafthorse "github.com/olf42/drafthorse"
	"github.com/olf42/drafthorse/xmltree"
)

// leaf carries the per-field tag shared by every leaf variant.
type leaf struct {
	tag xmltree.Name
}

// Tag reports the qualified tag this leaf encodes to.
func (l leaf) Tag() xmltree.Name { return l.tag }

func (l leaf) node() *xmltree.Node { return xmltree.New(l.tag) }

func (l leaf) issue(code, msg string) drafthorse.Issues {
	return drafthorse.Issues{{Path: "/", Code: code, Tag: l.tag.String(), Message: msg}}
}

func (l leaf) missingAttr(key string) drafthorse.Issues {
	return drafthorse.Issues{{
		Path: "/", Code: drafthorse.CodeMissingAttribute, Tag: l.tag.String(), Attr: key,
		Message: fmt.Sprintf("required attribute %s absent on %s", key, l.tag),
	}}
}

func parseAmount(l leaf, text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, drafthorse.Issues{{
			Path: "/", Code: drafthorse.CodeInvalidDecimal, Tag: l.tag.String(),
			Message: fmt.Sprintf("malformed decimal %q", text), Cause: err,
		}}
	}
	return d, nil
}

// Text is a plain text leaf.
type Text struct {
	leaf
	Text string
}

// NewText returns a text leaf under the given qualified tag.
func NewText(space, local, text string) *Text {
	return &Text{leaf: leaf{tag: xmltree.Name{Space: space, Local: local}}, Text: text}
}

func (t *Text) String() string { return t.Text }

func (t *Text) encodeInto(parent *xmltree.Node) {
	n := t.node()
	n.Text = t.Text
	parent.Append(n)
}

func (t *Text) decodeNode(n *xmltree.Node) error {
	t.Text = n.Text
	return nil
}

// Decimal is an exact-precision number leaf.
type Decimal struct {
	leaf
	Value decimal.Decimal
}

// NewDecimal returns a decimal leaf under the given qualified tag.
func NewDecimal(space, local string, value decimal.Decimal) *Decimal {
	return &Decimal{leaf: leaf{tag: xmltree.Name{Space: space, Local: local}}, Value: value}
}

func (d *Decimal) String() string { return d.Value.String() }

func (d *Decimal) encodeInto(parent *xmltree.Node) {
	n := d.node()
	n.Text = d.Value.String()
	parent.Append(n)
}

func (d *Decimal) decodeNode(n *xmltree.Node) error {
	v, err := parseAmount(d.leaf, n.Text)
	if err != nil {
		return err
	}
	d.Value = v
	return nil
}

// Quantity is an amount with a unit code attribute.
type Quantity struct {
	leaf
	Amount   decimal.Decimal
	UnitCode string
}

// NewQuantity returns a quantity leaf under the given qualified tag.
func NewQuantity(space, local string, amount decimal.Decimal, unitCode string) *Quantity {
	return &Quantity{leaf: leaf{tag: xmltree.Name{Space: space, Local: local}}, Amount: amount, UnitCode: unitCode}
}

func (q *Quantity) String() string { return fmt.Sprintf("%s %s", q.Amount, q.UnitCode) }

func (q *Quantity) encodeInto(parent *xmltree.Node) {
	n := q.node()
	n.Text = q.Amount.String()
	n.SetAttr("unitCode", q.UnitCode)
	parent.Append(n)
}

func (q *Quantity) decodeNode(n *xmltree.Node) error {
	amount, err := parseAmount(q.leaf, n.Text)
	if err != nil {
		return err
	}
	unit, ok := n.Attr("unitCode")
	if !ok {
		return q.missingAttr("unitCode")
	}
	q.Amount = amount
	q.UnitCode = unit
	return nil
}

// CurrencyAmount is an amount with a currency code attribute. The currency
// defaults to EUR.
type CurrencyAmount struct {
	leaf
	Amount   decimal.Decimal
	Currency string
}

// NewCurrencyAmount returns a currency-amount leaf with currency EUR.
func NewCurrencyAmount(space, local string, amount decimal.Decimal) *CurrencyAmount {
	return &CurrencyAmount{leaf: leaf{tag: xmltree.Name{Space: space, Local: local}}, Amount: amount, Currency: "EUR"}
}

func (c *CurrencyAmount) String() string { return fmt.Sprintf("%s %s", c.Amount, c.Currency) }

func (c *CurrencyAmount) encodeInto(parent *xmltree.Node) {
	n := c.node()
	n.Text = c.Amount.String()
	n.SetAttr("currencyID", c.Currency)
	parent.Append(n)
}

func (c *CurrencyAmount) decodeNode(n *xmltree.Node) error {
	amount, err := parseAmount(c.leaf, n.Text)
	if err != nil {
		return err
	}
	currency, ok := n.Attr("currencyID")
	if !ok {
		return c.missingAttr("currencyID")
	}
	c.Amount = amount
	c.Currency = currency
	return nil
}

// Classification is a coded value qualified by list ID and list version.
// Its primary value is opaque text on both paths.
type Classification struct {
	leaf
	Text          string
	ListID        string
	ListVersionID string
}

// NewClassification returns a classification leaf under the given qualified
// tag.
func NewClassification(space, local, text, listID, listVersionID string) *Classification {
	return &Classification{
		leaf: leaf{tag: xmltree.Name{Space: space, Local: local}},
		Text: text, ListID: listID, ListVersionID: listVersionID,
	}
}

func (c *Classification) String() string {
	return fmt.Sprintf("%s (%s %s)", c.Text, c.ListID, c.ListVersionID)
}

func (c *Classification) encodeInto(parent *xmltree.Node) {
	n := c.node()
	n.Text = c.Text
	n.SetAttr("listID", c.ListID)
	n.SetAttr("listVersionID", c.ListVersionID)
	parent.Append(n)
}

func (c *Classification) decodeNode(n *xmltree.Node) error {
	c.Text = n.Text
	c.ListID, _ = n.Attr("listID")
	c.ListVersionID, _ = n.Attr("listVersionID")
	return nil
}

// AgencyID is a code qualified by the agency that maintains its scheme.
type AgencyID struct {
	leaf
	Text           string
	SchemeAgencyID string
}

// NewAgencyID returns an agency-qualified code leaf.
func NewAgencyID(space, local, text, schemeAgencyID string) *AgencyID {
	return &AgencyID{leaf: leaf{tag: xmltree.Name{Space: space, Local: local}}, Text: text, SchemeAgencyID: schemeAgencyID}
}

func (a *AgencyID) String() string { return fmt.Sprintf("%s (%s)", a.Text, a.SchemeAgencyID) }

func (a *AgencyID) encodeInto(parent *xmltree.Node) {
	n := a.node()
	n.Text = a.Text
	n.SetAttr("schemeAgencyID", a.SchemeAgencyID)
	parent.Append(n)
}

func (a *AgencyID) decodeNode(n *xmltree.Node) error {
	a.Text = n.Text
	a.SchemeAgencyID, _ = n.Attr("schemeAgencyID")
	return nil
}

// ID is an identifier qualified by its scheme.
type ID struct {
	leaf
	Text     string
	SchemeID string
}

// NewID returns a scheme-qualified identifier leaf.
func NewID(space, local, text, schemeID string) *ID {
	return &ID{leaf: leaf{tag: xmltree.Name{Space: space, Local: local}}, Text: text, SchemeID: schemeID}
}

func (i *ID) String() string { return fmt.Sprintf("%s (%s)", i.Text, i.SchemeID) }

func (i *ID) encodeInto(parent *xmltree.Node) {
	n := i.node()
	n.Text = i.Text
	n.SetAttr("schemeID", i.SchemeID)
	parent.Append(n)
}

func (i *ID) decodeNode(n *xmltree.Node) error {
	i.Text = n.Text
	i.SchemeID, _ = n.Attr("schemeID")
	return nil
}

// DateFormat102 is the only supported date format code (CCYYMMDD).
const DateFormat102 = "102"

var dateTimeStringTag = xmltree.Name{Space: NSUDT, Local: "DateTimeString"}

// Date is a calendar-date leaf. On the wire it wraps one DateTimeString
// child carrying the formatted date and the format code.
type Date struct {
	leaf
	Value  time.Time
	Format string
}

// NewDate returns a date leaf with format code 102.
func NewDate(space, local string, value time.Time) *Date {
	return &Date{leaf: leaf{tag: xmltree.Name{Space: space, Local: local}}, Value: value, Format: DateFormat102}
}

func (d *Date) String() string { return d.Value.Format("2006-01-02") }

func (d *Date) encodeInto(parent *xmltree.Node) {
	n := d.node()
	c := xmltree.New(dateTimeStringTag)
	c.Text = d.Value.Format("20060102")
	c.SetAttr("format", d.Format)
	n.Append(c)
	parent.Append(n)
}

func (d *Date) decodeNode(n *xmltree.Node) error {
	if len(n.Children) != 1 {
		return d.issue(drafthorse.CodeMalformedDate,
			fmt.Sprintf("date containers should have one child, found %d", len(n.Children)))
	}
	c := n.Children[0]
	if c.Name != dateTimeStringTag {
		return d.issue(drafthorse.CodeMalformedDate,
			fmt.Sprintf("tag %s not recognized inside date container", c.Name))
	}
	format, ok := c.Attr("format")
	if !ok {
		return d.missingAttr("format")
	}
	if format != DateFormat102 {
		return d.issue(drafthorse.CodeUnsupportedDateFormat,
			fmt.Sprintf("date format %s cannot be parsed", format))
	}
	v, err := time.Parse("20060102", c.Text)
	if err != nil {
		return d.issue(drafthorse.CodeMalformedDate, fmt.Sprintf("malformed date %q", c.Text))
	}
	d.Value = v
	d.Format = format
	return nil
}

var indicatorTag = xmltree.Name{Space: NSUDT, Local: "Indicator"}

// Indicator is a boolean leaf. On the wire it wraps one Indicator child
// carrying a boolean literal.
type Indicator struct {
	leaf
	Value bool
}

// NewIndicator returns a boolean indicator leaf.
func NewIndicator(space, local string, value bool) *Indicator {
	return &Indicator{leaf: leaf{tag: xmltree.Name{Space: space, Local: local}}, Value: value}
}

func (in *Indicator) String() string { return strconv.FormatBool(in.Value) }

func (in *Indicator) encodeInto(parent *xmltree.Node) {
	n := in.node()
	c := xmltree.New(indicatorTag)
	c.Text = strconv.FormatBool(in.Value)
	n.Append(c)
	parent.Append(n)
}

func (in *Indicator) decodeNode(n *xmltree.Node) error {
	if len(n.Children) != 1 {
		return in.issue(drafthorse.CodeMalformedIndicator,
			fmt.Sprintf("indicator containers should have one child, found %d", len(n.Children)))
	}
	c := n.Children[0]
	if c.Name != indicatorTag {
		return in.issue(drafthorse.CodeMalformedIndicator,
			fmt.Sprintf("tag %s not recognized inside indicator container", c.Name))
	}
	v, err := strconv.ParseBool(c.Text)
	if err != nil {
		return in.issue(drafthorse.CodeInvalidType, fmt.Sprintf("malformed boolean %q", c.Text))
	}
	in.Value = v
	return nil
}
