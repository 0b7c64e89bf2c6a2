package models

import (
	"context"
	"fmt"

	drafthorse "github.com/olf42/drafthorse"
	"github.com/olf42/drafthorse/elements"
	"github.com/olf42/drafthorse/xmltree"
)

// SchemaZUGFeRD1p0 names the ZUGFeRD 1.0 comfort profile.
const SchemaZUGFeRD1p0 = "ZUGFeRD1p0"

func init() {
	drafthorse.RegisterSchema(SchemaZUGFeRD1p0, drafthorse.ValidatorFunc(validateZUGFeRD1p0))
}

// validateZUGFeRD1p0 checks the structural envelope of a rendered document:
// well-formedness, the document root, and the required top-level sequence.
func validateZUGFeRD1p0(ctx context.Context, doc []byte) error {
	root, err := xmltree.Parse(doc)
	if err != nil {
		return drafthorse.Issues{{
			Path: "/", Code: drafthorse.CodeValidationFailed,
			Message: "document is not well-formed", Cause: err,
		}}
	}
	if root.Name != CrossIndustryDocument.Tag() {
		return drafthorse.Issues{{
			Path: "/", Code: drafthorse.CodeValidationFailed, Tag: root.Name.String(),
			Message: fmt.Sprintf("document root must be %s", CrossIndustryDocument.Tag()),
		}}
	}
	required := []xmltree.Name{
		{Space: elements.NSFERD, Local: "SpecifiedExchangedDocumentContext"},
		{Space: elements.NSFERD, Local: "HeaderExchangedDocument"},
		{Space: elements.NSFERD, Local: "SpecifiedSupplyChainTradeTransaction"},
	}
	next := 0
	for _, child := range root.Children {
		if next < len(required) && child.Name == required[next] {
			next++
		}
	}
	if next != len(required) {
		return drafthorse.Issues{{
			Path: "/", Code: drafthorse.CodeValidationFailed, Tag: required[next].String(),
			Message: fmt.Sprintf("document must contain %s", required[next]),
		}}
	}
	return nil
}
