package drafthorse

// Package drafthorse maps invoice data to and from ZUGFeRD XML documents.
//
// - Declarative element types with ordered, typed fields (elements package)
// - A bidirectional codec between object graphs and namespaced XML trees
// - A stable error model via Issues (offending tag, code, message)
// - Named-schema validation at the serialize boundary
//
// Design policy:
// - Keep only cross-cutting APIs in the root package (errors, validator registry).
// - Place the element model under elements/, the tree representation under
//   xmltree/, the ZUGFeRD profile under models/, and the CLI under cmd/drafthorse.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	doc := models.NewDocument()
//	doc.Field("Header").(*elements.Element).MustSet("ID", elements.NewText(elements.NSRAM, "ID", "RE1337"))
//	out, err := doc.Serialize(ctx)
//
//	doc2, err := models.CrossIndustryDocument.Parse(out)
