package elements

import "github.com/olf42/drafthorse/xmltree"

// Namespace URIs of the ZUGFeRD 1.0 Cross Industry Document vocabulary.
// The set is fixed at definition time; NSUDT additionally owns the wrapper
// tags emitted by the Date and Indicator leaves.
const (
	NSFERD = "urn:ferd:CrossIndustryDocument:invoice:1p0"
	NSRAM  = "urn:un:unece:uncefact:data:standard:ReusableAggregateBusinessInformationEntity:12"
	NSUDT  = "urn:un:unece:uncefact:data:standard:UnqualifiedDataType:15"
)

// Prefixes is the namespace table used when rendering documents.
var Prefixes = xmltree.Prefixes{
	NSFERD: "rsm",
	NSRAM:  "ram",
	NSUDT:  "udt",
}
