// Package elements implements the declarative element model behind ZUGFeRD
// documents: types declare an ordered set of named, typed fields once at
// definition time, and elements of those types encode to and decode from
// namespace-qualified document trees.
//
// Declaration order is load-bearing: it fixes serialization order, which
// must match the external schema's element sequence. Decoding is
// closed-world, so every child tag of an input node must map to a declared
// field; the mapping is derived from the tags of the fields' default
// values.
package elements
