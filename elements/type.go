package elements

import (
	"fmt"

	"github.com/olf42/drafthorse/xmltree"
)

// FieldSpec declares one named slot on a Type: the factory produces the
// field's default value, which doubles as the decode-dispatch target (its
// tag is the lookup key for incoming child nodes).
type FieldSpec struct {
	Name    string
	New     func() Value
	Default bool // materialize at construction; encoded even when never assigned
}

// Type is the immutable definition of an element: its qualified tag, fixed
// attributes, and the ordered field list. Declaration order determines
// serialization order.
type Type struct {
	tag    xmltree.Name
	attrs  []xmltree.Attr
	fields []FieldSpec
	index  map[string]int
	schema string
}

// Tag reports the qualified tag of elements of this type.
func (t *Type) Tag() xmltree.Name { return t.tag }

// Schema reports the schema profile name set via the builder, empty for
// non-root types.
func (t *Type) Schema() string { return t.schema }

// Fields returns a copy of the ordered field list.
func (t *Type) Fields() []FieldSpec {
	out := make([]FieldSpec, len(t.fields))
	copy(out, t.fields)
	return out
}

// TypeBuilder assembles a Type. Obtain one via Define; finish with Build or
// MustBuild.
type TypeBuilder struct {
	tag    xmltree.Name
	attrs  []xmltree.Attr
	fields []FieldSpec
	schema string
	err    error
}

type fieldStep struct {
	b   *TypeBuilder
	idx int
}

// Define starts the definition of an element type with the given qualified
// tag.
func Define(space, local string) *TypeBuilder {
	return &TypeBuilder{tag: xmltree.Name{Space: space, Local: local}}
}

// Extend copies the parent type's fixed attributes and field list into the
// builder. Fields declared afterwards append after the inherited ones.
func (b *TypeBuilder) Extend(parent *Type) *TypeBuilder {
	b.attrs = append(b.attrs, parent.attrs...)
	b.fields = append(b.fields, parent.fields...)
	return b
}

// Attr declares a constant attribute emitted on every node of this type.
func (b *TypeBuilder) Attr(key, value string) *TypeBuilder {
	b.attrs = append(b.attrs, xmltree.Attr{Key: key, Value: value})
	return b
}

// SchemaName marks the type as a document root validated against the named
// schema profile on Serialize.
func (b *TypeBuilder) SchemaName(name string) *TypeBuilder {
	b.schema = name
	return b
}

// Field registers a field with its default-value factory. Declaration order
// is serialization order.
func (b *TypeBuilder) Field(name string, factory func() Value) *fieldStep {
	for _, f := range b.fields {
		if f.Name == name && b.err == nil {
			b.err = fmt.Errorf("elements: duplicate field %q on %s", name, b.tag)
		}
	}
	b.fields = append(b.fields, FieldSpec{Name: name, New: factory})
	return &fieldStep{b: b, idx: len(b.fields) - 1}
}

// Default marks the field as materialized at construction, so it serializes
// even when never assigned.
func (f *fieldStep) Default() *TypeBuilder {
	f.b.fields[f.idx].Default = true
	return f.b
}

func (f *fieldStep) Field(name string, factory func() Value) *fieldStep { return f.b.Field(name, factory) }
func (f *fieldStep) Attr(key, value string) *TypeBuilder                { return f.b.Attr(key, value) }
func (f *fieldStep) SchemaName(name string) *TypeBuilder                { return f.b.SchemaName(name) }
func (f *fieldStep) Build() (*Type, error)                              { return f.b.Build() }
func (f *fieldStep) MustBuild() *Type                                   { return f.b.MustBuild() }

// Build finalizes the type. The resulting field list is immutable and stable
// across repeated introspection.
func (b *TypeBuilder) Build() (*Type, error) {
	if b.err != nil {
		return nil, b.err
	}
	t := &Type{
		tag:    b.tag,
		attrs:  append([]xmltree.Attr(nil), b.attrs...),
		fields: append([]FieldSpec(nil), b.fields...),
		index:  make(map[string]int, len(b.fields)),
		schema: b.schema,
	}
	for i, f := range t.fields {
		t.index[f.Name] = i
	}
	return t, nil
}

// MustBuild is Build panicking on error, for definition-time use.
func (b *TypeBuilder) MustBuild() *Type {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

// Of returns a factory producing fresh elements of t, for use as a Field
// factory.
func Of(t *Type) func() Value {
	return func() Value { return t.New() }
}
