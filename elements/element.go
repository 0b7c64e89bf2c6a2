package elements

import (
	"context"
	"fmt"
	"reflect"

	drafthorse "github.com/olf42/drafthorse"
	"github.com/olf42/drafthorse/xmltree"
)

// Value is one slot value of an Element: a leaf, a nested Element, or a
// Container. The implementation set is closed; decode dispatch relies on it.
type Value interface {
	// Tag reports the qualified tag this value encodes to.
	Tag() xmltree.Name

	encodeInto(parent *xmltree.Node)
	decodeNode(n *xmltree.Node) error
}

// Element is a composite node: an ordered set of named slots typed by its
// Type. Slots exist for every declared field from construction; nil means
// absent and encodes as omission.
type Element struct {
	typ   *Type
	slots []Value
}

// New constructs an element with all slots present. Fields declared with
// Default() are materialized through their factories; all others start nil.
func (t *Type) New() *Element {
	e := &Element{typ: t, slots: make([]Value, len(t.fields))}
	for i, f := range t.fields {
		if f.Default {
			e.slots[i] = f.New()
		}
	}
	return e
}

// Type reports the element's type.
func (e *Element) Type() *Type { return e.typ }

// Tag reports the element's qualified tag.
func (e *Element) Tag() xmltree.Name { return e.typ.tag }

// Set assigns the named slot. The value's dynamic type must match what the
// field's factory produces; unknown names and foreign types are errors, not
// silently accepted.
func (e *Element) Set(name string, v Value) error {
	i, ok := e.typ.index[name]
	if !ok {
		return drafthorse.Issues{{
			Path: "/" + name, Code: drafthorse.CodeUnknownField,
			Message: fmt.Sprintf("type %s declares no field %q", e.typ.tag, name),
		}}
	}
	want := e.typ.fields[i].New()
	if reflect.TypeOf(v) != reflect.TypeOf(want) || v.Tag() != want.Tag() {
		return drafthorse.Issues{{
			Path: "/" + name, Code: drafthorse.CodeInvalidType, Tag: v.Tag().String(),
			Message: fmt.Sprintf("field %q takes %T tagged %s, got %T tagged %s", name, want, want.Tag(), v, v.Tag()),
		}}
	}
	e.slots[i] = v
	return nil
}

// MustSet is Set panicking on error, for literal-style construction.
func (e *Element) MustSet(name string, v Value) {
	if err := e.Set(name, v); err != nil {
		panic(err)
	}
}

// Get returns the named slot as currently stored; nil when the field is
// declared but absent.
func (e *Element) Get(name string) (Value, error) {
	i, ok := e.typ.index[name]
	if !ok {
		return nil, drafthorse.Issues{{
			Path: "/" + name, Code: drafthorse.CodeUnknownField,
			Message: fmt.Sprintf("type %s declares no field %q", e.typ.tag, name),
		}}
	}
	return e.slots[i], nil
}

// Field returns the named slot, materializing the field's default value on
// first access so callers can populate it in place. It panics on unknown
// names; use Get to probe.
func (e *Element) Field(name string) Value {
	i, ok := e.typ.index[name]
	if !ok {
		panic(fmt.Sprintf("elements: type %s declares no field %q", e.typ.tag, name))
	}
	if e.slots[i] == nil {
		e.slots[i] = e.typ.fields[i].New()
	}
	return e.slots[i]
}

// Encode builds the element's document tree node: fixed type attributes
// first, then every non-nil slot in declaration order. Pure function of
// current state.
func (e *Element) Encode() *xmltree.Node {
	n := xmltree.New(e.typ.tag)
	for _, a := range e.typ.attrs {
		n.SetAttr(a.Key, a.Value)
	}
	for _, v := range e.slots {
		if v != nil {
			v.encodeInto(n)
		}
	}
	return n
}

func (e *Element) encodeInto(parent *xmltree.Node) {
	parent.Append(e.Encode())
}

// Decode populates the element from a document tree node. Decoding is
// closed-world: every child tag must map to a declared field, looked up via
// the tags of the fields' default values. The first failure aborts the call.
func (e *Element) Decode(n *xmltree.Node) error {
	if n.Name != e.typ.tag {
		return drafthorse.Issues{{
			Path: "/", Code: drafthorse.CodeTagMismatch, Tag: n.Name.String(),
			Message: fmt.Sprintf("found tag %s where %s was expected", n.Name, e.typ.tag),
		}}
	}
	index := make(map[xmltree.Name]int, len(e.typ.fields))
	for i, f := range e.typ.fields {
		v := e.slots[i]
		if v == nil {
			v = f.New()
		}
		index[v.Tag()] = i
	}
	for _, child := range n.Children {
		i, ok := index[child.Name]
		if !ok {
			return drafthorse.Issues{{
				Path: "/", Code: drafthorse.CodeUnknownElement, Tag: child.Name.String(),
				Message: fmt.Sprintf("unknown element %s", child.Name),
			}}
		}
		if e.slots[i] == nil {
			e.slots[i] = e.typ.fields[i].New()
		}
		if err := e.slots[i].decodeNode(child); err != nil {
			return drafthorse.PrefixIssues(err, "/"+e.typ.fields[i].Name)
		}
	}
	return nil
}

func (e *Element) decodeNode(n *xmltree.Node) error { return e.Decode(n) }

// Serialize encodes the element, renders it with the document prologue, and
// runs the schema validator its type was defined with. Validator failure is
// propagated unchanged. Only types built with SchemaName can serialize.
func (e *Element) Serialize(ctx context.Context) ([]byte, error) {
	if e.typ.schema == "" {
		return nil, drafthorse.Issues{{
			Path: "/", Code: drafthorse.CodeUnknownSchema,
			Message: fmt.Sprintf("type %s is not a document root (no schema name)", e.typ.tag),
		}}
	}
	out, err := xmltree.RenderDocument(e.Encode(), Prefixes)
	if err != nil {
		return nil, err
	}
	if err := drafthorse.Validate(ctx, out, e.typ.schema); err != nil {
		return nil, err
	}
	return out, nil
}

// Parse decodes raw document bytes into a fresh element of t.
func (t *Type) Parse(data []byte) (*Element, error) {
	root, err := xmltree.Parse(data)
	if err != nil {
		return nil, drafthorse.Issues{{
			Path: "/", Code: drafthorse.CodeParseError,
			Message: "malformed document", Cause: err,
		}}
	}
	e := t.New()
	if err := e.Decode(root); err != nil {
		return nil, err
	}
	return e, nil
}
