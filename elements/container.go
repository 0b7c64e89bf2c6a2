package elements

import (
	"fmt"
	"reflect"

	drafthorse "github.com/olf42/drafthorse"
	"github.com/olf42/drafthorse/xmltree"
)

// Container is an ordered, repeatable wrapper around one value type. It owns
// no node of its own: encoding emits one sibling node per item under the
// shared tag, and an empty container emits nothing.
type Container struct {
	newItem func() Value
	tag     xmltree.Name
	items   []Value
}

// NewContainer returns a container whose items are produced by newItem. The
// factory's output fixes the shared item tag.
func NewContainer(newItem func() Value) *Container {
	return &Container{newItem: newItem, tag: newItem().Tag()}
}

// Tag reports the shared tag of the container's items.
func (c *Container) Tag() xmltree.Name { return c.tag }

// Len reports the number of items.
func (c *Container) Len() int { return len(c.items) }

// Items returns the items in insertion order. The slice is shared; treat it
// as read-only.
func (c *Container) Items() []Value { return c.items }

// Append adds v at the end. The value's dynamic type must match the item
// factory's output.
func (c *Container) Append(v Value) error {
	if want := c.newItem(); reflect.TypeOf(v) != reflect.TypeOf(want) || v.Tag() != c.tag {
		return drafthorse.Issues{{
			Path: "/", Code: drafthorse.CodeInvalidType, Tag: v.Tag().String(),
			Message: fmt.Sprintf("container of %s takes %T, got %T tagged %s", c.tag, want, v, v.Tag()),
		}}
	}
	c.items = append(c.items, v)
	return nil
}

// MustAppend is Append panicking on error, for literal-style construction.
func (c *Container) MustAppend(v Value) {
	if err := c.Append(v); err != nil {
		panic(err)
	}
}

func (c *Container) encodeInto(parent *xmltree.Node) {
	for _, item := range c.items {
		item.encodeInto(parent)
	}
}

// decodeNode decodes one input node into a fresh item and appends it;
// element decode calls this once per matching child, preserving encounter
// order.
func (c *Container) decodeNode(n *xmltree.Node) error {
	item := c.newItem()
	if err := item.decodeNode(n); err != nil {
		return drafthorse.PrefixIssues(err, fmt.Sprintf("/%d", len(c.items)))
	}
	c.items = append(c.items, item)
	return nil
}
