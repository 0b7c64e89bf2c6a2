// Package xmltree holds the document tree exchanged with the element codec:
// namespace-qualified nodes with ordered attributes and ordered children,
// plus parsing from and rendering to raw bytes.
package xmltree

// Name is a namespace-qualified element name. Space is the namespace URI,
// empty for unqualified names.
type Name struct {
	Space string
	Local string
}

// String renders the name in Clark notation, e.g. {urn:...:15}DateTimeString.
func (n Name) String() string {
	if n.Space == "" {
		return n.Local
	}
	return "{" + n.Space + "}" + n.Local
}

// Attr is one attribute. ZUGFeRD attributes are unqualified, so the key is a
// plain string.
type Attr struct {
	Key   string
	Value string
}

// Node is one element of a document tree.
type Node struct {
	Name     Name
	Attrs    []Attr
	Children []*Node
	Text     string
}

// New returns an empty node with the given name.
func New(name Name) *Node {
	return &Node{Name: name}
}

// Attr reports the value of the named attribute and whether it is present.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, replacing an existing value and
// otherwise appending in encounter order.
func (n *Node) SetAttr(key, value string) {
	for i, a := range n.Attrs {
		if a.Key == key {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
}

// Append adds child at the end of the node's children.
func (n *Node) Append(child *Node) {
	n.Children = append(n.Children, child)
}

// Equal reports deep equality of name, attributes, text and children,
// including order.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Name != o.Name || n.Text != o.Text {
		return false
	}
	if len(n.Attrs) != len(o.Attrs) || len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Attrs {
		if n.Attrs[i] != o.Attrs[i] {
			return false
		}
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}
