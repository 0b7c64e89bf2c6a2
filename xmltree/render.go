package xmltree

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"
)

// Prologue is the fixed document prologue prepended by RenderDocument.
const Prologue = `<?xml version="1.0" encoding="UTF-8"?>`

// Prefixes maps namespace URIs to the prefixes used when rendering. Every
// namespace reachable from the rendered root must have an entry.
type Prefixes map[string]string

type nsDecl struct {
	prefix string
	space  string
}

// Render serializes the tree rooted at n. Namespace declarations for every
// namespace used in the tree are emitted on the root element, ordered by
// prefix for deterministic output.
func Render(n *Node, prefixes Prefixes) ([]byte, error) {
	used := map[string]bool{}
	if err := collectSpaces(n, prefixes, used); err != nil {
		return nil, err
	}
	decls := make([]nsDecl, 0, len(used))
	for space := range used {
		decls = append(decls, nsDecl{prefix: prefixes[space], space: space})
	}
	sort.Slice(decls, func(i, j int) bool { return decls[i].prefix < decls[j].prefix })
	buf := &bytes.Buffer{}
	if err := render(buf, n, prefixes, decls); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderDocument is Render with the XML prologue prepended.
func RenderDocument(n *Node, prefixes Prefixes) ([]byte, error) {
	body, err := Render(n, prefixes)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(Prologue)+len(body))
	out = append(out, Prologue...)
	out = append(out, body...)
	return out, nil
}

func collectSpaces(n *Node, prefixes Prefixes, used map[string]bool) error {
	if n.Name.Space != "" {
		if _, ok := prefixes[n.Name.Space]; !ok {
			return fmt.Errorf("xmltree: render: no prefix for namespace %s", n.Name.Space)
		}
		used[n.Name.Space] = true
	}
	for _, c := range n.Children {
		if err := collectSpaces(c, prefixes, used); err != nil {
			return err
		}
	}
	return nil
}

func render(buf *bytes.Buffer, n *Node, prefixes Prefixes, decls []nsDecl) error {
	qname := n.Name.Local
	if n.Name.Space != "" {
		qname = prefixes[n.Name.Space] + ":" + n.Name.Local
	}
	buf.WriteByte('<')
	buf.WriteString(qname)
	for _, d := range decls {
		buf.WriteString(" xmlns:" + d.prefix + `="`)
		if err := xml.EscapeText(buf, []byte(d.space)); err != nil {
			return err
		}
		buf.WriteByte('"')
	}
	for _, a := range n.Attrs {
		buf.WriteString(" " + a.Key + `="`)
		if err := xml.EscapeText(buf, []byte(a.Value)); err != nil {
			return err
		}
		buf.WriteByte('"')
	}
	if len(n.Children) == 0 && n.Text == "" {
		buf.WriteString("/>")
		return nil
	}
	buf.WriteByte('>')
	if n.Text != "" {
		if err := xml.EscapeText(buf, []byte(n.Text)); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := render(buf, c, prefixes, nil); err != nil {
			return err
		}
	}
	buf.WriteString("</" + qname + ">")
	return nil
}
