package xmltree_test

import (
	"strings"
	"testing"

	"github.com/olf42/drafthorse/xmltree"
)

const nsA = "urn:example:a"
const nsB = "urn:example:b"

var prefixes = xmltree.Prefixes{nsA: "a", nsB: "b"}

func TestParse_ResolvesNamespaces(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<a:root xmlns:a="urn:example:a" xmlns:b="urn:example:b">` +
		`  <b:child unitCode="KGM">12.50</b:child>` +
		`</a:root>`
	root, err := xmltree.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if root.Name != (xmltree.Name{Space: nsA, Local: "root"}) {
		t.Fatalf("root name resolved to %v", root.Name)
	}
	if root.Text != "" {
		t.Fatalf("whitespace-only text must be dropped, got %q", root.Text)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected one child, got %d", len(root.Children))
	}
	c := root.Children[0]
	if c.Name != (xmltree.Name{Space: nsB, Local: "child"}) {
		t.Fatalf("child name resolved to %v", c.Name)
	}
	if c.Text != "12.50" {
		t.Fatalf("child text %q", c.Text)
	}
	if v, ok := c.Attr("unitCode"); !ok || v != "KGM" {
		t.Fatalf("attribute lost: %q %v", v, ok)
	}
}

func TestParse_RejectsMalformedInput(t *testing.T) {
	for _, doc := range []string{"", "<unclosed>", "<a/><b/>", "just text"} {
		if _, err := xmltree.Parse([]byte(doc)); err == nil {
			t.Fatalf("expected parse failure for %q", doc)
		}
	}
}

func TestRender_RoundTrip(t *testing.T) {
	root := xmltree.New(xmltree.Name{Space: nsA, Local: "root"})
	child := xmltree.New(xmltree.Name{Space: nsB, Local: "child"})
	child.Text = `5 < 7 & "quoted"`
	child.SetAttr("kind", `a"b<c`)
	root.Append(child)
	root.Append(xmltree.New(xmltree.Name{Space: nsA, Local: "empty"}))

	out, err := xmltree.RenderDocument(root, prefixes)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(string(out), xmltree.Prologue) {
		t.Fatalf("document must start with the prologue, got %q", out[:40])
	}
	back, err := xmltree.Parse(out)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if !back.Equal(root) {
		t.Fatalf("round trip changed the tree:\n%s", out)
	}
}

func TestRender_DeterministicDeclarations(t *testing.T) {
	root := xmltree.New(xmltree.Name{Space: nsB, Local: "root"})
	root.Append(xmltree.New(xmltree.Name{Space: nsA, Local: "x"}))
	first, err := xmltree.Render(root, prefixes)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := xmltree.Render(root, prefixes)
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if string(again) != string(first) {
			t.Fatalf("output not deterministic:\n%s\n%s", first, again)
		}
	}
	if !strings.Contains(string(first), `xmlns:a="urn:example:a" xmlns:b="urn:example:b"`) {
		t.Fatalf("declarations should be prefix-sorted on the root, got %s", first)
	}
}

func TestRender_UnknownNamespace(t *testing.T) {
	root := xmltree.New(xmltree.Name{Space: "urn:example:unmapped", Local: "root"})
	if _, err := xmltree.Render(root, prefixes); err == nil {
		t.Fatalf("expected error for namespace without prefix")
	}
}

func TestNode_SetAttrReplaces(t *testing.T) {
	n := xmltree.New(xmltree.Name{Local: "n"})
	n.SetAttr("k", "1")
	n.SetAttr("j", "2")
	n.SetAttr("k", "3")
	if len(n.Attrs) != 2 {
		t.Fatalf("SetAttr must replace, got %v", n.Attrs)
	}
	if v, _ := n.Attr("k"); v != "3" {
		t.Fatalf("replaced value lost: %q", v)
	}
	if n.Attrs[0].Key != "k" || n.Attrs[1].Key != "j" {
		t.Fatalf("attribute order must be encounter order, got %v", n.Attrs)
	}
}
