package doctree

import "encoding/xml"

// Node is a parsed XML node: either *Element or *Text.
type Node interface {
	node()
}

// Element is a tagged node with ordered children.
type Element struct {
	Name     xml.Name
	Attr     []xml.Attr
	Children []Node
}

// Text is a run of character data, kept verbatim.
type Text struct {
	Data string
}

func (*Element) node() {}
func (*Text) node()    {}

// DocTree is the heading outline of a document.
type DocTree struct {
	Title    string     // Document title (from filename)
	Children []*DocNode // Top-level sections
}

// DocNode is a recursive section in the outline.
type DocNode struct {
	Title    string     // Section heading (empty for leaf text)
	Text     string     // Paragraph text under this heading
	Children []*DocNode // Subsections
}
