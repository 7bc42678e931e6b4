package parser

import (
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/dgallion1/docxtract/internal/doctree"
	"github.com/dgallion1/docxtract/internal/failure"
	"github.com/fumiama/go-docx"
)

// ParseOutline builds a heading outline of the package in r. Paragraphs
// styled Heading1..Heading6 open sections; other paragraphs become the
// text of the innermost open section.
func ParseOutline(r io.ReaderAt, size int64, title string) (*doctree.DocTree, error) {
	doc, err := docx.Parse(r, size)
	if err != nil {
		var syntaxErr *xml.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, failure.XML("parse docx", title, err)
		}
		return nil, failure.Archive("parse docx", title, err)
	}

	b := newOutlineBuilder(title)
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := paragraphText(para)
		if text == "" {
			continue
		}
		style := paragraphStyle(para)
		if strings.EqualFold(style, "Title") && b.tree.Title == title {
			b.tree.Title = text
			continue
		}
		if level := headingLevel(style); level > 0 {
			b.heading(level, text)
		} else {
			b.paragraph(text)
		}
	}
	return b.finish(), nil
}

type outlineEntry struct {
	node  *doctree.DocNode
	level int
}

type outlineBuilder struct {
	tree    *doctree.DocTree
	root    *doctree.DocNode
	stack   []outlineEntry
	pending []string
}

func newOutlineBuilder(title string) *outlineBuilder {
	root := &doctree.DocNode{Title: title}
	return &outlineBuilder{
		tree:  &doctree.DocTree{Title: title},
		root:  root,
		stack: []outlineEntry{{node: root}},
	}
}

func (b *outlineBuilder) paragraph(text string) {
	b.pending = append(b.pending, text)
}

func (b *outlineBuilder) heading(level int, text string) {
	b.flush()
	node := &doctree.DocNode{Title: text}
	for len(b.stack) > 1 && b.stack[len(b.stack)-1].level >= level {
		b.stack = b.stack[:len(b.stack)-1]
	}
	parent := b.stack[len(b.stack)-1].node
	parent.Children = append(parent.Children, node)
	b.stack = append(b.stack, outlineEntry{node: node, level: level})
}

// flush attaches pending paragraphs to the innermost open section.
func (b *outlineBuilder) flush() {
	if len(b.pending) == 0 {
		return
	}
	top := b.stack[len(b.stack)-1].node
	text := strings.Join(b.pending, "\n\n")
	if top.Text != "" {
		top.Text += "\n\n" + text
	} else {
		top.Text = text
	}
	b.pending = b.pending[:0]
}

func (b *outlineBuilder) finish() *doctree.DocTree {
	b.flush()
	b.tree.Children = b.root.Children
	if b.root.Text == "" {
		return b.tree
	}
	// Text before the first heading becomes a leading untitled section.
	lead := &doctree.DocNode{Text: b.root.Text}
	b.tree.Children = append([]*doctree.DocNode{lead}, b.tree.Children...)
	return b.tree
}

func paragraphStyle(para *docx.Paragraph) string {
	if para.Properties == nil || para.Properties.Style == nil {
		return ""
	}
	return para.Properties.Style.Val
}

// headingLevel maps "Heading2" or "heading 2" to 2; anything else is 0.
func headingLevel(style string) int {
	s := strings.ToLower(strings.ReplaceAll(style, " ", ""))
	rest, ok := strings.CutPrefix(s, "heading")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > 6 {
		return 0
	}
	return n
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
