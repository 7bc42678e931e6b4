package render

import (
	"io"

	"github.com/dgallion1/docxtract/internal/doctree"
	"github.com/dgallion1/docxtract/internal/failure"
)

// Flatten writes every text node beneath el to w in document order.
// Element names and attributes are never written, and nothing is inserted
// between text nodes. The first write error stops the walk.
func Flatten(el *doctree.Element, w io.StringWriter) error {
	for _, child := range el.Children {
		switch n := child.(type) {
		case *doctree.Text:
			if _, err := w.WriteString(n.Data); err != nil {
				return failure.Write("write text", "", err)
			}
		case *doctree.Element:
			if err := Flatten(n, w); err != nil {
				return err
			}
		}
	}
	return nil
}
