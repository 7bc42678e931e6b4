package parser

import (
	"archive/zip"
	"bufio"
	"compress/flate"
	"encoding/xml"
	"errors"
	"io"
	"slices"

	"github.com/dgallion1/docxtract/internal/config"
	"github.com/dgallion1/docxtract/internal/doctree"
	"github.com/dgallion1/docxtract/internal/failure"
)

var errNoRoot = errors.New("no root element")

// Options control how a part stream is decoded.
type Options struct {
	Name       string // part name, for error messages
	BufferSize int
	Strict     bool
}

// ParseDocument decodes r into an element tree rooted at the first
// element. Content after the root element closes is not read.
func ParseDocument(r io.Reader, opts Options) (*doctree.Element, error) {
	if opts.BufferSize <= 0 {
		opts.BufferSize = config.DefaultReadBufferSize
	}
	src := &trackingReader{r: r}
	dec := xml.NewDecoder(bufio.NewReaderSize(src, opts.BufferSize))
	dec.Strict = opts.Strict

	var (
		root  *doctree.Element
		stack []*doctree.Element
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, classify(opts.Name, src.err, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &doctree.Element{Name: t.Name, Attr: slices.Clone(t.Attr)}
			if len(stack) == 0 {
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return root, nil
			}
		case xml.CharData:
			// Character data outside the root is prolog whitespace.
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, &doctree.Text{Data: string(t)})
			}
		}
	}

	if root == nil {
		return nil, failure.XML("parse", opts.Name, errNoRoot)
	}
	return nil, failure.XML("parse", opts.Name, io.ErrUnexpectedEOF)
}

// classify separates failures of the underlying stream from malformed XML.
func classify(name string, readErr, err error) error {
	if readErr == nil || !errors.Is(err, readErr) {
		return failure.XML("parse", name, err)
	}
	var corrupt flate.CorruptInputError
	if errors.Is(readErr, zip.ErrChecksum) || errors.Is(readErr, zip.ErrFormat) ||
		errors.Is(readErr, io.ErrUnexpectedEOF) || errors.As(readErr, &corrupt) {
		return failure.Archive("read part", name, readErr)
	}
	return failure.IO("read part", name, readErr)
}

// trackingReader remembers the last non-EOF error from r so it can be told
// apart from decoder errors.
type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF {
		t.err = err
	}
	return n, err
}
