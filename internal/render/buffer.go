package render

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

var (
	ErrBufferFull = errors.New("output buffer full")
	ErrFinished   = errors.New("output buffer already finished")
)

// Buffer is an append-only HTML output buffer. Writes are kept as raw
// nodes under a document node and serialized once by Finish.
type Buffer struct {
	root     *html.Node
	n        int
	limit    int
	finished bool
}

// NewBuffer returns an empty buffer. limit caps the total bytes written;
// 0 means no cap.
func NewBuffer(limit int) *Buffer {
	return &Buffer{
		root:  &html.Node{Type: html.DocumentNode},
		limit: limit,
	}
}

// WriteString appends s verbatim, without escaping.
func (b *Buffer) WriteString(s string) (int, error) {
	if b.finished {
		return 0, ErrFinished
	}
	if b.limit > 0 && b.n+len(s) > b.limit {
		return 0, fmt.Errorf("%w: %d of %d bytes used, %d more requested", ErrBufferFull, b.n, b.limit, len(s))
	}
	if s == "" {
		return 0, nil
	}
	b.root.AppendChild(&html.Node{Type: html.RawNode, Data: s})
	b.n += len(s)
	return len(s), nil
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return b.n
}

// Finish renders the buffer to a string. It may be called only once.
func (b *Buffer) Finish() (string, error) {
	if b.finished {
		return "", ErrFinished
	}
	b.finished = true

	var sb strings.Builder
	sb.Grow(b.n)
	if err := html.Render(&sb, b.root); err != nil {
		return "", fmt.Errorf("render buffer: %w", err)
	}
	b.root = nil
	return sb.String(), nil
}
