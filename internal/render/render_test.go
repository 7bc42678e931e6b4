package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/dgallion1/docxtract/internal/doctree"
	"github.com/dgallion1/docxtract/internal/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func el(children ...doctree.Node) *doctree.Element {
	return &doctree.Element{Children: children}
}

func text(s string) *doctree.Text {
	return &doctree.Text{Data: s}
}

func TestFlatten_ConcatenatesInDocumentOrder(t *testing.T) {
	root := el(
		el(el(text("Hello")), el(text(" World"))),
		el(),
		el(el(el(text("!")))),
	)
	var sb strings.Builder
	require.NoError(t, Flatten(root, &sb))
	assert.Equal(t, "Hello World!", sb.String())
}

func TestFlatten_TextVerbatim(t *testing.T) {
	root := el(text("<b>&amp;</b>"), text("  \n\t"))
	buf := NewBuffer(0)
	require.NoError(t, Flatten(root, buf))

	out, err := buf.Finish()
	require.NoError(t, err)
	assert.Equal(t, "<b>&amp;</b>  \n\t", out)
}

func TestFlatten_NoText(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Flatten(el(el(), el(el())), &sb))
	assert.Equal(t, "", sb.String())
}

type failingWriter struct {
	after  int
	writes []string
}

func (f *failingWriter) WriteString(s string) (int, error) {
	if len(f.writes) == f.after {
		return 0, errors.New("sink exhausted")
	}
	f.writes = append(f.writes, s)
	return len(s), nil
}

func TestFlatten_StopsOnFirstWriteError(t *testing.T) {
	root := el(text("a"), el(text("b"), text("c")), text("d"))
	w := &failingWriter{after: 2}

	err := Flatten(root, w)
	require.Error(t, err)
	assert.ErrorIs(t, err, failure.ErrWrite)
	assert.ErrorContains(t, err, "sink exhausted")
	assert.Equal(t, []string{"a", "b"}, w.writes)
}

func TestBuffer_LimitIsWriteFailure(t *testing.T) {
	buf := NewBuffer(8)
	root := el(text("Hello"), text(" World"))

	err := Flatten(root, buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, failure.ErrWrite)
	assert.ErrorIs(t, err, ErrBufferFull)
	assert.Equal(t, 5, buf.Len())
}

func TestBuffer_FinishOnce(t *testing.T) {
	buf := NewBuffer(0)
	_, err := buf.WriteString("x")
	require.NoError(t, err)

	out, err := buf.Finish()
	require.NoError(t, err)
	assert.Equal(t, "x", out)

	_, err = buf.Finish()
	assert.ErrorIs(t, err, ErrFinished)
	_, err = buf.WriteString("y")
	assert.ErrorIs(t, err, ErrFinished)
}

func TestBuffer_EmptyWrites(t *testing.T) {
	buf := NewBuffer(0)
	n, err := buf.WriteString("")
	require.NoError(t, err)
	assert.Zero(t, n)

	out, err := buf.Finish()
	require.NoError(t, err)
	assert.Equal(t, "", out)
}
