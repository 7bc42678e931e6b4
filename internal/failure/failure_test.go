package failure

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_MatchesOwnKindOnly(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"io", IO("open", "a.docx", fs.ErrNotExist), ErrIO},
		{"archive", Archive("open", "a.docx", errors.New("zip: not a valid zip file")), ErrArchive},
		{"xml", XML("parse", "word/document.xml", errors.New("unexpected EOF")), ErrXML},
		{"write", Write("write text", "", errors.New("full")), ErrWrite},
	}
	all := []error{ErrIO, ErrArchive, ErrXML, ErrWrite}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range all {
				assert.Equal(t, s == tt.want, errors.Is(tt.err, s), "sentinel %v", s)
			}
		})
	}
}

func TestError_UnwrapKeepsCause(t *testing.T) {
	err := IO("open", "missing.docx", fs.ErrNotExist)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, KindIO, fe.Kind)
	assert.Equal(t, "missing.docx", fe.Path)
}

func TestError_MessageIncludesContext(t *testing.T) {
	err := Archive("locate part", "word/document.xml", errors.New("not found"))
	assert.Equal(t, `archive error during locate part of "word/document.xml": not found`, err.Error())

	bare := &Error{Kind: KindWrite}
	assert.Equal(t, "write error", bare.Error())
}

func TestNewError_KeepsInnerClassification(t *testing.T) {
	inner := Archive("read part", "word/document.xml", errors.New("zip: checksum error"))
	outer := XML("parse", "word/document.xml", fmt.Errorf("decode: %w", inner))

	assert.Equal(t, KindArchive, KindOf(outer))
	assert.NotErrorIs(t, outer, ErrXML)
}

func TestKindOf_Unclassified(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(0), KindOf(nil))
	assert.Equal(t, "unknown", Kind(0).String())
}
