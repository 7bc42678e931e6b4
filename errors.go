package docxtract

import (
	"github.com/dgallion1/docxtract/internal/archive"
	"github.com/dgallion1/docxtract/internal/failure"
	"github.com/dgallion1/docxtract/internal/render"
)

// Error is the only error type returned by extraction. Kind names the
// failing subsystem and Unwrap yields the original cause.
type Error = failure.Error

// Kind identifies the subsystem an Error came from.
type Kind = failure.Kind

const (
	KindIO      = failure.KindIO      // file could not be opened or read
	KindArchive = failure.KindArchive // not a zip, or the part is missing or corrupt
	KindXML     = failure.KindXML     // the part is not well-formed XML
	KindWrite   = failure.KindWrite   // the output buffer rejected a write
)

// Kind sentinels, for use with errors.Is.
var (
	ErrIO      = failure.ErrIO
	ErrArchive = failure.ErrArchive
	ErrXML     = failure.ErrXML
	ErrWrite   = failure.ErrWrite
)

var (
	// ErrPartNotFound is wrapped by Archive errors for a missing part.
	ErrPartNotFound = archive.ErrPartNotFound

	// ErrBufferFull is wrapped by Write errors when MaxOutputBytes is exceeded.
	ErrBufferFull = render.ErrBufferFull
)

// KindOf returns the Kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	return failure.KindOf(err)
}
