package failure

import (
	"errors"
	"fmt"
)

// Kind identifies the subsystem an extraction failure came from.
type Kind int

const (
	KindIO Kind = iota + 1
	KindArchive
	KindXML
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindArchive:
		return "archive"
	case KindXML:
		return "xml"
	case KindWrite:
		return "write"
	}
	return "unknown"
}

// Sentinels for errors.Is matching by kind.
var (
	ErrIO      = errors.New("io failure")
	ErrArchive = errors.New("archive failure")
	ErrXML     = errors.New("xml failure")
	ErrWrite   = errors.New("write failure")
)

// Error is the single error type surfaced by extraction. It wraps the
// originating cause without altering it.
type Error struct {
	Kind Kind
	Op   string // step that failed, e.g. "open", "parse"
	Path string // file path or part name, may be empty
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.String() + " error"
	if e.Op != "" {
		msg += " during " + e.Op
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" of %q", e.Path)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == sentinel(e.Kind)
}

func sentinel(k Kind) error {
	switch k {
	case KindIO:
		return ErrIO
	case KindArchive:
		return ErrArchive
	case KindXML:
		return ErrXML
	case KindWrite:
		return ErrWrite
	}
	return nil
}

func newError(kind Kind, op, path string, err error) error {
	// Already classified further down; keep the original kind.
	var fe *Error
	if errors.As(err, &fe) {
		return err
	}
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

func IO(op, path string, err error) error      { return newError(KindIO, op, path, err) }
func Archive(op, path string, err error) error { return newError(KindArchive, op, path, err) }
func XML(op, path string, err error) error     { return newError(KindXML, op, path, err) }
func Write(op, path string, err error) error   { return newError(KindWrite, op, path, err) }

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}
