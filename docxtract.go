// Package docxtract extracts the text content of word-processing packages
// (zip containers holding WordprocessingML parts).
//
// Extraction flattens the primary content part: every text node is written
// in document order with no separators, and all tags and attributes are
// dropped. It either succeeds completely or returns a single *Error.
package docxtract

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/docxtract/internal/archive"
	"github.com/dgallion1/docxtract/internal/config"
	"github.com/dgallion1/docxtract/internal/doctree"
	"github.com/dgallion1/docxtract/internal/failure"
	"github.com/dgallion1/docxtract/internal/parser"
	"github.com/dgallion1/docxtract/internal/render"
)

// Config controls extraction. See DefaultConfig and LoadConfig.
type Config = config.Config

// Outline is the heading hierarchy of a document.
type Outline = doctree.DocTree

// Section is one heading and the paragraphs beneath it.
type Section = doctree.DocNode

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return config.Default()
}

// LoadConfig returns the built-in configuration with DOCXTRACT_*
// environment overrides applied.
func LoadConfig() Config {
	return config.Load()
}

// Extractor runs extractions with a fixed configuration. It is safe for
// concurrent use; each call owns its own file handle, tree and buffer.
type Extractor struct {
	cfg Config
	log *slog.Logger
}

// NewExtractor validates cfg and returns an Extractor. A nil logger
// discards all output.
func NewExtractor(cfg Config, log *slog.Logger) (*Extractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Extractor{cfg: cfg, log: log}, nil
}

var defaultExtractor = &Extractor{
	cfg: config.Default(),
	log: slog.New(slog.DiscardHandler),
}

// Extract flattens the primary content part of the package at path using
// the default configuration.
func Extract(path string) (string, error) {
	return defaultExtractor.Extract(path)
}

// Extract flattens the configured part of the package at path.
func (e *Extractor) Extract(path string) (string, error) {
	log := e.log.With("path", path, "part", e.cfg.PartName)
	start := time.Now()

	pkg, err := archive.Open(path)
	if err != nil {
		return "", e.fail(log, err)
	}
	defer pkg.Close()

	out, err := e.extract(log, pkg)
	if err != nil {
		return "", e.fail(log, err)
	}
	log.Debug("extracted document", "bytes", len(out), "duration_ms", time.Since(start).Milliseconds())
	return out, nil
}

// ExtractBytes is Extract over a package already held in memory.
func (e *Extractor) ExtractBytes(data []byte) (string, error) {
	log := e.log.With("part", e.cfg.PartName, "size", len(data))

	pkg, err := archive.NewReader(bytes.NewReader(data), int64(len(data)), "<memory>")
	if err != nil {
		return "", e.fail(log, err)
	}
	out, err := e.extract(log, pkg)
	if err != nil {
		return "", e.fail(log, err)
	}
	log.Debug("extracted document", "bytes", len(out))
	return out, nil
}

func (e *Extractor) extract(log *slog.Logger, pkg *archive.Package) (string, error) {
	part, err := pkg.Part(e.cfg.PartName)
	if err != nil {
		return "", err
	}
	defer part.Close()
	log.Debug("parsing part", "uncompressed_bytes", pkg.PartSize(e.cfg.PartName))

	root, err := parser.ParseDocument(part, parser.Options{
		Name:       e.cfg.PartName,
		BufferSize: e.cfg.ReadBufferSize,
		Strict:     e.cfg.StrictXML,
	})
	if err != nil {
		return "", err
	}

	buf := render.NewBuffer(e.cfg.MaxOutputBytes)
	if err := render.Flatten(root, buf); err != nil {
		return "", err
	}
	out, err := buf.Finish()
	if err != nil {
		return "", failure.Write("finish", "", err)
	}
	return out, nil
}

// Outline returns the heading hierarchy of the package at path. The
// outline title defaults to the file name without its extension.
func (e *Extractor) Outline(path string) (*Outline, error) {
	log := e.log.With("path", path)

	pkg, err := archive.Open(path)
	if err != nil {
		return nil, e.fail(log, err)
	}
	defer pkg.Close()

	if !pkg.Has(config.DefaultPartName) {
		return nil, e.fail(log, failure.Archive("locate part", config.DefaultPartName, archive.ErrPartNotFound))
	}

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ra, size := pkg.ReaderAt()
	tree, err := parser.ParseOutline(ra, size, title)
	if err != nil {
		return nil, e.fail(log, err)
	}
	log.Debug("built outline", "sections", len(tree.Children))
	return tree, nil
}

// fail logs err and returns it unchanged.
func (e *Extractor) fail(log *slog.Logger, err error) error {
	log.Debug("extraction failed", "kind", failure.KindOf(err).String(), "error", err)
	return err
}
