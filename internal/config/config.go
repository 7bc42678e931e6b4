package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// DefaultPartName is the primary content stream of a word-processing package.
	DefaultPartName = "word/document.xml"

	// DefaultReadBufferSize amortizes reads across multi-megabyte XML parts.
	DefaultReadBufferSize = 128 * 1024

	// minReadBufferSize mirrors bufio's floor.
	minReadBufferSize = 16
)

type Config struct {
	// Part to flatten inside the package.
	PartName string

	// Buffered reader size wrapped around the part stream.
	ReadBufferSize int

	// Output cap in bytes; 0 means unlimited.
	MaxOutputBytes int

	// Strict XML parsing (encoding/xml Decoder.Strict).
	StrictXML bool
}

// Default returns the built-in configuration without consulting the environment.
func Default() Config {
	return Config{
		PartName:       DefaultPartName,
		ReadBufferSize: DefaultReadBufferSize,
		MaxOutputBytes: 0,
		StrictXML:      true,
	}
}

// Load returns the defaults with DOCXTRACT_* environment overrides applied.
func Load() Config {
	cfg := Config{
		PartName:       envOr("DOCXTRACT_PART", DefaultPartName),
		ReadBufferSize: envInt("DOCXTRACT_READ_BUFFER", DefaultReadBufferSize),
		MaxOutputBytes: envInt("DOCXTRACT_MAX_OUTPUT_BYTES", 0),
		StrictXML:      envBool("DOCXTRACT_STRICT_XML", true),
	}

	if cfg.ReadBufferSize < minReadBufferSize {
		cfg.ReadBufferSize = DefaultReadBufferSize
	}
	if cfg.MaxOutputBytes < 0 {
		cfg.MaxOutputBytes = 0
	}

	return cfg
}

func (c Config) Validate() error {
	if c.PartName == "" {
		return fmt.Errorf("part name is required")
	}
	if c.ReadBufferSize < minReadBufferSize {
		return fmt.Errorf("read buffer size must be at least %d, got %d", minReadBufferSize, c.ReadBufferSize)
	}
	if c.MaxOutputBytes < 0 {
		return fmt.Errorf("max output bytes must not be negative, got %d", c.MaxOutputBytes)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
