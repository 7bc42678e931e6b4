package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DOCXTRACT_PART", "")
	t.Setenv("DOCXTRACT_READ_BUFFER", "")
	t.Setenv("DOCXTRACT_MAX_OUTPUT_BYTES", "")
	t.Setenv("DOCXTRACT_STRICT_XML", "")

	cfg := Load()
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "word/document.xml", cfg.PartName)
	assert.Equal(t, 128*1024, cfg.ReadBufferSize)
	assert.True(t, cfg.StrictXML)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DOCXTRACT_PART", "word/footnotes.xml")
	t.Setenv("DOCXTRACT_READ_BUFFER", "4096")
	t.Setenv("DOCXTRACT_MAX_OUTPUT_BYTES", "1000")
	t.Setenv("DOCXTRACT_STRICT_XML", "false")

	cfg := Load()
	assert.Equal(t, "word/footnotes.xml", cfg.PartName)
	assert.Equal(t, 4096, cfg.ReadBufferSize)
	assert.Equal(t, 1000, cfg.MaxOutputBytes)
	assert.False(t, cfg.StrictXML)
}

func TestLoad_ClampsInvalidValues(t *testing.T) {
	t.Setenv("DOCXTRACT_READ_BUFFER", "2")
	t.Setenv("DOCXTRACT_MAX_OUTPUT_BYTES", "-5")
	t.Setenv("DOCXTRACT_STRICT_XML", "maybe")

	cfg := Load()
	assert.Equal(t, DefaultReadBufferSize, cfg.ReadBufferSize)
	assert.Equal(t, 0, cfg.MaxOutputBytes)
	assert.True(t, cfg.StrictXML, "unparseable bool falls back to default")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"ok", func(*Config) {}, ""},
		{"empty part", func(c *Config) { c.PartName = "" }, "part name is required"},
		{"tiny buffer", func(c *Config) { c.ReadBufferSize = 8 }, "read buffer size"},
		{"negative cap", func(c *Config) { c.MaxOutputBytes = -1 }, "max output bytes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
