package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chTempDir(t *testing.T) string {
	t.Helper()
	// Change to temp dir so no config.yaml is found.
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) }) //nolint:errcheck
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "offers.db", cfg.Store.DatabaseURL)
	assert.Equal(t, "pdftotext", cfg.PDF.Provider)
	assert.Equal(t, "pdftotext", cfg.PDF.PdfToTextPath)
	assert.Equal(t, 4, cfg.Scan.Concurrency)
	assert.Equal(t, 2, cfg.Scan.MaxDepth)
	assert.Equal(t, 20, cfg.Extract.FirmWindow)
	assert.Equal(t, 25, cfg.Extract.SubjectWindow)
	assert.Equal(t, 3, cfg.Extract.MaxPages)
	assert.Equal(t, 2, cfg.Extract.Threshold)
	assert.Equal(t, 200, cfg.Extract.MaxSubjectLen)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chTempDir(t)

	yaml := `
store:
  driver: postgres
  database_url: postgres://localhost/offers
pdf:
  provider: native
extract:
  threshold: 1
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "postgres://localhost/offers", cfg.Store.DatabaseURL)
	assert.Equal(t, "native", cfg.PDF.Provider)
	assert.Equal(t, 1, cfg.Extract.Threshold)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Untouched keys keep their defaults.
	assert.Equal(t, 4, cfg.Scan.Concurrency)
}

func TestLoadFromEnv(t *testing.T) {
	chTempDir(t)
	t.Setenv("OFFERSCAN_STORE_DRIVER", "postgres")
	t.Setenv("OFFERSCAN_SCAN_CONCURRENCY", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, 8, cfg.Scan.Concurrency)
}

func TestExtractOptions_NumericKnobs(t *testing.T) {
	cfg := &Config{}
	cfg.Extract.FirmWindow = 5
	cfg.Extract.Threshold = 3

	opts, err := cfg.ExtractOptions()
	require.NoError(t, err)
	assert.Equal(t, 5, opts.FirmWindow)
	assert.Equal(t, 3, opts.Threshold)
	// Zero-valued knobs stay on the built-in defaults.
	assert.Equal(t, 25, opts.SubjectWindow)
	assert.NotEmpty(t, opts.FirmLabels)
}

func TestExtractOptions_Dictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.yaml")
	require.NoError(t, os.WriteFile(path, []byte("firm_labels:\n  - Tedarikçi\n"), 0o644))

	cfg := &Config{}
	cfg.Extract.Dictionary = path

	opts, err := cfg.ExtractOptions()
	require.NoError(t, err)
	assert.Equal(t, []string{"Tedarikçi"}, opts.FirmLabels)
}

func TestExtractOptions_DictionaryMissing(t *testing.T) {
	cfg := &Config{}
	cfg.Extract.Dictionary = filepath.Join(t.TempDir(), "nope.yaml")

	_, err := cfg.ExtractOptions()
	assert.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "json"}))
	assert.NotNil(t, zap.L())

	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "console"}))
}

func TestInitLogger_BadLevel(t *testing.T) {
	assert.Error(t, InitLogger(LogConfig{Level: "verbose", Format: "json"}))
}
