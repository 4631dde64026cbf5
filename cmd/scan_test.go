package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/deltagida/offerscan/internal/config"
	"github.com/deltagida/offerscan/internal/model"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	printReport(cmd, &model.ScanReport{
		Processed: 2,
		Skipped:   1,
		Errored:   1,
		Errors: []model.DocError{
			{Path: "/in/bad.pdf", Message: "pdf is encrypted\nstack detail"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "2 processed, 1 skipped, 1 errored")
	assert.Contains(t, out, "/in/bad.pdf: pdf is encrypted")
	// Only the first line of a document error is printed.
	assert.NotContains(t, out, "stack detail")
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "one", firstLine("one\ntwo"))
	assert.Equal(t, "single", firstLine("single"))
	assert.Equal(t, "", firstLine(""))
}

func TestCollectPaths(t *testing.T) {
	cfg = &config.Config{}
	cfg.Scan.MaxDepth = 2

	dir := t.TempDir()
	pdfA := filepath.Join(dir, "a.pdf")
	pdfB := filepath.Join(dir, "sub", "b.pdf")
	require.NoError(t, os.MkdirAll(filepath.Dir(pdfB), 0o755))
	for _, p := range []string{pdfA, pdfB} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}

	// A folder argument expands; a file argument passes through.
	paths, err := collectPaths([]string{dir}, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{pdfA, pdfB}, paths)

	paths, err = collectPaths([]string{pdfA}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{pdfA}, paths)
}

func TestCollectPaths_MissingArg(t *testing.T) {
	cfg = &config.Config{}

	_, err := collectPaths([]string{filepath.Join(t.TempDir(), "nope.pdf")}, 1)
	assert.Error(t, err)
}
