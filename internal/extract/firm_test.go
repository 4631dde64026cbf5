package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := New(DefaultOptions(), nil)
	require.NoError(t, err)
	return p
}

func TestExtractFirm_Label(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		name string
		page string
		want string
	}{
		{"turkish label", "Firma Adı: Acme Gıda Ltd.\nTarih: 01.02.2024", "Acme Gıda Ltd."},
		{"english label", "Company: Delta Trading Inc.\n", "Delta Trading Inc."},
		{"dash delimiter", "Müşteri - Beta Tarım A.Ş.", "Beta Tarım A.Ş."},
		{"adjacent field trimmed", "Firma: Acme Corp   Your Reference: 123", "Acme Corp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.extractFirm("doc", []string{tt.page}))
		})
	}
}

func TestExtractFirm_NextLine(t *testing.T) {
	p := newTestParser(t)

	got := p.extractFirm("doc", []string{"Firma:\nPak Gıda Üretim A.Ş.\nAdres: İstanbul"})
	assert.Equal(t, "Pak Gıda Üretim A.Ş.", got)
}

func TestExtractFirm_LegalSuffixFallback(t *testing.T) {
	p := newTestParser(t)

	// No label anywhere; a header line ending in a legal suffix wins.
	page := "TEKLİF\nPAK GIDA PAZARLAMA A.Ş.\nTel: 0212 555 55 55"
	assert.Equal(t, "PAK GIDA PAZARLAMA A.Ş.", p.extractFirm("doc", []string{page}))
}

func TestExtractFirm_Greeting(t *testing.T) {
	p := newTestParser(t)

	got := p.extractFirm("doc", []string{"Merhaba,\nSayın Acme Holding\nTeklifimiz ektedir."})
	assert.Equal(t, "Acme Holding", got)
}

func TestExtractFirm_GreetingRejectsHonorific(t *testing.T) {
	p := newTestParser(t)

	// A salutation to a person is not a firm name.
	assert.Empty(t, p.extractFirm("doc", []string{"Sayın Ahmet Bey\nTeklifimiz ektedir."}))
}

func TestExtractFirm_LaterPage(t *testing.T) {
	p := newTestParser(t)

	pages := []string{"Kapak sayfası", "Firma: Gamma Lojistik Ltd. Şti."}
	assert.Equal(t, "Gamma Lojistik Ltd. Şti.", p.extractFirm("doc", pages))
}

func TestExtractFirm_BeyondMaxPagesIgnored(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxPages = 1
	p, err := New(opts, nil)
	require.NoError(t, err)

	pages := []string{"boş sayfa", "Firma: Acme Ltd."}
	assert.Empty(t, p.extractFirm("doc", pages))
}

func TestExtractFirm_WindowBound(t *testing.T) {
	opts := DefaultOptions()
	opts.FirmWindow = 2
	opts.FirmHeaderBlock = 2
	p, err := New(opts, nil)
	require.NoError(t, err)

	page := "satır 1\nsatır 2\nsatır 3\nFirma: Acme Ltd."
	assert.Empty(t, p.extractFirm("doc", []string{page}))
}

func TestExtractFirm_ShortCandidateRejected(t *testing.T) {
	p := newTestParser(t)

	assert.Empty(t, p.extractFirm("doc", []string{"Firma: AB"}))
}
