package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOfferRecord_HasAmount(t *testing.T) {
	var rec OfferRecord
	assert.False(t, rec.HasAmount())

	v := 100.0
	rec.Amount = &v
	assert.True(t, rec.HasAmount())
}

func TestScanReport_Total(t *testing.T) {
	r := ScanReport{Processed: 3, Skipped: 2, Errored: 1}
	assert.Equal(t, 6, r.Total())

	assert.Equal(t, 0, (&ScanReport{}).Total())
}
