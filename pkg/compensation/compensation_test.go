package compensation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseAdjustments(t *testing.T) {
	tbl := Default()
	tests := []struct {
		title, location string
		want            float64
	}{
		{"Senior Frontend Developer", "San Francisco, CA", 125000 * 1.3 * 1.4},
		{"Junior Analyst", "New York", 125000 * 0.7 * 1.3},
		{"Product Manager", "Remote", 125000 * 1.1},
		{"Product Manager", "Austin, TX", 125000},
		{"Senior Junior Hybrid", "Bay Area", 125000 * 1.3 * 1.4},
	}
	for _, tt := range tests {
		t.Run(tt.title+"/"+tt.location, func(t *testing.T) {
			assert.InDelta(t, tt.want, tbl.Base(tt.title, tt.location), 0.01)
		})
	}
}

func TestEstimate(t *testing.T) {
	got := Default().Estimate("Senior Engineer", "San Francisco")

	assert.Equal(t, Range{Min: 193375, Max: 261625}, got.MarketAverage)
	assert.Equal(t, Range{Min: 204750, Max: 284375}, got.CompetitiveRange)
	assert.Equal(t, Range{Min: 15000, Max: 45000}, got.EquityRange)
	assert.Equal(t, "Senior Engineer salaries trending up 8% this year", got.Trends[0])
	assert.Equal(t, "San Francisco market showing strong demand", got.Trends[1])
	assert.Len(t, got.Recommendations, 3)
	assert.Len(t, got.BenefitsInsights, 3)
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_salary: 100000
title_adjustments:
  - keywords: [staff]
    multiplier: 1.5
bands:
  market_average: {min: 1, max: 1}
`), 0o600))

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Range{Min: 150000, Max: 150000}, tbl.Estimate("Staff Engineer", "Berlin").MarketAverage)

	_, err = Parse([]byte("base_salary: 0"))
	assert.Error(t, err)
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
