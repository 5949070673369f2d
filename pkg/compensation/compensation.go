// Package compensation estimates salary bands from a keyword table.
package compensation

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"
)

//go:embed table.yaml
var defaultTable []byte

type Adjustment struct {
	Keywords   []string `yaml:"keywords"`
	Multiplier float64  `yaml:"multiplier"`
}

type Band struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type Table struct {
	BaseSalary          float64      `yaml:"base_salary"`
	TitleAdjustments    []Adjustment `yaml:"title_adjustments"`
	LocationAdjustments []Adjustment `yaml:"location_adjustments"`
	Bands               struct {
		MarketAverage    Band `yaml:"market_average"`
		CompetitiveRange Band `yaml:"competitive_range"`
		TopTier          Band `yaml:"top_tier"`
		TotalComp        Band `yaml:"total_comp"`
	} `yaml:"bands"`
	EquityRange      Range    `yaml:"equity_range"`
	Trends           []string `yaml:"trends"`
	Recommendations  []string `yaml:"recommendations"`
	BenefitsInsights []string `yaml:"benefits_insights"`
}

type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// MarketAnalysis is the estimate returned to clients.
type MarketAnalysis struct {
	MarketAverage    Range    `json:"market_average"`
	CompetitiveRange Range    `json:"competitive_range"`
	TopTier          Range    `json:"top_tier"`
	TotalComp        Range    `json:"total_comp"`
	EquityRange      Range    `json:"equity_range"`
	Trends           []string `json:"trends"`
	Recommendations  []string `json:"recommendations"`
	BenefitsInsights []string `json:"benefits_insights"`
}

// Default returns the embedded table.
func Default() *Table {
	t, err := Parse(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("compensation: embedded table: %v", err))
	}
	return t
}

// Load reads a table from path, or returns the embedded one when path is empty.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read compensation table: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse compensation table: %w", err)
	}
	if t.BaseSalary <= 0 {
		return nil, fmt.Errorf("parse compensation table: base_salary must be positive")
	}
	return &t, nil
}

// Base applies the first matching title and location adjustments.
func (t *Table) Base(title, location string) float64 {
	return t.BaseSalary * multiplier(t.TitleAdjustments, title) * multiplier(t.LocationAdjustments, location)
}

func (t *Table) Estimate(title, location string) MarketAnalysis {
	base := t.Base(title, location)
	band := func(b Band) Range {
		return Range{Min: int(math.Round(base * b.Min)), Max: int(math.Round(base * b.Max))}
	}
	r := strings.NewReplacer("{title}", title, "{location}", location)
	trends := make([]string, 0, len(t.Trends))
	for _, s := range t.Trends {
		trends = append(trends, r.Replace(s))
	}
	return MarketAnalysis{
		MarketAverage:    band(t.Bands.MarketAverage),
		CompetitiveRange: band(t.Bands.CompetitiveRange),
		TopTier:          band(t.Bands.TopTier),
		TotalComp:        band(t.Bands.TotalComp),
		EquityRange:      t.EquityRange,
		Trends:           trends,
		Recommendations:  append([]string(nil), t.Recommendations...),
		BenefitsInsights: append([]string(nil), t.BenefitsInsights...),
	}
}

func multiplier(adjs []Adjustment, s string) float64 {
	s = strings.ToLower(s)
	for _, a := range adjs {
		for _, kw := range a.Keywords {
			if kw != "" && strings.Contains(s, strings.ToLower(kw)) {
				return a.Multiplier
			}
		}
	}
	return 1
}
