package marketdata

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"nomix/internal/models"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Listing is one company of the seed catalog: its profile plus the price the
// random walk starts from.
type Listing struct {
	Symbol           string  `yaml:"symbol"`
	Name             string  `yaml:"name"`
	Sector           string  `yaml:"sector"`
	Status           string  `yaml:"status"`
	Description      string  `yaml:"description"`
	BasePrice        float64 `yaml:"base_price"`
	TotalAssets      string  `yaml:"total_assets"`
	TotalLiabilities string  `yaml:"total_liabilities"`
	MarketCap        string  `yaml:"market_cap"`
	LossPerShare     string  `yaml:"loss_per_share"`
	VolumetricGrowth string  `yaml:"volumetric_growth"`
}

// Catalog is the ordered list of companies the seeder knows about.
type Catalog struct {
	Companies []Listing `yaml:"companies"`
}

// DefaultCatalog returns the catalog compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads a catalog from path, or returns the default catalog when
// path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates YAML catalog data.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Companies) == 0 {
		return fmt.Errorf("catalog has no companies")
	}
	seen := make(map[string]bool, len(c.Companies))
	for i := range c.Companies {
		l := &c.Companies[i]
		l.Symbol = strings.ToUpper(strings.TrimSpace(l.Symbol))
		switch {
		case l.Symbol == "":
			return fmt.Errorf("catalog entry %d: symbol is required", i)
		case strings.TrimSpace(l.Name) == "":
			return fmt.Errorf("catalog entry %s: name is required", l.Symbol)
		case !isFinite(l.BasePrice) || l.BasePrice <= 0:
			return fmt.Errorf("catalog entry %s: base_price must be positive", l.Symbol)
		case seen[l.Symbol]:
			return fmt.Errorf("catalog entry %s: duplicate symbol", l.Symbol)
		}
		if l.Status == "" {
			l.Status = models.CompanyStatusCompliant
		}
		seen[l.Symbol] = true
	}
	return nil
}

// Seeds returns the (symbol, base price) pairs in catalog order.
func (c *Catalog) Seeds() []Seed {
	seeds := make([]Seed, 0, len(c.Companies))
	for _, l := range c.Companies {
		seeds = append(seeds, Seed{Symbol: l.Symbol, BasePrice: l.BasePrice})
	}
	return seeds
}

// Company converts a listing into its persisted profile.
func (l Listing) Company() models.Company {
	return models.Company{
		Symbol:           l.Symbol,
		Name:             l.Name,
		Sector:           l.Sector,
		Status:           l.Status,
		Description:      l.Description,
		TotalAssets:      l.TotalAssets,
		TotalLiabilities: l.TotalLiabilities,
		MarketCap:        l.MarketCap,
		LossPerShare:     l.LossPerShare,
		VolumetricGrowth: l.VolumetricGrowth,
	}
}
