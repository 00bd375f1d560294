// Package catalog loads the static configuration the screens are built from:
// cash denominations, reorder products and per-kilogram overrides.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"os"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

var DefaultDenominations = []int64{1, 2, 5, 10, 20, 50, 100, 200, 500}

var DefaultOverrides = []Override{
	{Match: "Dahi, 400g", PiecesPerKg: 2},
	{Match: "Dahi, 200g", PiecesPerKg: 5},
	{Match: "Ananda Cow Paneer, 200g", PiecesPerKg: 5},
	{Match: "Amul Paneer, 200g", PiecesPerKg: 5},
	{Match: "Green Pea, 200g", PiecesPerKg: 5},
}

type Catalog struct {
	Denominations []int64    `yaml:"denominations"`
	Products      []Product  `yaml:"products"`
	Overrides     []Override `yaml:"per_kg_overrides"`
}

type Product struct {
	Name      string  `yaml:"name"`
	UnitType  string  `yaml:"unit_type"`
	UnitValue float64 `yaml:"unit_value"`
	UnitPrice float64 `yaml:"unit_price"`
}

// Override converts a piece count into kilograms for products whose name
// contains Match.
type Override struct {
	Match       string  `yaml:"match"`
	PiecesPerKg float64 `yaml:"pieces_per_kg"`
}

func (p Product) Price() decimal.Decimal {
	return decimal.NewFromFloat(p.UnitPrice)
}

// Multiplier is the unit value, or 1 when the product does not declare one.
func (p Product) Multiplier() decimal.Decimal {
	if p.UnitValue == 0 {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromFloat(p.UnitValue)
}

func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	applyDefaults(&c)
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// applyDefaults fills sections the file leaves out. An explicit empty
// per_kg_overrides list disables the overrides.
func applyDefaults(c *Catalog) {
	if len(c.Denominations) == 0 {
		c.Denominations = append([]int64(nil), DefaultDenominations...)
	}
	if c.Overrides == nil {
		c.Overrides = append([]Override(nil), DefaultOverrides...)
	}
}

func (c *Catalog) validate() error {
	for _, value := range c.Denominations {
		if value <= 0 {
			return fmt.Errorf("%w: denomination %d must be positive", ErrInvalidCatalog, value)
		}
	}
	seen := make(map[string]struct{}, len(c.Products))
	for i, p := range c.Products {
		if p.Name == "" {
			return fmt.Errorf("%w: product %d has no name", ErrInvalidCatalog, i+1)
		}
		if _, ok := seen[p.Name]; ok {
			return fmt.Errorf("%w: duplicate product %q", ErrInvalidCatalog, p.Name)
		}
		seen[p.Name] = struct{}{}
		if p.UnitPrice < 0 || p.UnitValue < 0 {
			return fmt.Errorf("%w: product %q has a negative unit value or price", ErrInvalidCatalog, p.Name)
		}
	}
	for _, o := range c.Overrides {
		if o.Match == "" || o.PiecesPerKg <= 0 {
			return fmt.Errorf("%w: override %q needs a match and positive pieces_per_kg", ErrInvalidCatalog, o.Match)
		}
	}
	return nil
}
