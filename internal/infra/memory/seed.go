package memory

import (
	_ "embed"
	"fmt"

	"quickmart/internal/domain/model"

	"gopkg.in/yaml.v3"
)

//go:embed seed/catalog.yaml
var defaultCatalog []byte

// 起動時に投入するカテゴリと商品
type Catalog struct {
	Categories []model.Category `yaml:"categories"`
	Products   []model.Product  `yaml:"products"`
}

// 同梱のカタログ
func DefaultCatalog() (Catalog, error) {
	return LoadCatalog(defaultCatalog)
}

func LoadCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

func (c Catalog) validate() error {
	slugs := make(map[string]bool, len(c.Categories))
	catIDs := make(map[int64]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.ID != 0 && catIDs[cat.ID] {
			return fmt.Errorf("category %d: duplicate id", cat.ID)
		}
		catIDs[cat.ID] = true
		if cat.Slug == "" {
			return fmt.Errorf("category %d: slug required", cat.ID)
		}
		if slugs[cat.Slug] {
			return fmt.Errorf("category %d: duplicate slug %q", cat.ID, cat.Slug)
		}
		slugs[cat.Slug] = true
	}

	ids := make(map[int64]bool, len(c.Products))
	for _, p := range c.Products {
		if p.ID != 0 && ids[p.ID] {
			return fmt.Errorf("product %d: duplicate id", p.ID)
		}
		ids[p.ID] = true
		if !slugs[p.Category] {
			return fmt.Errorf("product %d: unknown category %q", p.ID, p.Category)
		}
		if p.Price.IsNegative() {
			return fmt.Errorf("product %d: negative price", p.ID)
		}
	}
	return nil
}
