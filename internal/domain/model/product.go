package model

import "github.com/shopspring/decimal"

type Product struct {
	ID          int64           `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Category    string          `json:"category" yaml:"category"` // Category.Slug
	Price       decimal.Decimal `json:"price" yaml:"price"`
	Unit        string          `json:"unit" yaml:"unit"`
	Image       string          `json:"image" yaml:"image"`
	Description string          `json:"description" yaml:"description"`
	InStock     bool            `json:"in_stock" yaml:"in_stock"`
}

func (p *Product) EntityID() int64      { return p.ID }
func (p *Product) SetEntityID(id int64) { p.ID = id }
func (p *Product) Clone() Product       { return *p }

// nilの項目は変更しない
type ProductPatch struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Unit        *string          `json:"unit"`
	Image       *string          `json:"image"`
	Description *string          `json:"description"`
	InStock     *bool            `json:"in_stock"`
}

func (p ProductPatch) Apply(pr *Product) {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Category != nil {
		pr.Category = *p.Category
	}
	if p.Price != nil {
		pr.Price = *p.Price
	}
	if p.Unit != nil {
		pr.Unit = *p.Unit
	}
	if p.Image != nil {
		pr.Image = *p.Image
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.InStock != nil {
		pr.InStock = *p.InStock
	}
}
