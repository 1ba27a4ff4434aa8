package model

// 商品カテゴリ。slugは一意で変更不可。
type Category struct {
	ID    int64  `json:"id" yaml:"id"`
	Slug  string `json:"slug" yaml:"slug"`
	Name  string `json:"name" yaml:"name"`
	Icon  string `json:"icon" yaml:"icon"`
	Color string `json:"color" yaml:"color"`
	Image string `json:"image" yaml:"image"`
}

func (c *Category) EntityID() int64      { return c.ID }
func (c *Category) SetEntityID(id int64) { c.ID = id }
func (c *Category) Clone() Category      { return *c }

// nilのフィールドは変更しない。slugは含めない。
type CategoryPatch struct {
	Name  *string
	Icon  *string
	Color *string
	Image *string
}

func (p CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.Image != nil {
		c.Image = *p.Image
	}
}
