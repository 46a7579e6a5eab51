package models

// Category is a self-referencing tree used to group items.
// #CARDINALITY_ASSUMPTION: Category N:M Items via the category_items join table
type Category struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	Name     string     `json:"name"`
	ParentID *uint      `json:"parent_id,omitempty"`
	Parent   *Category  `json:"-"`
	Children []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Items    []Item     `gorm:"many2many:category_items" json:"-"`
}

// AddChild links a child category under this one
func (c *Category) AddChild(child *Category) {
	child.ParentID = &c.ID
	c.Children = append(c.Children, *child)
}
