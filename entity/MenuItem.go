package entity

// MenuItem maps onto the menu_items table. Column names are kept explicit so
// the schema stays compatible with the existing database.
type MenuItem struct {
	ID          uint    `gorm:"column:item_id;primaryKey" json:"item_id"`
	Name        string  `gorm:"column:item_name" json:"item_name"`
	Description string  `gorm:"column:item_desc" json:"item_desc"`
	Price       float64 `gorm:"column:price" json:"price"`
	Type        string  `gorm:"column:item_type" json:"item_type"`

	Images []MenuItemImage `gorm:"foreignKey:MenuItemID" json:"-"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
