package entity

import "time"

// MenuItemImage maps onto the menu_item_images table.
// UploadedAt decides which image is "most recent" for an item.
type MenuItemImage struct {
	ID         uint      `gorm:"column:image_id;primaryKey" json:"image_id"`
	MenuItemID uint      `gorm:"column:menu_item_id;index" json:"menu_item_id"`
	Data       []byte    `gorm:"column:image_data;type:blob" json:"-"`
	Type       string    `gorm:"column:image_type" json:"-"`
	UploadedAt time.Time `gorm:"column:uploaded_at;autoCreateTime" json:"-"`
}

func (MenuItemImage) TableName() string {
	return "menu_item_images"
}
