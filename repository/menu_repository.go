// repository/menu_repository.go
package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/alexanderthenotsobad-git/nvrs-rest-api/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// FindAll returns every menu item with its images preloaded newest-first,
// so the first preloaded image is the one a caller should surface.
func (r *MenuRepository) FindAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.
				Select("image_id", "menu_item_id", "uploaded_at").
				Order("uploaded_at DESC")
		}).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}
	return items, nil
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, "item_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

// Updates applies a partial update; fields holds column/value pairs.
func (r *MenuRepository) Updates(id uint, fields map[string]interface{}) (int64, error) {
	res := r.DB.Model(&entity.MenuItem{}).
		Where("item_id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// Delete removes one menu item by identifier and reports the affected count.
func (r *MenuRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.MenuItem{}, "item_id = ?", id)
	return res.RowsAffected, res.Error
}
