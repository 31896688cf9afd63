// repository/image_repository.go
package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/alexanderthenotsobad-git/nvrs-rest-api/entity"
)

type ImageRepository struct {
	DB *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{DB: db}
}

func (r *ImageRepository) FindByID(id uint) (*entity.MenuItemImage, error) {
	var img entity.MenuItemImage
	if err := r.DB.First(&img, "image_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

// FindLatestByMenuItem returns the most recently uploaded image for an item.
// Upload order between racing requests is decided purely by uploaded_at.
func (r *ImageRepository) FindLatestByMenuItem(menuItemID uint) (*entity.MenuItemImage, error) {
	var img entity.MenuItemImage
	err := r.DB.
		Where("menu_item_id = ?", menuItemID).
		Order("uploaded_at DESC").
		First(&img).Error
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *ImageRepository) Create(img *entity.MenuItemImage) error {
	if err := r.DB.Create(img).Error; err != nil {
		return fmt.Errorf("failed to store image: %w", err)
	}
	return nil
}

// Delete removes one image by identifier and reports the affected count,
// so callers can tell a lost race apart from a successful delete.
func (r *ImageRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.MenuItemImage{}, "image_id = ?", id)
	return res.RowsAffected, res.Error
}
