// services/menu_service.go
package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/alexanderthenotsobad-git/nvrs-rest-api/entity"
	"github.com/alexanderthenotsobad-git/nvrs-rest-api/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// MenuItemSummary is what the listing endpoint returns: the item columns plus
// the id of its most recent image, when one exists.
type MenuItemSummary struct {
	ItemID   uint    `json:"item_id"`
	ItemName string  `json:"item_name"`
	ItemDesc string  `json:"item_desc"`
	Price    float64 `json:"price"`
	ItemType string  `json:"item_type"`
	ImageID  *uint   `json:"image_id"`
}

func (s *MenuService) List() ([]MenuItemSummary, error) {
	items, err := s.Repo.FindAll()
	if err != nil {
		return nil, err
	}

	summaries := make([]MenuItemSummary, 0, len(items))
	for _, item := range items {
		summary := MenuItemSummary{
			ItemID:   item.ID,
			ItemName: item.Name,
			ItemDesc: item.Description,
			Price:    item.Price,
			ItemType: item.Type,
		}
		if len(item.Images) > 0 {
			id := item.Images[0].ID
			summary.ImageID = &id
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *MenuService) Create(item *entity.MenuItem) (uint, error) {
	if err := s.Repo.Create(item); err != nil {
		return 0, err
	}
	return item.ID, nil
}

// Update applies a partial update. Existence is checked up front because an
// UPDATE that changes nothing also reports zero affected rows.
func (s *MenuService) Update(id uint, fields map[string]interface{}) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}
	_, err := s.Repo.Updates(id, fields)
	return err
}

func (s *MenuService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}
