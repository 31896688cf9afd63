package services

import (
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/alexanderthenotsobad-git/nvrs-rest-api/entity"
	"github.com/alexanderthenotsobad-git/nvrs-rest-api/repository"
)

func setupMenuService(t *testing.T) (*MenuService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&entity.MenuItem{}, &entity.MenuItemImage{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewMenuService(repository.NewMenuRepository(db)), db
}

func TestMenuService_List_ExposesMostRecentImageID(t *testing.T) {
	svc, db := setupMenuService(t)

	item := &entity.MenuItem{Name: "Burger", Price: 9.99, Type: "Main Course"}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create item: %v", err)
	}
	bare := &entity.MenuItem{Name: "Water", Price: 0.99, Type: "Drink"}
	if err := db.Create(bare).Error; err != nil {
		t.Fatalf("failed to create item: %v", err)
	}

	base := time.Now().UTC()
	older := entity.MenuItemImage{MenuItemID: item.ID, Data: []byte("a"), Type: "image/png", UploadedAt: base}
	newer := entity.MenuItemImage{MenuItemID: item.ID, Data: []byte("b"), Type: "image/png", UploadedAt: base.Add(time.Minute)}
	if err := db.Create(&older).Error; err != nil {
		t.Fatalf("failed to create image: %v", err)
	}
	if err := db.Create(&newer).Error; err != nil {
		t.Fatalf("failed to create image: %v", err)
	}

	summaries, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("len(summaries) = %d, want 2", len(summaries))
	}

	for _, s := range summaries {
		switch s.ItemID {
		case item.ID:
			if s.ImageID == nil || *s.ImageID != newer.ID {
				t.Errorf("image_id = %v, want %d", s.ImageID, newer.ID)
			}
		case bare.ID:
			if s.ImageID != nil {
				t.Errorf("image_id = %v, want nil for item without images", *s.ImageID)
			}
		}
	}
}

func TestMenuService_Create(t *testing.T) {
	svc, _ := setupMenuService(t)

	id, err := svc.Create(&entity.MenuItem{Name: "Salad", Price: 7.49, Type: "Appetizer"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a generated item id")
	}
}

func TestMenuService_Update_Missing(t *testing.T) {
	svc, _ := setupMenuService(t)

	err := svc.Update(42, map[string]interface{}{"price": 1.0})
	if !errors.Is(err, ErrMenuItemNotFound) {
		t.Errorf("err = %v, want ErrMenuItemNotFound", err)
	}
}

func TestMenuService_Delete_Missing(t *testing.T) {
	svc, _ := setupMenuService(t)

	if err := svc.Delete(42); !errors.Is(err, ErrMenuItemNotFound) {
		t.Errorf("err = %v, want ErrMenuItemNotFound", err)
	}
}
