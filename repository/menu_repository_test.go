package repository

import (
	"testing"
	"time"

	"github.com/alexanderthenotsobad-git/nvrs-rest-api/entity"
)

func TestMenuRepository_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)

	item := &entity.MenuItem{Name: "Burger", Description: "Beef", Price: 9.99, Type: "Main Course"}
	if err := repo.Create(item); err != nil {
		t.Fatalf("failed to create item: %v", err)
	}
	if item.ID == 0 {
		t.Fatal("expected a generated item id")
	}

	got, err := repo.FindByID(item.ID)
	if err != nil {
		t.Fatalf("failed to find item: %v", err)
	}
	if got.Name != "Burger" || got.Price != 9.99 {
		t.Errorf("got %+v, want name Burger and price 9.99", got)
	}
}

func TestMenuRepository_FindAll_PreloadsNewestImageFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)
	imageRepo := NewImageRepository(db)

	item := createTestItem(t, db, "Burger")
	base := time.Now().UTC()
	for i, payload := range []string{"first", "second"} {
		img := &entity.MenuItemImage{
			MenuItemID: item.ID,
			Data:       []byte(payload),
			Type:       "image/png",
			UploadedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := imageRepo.Create(img); err != nil {
			t.Fatalf("failed to create image: %v", err)
		}
	}

	items, err := repo.FindAll()
	if err != nil {
		t.Fatalf("failed to list items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if len(items[0].Images) != 2 {
		t.Fatalf("len(images) = %d, want 2", len(items[0].Images))
	}
	if items[0].Images[0].UploadedAt.Before(items[0].Images[1].UploadedAt) {
		t.Error("images are not ordered newest-first")
	}
}

func TestMenuRepository_Updates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)
	item := createTestItem(t, db, "Burger")

	affected, err := repo.Updates(item.ID, map[string]interface{}{"price": 12.49})
	if err != nil {
		t.Fatalf("failed to update item: %v", err)
	}
	if affected != 1 {
		t.Errorf("affected = %d, want 1", affected)
	}

	got, err := repo.FindByID(item.ID)
	if err != nil {
		t.Fatalf("failed to find item: %v", err)
	}
	if got.Price != 12.49 {
		t.Errorf("price = %v, want 12.49", got.Price)
	}
}

func TestMenuRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)
	item := createTestItem(t, db, "Burger")

	affected, err := repo.Delete(item.ID)
	if err != nil {
		t.Fatalf("failed to delete item: %v", err)
	}
	if affected != 1 {
		t.Errorf("affected = %d, want 1", affected)
	}

	affected, err = repo.Delete(item.ID)
	if err != nil {
		t.Fatalf("unexpected error on repeat delete: %v", err)
	}
	if affected != 0 {
		t.Errorf("affected = %d, want 0", affected)
	}
}
