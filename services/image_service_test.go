package services

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/alexanderthenotsobad-git/nvrs-rest-api/entity"
	"github.com/alexanderthenotsobad-git/nvrs-rest-api/repository"
)

func setupImageService(t *testing.T) (*ImageService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&entity.MenuItem{}, &entity.MenuItemImage{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	svc := NewImageService(
		repository.NewImageRepository(db),
		repository.NewMenuRepository(db),
		t.TempDir(),
	)
	return svc, db
}

func createMenuItem(t *testing.T, db *gorm.DB) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{Name: "Burger", Description: "Beef", Price: 9.99, Type: "Main Course"}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create menu item: %v", err)
	}
	return item
}

// fileHeader builds a real multipart.FileHeader the way gin would hand one to
// the service: written into a multipart body and parsed back out.
func fileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("failed to create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("failed to write part: %v", err)
	}
	w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("failed to parse form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}

func assertNoStagedFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read upload dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("%d staged files left behind, want 0", len(entries))
	}
}

func TestImageService_Upload_RoundTrip(t *testing.T) {
	svc, db := setupImageService(t)
	item := createMenuItem(t, db)

	payload := []byte("png-bytes-here")
	id, err := svc.Upload(item.ID, fileHeader(t, "burger.png", "image/png", payload))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a generated image id")
	}

	img, err := svc.GetByID(id)
	if err != nil {
		t.Fatalf("failed to resolve image: %v", err)
	}
	if !bytes.Equal(img.Data, payload) {
		t.Error("stored payload differs from uploaded payload")
	}
	if img.Type != "image/png" {
		t.Errorf("Type = %q, want image/png", img.Type)
	}

	assertNoStagedFiles(t, svc.UploadDir)
}

func TestImageService_Upload_MissingFile(t *testing.T) {
	svc, db := setupImageService(t)
	item := createMenuItem(t, db)

	if _, err := svc.Upload(item.ID, nil); !errors.Is(err, ErrMissingFile) {
		t.Errorf("err = %v, want ErrMissingFile", err)
	}
}

func TestImageService_Upload_RejectsNonImage(t *testing.T) {
	svc, db := setupImageService(t)
	item := createMenuItem(t, db)

	_, err := svc.Upload(item.ID, fileHeader(t, "notes.txt", "text/plain", []byte("hello")))
	if !errors.Is(err, ErrUnsupportedMediaType) {
		t.Fatalf("err = %v, want ErrUnsupportedMediaType", err)
	}

	var count int64
	db.Model(&entity.MenuItemImage{}).Count(&count)
	if count != 0 {
		t.Errorf("images stored = %d, want 0", count)
	}
	assertNoStagedFiles(t, svc.UploadDir)
}

func TestImageService_Upload_RejectsOversized(t *testing.T) {
	svc, db := setupImageService(t)
	item := createMenuItem(t, db)

	big := bytes.Repeat([]byte("a"), MaxImageSize+1)
	_, err := svc.Upload(item.ID, fileHeader(t, "huge.jpg", "image/jpeg", big))
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Errorf("err = %v, want ErrPayloadTooLarge", err)
	}
	assertNoStagedFiles(t, svc.UploadDir)
}

func TestImageService_Upload_MenuItemMissing(t *testing.T) {
	svc, _ := setupImageService(t)

	_, err := svc.Upload(999999, fileHeader(t, "burger.png", "image/png", []byte("x")))
	if !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("err = %v, want ErrMenuItemNotFound", err)
	}
	// The staged file must be cleaned up on the failure path too.
	assertNoStagedFiles(t, svc.UploadDir)
}

func TestImageService_GetLatestForMenuItem(t *testing.T) {
	svc, db := setupImageService(t)
	item := createMenuItem(t, db)

	base := time.Now().UTC()
	older := entity.MenuItemImage{MenuItemID: item.ID, Data: []byte("older"), Type: "image/jpeg", UploadedAt: base}
	newer := entity.MenuItemImage{MenuItemID: item.ID, Data: []byte("newer"), Type: "image/png", UploadedAt: base.Add(time.Second)}
	if err := db.Create(&newer).Error; err != nil {
		t.Fatalf("failed to insert image: %v", err)
	}
	if err := db.Create(&older).Error; err != nil {
		t.Fatalf("failed to insert image: %v", err)
	}

	got, err := svc.GetLatestForMenuItem(item.ID)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if string(got.Data) != "newer" {
		t.Errorf("resolved payload = %q, want newer", got.Data)
	}
}

func TestImageService_GetLatestForMenuItem_NoImages(t *testing.T) {
	svc, db := setupImageService(t)
	item := createMenuItem(t, db)

	if _, err := svc.GetLatestForMenuItem(item.ID); !errors.Is(err, ErrImageNotFound) {
		t.Errorf("err = %v, want ErrImageNotFound", err)
	}
}

func TestImageService_Delete_Idempotent(t *testing.T) {
	svc, db := setupImageService(t)
	item := createMenuItem(t, db)

	id, err := svc.Upload(item.ID, fileHeader(t, "burger.png", "image/png", []byte("x")))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	if err := svc.Delete(id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(id); !errors.Is(err, ErrImageNotFound) {
		t.Errorf("second delete err = %v, want ErrImageNotFound", err)
	}
}
