// services/image_service.go
package services

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/alexanderthenotsobad-git/nvrs-rest-api/entity"
	"github.com/alexanderthenotsobad-git/nvrs-rest-api/repository"
)

// MaxImageSize caps uploads at 5MB, same as the previous API.
const MaxImageSize = 5 << 20

type ImageService struct {
	Images    *repository.ImageRepository
	Menu      *repository.MenuRepository
	UploadDir string
}

func NewImageService(images *repository.ImageRepository, menu *repository.MenuRepository, uploadDir string) *ImageService {
	return &ImageService{Images: images, Menu: menu, UploadDir: uploadDir}
}

// Upload validates the file, stages it on disk, checks the owning menu item
// exists and stores the image. The staged file is removed on every exit path.
func (s *ImageService) Upload(menuItemID uint, file *multipart.FileHeader) (uint, error) {
	if file == nil {
		return 0, ErrMissingFile
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return 0, ErrUnsupportedMediaType
	}
	if file.Size > MaxImageSize {
		return 0, ErrPayloadTooLarge
	}

	staged, err := s.stage(file)
	if err != nil {
		return 0, fmt.Errorf("failed to stage upload: %w", err)
	}
	defer func() {
		if err := os.Remove(staged); err != nil && !os.IsNotExist(err) {
			log.Error().Err(err).Str("path", staged).Msg("failed to remove staged upload")
		}
	}()

	if _, err := s.Menu.FindByID(menuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrMenuItemNotFound
		}
		return 0, fmt.Errorf("failed to verify menu item: %w", err)
	}

	data, err := os.ReadFile(staged)
	if err != nil {
		return 0, fmt.Errorf("failed to read staged upload: %w", err)
	}

	img := &entity.MenuItemImage{
		MenuItemID: menuItemID,
		Data:       data,
		Type:       contentType,
	}
	if err := s.Images.Create(img); err != nil {
		return 0, err
	}
	return img.ID, nil
}

// stage copies the upload into the upload directory under a
// collision-resistant name: menu-item-<timestamp>-<rand><ext>.
func (s *ImageService) stage(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.UploadDir, 0o755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	name := fmt.Sprintf("menu-item-%d-%d%s", time.Now().UnixNano(), rand.Intn(1_000_000_000), ext)
	dst := filepath.Join(s.UploadDir, name)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", err
	}
	return dst, nil
}

// GetByID resolves an image directly by its identifier.
func (s *ImageService) GetByID(id uint) (*entity.MenuItemImage, error) {
	img, err := s.Images.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	return img, nil
}

// GetLatestForMenuItem resolves the most recently uploaded image for an item.
func (s *ImageService) GetLatestForMenuItem(menuItemID uint) (*entity.MenuItemImage, error) {
	img, err := s.Images.FindLatestByMenuItem(menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	return img, nil
}

// Delete removes one image by identifier. A delete that affects zero rows
// (a concurrent delete won the race) reports not-found rather than a
// generic failure, so both callers see the same outcome.
func (s *ImageService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	affected, err := s.Images.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	if affected == 0 {
		return ErrImageNotFound
	}
	return nil
}
