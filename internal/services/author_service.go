package services

import (
	"errors"
	"strings"

	"github.com/carewellhq/clinic-admin/internal/dto"
	"github.com/carewellhq/clinic-admin/internal/imgcodec"
	"github.com/carewellhq/clinic-admin/internal/models"
	"gorm.io/gorm"
)

var (
	ErrAuthorNotFound       = errors.New("author not found")
	ErrAuthorNameRequired   = errors.New("author name is required")
	ErrAuthorImageMissing   = errors.New("author has no image")
	ErrAuthorImageMalformed = errors.New("author image payload is malformed")
)

type AuthorService struct {
	db *gorm.DB
}

func NewAuthorService(db *gorm.DB) *AuthorService {
	return &AuthorService{db: db}
}

// Create validates the name, compresses the embedded image when supplied and
// persists the author. The original image payload is discarded; only the
// compressed form is stored.
func (s *AuthorService) Create(req dto.AuthorRequest) (*models.Author, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrAuthorNameRequired
	}

	author := models.Author{
		Name:      req.Name,
		Bio:       req.Bio,
		AuthorURL: req.AuthorURL,
	}

	if req.AuthorImage != "" {
		compressed, err := imgcodec.Compress(req.AuthorImage)
		if err != nil {
			return nil, err
		}
		author.AuthorImage = compressed
	}

	if err := s.db.Create(&author).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

// List returns all authors newest-first with the image column skipped.
func (s *AuthorService) List() ([]models.Author, error) {
	var authors []models.Author
	err := s.db.Select(models.AuthorColumns).
		Order("created_at DESC").
		Find(&authors).Error
	return authors, err
}

// Get returns one author without its image column.
func (s *AuthorService) Get(id string) (*models.Author, error) {
	var author models.Author
	err := s.db.Select(models.AuthorColumns).First(&author, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}
	return &author, nil
}

// Update replaces name, bio, URL and image in full; an absent image clears the
// stored one. Compression matches Create.
func (s *AuthorService) Update(id string, req dto.AuthorRequest) (*models.Author, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrAuthorNameRequired
	}

	var author models.Author
	if err := s.db.Select(models.AuthorColumns).First(&author, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}

	image := ""
	if req.AuthorImage != "" {
		compressed, err := imgcodec.Compress(req.AuthorImage)
		if err != nil {
			return nil, err
		}
		image = compressed
	}

	updates := map[string]interface{}{
		"name":         req.Name,
		"bio":          req.Bio,
		"author_url":   req.AuthorURL,
		"author_image": image,
	}
	if err := s.db.Model(&author).Updates(updates).Error; err != nil {
		return nil, err
	}

	author.AuthorImage = ""
	return &author, nil
}

// Delete hard-deletes the author and returns the removed record.
func (s *AuthorService) Delete(id string) (*models.Author, error) {
	var author models.Author
	if err := s.db.Select(models.AuthorColumns).First(&author, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}
	if err := s.db.Delete(&author).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

// Image returns the decoded image bytes and their MIME type.
func (s *AuthorService) Image(id string) (mime string, data []byte, err error) {
	var author models.Author
	if err := s.db.First(&author, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrAuthorNotFound
		}
		return "", nil, err
	}
	if author.AuthorImage == "" {
		return "", nil, ErrAuthorImageMissing
	}

	mime, data, err = imgcodec.Decode(author.AuthorImage)
	if err != nil {
		return "", nil, ErrAuthorImageMalformed
	}
	return mime, data, nil
}
