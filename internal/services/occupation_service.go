package services

import (
	"errors"
	"strings"

	"github.com/carewellhq/clinic-admin/internal/models"
	"gorm.io/gorm"
)

var (
	ErrOccupationNotFound     = errors.New("occupation not found")
	ErrOccupationNameRequired = errors.New("occupation name is required")
)

type OccupationService struct {
	db *gorm.DB
}

func NewOccupationService(db *gorm.DB) *OccupationService {
	return &OccupationService{db: db}
}

func (s *OccupationService) Create(name string) (*models.Occupation, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrOccupationNameRequired
	}
	occupation := models.Occupation{Name: name}
	if err := s.db.Create(&occupation).Error; err != nil {
		return nil, err
	}
	return &occupation, nil
}

// List returns all occupations newest-first.
func (s *OccupationService) List() ([]models.Occupation, error) {
	var occupations []models.Occupation
	err := s.db.Order("created_at DESC").Find(&occupations).Error
	return occupations, err
}

func (s *OccupationService) Get(id string) (*models.Occupation, error) {
	var occupation models.Occupation
	if err := s.db.First(&occupation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOccupationNotFound
		}
		return nil, err
	}
	return &occupation, nil
}

func (s *OccupationService) Update(id, name string) (*models.Occupation, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrOccupationNameRequired
	}
	occupation, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(occupation).Update("name", name).Error; err != nil {
		return nil, err
	}
	return occupation, nil
}

func (s *OccupationService) Delete(id string) (*models.Occupation, error) {
	occupation, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(occupation).Error; err != nil {
		return nil, err
	}
	return occupation, nil
}
