package services

import (
	"errors"
	"strings"

	"github.com/carewellhq/clinic-admin/internal/models"
	"gorm.io/gorm"
)

var (
	ErrDiagnosisNotFound     = errors.New("diagnosis not found")
	ErrDiagnosisNameRequired = errors.New("diagnosis name is required")
)

type DiagnosisService struct {
	db *gorm.DB
}

func NewDiagnosisService(db *gorm.DB) *DiagnosisService {
	return &DiagnosisService{db: db}
}

func (s *DiagnosisService) Create(name string) (*models.Diagnosis, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrDiagnosisNameRequired
	}
	diagnosis := models.Diagnosis{Name: name}
	if err := s.db.Create(&diagnosis).Error; err != nil {
		return nil, err
	}
	return &diagnosis, nil
}

// List returns all diagnoses in store order.
func (s *DiagnosisService) List() ([]models.Diagnosis, error) {
	var diagnoses []models.Diagnosis
	err := s.db.Find(&diagnoses).Error
	return diagnoses, err
}

func (s *DiagnosisService) Get(id string) (*models.Diagnosis, error) {
	var diagnosis models.Diagnosis
	if err := s.db.First(&diagnosis, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiagnosisNotFound
		}
		return nil, err
	}
	return &diagnosis, nil
}

func (s *DiagnosisService) Update(id, name string) (*models.Diagnosis, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrDiagnosisNameRequired
	}
	diagnosis, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(diagnosis).Update("name", name).Error; err != nil {
		return nil, err
	}
	return diagnosis, nil
}

func (s *DiagnosisService) Delete(id string) (*models.Diagnosis, error) {
	diagnosis, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(diagnosis).Error; err != nil {
		return nil, err
	}
	return diagnosis, nil
}
