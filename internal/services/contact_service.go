package services

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/carewellhq/clinic-admin/internal/dto"
	"github.com/carewellhq/clinic-admin/internal/excel"
	"github.com/carewellhq/clinic-admin/internal/models"
	"gorm.io/gorm"
)

const contactPageSize = 10

var (
	ErrContactNotFound       = errors.New("contact not found")
	ErrContactFieldsRequired = errors.New("name and phone are required")
	ErrContactInvalidEmail   = errors.New("email is not a valid address")
	ErrContactDatesRequired  = errors.New("startDate and endDate are required")
	ErrNoContactsInRange     = errors.New("no contacts found in the given date range")
)

// emailShape is the minimal local@domain check; anything stricter belongs to
// the caller.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(email string) bool {
	return emailShape.MatchString(email)
}

var contactExportHeaders = []string{"Name", "Phone", "Email", "Subject", "Message", "Closed", "Created At"}

type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

// Create always inserts. Duplicate submissions for the same phone/email are
// accepted; the earlier find-or-update behavior stays disabled.
func (s *ContactService) Create(req dto.ContactRequest) (*models.Contact, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" {
		return nil, ErrContactFieldsRequired
	}
	if req.Email != "" && !validEmail(req.Email) {
		return nil, ErrContactInvalidEmail
	}

	contact := models.Contact{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Subject:        req.Subject,
		Message:        req.Message,
		IsContactClose: req.IsContactClose,
		UserID:         req.UserID,
		Followups:      req.Followups,
	}
	if err := s.db.Create(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// List returns a page of 10 contacts newest-first. A non-empty search term is
// matched case-insensitively across name, email, subject, message and phone.
func (s *ContactService) List(page int, search string) ([]models.Contact, dto.Pagination, error) {
	if page < 1 {
		page = 1
	}

	query := s.db.Model(&models.Contact{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"name ILIKE ? OR email ILIKE ? OR subject ILIKE ? OR message ILIKE ? OR phone ILIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, dto.Pagination{}, err
	}

	var contacts []models.Contact
	err := query.Order("created_at DESC").
		Limit(contactPageSize).
		Offset((page - 1) * contactPageSize).
		Find(&contacts).Error
	if err != nil {
		return nil, dto.Pagination{}, err
	}

	return contacts, paginationMeta(page, total, contactPageSize), nil
}

// Update replaces every field; absent request fields overwrite with their zero
// value.
func (s *ContactService) Update(id string, req dto.ContactRequest) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"name":             req.Name,
		"phone":            req.Phone,
		"email":            req.Email,
		"subject":          req.Subject,
		"message":          req.Message,
		"is_contact_close": req.IsContactClose,
		"user_id":          req.UserID,
		"followups":        req.Followups,
	}
	if err := s.db.Model(&contact).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// ExportRange builds a 7-column workbook of contacts created within the
// inclusive date range. The end bound is extended to the last instant of its
// day so "2024-01-01".."2024-01-01" covers the whole day.
func (s *ContactService) ExportRange(startDate, endDate string) (data []byte, filename string, err error) {
	if startDate == "" || endDate == "" {
		return nil, "", ErrContactDatesRequired
	}
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, "", ErrContactDatesRequired
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, "", ErrContactDatesRequired
	}
	end = endOfDay(end)

	var contacts []models.Contact
	err = s.db.Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at DESC").
		Find(&contacts).Error
	if err != nil {
		return nil, "", err
	}
	if len(contacts) == 0 {
		return nil, "", ErrNoContactsInRange
	}

	rows := make([][]interface{}, 0, len(contacts))
	for _, c := range contacts {
		closed := ""
		if c.IsContactClose != nil {
			closed = fmt.Sprintf("%t", *c.IsContactClose)
		}
		rows = append(rows, []interface{}{
			c.Name, c.Phone, c.Email, c.Subject, c.Message, closed,
			c.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	data, err = excel.BuildSheet("Contacts", contactExportHeaders, rows)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("contacts_%s_%s.xlsx", startDate, endDate), nil
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func paginationMeta(page int, total int64, pageSize int) dto.Pagination {
	return dto.Pagination{
		CurrentPage: page,
		TotalPages:  int(math.Ceil(float64(total) / float64(pageSize))),
		Total:       total,
	}
}
