package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/carewellhq/clinic-admin/internal/dto"
	"github.com/carewellhq/clinic-admin/internal/excel"
	"github.com/carewellhq/clinic-admin/internal/models"
	"gorm.io/gorm"
)

const staffPageSize = 12

var (
	ErrStaffNotFound       = errors.New("staff not found")
	ErrStaffFieldsRequired = errors.New("firstName, lastName, gender and phoneNo are required")
	ErrSearchTermRequired  = errors.New("search term is required")
)

var staffExportHeaders = []string{"First Name", "Last Name", "Gender", "Phone", "Occupation", "Address"}

type StaffService struct {
	db *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{db: db}
}

// Create persists a staff member. An empty centerId is stored as NULL.
func (s *StaffService) Create(req dto.StaffRequest) (*models.Staff, error) {
	if strings.TrimSpace(req.FirstName) == "" ||
		strings.TrimSpace(req.LastName) == "" ||
		strings.TrimSpace(req.Gender) == "" ||
		strings.TrimSpace(req.PhoneNo) == "" {
		return nil, ErrStaffFieldsRequired
	}

	staff := models.Staff{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Gender:       req.Gender,
		PhoneNo:      req.PhoneNo,
		AlterPhoneNo: req.AlterPhoneNo,
		Email:        req.Email,
		ClinicTime:   req.ClinicTime,
		Address:      req.Address,
		Occupation:   req.Occupation,
		State:        req.State,
		City:         req.City,
		CenterID:     normalizeCenterID(req.CenterID),
	}
	if req.InIR != nil {
		staff.InIR = *req.InIR
	}
	if req.UserID != "" {
		staff.UserID = &req.UserID
	}

	if err := s.db.Create(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

// ListByCenter fetches every staff member of a center, reverses the insertion
// order and paginates the slice in process at 12 per page.
func (s *StaffService) ListByCenter(centerID string, page int) ([]models.Staff, dto.Pagination, error) {
	if page < 1 {
		page = 1
	}

	var staff []models.Staff
	err := s.db.Where("center_id = ?", centerID).
		Order("created_at ASC").
		Find(&staff).Error
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	if len(staff) == 0 {
		return nil, dto.Pagination{}, ErrStaffNotFound
	}

	reverse(staff)
	pagination := paginationMeta(page, int64(len(staff)), staffPageSize)
	return pageSlice(staff, page, staffPageSize), pagination, nil
}

// ListIR returns staff whose center matches OR whose inIR flag is set. The
// OR is inclusive on purpose: flagged staff from other centers are included.
func (s *StaffService) ListIR(centerID string) ([]models.Staff, error) {
	return s.listByCenterOrFlag(centerID, true)
}

// ListOther mirrors ListIR for staff whose inIR flag is unset.
func (s *StaffService) ListOther(centerID string) ([]models.Staff, error) {
	return s.listByCenterOrFlag(centerID, false)
}

func (s *StaffService) listByCenterOrFlag(centerID string, inIR bool) ([]models.Staff, error) {
	var staff []models.Staff
	err := s.db.Where("center_id = ? OR in_ir = ?", centerID, inIR).
		Find(&staff).Error
	if err != nil {
		return nil, err
	}
	if len(staff) == 0 {
		return nil, ErrStaffNotFound
	}
	return staff, nil
}

func (s *StaffService) Get(id string) (*models.Staff, error) {
	var staff models.Staff
	if err := s.db.First(&staff, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	return &staff, nil
}

// Update applies partial updates with truthy-field semantics: string fields
// only overwrite when non-empty (so text fields cannot be cleared through
// update), inIR applies whenever the key is present including false, and
// centerId is always recomputed from the input with "" coerced to NULL. The
// asymmetry is the documented contract, not an oversight.
func (s *StaffService) Update(id string, req dto.StaffRequest) (*models.Staff, error) {
	staff, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := buildStaffUpdates(req)
	if err := s.db.Model(staff).Updates(updates).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *StaffService) Delete(id string) (*models.Staff, error) {
	staff, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// Search matches the term case-insensitively across the text columns and the
// nested occupation/address labels, scoped to the center. The full match set
// is returned on page 1; the metadata is still computed at page size 12.
func (s *StaffService) Search(centerID, term string) ([]models.Staff, dto.Pagination, error) {
	if strings.TrimSpace(term) == "" {
		return nil, dto.Pagination{}, ErrSearchTermRequired
	}

	pattern := "%" + term + "%"
	var staff []models.Staff
	err := s.db.Where("center_id = ?", centerID).
		Where(`first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR phone_no ILIKE ?
			OR gender ILIKE ? OR state ILIKE ? OR city ILIKE ?
			OR occupation->>'label' ILIKE ? OR address->>'label' ILIKE ?`,
			pattern, pattern, pattern, pattern, pattern, pattern, pattern, pattern, pattern).
		Find(&staff).Error
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	if len(staff) == 0 {
		return nil, dto.Pagination{}, ErrStaffNotFound
	}

	return staff, paginationMeta(1, int64(len(staff)), staffPageSize), nil
}

// Export builds a 6-column workbook from whichever of the three filters are
// supplied; occupation and address are matched by their nested label. The
// filename embeds the supplied filter values.
func (s *StaffService) Export(centerID, occupation, address string) (data []byte, filename string, err error) {
	query := s.db.Model(&models.Staff{})
	if centerID != "" {
		query = query.Where("center_id = ?", centerID)
	}
	if occupation != "" {
		query = query.Where("occupation->>'label' = ?", occupation)
	}
	if address != "" {
		query = query.Where("address->>'label' = ?", address)
	}

	var staff []models.Staff
	if err := query.Find(&staff).Error; err != nil {
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(staff))
	for _, m := range staff {
		rows = append(rows, []interface{}{
			m.FirstName, m.LastName, m.Gender, m.PhoneNo,
			models.PayloadLabel(m.Occupation), models.PayloadLabel(m.Address),
		})
	}

	data, err = excel.BuildSheet("Staff", staffExportHeaders, rows)
	if err != nil {
		return nil, "", err
	}
	return data, staffExportFilename(centerID, occupation, address), nil
}

// buildStaffUpdates assembles the partial-update column map. Kept pure so the
// truthy-field contract is testable without a database.
func buildStaffUpdates(req dto.StaffRequest) map[string]interface{} {
	updates := map[string]interface{}{
		// always recomputed, "" becomes NULL
		"center_id": normalizeCenterID(req.CenterID),
	}

	setIfPresent := func(column, value string) {
		if value != "" {
			updates[column] = value
		}
	}
	setIfPresent("first_name", req.FirstName)
	setIfPresent("last_name", req.LastName)
	setIfPresent("gender", req.Gender)
	setIfPresent("phone_no", req.PhoneNo)
	setIfPresent("alter_phone_no", req.AlterPhoneNo)
	setIfPresent("email", req.Email)
	setIfPresent("clinic_time", req.ClinicTime)
	setIfPresent("state", req.State)
	setIfPresent("city", req.City)
	setIfPresent("user_id", req.UserID)

	if len(req.Address) > 0 {
		updates["address"] = req.Address
	}
	if len(req.Occupation) > 0 {
		updates["occupation"] = req.Occupation
	}
	if req.InIR != nil {
		updates["in_ir"] = *req.InIR
	}
	return updates
}

func normalizeCenterID(centerID string) *string {
	if centerID == "" {
		return nil
	}
	return &centerID
}

func staffExportFilename(centerID, occupation, address string) string {
	parts := []string{"staff"}
	for _, v := range []string{centerID, occupation, address} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return fmt.Sprintf("%s.xlsx", strings.Join(parts, "_"))
}

func reverse(staff []models.Staff) {
	for i, j := 0, len(staff)-1; i < j; i, j = i+1, j-1 {
		staff[i], staff[j] = staff[j], staff[i]
	}
}

func pageSlice(staff []models.Staff, page, size int) []models.Staff {
	start := (page - 1) * size
	if start >= len(staff) {
		return []models.Staff{}
	}
	end := start + size
	if end > len(staff) {
		end = len(staff)
	}
	return staff[start:end]
}
