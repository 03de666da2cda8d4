package storage

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/TommyTeaVee/impilo-regform/models"
	"gorm.io/gorm"
)

// ErrRegistrationNotFound signals an unknown registration id.
var ErrRegistrationNotFound = errors.New("registration not found")

// RegistrationFilter narrows the admin listing. Zero values mean "no filter".
type RegistrationFilter struct {
	Search string // case-insensitive substring on full name
	Status string // exact status match
	Skill  string // membership in the visualArts set
}

// RegistrationStore is the persistence surface for registrations.
// The gorm implementation is installed by InitializeDB; tests swap in
// the in-memory one.
type RegistrationStore interface {
	Create(r *models.Registration) error
	List(filter RegistrationFilter, page, limit int) ([]models.Registration, int64, error)
	ListAll() ([]models.Registration, error)
	Get(id uint) (*models.Registration, error)
	UpdateStatus(id uint, status string) (*models.Registration, error)
	Delete(id uint) error
}

// Registrations is the active store.
var Registrations RegistrationStore

// TotalPages computes the page count for a listing response.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// GormRegistrationStore persists registrations through the global DB handle.
type GormRegistrationStore struct{}

func (s *GormRegistrationStore) Create(r *models.Registration) error {
	return DB.Create(r).Error
}

func (s *GormRegistrationStore) List(filter RegistrationFilter, page, limit int) ([]models.Registration, int64, error) {
	query := DB.Model(&models.Registration{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("lower(full_name) LIKE ?", like)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Skill != "" {
		member, err := json.Marshal([]string{filter.Skill})
		if err != nil {
			return nil, 0, err
		}
		query = query.Where("visual_arts @> ?::jsonb", string(member))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Non-nil so an empty page renders as [] rather than null
	regs := []models.Registration{}
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&regs).Error
	if err != nil {
		return nil, 0, err
	}
	return regs, total, nil
}

func (s *GormRegistrationStore) ListAll() ([]models.Registration, error) {
	regs := []models.Registration{}
	err := DB.Order("created_at DESC").Find(&regs).Error
	return regs, err
}

func (s *GormRegistrationStore) Get(id uint) (*models.Registration, error) {
	var reg models.Registration
	if err := DB.First(&reg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return &reg, nil
}

func (s *GormRegistrationStore) UpdateStatus(id uint, status string) (*models.Registration, error) {
	reg, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	reg.Status = status
	if err := DB.Save(reg).Error; err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *GormRegistrationStore) Delete(id uint) error {
	// Hard delete on purpose: no soft-delete semantics for rejected applicants
	res := DB.Unscoped().Delete(&models.Registration{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRegistrationNotFound
	}
	return nil
}
