package storage

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/TommyTeaVee/impilo-regform/models"
	"golang.org/x/exp/slices"
)

// MemoryRegistrationStore keeps registrations in process memory.
// It backs handler and service tests that must run without Postgres.
type MemoryRegistrationStore struct {
	mu     sync.Mutex
	nextID uint
	regs   map[uint]models.Registration
}

func NewMemoryRegistrationStore() *MemoryRegistrationStore {
	return &MemoryRegistrationStore{nextID: 1, regs: map[uint]models.Registration{}}
}

func (s *MemoryRegistrationStore) Create(r *models.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	r.ID = s.nextID
	r.CreatedAt = now
	r.UpdatedAt = now
	s.nextID++
	s.regs[r.ID] = *r
	return nil
}

func (s *MemoryRegistrationStore) matches(r models.Registration, filter RegistrationFilter) bool {
	if search := strings.TrimSpace(filter.Search); search != "" {
		if !strings.Contains(strings.ToLower(r.FullName), strings.ToLower(search)) {
			return false
		}
	}
	if filter.Status != "" && r.Status != filter.Status {
		return false
	}
	if filter.Skill != "" && !slices.Contains(r.VisualArtsList(), filter.Skill) {
		return false
	}
	return true
}

func (s *MemoryRegistrationStore) sorted(filter RegistrationFilter) []models.Registration {
	regs := []models.Registration{}
	for _, r := range s.regs {
		if s.matches(r, filter) {
			regs = append(regs, r)
		}
	}
	// Newest first; ids break ties for records created in the same instant
	sort.Slice(regs, func(i, j int) bool {
		if regs[i].CreatedAt.Equal(regs[j].CreatedAt) {
			return regs[i].ID > regs[j].ID
		}
		return regs[i].CreatedAt.After(regs[j].CreatedAt)
	})
	return regs
}

func (s *MemoryRegistrationStore) List(filter RegistrationFilter, page, limit int) ([]models.Registration, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	regs := s.sorted(filter)
	total := int64(len(regs))

	start := (page - 1) * limit
	if start >= len(regs) {
		return []models.Registration{}, total, nil
	}
	end := start + limit
	if end > len(regs) {
		end = len(regs)
	}
	return regs[start:end], total, nil
}

func (s *MemoryRegistrationStore) ListAll() ([]models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted(RegistrationFilter{}), nil
}

func (s *MemoryRegistrationStore) Get(id uint) (*models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.regs[id]
	if !ok {
		return nil, ErrRegistrationNotFound
	}
	return &r, nil
}

func (s *MemoryRegistrationStore) UpdateStatus(id uint, status string) (*models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.regs[id]
	if !ok {
		return nil, ErrRegistrationNotFound
	}
	r.Status = status
	r.UpdatedAt = time.Now()
	s.regs[id] = r
	return &r, nil
}

func (s *MemoryRegistrationStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.regs[id]; !ok {
		return ErrRegistrationNotFound
	}
	delete(s.regs, id)
	return nil
}
