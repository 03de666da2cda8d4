package storage

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/TommyTeaVee/impilo-regform/models"
)

func seedStore(t *testing.T, n int) *MemoryRegistrationStore {
	t.Helper()
	store := NewMemoryRegistrationStore()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < n; i++ {
		reg := models.Registration{
			FullName:  fmt.Sprintf("Applicant %02d", i),
			Email:     fmt.Sprintf("a%d@example.com", i),
			Phone:     "123",
			DOB:       "2000-01-01",
			Gender:    "Female",
			ModelType: models.ModelTypeFeatured,
			Status:    models.StatusPending,
		}
		if err := store.Create(&reg); err != nil {
			t.Fatal(err)
		}
		// Spread creation times so ordering is deterministic
		reg.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		store.regs[reg.ID] = reg
	}
	return store
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{25, 0, 0},
	}
	for _, c := range cases {
		if got := TotalPages(c.total, c.limit); got != c.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", c.total, c.limit, got, c.want)
		}
	}
}

func TestListPagination(t *testing.T) {
	store := seedStore(t, 25)

	regs, total, err := store.List(RegistrationFilter{}, 3, 10)
	if err != nil {
		t.Fatal(err)
	}
	if total != 25 {
		t.Fatalf("expected total 25, got %d", total)
	}
	if len(regs) != 5 {
		t.Fatalf("expected 5 records on page 3, got %d", len(regs))
	}
	if TotalPages(total, 10) != 3 {
		t.Fatalf("expected 3 pages")
	}

	// Out-of-range page yields an empty page, not an error
	regs, total, err = store.List(RegistrationFilter{}, 9, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(regs) != 0 || total != 25 {
		t.Fatalf("expected empty page with full total, got %d/%d", len(regs), total)
	}
}

func TestListEmptyStoreYieldsEmptySlices(t *testing.T) {
	store := NewMemoryRegistrationStore()

	regs, err := store.ListAll()
	if err != nil {
		t.Fatal(err)
	}
	if regs == nil {
		t.Fatal("ListAll on an empty store must return an empty slice, not nil")
	}

	regs, total, err := store.List(RegistrationFilter{}, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if regs == nil || total != 0 {
		t.Fatalf("List on an empty store must return an empty slice, got %v/%d", regs, total)
	}

	// A filter matching nothing behaves the same way
	store = seedStore(t, 3)
	regs, _, err = store.List(RegistrationFilter{Status: models.StatusRejected}, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if regs == nil {
		t.Fatal("non-matching filter must return an empty slice, not nil")
	}
}

func TestListNewestFirst(t *testing.T) {
	store := seedStore(t, 5)

	regs, err := store.ListAll()
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(regs); i++ {
		if regs[i].CreatedAt.After(regs[i-1].CreatedAt) {
			t.Fatal("records not ordered newest first")
		}
	}
}

func TestListFiltersIntersect(t *testing.T) {
	store := NewMemoryRegistrationStore()

	jane := models.Registration{FullName: "Jane Smith", Status: models.StatusApproved}
	jane.SetVisualArts([]string{"Singing"})
	store.Create(&jane)

	janet := models.Registration{FullName: "Janet Jones", Status: models.StatusPending}
	janet.SetVisualArts([]string{"Singing", "Drama"})
	store.Create(&janet)

	bob := models.Registration{FullName: "Bob Brown", Status: models.StatusApproved}
	store.Create(&bob)

	regs, _, err := store.List(RegistrationFilter{Status: models.StatusApproved}, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(regs) != 2 {
		t.Fatalf("status filter: expected 2, got %d", len(regs))
	}

	regs, _, _ = store.List(RegistrationFilter{Search: "jane", Status: models.StatusApproved}, 1, 10)
	if len(regs) != 1 || regs[0].FullName != "Jane Smith" {
		t.Fatalf("intersected filters: got %v", regs)
	}

	regs, _, _ = store.List(RegistrationFilter{Skill: "Drama"}, 1, 10)
	if len(regs) != 1 || regs[0].FullName != "Janet Jones" {
		t.Fatalf("skill filter: got %v", regs)
	}
}

func TestUpdateStatus(t *testing.T) {
	store := seedStore(t, 1)

	updated, err := store.UpdateStatus(1, models.StatusApproved)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != models.StatusApproved {
		t.Fatalf("expected approved, got %q", updated.Status)
	}

	if _, err := store.UpdateStatus(999, models.StatusApproved); !errors.Is(err, ErrRegistrationNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if regs, _ := store.ListAll(); len(regs) != 1 {
		t.Fatal("update on unknown id must not create a record")
	}
}

func TestDeleteIdempotentSignal(t *testing.T) {
	store := seedStore(t, 1)

	if err := store.Delete(1); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(1); !errors.Is(err, ErrRegistrationNotFound) {
		t.Fatalf("expected not-found signal, got %v", err)
	}
	if _, err := store.Get(1); !errors.Is(err, ErrRegistrationNotFound) {
		t.Fatal("record should be gone")
	}
}
