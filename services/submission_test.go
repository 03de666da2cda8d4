package services

import (
	"errors"
	"net/url"
	"reflect"
	"testing"

	"github.com/TommyTeaVee/impilo-regform/models"
	"github.com/TommyTeaVee/impilo-regform/storage"
)

func newTestService(t *testing.T) (*SubmissionService, *storage.MemoryRegistrationStore) {
	t.Helper()
	store := storage.NewMemoryRegistrationStore()
	storage.Registrations = store

	svc := NewSubmissionService()
	svc.Binder.Upload = func(data []byte, folder, publicID string) (string, error) {
		return "https://img.test/" + folder + "/" + publicID, nil
	}
	return svc, store
}

func featuredValues() url.Values {
	return url.Values{
		"fullName":  {"A B"},
		"email":     {"a@b.com"},
		"phone":     {"123"},
		"dob":       {"2000-01-01"},
		"gender":    {"Female"},
		"modelType": {"Featured"},
	}
}

func TestSubmitMinimalFeatured(t *testing.T) {
	svc, store := newTestService(t)

	reg, err := svc.Submit(SubmissionInput{Values: featuredValues()})
	if err != nil {
		t.Fatal(err)
	}
	if reg.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if reg.Status != models.StatusPending {
		t.Fatalf("expected pending status, got %q", reg.Status)
	}
	if reg.ProfileImage != "" || reg.FullBodyImage != "" {
		t.Fatal("image fields should be absent")
	}
	if len(reg.ExtraImagesList()) != 0 {
		t.Fatal("extraImages should be an empty sequence")
	}
	if len(reg.VisualArtsList()) != 0 {
		t.Fatal("visualArts should be an empty set")
	}

	stored, err := store.Get(reg.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.FullName != "A B" {
		t.Fatalf("stored record mismatch: %q", stored.FullName)
	}
}

func TestSubmitValidationFailurePersistsNothing(t *testing.T) {
	svc, store := newTestService(t)
	uploads := 0
	svc.Binder.Upload = func(data []byte, folder, publicID string) (string, error) {
		uploads++
		return "https://img.test/x", nil
	}

	values := featuredValues()
	values.Del("email")

	_, err := svc.Submit(SubmissionInput{Values: values})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if vErr.Message != "Missing required field: email" {
		t.Fatalf("unexpected message %q", vErr.Message)
	}

	if uploads != 0 {
		t.Fatal("validation must run before any upload")
	}
	if regs, _ := store.ListAll(); len(regs) != 0 {
		t.Fatal("nothing should be persisted")
	}
}

func TestSubmitVisualArtsNormalization(t *testing.T) {
	svc, _ := newTestService(t)

	// One checked box arrives as a single value
	values := featuredValues()
	values["visualArts"] = []string{"Singing"}
	reg, err := svc.Submit(SubmissionInput{Values: values})
	if err != nil {
		t.Fatal(err)
	}
	if got := reg.VisualArtsList(); !reflect.DeepEqual(got, []string{"Singing"}) {
		t.Fatalf("expected one-element set, got %v", got)
	}

	// Several checked boxes keep selection order
	values = featuredValues()
	values["visualArts"] = []string{"Drama", "Singing", "Poetry"}
	reg, err = svc.Submit(SubmissionInput{Values: values})
	if err != nil {
		t.Fatal(err)
	}
	if got := reg.VisualArtsList(); !reflect.DeepEqual(got, []string{"Drama", "Singing", "Poetry"}) {
		t.Fatalf("expected ordered set, got %v", got)
	}

	// Absent collapses to the empty set
	reg, err = svc.Submit(SubmissionInput{Values: featuredValues()})
	if err != nil {
		t.Fatal(err)
	}
	if got := reg.VisualArtsList(); len(got) != 0 {
		t.Fatalf("expected empty set, got %v", got)
	}
}

func TestSubmitDropsUnknownSkills(t *testing.T) {
	svc, _ := newTestService(t)

	values := featuredValues()
	values["visualArts"] = []string{"Knitting", "Singing", ""}

	reg, err := svc.Submit(SubmissionInput{Values: values})
	if err != nil {
		t.Fatal(err)
	}
	if got := reg.VisualArtsList(); !reflect.DeepEqual(got, []string{"Singing"}) {
		t.Fatalf("expected only offered skills to survive, got %v", got)
	}
}

func TestSubmitRejectsUnknownGender(t *testing.T) {
	svc, store := newTestService(t)

	values := featuredValues()
	values.Set("gender", "banana")

	_, err := svc.Submit(SubmissionInput{Values: values})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if regs, _ := store.ListAll(); len(regs) != 0 {
		t.Fatal("out-of-enum gender must not persist")
	}
}

func TestSubmitNumericCoercion(t *testing.T) {
	svc, _ := newTestService(t)

	values := featuredValues()
	values.Set("height", "172.5")
	values.Set("weight", "not-a-number")
	values.Set("bust", "")
	values.Set("waist", "0")

	reg, err := svc.Submit(SubmissionInput{Values: values})
	if err != nil {
		t.Fatal(err)
	}
	if reg.Height == nil || *reg.Height != 172.5 {
		t.Fatalf("height should parse, got %v", reg.Height)
	}
	if reg.Weight != nil {
		t.Fatal("non-numeric weight should be absent, not an error")
	}
	if reg.Bust != nil {
		t.Fatal("empty bust should be absent")
	}
	if reg.Waist == nil || *reg.Waist != 0 {
		t.Fatalf("zero waist should be kept, got %v", reg.Waist)
	}
}

func TestSubmitPhoneNormalization(t *testing.T) {
	svc, _ := newTestService(t)

	values := featuredValues()
	values.Set("phone", "+1 (555) 010-2030")

	reg, err := svc.Submit(SubmissionInput{Values: values})
	if err != nil {
		t.Fatal(err)
	}
	if reg.Phone != "+15550102030" {
		t.Fatalf("unexpected phone %q", reg.Phone)
	}
}

func TestSubmitUploadFailureAbortsWithoutPersist(t *testing.T) {
	svc, store := newTestService(t)
	svc.Binder.Upload = func(data []byte, folder, publicID string) (string, error) {
		return "", errors.New("cloud unreachable")
	}

	_, err := svc.Submit(SubmissionInput{
		Values: featuredValues(),
		Files:  buildFiles(t, map[string][][]byte{"profileImage": {[]byte("pic")}}),
	})
	var mediaErr *UpstreamMediaError
	if !errors.As(err, &mediaErr) {
		t.Fatalf("expected *UpstreamMediaError, got %v", err)
	}
	if regs, _ := store.ListAll(); len(regs) != 0 {
		t.Fatal("no partial record may remain after a failed upload")
	}
}

func TestSubmitBindsAllSlots(t *testing.T) {
	svc, _ := newTestService(t)

	reg, err := svc.Submit(SubmissionInput{
		Values: featuredValues(),
		Files: buildFiles(t, map[string][][]byte{
			"profileImage": {[]byte("p")},
			"fullDress":    {[]byte("d")},
			"extraImages":  {[]byte("e1"), []byte("e2")},
		}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if reg.ProfileImage == "" || reg.FullDress == "" {
		t.Fatal("uploaded slots should be bound")
	}
	if reg.Swimwear != "" {
		t.Fatal("untouched slots stay absent")
	}
	if got := len(reg.ExtraImagesList()); got != 2 {
		t.Fatalf("expected 2 extras, got %d", got)
	}
}
