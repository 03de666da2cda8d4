package services

import (
	"mime/multipart"
	"net/url"
	"strconv"
	"strings"

	"github.com/TommyTeaVee/impilo-regform/models"
	"github.com/TommyTeaVee/impilo-regform/storage"
	"github.com/TommyTeaVee/impilo-regform/utils"
	"golang.org/x/exp/slices"
)

// SubmissionInput carries the raw multipart pieces of one registration attempt.
type SubmissionInput struct {
	Values url.Values
	Files  map[string][]*multipart.FileHeader
}

// SubmissionService turns an incoming request into a stored Registration:
// normalize, validate, bind media, persist. Validation runs before any
// upload so clearly-invalid input never orphans files on the media host.
type SubmissionService struct {
	Binder *MediaBinder
}

func NewSubmissionService() *SubmissionService {
	return &SubmissionService{Binder: NewMediaBinder()}
}

// Submit processes one registration attempt. It returns the persisted record,
// or a *ValidationError (no side effects happened), or a binder/store error.
func (s *SubmissionService) Submit(in SubmissionInput) (*models.Registration, error) {
	fields := flattenValues(in.Values)
	visualArts := normalizeVisualArts(in.Values["visualArts"])

	if msg := ValidateSubmission(fields); msg != "" {
		return nil, &ValidationError{Message: msg}
	}

	media, err := s.Binder.Bind(in.Files)
	if err != nil {
		return nil, err
	}

	reg := models.Registration{
		FullName:  fields["fullName"],
		Email:     strings.ToLower(strings.TrimSpace(fields["email"])),
		Phone:     utils.NormalizePhoneNumber(fields["phone"]),
		DOB:       fields["dob"],
		Gender:    fields["gender"],
		ModelType: fields["modelType"],

		Height: parseOptionalNumber(fields["height"]),
		Weight: parseOptionalNumber(fields["weight"]),
		Bust:   parseOptionalNumber(fields["bust"]),
		Waist:  parseOptionalNumber(fields["waist"]),
		Hips:   parseOptionalNumber(fields["hips"]),

		EyeColor:  fields["eyeColor"],
		HairColor: fields["hairColor"],
		ShoeSize:  fields["shoeSize"],

		Country: fields["country"],
		State:   fields["state"],
		City:    fields["city"],
		Address: fields["address"],

		Bio:             fields["bio"],
		AllergiesOrSkin: fields["allergiesOrSkin"],
		PortfolioLink:   fields["portfolioLink"],
		PreviousAgency:  fields["previousAgency"],

		ProfileImage:  media.URL("profileImage"),
		FullBodyImage: media.URL("fullBodyImage"),
		FullDress:     media.URL("fullDress"),
		FullShorts:    media.URL("fullShorts"),
		FullJeans:     media.URL("fullJeans"),
		CloseForward:  media.URL("closeForward"),
		CloseLeft:     media.URL("closeLeft"),
		CloseRight:    media.URL("closeRight"),
		Sportswear:    media.URL("sportswear"),
		Summerwear:    media.URL("summerwear"),
		Swimwear:      media.URL("swimwear"),

		Status: models.StatusPending,
	}
	reg.SetVisualArts(visualArts)
	reg.SetExtraImages(media.Extras)

	if err := storage.Registrations.Create(&reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// flattenValues keeps the first value of every field, the way single-valued
// form inputs arrive. Repeated inputs (visualArts) are read separately.
func flattenValues(values url.Values) map[string]string {
	fields := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			fields[k] = v[0]
		}
	}
	return fields
}

// normalizeVisualArts mirrors how repeated checkboxes collapse: absent means
// an empty set, one checked box means a one-element set, order is preserved.
// Values outside the offered skill set are dropped, same as blanks.
func normalizeVisualArts(raw []string) []string {
	if raw == nil {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if slices.Contains(models.VisualArtsSkills, v) {
			out = append(out, v)
		}
	}
	return out
}

// parseOptionalNumber keeps values that parse as numbers and treats anything
// else, empty included, as absent. Bad numeric input is never an error.
func parseOptionalNumber(raw string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &v
}
