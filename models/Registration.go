package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Registration statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Model types
const (
	ModelTypeFeatured = "Featured"
	ModelTypeInHouse  = "InHouse"
)

// Genders accepted on submission
var Genders = []string{"Female", "Male", "Non-Binary", "Other"}

// VisualArtsSkills is the closed set of skills the form offers
var VisualArtsSkills = []string{"Voice Over", "Singing", "Dancing", "Sports", "Drama", "Painting", "Poetry"}

// Statuses an admin may set
var Statuses = []string{StatusPending, StatusApproved, StatusRejected}

type Registration struct {
	gorm.Model

	// Basic & identity
	FullName string `json:"fullName" gorm:"size:200;not null;index"`
	Email    string `json:"email" gorm:"size:200;not null"`
	Phone    string `json:"phone" gorm:"size:50;not null"`
	DOB      string `json:"dob" gorm:"size:10;not null"` // YYYY-MM-DD
	Gender   string `json:"gender" gorm:"size:20;not null"`

	// Model type drives the conditional requirements below
	ModelType string `json:"modelType" gorm:"size:20;not null;index"`

	// Physical attributes (all optional; absent when not parseable)
	Height    *float64 `json:"height"`
	Weight    *float64 `json:"weight"`
	Bust      *float64 `json:"bust"`
	Waist     *float64 `json:"waist"`
	Hips      *float64 `json:"hips"`
	EyeColor  string   `json:"eyeColor" gorm:"size:50"`
	HairColor string   `json:"hairColor" gorm:"size:50"`
	ShoeSize  string   `json:"shoeSize" gorm:"size:20"`

	// Location
	Country string `json:"country" gorm:"size:100"`
	State   string `json:"state" gorm:"size:100"`
	City    string `json:"city" gorm:"size:100"`
	Address string `json:"address" gorm:"size:300"`

	// In-House requirements
	Bio             string         `json:"bio" gorm:"type:text"`
	VisualArts      datatypes.JSON `json:"visualArts"`
	AllergiesOrSkin string         `json:"allergiesOrSkin" gorm:"type:text"`

	// Featured optional
	PortfolioLink  string `json:"portfolioLink" gorm:"size:300"`
	PreviousAgency string `json:"previousAgency" gorm:"size:200"`

	// Core images
	ProfileImage  string `json:"profileImage" gorm:"size:500"`
	FullBodyImage string `json:"fullBodyImage" gorm:"size:500"`

	// 9-slot grid images
	FullDress    string `json:"fullDress" gorm:"size:500"`
	FullShorts   string `json:"fullShorts" gorm:"size:500"`
	FullJeans    string `json:"fullJeans" gorm:"size:500"`
	CloseForward string `json:"closeForward" gorm:"size:500"`
	CloseLeft    string `json:"closeLeft" gorm:"size:500"`
	CloseRight   string `json:"closeRight" gorm:"size:500"`
	Sportswear   string `json:"sportswear" gorm:"size:500"`
	Summerwear   string `json:"summerwear" gorm:"size:500"`
	Swimwear     string `json:"swimwear" gorm:"size:500"`

	ExtraImages datatypes.JSON `json:"extraImages"`

	Status string `json:"status" gorm:"size:20;default:pending;index"`
}

// SetVisualArts stores the skill set as a JSON column value.
func (r *Registration) SetVisualArts(skills []string) {
	if skills == nil {
		skills = []string{}
	}
	b, err := json.Marshal(skills)
	if err != nil {
		return
	}
	r.VisualArts = datatypes.JSON(b)
}

// VisualArtsList decodes the stored skill set; always returns a non-nil slice.
func (r *Registration) VisualArtsList() []string {
	var skills []string
	if r.VisualArts != nil {
		if err := json.Unmarshal(r.VisualArts, &skills); err == nil && skills != nil {
			return skills
		}
	}
	return []string{}
}

// SetExtraImages stores the ordered extra image URLs as a JSON column value.
func (r *Registration) SetExtraImages(urls []string) {
	if urls == nil {
		urls = []string{}
	}
	b, err := json.Marshal(urls)
	if err != nil {
		return
	}
	r.ExtraImages = datatypes.JSON(b)
}

// ExtraImagesList decodes the stored extra image URLs; always returns a non-nil slice.
func (r *Registration) ExtraImagesList() []string {
	var urls []string
	if r.ExtraImages != nil {
		if err := json.Unmarshal(r.ExtraImages, &urls); err == nil && urls != nil {
			return urls
		}
	}
	return []string{}
}

// Custom JSON marshaling so the JSON columns render as arrays, never raw bytes
func (r *Registration) MarshalJSON() ([]byte, error) {
	type Alias Registration
	aux := &struct {
		VisualArts  []string `json:"visualArts"`
		ExtraImages []string `json:"extraImages"`
		*Alias
	}{
		VisualArts:  r.VisualArtsList(),
		ExtraImages: r.ExtraImagesList(),
		Alias:       (*Alias)(r),
	}
	return json.Marshal(aux)
}
