package client

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Form steps
const (
	StepIdentity = 1
	StepProfile  = 2
	StepPhotos   = 3
	StepReview   = 4
	StepCount    = 4
)

// maxExtraShots caps how many extra gallery images one draft may hold.
const maxExtraShots = 10

// FormState is the whole form at one instant: the current step, the field
// bag, the single-valued image slots and the extra gallery. All transitions
// go through Apply.
type FormState struct {
	Step        int               `json:"step"`
	Fields      map[string]string `json:"fields"`
	VisualArts  []string          `json:"visualArts"`
	Images      map[string]string `json:"images"` // slot -> local file path
	ExtraImages []string          `json:"extraImages"`
}

func NewFormState() FormState {
	return FormState{
		Step:        StepIdentity,
		Fields:      map[string]string{},
		VisualArts:  []string{},
		Images:      map[string]string{},
		ExtraImages: []string{},
	}
}

// Event is one user interaction with the form.
type Event interface{ isEvent() }

type SetField struct{ Name, Value string }

// ToggleSkill flips one visual-arts checkbox; selection order is preserved.
type ToggleSkill struct{ Skill string }

// SetImage replaces an image slot. Upload-by-selection and drag-and-drop
// both end up here.
type SetImage struct{ Slot, Path string }

// RemoveImage clears exactly one slot; no other slot shifts.
type RemoveImage struct{ Slot string }

type AddExtraImage struct{ Path string }

type RemoveExtraImage struct{ Index int }

type Next struct{}

type Back struct{}

type Reset struct{}

func (SetField) isEvent()         {}
func (ToggleSkill) isEvent()      {}
func (SetImage) isEvent()         {}
func (RemoveImage) isEvent()      {}
func (AddExtraImage) isEvent()    {}
func (RemoveExtraImage) isEvent() {}
func (Next) isEvent()             {}
func (Back) isEvent()             {}
func (Reset) isEvent()            {}

// Apply is the pure transition function: it never mutates its input and
// returns the next state. Next is gated by the current step's completeness
// predicate; Back is unconditional.
func Apply(state FormState, ev Event) FormState {
	next := cloneState(state)

	switch e := ev.(type) {
	case SetField:
		next.Fields[e.Name] = e.Value
	case ToggleSkill:
		if i := slices.Index(next.VisualArts, e.Skill); i >= 0 {
			next.VisualArts = append(next.VisualArts[:i], next.VisualArts[i+1:]...)
		} else {
			next.VisualArts = append(next.VisualArts, e.Skill)
		}
	case SetImage:
		next.Images[e.Slot] = e.Path
	case RemoveImage:
		delete(next.Images, e.Slot)
	case AddExtraImage:
		if len(next.ExtraImages) < maxExtraShots {
			next.ExtraImages = append(next.ExtraImages, e.Path)
		}
	case RemoveExtraImage:
		if e.Index >= 0 && e.Index < len(next.ExtraImages) {
			next.ExtraImages = append(next.ExtraImages[:e.Index], next.ExtraImages[e.Index+1:]...)
		}
	case Next:
		if next.Step < StepCount && StepComplete(next, next.Step) {
			next.Step++
		}
	case Back:
		if next.Step > 1 {
			next.Step--
		}
	case Reset:
		return NewFormState()
	}

	return next
}

// StepComplete reports whether a step's own fields satisfy its gate.
func StepComplete(state FormState, step int) bool {
	field := func(name string) string { return strings.TrimSpace(state.Fields[name]) }

	switch step {
	case StepIdentity:
		for _, name := range []string{"fullName", "email", "phone", "dob", "gender"} {
			if field(name) == "" {
				return false
			}
		}
		return true
	case StepProfile:
		switch field("modelType") {
		case "Featured":
			return true
		case "InHouse":
			return field("bio") != "" && field("allergiesOrSkin") != ""
		default:
			return false
		}
	default:
		// Photo and review steps have no gate of their own
		return true
	}
}

func cloneState(state FormState) FormState {
	next := state
	next.Fields = make(map[string]string, len(state.Fields))
	for k, v := range state.Fields {
		next.Fields[k] = v
	}
	next.Images = make(map[string]string, len(state.Images))
	for k, v := range state.Images {
		next.Images[k] = v
	}
	next.VisualArts = append([]string{}, state.VisualArts...)
	next.ExtraImages = append([]string{}, state.ExtraImages...)
	return next
}
