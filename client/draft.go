package client

import (
	"encoding/json"
	"os"
)

// DraftVersion identifies the serialized form shape. Bump it whenever
// FormState changes incompatibly; stale drafts are discarded on load
// instead of being trusted.
const DraftVersion = 2

type draftEnvelope struct {
	Version int       `json:"version"`
	State   FormState `json:"state"`
}

// DraftStore persists in-progress form state between sessions.
type DraftStore interface {
	// Load returns the saved state, or nil when no usable draft exists.
	Load() (*FormState, error)
	Save(state FormState) error
	Clear() error
}

// FileDraftStore keeps the draft as a JSON file next to the client.
type FileDraftStore struct {
	Path string
}

func NewFileDraftStore(path string) *FileDraftStore {
	return &FileDraftStore{Path: path}
}

func (s *FileDraftStore) Load() (*FormState, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var env draftEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		// Malformed draft: drop it rather than resurrect garbage
		s.Clear()
		return nil, nil
	}
	if env.Version != DraftVersion {
		s.Clear()
		return nil, nil
	}

	state := normalizeState(env.State)
	return &state, nil
}

func (s *FileDraftStore) Save(state FormState) error {
	data, err := json.Marshal(draftEnvelope{Version: DraftVersion, State: state})
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o600)
}

func (s *FileDraftStore) Clear() error {
	err := os.Remove(s.Path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// normalizeState repairs nil maps/slices after JSON decoding so the reducer
// never has to guard against them.
func normalizeState(state FormState) FormState {
	if state.Fields == nil {
		state.Fields = map[string]string{}
	}
	if state.Images == nil {
		state.Images = map[string]string{}
	}
	if state.VisualArts == nil {
		state.VisualArts = []string{}
	}
	if state.ExtraImages == nil {
		state.ExtraImages = []string{}
	}
	if state.Step < 1 || state.Step > StepCount {
		state.Step = 1
	}
	return state
}
