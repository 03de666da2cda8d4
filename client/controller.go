package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// Controller drives the registration form: it owns the state, autosaves a
// draft after every dispatch and submits the finished form to the server.
type Controller struct {
	store    DraftStore
	state    FormState
	client   *http.Client
	endpoint string
}

// NewController builds a controller for the given submission endpoint.
// A prior draft, when present and shape-compatible, fully replaces the
// initial state.
func NewController(store DraftStore, endpoint string) (*Controller, error) {
	c := &Controller{
		store:    store,
		state:    NewFormState(),
		client:   http.DefaultClient,
		endpoint: endpoint,
	}

	saved, err := store.Load()
	if err != nil {
		return nil, err
	}
	if saved != nil {
		c.state = *saved
	}
	return c, nil
}

func (c *Controller) State() FormState {
	return cloneState(c.state)
}

// Dispatch applies one event and autosaves the draft. Draft write failures
// are swallowed: losing autosave must never break the form itself.
func (c *Controller) Dispatch(ev Event) {
	c.state = Apply(c.state, ev)
	c.store.Save(c.state)
}

// Submit sends the form as multipart data. On 201 the draft is cleared and
// the state reset; on any failure the draft stays and the user remains on
// the final step.
func (c *Controller) Submit(ctx context.Context) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range c.state.Fields {
		if err := w.WriteField(name, value); err != nil {
			return err
		}
	}
	for _, skill := range c.state.VisualArts {
		if err := w.WriteField("visualArts", skill); err != nil {
			return err
		}
	}
	for slot, path := range c.state.Images {
		if err := attachFile(w, slot, path); err != nil {
			return err
		}
	}
	for _, path := range c.state.ExtraImages {
		if err := attachFile(w, "extraImages", path); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
			return fmt.Errorf("submission rejected: %s", payload.Error)
		}
		return fmt.Errorf("submission failed with status %d", res.StatusCode)
	}

	c.store.Clear()
	c.state = NewFormState()
	return nil
}

func attachFile(w *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	part, err := w.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return err
	}
	_, err = io.Copy(part, f)
	return err
}
