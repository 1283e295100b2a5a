// Package templates manages prompt templates: a built-in set shipped with
// devbot plus user-defined custom templates, with per-template usage
// counts.
package templates

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Dslpss/devbot/internal/store"
)

// templatesKey is the storage key for the template list blob.
const templatesKey = "prompt_templates"

// Template is one reusable prompt with {variable} placeholders.
type Template struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Template    string     `json:"template"`
	Category    string     `json:"category"` // code, explanation, analysis, conversion, example, custom
	IsCustom    bool       `json:"isCustom"`
	Variables   []string   `json:"variables,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	UsageCount  int        `json:"usageCount"`
}

// Service persists templates in the key-value store.
type Service struct {
	kv store.KV
}

// NewService creates a template service over the given store.
func NewService(kv store.KV) *Service {
	return &Service{kv: kv}
}

// Templates returns the built-in templates (with their stored usage
// counts) followed by any custom templates. The first call seeds the
// store with the built-ins.
func (s *Service) Templates() ([]Template, error) {
	stored, ok, err := s.load()
	if err != nil {
		return nil, err
	}
	if !ok || len(stored) == 0 {
		seeded := builtinTemplates()
		if err := s.write(seeded); err != nil {
			return nil, err
		}
		return seeded, nil
	}

	byID := map[string]Template{}
	for _, t := range stored {
		byID[t.ID] = t
	}

	// Built-ins always come from the code; only their usage counts are
	// taken from the store. Customs follow in stored order.
	merged := builtinTemplates()
	for i := range merged {
		if prev, ok := byID[merged[i].ID]; ok {
			merged[i].UsageCount = prev.UsageCount
		}
	}
	for _, t := range stored {
		if t.IsCustom {
			merged = append(merged, t)
		}
	}
	return merged, nil
}

// Get returns the template with the given id, or nil if not found.
func (s *Service) Get(id string) (*Template, error) {
	list, err := s.Templates()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, nil
}

// Create adds a custom template and returns it.
func (s *Service) Create(title, description, body, category string, variables []string) (Template, error) {
	t := Template{
		ID:          fmt.Sprintf("custom_%d", time.Now().UnixMilli()),
		Title:       title,
		Description: description,
		Template:    body,
		Category:    category,
		IsCustom:    true,
		Variables:   variables,
		CreatedAt:   time.Now(),
	}
	if t.Category == "" {
		t.Category = "custom"
	}

	list, err := s.Templates()
	if err != nil {
		return Template{}, err
	}
	list = append(list, t)
	if err := s.write(list); err != nil {
		return Template{}, err
	}
	return t, nil
}

// Delete removes a custom template. Built-in templates cannot be deleted.
func (s *Service) Delete(id string) error {
	list, err := s.Templates()
	if err != nil {
		return err
	}

	found := false
	filtered := list[:0]
	for _, t := range list {
		if t.ID == id {
			if !t.IsCustom {
				return fmt.Errorf("template %s is built in and cannot be deleted", id)
			}
			found = true
			continue
		}
		filtered = append(filtered, t)
	}
	if !found {
		return fmt.Errorf("template %s not found", id)
	}
	return s.write(filtered)
}

// Use renders the template with the given variable values and bumps its
// usage count.
func (s *Service) Use(id string, vars map[string]string) (string, error) {
	list, err := s.Templates()
	if err != nil {
		return "", err
	}

	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].UsageCount++
		if err := s.write(list); err != nil {
			return "", err
		}
		return Render(list[i].Template, vars), nil
	}
	return "", fmt.Errorf("template %s not found", id)
}

// Render substitutes {name} placeholders with values from vars.
// Placeholders with no value are left in place.
func Render(body string, vars map[string]string) string {
	for name, value := range vars {
		body = strings.ReplaceAll(body, "{"+name+"}", value)
	}
	return body
}

func (s *Service) load() ([]Template, bool, error) {
	raw, ok, err := s.kv.Get(templatesKey)
	if err != nil {
		return nil, false, fmt.Errorf("reading templates: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	var list []Template
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, false, fmt.Errorf("decoding templates: %w", err)
	}
	return list, true, nil
}

func (s *Service) write(list []Template) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding templates: %w", err)
	}
	if err := s.kv.Set(templatesKey, string(data)); err != nil {
		return fmt.Errorf("saving templates: %w", err)
	}
	return nil
}
