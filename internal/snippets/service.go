package snippets

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Dslpss/devbot/internal/store"
)

// Storage keys for the snippet library blobs.
const (
	snippetsKey    = "devbot_snippets"
	collectionsKey = "devbot_collections"
)

// exportVersion tags exported documents.
const exportVersion = "1.0"

// Service persists snippets and collections as JSON blobs in the
// key-value store. Each blob holds the full list, newest first.
type Service struct {
	kv store.KV
}

// NewService creates a snippet service over the given store.
func NewService(kv store.KV) *Service {
	return &Service{kv: kv}
}

// NewID generates a unique snippet or collection id.
func NewID() string {
	buf := make([]byte, 5)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), hex.EncodeToString(buf))
}

// Snippets returns all saved snippets, newest first. An absent blob is an
// empty library.
func (s *Service) Snippets() ([]Snippet, error) {
	raw, ok, err := s.kv.Get(snippetsKey)
	if err != nil {
		return nil, fmt.Errorf("reading snippets: %w", err)
	}
	if !ok {
		return []Snippet{}, nil
	}

	var list []Snippet
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("decoding snippets: %w", err)
	}
	return list, nil
}

// Snippet returns the snippet with the given id, or nil if not found.
func (s *Service) Snippet(id string) (*Snippet, error) {
	list, err := s.Snippets()
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

// Save stores a snippet. An existing id is replaced in place; a new one
// is prepended. A blank language is auto-detected from the code.
func (s *Service) Save(snippet Snippet) error {
	if snippet.ID == "" {
		snippet.ID = NewID()
	}
	if snippet.Language == "" {
		snippet.Language = DetectLanguage(snippet.Code)
	}
	if snippet.Tags == nil {
		snippet.Tags = []string{}
	}
	now := time.Now()
	if snippet.CreatedAt.IsZero() {
		snippet.CreatedAt = now
	}
	snippet.UpdatedAt = now

	list, err := s.Snippets()
	if err != nil {
		return err
	}

	replaced := false
	for i := range list {
		if list[i].ID == snippet.ID {
			list[i] = snippet
			replaced = true
			break
		}
	}
	if !replaced {
		list = append([]Snippet{snippet}, list...)
	}

	return s.writeSnippets(list)
}

// Delete removes the snippet with the given id. Deleting a missing id is
// a no-op.
func (s *Service) Delete(id string) error {
	list, err := s.Snippets()
	if err != nil {
		return err
	}

	filtered := list[:0]
	for _, sn := range list {
		if sn.ID != id {
			filtered = append(filtered, sn)
		}
	}
	return s.writeSnippets(filtered)
}

// Search returns snippets matching the free-text query (title, code,
// description, tags; case-insensitive) and all given filters.
func (s *Service) Search(query string, filters Filters) ([]Snippet, error) {
	list, err := s.Snippets()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var out []Snippet
	for _, sn := range list {
		if !matchesQuery(sn, q) {
			continue
		}
		if filters.Language != "" && sn.Language != filters.Language {
			continue
		}
		if filters.Category != "" && sn.Category != filters.Category {
			continue
		}
		if filters.IsFavorite != nil && sn.IsFavorite != *filters.IsFavorite {
			continue
		}
		if len(filters.Tags) > 0 && !hasAnyTag(sn, filters.Tags) {
			continue
		}
		out = append(out, sn)
	}
	return out, nil
}

func matchesQuery(sn Snippet, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(sn.Title), q) ||
		strings.Contains(strings.ToLower(sn.Code), q) ||
		strings.Contains(strings.ToLower(sn.Description), q) {
		return true
	}
	for _, tag := range sn.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func hasAnyTag(sn Snippet, tags []string) bool {
	for _, want := range tags {
		for _, have := range sn.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Collections returns all saved collections, newest first.
func (s *Service) Collections() ([]Collection, error) {
	raw, ok, err := s.kv.Get(collectionsKey)
	if err != nil {
		return nil, fmt.Errorf("reading collections: %w", err)
	}
	if !ok {
		return []Collection{}, nil
	}

	var list []Collection
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("decoding collections: %w", err)
	}
	return list, nil
}

// SaveCollection stores a collection, replacing by id or prepending.
func (s *Service) SaveCollection(c Collection) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	list, err := s.Collections()
	if err != nil {
		return err
	}

	replaced := false
	for i := range list {
		if list[i].ID == c.ID {
			list[i] = c
			replaced = true
			break
		}
	}
	if !replaced {
		list = append([]Collection{c}, list...)
	}

	return s.writeCollections(list)
}

// DeleteCollection removes the collection with the given id.
func (s *Service) DeleteCollection(id string) error {
	list, err := s.Collections()
	if err != nil {
		return err
	}

	filtered := list[:0]
	for _, c := range list {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	return s.writeCollections(filtered)
}

// Count returns how many snippets and collections are stored.
func (s *Service) Count() (snippets, collections int, err error) {
	sn, err := s.Snippets()
	if err != nil {
		return 0, 0, err
	}
	cs, err := s.Collections()
	if err != nil {
		return 0, 0, err
	}
	return len(sn), len(cs), nil
}

func (s *Service) writeSnippets(list []Snippet) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding snippets: %w", err)
	}
	if err := s.kv.Set(snippetsKey, string(data)); err != nil {
		return fmt.Errorf("saving snippets: %w", err)
	}
	return nil
}

func (s *Service) writeCollections(list []Collection) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding collections: %w", err)
	}
	if err := s.kv.Set(collectionsKey, string(data)); err != nil {
		return fmt.Errorf("saving collections: %w", err)
	}
	return nil
}
