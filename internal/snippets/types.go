// Package snippets manages the code-snippet library: saved snippets,
// named collections, search, and portable export/import.
package snippets

import "time"

// Snippet is one saved piece of code.
type Snippet struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Code        string    `json:"code"`
	Language    string    `json:"language"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	IsFavorite  bool      `json:"isFavorite"`
	Source      string    `json:"source,omitempty"` // generated, imported, manual
}

// Collection groups snippets under a name.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Snippets    []Snippet `json:"snippets"`
	CreatedAt   time.Time `json:"createdAt"`
	IsPublic    bool      `json:"isPublic"`
}

// Filters narrows a Search beyond the free-text query. Zero values match
// everything.
type Filters struct {
	Language   string
	Category   string
	Tags       []string
	IsFavorite *bool
}

// Export is the portable interchange document produced by Service.Export.
type Export struct {
	Snippets    []Snippet    `json:"snippets"`
	Collections []Collection `json:"collections"`
	ExportedAt  time.Time    `json:"exportedAt"`
	Version     string       `json:"version"`
}

// ImportResult counts what an import actually added.
type ImportResult struct {
	Snippets    int
	Collections int
}
