package snippets

import (
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// ExportJSON serializes the whole library to an indented interchange
// document. Snippets and collections are loaded concurrently.
func (s *Service) ExportJSON() ([]byte, error) {
	var (
		g           errgroup.Group
		snips       []Snippet
		collections []Collection
	)

	g.Go(func() error {
		var err error
		snips, err = s.Snippets()
		return err
	})
	g.Go(func() error {
		var err error
		collections, err = s.Collections()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc := Export{
		Snippets:    snips,
		Collections: collections,
		ExportedAt:  time.Now(),
		Version:     exportVersion,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ImportJSON merges an exported document into the library. Entries whose
// id already exists are skipped; the result counts what was added.
func (s *Service) ImportJSON(data []byte) (ImportResult, error) {
	var doc Export
	if err := json.Unmarshal(data, &doc); err != nil {
		return ImportResult{}, fmt.Errorf("decoding import: %w", err)
	}
	if len(doc.Snippets) == 0 && len(doc.Collections) == 0 {
		return ImportResult{}, fmt.Errorf("import document has no snippets or collections")
	}

	var result ImportResult

	existing, err := s.Snippets()
	if err != nil {
		return result, err
	}
	known := map[string]bool{}
	for _, sn := range existing {
		known[sn.ID] = true
	}
	for _, sn := range doc.Snippets {
		if known[sn.ID] {
			continue
		}
		if err := s.Save(sn); err != nil {
			return result, err
		}
		result.Snippets++
	}

	existingCols, err := s.Collections()
	if err != nil {
		return result, err
	}
	knownCols := map[string]bool{}
	for _, c := range existingCols {
		knownCols[c.ID] = true
	}
	for _, c := range doc.Collections {
		if knownCols[c.ID] {
			continue
		}
		if err := s.SaveCollection(c); err != nil {
			return result, err
		}
		result.Collections++
	}

	return result, nil
}
