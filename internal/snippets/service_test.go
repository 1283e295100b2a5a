package snippets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dslpss/devbot/internal/store"
)

func testService(t *testing.T) *Service {
	t.Helper()
	db, err := store.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewService(db)
}

func TestSave_PrependsNewReplacesExisting(t *testing.T) {
	svc := testService(t)

	require.NoError(t, svc.Save(Snippet{ID: "a", Title: "first", Code: "x"}))
	require.NoError(t, svc.Save(Snippet{ID: "b", Title: "second", Code: "y"}))

	list, err := svc.Snippets()
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Newest first.
	require.Equal(t, "b", list[0].ID)

	require.NoError(t, svc.Save(Snippet{ID: "a", Title: "renamed", Code: "x"}))
	list, err = svc.Snippets()
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "renamed", list[1].Title)
}

func TestSave_DetectsLanguage(t *testing.T) {
	svc := testService(t)
	require.NoError(t, svc.Save(Snippet{ID: "go1", Code: "package main\n\nfunc main() {}"}))

	sn, err := svc.Snippet("go1")
	require.NoError(t, err)
	require.NotNil(t, sn)
	require.Equal(t, "go", sn.Language)
}

func TestDelete(t *testing.T) {
	svc := testService(t)
	require.NoError(t, svc.Save(Snippet{ID: "a", Code: "x"}))
	require.NoError(t, svc.Delete("a"))
	// Deleting again is a no-op.
	require.NoError(t, svc.Delete("a"))

	sn, err := svc.Snippet("a")
	require.NoError(t, err)
	require.Nil(t, sn)
}

func TestSearch(t *testing.T) {
	svc := testService(t)
	fav := true

	require.NoError(t, svc.Save(Snippet{
		ID: "1", Title: "Binary search", Code: "def bsearch(): pass",
		Language: "python", Tags: []string{"algorithms"}, IsFavorite: true,
	}))
	require.NoError(t, svc.Save(Snippet{
		ID: "2", Title: "HTTP handler", Code: "func handler() {}",
		Language: "go", Tags: []string{"web"},
	}))

	byQuery, err := svc.Search("binary", Filters{})
	require.NoError(t, err)
	require.Len(t, byQuery, 1)
	require.Equal(t, "1", byQuery[0].ID)

	byLang, err := svc.Search("", Filters{Language: "go"})
	require.NoError(t, err)
	require.Len(t, byLang, 1)
	require.Equal(t, "2", byLang[0].ID)

	byTag, err := svc.Search("", Filters{Tags: []string{"algorithms"}})
	require.NoError(t, err)
	require.Len(t, byTag, 1)

	byFav, err := svc.Search("", Filters{IsFavorite: &fav})
	require.NoError(t, err)
	require.Len(t, byFav, 1)
	require.Equal(t, "1", byFav[0].ID)

	none, err := svc.Search("nonexistent", Filters{})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestExportImport_RoundTripWithDedup(t *testing.T) {
	src := testService(t)
	require.NoError(t, src.Save(Snippet{ID: "s1", Title: "one", Code: "x"}))
	require.NoError(t, src.SaveCollection(Collection{ID: "c1", Name: "basics"}))

	doc, err := src.ExportJSON()
	require.NoError(t, err)

	dst := testService(t)
	require.NoError(t, dst.Save(Snippet{ID: "s1", Title: "already here", Code: "x"}))

	result, err := dst.ImportJSON(doc)
	require.NoError(t, err)
	// s1 exists in the destination, only the collection is new.
	require.Equal(t, 0, result.Snippets)
	require.Equal(t, 1, result.Collections)

	sn, err := dst.Snippet("s1")
	require.NoError(t, err)
	require.Equal(t, "already here", sn.Title)
}

func TestImport_RejectsEmptyDocument(t *testing.T) {
	svc := testService(t)
	_, err := svc.ImportJSON([]byte(`{"version":"1.0"}`))
	require.Error(t, err)
}

func TestDetectLanguage(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"const x = () => console.log(x)", "javascript"},
		{"def main():\n    print('hi')", "python"},
		{"package main\n\nfunc main() {}", "go"},
		{"func greet(name: String) -> String { name }", "swift"},
		{"#include <stdio.h>", "cpp"},
		{"SELECT * FROM users", "sql"},
		{"plain prose with no code", "text"},
	}
	for _, tc := range cases {
		if got := DetectLanguage(tc.code); got != tc.want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}
