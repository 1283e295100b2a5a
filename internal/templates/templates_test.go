package templates

import (
	"strings"
	"testing"

	"github.com/Dslpss/devbot/internal/store"
)

func testService(t *testing.T) *Service {
	t.Helper()
	db, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewService(db)
}

func TestTemplates_SeedsBuiltins(t *testing.T) {
	svc := testService(t)

	list, err := svc.Templates()
	if err != nil {
		t.Fatalf("Templates: %v", err)
	}
	if len(list) != 6 {
		t.Fatalf("got %d templates, want 6 built-ins", len(list))
	}
	for _, tmpl := range list {
		if tmpl.IsCustom {
			t.Errorf("built-in %s marked custom", tmpl.ID)
		}
		if tmpl.UsageCount != 0 {
			t.Errorf("built-in %s starts with usage %d", tmpl.ID, tmpl.UsageCount)
		}
	}
}

func TestUse_RendersAndCounts(t *testing.T) {
	svc := testService(t)

	rendered, err := svc.Use("explain-concept", map[string]string{
		"concept":  "goroutines",
		"language": "Go",
	})
	if err != nil {
		t.Fatalf("Use: %v", err)
	}
	if !strings.Contains(rendered, "goroutines") || !strings.Contains(rendered, "Go") {
		t.Errorf("rendered template missing substitutions: %q", rendered)
	}
	if strings.Contains(rendered, "{concept}") {
		t.Errorf("placeholder left unrendered: %q", rendered)
	}

	tmpl, err := svc.Get("explain-concept")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if tmpl.UsageCount != 1 {
		t.Errorf("UsageCount = %d, want 1", tmpl.UsageCount)
	}
}

func TestUse_UsageCountSurvivesReload(t *testing.T) {
	svc := testService(t)

	if _, err := svc.Use("code-review", map[string]string{"language": "Go", "code": "x"}); err != nil {
		t.Fatalf("Use: %v", err)
	}
	if _, err := svc.Use("code-review", map[string]string{"language": "Go", "code": "y"}); err != nil {
		t.Fatalf("Use: %v", err)
	}

	// The merge keeps stored usage counts on the built-in definitions.
	list, err := svc.Templates()
	if err != nil {
		t.Fatalf("Templates: %v", err)
	}
	for _, tmpl := range list {
		if tmpl.ID == "code-review" && tmpl.UsageCount != 2 {
			t.Errorf("UsageCount = %d, want 2", tmpl.UsageCount)
		}
	}
}

func TestCreateAndDeleteCustom(t *testing.T) {
	svc := testService(t)

	created, err := svc.Create("My prompt", "desc", "Do {thing}", "", []string{"thing"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !created.IsCustom || created.Category != "custom" {
		t.Errorf("created = %+v, want custom template with custom category", created)
	}

	list, err := svc.Templates()
	if err != nil {
		t.Fatalf("Templates: %v", err)
	}
	if len(list) != 7 {
		t.Errorf("got %d templates, want 7", len(list))
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Error("custom template survived Delete")
	}
}

func TestDelete_RefusesBuiltins(t *testing.T) {
	svc := testService(t)
	if err := svc.Delete("debug-help"); err == nil {
		t.Error("Delete allowed removing a built-in template")
	}
}

func TestRender_LeavesUnknownPlaceholders(t *testing.T) {
	got := Render("a {x} and {y}", map[string]string{"x": "1"})
	if got != "a 1 and {y}" {
		t.Errorf("Render = %q, want %q", got, "a 1 and {y}")
	}
}
