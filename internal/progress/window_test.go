package progress

import (
	"reflect"
	"testing"
)

func TestLoadWindow_ZeroFillsMissingDays(t *testing.T) {
	tr, _ := testTracker(t) // clock fixed at 2026-08-15

	if err := tr.Record(KindQuestion, Metadata{}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	window := tr.LoadWindow(30)
	if len(window) != 30 {
		t.Fatalf("window length = %d, want 30", len(window))
	}

	if window[0].Date != "2026-07-17" {
		t.Errorf("oldest day = %s, want 2026-07-17", window[0].Date)
	}
	if window[29].Date != "2026-08-15" {
		t.Errorf("newest day = %s, want 2026-08-15", window[29].Date)
	}

	// Contiguous, one record per calendar date.
	for i := 1; i < len(window); i++ {
		if window[i].Date <= window[i-1].Date {
			t.Fatalf("window not strictly ascending at %d: %s then %s",
				i, window[i-1].Date, window[i].Date)
		}
	}

	// Only today has activity; every synthesized day is zero-valued.
	for i, d := range window[:29] {
		if d.Active() || d.TimeSpent != 0 {
			t.Errorf("day %d (%s) should be zero-valued: %+v", i, d.Date, d)
		}
		if d.Languages == nil || d.Topics == nil {
			t.Errorf("day %s has nil label sets", d.Date)
		}
	}
	if window[29].Questions != 1 {
		t.Errorf("today's questions = %d, want 1", window[29].Questions)
	}
}

func TestLoadWindow_Idempotent(t *testing.T) {
	tr, _ := testTracker(t)
	if err := tr.Record(KindCodeAnalysis, Metadata{Language: "Rust"}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	first := tr.LoadWindow(30)
	second := tr.LoadWindow(30)
	if !reflect.DeepEqual(first, second) {
		t.Error("LoadWindow is not idempotent with no intervening writes")
	}
}

func TestLoadWindow_NonPositiveDays(t *testing.T) {
	tr, _ := testTracker(t)
	if got := tr.LoadWindow(0); len(got) != 0 {
		t.Errorf("LoadWindow(0) returned %d days", len(got))
	}
	if got := tr.LoadWindow(-5); len(got) != 0 {
		t.Errorf("LoadWindow(-5) returned %d days", len(got))
	}
}
