package progress

import "testing"

// day builds a minimal record; q > 0 makes it an active day.
func day(date string, q int) DayRecord {
	rec := emptyDay(date)
	rec.Questions = q
	return rec
}

func TestComputeStreaks_AllInactive(t *testing.T) {
	window := make([]DayRecord, 30)
	for i := range window {
		window[i] = emptyDay("2026-08-01")
	}

	s := ComputeStreaks(window)
	if s.Current != 0 || s.Longest != 0 {
		t.Errorf("ComputeStreaks = {%d, %d}, want {0, 0}", s.Current, s.Longest)
	}
}

func TestComputeStreaks_AllActive(t *testing.T) {
	window := make([]DayRecord, 30)
	for i := range window {
		window[i] = day("2026-08-01", 1)
	}

	s := ComputeStreaks(window)
	if s.Current != 30 || s.Longest != 30 {
		t.Errorf("ComputeStreaks = {%d, %d}, want {30, 30}", s.Current, s.Longest)
	}
}

func TestComputeStreaks_BrokenRun(t *testing.T) {
	// Oldest to newest: active, active, inactive, active.
	window := []DayRecord{
		day("2026-08-01", 1),
		day("2026-08-02", 1),
		day("2026-08-03", 0),
		day("2026-08-04", 1),
	}

	s := ComputeStreaks(window)
	if s.Current != 1 {
		t.Errorf("Current = %d, want 1", s.Current)
	}
	if s.Longest != 2 {
		t.Errorf("Longest = %d, want 2", s.Longest)
	}
}

func TestComputeStreaks_MostRecentInactive(t *testing.T) {
	window := []DayRecord{
		day("2026-08-01", 3),
		day("2026-08-02", 3),
		day("2026-08-03", 0),
	}

	s := ComputeStreaks(window)
	if s.Current != 0 {
		t.Errorf("Current = %d, want 0 when the most recent day is inactive", s.Current)
	}
	if s.Longest != 2 {
		t.Errorf("Longest = %d, want 2", s.Longest)
	}
}

func TestComputeStreaks_AnyCounterActivates(t *testing.T) {
	analyses := emptyDay("2026-08-01")
	analyses.CodeAnalyses = 1
	templates := emptyDay("2026-08-02")
	templates.TemplatesUsed = 1

	s := ComputeStreaks([]DayRecord{analyses, templates})
	if s.Current != 2 || s.Longest != 2 {
		t.Errorf("ComputeStreaks = {%d, %d}, want {2, 2}", s.Current, s.Longest)
	}
}

func TestComputeStreaks_EmptyWindow(t *testing.T) {
	s := ComputeStreaks(nil)
	if s.Current != 0 || s.Longest != 0 {
		t.Errorf("ComputeStreaks(nil) = {%d, %d}, want {0, 0}", s.Current, s.Longest)
	}
}
