package progress

import (
	"testing"
	"time"

	"github.com/Dslpss/devbot/internal/config"
)

func TestWeekNumber_AlignedToJanuaryFirst(t *testing.T) {
	// January 1st is always in week 1, whatever weekday it falls on.
	for year := 2020; year <= 2027; year++ {
		jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		if w := weekNumber(jan1); w != 1 {
			t.Errorf("weekNumber(%d-01-01) = %d, want 1", year, w)
		}
	}

	// Jan 1 2026 is a Thursday, so the first week break lands between
	// Jan 3 (Saturday) and Jan 4 (Sunday).
	sat := time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC)
	sun := time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC)
	if w := weekNumber(sat); w != 1 {
		t.Errorf("weekNumber(2026-01-03) = %d, want 1", w)
	}
	if w := weekNumber(sun); w != 2 {
		t.Errorf("weekNumber(2026-01-04) = %d, want 2", w)
	}
}

func TestComputeWeeklyStats_Bucketing(t *testing.T) {
	// Aug 10-12 2026 fall in week 33; Aug 16 starts week 34.
	window := []DayRecord{
		day("2026-08-10", 2),
		day("2026-08-11", 3),
		day("2026-08-12", 0),
		day("2026-08-16", 4),
	}

	stats := computeWeeklyStats(window, 4)
	if len(stats) != 2 {
		t.Fatalf("got %d weekly buckets, want 2", len(stats))
	}

	first := stats[0]
	if first.Week != "2026-33" {
		t.Errorf("Week = %q, want 2026-33", first.Week)
	}
	if first.Questions != 5 {
		t.Errorf("Questions = %d, want 5", first.Questions)
	}
	// 5 questions over 3 days = 1.67, rounded to 2.
	if first.AveragePerDay != 2 {
		t.Errorf("AveragePerDay = %d, want 2", first.AveragePerDay)
	}
	if first.MostActiveDay != "2026-08-11" {
		t.Errorf("MostActiveDay = %q, want 2026-08-11", first.MostActiveDay)
	}

	if stats[1].Week != "2026-34" || stats[1].Questions != 4 {
		t.Errorf("second bucket = %+v, want week 2026-34 with 4 questions", stats[1])
	}
}

func TestComputeWeeklyStats_MostActiveDayTie(t *testing.T) {
	window := []DayRecord{
		day("2026-08-10", 3),
		day("2026-08-11", 3),
	}

	stats := computeWeeklyStats(window, 4)
	if len(stats) != 1 {
		t.Fatalf("got %d buckets, want 1", len(stats))
	}
	// First day wins ties.
	if stats[0].MostActiveDay != "2026-08-10" {
		t.Errorf("MostActiveDay = %q, want 2026-08-10", stats[0].MostActiveDay)
	}
}

func TestComputeWeeklyStats_Retention(t *testing.T) {
	// Six Mondays spanning six week buckets; only the last four survive.
	var window []DayRecord
	start := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 6; i++ {
		window = append(window, day(start.AddDate(0, 0, 7*i).Format(dateLayout), i+1))
	}

	stats := computeWeeklyStats(window, 4)
	if len(stats) != 4 {
		t.Fatalf("got %d buckets, want 4", len(stats))
	}
	if stats[0].Questions != 3 || stats[3].Questions != 6 {
		t.Errorf("retained buckets = %+v, want the four most recent (3..6 questions)", stats)
	}
}

func TestComputeMonthlyStats_Growth(t *testing.T) {
	window := []DayRecord{
		day("2026-07-30", 4),
		day("2026-07-31", 6),
		day("2026-08-01", 9),
		day("2026-08-02", 6),
	}

	stats := computeMonthlyStats(window, 3)
	if len(stats) != 2 {
		t.Fatalf("got %d monthly buckets, want 2", len(stats))
	}

	jul, aug := stats[0], stats[1]
	if jul.Month != "2026-07" || jul.Questions != 10 {
		t.Errorf("first bucket = %+v, want 2026-07 with 10 questions", jul)
	}
	// First retained bucket never reports growth.
	if jul.Growth != 0 {
		t.Errorf("first bucket Growth = %d, want 0", jul.Growth)
	}
	if aug.Questions != 15 {
		t.Errorf("second bucket Questions = %d, want 15", aug.Questions)
	}
	// (15-10)/10 * 100 = 50.
	if aug.Growth != 50 {
		t.Errorf("Growth = %d, want 50", aug.Growth)
	}
}

func TestComputeMonthlyStats_NegativeGrowthRounding(t *testing.T) {
	window := []DayRecord{
		day("2026-07-01", 8),
		day("2026-08-01", 5),
	}

	stats := computeMonthlyStats(window, 3)
	if len(stats) != 2 {
		t.Fatalf("got %d buckets, want 2", len(stats))
	}
	// (5-8)/8 * 100 = -37.5, rounded half up to -37.
	if stats[1].Growth != -37 {
		t.Errorf("Growth = %d, want -37", stats[1].Growth)
	}
}

func TestComputeMonthlyStats_ZeroPriorMeansZeroGrowth(t *testing.T) {
	window := []DayRecord{
		day("2026-07-01", 0),
		day("2026-08-01", 12),
	}

	stats := computeMonthlyStats(window, 3)
	if len(stats) != 2 {
		t.Fatalf("got %d buckets, want 2", len(stats))
	}
	if stats[1].Growth != 0 {
		t.Errorf("Growth = %d, want 0 when the prior month had no questions", stats[1].Growth)
	}
}

func TestComputeMonthlyStats_Retention(t *testing.T) {
	window := []DayRecord{
		day("2026-05-15", 1),
		day("2026-06-15", 2),
		day("2026-07-15", 3),
		day("2026-08-15", 4),
	}

	stats := computeMonthlyStats(window, 3)
	if len(stats) != 3 {
		t.Fatalf("got %d buckets, want 3", len(stats))
	}
	if stats[0].Month != "2026-06" {
		t.Errorf("oldest retained bucket = %q, want 2026-06", stats[0].Month)
	}
	// June is first in the retained set: no growth even though May existed.
	if stats[0].Growth != 0 {
		t.Errorf("oldest retained Growth = %d, want 0", stats[0].Growth)
	}
}

func TestComputeRollups_EmptyWindow(t *testing.T) {
	r := ComputeRollups(nil, config.DefaultProgress)
	if len(r.WeeklyStats) != 0 || len(r.MonthlyStats) != 0 {
		t.Errorf("empty window produced buckets: %+v", r)
	}
	if len(r.FavoriteLanguages) != 0 || len(r.FavoriteTopics) != 0 {
		t.Errorf("empty window produced favorites: %+v", r)
	}
}
