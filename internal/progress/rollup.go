package progress

import (
	"fmt"
	"math"
	"time"

	"github.com/Dslpss/devbot/internal/config"
)

// ComputeRollups derives the weekly and monthly aggregates and the ranked
// language/topic favorites from an oldest-first window.
func ComputeRollups(window []DayRecord, policy config.Progress) Rollups {
	return Rollups{
		WeeklyStats:       computeWeeklyStats(window, policy.WeeklyBuckets),
		MonthlyStats:      computeMonthlyStats(window, policy.MonthlyBuckets),
		FavoriteLanguages: computeLanguageStats(window, policy.FavoritesLimit),
		FavoriteTopics:    computeTopicStats(window, policy.FavoritesLimit),
	}
}

// weekNumber computes the day-of-year based week number for a date.
// Intentionally not ISO-8601: week 1 starts on January 1st and weeks are
// aligned to the weekday of January 1st. Ties on edge weeks are broken by
// the same formula everywhere, so bucketing stays internally consistent.
func weekNumber(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	pastDays := t.YearDay() - 1
	return int(math.Ceil(float64(pastDays+int(jan1.Weekday())+1) / 7.0))
}

// computeWeeklyStats buckets the window by (year, week number), keeping
// only the most recent `buckets` buckets, oldest first.
func computeWeeklyStats(window []DayRecord, buckets int) []WeeklyStat {
	byWeek := map[string][]DayRecord{}
	var order []string

	for _, day := range window {
		t, err := time.Parse(dateLayout, day.Date)
		if err != nil {
			continue
		}
		key := fmt.Sprintf("%d-%02d", t.Year(), weekNumber(t))
		if _, ok := byWeek[key]; !ok {
			order = append(order, key)
		}
		byWeek[key] = append(byWeek[key], day)
	}

	stats := make([]WeeklyStat, 0, len(order))
	for _, key := range order {
		days := byWeek[key]

		questions := 0
		mostActive := days[0]
		for _, day := range days {
			questions += day.Questions
			// First day wins ties.
			if day.Questions > mostActive.Questions {
				mostActive = day
			}
		}

		stats = append(stats, WeeklyStat{
			Week:          key,
			Questions:     questions,
			AveragePerDay: roundHalfUp(float64(questions) / float64(len(days))),
			MostActiveDay: mostActive.Date,
		})
	}

	return lastN(stats, buckets)
}

// computeMonthlyStats buckets the window by calendar month (the YYYY-MM
// prefix of the date), keeping only the most recent `buckets` buckets.
// Growth is computed over the retained buckets only, so the first one
// always reports 0 even when an earlier month existed outside the set.
func computeMonthlyStats(window []DayRecord, buckets int) []MonthlyStat {
	byMonth := map[string][]DayRecord{}
	var order []string

	for _, day := range window {
		if len(day.Date) < 7 {
			continue
		}
		key := day.Date[:7]
		if _, ok := byMonth[key]; !ok {
			order = append(order, key)
		}
		byMonth[key] = append(byMonth[key], day)
	}

	stats := make([]MonthlyStat, 0, len(order))
	for _, key := range order {
		days := byMonth[key]

		questions := 0
		for _, day := range days {
			questions += day.Questions
		}

		stats = append(stats, MonthlyStat{
			Month:         key,
			Questions:     questions,
			AveragePerDay: roundHalfUp(float64(questions) / float64(len(days))),
		})
	}

	stats = lastN(stats, buckets)
	for i := 1; i < len(stats); i++ {
		prev := stats[i-1].Questions
		if prev > 0 {
			stats[i].Growth = roundHalfUp(float64(stats[i].Questions-prev) / float64(prev) * 100)
		}
	}

	return stats
}

// roundHalfUp rounds to the nearest integer with halves going up,
// matching the rounding the summary format was defined with.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func lastN[T any](s []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(s) > n {
		s = s[len(s)-n:]
	}
	return s
}
