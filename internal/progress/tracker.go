package progress

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/Dslpss/devbot/internal/config"
	"github.com/Dslpss/devbot/internal/store"
)

// Storage keys. The summary lives under one key; each calendar day's
// counters live under their own date-suffixed key.
const (
	summaryKey   = "@devbot_progress"
	dayKeyPrefix = "@devbot_daily_stats_"
)

// dateLayout is the calendar-date format used in keys and records.
const dateLayout = "2006-01-02"

// Tracker is the progress-aggregation engine. It holds no state between
// calls; every operation is a read-transform-write over the injected
// key-value store.
//
// Record and Recompute return errors and are independently callable, so a
// caller can batch several recordings before one recompute. The mobile-app
// style entry points (RecordActivity, Summary, Clear) treat the data as
// best-effort telemetry: failures are logged and absorbed, never surfaced.
type Tracker struct {
	kv     store.KV
	policy config.Progress
	logger *log.Logger
	now    func() time.Time
}

// NewTracker creates a Tracker over the given store. A nil logger
// discards swallowed errors.
func NewTracker(kv store.KV, policy config.Progress, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Tracker{
		kv:     kv,
		policy: policy,
		logger: logger,
		now:    time.Now,
	}
}

func dayKey(date string) string {
	return dayKeyPrefix + date
}

// today returns the current calendar date as YYYY-MM-DD.
func (t *Tracker) today() string {
	return t.now().Format(dateLayout)
}

// loadDay returns the stored record for date, or a zero-valued record if
// the key is absent or the stored blob is unreadable.
func (t *Tracker) loadDay(date string) DayRecord {
	raw, ok, err := t.kv.Get(dayKey(date))
	if err != nil {
		t.logger.Printf("progress: reading day %s: %v", date, err)
		return emptyDay(date)
	}
	if !ok {
		return emptyDay(date)
	}

	var rec DayRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		// Corrupt records are treated as absent.
		t.logger.Printf("progress: decoding day %s: %v", date, err)
		return emptyDay(date)
	}
	if rec.Languages == nil {
		rec.Languages = []string{}
	}
	if rec.Topics == nil {
		rec.Topics = []string{}
	}
	rec.Date = date
	return rec
}

func (t *Tracker) saveDay(rec DayRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding day %s: %w", rec.Date, err)
	}
	if err := t.kv.Set(dayKey(rec.Date), string(data)); err != nil {
		return fmt.Errorf("saving day %s: %w", rec.Date, err)
	}
	return nil
}

// Record applies one activity to today's day record and persists it.
// It does not touch the summary; pair it with Recompute.
func (t *Tracker) Record(kind ActivityKind, meta Metadata) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown activity kind %q", kind)
	}

	date := t.today()
	rec := t.loadDay(date)

	switch kind {
	case KindQuestion:
		rec.Questions++
	case KindCodeAnalysis:
		rec.CodeAnalyses++
	case KindTemplateUsed:
		rec.TemplatesUsed++
	}
	// One minute per activity, a rough proxy for time spent.
	rec.TimeSpent++

	if meta.Language != "" && !contains(rec.Languages, meta.Language) {
		rec.Languages = append(rec.Languages, meta.Language)
	}
	if meta.Topic != "" && !contains(rec.Topics, meta.Topic) {
		rec.Topics = append(rec.Topics, meta.Topic)
	}

	return t.saveDay(rec)
}

// Recompute rebuilds the summary from the current window and persists it.
// The previous summary is fully replaced.
func (t *Tracker) Recompute() error {
	window := t.LoadWindow(t.policy.WindowDays)

	summary := emptySummary()
	for _, day := range window {
		summary.TotalQuestions += day.Questions
		summary.TotalCodeAnalyses += day.CodeAnalyses
		summary.TotalTemplatesUsed += day.TemplatesUsed
	}

	streaks := ComputeStreaks(window)
	summary.CurrentStreak = streaks.Current
	summary.LongestStreak = streaks.Longest

	rollups := ComputeRollups(window, t.policy)
	summary.FavoriteLanguages = rollups.FavoriteLanguages
	summary.FavoriteTopics = rollups.FavoriteTopics
	summary.WeeklyStats = rollups.WeeklyStats
	summary.MonthlyStats = rollups.MonthlyStats
	summary.DailyStats = window

	return t.saveSummary(summary)
}

// RecordActivity records one activity and recomputes the summary.
// Fire-and-forget: any failure is logged and absorbed.
func (t *Tracker) RecordActivity(kind ActivityKind, meta Metadata) {
	if err := t.Record(kind, meta); err != nil {
		t.logger.Printf("progress: recording activity: %v", err)
		return
	}
	if err := t.Recompute(); err != nil {
		t.logger.Printf("progress: recomputing summary: %v", err)
	}
}

// Summary returns the current progress summary, initializing and
// persisting an empty one if none exists. The window-derived fields
// (dailyStats, weeklyStats, monthlyStats) are refreshed from the store on
// every read so they always reflect today's window. Failures yield a
// best-effort (zeroed) summary, never an error.
func (t *Tracker) Summary() Summary {
	summary, ok := t.loadSummary()
	if !ok {
		summary = emptySummary()
		if err := t.saveSummary(summary); err != nil {
			t.logger.Printf("progress: initializing summary: %v", err)
		}
	}

	window := t.LoadWindow(t.policy.WindowDays)
	rollups := ComputeRollups(window, t.policy)
	summary.DailyStats = window
	summary.WeeklyStats = rollups.WeeklyStats
	summary.MonthlyStats = rollups.MonthlyStats

	return summary
}

// Clear removes the summary and the day records for the retained window.
// Best-effort: failures are logged and absorbed.
func (t *Tracker) Clear() {
	if err := t.kv.Remove(summaryKey); err != nil {
		t.logger.Printf("progress: clearing summary: %v", err)
	}

	today := t.now()
	for i := 0; i < t.policy.WindowDays; i++ {
		date := today.AddDate(0, 0, -i).Format(dateLayout)
		if err := t.kv.Remove(dayKey(date)); err != nil {
			t.logger.Printf("progress: clearing day %s: %v", date, err)
		}
	}
}

func (t *Tracker) loadSummary() (Summary, bool) {
	raw, ok, err := t.kv.Get(summaryKey)
	if err != nil {
		t.logger.Printf("progress: reading summary: %v", err)
		return Summary{}, false
	}
	if !ok {
		return Summary{}, false
	}

	var s Summary
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.logger.Printf("progress: decoding summary: %v", err)
		return Summary{}, false
	}
	return s, true
}

func (t *Tracker) saveSummary(s Summary) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	if err := t.kv.Set(summaryKey, string(data)); err != nil {
		return fmt.Errorf("saving summary: %w", err)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
