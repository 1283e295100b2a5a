// Package progress implements devbot's activity tracking and aggregation
// engine: per-day counters, a rolling window, streak detection, and
// weekly/monthly rollups with language and topic rankings.
package progress

// ActivityKind identifies what kind of activity is being recorded.
type ActivityKind string

// Recordable activity kinds.
const (
	KindQuestion     ActivityKind = "question"
	KindCodeAnalysis ActivityKind = "codeAnalysis"
	KindTemplateUsed ActivityKind = "templateUsed"
)

// Valid reports whether k is one of the recordable kinds.
func (k ActivityKind) Valid() bool {
	switch k {
	case KindQuestion, KindCodeAnalysis, KindTemplateUsed:
		return true
	}
	return false
}

// Metadata optionally tags a recorded activity with a language and/or topic.
type Metadata struct {
	Language string
	Topic    string
}

// DayRecord holds one calendar day's activity counters.
//
// Languages and Topics are label sets: a label appears at most once per
// day regardless of how many activities carried it.
type DayRecord struct {
	Date          string   `json:"date"` // YYYY-MM-DD
	Questions     int      `json:"questions"`
	CodeAnalyses  int      `json:"codeAnalyses"`
	TemplatesUsed int      `json:"templatesUsed"`
	TimeSpent     int      `json:"timeSpent"` // minutes, 1 per activity
	Languages     []string `json:"languages"`
	Topics        []string `json:"topics"`
}

// Active reports whether the day has at least one recorded question,
// code analysis, or template use.
func (d DayRecord) Active() bool {
	return d.Questions > 0 || d.CodeAnalyses > 0 || d.TemplatesUsed > 0
}

// emptyDay returns a zero-valued record for the given date.
func emptyDay(date string) DayRecord {
	return DayRecord{
		Date:      date,
		Languages: []string{},
		Topics:    []string{},
	}
}

// LanguageStat is one entry in the ranked favorite-languages list.
type LanguageStat struct {
	Language   string `json:"language"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
}

// TopicStat is one entry in the ranked favorite-topics list.
type TopicStat struct {
	Topic      string `json:"topic"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
	Category   string `json:"category"` // codigo, conceito, debug, revisao, geral
}

// WeeklyStat aggregates one (year, week) bucket.
type WeeklyStat struct {
	Week          string `json:"week"` // YYYY-WW
	Questions     int    `json:"questions"`
	AveragePerDay int    `json:"averagePerDay"`
	MostActiveDay string `json:"mostActiveDay"`
}

// MonthlyStat aggregates one calendar-month bucket. Growth is the rounded
// percentage change in questions versus the previous retained bucket; the
// first retained bucket always reports 0.
type MonthlyStat struct {
	Month         string `json:"month"` // YYYY-MM
	Questions     int    `json:"questions"`
	AveragePerDay int    `json:"averagePerDay"`
	Growth        int    `json:"growth"`
}

// Summary is the single aggregate progress record. Totals cover the
// current window only, so activity older than the window silently ages
// out of them.
type Summary struct {
	TotalQuestions     int            `json:"totalQuestions"`
	TotalCodeAnalyses  int            `json:"totalCodeAnalyses"`
	TotalTemplatesUsed int            `json:"totalTemplatesUsed"`
	CurrentStreak      int            `json:"currentStreak"`
	LongestStreak      int            `json:"longestStreak"`
	FavoriteLanguages  []LanguageStat `json:"favoriteLanguages"`
	FavoriteTopics     []TopicStat    `json:"favoriteTopics"`
	DailyStats         []DayRecord    `json:"dailyStats"`
	WeeklyStats        []WeeklyStat   `json:"weeklyStats"`
	MonthlyStats       []MonthlyStat  `json:"monthlyStats"`
}

// Streaks pairs the two streak measurements derived from a window.
type Streaks struct {
	Current int
	Longest int
}

// Rollups bundles everything ComputeRollups derives from a window.
type Rollups struct {
	WeeklyStats       []WeeklyStat
	MonthlyStats      []MonthlyStat
	FavoriteLanguages []LanguageStat
	FavoriteTopics    []TopicStat
}

// emptySummary returns an initialized summary with no activity.
func emptySummary() Summary {
	return Summary{
		FavoriteLanguages: []LanguageStat{},
		FavoriteTopics:    []TopicStat{},
		DailyStats:        []DayRecord{},
		WeeklyStats:       []WeeklyStat{},
		MonthlyStats:      []MonthlyStat{},
	}
}
