// Package config provides configuration loading and defaults for devbot.
package config

// DefaultConfigDir is the default location for devbot configuration.
const DefaultConfigDir = "~/.config/devbot"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "devbot.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultWindowDays is the size of the rolling activity window in calendar
// days. Totals, streaks and rankings are all computed over this window, so
// older activity ages out of the summary.
const DefaultWindowDays = 30

// DefaultWeeklyBuckets is how many trailing weekly aggregates the summary
// retains.
const DefaultWeeklyBuckets = 4

// DefaultMonthlyBuckets is how many trailing monthly aggregates the summary
// retains.
const DefaultMonthlyBuckets = 3

// DefaultFavoritesLimit caps the ranked language and topic lists.
const DefaultFavoritesLimit = 10

// DefaultProgress holds the default progress-tracking policy. The window
// and bucket sizes are policy choices, not derived invariants; changing
// them changes what the summary reports but not how it is computed.
var DefaultProgress = Progress{
	WindowDays:     DefaultWindowDays,
	WeeklyBuckets:  DefaultWeeklyBuckets,
	MonthlyBuckets: DefaultMonthlyBuckets,
	FavoritesLimit: DefaultFavoritesLimit,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
