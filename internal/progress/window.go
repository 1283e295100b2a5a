package progress

// LoadWindow materializes the last `days` calendar days of records, oldest
// first, ending today. Days with no stored record (or an unreadable one)
// come back zero-valued, so the window is always contiguous and exactly
// `days` long.
func (t *Tracker) LoadWindow(days int) []DayRecord {
	if days <= 0 {
		return []DayRecord{}
	}

	today := t.now()
	window := make([]DayRecord, days)

	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, -i).Format(dateLayout)
		window[days-1-i] = t.loadDay(date)
	}

	return window
}
