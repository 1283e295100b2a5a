package progress

// ComputeStreaks derives the current and longest consecutive-active-day
// streaks from an oldest-first window.
//
// The current streak walks backward from the most recent day and stops at
// the first inactive day; if the most recent day is inactive it is 0. The
// longest streak is the maximum run of active days anywhere in the window.
// Both are bounded by the window length: activity outside the window is
// invisible here, so a historical best longer than the window cannot be
// reported.
func ComputeStreaks(window []DayRecord) Streaks {
	var s Streaks

	for i := len(window) - 1; i >= 0; i-- {
		if !window[i].Active() {
			break
		}
		s.Current++
	}

	run := 0
	for _, day := range window {
		if day.Active() {
			run++
			if run > s.Longest {
				s.Longest = run
			}
		} else {
			run = 0
		}
	}

	return s
}
