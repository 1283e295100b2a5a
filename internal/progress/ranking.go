package progress

import (
	"sort"
	"strings"
)

// languageColors maps known language labels to display colors. Unknown
// labels fall back to neutralColor.
var languageColors = map[string]string{
	"JavaScript":   "#f7df1e",
	"TypeScript":   "#3178c6",
	"Python":       "#3776ab",
	"Java":         "#ed8b00",
	"C++":          "#00599c",
	"C#":           "#239120",
	"Swift":        "#fa7343",
	"Kotlin":       "#7f52ff",
	"Go":           "#00add8",
	"Rust":         "#000000",
	"PHP":          "#777bb4",
	"Ruby":         "#cc342d",
	"Dart":         "#0175c2",
	"React":        "#61dafb",
	"React Native": "#61dafb",
	"Flutter":      "#02569b",
	"Vue":          "#4fc08d",
	"Angular":      "#dd0031",
}

const neutralColor = "#666666"

// topicCategories maps lowercase topic keywords to one of the five fixed
// categories. Unmatched topics default to "geral".
var topicCategories = map[string]string{
	"debug":       "debug",
	"performance": "codigo",
	"algoritmo":   "codigo",
	"estrutura":   "conceito",
	"conceito":    "conceito",
	"revisao":     "revisao",
	"analise":     "revisao",
	"explicacao":  "conceito",
	"exemplo":     "geral",
}

// LanguageColor returns the display color for a language label.
func LanguageColor(language string) string {
	if c, ok := languageColors[language]; ok {
		return c
	}
	return neutralColor
}

// TopicCategory returns the fixed category for a topic label.
func TopicCategory(topic string) string {
	if c, ok := topicCategories[strings.ToLower(topic)]; ok {
		return c
	}
	return "geral"
}

// labelTally counts, per label, the number of window days the label
// appears on (once per day, not once per activity), preserving the order
// each label was first seen so ranking ties stay deterministic.
func labelTally(window []DayRecord, pick func(DayRecord) []string) (map[string]int, []string, int) {
	counts := map[string]int{}
	var order []string
	total := 0

	for _, day := range window {
		for _, label := range pick(day) {
			if _, ok := counts[label]; !ok {
				order = append(order, label)
			}
			counts[label]++
			total++
		}
	}

	return counts, order, total
}

// computeLanguageStats ranks the window's language labels by day count,
// descending, returning at most `limit` entries.
func computeLanguageStats(window []DayRecord, limit int) []LanguageStat {
	counts, order, total := labelTally(window, func(d DayRecord) []string { return d.Languages })
	if total == 0 {
		return []LanguageStat{}
	}

	stats := make([]LanguageStat, 0, len(order))
	for _, lang := range order {
		count := counts[lang]
		stats = append(stats, LanguageStat{
			Language:   lang,
			Count:      count,
			Percentage: roundHalfUp(float64(count) / float64(total) * 100),
			Color:      LanguageColor(lang),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	return firstN(stats, limit)
}

// computeTopicStats ranks the window's topic labels by day count,
// descending, returning at most `limit` entries.
func computeTopicStats(window []DayRecord, limit int) []TopicStat {
	counts, order, total := labelTally(window, func(d DayRecord) []string { return d.Topics })
	if total == 0 {
		return []TopicStat{}
	}

	stats := make([]TopicStat, 0, len(order))
	for _, topic := range order {
		count := counts[topic]
		stats = append(stats, TopicStat{
			Topic:      topic,
			Count:      count,
			Percentage: roundHalfUp(float64(count) / float64(total) * 100),
			Category:   TopicCategory(topic),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	return firstN(stats, limit)
}

func firstN[T any](s []T, n int) []T {
	if n >= 0 && len(s) > n {
		s = s[:n]
	}
	return s
}
