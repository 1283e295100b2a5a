package output

import (
	"fmt"
	"strings"
)

// PercentBar renders a proportion bar for a 0-100 percentage.
// Example: "██████░░░░ 60%"
func PercentBar(percentage int, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := percentage * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s", StyleSuccess.Render(bar), StyleMuted.Render(fmt.Sprintf("%d%%", percentage)))
}

// StreakFlame renders a streak count with an indicator that scales with
// its length.
func StreakFlame(days int) string {
	label := fmt.Sprintf("%d day", days)
	if days != 1 {
		label += "s"
	}
	switch {
	case days >= 14:
		return StyleSuccess.Render("🔥🔥 " + label)
	case days >= 7:
		return StyleSuccess.Render("🔥 " + label)
	case days >= 1:
		return StyleWarning.Render("• " + label)
	default:
		return StyleMuted.Render("— " + label)
	}
}

// GrowthArrow returns a styled indicator for a monthly growth percentage.
func GrowthArrow(growth int) string {
	switch {
	case growth > 0:
		return StyleSuccess.Render(fmt.Sprintf("▲ +%d%%", growth))
	case growth < 0:
		return StyleError.Render(fmt.Sprintf("▼ %d%%", growth))
	default:
		return StyleMuted.Render("─")
	}
}

// ActivitySpark renders a compact per-day activity sparkline for the
// window, oldest first. Each day maps to one of four glyphs by activity
// volume.
func ActivitySpark(counts []int) string {
	if len(counts) == 0 {
		return ""
	}

	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	if max == 0 {
		return StyleMuted.Render(strings.Repeat("▁", len(counts)))
	}

	glyphs := []rune("▁▃▅█")
	var sb strings.Builder
	for _, c := range counts {
		idx := 0
		if c > 0 {
			idx = 1 + c*(len(glyphs)-2)/max
			if idx > len(glyphs)-1 {
				idx = len(glyphs) - 1
			}
		}
		sb.WriteRune(glyphs[idx])
	}
	return StyleSuccess.Render(sb.String())
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
