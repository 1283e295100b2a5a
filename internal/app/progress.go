package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dslpss/devbot/internal/output"
)

var progressJSON bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show the full progress report",
	Long: `Display the aggregated progress summary: windowed totals, streaks,
favorite languages and topics, and weekly/monthly trends.`,
	RunE: runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&progressJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, args []string) error {
	cfg, db, err := openEnv()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	summary := newTracker(cfg, db).Summary()

	if progressJSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding summary: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(output.Section(fmt.Sprintf("Totals (last %d days)", cfg.Progress.WindowDays)))
	fmt.Printf(" %s%d\n", output.StyleLabel.Render("Questions"), summary.TotalQuestions)
	fmt.Printf(" %s%d\n", output.StyleLabel.Render("Code analyses"), summary.TotalCodeAnalyses)
	fmt.Printf(" %s%d\n", output.StyleLabel.Render("Templates used"), summary.TotalTemplatesUsed)

	fmt.Println(output.Section("Streaks"))
	fmt.Printf(" %s%s\n", output.StyleLabel.Render("Current"), output.StreakFlame(summary.CurrentStreak))
	fmt.Printf(" %s%s\n", output.StyleLabel.Render("Longest"), output.StreakFlame(summary.LongestStreak))

	if len(summary.FavoriteLanguages) > 0 {
		fmt.Println(output.Section("Favorite languages"))
		for _, lang := range summary.FavoriteLanguages {
			fmt.Printf(" %s%s\n", output.StyleLabel.Render(lang.Language), output.PercentBar(lang.Percentage, 20))
		}
	}

	if len(summary.FavoriteTopics) > 0 {
		fmt.Println(output.Section("Favorite topics"))
		table := output.NewTable("Topic", "Category", "Days", "Share")
		for _, topic := range summary.FavoriteTopics {
			table.AddRow(topic.Topic, topic.Category,
				fmt.Sprintf("%d", topic.Count), fmt.Sprintf("%d%%", topic.Percentage))
		}
		fmt.Print(" " + table.Render())
	}

	if len(summary.WeeklyStats) > 0 {
		fmt.Println(output.Section("Weekly"))
		table := output.NewTable("Week", "Questions", "Avg/day", "Most active")
		for _, w := range summary.WeeklyStats {
			table.AddRow(w.Week, fmt.Sprintf("%d", w.Questions),
				fmt.Sprintf("%d", w.AveragePerDay), w.MostActiveDay)
		}
		fmt.Print(" " + table.Render())
	}

	if len(summary.MonthlyStats) > 0 {
		fmt.Println(output.Section("Monthly"))
		table := output.NewTable("Month", "Questions", "Avg/day", "Growth")
		for _, m := range summary.MonthlyStats {
			table.AddRow(m.Month, fmt.Sprintf("%d", m.Questions),
				fmt.Sprintf("%d", m.AveragePerDay), output.GrowthArrow(m.Growth))
		}
		fmt.Print(" " + table.Render())
	}

	fmt.Println()
	return nil
}
