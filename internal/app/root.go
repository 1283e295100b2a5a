// Package app contains the Cobra command tree for devbot.
package app

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Dslpss/devbot/internal/config"
	"github.com/Dslpss/devbot/internal/output"
	"github.com/Dslpss/devbot/internal/progress"
	"github.com/Dslpss/devbot/internal/snippets"
	"github.com/Dslpss/devbot/internal/store"
	"github.com/Dslpss/devbot/internal/templates"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "devbot",
	Short: "Study-progress tracking and snippet management for developers",
	Long: `devbot tracks your study activity (questions, code analyses, template
uses), aggregates it into streaks and weekly/monthly trends, and manages
your code-snippet library and prompt templates.

Run 'devbot' with no arguments for a quick dashboard summary.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDashboard,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/devbot/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

// openEnv loads config and opens the database; the caller must close the DB.
func openEnv() (*config.Config, *store.DB, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return cfg, db, nil
}

// windowHeading labels the activity section with the configured window size.
func windowHeading(days int) string {
	return fmt.Sprintf("Last %d days", days)
}

func newTracker(cfg *config.Config, db *store.DB) *progress.Tracker {
	return progress.NewTracker(db, cfg.Progress, log.New(os.Stderr, "devbot: ", 0))
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, db, err := openEnv()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	tracker := newTracker(cfg, db)
	snippetSvc := snippets.NewService(db)
	templateSvc := templates.NewService(db)

	var (
		g             errgroup.Group
		summary       progress.Summary
		snippetCount  int
		templateCount int
	)
	g.Go(func() error {
		summary = tracker.Summary()
		return nil
	})
	g.Go(func() error {
		count, _, err := snippetSvc.Count()
		snippetCount = count
		return err
	})
	g.Go(func() error {
		list, err := templateSvc.Templates()
		templateCount = len(list)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("loading dashboard: %w", err)
	}

	fmt.Println(output.StyleBold.Render("devbot " + appVersion))

	fmt.Println(output.Section(windowHeading(cfg.Progress.WindowDays)))
	fmt.Printf(" %s%d\n", output.StyleLabel.Render("Questions"), summary.TotalQuestions)
	fmt.Printf(" %s%d\n", output.StyleLabel.Render("Code analyses"), summary.TotalCodeAnalyses)
	fmt.Printf(" %s%d\n", output.StyleLabel.Render("Templates used"), summary.TotalTemplatesUsed)
	fmt.Printf(" %s%s\n", output.StyleLabel.Render("Current streak"), output.StreakFlame(summary.CurrentStreak))

	counts := make([]int, len(summary.DailyStats))
	for i, d := range summary.DailyStats {
		counts[i] = d.Questions + d.CodeAnalyses + d.TemplatesUsed
	}
	fmt.Printf(" %s%s\n", output.StyleLabel.Render("Activity"), output.ActivitySpark(counts))

	fmt.Println(output.Section("Library"))
	fmt.Printf(" %s%d\n", output.StyleLabel.Render("Snippets"), snippetCount)
	fmt.Printf(" %s%d\n", output.StyleLabel.Render("Templates"), templateCount)

	fmt.Println()
	fmt.Println(output.StyleMuted.Render("Run 'devbot progress' for the full report."))
	return nil
}
