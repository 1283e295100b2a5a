package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dslpss/devbot/internal/output"
	"github.com/Dslpss/devbot/internal/progress"
)

var (
	trackLanguage string
	trackTopic    string
)

var trackCmd = &cobra.Command{
	Use:   "track <question|analysis|template>",
	Short: "Record a study activity",
	Long: `Record one activity against today's counters and refresh the
progress summary.

Examples:
  devbot track question --language Python --topic algoritmo
  devbot track analysis --language Go
  devbot track template`,
	Args: cobra.ExactArgs(1),
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().StringVar(&trackLanguage, "language", "", "Language label for this activity")
	trackCmd.Flags().StringVar(&trackTopic, "topic", "", "Topic label for this activity")
	rootCmd.AddCommand(trackCmd)
}

// parseKind maps the CLI spelling to an activity kind.
func parseKind(arg string) (progress.ActivityKind, error) {
	switch arg {
	case "question", "q":
		return progress.KindQuestion, nil
	case "analysis", "codeanalysis", "a":
		return progress.KindCodeAnalysis, nil
	case "template", "t":
		return progress.KindTemplateUsed, nil
	}
	return "", fmt.Errorf("unknown activity %q; use question, analysis, or template", arg)
}

func runTrack(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}

	cfg, db, err := openEnv()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	tracker := newTracker(cfg, db)
	meta := progress.Metadata{Language: trackLanguage, Topic: trackTopic}

	if err := tracker.Record(kind, meta); err != nil {
		return fmt.Errorf("recording activity: %w", err)
	}
	if err := tracker.Recompute(); err != nil {
		return fmt.Errorf("recomputing summary: %w", err)
	}

	summary := tracker.Summary()
	fmt.Printf("Recorded %s", kind)
	if trackLanguage != "" {
		fmt.Printf(" (%s)", trackLanguage)
	}
	fmt.Printf("  %s\n", output.StreakFlame(summary.CurrentStreak))
	return nil
}
