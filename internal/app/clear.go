package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all progress data",
	Long: `Delete the progress summary and the retained window of daily
counters. Snippets and templates are not touched.`,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearYes {
		fmt.Print("Delete all progress data? [y/N] ")
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	cfg, db, err := openEnv()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	newTracker(cfg, db).Clear()
	fmt.Println("Progress data cleared.")
	return nil
}
