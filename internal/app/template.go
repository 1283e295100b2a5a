package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dslpss/devbot/internal/output"
	"github.com/Dslpss/devbot/internal/progress"
	"github.com/Dslpss/devbot/internal/templates"
)

var (
	templateVars  []string
	templateTitle string
	templateDesc  string
	templateBody  string
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage and use prompt templates",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates",
	RunE:  runTemplateList,
}

var templateShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a template's body",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateShow,
}

var templateUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Render a template and record the usage",
	Long: `Render a template with variable substitutions and print the result.
Using a template records a template-used activity against today's
progress.

Example:
  devbot template use explain-concept --var concept=goroutines --var language=Go`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplateUse,
}

var templateAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a custom template",
	RunE:  runTemplateAdd,
}

var templateRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a custom template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateRm,
}

func init() {
	templateUseCmd.Flags().StringSliceVar(&templateVars, "var", nil, "Variable substitution as name=value (can specify multiple)")

	templateAddCmd.Flags().StringVar(&templateTitle, "title", "", "Template title (required)")
	templateAddCmd.Flags().StringVar(&templateDesc, "desc", "", "Description")
	templateAddCmd.Flags().StringVar(&templateBody, "body", "", "Template body with {variable} placeholders (required)")
	_ = templateAddCmd.MarkFlagRequired("title")
	_ = templateAddCmd.MarkFlagRequired("body")

	templateCmd.AddCommand(templateListCmd, templateShowCmd, templateUseCmd,
		templateAddCmd, templateRmCmd)
	rootCmd.AddCommand(templateCmd)
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	_, db, err := openEnv()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	list, err := templates.NewService(db).Templates()
	if err != nil {
		return err
	}

	table := output.NewTable("ID", "Title", "Category", "Used")
	for _, t := range list {
		table.AddRow(t.ID, t.Title, t.Category, fmt.Sprintf("%d", t.UsageCount))
	}
	table.Print()
	return nil
}

func runTemplateShow(cmd *cobra.Command, args []string) error {
	_, db, err := openEnv()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	tmpl, err := templates.NewService(db).Get(args[0])
	if err != nil {
		return err
	}
	if tmpl == nil {
		return fmt.Errorf("template %s not found", args[0])
	}

	fmt.Println(output.StyleBold.Render(tmpl.Title))
	if tmpl.Description != "" {
		fmt.Println(output.StyleMuted.Render(tmpl.Description))
	}
	if len(tmpl.Variables) > 0 {
		fmt.Println(output.StyleMuted.Render("Variables: " + strings.Join(tmpl.Variables, ", ")))
	}
	fmt.Println()
	fmt.Println(tmpl.Template)
	return nil
}

// parseVars turns name=value pairs into a substitution map.
func parseVars(pairs []string) (map[string]string, error) {
	vars := map[string]string{}
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --var %q; expected name=value", pair)
		}
		vars[name] = value
	}
	return vars, nil
}

func runTemplateUse(cmd *cobra.Command, args []string) error {
	vars, err := parseVars(templateVars)
	if err != nil {
		return err
	}

	cfg, db, err := openEnv()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	rendered, err := templates.NewService(db).Use(args[0], vars)
	if err != nil {
		return err
	}

	// Template use counts toward progress; best effort by design.
	newTracker(cfg, db).RecordActivity(progress.KindTemplateUsed, progress.Metadata{
		Language: vars["language"],
		Topic:    vars["topic"],
	})

	fmt.Println(rendered)
	return nil
}

func runTemplateAdd(cmd *cobra.Command, args []string) error {
	_, db, err := openEnv()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	// Placeholders named in the body become the variable list.
	vars := extractVariables(templateBody)
	created, err := templates.NewService(db).Create(templateTitle, templateDesc, templateBody, "", vars)
	if err != nil {
		return err
	}
	fmt.Printf("Created template %s\n", created.ID)
	return nil
}

// extractVariables lists the distinct {name} placeholders in a body, in
// order of first appearance.
func extractVariables(body string) []string {
	var vars []string
	seen := map[string]bool{}
	for {
		start := strings.IndexByte(body, '{')
		if start < 0 {
			break
		}
		end := strings.IndexByte(body[start:], '}')
		if end < 0 {
			break
		}
		name := body[start+1 : start+end]
		if name != "" && !strings.ContainsAny(name, " \n\t{") && !seen[name] {
			seen[name] = true
			vars = append(vars, name)
		}
		body = body[start+end+1:]
	}
	return vars
}

func runTemplateRm(cmd *cobra.Command, args []string) error {
	_, db, err := openEnv()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := templates.NewService(db).Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted template %s\n", args[0])
	return nil
}
