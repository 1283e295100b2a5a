package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dslpss/devbot/internal/output"
	"github.com/Dslpss/devbot/internal/snippets"
)

var (
	snippetTitle    string
	snippetCode     string
	snippetFile     string
	snippetLanguage string
	snippetCategory string
	snippetTags     []string
	snippetDesc     string
	snippetFavorite bool
)

var snippetCmd = &cobra.Command{
	Use:   "snippet",
	Short: "Manage the code-snippet library",
}

var snippetAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a snippet",
	Long: `Save a code snippet. The code comes from --code or --file; when the
language is omitted it is detected from the code.

Examples:
  devbot snippet add --title "Binary search" --file bsearch.py --tag algorithms
  devbot snippet add --title "HTTP handler" --code 'func handler() {}' --language go`,
	RunE: runSnippetAdd,
}

var snippetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved snippets",
	RunE:  runSnippetList,
}

var snippetSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search snippets by text and filters",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSnippetSearch,
}

var snippetShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a snippet's code",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnippetShow,
}

var snippetRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a snippet",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnippetRm,
}

var snippetExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export snippets and collections as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSnippetExport,
}

var snippetImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a previously exported snippet library",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnippetImport,
}

func init() {
	snippetAddCmd.Flags().StringVar(&snippetTitle, "title", "", "Snippet title (required)")
	snippetAddCmd.Flags().StringVar(&snippetCode, "code", "", "Snippet code")
	snippetAddCmd.Flags().StringVar(&snippetFile, "file", "", "Read snippet code from a file")
	snippetAddCmd.Flags().StringVar(&snippetLanguage, "language", "", "Language (detected from code when omitted)")
	snippetAddCmd.Flags().StringVar(&snippetCategory, "category", "", "Category label")
	snippetAddCmd.Flags().StringSliceVar(&snippetTags, "tag", nil, "Tags (can specify multiple)")
	snippetAddCmd.Flags().StringVar(&snippetDesc, "desc", "", "Description")
	snippetAddCmd.Flags().BoolVar(&snippetFavorite, "favorite", false, "Mark as favorite")
	_ = snippetAddCmd.MarkFlagRequired("title")

	snippetSearchCmd.Flags().StringVar(&snippetLanguage, "language", "", "Filter by language")
	snippetSearchCmd.Flags().StringVar(&snippetCategory, "category", "", "Filter by category")
	snippetSearchCmd.Flags().StringSliceVar(&snippetTags, "tag", nil, "Filter by tag")
	snippetSearchCmd.Flags().BoolVar(&snippetFavorite, "favorite", false, "Only favorites")

	snippetCmd.AddCommand(snippetAddCmd, snippetListCmd, snippetSearchCmd,
		snippetShowCmd, snippetRmCmd, snippetExportCmd, snippetImportCmd)
	rootCmd.AddCommand(snippetCmd)
}

func runSnippetAdd(cmd *cobra.Command, args []string) error {
	code := snippetCode
	if snippetFile != "" {
		data, err := os.ReadFile(snippetFile)
		if err != nil {
			return fmt.Errorf("reading %s: %w", snippetFile, err)
		}
		code = string(data)
	}
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("no code given; use --code or --file")
	}

	_, db, err := openEnv()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	sn := snippets.Snippet{
		ID:          snippets.NewID(),
		Title:       snippetTitle,
		Code:        code,
		Language:    snippetLanguage,
		Category:    snippetCategory,
		Tags:        snippetTags,
		Description: snippetDesc,
		IsFavorite:  snippetFavorite,
		Source:      "manual",
	}
	if err := snippets.NewService(db).Save(sn); err != nil {
		return fmt.Errorf("saving snippet: %w", err)
	}

	fmt.Printf("Saved snippet %s (%s)\n", sn.ID, sn.Title)
	return nil
}

func runSnippetList(cmd *cobra.Command, args []string) error {
	_, db, err := openEnv()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	list, err := snippets.NewService(db).Snippets()
	if err != nil {
		return err
	}
	printSnippets(list)
	return nil
}

func runSnippetSearch(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	_, db, err := openEnv()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	filters := snippets.Filters{
		Language: snippetLanguage,
		Category: snippetCategory,
		Tags:     snippetTags,
	}
	if cmd.Flags().Changed("favorite") {
		filters.IsFavorite = &snippetFavorite
	}

	list, err := snippets.NewService(db).Search(query, filters)
	if err != nil {
		return err
	}
	printSnippets(list)
	return nil
}

func printSnippets(list []snippets.Snippet) {
	if len(list) == 0 {
		fmt.Println("No snippets.")
		return
	}

	table := output.NewTable("ID", "Title", "Language", "Tags", "Fav")
	for _, sn := range list {
		fav := ""
		if sn.IsFavorite {
			fav = "★"
		}
		table.AddRow(sn.ID, sn.Title, sn.Language, strings.Join(sn.Tags, ","), fav)
	}
	table.Print()
}

func runSnippetShow(cmd *cobra.Command, args []string) error {
	_, db, err := openEnv()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	sn, err := snippets.NewService(db).Snippet(args[0])
	if err != nil {
		return err
	}
	if sn == nil {
		return fmt.Errorf("snippet %s not found", args[0])
	}

	fmt.Println(output.StyleBold.Render(sn.Title) + "  " + output.StyleMuted.Render(sn.Language))
	if sn.Description != "" {
		fmt.Println(output.StyleMuted.Render(sn.Description))
	}
	fmt.Println()
	fmt.Println(sn.Code)
	return nil
}

func runSnippetRm(cmd *cobra.Command, args []string) error {
	_, db, err := openEnv()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := deleteSnippet(snippets.NewService(db), args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted snippet %s\n", args[0])
	return nil
}

// deleteSnippet removes the snippet with the given id, failing when it
// does not exist.
func deleteSnippet(svc *snippets.Service, id string) error {
	sn, err := svc.Snippet(id)
	if err != nil {
		return err
	}
	if sn == nil {
		return fmt.Errorf("snippet %s not found", id)
	}
	return svc.Delete(id)
}

func runSnippetExport(cmd *cobra.Command, args []string) error {
	_, db, err := openEnv()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	doc, err := snippets.NewService(db).ExportJSON()
	if err != nil {
		return fmt.Errorf("exporting: %w", err)
	}

	if len(args) == 0 {
		fmt.Println(string(doc))
		return nil
	}
	if err := os.WriteFile(args[0], doc, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", args[0], err)
	}
	fmt.Printf("Exported to %s\n", args[0])
	return nil
}

func runSnippetImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	_, db, err := openEnv()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	result, err := snippets.NewService(db).ImportJSON(data)
	if err != nil {
		return fmt.Errorf("importing: %w", err)
	}
	fmt.Printf("Imported %d snippets and %d collections\n", result.Snippets, result.Collections)
	return nil
}
