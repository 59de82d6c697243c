package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/search"
)

var (
	searchCategory  string
	searchTags      []string
	searchNoContent bool
	searchNoDesc    bool
	searchNoTags    bool
	searchSortBy    string
	searchSortDir   string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the prompt library",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "only return prompts in this category")
	searchCmd.Flags().StringSliceVar(&searchTags, "tag", nil, "only return prompts carrying at least one of these tags")
	searchCmd.Flags().BoolVar(&searchNoContent, "no-content", false, "do not match against prompt content")
	searchCmd.Flags().BoolVar(&searchNoDesc, "no-description", false, "do not match against descriptions")
	searchCmd.Flags().BoolVar(&searchNoTags, "no-tags", false, "do not match against tags")
	searchCmd.Flags().StringVar(&searchSortBy, "sort", string(search.SortByTitle), "sort field: title, createdAt, updatedAt, usageCount")
	searchCmd.Flags().StringVar(&searchSortDir, "dir", string(search.SortAsc), "sort direction: ASC or DESC")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	term := ""
	if len(args) == 1 {
		term = args[0]
	}

	opts := search.DefaultOptions()
	opts.CategoryID = searchCategory
	opts.Tags = searchTags
	opts.IncludeContent = !searchNoContent
	opts.IncludeDescription = !searchNoDesc
	opts.IncludeTags = !searchNoTags

	sortBy, err := parseSortBy(searchSortBy)
	if err != nil {
		return err
	}
	opts.SortBy = sortBy

	switch strings.ToUpper(searchSortDir) {
	case string(search.SortAsc):
		opts.SortDirection = search.SortAsc
	case string(search.SortDesc):
		opts.SortDirection = search.SortDesc
	default:
		return fmt.Errorf("unknown sort direction %q", searchSortDir)
	}

	results, err := searchEngine.Search(cmd.Context(), term, opts)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		cmd.Println("No prompts matched.")
		return nil
	}
	for i := range results {
		printPromptLine(cmd, &results[i])
	}
	return nil
}

func parseSortBy(s string) (search.SortBy, error) {
	switch search.SortBy(s) {
	case search.SortByTitle, search.SortByCreatedAt, search.SortByUpdatedAt, search.SortByUsageCount:
		return search.SortBy(s), nil
	default:
		return "", fmt.Errorf("unknown sort field %q", s)
	}
}
