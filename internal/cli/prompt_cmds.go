package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/domain/prompt"
)

var (
	addTitle       string
	addContent     string
	addContentFile string
	addCategory    string
	addTags        []string
	addDescription string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a prompt to the library",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "prompt title (required)")
	addCmd.Flags().StringVarP(&addContent, "content", "c", "", "template body; use - to read stdin")
	addCmd.Flags().StringVar(&addContentFile, "content-file", "", "read the template body from a file")
	addCmd.Flags().StringVar(&addCategory, "category", "", "category ID to file the prompt under")
	addCmd.Flags().StringSliceVar(&addTags, "tag", nil, "tag (repeatable)")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "optional description")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	content, err := resolveContent(cmd)
	if err != nil {
		return err
	}

	p, err := promptSvc.Save(cmd.Context(), prompt.SaveRequest{
		Title:       addTitle,
		Content:     content,
		CategoryID:  addCategory,
		Tags:        addTags,
		Description: addDescription,
	})
	if err != nil {
		return err
	}

	cmd.Printf("Added prompt %q (%s)\n", p.Title, p.ID)
	return nil
}

func resolveContent(cmd *cobra.Command) (string, error) {
	if addContentFile != "" {
		data, err := os.ReadFile(addContentFile)
		if err != nil {
			return "", fmt.Errorf("reading content file: %w", err)
		}
		return string(data), nil
	}
	if addContent == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	return addContent, nil
}

var (
	editTitle       string
	editContent     string
	editCategory    string
	editTags        []string
	editDescription string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit fields of an existing prompt",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "new title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "new template body")
	editCmd.Flags().StringVar(&editCategory, "category", "", "new category ID ('' clears it)")
	editCmd.Flags().StringSliceVar(&editTags, "tag", nil, "replacement tag set (repeatable)")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "new description")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	existing, err := promptSvc.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	req := prompt.SaveRequest{
		ID:          existing.ID,
		Title:       existing.Title,
		Content:     existing.Content,
		CategoryID:  existing.CategoryID,
		Tags:        existing.Tags,
		Description: existing.Description,
	}
	if cmd.Flags().Changed("title") {
		req.Title = editTitle
	}
	if cmd.Flags().Changed("content") {
		req.Content = editContent
	}
	if cmd.Flags().Changed("category") {
		req.CategoryID = editCategory
	}
	if cmd.Flags().Changed("tag") {
		req.Tags = editTags
	}
	if cmd.Flags().Changed("description") {
		req.Description = editDescription
	}

	p, err := promptSvc.Save(cmd.Context(), req)
	if err != nil {
		return err
	}

	cmd.Printf("Updated prompt %q\n", p.Title)
	return nil
}

var listByCategory bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List prompts",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listByCategory, "by-category", false, "group prompts by category")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	prompts, err := promptSvc.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(prompts) == 0 {
		cmd.Println("No prompts yet. Try 'promptdeck init' to load the starter set.")
		return nil
	}

	if !listByCategory {
		for i := range prompts {
			printPromptLine(cmd, &prompts[i])
		}
		return nil
	}

	categories, err := categorySvc.List(cmd.Context())
	if err != nil {
		return err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	grouped := make(map[string][]prompt.Prompt)
	for _, p := range prompts {
		grouped[p.CategoryID] = append(grouped[p.CategoryID], p)
	}
	for _, c := range categories {
		if len(grouped[c.ID]) == 0 {
			continue
		}
		cmd.Printf("%s:\n", c.Name)
		for i := range grouped[c.ID] {
			cmd.Print("  ")
			printPromptLine(cmd, &grouped[c.ID][i])
		}
	}
	if uncategorized := grouped[""]; len(uncategorized) > 0 {
		cmd.Println("Uncategorized:")
		for i := range uncategorized {
			cmd.Print("  ")
			printPromptLine(cmd, &uncategorized[i])
		}
	}
	return nil
}

func printPromptLine(cmd *cobra.Command, p *prompt.Prompt) {
	line := fmt.Sprintf("%s  %s", p.ID, p.Title)
	if len(p.Tags) > 0 {
		line += "  [" + strings.Join(p.Tags, ", ") + "]"
	}
	if p.UsageCount > 0 {
		line += fmt.Sprintf("  (used %d)", p.UsageCount)
	}
	cmd.Println(line)
}

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a prompt's full content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := promptSvc.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		cmd.Printf("Title: %s\n", p.Title)
		if p.Description != "" {
			cmd.Printf("Description: %s\n", p.Description)
		}
		if len(p.Tags) > 0 {
			cmd.Printf("Tags: %s\n", strings.Join(p.Tags, ", "))
		}
		cmd.Printf("Used: %d times\n\n", p.UsageCount)
		cmd.Println(p.Content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

var rmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := promptSvc.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !confirm(cmd, fmt.Sprintf("Delete prompt %q?", p.Title)) {
			cmd.Println("Aborted.")
			return nil
		}
		if err := promptSvc.Delete(cmd.Context(), p.ID); err != nil {
			if errors.Is(err, prompt.ErrPromptNotFound) {
				return fmt.Errorf("prompt %s no longer exists", p.ID)
			}
			return err
		}
		cmd.Printf("Deleted prompt %q\n", p.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
