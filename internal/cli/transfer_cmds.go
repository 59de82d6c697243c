package cli

import (
	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/transfer"
)

var exportDryRun bool

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all prompts and categories to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportDryRun {
			env, err := transferSvc.ExportAll(cmd.Context())
			if err != nil {
				return err
			}
			preview, err := transfer.BuildPreview(env)
			if err != nil {
				return err
			}
			cmd.Println(preview.Summary)
			for _, d := range preview.Details {
				cmd.Println("  " + d)
			}
			return nil
		}

		env, err := transferSvc.ExportFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		cmd.Printf("Exported %d prompts and %d categories to %s\n",
			len(env.Prompts), len(env.Categories), args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Merge prompts and categories from a JSON export",
	Long: `Import merges an export file into the library. Existing categories
keep their local definition; prompts with a matching ID are replaced by
the imported version. Invalid records are skipped and counted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := transferSvc.ImportFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		cmd.Printf("Imported: %d prompts added, %d replaced; %d categories added, %d skipped\n",
			result.PromptsAdded, result.PromptsReplaced,
			result.CategoriesAdded, result.CategoriesSkipped)
		for _, w := range result.Warnings {
			cmd.Println("Warning: " + w)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().BoolVar(&exportDryRun, "dry-run", false, "show what would be exported without writing the file")
	rootCmd.AddCommand(exportCmd, importCmd)
}
