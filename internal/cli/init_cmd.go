package cli

import (
	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/defaults"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Seed the library with starter categories and prompts",
	Long: `Init loads the built-in starter set when the library is empty.
With --force it first clears the library and then reseeds, which
discards everything you have added.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if initForce {
			if !confirm(cmd, "This deletes all prompts and categories before reseeding. Continue?") {
				cmd.Println("Aborted.")
				return nil
			}
			if err := promptSvc.DeleteAll(ctx); err != nil {
				return err
			}
			if err := categorySvc.DeleteAll(ctx); err != nil {
				return err
			}
			if err := defaults.Seed(ctx, promptSvc, categorySvc, logger); err != nil {
				return err
			}
			cmd.Println("Library reset to the starter set.")
			return nil
		}

		prompts, err := promptSvc.List(ctx)
		if err != nil {
			return err
		}
		categories, err := categorySvc.List(ctx)
		if err != nil {
			return err
		}
		if len(prompts) > 0 || len(categories) > 0 {
			cmd.Println("Library is not empty; nothing seeded. Use --force to reset.")
			return nil
		}
		if err := defaults.EnsureSeeded(ctx, promptSvc, categorySvc, logger); err != nil {
			return err
		}
		cmd.Println("Seeded starter categories and prompts.")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "clear the library and reseed")
	rootCmd.AddCommand(initCmd)
}
