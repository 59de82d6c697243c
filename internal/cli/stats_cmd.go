package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show library-wide usage statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := statsSvc.Collect(cmd.Context())
		if err != nil {
			return err
		}

		if statsJSON {
			data, err := json.MarshalIndent(st, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(data))
			return nil
		}

		cmd.Printf("Prompts: %d  Categories: %d  Total uses: %d\n",
			st.TotalPrompts, st.TotalCategories, st.TotalUsage)
		if len(st.TopCategories) > 0 {
			cmd.Println("\nTop categories:")
			for _, c := range st.TopCategories {
				cmd.Printf("  %-24s %3d prompts, %d uses\n", c.CategoryName, c.PromptCount, c.UsageCount)
			}
		}
		if len(st.MostUsed) > 0 {
			cmd.Println("\nMost used prompts:")
			for i := range st.MostUsed {
				p := &st.MostUsed[i]
				cmd.Printf("  %-32s %d uses\n", p.Title, p.UsageCount)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}
