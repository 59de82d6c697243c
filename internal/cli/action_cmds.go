package cli

import (
	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy [id]",
	Short: "Copy a prompt's content to the system clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := actionSvc.CopyToClipboard(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		cmd.Printf("Copied %q to clipboard\n", p.Title)
		return nil
	},
}

var sendCmd = &cobra.Command{
	Use:   "send [id]",
	Short: "Send a prompt to the configured chat integration",
	Long: `Send delivers a prompt's content to the first available chat
integration. When no integration is available the content goes to the
clipboard instead so it can be pasted by hand.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, outcome, err := actionSvc.SendToChat(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if outcome.Delivered {
			cmd.Printf("Sent %q via %s\n", p.Title, outcome.Method)
		} else {
			cmd.Printf("No chat integration available; copied %q to clipboard\n", p.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd, sendCmd)
}
