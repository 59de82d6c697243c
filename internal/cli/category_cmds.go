package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/domain/category"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
}

var (
	catAddName        string
	catAddDescription string
	catAddIcon        string
	catAddColor       string
)

var categoryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a category",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := categorySvc.Save(cmd.Context(), category.SaveRequest{
			Name:        catAddName,
			Description: catAddDescription,
			Icon:        catAddIcon,
			Color:       catAddColor,
		})
		if err != nil {
			return err
		}
		cmd.Printf("Added category %q (%s)\n", c.Name, c.ID)
		return nil
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories with prompt counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := categorySvc.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, c := range categories {
			prompts, err := promptSvc.ListByCategory(cmd.Context(), c.ID)
			if err != nil {
				return err
			}
			line := fmt.Sprintf("%s  %s (%d prompts)", c.ID, c.Name, len(prompts))
			if c.Description != "" {
				line += "  - " + c.Description
			}
			cmd.Println(line)
		}
		return nil
	},
}

var categoryRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a category; its prompts become uncategorized",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := categorySvc.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !confirm(cmd, fmt.Sprintf("Delete category %q? Its prompts will be kept without a category.", c.Name)) {
			cmd.Println("Aborted.")
			return nil
		}
		if err := categorySvc.Delete(cmd.Context(), c.ID); err != nil {
			return err
		}
		cmd.Printf("Deleted category %q\n", c.Name)
		return nil
	},
}

func init() {
	categoryAddCmd.Flags().StringVarP(&catAddName, "name", "n", "", "category name (required)")
	categoryAddCmd.Flags().StringVarP(&catAddDescription, "description", "d", "", "optional description")
	categoryAddCmd.Flags().StringVar(&catAddIcon, "icon", "", "optional icon identifier")
	categoryAddCmd.Flags().StringVar(&catAddColor, "color", "", "optional display color")

	categoryCmd.AddCommand(categoryAddCmd, categoryListCmd, categoryRmCmd)
	rootCmd.AddCommand(categoryCmd)
}
