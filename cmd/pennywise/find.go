package main

import (
	"errors"

	"github.com/Veraticus/pennywise/internal/cli"
	"github.com/Veraticus/pennywise/internal/common"
	"github.com/spf13/cobra"
)

func findCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <category>",
		Short: "Find records under a category",
		Long: `List every record filed under a category or any of its subcategories,
together with their total amount.

Examples:
  # Everything spent on food, including meals, snacks and drinks
  pennywise find food

  # Only railway tickets
  pennywise find railway`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd.Context())
			if err != nil {
				return err
			}

			result, err := a.ledger.Find(a.categories, args[0])
			if errors.Is(err, common.ErrUnknownCategory) {
				cli.RenderUnknownCategory(cmd.OutOrStdout(), args[0])
				return nil
			}
			if err != nil {
				return err
			}

			cli.RenderFind(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
