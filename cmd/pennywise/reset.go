package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/pennywise/internal/cli"
	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every record and the stored balance",
		Long: `Reset removes the ledger file. The next session starts from scratch and asks
for your current amount of money again.

This is a destructive operation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			a, err := setup(ctx)
			if err != nil {
				return err
			}

			if a.firstRun {
				fmt.Fprintln(out, cli.FormatInfo("No ledger found. Nothing to reset."))
				return nil
			}

			// Confirm with user unless --force is used
			if !force {
				fmt.Fprintf(out, "This will delete %d record(s) and a balance of %d dollars.\n", a.ledger.Len(), a.ledger.Balance())
				fmt.Fprint(out, cli.FormatPrompt("Are you sure you want to continue? [y/N]:"))

				response, err := cli.NewLineReader(cmd.InOrStdin()).ReadLine(ctx)
				if err != nil {
					fmt.Fprintln(out)
					response = ""
				}
				if !strings.EqualFold(response, "y") {
					fmt.Fprintln(out, "Reset canceled.")
					return nil
				}
			}

			a.ledger.Reset()
			if err := a.store.Reset(ctx); err != nil {
				return fmt.Errorf("failed to reset ledger: %w", err)
			}

			fmt.Fprintln(out, cli.FormatSuccess("Ledger reset. Run 'pennywise' to start again."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
