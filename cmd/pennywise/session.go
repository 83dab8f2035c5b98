package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/pennywise/internal/cli"
	"github.com/spf13/cobra"
)

func sessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Start an interactive ledger session",
		Long: `Start an interactive session for adding, viewing, deleting and finding records.

The ledger is saved when you type 'exit' or close the input. An interrupted
session (Ctrl+C) is not saved.`,
		Args: cobra.NoArgs,
		RunE: runSession,
	}
}

func runSession(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	a, err := setup(cmd.Context())
	if err != nil {
		return err
	}

	if a.firstRun {
		fmt.Fprintln(out, cli.FormatInfo("Welcome! It looks like this is your first time using the program."))
	} else {
		fmt.Fprintln(out, cli.FormatSuccess("Welcome back!"))
	}

	handler := cli.NewInterruptHandler(out)
	ctx, stop := handler.HandleInterrupts(cmd.Context())
	defer stop()

	session := cli.NewSession(cmd.InOrStdin(), out, a.ledger, a.categories)
	if err := session.InitializeBalance(ctx); err != nil {
		return sessionEnded(handler, err)
	}
	if err := session.Run(ctx); err != nil {
		return sessionEnded(handler, err)
	}

	// The signal may arrive after the last read returned.
	if handler.WasInterrupted() {
		return nil
	}

	if err := a.store.Save(ctx, a.ledger); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	slog.Debug("ledger saved", "path", a.store.Path(), "records", a.ledger.Len())
	fmt.Fprintln(out, cli.FormatSuccess("Records saved. Bye!"))
	return nil
}

// sessionEnded turns an error from a session that stopped early into a clean
// exit when the user interrupted it or closed the input.
func sessionEnded(handler *cli.InterruptHandler, err error) error {
	if handler.WasInterrupted() && errors.Is(err, cli.ErrInputCancelled) {
		return nil
	}
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
