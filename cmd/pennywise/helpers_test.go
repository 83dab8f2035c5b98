package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Veraticus/pennywise/internal/config"
	"github.com/Veraticus/pennywise/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// setupTestEnv points every command at an in-memory ledger and a fresh
// configuration.
func setupTestEnv(t *testing.T, content string) *testutil.TestLedger {
	t.Helper()

	tl := testutil.SetupTestLedger(t, content)
	origFs := appFs
	appFs = tl.Fs

	viper.Reset()
	config.SetDefaults(viper.GetViper())
	viper.Set(config.KeyLedgerPath, tl.Path)

	t.Cleanup(func() {
		appFs = origFs
		viper.Reset()
	})
	return tl
}

// execute runs cmd with args and stdin, returning what it wrote to stdout.
func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}
