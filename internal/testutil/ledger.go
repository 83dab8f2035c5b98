// Package testutil provides test fixtures for code that works with ledger
// files. Every fixture lives on an in-memory filesystem and is discarded with
// the test.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/pennywise/internal/ledger"
	"github.com/Veraticus/pennywise/internal/storage"
	"github.com/spf13/afero"
)

// DefaultLedgerPath is where SetupTestLedger places the ledger file.
const DefaultLedgerPath = "/data/records.txt"

// SampleLedger is a small ledger file covering income, expenses and nested
// food categories.
const SampleLedger = `975
food breakfast -20
salary paycheck 1000
snack chips -5
`

// TestLedger represents a ledger file on an in-memory filesystem.
type TestLedger struct {
	Fs    afero.Fs
	Store *storage.FileStore
	t     *testing.T
	Path  string
}

// SetupTestLedger creates an in-memory filesystem holding a ledger file with
// the given content. An empty content leaves the file absent, as on a first
// run.
//
// Example:
//
//	tl := testutil.SetupTestLedger(t, testutil.SampleLedger)
//	l := tl.MustLoad()
func SetupTestLedger(t *testing.T, content string) *TestLedger {
	t.Helper()

	tl := &TestLedger{
		Fs:   afero.NewMemMapFs(),
		Path: DefaultLedgerPath,
		t:    t,
	}
	tl.Store = storage.NewFileStore(tl.Fs, tl.Path)

	if content != "" {
		tl.Write(content)
	}
	return tl
}

// Write replaces the ledger file content.
func (tl *TestLedger) Write(content string) {
	tl.t.Helper()
	if err := afero.WriteFile(tl.Fs, tl.Path, []byte(content), 0o600); err != nil {
		tl.t.Fatalf("failed to write ledger file: %v", err)
	}
}

// WriteFile places an additional file on the fixture filesystem.
func (tl *TestLedger) WriteFile(path, content string) {
	tl.t.Helper()
	if err := afero.WriteFile(tl.Fs, path, []byte(content), 0o600); err != nil {
		tl.t.Fatalf("failed to write %s: %v", path, err)
	}
}

// Contents returns the ledger file content or fails the test.
func (tl *TestLedger) Contents() string {
	tl.t.Helper()
	data, err := afero.ReadFile(tl.Fs, tl.Path)
	if err != nil {
		tl.t.Fatalf("failed to read ledger file: %v", err)
	}
	return string(data)
}

// Exists reports whether the ledger file is present.
func (tl *TestLedger) Exists() bool {
	tl.t.Helper()
	exists, err := afero.Exists(tl.Fs, tl.Path)
	if err != nil {
		tl.t.Fatalf("failed to stat ledger file: %v", err)
	}
	return exists
}

// MustLoad loads the ledger through the file store or fails the test.
func (tl *TestLedger) MustLoad() *ledger.Ledger {
	tl.t.Helper()
	l, err := tl.Store.Load(context.Background())
	if err != nil {
		tl.t.Fatalf("failed to load ledger: %v", err)
	}
	return l
}
