// Package storage provides the data persistence layer for the ledger.
//
// A ledger is stored as plain text: the balance on the first line, then one
// record per line as "category description amount". Lines written before
// categories existed hold just "description amount" and load as records
// without a category.
package storage

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Veraticus/pennywise/internal/common"
	"github.com/Veraticus/pennywise/internal/ledger"
	"github.com/Veraticus/pennywise/internal/model"
	"github.com/spf13/afero"
)

// FileStore reads and writes a ledger file.
type FileStore struct {
	fs   afero.Fs
	path string
}

// NewFileStore creates a store for the ledger file at path on fs.
func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{
		fs:   fs,
		path: path,
	}
}

// Path returns the location of the ledger file.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the ledger file.
//
// A missing file returns common.ErrNoLedger. A file that cannot be interpreted
// is removed and common.ErrCorruptLedger is returned, so the next session
// starts from an empty ledger.
func (s *FileStore) Load(ctx context.Context) (*ledger.Ledger, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, common.ErrNoLedger
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}

	l, parseErr := parse(data)
	if parseErr != nil {
		slog.Warn("ledger file is corrupted, resetting", "path", s.path, "error", parseErr)
		if err := s.Reset(ctx); err != nil {
			return nil, fmt.Errorf("%w (reset failed: %v)", parseErr, err)
		}
		return nil, parseErr
	}

	slog.Debug("loaded ledger", "path", s.path, "records", l.Len(), "balance", l.Balance())
	return l, nil
}

func parse(data []byte) (*ledger.Ledger, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) == "" {
		return nil, fmt.Errorf("%w: the balance line is empty", common.ErrCorruptLedger)
	}

	balance, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("%w: first line %q is not an amount of money", common.ErrCorruptLedger, scanner.Text())
	}

	var records []model.Record
	for lineNo := 2; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return nil, fmt.Errorf("%w: line %d is empty", common.ErrCorruptLedger, lineNo)
		}

		rec, err := parseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", common.ErrCorruptLedger, lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCorruptLedger, err)
	}

	return ledger.New(balance, records), nil
}

func parseRecord(line string) (model.Record, error) {
	fields := strings.Fields(line)

	var rec model.Record
	switch len(fields) {
	case 3:
		rec.Category, rec.Description = fields[0], fields[1]
	case 2:
		rec.Description = fields[0]
	default:
		return rec, fmt.Errorf("%q cannot be interpreted as a record", line)
	}

	amount, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return rec, fmt.Errorf("%q has an invalid amount", line)
	}
	rec.Amount = amount

	return rec, nil
}

// Save writes the balance and every record, replacing the previous file.
func (s *FileStore) Save(ctx context.Context, l *ledger.Ledger) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if l == nil {
		return fmt.Errorf("%w: ledger", ErrNilParameter)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d\n", l.Balance())
	for _, rec := range l.Records() {
		if err := validateRecord(rec); err != nil {
			return err
		}
		buf.WriteString(rec.String())
		buf.WriteByte('\n')
	}

	if err := afero.WriteFile(s.fs, s.path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write ledger file: %w", err)
	}

	slog.Debug("saved ledger", "path", s.path, "records", l.Len())
	return nil
}

// Reset deletes the ledger file. A missing file is not an error.
func (s *FileStore) Reset(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if err := s.fs.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete ledger file: %w", err)
	}
	return nil
}
