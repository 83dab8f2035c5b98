// Package ledger owns the balance and the ordered record list of a session and
// answers category queries over them.
package ledger

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/Veraticus/pennywise/internal/common"
	"github.com/Veraticus/pennywise/internal/model"
	"go.uber.org/multierr"
)

// Validator reports whether a category name exists.
type Validator interface {
	IsValid(name string) bool
}

// Ledger holds the balance and the records in insertion order.
// Record ids are 1-based positions and shift when a record is deleted.
type Ledger struct {
	records []model.Record
	balance int
}

// New creates a ledger with the given balance and records.
func New(balance int, records []model.Record) *Ledger {
	return &Ledger{
		balance: balance,
		records: append([]model.Record(nil), records...),
	}
}

// Balance returns the current balance.
func (l *Ledger) Balance() int {
	return l.balance
}

// SetBalance replaces the balance, used when the user states their starting money.
func (l *Ledger) SetBalance(balance int) {
	l.balance = balance
}

// Records returns a copy of the records in display order.
func (l *Ledger) Records() []model.Record {
	return append([]model.Record(nil), l.records...)
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}

// Reset clears the balance and every record.
func (l *Ledger) Reset() {
	l.balance = 0
	l.records = nil
}

// AddRecord appends a single record after checking its category. Records
// without a category are accepted as-is.
func (l *Ledger) AddRecord(categories Validator, rec model.Record) error {
	if rec.HasCategory() && !categories.IsValid(rec.Category) {
		return fmt.Errorf("%w: %q", common.ErrUnknownCategory, rec.Category)
	}
	if rec.Description == "" {
		return fmt.Errorf("%w: description is required", common.ErrInvalidRecordFormat)
	}
	if strings.IndexFunc(rec.Description, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: description %q contains whitespace", common.ErrInvalidRecordFormat, rec.Description)
	}

	l.records = append(l.records, rec)
	l.balance += rec.Amount

	slog.Debug("added record", "category", rec.Category, "description", rec.Description, "amount", rec.Amount)
	return nil
}

// Add parses comma separated "category description amount" entries and appends
// every valid one. Invalid entries are skipped; their errors are combined into
// the returned error and can be split with multierr.Errors.
func (l *Ledger) Add(categories Validator, input string) ([]model.Record, error) {
	var (
		added []model.Record
		errs  error
	)

	for _, entry := range strings.Split(input, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		rec, err := ParseEntry(entry)
		if err == nil {
			err = l.AddRecord(categories, rec)
		}
		if err != nil {
			errs = multierr.Append(errs, &EntryError{Entry: entry, Err: err})
			continue
		}
		added = append(added, rec)
	}

	return added, errs
}

// ParseEntry parses a single "category description amount" entry.
func ParseEntry(entry string) (model.Record, error) {
	fields := strings.Fields(entry)
	if len(fields) != 3 {
		return model.Record{}, fmt.Errorf("%w: expected category, description and amount, got %d fields", common.ErrInvalidRecordFormat, len(fields))
	}

	amount, err := strconv.Atoi(fields[2])
	if err != nil {
		return model.Record{}, fmt.Errorf("%w: %q", common.ErrInvalidAmount, fields[2])
	}

	return model.Record{
		Category:    fields[0],
		Description: fields[1],
		Amount:      amount,
	}, nil
}

// Delete removes the record with the given 1-based id and takes its amount
// back out of the balance.
func (l *Ledger) Delete(id int) (model.Record, error) {
	if id < 1 || id > len(l.records) {
		return model.Record{}, fmt.Errorf("%w: id %d", common.ErrRecordNotFound, id)
	}

	rec := l.records[id-1]
	l.records = append(l.records[:id-1], l.records[id:]...)
	l.balance -= rec.Amount

	slog.Debug("deleted record", "id", id, "category", rec.Category, "amount", rec.Amount)
	return rec, nil
}

// EntryError ties an add failure to the raw entry the user typed.
type EntryError struct {
	Err   error
	Entry string
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("record %q: %v", e.Entry, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
