package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/Veraticus/pennywise/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrNilParameter  = errors.New("parameter cannot be nil")
	ErrInvalidRecord = errors.New("invalid record")
)

// validateContext ensures the context is usable.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return ctx.Err()
}

// validateRecord ensures a record survives a round trip through the
// space separated file format.
func validateRecord(rec model.Record) error {
	if strings.TrimSpace(rec.Description) == "" {
		return fmt.Errorf("%w: description cannot be empty", ErrInvalidRecord)
	}
	if containsSpace(rec.Description) {
		return fmt.Errorf("%w: description %q contains whitespace", ErrInvalidRecord, rec.Description)
	}
	if containsSpace(rec.Category) {
		return fmt.Errorf("%w: category %q contains whitespace", ErrInvalidRecord, rec.Category)
	}
	return nil
}

// containsSpace matches the separators strings.Fields splits on when loading.
func containsSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}
