package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/pennywise/internal/category"
	"github.com/Veraticus/pennywise/internal/common"
	"github.com/Veraticus/pennywise/internal/config"
	"github.com/Veraticus/pennywise/internal/ledger"
	"github.com/Veraticus/pennywise/internal/storage"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

// appFs is the filesystem every command works against.
var appFs = afero.NewOsFs()

// loadConfig resolves and validates the configuration bound to viper.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, common.NewUserError("Invalid configuration", err)
	}
	return cfg, nil
}

// initStorage opens the ledger file store with proper path expansion.
func initStorage(cfg *config.Config) *storage.FileStore {
	slog.Debug("using ledger file", "path", cfg.LedgerPath)
	return storage.NewFileStore(appFs, cfg.LedgerPath)
}

// loadCategories returns the configured category hierarchy, or the built-in
// one when no file is set.
func loadCategories(cfg *config.Config) (*category.Tree, error) {
	if cfg.CategoriesFile == "" {
		return category.Default(), nil
	}

	tree, err := category.Load(appFs, cfg.CategoriesFile)
	if err != nil {
		return nil, common.NewUserError(
			fmt.Sprintf("Could not load categories from %s", cfg.CategoriesFile), err)
	}
	common.LogDebug("loaded categories", common.Fields{"file": cfg.CategoriesFile, "count": tree.Len()})
	return tree, nil
}

// loadLedger reads the stored ledger. firstRun reports that no ledger file
// existed yet, in which case an empty ledger is returned.
func loadLedger(ctx context.Context, store *storage.FileStore) (l *ledger.Ledger, firstRun bool, err error) {
	l, err = store.Load(ctx)
	switch {
	case errors.Is(err, common.ErrNoLedger):
		return ledger.New(0, nil), true, nil
	case errors.Is(err, common.ErrCorruptLedger):
		return nil, false, common.NewUserError(
			fmt.Sprintf("The ledger file %s was corrupted and has been reset. Please start again.", store.Path()), err)
	case err != nil:
		return nil, false, fmt.Errorf("failed to load ledger: %w", err)
	}
	return l, false, nil
}

// app holds what a ledger command needs once configuration is resolved.
type app struct {
	store      *storage.FileStore
	categories *category.Tree
	ledger     *ledger.Ledger
	firstRun   bool
}

// setup loads configuration, the category hierarchy and the stored ledger.
func setup(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	categories, err := loadCategories(cfg)
	if err != nil {
		return nil, err
	}

	store := initStorage(cfg)
	l, firstRun, err := loadLedger(ctx, store)
	if err != nil {
		return nil, err
	}

	return &app{
		store:      store,
		categories: categories,
		ledger:     l,
		firstRun:   firstRun,
	}, nil
}
