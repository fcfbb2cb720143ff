// Package migration moves records left in legacy local storage to the
// backend, once.
package migration

import (
	"context"
	"fmt"
	"log/slog"

	json "github.com/goccy/go-json"

	"github.com/vbonduro/cleaningreport/internal/domain"
	"github.com/vbonduro/cleaningreport/internal/localstore"
)

// syncer is the subset of api.Client that Migrator requires.
type syncer interface {
	Sync(ctx context.Context, payload domain.SyncPayload) (*domain.Dataset, error)
}

type Migrator struct {
	syncer syncer
	store  localstore.Store
	logger *slog.Logger
}

func NewMigrator(s syncer, store localstore.Store, logger *slog.Logger) *Migrator {
	return &Migrator{
		syncer: s,
		store:  store,
		logger: logger.With("component", "migration"),
	}
}

// Migrate posts every stored legacy collection to the sync endpoint and,
// only once that succeeds, clears all legacy keys. It returns nil, nil when
// there is nothing to migrate. On failure the keys are left in place so the
// next start can retry.
func (m *Migrator) Migrate(ctx context.Context) (*domain.Dataset, error) {
	payload, err := m.readPayload(ctx)
	if err != nil {
		m.logger.Error("migration failed", "error", err)
		return nil, err
	}
	if payload.Empty() {
		return nil, nil
	}

	m.logger.Info("migrating local data to backend",
		"reports", len(payload.Reports) > 0,
		"invoices", len(payload.Invoices) > 0,
		"bank_accounts", len(payload.BankAccounts) > 0,
		"presets", len(payload.Presets) > 0,
	)

	result, err := m.syncer.Sync(ctx, payload)
	if err != nil {
		m.logger.Error("migration failed", "error", err)
		return nil, err
	}

	for _, key := range localstore.LegacyKeys {
		if err := m.store.Remove(ctx, key); err != nil {
			m.logger.Error("migration failed", "error", err)
			return nil, fmt.Errorf("failed to clear local data: %w", err)
		}
	}

	m.logger.Info("migration completed")
	return result, nil
}

func (m *Migrator) readPayload(ctx context.Context) (domain.SyncPayload, error) {
	var payload domain.SyncPayload
	fields := []struct {
		key string
		set func(b []byte)
	}{
		{localstore.ReportsKey, func(b []byte) { payload.Reports = b }},
		{localstore.InvoicesKey, func(b []byte) { payload.Invoices = b }},
		{localstore.BankAccountsKey, func(b []byte) { payload.BankAccounts = b }},
		{localstore.PresetsKey, func(b []byte) { payload.Presets = b }},
	}

	for _, f := range fields {
		value, ok, err := m.store.Get(ctx, f.key)
		if err != nil {
			return payload, fmt.Errorf("failed to read %s: %w", f.key, err)
		}
		if !ok || value == "" {
			continue
		}
		raw := []byte(value)
		if !json.Valid(raw) {
			return payload, fmt.Errorf("failed to parse %s: invalid JSON", f.key)
		}
		f.set(raw)
	}
	return payload, nil
}
