// Package localstore replaces browser local storage with an injectable
// key-value store so legacy records can be read and cleared outside a
// browser.
package localstore

import "context"

// Keys written by the legacy application.
const (
	ReportsKey      = "cleaning_reports_v1"
	InvoicesKey     = "cleaning_invoices_v1"
	BankAccountsKey = "bank_accounts_v1"
	PresetsKey      = "cleaning_presets_v1"
)

// LegacyKeys lists every key the migration reads and clears.
var LegacyKeys = []string{ReportsKey, InvoicesKey, BankAccountsKey, PresetsKey}

type Store interface {
	// Get returns ok=false when key has never been set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Remove is a no-op for missing keys.
	Remove(ctx context.Context, key string) error
}
