// Package session is the integration layer between the API client and a
// front end: it applies successful results to State and turns failures into
// user-facing alerts.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vbonduro/cleaningreport/internal/api"
	"github.com/vbonduro/cleaningreport/internal/domain"
)

// backend is the subset of api.Client that Operations requires.
type backend interface {
	CreateReport(ctx context.Context, report domain.Report) (*domain.Report, error)
	UpdateReport(ctx context.Context, id int64, report domain.Report) (*domain.Report, error)
	DeleteReport(ctx context.Context, id int64) (*api.Ack, error)

	CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, id int64, invoice domain.Invoice) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, id int64) (*api.Ack, error)

	CreateBankAccount(ctx context.Context, account domain.BankAccount) (*domain.BankAccount, error)
	UpdateBankAccount(ctx context.Context, id string, account domain.BankAccount) (*domain.BankAccount, error)
	DeleteBankAccount(ctx context.Context, id string) (*api.Ack, error)

	CreatePreset(ctx context.Context, preset domain.Preset) (*domain.Preset, error)
	DeletePreset(ctx context.Context, id int64) (*api.Ack, error)

	LoadAll(ctx context.Context) (*domain.Dataset, error)
}

// migrator is the subset of migration.Migrator that Operations requires.
type migrator interface {
	Migrate(ctx context.Context) (*domain.Dataset, error)
}

type Operations struct {
	backend  backend
	migrator migrator
	state    *State
	alerter  Alerter
	logger   *slog.Logger
}

func NewOperations(b backend, m migrator, state *State, alerter Alerter, logger *slog.Logger) *Operations {
	return &Operations{
		backend:  b,
		migrator: m,
		state:    state,
		alerter:  alerter,
		logger:   logger.With("component", "session"),
	}
}

func (o *Operations) State() *State {
	return o.state
}

// Initialize migrates any legacy local data, then loads every collection
// into State. State is untouched when either step fails, and the step's
// error is returned as is so its message can be shown to the user.
func (o *Operations) Initialize(ctx context.Context) error {
	if _, err := o.migrator.Migrate(ctx); err != nil {
		o.logger.Error("failed to initialize data", "step", "migrate", "error", err)
		return err
	}

	data, err := o.backend.LoadAll(ctx)
	if err != nil {
		o.logger.Error("failed to initialize data", "step", "load", "error", err)
		return err
	}

	o.state.Replace(data)
	o.logger.Info("data loaded",
		"reports", len(data.Reports),
		"invoices", len(data.Invoices),
		"bank_accounts", len(data.BankAccounts),
		"presets", len(data.Presets),
	)
	return nil
}

// fail logs err, alerts the user and hands err back for the caller.
func (o *Operations) fail(action, resource string, err error) error {
	o.logger.Error("operation failed", "action", action, "resource", resource, "error", err)
	verb := action
	if action == "create" {
		verb = "save"
	}
	o.alerter.Alert(fmt.Sprintf("Failed to %s %s. Please try again.", verb, resource))
	return err
}

// Reports

func (o *Operations) CreateReport(ctx context.Context, report domain.Report) (*domain.Report, error) {
	created, err := o.backend.CreateReport(ctx, report)
	if err != nil {
		return nil, o.fail("create", "report", err)
	}
	update(o.state, &o.state.reports, prepend(*created))
	return created, nil
}

func (o *Operations) UpdateReport(ctx context.Context, id int64, report domain.Report) (*domain.Report, error) {
	updated, err := o.backend.UpdateReport(ctx, id, report)
	if err != nil {
		return nil, o.fail("update", "report", err)
	}
	update(o.state, &o.state.reports, replaceByID(id, *updated))
	return updated, nil
}

func (o *Operations) DeleteReport(ctx context.Context, id int64) error {
	if _, err := o.backend.DeleteReport(ctx, id); err != nil {
		return o.fail("delete", "report", err)
	}
	update(o.state, &o.state.reports, removeByID[int64, domain.Report](id))
	return nil
}

// Invoices

func (o *Operations) CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	created, err := o.backend.CreateInvoice(ctx, invoice)
	if err != nil {
		return nil, o.fail("create", "invoice", err)
	}
	update(o.state, &o.state.invoices, prepend(*created))
	return created, nil
}

func (o *Operations) UpdateInvoice(ctx context.Context, id int64, invoice domain.Invoice) (*domain.Invoice, error) {
	updated, err := o.backend.UpdateInvoice(ctx, id, invoice)
	if err != nil {
		return nil, o.fail("update", "invoice", err)
	}
	update(o.state, &o.state.invoices, replaceByID(id, *updated))
	return updated, nil
}

func (o *Operations) DeleteInvoice(ctx context.Context, id int64) error {
	if _, err := o.backend.DeleteInvoice(ctx, id); err != nil {
		return o.fail("delete", "invoice", err)
	}
	update(o.state, &o.state.invoices, removeByID[int64, domain.Invoice](id))
	return nil
}

// Bank accounts are listed in creation order, so new ones are appended.

func (o *Operations) CreateBankAccount(ctx context.Context, account domain.BankAccount) (*domain.BankAccount, error) {
	created, err := o.backend.CreateBankAccount(ctx, account)
	if err != nil {
		return nil, o.fail("create", "bank account", err)
	}
	update(o.state, &o.state.bankAccounts, appendItem(*created))
	return created, nil
}

func (o *Operations) UpdateBankAccount(ctx context.Context, id string, account domain.BankAccount) (*domain.BankAccount, error) {
	updated, err := o.backend.UpdateBankAccount(ctx, id, account)
	if err != nil {
		return nil, o.fail("update", "bank account", err)
	}
	update(o.state, &o.state.bankAccounts, replaceByID(id, *updated))
	return updated, nil
}

func (o *Operations) DeleteBankAccount(ctx context.Context, id string) error {
	if _, err := o.backend.DeleteBankAccount(ctx, id); err != nil {
		return o.fail("delete", "bank account", err)
	}
	update(o.state, &o.state.bankAccounts, removeByID[string, domain.BankAccount](id))
	return nil
}

// Presets

func (o *Operations) CreatePreset(ctx context.Context, preset domain.Preset) (*domain.Preset, error) {
	created, err := o.backend.CreatePreset(ctx, preset)
	if err != nil {
		return nil, o.fail("create", "preset", err)
	}
	update(o.state, &o.state.presets, appendItem(*created))
	return created, nil
}

func (o *Operations) DeletePreset(ctx context.Context, id int64) error {
	if _, err := o.backend.DeletePreset(ctx, id); err != nil {
		return o.fail("delete", "preset", err)
	}
	update(o.state, &o.state.presets, removeByID[int64, domain.Preset](id))
	return nil
}
