package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vbonduro/cleaningreport/internal/domain"
)

const (
	reportsPath      = "/reports"
	invoicesPath     = "/invoices"
	bankAccountsPath = "/bank-accounts"
	presetsPath      = "/presets"
	syncPath         = "/sync"
)

func itemPath(collection string, id int64) string {
	return collection + "/" + strconv.FormatInt(id, 10)
}

func post(body any) *RequestOptions { return &RequestOptions{Method: http.MethodPost, Body: body} }
func put(body any) *RequestOptions  { return &RequestOptions{Method: http.MethodPut, Body: body} }

var del = &RequestOptions{Method: http.MethodDelete}

// Reports

func (c *Client) ListReports(ctx context.Context) ([]domain.Report, error) {
	var out []domain.Report
	if err := c.Request(ctx, reportsPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateReport(ctx context.Context, report domain.Report) (*domain.Report, error) {
	var out domain.Report
	if err := c.Request(ctx, reportsPath, post(report), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateReport(ctx context.Context, id int64, report domain.Report) (*domain.Report, error) {
	var out domain.Report
	if err := c.Request(ctx, itemPath(reportsPath, id), put(report), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteReport(ctx context.Context, id int64) (*Ack, error) {
	var out Ack
	if err := c.Request(ctx, itemPath(reportsPath, id), del, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Invoices

func (c *Client) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var out []domain.Invoice
	if err := c.Request(ctx, invoicesPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	var out domain.Invoice
	if err := c.Request(ctx, invoicesPath, post(invoice), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateInvoice(ctx context.Context, id int64, invoice domain.Invoice) (*domain.Invoice, error) {
	var out domain.Invoice
	if err := c.Request(ctx, itemPath(invoicesPath, id), put(invoice), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteInvoice(ctx context.Context, id int64) (*Ack, error) {
	var out Ack
	if err := c.Request(ctx, itemPath(invoicesPath, id), del, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Bank accounts are keyed by string IDs, which may need escaping.

func bankAccountPath(id string) string {
	return bankAccountsPath + "/" + url.PathEscape(id)
}

func (c *Client) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	var out []domain.BankAccount
	if err := c.Request(ctx, bankAccountsPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateBankAccount(ctx context.Context, account domain.BankAccount) (*domain.BankAccount, error) {
	var out domain.BankAccount
	if err := c.Request(ctx, bankAccountsPath, post(account), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBankAccount(ctx context.Context, id string, account domain.BankAccount) (*domain.BankAccount, error) {
	var out domain.BankAccount
	if err := c.Request(ctx, bankAccountPath(id), put(account), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBankAccount(ctx context.Context, id string) (*Ack, error) {
	var out Ack
	if err := c.Request(ctx, bankAccountPath(id), del, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Presets have no update endpoint.

func (c *Client) ListPresets(ctx context.Context) ([]domain.Preset, error) {
	var out []domain.Preset
	if err := c.Request(ctx, presetsPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePreset(ctx context.Context, preset domain.Preset) (*domain.Preset, error) {
	var out domain.Preset
	if err := c.Request(ctx, presetsPath, post(preset), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePreset(ctx context.Context, id int64) (*Ack, error) {
	var out Ack
	if err := c.Request(ctx, itemPath(presetsPath, id), del, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Sync uploads legacy local collections and returns the backend's full
// dataset after the merge.
func (c *Client) Sync(ctx context.Context, payload domain.SyncPayload) (*domain.Dataset, error) {
	var out domain.Dataset
	if err := c.Request(ctx, syncPath, post(payload), &out); err != nil {
		return nil, err
	}
	out.Normalize()
	return &out, nil
}
