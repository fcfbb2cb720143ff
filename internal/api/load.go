package api

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vbonduro/cleaningreport/internal/domain"
)

// LoadAll fetches every collection concurrently. It fails as a whole with
// the first list call's error, unwrapped; the remaining calls are cancelled.
func (c *Client) LoadAll(ctx context.Context) (*domain.Dataset, error) {
	var data domain.Dataset
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		reports, err := c.ListReports(gctx)
		data.Reports = reports
		return err
	})
	g.Go(func() error {
		invoices, err := c.ListInvoices(gctx)
		data.Invoices = invoices
		return err
	})
	g.Go(func() error {
		accounts, err := c.ListBankAccounts(gctx)
		data.BankAccounts = accounts
		return err
	})
	g.Go(func() error {
		presets, err := c.ListPresets(gctx)
		data.Presets = presets
		return err
	})

	if err := g.Wait(); err != nil {
		c.logger.Error("failed to load data from backend", "error", err)
		return nil, err
	}

	data.Normalize()
	return &data, nil
}
