package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/cleaningreport/internal/api"
	"github.com/vbonduro/cleaningreport/internal/api/apitest"
	"github.com/vbonduro/cleaningreport/internal/domain"
)

func newClient(t *testing.T) (*api.Client, *apitest.Backend) {
	t.Helper()
	backend := apitest.NewBackend(t)
	return api.NewClient(backend.URL()), backend
}

func TestReportLifecycle(t *testing.T) {
	client, _ := newClient(t)
	ctx := context.Background()

	created, err := client.CreateReport(ctx, domain.Report{
		Date:      "2025-03-01",
		StaffName: "Ana",
		Summary:   "Full clean",
		Areas:     json.RawMessage(`[{"name":"Kitchen","done":true}]`),
		Photos:    []string{"data:image/jpeg;base64,/9j/"},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Ana", created.StaffName)
	assert.JSONEq(t, `[{"name":"Kitchen","done":true}]`, string(created.Areas))

	reports, err := client.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, created.ID, reports[0].ID)
	assert.Equal(t, "Full clean", reports[0].Summary)

	updated, err := client.UpdateReport(ctx, created.ID, domain.Report{
		Date:      "2025-03-01",
		StaffName: "Ana",
		Summary:   "Deep clean",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	reports, err = client.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "Deep clean", reports[0].Summary)

	ack, err := client.DeleteReport(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, ack.Message)

	reports, err = client.ListReports(ctx)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestUpdateUnknownIDPropagatesError(t *testing.T) {
	client, _ := newClient(t)

	_, err := client.UpdateInvoice(context.Background(), 42, domain.Invoice{ClientName: "Acme"})

	require.Error(t, err)
	assert.Equal(t, "not found", err.Error())
}

func TestDeleteRemovesOnlyTarget(t *testing.T) {
	client, _ := newClient(t)
	ctx := context.Background()

	first, err := client.CreateInvoice(ctx, domain.Invoice{ClientName: "Acme", PaymentMethod: domain.PaymentCash})
	require.NoError(t, err)
	second, err := client.CreateInvoice(ctx, domain.Invoice{ClientName: "Globex", PaymentMethod: domain.PaymentBank})
	require.NoError(t, err)

	_, err = client.DeleteInvoice(ctx, first.ID)
	require.NoError(t, err)

	invoices, err := client.ListInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, second.ID, invoices[0].ID)
}

func TestBankAccountPathEscaping(t *testing.T) {
	client, backend := newClient(t)
	ctx := context.Background()

	created, err := client.CreateBankAccount(ctx, domain.BankAccount{
		ID:            "main account",
		BankName:      "Monzo",
		AccountName:   "Sparkle Ltd",
		SortCode:      "04-00-04",
		AccountNumber: "12345678",
	})
	require.NoError(t, err)
	assert.Equal(t, "main account", created.ID)

	updated, err := client.UpdateBankAccount(ctx, created.ID, domain.BankAccount{BankName: "Starling"})
	require.NoError(t, err)
	assert.Equal(t, "Starling", updated.BankName)

	_, err = client.DeleteBankAccount(ctx, created.ID)
	require.NoError(t, err)

	assert.Contains(t, backend.Requests(), "PUT /api/bank-accounts/main account")
}

func TestPresetCreateAndDelete(t *testing.T) {
	client, _ := newClient(t)
	ctx := context.Background()

	preset, err := client.CreatePreset(ctx, domain.Preset{
		SiteName: "Office",
		Sections: json.RawMessage(`[{"title":"Desks"}]`),
	})
	require.NoError(t, err)
	assert.Equal(t, "Office", preset.SiteName)

	presets, err := client.ListPresets(ctx)
	require.NoError(t, err)
	require.Len(t, presets, 1)

	_, err = client.DeletePreset(ctx, preset.ID)
	require.NoError(t, err)

	presets, err = client.ListPresets(ctx)
	require.NoError(t, err)
	assert.Empty(t, presets)
}

func TestDeleteUnknownIDSurfacesBackendError(t *testing.T) {
	client, _ := newClient(t)

	_, err := client.DeletePreset(context.Background(), 7)

	var httpErr *api.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
}

func TestLoadAll(t *testing.T) {
	client, _ := newClient(t)
	ctx := context.Background()

	_, err := client.CreateReport(ctx, domain.Report{Summary: "one"})
	require.NoError(t, err)
	_, err = client.CreateBankAccount(ctx, domain.BankAccount{BankName: "Monzo"})
	require.NoError(t, err)

	data, err := client.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, data.Reports, 1)
	assert.Len(t, data.BankAccounts, 1)
	assert.NotNil(t, data.Invoices)
	assert.Empty(t, data.Invoices)
	assert.NotNil(t, data.Presets)
}

func TestLoadAllFailsAsWhole(t *testing.T) {
	client, backend := newClient(t)
	ctx := context.Background()

	_, err := client.CreateReport(ctx, domain.Report{Summary: "one"})
	require.NoError(t, err)
	_, err = client.CreateInvoice(ctx, domain.Invoice{ClientName: "Acme"})
	require.NoError(t, err)
	backend.Fail("GET /api/bank-accounts", http.StatusInternalServerError)

	data, err := client.LoadAll(ctx)

	require.Error(t, err)
	assert.Nil(t, data)
	assert.Equal(t, "injected failure", err.Error())
}

func TestSyncReturnsDataset(t *testing.T) {
	client, backend := newClient(t)

	data, err := client.Sync(context.Background(), domain.SyncPayload{
		Reports: json.RawMessage(`[{"id":1,"summary":"legacy"}]`),
	})

	require.NoError(t, err)
	require.Len(t, data.Reports, 1)
	assert.Equal(t, "legacy", data.Reports[0].Summary)
	assert.NotNil(t, data.Presets)

	bodies := backend.SyncBodies()
	require.Len(t, bodies, 1)
	assert.JSONEq(t, `{"reports":[{"id":1,"summary":"legacy"}]}`, string(bodies[0]))
}
