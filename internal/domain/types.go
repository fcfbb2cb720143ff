package domain

import "encoding/json"

// Report is a cleaning visit write-up. Areas is owned by the UI and passed
// through untouched; Photos holds image data URLs.
type Report struct {
	ID        int64           `json:"id,omitempty"`
	Date      string          `json:"date"`
	StaffName string          `json:"staffName"`
	Summary   string          `json:"summary"`
	Notes     string          `json:"notes"`
	Areas     json.RawMessage `json:"areas,omitempty"`
	Photos    []string        `json:"photos,omitempty"`
}

func (r Report) Key() int64 { return r.ID }

type Invoice struct {
	ID            int64           `json:"id,omitempty"`
	Date          string          `json:"date"`
	ClientName    string          `json:"clientName"`
	ClientAddress string          `json:"clientAddress"`
	Items         json.RawMessage `json:"items,omitempty"`
	PaymentMethod string          `json:"paymentMethod"`
	BankAccountID *string         `json:"bankAccountId"`
	Notes         string          `json:"notes"`
}

func (i Invoice) Key() int64 { return i.ID }

// Payment methods accepted by the backend.
const (
	PaymentCash = "cash"
	PaymentBank = "bank"
)

// BankAccount IDs are free-form strings chosen when the account is first
// stored by the backend.
type BankAccount struct {
	ID            string  `json:"id,omitempty"`
	BankName      string  `json:"bankName"`
	AccountName   string  `json:"accountName"`
	SortCode      string  `json:"sortCode"`
	AccountNumber string  `json:"accountNumber"`
	IBAN          *string `json:"iban"`
	ReferenceNote *string `json:"referenceNote"`
}

func (a BankAccount) Key() string { return a.ID }

// Preset is a reusable site template used to pre-fill new reports.
type Preset struct {
	ID       int64           `json:"id,omitempty"`
	SiteName string          `json:"siteName"`
	Sections json.RawMessage `json:"sections,omitempty"`
}

func (p Preset) Key() int64 { return p.ID }

// Dataset is every collection the application works with. It is returned
// by the bulk loader and by the sync endpoint.
type Dataset struct {
	Reports      []Report      `json:"reports"`
	Invoices     []Invoice     `json:"invoices"`
	BankAccounts []BankAccount `json:"bankAccounts"`
	Presets      []Preset      `json:"presets"`
}

// Normalize replaces nil collections with empty ones.
func (d *Dataset) Normalize() {
	if d.Reports == nil {
		d.Reports = []Report{}
	}
	if d.Invoices == nil {
		d.Invoices = []Invoice{}
	}
	if d.BankAccounts == nil {
		d.BankAccounts = []BankAccount{}
	}
	if d.Presets == nil {
		d.Presets = []Preset{}
	}
}

// SyncPayload carries legacy locally stored collections verbatim. Only
// members that had stored data are set.
type SyncPayload struct {
	Reports      json.RawMessage `json:"reports,omitempty"`
	Invoices     json.RawMessage `json:"invoices,omitempty"`
	BankAccounts json.RawMessage `json:"bankAccounts,omitempty"`
	Presets      json.RawMessage `json:"presets,omitempty"`
}

// Empty reports whether no collection is set.
func (p SyncPayload) Empty() bool {
	return len(p.Reports) == 0 && len(p.Invoices) == 0 && len(p.BankAccounts) == 0 && len(p.Presets) == 0
}
