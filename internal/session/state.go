package session

import (
	"slices"
	"sync"

	"github.com/vbonduro/cleaningreport/internal/domain"
)

// State is the in-memory copy of every collection the UI renders.
type State struct {
	mu           sync.RWMutex
	reports      []domain.Report
	invoices     []domain.Invoice
	bankAccounts []domain.BankAccount
	presets      []domain.Preset
}

func NewState() *State {
	return &State{}
}

// Replace swaps every collection for the contents of data.
func (s *State) Replace(data *domain.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = slices.Clone(data.Reports)
	s.invoices = slices.Clone(data.Invoices)
	s.bankAccounts = slices.Clone(data.BankAccounts)
	s.presets = slices.Clone(data.Presets)
}

func (s *State) Reports() []domain.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.reports)
}

func (s *State) Invoices() []domain.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.invoices)
}

func (s *State) BankAccounts() []domain.BankAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.bankAccounts)
}

func (s *State) Presets() []domain.Preset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.presets)
}

// update runs fn on one collection under the write lock.
func update[T any](s *State, list *[]T, fn func([]T) []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*list = fn(*list)
}

type keyed[K comparable] interface {
	Key() K
}

func prepend[T any](item T) func([]T) []T {
	return func(list []T) []T { return append([]T{item}, list...) }
}

func appendItem[T any](item T) func([]T) []T {
	return func(list []T) []T { return append(list, item) }
}

func replaceByID[K comparable, T keyed[K]](id K, item T) func([]T) []T {
	return func(list []T) []T {
		out := make([]T, len(list))
		for i, existing := range list {
			if existing.Key() == id {
				out[i] = item
			} else {
				out[i] = existing
			}
		}
		return out
	}
}

func removeByID[K comparable, T keyed[K]](id K) func([]T) []T {
	return func(list []T) []T {
		return slices.DeleteFunc(slices.Clone(list), func(existing T) bool {
			return existing.Key() == id
		})
	}
}
