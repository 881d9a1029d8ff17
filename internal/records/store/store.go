// Package store keeps the record collections in process memory. It stands in
// for the SQL database a production deployment would use: each collection is
// the equivalent of a table, guarded by a single mutex so that mutations are
// single-writer and reads always observe a fully-applied state.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"invoicedash/internal/records"
	"invoicedash/internal/seed"
)

type Store struct {
	mu        sync.RWMutex
	invoices  []records.Invoice
	customers []records.Customer
	revenue   []records.Revenue
	users     []records.User
}

// New builds a store populated with the given seed data. Invoices without an
// id are assigned one, the same way CreateInvoice does.
func New(data seed.Data) *Store {
	s := &Store{
		invoices:  make([]records.Invoice, len(data.Invoices)),
		customers: make([]records.Customer, len(data.Customers)),
		revenue:   make([]records.Revenue, len(data.Revenue)),
		users:     make([]records.User, len(data.Users)),
	}

	copy(s.customers, data.Customers)
	copy(s.revenue, data.Revenue)
	copy(s.users, data.Users)

	for i, inv := range data.Invoices {
		if inv.ID == "" {
			inv.ID = uuid.NewString()
		}

		s.invoices[i] = inv
	}

	return s
}

// ListInvoices returns a snapshot copy of the invoice collection in
// insertion order.
func (s *Store) ListInvoices(ctx context.Context) ([]records.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]records.Invoice, len(s.invoices))
	copy(out, s.invoices)

	return out, nil
}

func (s *Store) GetInvoice(ctx context.Context, id string) (*records.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, inv := range s.invoices {
		if inv.ID == id {
			found := inv
			return &found, nil
		}
	}

	return nil, records.ErrNotFound
}

// CreateInvoice appends the invoice to the collection, assigning it a fresh
// id when it has none.
func (s *Store) CreateInvoice(ctx context.Context, inv *records.Invoice) error {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.invoices = append(s.invoices, *inv)

	return nil
}

// UpdateInvoice replaces the customer, amount and status of the invoice with
// the given id. The stored date is left untouched.
func (s *Store) UpdateInvoice(ctx context.Context, id string, upd records.InvoiceUpdate) (*records.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.invoices {
		if s.invoices[i].ID != id {
			continue
		}

		s.invoices[i].CustomerID = upd.CustomerID
		s.invoices[i].Amount = upd.Amount
		s.invoices[i].Status = upd.Status

		updated := s.invoices[i]

		return &updated, nil
	}

	return nil, fmt.Errorf("updating invoice %s: %w", id, records.ErrNotFound)
}

func (s *Store) DeleteInvoice(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.invoices {
		if s.invoices[i].ID != id {
			continue
		}

		s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)

		return nil
	}

	return fmt.Errorf("deleting invoice %s: %w", id, records.ErrNotFound)
}

// ListCustomers returns a snapshot copy of the customer collection.
func (s *Store) ListCustomers(ctx context.Context) ([]records.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]records.Customer, len(s.customers))
	copy(out, s.customers)

	return out, nil
}

// ListRevenue returns a snapshot copy of the revenue series.
func (s *Store) ListRevenue(ctx context.Context) ([]records.Revenue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]records.Revenue, len(s.revenue))
	copy(out, s.revenue)

	return out, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*records.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}

	return nil, records.ErrNotFound
}
