package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicedash/internal/records"
	"invoicedash/internal/records/store"
	"invoicedash/internal/seed"
)

func seedData() seed.Data {
	return seed.Data{
		Customers: []records.Customer{
			{ID: "c1", Name: "Alice", Email: "alice@example.com"},
		},
		Invoices: []records.Invoice{
			{ID: "inv-1", CustomerID: "c1", Amount: 1000, Status: records.StatusPaid, Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
		Revenue: []records.Revenue{{Month: "Jan", Revenue: 2000}},
		Users:   []records.User{{ID: "u1", Name: "Admin", Email: "admin@example.com"}},
	}
}

func TestStore_CreateInvoice_AssignsID(t *testing.T) {
	s := store.New(seed.Data{})

	inv := &records.Invoice{CustomerID: "c1", Amount: 500, Status: records.StatusPending, Date: time.Now()}
	require.NoError(t, s.CreateInvoice(context.Background(), inv))
	assert.NotEmpty(t, inv.ID)

	got, err := s.GetInvoice(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, inv.Amount, got.Amount)
}

func TestStore_GetInvoice_NotFound(t *testing.T) {
	s := store.New(seedData())

	_, err := s.GetInvoice(context.Background(), "nope")
	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestStore_UpdateInvoice(t *testing.T) {
	s := store.New(seedData())

	updated, err := s.UpdateInvoice(context.Background(), "inv-1", records.InvoiceUpdate{
		CustomerID: "c1",
		Amount:     2500,
		Status:     records.StatusPending,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2500), updated.Amount)
	assert.Equal(t, records.StatusPending, updated.Status)
	// The stored date must survive updates.
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), updated.Date)
}

func TestStore_UpdateInvoice_NotFound(t *testing.T) {
	s := store.New(seedData())

	_, err := s.UpdateInvoice(context.Background(), "nope", records.InvoiceUpdate{})
	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestStore_DeleteInvoice(t *testing.T) {
	s := store.New(seedData())

	require.NoError(t, s.DeleteInvoice(context.Background(), "inv-1"))

	_, err := s.GetInvoice(context.Background(), "inv-1")
	assert.ErrorIs(t, err, records.ErrNotFound)

	invoices, err := s.ListInvoices(context.Background())
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestStore_DeleteInvoice_NotFound(t *testing.T) {
	s := store.New(seedData())

	assert.ErrorIs(t, s.DeleteInvoice(context.Background(), "nope"), records.ErrNotFound)
}

func TestStore_ListInvoices_Snapshot(t *testing.T) {
	s := store.New(seedData())

	invoices, err := s.ListInvoices(context.Background())
	require.NoError(t, err)
	require.Len(t, invoices, 1)

	// Mutating the snapshot must not leak into the store.
	invoices[0].Amount = 999999

	again, err := s.ListInvoices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1000), again[0].Amount)
}

func TestStore_GetUserByEmail(t *testing.T) {
	s := store.New(seedData())

	user, err := s.GetUserByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Admin", user.Name)

	_, err = s.GetUserByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, records.ErrNotFound)
}
