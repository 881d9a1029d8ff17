// Package query derives read-only views (lists, pages, aggregates, lookups)
// from the record collections. Every operation is all-or-nothing: internal
// faults are logged and replaced with a fixed, operation-specific error so
// the rendering layer never sees partial results or internal causes.
package query

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"invoicedash/internal/currency"
	"invoicedash/internal/records"
)

// Fixed errors surfaced to callers. The underlying cause only reaches the
// log.
var (
	ErrFetchRevenue        = errors.New("Failed to fetch revenue data.")
	ErrFetchLatestInvoices = errors.New("Failed to fetch the latest invoices.")
	ErrFetchCardData       = errors.New("Failed to fetch card data.")
	ErrFetchInvoices       = errors.New("Failed to fetch invoices.")
	ErrFetchInvoicePages   = errors.New("Failed to fetch total number of invoices.")
	ErrFetchInvoice        = errors.New("Failed to fetch invoice.")
	ErrFetchCustomers      = errors.New("Failed to fetch all customers.")
	ErrFetchCustomerTable  = errors.New("Failed to fetch customer table.")
	ErrFetchUser           = errors.New("Failed to fetch user.")
)

const (
	// ItemsPerPage is the invoice table page size.
	ItemsPerPage = 6

	latestLimit = 5
)

//go:generate mockgen -source=service.go -destination=source_mock.go -package=query
type Source interface {
	ListInvoices(ctx context.Context) ([]records.Invoice, error)
	ListCustomers(ctx context.Context) ([]records.Customer, error)
	ListRevenue(ctx context.Context) ([]records.Revenue, error)
	GetUserByEmail(ctx context.Context, email string) (*records.User, error)
}

type Service struct {
	source Source
	format *currency.Formatter
	delay  time.Duration
}

// NewService builds the query service. delay adds artificial latency before
// every read; pass 0 to disable it.
func NewService(source Source, format *currency.Formatter, delay time.Duration) *Service {
	return &Service{
		source: source,
		format: format,
		delay:  delay,
	}
}

func (s *Service) simulateLatency(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.delay):
		return nil
	}
}

// Revenue returns the monthly revenue series.
func (s *Service) Revenue(ctx context.Context) ([]records.Revenue, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, ErrFetchRevenue
	}

	revenue, err := s.source.ListRevenue(ctx)
	if err != nil {
		slog.Error("fetching revenue", "error", err)
		return nil, ErrFetchRevenue
	}

	return revenue, nil
}

// LatestInvoices returns the five most recent invoices joined to their
// customers, amounts rendered as currency.
func (s *Service) LatestInvoices(ctx context.Context) ([]LatestInvoice, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, ErrFetchLatestInvoices
	}

	invoices, customers, err := s.invoicesWithCustomers(ctx)
	if err != nil {
		slog.Error("fetching latest invoices", "error", err)
		return nil, ErrFetchLatestInvoices
	}

	sortByDateDesc(invoices)

	if len(invoices) > latestLimit {
		invoices = invoices[:latestLimit]
	}

	latest := make([]LatestInvoice, len(invoices))

	for i, inv := range invoices {
		c := customers[inv.CustomerID]
		latest[i] = LatestInvoice{
			ID:       inv.ID,
			Name:     c.Name,
			Email:    c.Email,
			ImageURL: c.ImageURL,
			Amount:   s.format.Cents(inv.Amount),
		}
	}

	return latest, nil
}

// CardData returns the dashboard summary: invoice and customer counts plus
// the paid and pending totals rendered as currency.
func (s *Service) CardData(ctx context.Context) (*CardData, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, ErrFetchCardData
	}

	invoices, err := s.source.ListInvoices(ctx)
	if err != nil {
		slog.Error("fetching card data", "error", err)
		return nil, ErrFetchCardData
	}

	customers, err := s.source.ListCustomers(ctx)
	if err != nil {
		slog.Error("fetching card data", "error", err)
		return nil, ErrFetchCardData
	}

	var paid, pending int64

	for _, inv := range invoices {
		switch inv.Status {
		case records.StatusPaid:
			paid += inv.Amount
		case records.StatusPending:
			pending += inv.Amount
		}
	}

	return &CardData{
		NumberOfInvoices:     len(invoices),
		NumberOfCustomers:    len(customers),
		TotalPaidInvoices:    s.format.Cents(paid),
		TotalPendingInvoices: s.format.Cents(pending),
	}, nil
}

// FilteredInvoices returns one page of the invoice table, filtered by the
// search query. page is 1-based; pages hold ItemsPerPage rows.
func (s *Service) FilteredInvoices(ctx context.Context, query string, page int) ([]InvoiceRow, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, ErrFetchInvoices
	}

	rows, err := s.filteredInvoiceRows(ctx, query)
	if err != nil {
		slog.Error("fetching invoices", "error", err, "query", query)
		return nil, ErrFetchInvoices
	}

	if page < 1 {
		page = 1
	}

	offset := (page - 1) * ItemsPerPage
	if offset >= len(rows) {
		return nil, nil
	}

	end := min(offset+ItemsPerPage, len(rows))

	return rows[offset:end], nil
}

// InvoicePages returns how many table pages match the search query.
func (s *Service) InvoicePages(ctx context.Context, query string) (int, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return 0, ErrFetchInvoicePages
	}

	rows, err := s.filteredInvoiceRows(ctx, query)
	if err != nil {
		slog.Error("fetching invoice pages", "error", err, "query", query)
		return 0, ErrFetchInvoicePages
	}

	return (len(rows) + ItemsPerPage - 1) / ItemsPerPage, nil
}

// InvoiceByID returns the invoice in the shape the edit form expects, with
// the amount converted from cents to dollars. A missing id yields
// records.ErrNotFound.
func (s *Service) InvoiceByID(ctx context.Context, id string) (*InvoiceForm, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, ErrFetchInvoice
	}

	invoices, err := s.source.ListInvoices(ctx)
	if err != nil {
		slog.Error("fetching invoice", "error", err, "id", id)
		return nil, ErrFetchInvoice
	}

	for _, inv := range invoices {
		if inv.ID != id {
			continue
		}

		status := records.StatusPending
		if inv.Status == records.StatusPaid {
			status = records.StatusPaid
		}

		return &InvoiceForm{
			ID:         inv.ID,
			CustomerID: inv.CustomerID,
			Amount:     float64(inv.Amount) / 100,
			Status:     status,
		}, nil
	}

	return nil, records.ErrNotFound
}

// Customers returns all customers sorted by name, projected to id and name.
func (s *Service) Customers(ctx context.Context) ([]CustomerField, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, ErrFetchCustomers
	}

	customers, err := s.source.ListCustomers(ctx)
	if err != nil {
		slog.Error("fetching customers", "error", err)
		return nil, ErrFetchCustomers
	}

	sortByNameAsc(customers)

	fields := make([]CustomerField, len(customers))
	for i, c := range customers {
		fields[i] = CustomerField{ID: c.ID, Name: c.Name}
	}

	return fields, nil
}

// FilteredCustomers returns the customers table: customers whose name or
// email contains the query, sorted by name, with their invoice aggregates.
func (s *Service) FilteredCustomers(ctx context.Context, query string) ([]CustomerRow, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, ErrFetchCustomerTable
	}

	customers, err := s.source.ListCustomers(ctx)
	if err != nil {
		slog.Error("fetching customer table", "error", err, "query", query)
		return nil, ErrFetchCustomerTable
	}

	invoices, err := s.source.ListInvoices(ctx)
	if err != nil {
		slog.Error("fetching customer table", "error", err, "query", query)
		return nil, ErrFetchCustomerTable
	}

	sortByNameAsc(customers)

	var rows []CustomerRow

	for _, c := range customers {
		if !strings.Contains(c.Name, query) && !strings.Contains(c.Email, query) {
			continue
		}

		var count int

		var pending, paid int64

		for _, inv := range invoices {
			if inv.CustomerID != c.ID {
				continue
			}

			count++

			switch inv.Status {
			case records.StatusPending:
				pending += inv.Amount
			case records.StatusPaid:
				paid += inv.Amount
			}
		}

		rows = append(rows, CustomerRow{
			ID:            c.ID,
			Name:          c.Name,
			Email:         c.Email,
			ImageURL:      c.ImageURL,
			TotalInvoices: count,
			TotalPending:  s.format.Cents(pending),
			TotalPaid:     s.format.Cents(paid),
		})
	}

	return rows, nil
}

// UserByEmail looks up a dashboard user.
func (s *Service) UserByEmail(ctx context.Context, email string) (*records.User, error) {
	user, err := s.source.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return nil, err
		}

		slog.Error("fetching user", "error", err, "email", email)

		return nil, ErrFetchUser
	}

	return user, nil
}

// invoicesWithCustomers loads both collections and indexes customers by id
// for joining. Invoices referencing a missing customer join against the
// zero Customer, i.e. empty-string fields.
func (s *Service) invoicesWithCustomers(ctx context.Context) ([]records.Invoice, map[string]records.Customer, error) {
	invoices, err := s.source.ListInvoices(ctx)
	if err != nil {
		return nil, nil, err
	}

	customers, err := s.source.ListCustomers(ctx)
	if err != nil {
		return nil, nil, err
	}

	byID := make(map[string]records.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	return invoices, byID, nil
}

// filteredInvoiceRows is the shared filter pipeline behind FilteredInvoices
// and InvoicePages: sort by date descending, join customers, keep rows where
// the query is a substring of the customer name, customer email, stringified
// cents amount, ISO date or status.
func (s *Service) filteredInvoiceRows(ctx context.Context, query string) ([]InvoiceRow, error) {
	invoices, customers, err := s.invoicesWithCustomers(ctx)
	if err != nil {
		return nil, err
	}

	sortByDateDesc(invoices)

	var rows []InvoiceRow

	for _, inv := range invoices {
		c := customers[inv.CustomerID]
		if !matchesQuery(inv, c, query) {
			continue
		}

		rows = append(rows, InvoiceRow{
			ID:         inv.ID,
			CustomerID: inv.CustomerID,
			Name:       c.Name,
			Email:      c.Email,
			ImageURL:   c.ImageURL,
			Amount:     inv.Amount,
			Status:     inv.Status,
			Date:       inv.Date,
		})
	}

	return rows, nil
}

// matchesQuery is a case-sensitive substring match applied per field with
// short-circuit OR. The empty query matches every row.
func matchesQuery(inv records.Invoice, c records.Customer, query string) bool {
	if strings.Contains(c.Name, query) {
		return true
	}

	if strings.Contains(c.Email, query) {
		return true
	}

	if strings.Contains(strconv.FormatInt(inv.Amount, 10), query) {
		return true
	}

	if strings.Contains(inv.Date.Format(time.DateOnly), query) {
		return true
	}

	return strings.Contains(string(inv.Status), query)
}

// sortByDateDesc sorts most recent first. The sort is stable so that rows
// sharing a date keep their insertion order and pagination stays consistent
// across pages.
func sortByDateDesc(invoices []records.Invoice) {
	slices.SortStableFunc(invoices, func(a, b records.Invoice) int {
		return b.Date.Compare(a.Date)
	})
}

// sortByNameAsc sorts by plain bytewise string comparison, matching the
// locale-independent ordering of the table views.
func sortByNameAsc(customers []records.Customer) {
	slices.SortStableFunc(customers, func(a, b records.Customer) int {
		return strings.Compare(a.Name, b.Name)
	})
}
