package query

import (
	"time"

	"invoicedash/internal/records"
)

// LatestInvoice is one row of the "latest invoices" dashboard widget, with
// the amount already rendered as currency.
type LatestInvoice struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
	Amount   string
}

// CardData carries the dashboard summary cards.
type CardData struct {
	NumberOfInvoices     int
	NumberOfCustomers    int
	TotalPaidInvoices    string
	TotalPendingInvoices string
}

// InvoiceRow is one row of the paginated invoice table: an invoice joined
// to its customer. Amount stays in cents; rendering is the caller's concern.
type InvoiceRow struct {
	ID         string
	CustomerID string
	Name       string
	Email      string
	ImageURL   string
	Amount     int64
	Status     records.Status
	Date       time.Time
}

// InvoiceForm is the shape the edit form works on. Amount is in dollars,
// matching what the form displays and submits.
type InvoiceForm struct {
	ID         string
	CustomerID string
	Amount     float64
	Status     records.Status
}

// CustomerField is the projection used to populate customer pickers.
type CustomerField struct {
	ID   string
	Name string
}

// CustomerRow is one row of the customers table, with invoice aggregates.
// The two totals are rendered as currency.
type CustomerRow struct {
	ID            string
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int
	TotalPending  string
	TotalPaid     string
}
