package records

import (
	"errors"
	"time"
)

// ErrNotFound is returned when an id does not resolve to a stored record.
var ErrNotFound = errors.New("record not found")

// Status represents the payment state of an invoice.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Valid reports whether s is one of the known invoice statuses.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

// Invoice is a billing record. Amount is stored in cents; display
// conversions divide by 100.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64 // cents
	Status     Status
	Date       time.Time
}

// InvoiceUpdate carries the replaceable fields of an invoice. Date is
// deliberately absent: updates never touch it.
type InvoiceUpdate struct {
	CustomerID string
	Amount     int64 // cents
	Status     Status
}

// Customer is a billing counterparty. ID is unique across the collection.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

// Revenue is a monthly revenue figure. Static reference data, read-only.
type Revenue struct {
	Month   string
	Revenue int64
}

// User is an account that can sign in to the dashboard.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
}
