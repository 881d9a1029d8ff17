// Package mutation validates form input and applies create, update and
// delete operations to the invoice collection. After a successful write it
// signals the hosting layer through the Notifier capability so cached views
// are discarded and the caller is sent back to the invoice list.
package mutation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"invoicedash/internal/records"
)

// InvoicesPath is the view path invalidated and navigated to after a write.
const InvoicesPath = "/dashboard/invoices"

//go:generate mockgen -source=service.go -destination=deps_mock.go -package=mutation
type InvoiceWriter interface {
	CreateInvoice(ctx context.Context, inv *records.Invoice) error
	UpdateInvoice(ctx context.Context, id string, upd records.InvoiceUpdate) (*records.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error
}

// Notifier is the hosting layer's rendering/caching capability.
type Notifier interface {
	Invalidate(path string)
	Redirect(path string)
}

// InvoiceInput is the raw form input for create and update. Amount is the
// dollar figure as typed into the form.
type InvoiceInput struct {
	CustomerID string `form:"customer_id" validate:"required"`
	Amount     string `form:"amount" validate:"required,numeric"`
	Status     string `form:"status" validate:"required,oneof=pending paid"`
}

// FieldError describes one invalid form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports all invalid fields of a rejected input. It is a
// distinct error kind: callers render it as inline form feedback instead of
// failing the request outright.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}

	return "invalid invoice input: " + strings.Join(names, ", ")
}

type Service struct {
	invoices InvoiceWriter
	notifier Notifier
	validate *validator.Validate
	now      func() time.Time
}

func NewService(invoices InvoiceWriter, notifier Notifier) *Service {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their form names, not the Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("form")
	})

	return &Service{
		invoices: invoices,
		notifier: notifier,
		validate: v,
		now:      time.Now,
	}
}

// Create validates the input, appends a new invoice dated today and signals
// the invoice list for revalidation and navigation.
func (s *Service) Create(ctx context.Context, in InvoiceInput) (*records.Invoice, error) {
	cents, err := s.checkInput(in)
	if err != nil {
		return nil, err
	}

	today := s.now().UTC()

	inv := &records.Invoice{
		CustomerID: in.CustomerID,
		Amount:     cents,
		Status:     records.Status(in.Status),
		Date:       time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC),
	}

	if err := s.invoices.CreateInvoice(ctx, inv); err != nil {
		return nil, fmt.Errorf("creating invoice: %w", err)
	}

	s.notifier.Invalidate(InvoicesPath)
	s.notifier.Redirect(InvoicesPath)

	return inv, nil
}

// Update validates the input and replaces the customer, amount and status of
// the invoice with the given id. The invoice date is left unchanged. An
// unknown id yields records.ErrNotFound.
func (s *Service) Update(ctx context.Context, id string, in InvoiceInput) (*records.Invoice, error) {
	cents, err := s.checkInput(in)
	if err != nil {
		return nil, err
	}

	inv, err := s.invoices.UpdateInvoice(ctx, id, records.InvoiceUpdate{
		CustomerID: in.CustomerID,
		Amount:     cents,
		Status:     records.Status(in.Status),
	})
	if err != nil {
		return nil, fmt.Errorf("updating invoice: %w", err)
	}

	s.notifier.Invalidate(InvoicesPath)
	s.notifier.Redirect(InvoicesPath)

	return inv, nil
}

// Delete removes the invoice with the given id and signals the invoice list
// for revalidation. No navigation happens on delete.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.invoices.DeleteInvoice(ctx, id); err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	s.notifier.Invalidate(InvoicesPath)

	return nil
}

// checkInput runs schema validation and converts the dollar amount to cents.
// No write happens when any field is invalid.
func (s *Service) checkInput(in InvoiceInput) (int64, error) {
	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return 0, fmt.Errorf("validating input: %w", err)
		}

		fieldErrs := make([]FieldError, len(verrs))
		for i, fe := range verrs {
			fieldErrs[i] = FieldError{
				Field:   fe.Field(),
				Message: fieldMessage(fe),
			}
		}

		return 0, &ValidationError{Fields: fieldErrs}
	}

	amount, err := strconv.ParseFloat(in.Amount, 64)
	if err != nil {
		// The numeric tag has already passed, so this should not happen.
		return 0, &ValidationError{Fields: []FieldError{
			{Field: "amount", Message: "amount must be a number"},
		}}
	}

	return int64(math.Round(amount * 100)), nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "numeric":
		return fe.Field() + " must be a number"
	case "oneof":
		return fe.Field() + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return fe.Field() + " is invalid"
	}
}
