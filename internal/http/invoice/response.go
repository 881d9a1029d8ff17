package invoice

import (
	"time"

	"invoicedash/internal/query"
	"invoicedash/internal/records"
)

type invoiceRowResponse struct {
	ID         string         `json:"id"`
	CustomerID string         `json:"customer_id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	ImageURL   string         `json:"image_url"`
	Amount     int64          `json:"amount"`
	Status     records.Status `json:"status"`
	Date       string         `json:"date"`
}

type invoiceFormResponse struct {
	ID         string         `json:"id"`
	CustomerID string         `json:"customer_id"`
	Amount     float64        `json:"amount"`
	Status     records.Status `json:"status"`
}

func toRowResponse(row query.InvoiceRow) invoiceRowResponse {
	return invoiceRowResponse{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Name:       row.Name,
		Email:      row.Email,
		ImageURL:   row.ImageURL,
		Amount:     row.Amount,
		Status:     row.Status,
		Date:       row.Date.Format(time.DateOnly),
	}
}

func toRowResponseList(rows []query.InvoiceRow) []invoiceRowResponse {
	resp := make([]invoiceRowResponse, len(rows))
	for i, row := range rows {
		resp[i] = toRowResponse(row)
	}

	return resp
}
