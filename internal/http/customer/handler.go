package customer

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"invoicedash/internal/query"
)

type Handler struct {
	queries *query.Service
}

func NewHandler(queries *query.Service) *Handler {
	return &Handler{queries: queries}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/table", h.table)
}

type customerFieldResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// list serves the id/name projection used to populate customer pickers.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	customers, err := h.queries.Customers(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]customerFieldResponse, len(customers))
	for i, c := range customers {
		resp[i] = customerFieldResponse{ID: c.ID, Name: c.Name}
	}

	writeJSON(w, resp)
}

type customerRowResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int    `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}

// table serves the customers table with invoice aggregates, filtered by the
// search query.
func (h *Handler) table(w http.ResponseWriter, r *http.Request) {
	rows, err := h.queries.FilteredCustomers(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]customerRowResponse, len(rows))
	for i, row := range rows {
		resp[i] = customerRowResponse{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			ImageURL:      row.ImageURL,
			TotalInvoices: row.TotalInvoices,
			TotalPending:  row.TotalPending,
			TotalPaid:     row.TotalPaid,
		}
	}

	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
