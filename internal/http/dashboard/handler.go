package dashboard

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
	r.Get("/revenue", h.revenue)
	r.Get("/cards", h.cards)
	r.Get("/latest-invoices", h.latestInvoices)
}

type revenueResponse struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

func (h *Handler) revenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.queries.Revenue(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]revenueResponse, len(revenue))
	for i, rev := range revenue {
		resp[i] = revenueResponse{Month: rev.Month, Revenue: rev.Revenue}
	}

	writeJSON(w, resp)
}

type cardsResponse struct {
	NumberOfInvoices     int    `json:"number_of_invoices"`
	NumberOfCustomers    int    `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}

func (h *Handler) cards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.queries.CardData(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, cardsResponse{
		NumberOfInvoices:     cards.NumberOfInvoices,
		NumberOfCustomers:    cards.NumberOfCustomers,
		TotalPaidInvoices:    cards.TotalPaidInvoices,
		TotalPendingInvoices: cards.TotalPendingInvoices,
	})
}

type latestInvoiceResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"`
}

func (h *Handler) latestInvoices(w http.ResponseWriter, r *http.Request) {
	latest, err := h.queries.LatestInvoices(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]latestInvoiceResponse, len(latest))
	for i, inv := range latest {
		resp[i] = latestInvoiceResponse{
			ID:       inv.ID,
			Name:     inv.Name,
			Email:    inv.Email,
			ImageURL: inv.ImageURL,
			Amount:   inv.Amount,
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
