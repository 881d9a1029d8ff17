package invoice

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"invoicedash/internal/mutation"
	"invoicedash/internal/query"
	"invoicedash/internal/records"
	"invoicedash/internal/viewcache"
)

type Handler struct {
	queries   *query.Service
	mutations *mutation.Service
	cache     *viewcache.Cache
}

func NewHandler(queries *query.Service, mutations *mutation.Service, cache *viewcache.Cache) *Handler {
	return &Handler{
		queries:   queries,
		mutations: mutations,
		cache:     cache,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/pages", h.pages)
	r.Get("/{id}", h.get)
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

// list serves one page of the filtered invoice table. Pages are cached under
// the invoice list path until a mutation invalidates them.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("query")

	page := 1
	if s := r.URL.Query().Get("page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			http.Error(w, "page must be a positive integer", http.StatusBadRequest)
			return
		}

		page = n
	}

	cacheKey := mutation.InvoicesPath + "?query=" + q + "&page=" + strconv.Itoa(page)
	if body, ok := h.cache.Get(cacheKey); ok {
		writeJSONBody(w, body)
		return
	}

	rows, err := h.queries.FilteredInvoices(r.Context(), q, page)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	body, err := json.Marshal(toRowResponseList(rows))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.cache.Set(cacheKey, body)
	writeJSONBody(w, body)
}

type pagesResponse struct {
	TotalPages int `json:"total_pages"`
}

func (h *Handler) pages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("query")

	cacheKey := mutation.InvoicesPath + "/pages?query=" + q
	if body, ok := h.cache.Get(cacheKey); ok {
		writeJSONBody(w, body)
		return
	}

	total, err := h.queries.InvoicePages(r.Context(), q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	body, err := json.Marshal(pagesResponse{TotalPages: total})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.cache.Set(cacheKey, body)
	writeJSONBody(w, body)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	form, err := h.queries.InvoiceByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			http.Error(w, "invoice not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeJSON(w, invoiceFormResponse{
		ID:         form.ID,
		CustomerID: form.CustomerID,
		Amount:     form.Amount,
		Status:     form.Status,
	})
}

// create accepts form-encoded invoice fields, appends the invoice and sends
// the caller back to the invoice list.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	in, ok := formInput(w, r)
	if !ok {
		return
	}

	if _, err := h.mutations.Create(r.Context(), in); err != nil {
		writeMutationError(w, err)
		return
	}

	http.Redirect(w, r, mutation.InvoicesPath, http.StatusSeeOther)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	in, ok := formInput(w, r)
	if !ok {
		return
	}

	if _, err := h.mutations.Update(r.Context(), chi.URLParam(r, "id"), in); err != nil {
		writeMutationError(w, err)
		return
	}

	http.Redirect(w, r, mutation.InvoicesPath, http.StatusSeeOther)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.mutations.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeMutationError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func formInput(w http.ResponseWriter, r *http.Request) (mutation.InvoiceInput, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return mutation.InvoiceInput{}, false
	}

	return mutation.InvoiceInput{
		CustomerID: r.PostFormValue("customer_id"),
		Amount:     r.PostFormValue("amount"),
		Status:     r.PostFormValue("status"),
	}, true
}

type validationResponse struct {
	Errors []mutation.FieldError `json:"errors"`
}

// writeMutationError maps the mutation error kinds onto status codes:
// validation failures carry field-level detail for inline form feedback,
// unknown ids answer 404.
func writeMutationError(w http.ResponseWriter, err error) {
	var verr *mutation.ValidationError
	if errors.As(err, &verr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)

		if err := json.NewEncoder(w).Encode(validationResponse{Errors: verr.Fields}); err != nil {
			slog.Error("failed to encode response", "error", err)
		}

		return
	}

	if errors.Is(err, records.ErrNotFound) {
		http.Error(w, "invoice not found", http.StatusNotFound)
		return
	}

	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeJSONBody(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")

	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
