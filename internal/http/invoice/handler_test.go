package invoice_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicedash/internal/currency"
	invoicedashHttp "invoicedash/internal/http"
	"invoicedash/internal/http/invoice"
	"invoicedash/internal/mutation"
	"invoicedash/internal/query"
	"invoicedash/internal/records"
	"invoicedash/internal/records/store"
	"invoicedash/internal/seed"
	"invoicedash/internal/viewcache"
)

func newTestServer(t *testing.T, data seed.Data) *httptest.Server {
	t.Helper()

	format, err := currency.NewFormatter("en-US", "$")
	require.NoError(t, err)

	recordStore := store.New(data)
	cache := viewcache.New()

	queries := query.NewService(recordStore, format, 0)
	mutations := mutation.NewService(recordStore, invoicedashHttp.NewCacheNotifier(cache))

	h := invoice.NewHandler(queries, mutations, cache)

	router := chi.NewRouter()
	router.Route("/invoices", h.Routes)

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	return ts
}

func fixture() seed.Data {
	return seed.Data{
		Customers: []records.Customer{
			{ID: "c1", Name: "Alice", Email: "alice@example.com"},
		},
		Invoices: []records.Invoice{
			{ID: "inv-1", CustomerID: "c1", Amount: 1000, Status: records.StatusPaid, Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func postForm(t *testing.T, url string, form url.Values) *http.Response {
	t.Helper()

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.Post(url, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func TestHandler_Create(t *testing.T) {
	ts := newTestServer(t, fixture())

	resp := postForm(t, ts.URL+"/invoices/", url.Values{
		"customer_id": {"c1"},
		"amount":      {"42.50"},
		"status":      {"pending"},
	})

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard/invoices", resp.Header.Get("Location"))
}

func TestHandler_Create_ValidationError(t *testing.T) {
	ts := newTestServer(t, fixture())

	resp := postForm(t, ts.URL+"/invoices/", url.Values{
		"customer_id": {"c1"},
		"amount":      {"42.50"},
		"status":      {"archived"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Len(t, body.Errors, 1)
	assert.Equal(t, "status", body.Errors[0].Field)
}

func TestHandler_List_CacheInvalidatedByCreate(t *testing.T) {
	ts := newTestServer(t, fixture())

	listRows := func() []map[string]any {
		resp, err := http.Get(ts.URL + "/invoices/?query=&page=1")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var rows []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))

		return rows
	}

	require.Len(t, listRows(), 1)

	// Prime the cache, then write. The next read must see the new invoice.
	resp := postForm(t, ts.URL+"/invoices/", url.Values{
		"customer_id": {"c1"},
		"amount":      {"10.00"},
		"status":      {"pending"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	assert.Len(t, listRows(), 2)
}

func TestHandler_Get(t *testing.T) {
	ts := newTestServer(t, fixture())

	resp, err := http.Get(ts.URL + "/invoices/inv-1")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		ID         string  `json:"id"`
		CustomerID string  `json:"customer_id"`
		Amount     float64 `json:"amount"`
		Status     string  `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "inv-1", body.ID)
	assert.Equal(t, "c1", body.CustomerID)
	assert.Equal(t, 10.0, body.Amount)
	assert.Equal(t, "paid", body.Status)
}

func TestHandler_Get_NotFound(t *testing.T) {
	ts := newTestServer(t, fixture())

	resp, err := http.Get(ts.URL + "/invoices/nope")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_Delete(t *testing.T) {
	ts := newTestServer(t, fixture())

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/invoices/inv-1", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHandler_Delete_NotFound(t *testing.T) {
	ts := newTestServer(t, fixture())

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/invoices/nope", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
