package viewcache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"invoicedash/internal/viewcache"
)

func TestCache_SetGet(t *testing.T) {
	c := viewcache.New()

	_, ok := c.Get("/dashboard/invoices")
	assert.False(t, ok)

	c.Set("/dashboard/invoices", []byte("body"))

	body, ok := c.Get("/dashboard/invoices")
	assert.True(t, ok)
	assert.Equal(t, []byte("body"), body)
}

func TestCache_Invalidate(t *testing.T) {
	c := viewcache.New()

	c.Set("/dashboard/invoices", []byte("list"))
	c.Set("/dashboard/invoices?query=a&page=1", []byte("page"))
	c.Set("/dashboard/invoices/pages?query=a", []byte("count"))
	c.Set("/dashboard/customers", []byte("customers"))

	c.Invalidate("/dashboard/invoices")

	_, ok := c.Get("/dashboard/invoices")
	assert.False(t, ok)
	_, ok = c.Get("/dashboard/invoices?query=a&page=1")
	assert.False(t, ok)
	_, ok = c.Get("/dashboard/invoices/pages?query=a")
	assert.False(t, ok)

	// Unrelated paths survive.
	_, ok = c.Get("/dashboard/customers")
	assert.True(t, ok)
}
