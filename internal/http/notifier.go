package http

import (
	"log/slog"

	"invoicedash/internal/viewcache"
)

// CacheNotifier wires the mutation layer's framework signals to the view
// cache. Navigation is driven by the HTTP response (303 See Other), so
// Redirect only logs.
type CacheNotifier struct {
	cache *viewcache.Cache
}

func NewCacheNotifier(cache *viewcache.Cache) *CacheNotifier {
	return &CacheNotifier{cache: cache}
}

func (n *CacheNotifier) Invalidate(path string) {
	n.cache.Invalidate(path)
	slog.Info("invalidated cached views", "path", path)
}

func (n *CacheNotifier) Redirect(path string) {
	slog.Debug("navigation requested", "path", path)
}
