package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/glowmart/storefront/internal/core/domain"
)

const (
	searchDebounce  = 300 * time.Millisecond
	suggestDebounce = 200 * time.Millisecond

	defaultSearchLimit = 50
	suggestionLimit    = 5
)

// A SearchView is the debounced full search unit. Queries settle for a
// quiet period before one request is dispatched; rapid input collapses
// to a single call carrying the last query. Remote failures degrade to
// the snapshot search with Err staying nil.
type SearchView struct {
	view[[]domain.Product]
	c     *Catalog
	limit int

	depMu  sync.Mutex
	query  string
	first  bool
	timer  *time.Timer
	closed bool
}

func (c *Catalog) Search(limit int) *SearchView {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return &SearchView{
		view:  newView[[]domain.Product](),
		c:     c,
		limit: limit,
		first: true,
	}
}

// SetQuery schedules a search for q after the debounce window. Setting
// the same query again is a no-op; an empty query clears results
// synchronously with no network call.
func (sv *SearchView) SetQuery(ctx context.Context, q string) {
	sv.depMu.Lock()
	defer sv.depMu.Unlock()

	if sv.closed || (!sv.first && q == sv.query) {
		return
	}
	sv.first = false
	sv.query = q

	if sv.timer != nil {
		sv.timer.Stop()
	}

	if q == "" {
		sv.set([]domain.Product{}, nil)
		return
	}

	gen := sv.begin()
	sv.timer = time.AfterFunc(searchDebounce, func() {
		sv.dispatch(ctx, gen, q)
	})
}

func (sv *SearchView) dispatch(ctx context.Context, gen uint64, q string) {
	const op = "SearchView.dispatch"

	ps, err := sv.c.api.SearchProducts(ctx, q, sv.limit)
	if err != nil {
		if sv.c.fallback == nil {
			sv.commit(gen, []domain.Product{}, nil, err)
			return
		}
		slog.With("op", op).Warn("remote search failed, serving snapshot", "err", err)
		ps = sv.c.fallback.SearchSnapshot(q, sv.limit)
	}
	sv.commit(gen, ps, nil, nil)
}

// Close stops the pending debounce timer. A closed view ignores
// further queries; its last committed state stays readable.
func (sv *SearchView) Close() {
	sv.depMu.Lock()
	defer sv.depMu.Unlock()
	sv.closed = true
	if sv.timer != nil {
		sv.timer.Stop()
	}
}

// A SuggestView produces typeahead suggestions: distinct product names
// matching the query, debounced tighter than full search.
type SuggestView struct {
	view[[]string]
	c *Catalog

	depMu  sync.Mutex
	query  string
	first  bool
	timer  *time.Timer
	closed bool
}

func (c *Catalog) Suggestions() *SuggestView {
	return &SuggestView{view: newView[[]string](), c: c, first: true}
}

func (sv *SuggestView) SetQuery(ctx context.Context, q string) {
	sv.depMu.Lock()
	defer sv.depMu.Unlock()

	if sv.closed || (!sv.first && q == sv.query) {
		return
	}
	sv.first = false
	sv.query = q

	if sv.timer != nil {
		sv.timer.Stop()
	}

	if q == "" {
		sv.set([]string{}, nil)
		return
	}

	gen := sv.begin()
	sv.timer = time.AfterFunc(suggestDebounce, func() {
		sv.dispatch(ctx, gen, q)
	})
}

func (sv *SuggestView) dispatch(ctx context.Context, gen uint64, q string) {
	const op = "SuggestView.dispatch"

	ps, err := sv.c.api.SearchProducts(ctx, q, suggestionLimit)
	if err != nil {
		if sv.c.fallback == nil {
			sv.commit(gen, []string{}, nil, err)
			return
		}
		slog.With("op", op).Warn("remote suggest failed, serving snapshot", "err", err)
		ps = sv.c.fallback.SearchSnapshot(q, suggestionLimit)
	}
	sv.commit(gen, productNames(ps), nil, nil)
}

func (sv *SuggestView) Close() {
	sv.depMu.Lock()
	defer sv.depMu.Unlock()
	sv.closed = true
	if sv.timer != nil {
		sv.timer.Stop()
	}
}

func productNames(ps []domain.Product) []string {
	seen := make(map[string]struct{}, len(ps))
	names := make([]string, 0, len(ps))
	for _, p := range ps {
		if _, dup := seen[p.Name]; dup {
			continue
		}
		seen[p.Name] = struct{}{}
		names = append(names, p.Name)
	}
	return names
}
