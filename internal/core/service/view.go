package service

import (
	"sync"

	"github.com/glowmart/storefront/internal/core/domain"
)

// A ViewState is one observable snapshot of a data view.
type ViewState[T any] struct {
	Data       T
	Loading    bool
	Err        error
	Pagination *domain.Pagination
}

// view is the shared state machine behind every catalog view:
// idle -> loading -> ready | error. Each fetch claims a generation at
// begin time; only the latest generation may commit, so a superseded
// in-flight response is discarded instead of overwriting fresher state.
type view[T any] struct {
	mu      sync.Mutex
	gen     uint64
	st      ViewState[T]
	updates chan struct{}
}

func newView[T any]() view[T] {
	return view[T]{updates: make(chan struct{}, 1)}
}

// begin claims the next generation and moves the view to loading,
// clearing any prior error.
func (v *view[T]) begin() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.gen++
	v.st.Loading = true
	v.st.Err = nil
	return v.gen
}

// commit stores a fetch result if gen is still the latest generation.
// Stale results are dropped and commit reports false.
func (v *view[T]) commit(gen uint64, data T, p *domain.Pagination, err error) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.gen {
		return false
	}
	v.st = ViewState[T]{Data: data, Pagination: p, Err: err}
	v.notifyLocked()
	return true
}

// set replaces state synchronously outside any fetch cycle, bumping the
// generation so in-flight fetches cannot clobber it.
func (v *view[T]) set(data T, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.gen++
	v.st = ViewState[T]{Data: data, Err: err}
	v.notifyLocked()
}

func (v *view[T]) notifyLocked() {
	select {
	case v.updates <- struct{}{}:
	default:
	}
}

// State returns the current snapshot.
func (v *view[T]) State() ViewState[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.st
}

// Updates signals after each committed state change. The channel holds
// one pending signal; consumers poll State after receiving.
func (v *view[T]) Updates() <-chan struct{} {
	return v.updates
}
