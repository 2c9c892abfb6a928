package client

import (
	"context"
	"sync"
	"time"
)

// DefaultSearchDelay is the debounce window between the last keystroke and
// the lookup it triggers.
const DefaultSearchDelay = 300 * time.Millisecond

// SearchHandler receives the outcome of the latest search: the page on
// success, or the error that should be shown in its place. Superseded
// lookups never reach it.
type SearchHandler func(query string, page *EstimatePage, err error)

// EstimateSearcher debounces keystroke-triggered estimate lookups. Every
// Search call supersedes the previous one: a pending timer is stopped, an
// in-flight request gets its context cancelled, and a response is applied
// only while its generation is still the latest. The last query wins even
// when responses arrive out of order.
//
// The handler runs with the searcher's lock held so the generation check
// and the apply are atomic; it must not call back into the searcher.
type EstimateSearcher struct {
	api   *Client
	delay time.Duration
	limit int
	apply SearchHandler

	mu     sync.Mutex
	gen    uint64
	timer  *time.Timer
	cancel context.CancelFunc
}

// NewEstimateSearcher builds a searcher delivering results to apply.
// A delay of zero or less falls back to DefaultSearchDelay.
func NewEstimateSearcher(api *Client, delay time.Duration, apply SearchHandler) *EstimateSearcher {
	if delay <= 0 {
		delay = DefaultSearchDelay
	}
	return &EstimateSearcher{api: api, delay: delay, limit: 20, apply: apply}
}

// Search registers a keystroke. The lookup fires once the debounce window
// passes without another Search arriving.
func (s *EstimateSearcher) Search(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	gen := s.gen

	if s.timer != nil {
		s.timer.Stop()
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.timer = time.AfterFunc(s.delay, func() { s.run(gen, query) })
}

// Stop drops any pending or in-flight lookup. The searcher stays usable.
func (s *EstimateSearcher) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *EstimateSearcher) run(gen uint64, query string) {
	s.mu.Lock()
	if gen != s.gen {
		// Superseded while the timer was pending.
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	page, err := s.api.SearchEstimates(ctx, query, 1, s.limit)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// Stale response; a newer query owns the view now.
		return
	}
	s.cancel = nil
	cancel()
	s.apply(query, page, err)
}
