package listview

import (
	"sync"
	"time"

	"github.com/bep/debounce"
)

// SearchWait is how long input must be quiet before the filter stage runs.
const SearchWait = 300 * time.Millisecond

// SearchDebouncer collapses bursts of search-term changes into a single
// emission of the latest value, and suppresses an emission identical to the
// previous one so the pipeline is not retriggered for a no-op.
type SearchDebouncer struct {
	mu        sync.Mutex
	debounced func(func())
	pending   string
	last      string
	emitted   bool
	apply     func(term string)
}

// NewSearchDebouncer returns a debouncer calling apply with the settled term.
func NewSearchDebouncer(wait time.Duration, apply func(term string)) *SearchDebouncer {
	return &SearchDebouncer{
		debounced: debounce.New(wait),
		apply:     apply,
	}
}

// Set records a new search term and (re)arms the debounce timer.
func (d *SearchDebouncer) Set(term string) {
	d.mu.Lock()
	d.pending = term
	d.mu.Unlock()
	d.debounced(d.emit)
}

func (d *SearchDebouncer) emit() {
	d.mu.Lock()
	term := d.pending
	if d.emitted && term == d.last {
		d.mu.Unlock()
		return
	}
	d.emitted = true
	d.last = term
	d.mu.Unlock()

	d.apply(term)
}
