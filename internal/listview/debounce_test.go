package listview

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu    sync.Mutex
	terms []string
}

func (r *recorder) apply(term string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.terms = append(r.terms, term)
}

func (r *recorder) got() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.terms...)
}

func TestDebounceCollapsesBurstToLatest(t *testing.T) {
	rec := &recorder{}
	d := NewSearchDebouncer(100*time.Millisecond, rec.apply)

	d.Set("pae")
	time.Sleep(50 * time.Millisecond)
	d.Set("paella")

	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, []string{"paella"}, rec.got())
}

func TestDebounceSuppressesRepeatedValue(t *testing.T) {
	rec := &recorder{}
	d := NewSearchDebouncer(50*time.Millisecond, rec.apply)

	d.Set("gazpacho")
	time.Sleep(150 * time.Millisecond)
	d.Set("gazpacho")
	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, []string{"gazpacho"}, rec.got())
}

func TestDebounceEmitsChangedValueAfterQuietPeriod(t *testing.T) {
	rec := &recorder{}
	d := NewSearchDebouncer(50*time.Millisecond, rec.apply)

	d.Set("pan")
	time.Sleep(150 * time.Millisecond)
	d.Set("tomate")
	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, []string{"pan", "tomate"}, rec.got())
}
