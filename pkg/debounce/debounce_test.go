package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_OnlyLastRuns(t *testing.T) {
	d := New(20 * time.Millisecond)
	defer d.Stop()

	var (
		mu   sync.Mutex
		runs []string
	)

	record := func(v string) func(uint64) {
		return func(uint64) {
			mu.Lock()
			runs = append(runs, v)
			mu.Unlock()
		}
	}

	d.Trigger(record("fo"))
	d.Trigger(record("foo"))
	last := d.Trigger(record("foot"))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return len(runs) == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(40 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, []string{"foot"}, runs)
	mu.Unlock()

	assert.True(t, d.Current(last))
}

func TestDebouncer_StaleGeneration(t *testing.T) {
	d := New(time.Millisecond)
	defer d.Stop()

	started := make(chan uint64, 1)
	d.Trigger(func(gen uint64) { started <- gen })

	gen := <-started
	assert.True(t, d.Current(gen))

	d.Trigger(func(uint64) {})
	assert.False(t, d.Current(gen), "a newer trigger makes in-flight results stale")

	d.Invalidate()
	assert.False(t, d.Current(gen+1))
}

func TestDebouncer_Stop(t *testing.T) {
	d := New(5 * time.Millisecond)

	fired := make(chan struct{}, 1)
	gen := d.Trigger(func(uint64) { fired <- struct{}{} })
	d.Stop()

	select {
	case <-fired:
		t.Fatal("stopped debouncer must not fire")
	case <-time.After(30 * time.Millisecond):
	}

	assert.False(t, d.Current(gen))
}
