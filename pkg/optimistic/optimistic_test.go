package optimistic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	v      []string
	writes int
}

func (m *memStore) Load(context.Context) ([]string, error) {
	return m.v, nil
}

func (m *memStore) Store(_ context.Context, v []string) error {
	m.v = v
	m.writes++

	return nil
}

func prepend(item string) func([]string) []string {
	return func(cur []string) []string {
		return append([]string{item}, cur...)
	}
}

func inline(f func()) { f() }

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("success: commit then reconcile", func(t *testing.T) {
		s := &memStore{v: []string{"old"}}

		got, err := Run[[]string](ctx, s, Update[[]string]{
			Apply:  prepend("Finals moved to 6pm"),
			Remote: func(context.Context) error { return nil },
			Reconcile: func(context.Context) ([]string, error) {
				return []string{"Finals moved to 6pm", "old", "server-side extra"}, nil
			},
			Go:        inline,
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"Finals moved to 6pm", "old"}, got)
		assert.Equal(t, []string{"Finals moved to 6pm", "old", "server-side extra"}, s.v)
	})

	t.Run("error: remote failure reverts to snapshot", func(t *testing.T) {
		s := &memStore{v: []string{"old"}}
		boom := errors.New("upstream 500")

		got, err := Run[[]string](ctx, s, Update[[]string]{
			Apply:  prepend("draft"),
			Remote: func(context.Context) error { return boom },
			Reconcile: func(context.Context) ([]string, error) {
				t.Fatal("reconcile must not run after failure")

				return nil, nil
			},
			Go:        inline,
		})

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"old"}, got)
		assert.Equal(t, []string{"old"}, s.v)
		assert.Equal(t, 2, s.writes)
	})

	t.Run("error: reconcile failure keeps speculative value", func(t *testing.T) {
		s := &memStore{v: nil}

		var reported error

		_, err := Run[[]string](ctx, s, Update[[]string]{
			Apply:     prepend("x"),
			Remote:    func(context.Context) error { return nil },
			Reconcile: func(context.Context) ([]string, error) { return nil, errors.New("timeout") },
			Go:        inline,
			OnError:   func(err error) { reported = err },
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, s.v)
		assert.ErrorContains(t, reported, "reconcile")
	})
}
