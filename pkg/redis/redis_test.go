package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("success: options are applied", func(t *testing.T) {
		r, err := New("localhost:6379", "", 2, PoolSize(20), DialTimeout(2*time.Second))
		require.NoError(t, err)
		defer r.Close()

		opts := r.Client.Options()
		assert.Equal(t, 2, opts.DB)
		assert.Equal(t, 20, opts.PoolSize)
		assert.Equal(t, 2*time.Second, opts.DialTimeout)
	})

	t.Run("success: zero values keep the defaults", func(t *testing.T) {
		r, err := New("localhost:6379", "", 0, PoolSize(0), DialTimeout(0))
		require.NoError(t, err)
		defer r.Close()

		assert.Positive(t, r.Client.Options().PoolSize)
		assert.Equal(t, 5*time.Second, r.Client.Options().DialTimeout)
	})

	t.Run("error: empty address", func(t *testing.T) {
		_, err := New("", "", 0)
		assert.Error(t, err)
	})
}
