package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_Lifecycle(t *testing.T) {
	s := New()
	assert.False(t, s.Active())
	assert.Empty(t, s.Token())

	s.Begin("tok", Identity{UserID: "7", Username: "ravi", Role: "player"})
	assert.True(t, s.Active())
	assert.Equal(t, "tok", s.Token())
	assert.Equal(t, "ravi", s.Identity().Username)

	s.End()
	assert.False(t, s.Active())
	assert.Empty(t, s.Token())
	assert.Empty(t, s.Identity().UserID)
}

func TestSession_Invalidate(t *testing.T) {
	s := New()
	s.Begin("tok", Identity{UserID: "7"})

	assert.True(t, s.Invalidate("upstream status 422"))
	assert.False(t, s.Invalidate("upstream status 401"))

	assert.Empty(t, s.Token())
	assert.False(t, s.Active())

	ev, ok := s.Invalidated()
	assert.True(t, ok)
	assert.Equal(t, "upstream status 422", ev.Reason)
	assert.Equal(t, "/login", ev.Redirect)

	s.Begin("fresh", Identity{UserID: "7"})
	_, ok = s.Invalidated()
	assert.False(t, ok)
}

func TestSession_InvalidateInactive(t *testing.T) {
	s := New()

	assert.False(t, s.Invalidate("nothing to clear"))

	_, ok := s.Invalidated()
	assert.False(t, ok)
}
