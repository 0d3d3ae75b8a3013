package failure

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, GetCode(BadRequestFromString("bad")))
	assert.Equal(t, http.StatusConflict, GetCode(fmt.Errorf("wrapped: %w", Conflict("taken"))))
	assert.Equal(t, http.StatusInternalServerError, GetCode(errors.New("plain")))
	assert.Nil(t, BadRequest(nil))
	assert.Nil(t, InternalError(nil))
}

func TestSessionExpired(t *testing.T) {
	err := SessionExpired()

	assert.Equal(t, http.StatusUnauthorized, GetCode(err))
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.NotErrorIs(t, Unauthorized("missing header"), ErrSessionExpired)
}

func TestUpstream(t *testing.T) {
	t.Run("success: client errors keep status", func(t *testing.T) {
		err := Upstream(http.StatusConflict, "Slot is already booked")

		assert.Equal(t, http.StatusConflict, GetCode(err))
		assert.Equal(t, "Slot is already booked", err.Error())
	})

	t.Run("success: server errors become bad gateway", func(t *testing.T) {
		err := Upstream(http.StatusServiceUnavailable, "")

		assert.Equal(t, http.StatusBadGateway, GetCode(err))
		assert.Equal(t, "Service Unavailable", err.Error())
	})
}
