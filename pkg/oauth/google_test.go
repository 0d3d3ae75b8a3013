package oauth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"golang.org/x/oauth2"
)

type stubDoer struct {
	status int
	body   string
	auth   string
}

func (s *stubDoer) DoTimeout(req *fasthttp.Request, resp *fasthttp.Response, _ time.Duration) error {
	s.auth = string(req.Header.Peek(fasthttp.HeaderAuthorization))
	resp.SetStatusCode(s.status)
	resp.SetBodyString(s.body)

	return nil
}

func TestGoogleProvider(t *testing.T) {
	p := NewGoogleProvider("client", "secret", "http://localhost:8080/api/v1/oauth/google/callback")

	t.Run("success: auth url carries state", func(t *testing.T) {
		u := p.GetAuthURL("state-1")
		assert.True(t, strings.HasPrefix(u, "https://accounts.google.com/"))
		assert.Contains(t, u, "state=state-1")
		assert.Contains(t, u, "client_id=client")
	})

	t.Run("success: user info", func(t *testing.T) {
		d := &stubDoer{status: fasthttp.StatusOK, body: `{"id":"g-1","email":"asha@example.com","verified_email":true,"name":"Asha"}`}
		p.doer = d

		info, err := p.GetUserInfo(&oauth2.Token{AccessToken: "at"})
		require.NoError(t, err)
		assert.Equal(t, "asha@example.com", info.Email)
		assert.Equal(t, "Bearer at", d.auth)
	})

	t.Run("error: rejected token", func(t *testing.T) {
		p.doer = &stubDoer{status: fasthttp.StatusUnauthorized, body: `{}`}

		_, err := p.GetUserInfo(&oauth2.Token{AccessToken: "bad"})
		assert.Error(t, err)
	})
}
