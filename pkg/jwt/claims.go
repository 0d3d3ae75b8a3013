package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims mirrors the access tokens issued by the turfics API: the subject is
// the user id and role/username are additional claims.
type Claims struct {
	Role     string `json:"role"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() string {
	return c.Subject
}
