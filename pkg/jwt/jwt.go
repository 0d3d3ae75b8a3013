package jwt

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	instance *JWT
	once     sync.Once

	ErrJWTNotInitialized = errors.New("jwt: instance not initialized")
	ErrInvalidToken      = errors.New("jwt: invalid token")
	ErrTokenExpired      = errors.New("jwt: token expired")
)

// JWT reads tokens issued by the turfics API. Without a shared secret the
// signature is not verified and only the expiry is checked.
type JWT struct {
	secretKey string
	now       func() time.Time
}

func Initialize(secretKey string) {
	once.Do(func() {
		instance = New(secretKey)
	})
}

func New(secretKey string) *JWT {
	return &JWT{secretKey: secretKey, now: time.Now}
}

func GetInstance() *JWT {
	return instance
}

func ValidateToken(tokenString string) (*Claims, error) {
	if GetInstance() == nil {
		return nil, ErrJWTNotInitialized
	}

	return GetInstance().Parse(tokenString)
}

func (j *JWT) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	if j.secretKey == "" {
		if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
		}

		if claims.ExpiresAt != nil && !claims.ExpiresAt.After(j.now()) {
			return nil, ErrTokenExpired
		}

		return claims, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (interface{}, error) {
		return []byte(j.secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS512.Alg()}), jwt.WithTimeFunc(j.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
