package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the {id, name} pair a session token asserts.
type Identity struct {
	ID   uuid.UUID
	Name string
}

// TokenService signs and verifies HS256 session tokens. Tokens are
// self-contained; there is no server-side session store.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token bound to the given identity, valid for one day.
func (s *TokenService) Issue(identity Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  identity.ID.String(),
		"name": identity.Name,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and resolves the asserted identity.
func (s *TokenService) Verify(tokenStr string) (Identity, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	name, _ := claims["name"].(string)
	return Identity{ID: id, Name: name}, nil
}
