// Package token implements the signed-token core: an RS256 codec and the
// lifecycle service built on top of it.
package token

import (
	"crypto/rsa"
	"time"

	"github.com/Rapter1990/footballteamapi/internal/common/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Codec serializes a claim set into a compact signed token and verifies such
// tokens back into claims. It is the only component that touches the wire
// format.
type Codec struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	issuer     string
}

func NewCodec(privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey, issuer string) *Codec {
	return &Codec{
		privateKey: privateKey,
		publicKey:  publicKey,
		issuer:     issuer,
	}
}

// Encode signs the given claims together with a fresh token id, the issuer,
// issued-at and expiry. It returns the compact token, its id and the expiry
// as epoch seconds.
func (c *Codec) Encode(claims map[string]any, expiry time.Duration) (string, string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(expiry)
	tokenID := uuid.New().String()

	tokenClaims := jwt.MapClaims{
		"jti": tokenID,
		"iss": c.issuer,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}
	for key, value := range claims {
		tokenClaims[key] = value
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, tokenClaims).SignedString(c.privateKey)
	if err != nil {
		return "", "", 0, err
	}

	return signed, tokenID, expiresAt.Unix(), nil
}

// Decode verifies the signature and expiry of a compact token and returns its
// claims. Malformed structure, a bad signature and expiry all surface as the
// same ErrInvalidToken so callers cannot tell which check failed.
func (c *Codec) Decode(tokenString string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, apperror.ErrInvalidToken
		}
		return c.publicKey, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, apperror.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperror.ErrInvalidToken
	}

	return claims, nil
}
