package token

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/Rapter1990/footballteamapi/internal/auth/domain"
	"github.com/Rapter1990/footballteamapi/internal/common/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKeyPair(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	key := newTestKeyPair(t)
	return NewCodec(key, &key.PublicKey, "footballteamapi")
}

func TestCodecRoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	claims := map[string]any{
		domain.ClaimUserID:    "42",
		domain.ClaimUserEmail: "user@example.com",
	}

	tokenString, tokenID, expiresAt, err := codec.Encode(claims, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.NotEmpty(t, tokenID)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := codec.Decode(tokenString)
	require.NoError(t, err)

	assert.Equal(t, "42", decoded[domain.ClaimUserID])
	assert.Equal(t, "user@example.com", decoded[domain.ClaimUserEmail])
	assert.Equal(t, tokenID, decoded["jti"])
	assert.Equal(t, "footballteamapi", decoded["iss"])
}

func TestCodecEncodeGeneratesUniqueTokenIDs(t *testing.T) {
	codec := newTestCodec(t)

	_, firstID, _, err := codec.Encode(nil, time.Hour)
	require.NoError(t, err)
	_, secondID, _, err := codec.Encode(nil, time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, firstID, secondID)
}

func TestCodecDecodeExpiredToken(t *testing.T) {
	codec := newTestCodec(t)

	tokenString, _, _, err := codec.Encode(map[string]any{domain.ClaimUserID: "42"}, -time.Minute)
	require.NoError(t, err)

	_, err = codec.Decode(tokenString)
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestCodecDecodeWrongKey(t *testing.T) {
	signingKey := newTestKeyPair(t)
	otherKey := newTestKeyPair(t)

	signer := NewCodec(signingKey, &signingKey.PublicKey, "footballteamapi")
	verifier := NewCodec(otherKey, &otherKey.PublicKey, "footballteamapi")

	tokenString, _, _, err := signer.Encode(map[string]any{domain.ClaimUserID: "42"}, time.Hour)
	require.NoError(t, err)

	_, err = verifier.Decode(tokenString)
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestCodecDecodeMalformedToken(t *testing.T) {
	codec := newTestCodec(t)

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		_, err := codec.Decode(tokenString)
		assert.ErrorIs(t, err, apperror.ErrInvalidToken)
	}
}
