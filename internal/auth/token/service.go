package token

import (
	"context"
	"time"

	"github.com/Rapter1990/footballteamapi/internal/auth/domain"
	"github.com/Rapter1990/footballteamapi/internal/common/apperror"

	"github.com/golang-jwt/jwt/v5"
)

// InvalidTokenChecker reports whether a token id has been revoked.
type InvalidTokenChecker interface {
	CheckForInvalidity(ctx context.Context, tokenID string) error
}

// Service is the authoritative facade for the token lifecycle: issuance,
// verification, refresh and claims extraction. An issued pair stays valid
// until its expiry elapses or its id lands in the invalid-token ledger;
// neither state can be left again, a new pair must be minted.
type Service struct {
	codec         *Codec
	invalidTokens InvalidTokenChecker
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewService(codec *Codec, invalidTokens InvalidTokenChecker, accessTokenExpireMinutes, refreshTokenExpireDays int) *Service {
	return &Service{
		codec:         codec,
		invalidTokens: invalidTokens,
		accessExpiry:  time.Duration(accessTokenExpireMinutes) * time.Minute,
		refreshExpiry: time.Duration(refreshTokenExpireDays) * 24 * time.Hour,
	}
}

// Generate mints a fresh access/refresh pair carrying the same claims. A
// brand-new pair is presumed valid, so the ledger is not consulted.
func (s *Service) Generate(claims map[string]any) (*domain.Token, error) {
	accessToken, _, accessExpiresAt, err := s.codec.Encode(claims, s.accessExpiry)
	if err != nil {
		return nil, err
	}

	refreshToken, _, _, err := s.codec.Encode(claims, s.refreshExpiry)
	if err != nil {
		return nil, err
	}

	return &domain.Token{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessExpiresAt,
		RefreshToken:         refreshToken,
	}, nil
}

// GenerateWithRefresh is the refresh path: it rejects a revoked refresh
// token, mints only a new access token and hands the same refresh token back
// unchanged. The refresh token stays the renewable anchor until its own
// expiry.
func (s *Service) GenerateWithRefresh(ctx context.Context, claims map[string]any, refreshToken string) (*domain.Token, error) {
	refreshTokenID, err := s.tokenID(refreshToken)
	if err != nil {
		return nil, err
	}

	if err := s.invalidTokens.CheckForInvalidity(ctx, refreshTokenID); err != nil {
		return nil, err
	}

	accessToken, _, accessExpiresAt, err := s.codec.Encode(claims, s.accessExpiry)
	if err != nil {
		return nil, err
	}

	return &domain.Token{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessExpiresAt,
		RefreshToken:         refreshToken,
	}, nil
}

// GetPayload verifies the token's signature and expiry and returns its
// claims. The invalid-token ledger is not consulted here.
func (s *Service) GetPayload(tokenString string) (jwt.MapClaims, error) {
	return s.codec.Decode(tokenString)
}

// VerifyAndValidate checks signature and expiry. A failed token is a
// terminal rejection requiring re-authentication.
func (s *Service) VerifyAndValidate(tokenString string) error {
	_, err := s.codec.Decode(tokenString)
	return err
}

// VerifyAndValidateAll applies VerifyAndValidate to each token and stops at
// the first failure.
func (s *Service) VerifyAndValidateAll(tokenStrings []string) error {
	for _, tokenString := range tokenStrings {
		if err := s.VerifyAndValidate(tokenString); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) tokenID(tokenString string) (string, error) {
	claims, err := s.codec.Decode(tokenString)
	if err != nil {
		return "", err
	}
	tokenID, ok := claims[domain.ClaimTokenID].(string)
	if !ok || tokenID == "" {
		return "", apperror.ErrInvalidToken
	}
	return tokenID, nil
}
