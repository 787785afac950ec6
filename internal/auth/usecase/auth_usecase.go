package usecase

import (
	"context"

	"github.com/Rapter1990/footballteamapi/internal/auth/domain"
	"github.com/Rapter1990/footballteamapi/internal/auth/dto"
	"github.com/Rapter1990/footballteamapi/internal/auth/repository"
	"github.com/Rapter1990/footballteamapi/internal/auth/token"
	"github.com/Rapter1990/footballteamapi/internal/common/apperror"
)

// authUsecase implements AuthUsecase.
type authUsecase struct {
	userRepo      repository.UserRepository
	tokenService  *token.Service
	invalidTokens InvalidTokenUsecase
}

func NewAuthUsecase(userRepo repository.UserRepository, tokenService *token.Service, invalidTokens InvalidTokenUsecase) AuthUsecase {
	return &authUsecase{
		userRepo:      userRepo,
		tokenService:  tokenService,
		invalidTokens: invalidTokens,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*domain.Token, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperror.ErrPasswordNotValid
	}

	return u.tokenService.Generate(user.Claims())
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error) {
	exists, err := u.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.ErrUserAlreadyExist
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:       req.Email,
		Password:    hashedPassword,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		UserType:    domain.UserTypeUser,
		UserStatus:  domain.UserStatusActive,
	}

	if err := u.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.TokenRefreshRequest) (*domain.Token, error) {
	if err := u.tokenService.VerifyAndValidate(req.RefreshToken); err != nil {
		return nil, err
	}

	payload, err := u.tokenService.GetPayload(req.RefreshToken)
	if err != nil {
		return nil, err
	}

	userID, ok := payload[domain.ClaimUserID].(string)
	if !ok || userID == "" {
		return nil, apperror.ErrInvalidToken
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}

	if user.UserStatus != domain.UserStatusActive {
		return nil, apperror.ErrUserStatusNotValid
	}

	return u.tokenService.GenerateWithRefresh(ctx, user.Claims(), req.RefreshToken)
}

func (u *authUsecase) Logout(ctx context.Context, req *dto.TokenInvalidateRequest) error {
	if err := u.tokenService.VerifyAndValidateAll([]string{req.AccessToken, req.RefreshToken}); err != nil {
		return err
	}

	accessTokenID, err := u.extractTokenID(req.AccessToken)
	if err != nil {
		return err
	}
	if err := u.invalidTokens.CheckForInvalidity(ctx, accessTokenID); err != nil {
		return err
	}

	refreshTokenID, err := u.extractTokenID(req.RefreshToken)
	if err != nil {
		return err
	}
	if err := u.invalidTokens.CheckForInvalidity(ctx, refreshTokenID); err != nil {
		return err
	}

	// Both ids go to the ledger together so neither token can be replayed.
	return u.invalidTokens.InvalidateTokens(ctx, []string{accessTokenID, refreshTokenID})
}

func (u *authUsecase) extractTokenID(tokenString string) (string, error) {
	payload, err := u.tokenService.GetPayload(tokenString)
	if err != nil {
		return "", err
	}
	tokenID, ok := payload[domain.ClaimTokenID].(string)
	if !ok || tokenID == "" {
		return "", apperror.ErrInvalidToken
	}
	return tokenID, nil
}
