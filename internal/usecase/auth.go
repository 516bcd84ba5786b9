package usecase

import (
	"context"
	"errors"

	"portaria/internal/domain/user"
	"portaria/internal/pkg/jwt"
	"portaria/internal/pkg/password"
	"portaria/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserInactive         = errors.New("user account is inactive")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (*TokenPair, *readmodel.AuthorizedUserRM, error)
	Refresh(refreshToken string) (*TokenPair, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

type authUseCaseImpl struct {
	profiles   ProfileRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(profiles ProfileRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		profiles:   profiles,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (*TokenPair, *readmodel.AuthorizedUserRM, error) {
	profile, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, nil, err
	}

	role, err := user.NewRole(profile.Role)
	if err != nil {
		return nil, nil, ErrAuthenticationFailed
	}

	pair, err := a.generatePair(profile.ID, role)
	if err != nil {
		return nil, nil, err
	}

	return pair, profile, nil
}

func (a *authUseCaseImpl) validateUser(ctx context.Context, credentials user.Credentials) (*readmodel.AuthorizedUserRM, error) {
	profile, hashedPassword, err := a.profiles.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		return nil, ErrUserNotFound
	}

	if !profile.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return profile, nil
}

func (a *authUseCaseImpl) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, ErrTokenValidation
	}

	return a.generatePair(claims.UserID, role)
}

func (a *authUseCaseImpl) generatePair(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	profile, err := a.profiles.FindByID(ctx, userID)
	if err != nil || profile == nil {
		return nil, ErrUserNotFound
	}

	if !profile.IsActive {
		return nil, ErrUserInactive
	}

	return profile, nil
}
