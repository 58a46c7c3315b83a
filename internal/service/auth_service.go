package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"hbnb/internal/cache"
	"hbnb/internal/jwt"
	"hbnb/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
	Authenticate(ctx context.Context, token string) (*jwt.Claims, error)
	CurrentUser(ctx context.Context, claims *jwt.Claims) (*models.UserResponse, error)
}

type authService struct {
	facade     HBnBFacade
	presenter  *Presenter
	jwtService *jwt.JWTService
	denylist   *cache.TokenDenylist
	log        zerolog.Logger
}

// NewAuthService creates a new auth service. denylist may wrap a nil cache,
// in which case logout does not revoke anything.
func NewAuthService(facade HBnBFacade, jwtService *jwt.JWTService, denylist *cache.TokenDenylist, logger zerolog.Logger) AuthService {
	return &authService{
		facade:     facade,
		presenter:  NewPresenter(facade),
		jwtService: jwtService,
		denylist:   denylist,
		log:        logger.With().Str("component", "auth").Logger(),
	}
}

// Login checks the credentials and issues an access token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, ok := s.facade.GetUserByEmail(req.Email)
	if !ok || !user.VerifyPassword(req.Password) {
		s.log.Info().Str("email", req.Email).Msg("login rejected")
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Debug().Str("user_id", user.ID).Msg("user logged in")
	return &models.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt.UTC(),
		User:        s.presenter.User(user),
	}, nil
}

// Logout revokes the token described by claims until it expires
func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if claims.ExpiresAt == nil {
		return ErrUnauthorized
	}
	if err := s.denylist.Revoke(ctx, claims.ID, claims.UserID, claims.ExpiresAt.Time); err != nil {
		return err
	}
	s.log.Debug().Str("user_id", claims.UserID).Bool("persisted", s.denylist.Enabled()).Msg("user logged out")
	return nil
}

// Authenticate validates a token and rejects it if it has been revoked
func (s *authService) Authenticate(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

// CurrentUser loads the user a token was issued to
func (s *authService) CurrentUser(ctx context.Context, claims *jwt.Claims) (*models.UserResponse, error) {
	user, ok := s.facade.GetUser(claims.UserID)
	if !ok {
		return nil, ErrUnauthorized
	}
	resp := s.presenter.User(user)
	return &resp, nil
}
