package auth

import (
	"context"
	"errors"
	"log/slog"

	"theatre/ticketing/internal/domain/models"
	"theatre/ticketing/internal/lib/metrics"
	"theatre/ticketing/internal/lib/passwords"
	"theatre/ticketing/internal/storage"
)

const TokenType = "bearer"

type UsersStorage interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// LoginResult is the body of a successful token request.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
	Role        string `json:"role"`
}

type AuthService struct {
	log    *slog.Logger
	users  UsersStorage
	tokens *Tokens
}

func New(log *slog.Logger, users UsersStorage, tokens *Tokens) *AuthService {
	return &AuthService{
		log:    log,
		users:  users,
		tokens: tokens,
	}
}

func (a *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	const op = "auth.AuthService.Login"
	log := a.log.With("op", op, "username", username)
	user, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("unknown username")
			metrics.RecordLogin(false)
			return nil, ErrInvalidCredentials
		}
		log.Error(err.Error())
		return nil, err
	}
	ok, err := passwords.Matches(password, user.PasswordHash)
	if err != nil {
		log.Error("Error comparing password hash", "errMsg", err.Error())
		return nil, err
	}
	if !ok {
		log.Info("wrong password")
		metrics.RecordLogin(false)
		return nil, ErrInvalidCredentials
	}
	token, err := a.tokens.Issue(user.Username, user.Role)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	metrics.RecordLogin(true)
	return &LoginResult{
		AccessToken: token,
		TokenType:   TokenType,
		Username:    user.Username,
		Role:        user.Role,
	}, nil
}

// Authenticate resolves a bearer token to the user it was issued for. The role
// is taken from the stored user, so role changes apply to existing tokens.
func (a *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	const op = "auth.AuthService.Authenticate"
	log := a.log.With("op", op)
	claims, err := a.tokens.Parse(token)
	if err != nil {
		log.Debug("token rejected")
		return nil, err
	}
	user, err := a.users.GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("token subject no longer exists", "username", claims.Subject)
			return nil, ErrInvalidToken
		}
		log.Error(err.Error())
		return nil, err
	}
	return user, nil
}

// Authorize checks for an exact role match. Roles have no hierarchy.
func Authorize(user *models.User, requiredRole string) error {
	if user == nil || user.Role != requiredRole {
		return &ForbiddenError{Required: requiredRole}
	}
	return nil
}
