package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"theatre/ticketing/internal/domain/filters"
	"theatre/ticketing/internal/domain/models"
	"theatre/ticketing/internal/lib/passwords"
	"theatre/ticketing/internal/storage"
)

type UsersStorage interface {
	Get(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Insert(ctx context.Context, username, passwordHash, role string) (*models.User, error)
	List(ctx context.Context, pagination filters.Pagination) ([]models.User, error)
	UpdateRole(ctx context.Context, id int64, role string) (*models.User, error)
	Delete(ctx context.Context, id int64) (*models.User, error)
}

type UserService struct {
	log     *slog.Logger
	storage UsersStorage
}

func New(log *slog.Logger, storage UsersStorage) *UserService {
	return &UserService{
		log:     log,
		storage: storage,
	}
}

// Create registers a user with a bcrypt-hashed password. An empty role means
// models.RoleCustomer.
func (s *UserService) Create(ctx context.Context, username, password, role string) (*models.User, error) {
	const op = "users.UserService.Create"
	log := s.log.With("op", op, "username", username)
	if role == "" {
		role = models.RoleCustomer
	}
	if !models.IsValidRole(role) {
		return nil, ErrInvalidRole
	}
	if _, err := s.storage.GetByUsername(ctx, username); err == nil {
		log.Info("username already registered")
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Error(err.Error())
		return nil, err
	}
	hash, err := passwords.Hash(password)
	if err != nil {
		log.Error("failed to hash password", "errMsg", err.Error())
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user, err := s.storage.Insert(ctx, username, hash, role)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Info("username already registered")
			return nil, ErrUsernameTaken
		}
		log.Error(err.Error())
		return nil, err
	}
	log.Info("user created", "id", user.ID, "role", user.Role)
	return user, nil
}

// EnsureAdmin creates the admin account unless a user with that name already
// exists. An existing admin keeps its password; an existing non-admin user is
// an error.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) error {
	const op = "users.UserService.EnsureAdmin"
	_, err := s.Create(ctx, username, password, models.RoleAdmin)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrUsernameTaken) {
		return fmt.Errorf("%s: %w", op, err)
	}
	existing, err := s.storage.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if existing.Role != models.RoleAdmin {
		return fmt.Errorf("%s: %w: %q has role %q", op, ErrNotAdmin, username, existing.Role)
	}
	return nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	const op = "users.UserService.Get"
	log := s.log.With("op", op, "id", id)
	user, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("user not found")
			return nil, ErrUserNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, pagination filters.Pagination) ([]models.User, error) {
	const op = "users.UserService.List"
	log := s.log.With("op", op, "skip", pagination.Skip, "limit", pagination.Limit)
	users, err := s.storage.List(ctx, pagination)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return users, nil
}

func (s *UserService) UpdateRole(ctx context.Context, id int64, role string) (*models.User, error) {
	const op = "users.UserService.UpdateRole"
	log := s.log.With("op", op, "id", id, "role", role)
	if !models.IsValidRole(role) {
		return nil, ErrInvalidRole
	}
	user, err := s.storage.UpdateRole(ctx, id, role)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("user not found")
			return nil, ErrUserNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	log.Info("role updated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) (*models.User, error) {
	const op = "users.UserService.Delete"
	log := s.log.With("op", op, "id", id)
	user, err := s.storage.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("user not found")
			return nil, ErrUserNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	log.Info("user deleted")
	return user, nil
}
