package directors

import (
	"context"
	"errors"
	"log/slog"

	"theatre/ticketing/internal/domain/filters"
	"theatre/ticketing/internal/domain/models"
	"theatre/ticketing/internal/storage"
)

type DirectorsStorage interface {
	Get(ctx context.Context, id int64) (*models.Director, error)
	Insert(ctx context.Context, director *models.Director) (*models.Director, error)
	List(ctx context.Context, pagination filters.Pagination) ([]models.Director, error)
	Update(ctx context.Context, director *models.Director) (*models.Director, error)
	Delete(ctx context.Context, id int64) (*models.Director, error)
}

type DirectorService struct {
	log     *slog.Logger
	storage DirectorsStorage
}

func New(log *slog.Logger, storage DirectorsStorage) *DirectorService {
	return &DirectorService{
		log:     log,
		storage: storage,
	}
}

func (s *DirectorService) Get(ctx context.Context, id int64) (*models.Director, error) {
	const op = "directors.DirectorService.Get"
	log := s.log.With("op", op, "id", id)
	director, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("director not found")
			return nil, ErrDirectorNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return director, nil
}

func (s *DirectorService) Create(ctx context.Context, director models.Director) (*models.Director, error) {
	const op = "directors.DirectorService.Create"
	log := s.log.With("op", op, "play_id", director.PlayID)
	created, err := s.storage.Insert(ctx, &director)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidReference) {
			log.Info("play does not exist")
			return nil, ErrUnknownPlay
		}
		log.Error(err.Error())
		return nil, err
	}
	log.Info("director created", "id", created.ID)
	return created, nil
}

func (s *DirectorService) List(ctx context.Context, pagination filters.Pagination) ([]models.Director, error) {
	const op = "directors.DirectorService.List"
	log := s.log.With("op", op, "skip", pagination.Skip, "limit", pagination.Limit)
	directors, err := s.storage.List(ctx, pagination)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return directors, nil
}

func (s *DirectorService) Update(ctx context.Context, id int64, patch models.DirectorPatch) (*models.Director, error) {
	const op = "directors.DirectorService.Update"
	log := s.log.With("op", op, "id", id)
	director, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(director)
	updated, err := s.storage.Update(ctx, director)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Info("director removed before update")
			return nil, ErrDirectorNotFound
		case errors.Is(err, storage.ErrInvalidReference):
			log.Info("play does not exist")
			return nil, ErrUnknownPlay
		}
		log.Error("Error updating director: " + err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *DirectorService) Delete(ctx context.Context, id int64) (*models.Director, error) {
	const op = "directors.DirectorService.Delete"
	log := s.log.With("op", op, "id", id)
	deleted, err := s.storage.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("director not found")
			return nil, ErrDirectorNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	log.Info("director deleted")
	return deleted, nil
}
