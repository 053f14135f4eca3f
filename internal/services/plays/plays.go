package plays

import (
	"context"
	"errors"
	"log/slog"

	"theatre/ticketing/internal/domain/filters"
	"theatre/ticketing/internal/domain/models"
	"theatre/ticketing/internal/storage"
)

type PlaysStorage interface {
	Get(ctx context.Context, id int64) (*models.Play, error)
	Insert(ctx context.Context, play *models.Play) (*models.Play, error)
	List(ctx context.Context, pagination filters.Pagination) ([]models.Play, error)
	Update(ctx context.Context, play *models.Play) (*models.Play, error)
	Delete(ctx context.Context, id int64) (*models.Play, error)
}

type PlayService struct {
	log     *slog.Logger
	storage PlaysStorage
}

func New(log *slog.Logger, storage PlaysStorage) *PlayService {
	return &PlayService{
		log:     log,
		storage: storage,
	}
}

func (s *PlayService) Get(ctx context.Context, id int64) (*models.Play, error) {
	const op = "plays.PlayService.Get"
	log := s.log.With("op", op, "id", id)
	play, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("play not found")
			return nil, ErrPlayNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return play, nil
}

func (s *PlayService) Create(ctx context.Context, play models.Play) (*models.Play, error) {
	const op = "plays.PlayService.Create"
	log := s.log.With("op", op, "title", play.Title)
	created, err := s.storage.Insert(ctx, &play)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	log.Info("play created", "id", created.ID)
	return created, nil
}

func (s *PlayService) List(ctx context.Context, pagination filters.Pagination) ([]models.Play, error) {
	const op = "plays.PlayService.List"
	log := s.log.With("op", op, "skip", pagination.Skip, "limit", pagination.Limit)
	plays, err := s.storage.List(ctx, pagination)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return plays, nil
}

func (s *PlayService) Update(ctx context.Context, id int64, patch models.PlayPatch) (*models.Play, error) {
	const op = "plays.PlayService.Update"
	log := s.log.With("op", op, "id", id)
	play, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(play)
	updated, err := s.storage.Update(ctx, play)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("play removed before update")
			return nil, ErrPlayNotFound
		}
		log.Error("Error updating play: " + err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *PlayService) Delete(ctx context.Context, id int64) (*models.Play, error) {
	const op = "plays.PlayService.Delete"
	log := s.log.With("op", op, "id", id)
	deleted, err := s.storage.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Info("play not found")
			return nil, ErrPlayNotFound
		case errors.Is(err, storage.ErrReferenced):
			log.Info("play still referenced", "reason", err.Error())
			return nil, ErrPlayInUse
		}
		log.Error(err.Error())
		return nil, err
	}
	log.Info("play deleted")
	return deleted, nil
}
