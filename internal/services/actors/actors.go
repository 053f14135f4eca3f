package actors

import (
	"context"
	"errors"
	"log/slog"

	"theatre/ticketing/internal/domain/filters"
	"theatre/ticketing/internal/domain/models"
	"theatre/ticketing/internal/storage"
)

type ActorsStorage interface {
	Get(ctx context.Context, id int64) (*models.Actor, error)
	Insert(ctx context.Context, actor *models.Actor) (*models.Actor, error)
	List(ctx context.Context, pagination filters.Pagination) ([]models.Actor, error)
	Update(ctx context.Context, actor *models.Actor) (*models.Actor, error)
	Delete(ctx context.Context, id int64) (*models.Actor, error)
}

type ActorService struct {
	log     *slog.Logger
	storage ActorsStorage
}

func New(log *slog.Logger, storage ActorsStorage) *ActorService {
	return &ActorService{
		log:     log,
		storage: storage,
	}
}

func (s *ActorService) Get(ctx context.Context, id int64) (*models.Actor, error) {
	const op = "actors.ActorService.Get"
	log := s.log.With("op", op, "id", id)
	actor, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("actor not found")
			return nil, ErrActorNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return actor, nil
}

func (s *ActorService) Create(ctx context.Context, actor models.Actor) (*models.Actor, error) {
	const op = "actors.ActorService.Create"
	log := s.log.With("op", op, "play_id", actor.PlayID)
	created, err := s.storage.Insert(ctx, &actor)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidReference) {
			log.Info("play does not exist")
			return nil, ErrUnknownPlay
		}
		log.Error(err.Error())
		return nil, err
	}
	log.Info("actor created", "id", created.ID)
	return created, nil
}

func (s *ActorService) List(ctx context.Context, pagination filters.Pagination) ([]models.Actor, error) {
	const op = "actors.ActorService.List"
	log := s.log.With("op", op, "skip", pagination.Skip, "limit", pagination.Limit)
	actors, err := s.storage.List(ctx, pagination)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return actors, nil
}

func (s *ActorService) Update(ctx context.Context, id int64, patch models.ActorPatch) (*models.Actor, error) {
	const op = "actors.ActorService.Update"
	log := s.log.With("op", op, "id", id)
	actor, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(actor)
	updated, err := s.storage.Update(ctx, actor)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Info("actor removed before update")
			return nil, ErrActorNotFound
		case errors.Is(err, storage.ErrInvalidReference):
			log.Info("play does not exist")
			return nil, ErrUnknownPlay
		}
		log.Error("Error updating actor: " + err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *ActorService) Delete(ctx context.Context, id int64) (*models.Actor, error) {
	const op = "actors.ActorService.Delete"
	log := s.log.With("op", op, "id", id)
	deleted, err := s.storage.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("actor not found")
			return nil, ErrActorNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	log.Info("actor deleted")
	return deleted, nil
}
