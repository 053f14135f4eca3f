package showtimes

import (
	"context"
	"errors"
	"log/slog"

	"theatre/ticketing/internal/domain/filters"
	"theatre/ticketing/internal/domain/models"
	"theatre/ticketing/internal/storage"
)

type ShowTimesStorage interface {
	Get(ctx context.Context, id int64) (*models.ShowTime, error)
	Insert(ctx context.Context, showtime *models.ShowTime) (*models.ShowTime, error)
	List(ctx context.Context, pagination filters.Pagination) ([]models.ShowTime, error)
	Update(ctx context.Context, showtime *models.ShowTime) (*models.ShowTime, error)
	Delete(ctx context.Context, id int64) (*models.ShowTime, error)
}

type ShowTimeService struct {
	log     *slog.Logger
	storage ShowTimesStorage
}

func New(log *slog.Logger, storage ShowTimesStorage) *ShowTimeService {
	return &ShowTimeService{
		log:     log,
		storage: storage,
	}
}

func (s *ShowTimeService) Get(ctx context.Context, id int64) (*models.ShowTime, error) {
	const op = "showtimes.ShowTimeService.Get"
	log := s.log.With("op", op, "id", id)
	showtime, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("showtime not found")
			return nil, ErrShowTimeNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return showtime, nil
}

func (s *ShowTimeService) Create(ctx context.Context, showtime models.ShowTime) (*models.ShowTime, error) {
	const op = "showtimes.ShowTimeService.Create"
	log := s.log.With("op", op, "play_id", showtime.PlayID)
	created, err := s.storage.Insert(ctx, &showtime)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidReference) {
			log.Info("play does not exist")
			return nil, ErrUnknownPlay
		}
		log.Error(err.Error())
		return nil, err
	}
	log.Info("showtime created", "id", created.ID)
	return created, nil
}

func (s *ShowTimeService) List(ctx context.Context, pagination filters.Pagination) ([]models.ShowTime, error) {
	const op = "showtimes.ShowTimeService.List"
	log := s.log.With("op", op, "skip", pagination.Skip, "limit", pagination.Limit)
	showtimes, err := s.storage.List(ctx, pagination)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return showtimes, nil
}

func (s *ShowTimeService) Update(ctx context.Context, id int64, patch models.ShowTimePatch) (*models.ShowTime, error) {
	const op = "showtimes.ShowTimeService.Update"
	log := s.log.With("op", op, "id", id)
	showtime, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(showtime)
	updated, err := s.storage.Update(ctx, showtime)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Info("showtime removed before update")
			return nil, ErrShowTimeNotFound
		case errors.Is(err, storage.ErrInvalidReference):
			log.Info("play does not exist")
			return nil, ErrUnknownPlay
		}
		log.Error("Error updating showtime: " + err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *ShowTimeService) Delete(ctx context.Context, id int64) (*models.ShowTime, error) {
	const op = "showtimes.ShowTimeService.Delete"
	log := s.log.With("op", op, "id", id)
	deleted, err := s.storage.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Info("showtime not found")
			return nil, ErrShowTimeNotFound
		case errors.Is(err, storage.ErrReferenced):
			log.Info("showtime still referenced", "reason", err.Error())
			return nil, ErrShowTimeInUse
		}
		log.Error(err.Error())
		return nil, err
	}
	log.Info("showtime deleted")
	return deleted, nil
}
