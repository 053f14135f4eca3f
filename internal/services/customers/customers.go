package customers

import (
	"context"
	"errors"
	"log/slog"

	"theatre/ticketing/internal/domain/filters"
	"theatre/ticketing/internal/domain/models"
	"theatre/ticketing/internal/lib/metrics"
	"theatre/ticketing/internal/storage"
)

const welcomeTemplate = "customer_welcome.html"

type MailProvider interface {
	Send(recipient string, tmplName string, tmplData any) error
}

type TaskExecutor interface {
	Add(task func()) bool
}

type CustomersStorage interface {
	Get(ctx context.Context, id int64) (*models.Customer, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	Insert(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	List(ctx context.Context, pagination filters.Pagination) ([]models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	Delete(ctx context.Context, id int64) (*models.Customer, error)
}

type CustomerService struct {
	log          *slog.Logger
	storage      CustomersStorage
	mailer       MailProvider
	taskExecutor TaskExecutor
}

func New(log *slog.Logger, storage CustomersStorage, mailer MailProvider, taskExecutor TaskExecutor) *CustomerService {
	return &CustomerService{
		log:          log,
		storage:      storage,
		mailer:       mailer,
		taskExecutor: taskExecutor,
	}
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*models.Customer, error) {
	const op = "customers.CustomerService.Get"
	log := s.log.With("op", op, "id", id)
	customer, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("customer not found")
			return nil, ErrCustomerNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.storage.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return ErrEmailTaken
	case errors.Is(err, storage.ErrNotFound):
		return nil
	default:
		return err
	}
}

// Create stores the customer and schedules a welcome email. The email is sent
// after Create returns and its outcome never affects the result.
func (s *CustomerService) Create(ctx context.Context, customer models.Customer) (*models.Customer, error) {
	const op = "customers.CustomerService.Create"
	log := s.log.With("op", op)
	if customer.Email != nil {
		log = log.With("email", *customer.Email)
		if err := s.ensureEmailFree(ctx, *customer.Email); err != nil {
			if errors.Is(err, ErrEmailTaken) {
				log.Info("email already registered")
			} else {
				log.Error(err.Error())
			}
			return nil, err
		}
	}
	created, err := s.storage.Insert(ctx, &customer)
	if err != nil {
		// the unique index is authoritative when two requests race past the pre-check
		if errors.Is(err, storage.ErrConflict) {
			log.Info("email already registered")
			return nil, ErrEmailTaken
		}
		log.Error(err.Error())
		return nil, err
	}
	log.Info("customer created", "id", created.ID)
	if created.Email != nil {
		recipient, name := *created.Email, ""
		if created.Name != nil {
			name = *created.Name
		}
		if !s.taskExecutor.Add(func() { s.sendWelcomeEmail(recipient, name) }) {
			log.Warn("welcome email dropped, task queue is full")
			metrics.RecordWelcomeEmail(metrics.EmailDropped)
		}
	}
	return created, nil
}

func (s *CustomerService) sendWelcomeEmail(recipient, name string) {
	log := s.log.With("op", "customers.CustomerService.sendWelcomeEmail", "recipient", recipient)
	err := s.mailer.Send(recipient, welcomeTemplate, map[string]any{"name": name})
	if err != nil {
		log.Error("Error sending welcome email", "errMsg", err.Error())
		metrics.RecordWelcomeEmail(metrics.EmailFailed)
		return
	}
	log.Info("welcome email sent")
	metrics.RecordWelcomeEmail(metrics.EmailSent)
}

func (s *CustomerService) List(ctx context.Context, pagination filters.Pagination) ([]models.Customer, error) {
	const op = "customers.CustomerService.List"
	log := s.log.With("op", op, "skip", pagination.Skip, "limit", pagination.Limit)
	customers, err := s.storage.List(ctx, pagination)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return customers, nil
}

func (s *CustomerService) Update(ctx context.Context, id int64, patch models.CustomerPatch) (*models.Customer, error) {
	const op = "customers.CustomerService.Update"
	log := s.log.With("op", op, "id", id)
	customer, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(customer)
	updated, err := s.storage.Update(ctx, customer)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Info("customer removed before update")
			return nil, ErrCustomerNotFound
		case errors.Is(err, storage.ErrConflict):
			log.Info("email already registered")
			return nil, ErrEmailTaken
		}
		log.Error("Error updating customer: " + err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *CustomerService) Delete(ctx context.Context, id int64) (*models.Customer, error) {
	const op = "customers.CustomerService.Delete"
	log := s.log.With("op", op, "id", id)
	deleted, err := s.storage.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Info("customer not found")
			return nil, ErrCustomerNotFound
		case errors.Is(err, storage.ErrReferenced):
			log.Info("customer still has tickets")
			return nil, ErrCustomerInUse
		}
		log.Error(err.Error())
		return nil, err
	}
	log.Info("customer deleted")
	return deleted, nil
}
