package services

import (
	"log/slog"

	"theatre/ticketing/internal/config"
	"theatre/ticketing/internal/mails"
	"theatre/ticketing/internal/services/actors"
	"theatre/ticketing/internal/services/auth"
	"theatre/ticketing/internal/services/customers"
	"theatre/ticketing/internal/services/directors"
	"theatre/ticketing/internal/services/plays"
	"theatre/ticketing/internal/services/showtimes"
	"theatre/ticketing/internal/services/tickets"
	"theatre/ticketing/internal/services/users"
	"theatre/ticketing/internal/storage/postgres/models"
)

type Services struct {
	Auth      *auth.AuthService
	Users     *users.UserService
	Plays     *plays.PlayService
	Actors    *actors.ActorService
	Directors *directors.DirectorService
	ShowTimes *showtimes.ShowTimeService
	Customers *customers.CustomerService
	Tickets   *tickets.TicketService
}

// Storages lists the persistence each service needs. The postgres models
// satisfy it; tests can plug in fakes.
type Storages struct {
	Users     users.UsersStorage
	Plays     plays.PlaysStorage
	Actors    actors.ActorsStorage
	Directors directors.DirectorsStorage
	ShowTimes showtimes.ShowTimesStorage
	Customers customers.CustomersStorage
	Tickets   tickets.TicketsStorage
}

func StoragesFromModels(m *models.Models) Storages {
	return Storages{
		Users:     m.Users,
		Plays:     m.Plays,
		Actors:    m.Actors,
		Directors: m.Directors,
		ShowTimes: m.ShowTimes,
		Customers: m.Customers,
		Tickets:   m.Tickets,
	}
}

// NewMailer picks the HTTP API mailer when an API token is configured and
// falls back to SMTP otherwise.
func NewMailer(cfg *config.Config) customers.MailProvider {
	smtp := cfg.SMTPServer
	if smtp.ApiToken != "" {
		return mails.NewApiMailer(smtp.ApiURL, smtp.ApiToken, smtp.Sender, smtp.Timeout)
	}
	return mails.New(smtp.Host, smtp.Port, smtp.Timeout, smtp.Username, smtp.Password, smtp.Sender)
}

func New(
	log *slog.Logger,
	cfg *config.Config,
	storages Storages,
	mailer customers.MailProvider,
	taskExecutor customers.TaskExecutor,
) *Services {
	tokens := auth.NewTokens(cfg.AppSecret, cfg.AccessTokenTTL)
	return &Services{
		Auth:      auth.New(log, storages.Users, tokens),
		Users:     users.New(log, storages.Users),
		Plays:     plays.New(log, storages.Plays),
		Actors:    actors.New(log, storages.Actors),
		Directors: directors.New(log, storages.Directors),
		ShowTimes: showtimes.New(log, storages.ShowTimes),
		Customers: customers.New(log, storages.Customers, mailer, taskExecutor),
		Tickets:   tickets.New(log, storages.Tickets),
	}
}
