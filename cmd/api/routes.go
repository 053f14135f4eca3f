package main

import (
	"net/http"

	"theatre/ticketing/internal/domain/models"
	"theatre/ticketing/internal/lib/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const ticketKeyPath = "/{showtime_id}/{play_id}/{customer_id}/{seat_row_no}/{seat_no}"

func (app *Application) routes() http.Handler {
	router := chi.NewRouter()
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		app.Http.NotFound(w, r, "Page not found")
	})
	router.MethodNotAllowed(app.Http.MethodNotAllowed)
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(metrics.InstrumentHandler)
	router.Use(app.Recoverer)
	router.Use(app.RateLimiter)

	router.Get("/", app.root)
	router.Get("/healthcheck", app.healthcheck)
	router.Method(http.MethodGet, "/metrics", metrics.Handler())
	router.Post("/token", app.token)

	adminOnly := app.requireRole(models.RoleAdmin)
	router.Route("/api", func(r chi.Router) {
		r.Use(app.Authenticate)
		r.Use(app.requireAuthenticatedUser)

		r.Route("/users", func(r chi.Router) {
			r.Get("/me", app.getCurrentUser)
			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Post("/", app.createUser)
				r.Get("/", app.listUsers)
				r.Get("/{id}", app.getUser)
				r.Put("/{id}/role", app.updateUserRole)
				r.Delete("/{id}", app.deleteUser)
			})
		})
		r.Route("/plays", func(r chi.Router) {
			r.Get("/", app.listPlays)
			r.Get("/{id}", app.getPlay)
			r.With(adminOnly).Post("/", app.createPlay)
			r.With(adminOnly).Put("/{id}", app.updatePlay)
			r.With(adminOnly).Delete("/{id}", app.deletePlay)
		})
		r.Route("/actors", func(r chi.Router) {
			r.Get("/", app.listActors)
			r.Get("/{id}", app.getActor)
			r.With(adminOnly).Post("/", app.createActor)
			r.With(adminOnly).Put("/{id}", app.updateActor)
			r.With(adminOnly).Delete("/{id}", app.deleteActor)
		})
		r.Route("/directors", func(r chi.Router) {
			r.Get("/", app.listDirectors)
			r.Get("/{id}", app.getDirector)
			r.With(adminOnly).Post("/", app.createDirector)
			r.With(adminOnly).Put("/{id}", app.updateDirector)
			r.With(adminOnly).Delete("/{id}", app.deleteDirector)
		})
		r.Route("/showtimes", func(r chi.Router) {
			r.Get("/", app.listShowTimes)
			r.Get("/{id}", app.getShowTime)
			r.With(adminOnly).Post("/", app.createShowTime)
			r.With(adminOnly).Put("/{id}", app.updateShowTime)
			r.With(adminOnly).Delete("/{id}", app.deleteShowTime)
		})
		r.Route("/customers", func(r chi.Router) {
			r.Post("/", app.createCustomer)
			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Get("/", app.listCustomers)
				r.Get("/{id}", app.getCustomer)
				r.Put("/{id}", app.updateCustomer)
				r.Delete("/{id}", app.deleteCustomer)
			})
		})
		r.Route("/tickets", func(r chi.Router) {
			r.Post("/", app.createTicket)
			r.Get("/", app.listTickets)
			r.Get("/number/{ticket_no}", app.getTicketByNumber)
			r.Get(ticketKeyPath, app.getTicket)
			r.With(adminOnly).Put(ticketKeyPath, app.updateTicket)
			r.With(adminOnly).Delete(ticketKeyPath, app.deleteTicket)
		})
	})
	return router
}
