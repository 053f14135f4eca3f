package main

import (
	"net/http"

	"theatre/ticketing/internal/domain/fields"
	"theatre/ticketing/internal/domain/models"

	"github.com/go-chi/chi/v5"
)

type ticketRequest struct {
	SeatRowNo  *int32       `json:"seat_row_no" validate:"required,gte=1"`
	SeatNo     *int32       `json:"seat_no" validate:"required,gte=1"`
	ShowtimeID *int64       `json:"showtime_id" validate:"required,gte=1"`
	PlayID     *int64       `json:"play_id" validate:"required,gte=1"`
	CustomerID *int64       `json:"customer_id" validate:"required,gte=1"`
	TicketNo   *string      `json:"ticket_no" validate:"omitempty,min=1,max=10"`
	Price      fields.Price `json:"price" validate:"-"`
}

// ticketPatchRequest only carries the mutable columns; the key is in the path.
type ticketPatchRequest struct {
	TicketNo *string       `json:"ticket_no" validate:"omitempty,min=1,max=10"`
	Price    *fields.Price `json:"price" validate:"-"`
}

func (app *Application) createTicket(w http.ResponseWriter, r *http.Request) {
	var req ticketRequest
	if !app.readAndValidate(w, r, &req) {
		return
	}
	ticket, err := app.services.Tickets.Create(r.Context(), models.Ticket{
		TicketKey: models.TicketKey{
			SeatRowNo:  *req.SeatRowNo,
			SeatNo:     *req.SeatNo,
			ShowtimeID: *req.ShowtimeID,
			PlayID:     *req.PlayID,
			CustomerID: *req.CustomerID,
		},
		TicketNo: req.TicketNo,
		Price:    req.Price,
	})
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Created(w, r, envelop{"ticket": ticket}, "")
}

func (app *Application) getTicket(w http.ResponseWriter, r *http.Request) {
	key, ok := app.extractTicketKey(w, r)
	if !ok {
		return
	}
	ticket, err := app.services.Tickets.Get(r.Context(), key)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"ticket": ticket}, "")
}

func (app *Application) getTicketByNumber(w http.ResponseWriter, r *http.Request) {
	ticketNo := chi.URLParam(r, "ticket_no")
	if ticketNo == "" || len(ticketNo) > 10 {
		app.Http.BadRequest(w, r, "ticket_no must be 1 to 10 characters long")
		return
	}
	ticket, err := app.services.Tickets.GetByNumber(r.Context(), ticketNo)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"ticket": ticket}, "")
}

func (app *Application) listTickets(w http.ResponseWriter, r *http.Request) {
	pagination, ok := app.readPagination(w, r)
	if !ok {
		return
	}
	tickets, err := app.services.Tickets.List(r.Context(), pagination)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"tickets": tickets}, "")
}

func (app *Application) updateTicket(w http.ResponseWriter, r *http.Request) {
	key, ok := app.extractTicketKey(w, r)
	if !ok {
		return
	}
	var req ticketPatchRequest
	if !app.readAndValidate(w, r, &req) {
		return
	}
	ticket, err := app.services.Tickets.Update(r.Context(), key, models.TicketPatch{TicketNo: req.TicketNo, Price: req.Price})
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"ticket": ticket}, "")
}

func (app *Application) deleteTicket(w http.ResponseWriter, r *http.Request) {
	key, ok := app.extractTicketKey(w, r)
	if !ok {
		return
	}
	ticket, err := app.services.Tickets.Delete(r.Context(), key)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"ticket": ticket}, "Ticket deleted")
}
