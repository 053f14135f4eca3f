package main

import (
	"net/http"
	"time"

	"theatre/ticketing/internal/domain/models"
)

type showTimeRequest struct {
	DateAndTime *time.Time `json:"date_and_time"`
	PlayID      *int64     `json:"play_id" validate:"omitempty,gte=1"`
}

func (app *Application) createShowTime(w http.ResponseWriter, r *http.Request) {
	var req showTimeRequest
	if !app.readAndValidate(w, r, &req) {
		return
	}
	showtime, err := app.services.ShowTimes.Create(r.Context(), models.ShowTime{DateAndTime: req.DateAndTime, PlayID: req.PlayID})
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Created(w, r, envelop{"showtime": showtime}, "")
}

func (app *Application) getShowTime(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	showtime, err := app.services.ShowTimes.Get(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"showtime": showtime}, "")
}

func (app *Application) listShowTimes(w http.ResponseWriter, r *http.Request) {
	pagination, ok := app.readPagination(w, r)
	if !ok {
		return
	}
	showtimes, err := app.services.ShowTimes.List(r.Context(), pagination)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"showtimes": showtimes}, "")
}

func (app *Application) updateShowTime(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var req showTimeRequest
	if !app.readAndValidate(w, r, &req) {
		return
	}
	showtime, err := app.services.ShowTimes.Update(r.Context(), id, models.ShowTimePatch{DateAndTime: req.DateAndTime, PlayID: req.PlayID})
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"showtime": showtime}, "")
}

func (app *Application) deleteShowTime(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	showtime, err := app.services.ShowTimes.Delete(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"showtime": showtime}, "Showtime deleted")
}
