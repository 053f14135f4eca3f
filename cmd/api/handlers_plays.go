package main

import (
	"net/http"

	"theatre/ticketing/internal/domain/models"
)

type playRequest struct {
	Title    *string `json:"title" validate:"required,min=1,max=255"`
	Genre    *string `json:"genre" validate:"omitempty,max=100"`
	Synopsis *string `json:"synopsis"`
	Duration *string `json:"duration" validate:"omitempty,max=50"`
}

type playPatchRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=255"`
	Genre    *string `json:"genre" validate:"omitempty,max=100"`
	Synopsis *string `json:"synopsis"`
	Duration *string `json:"duration" validate:"omitempty,max=50"`
}

func (app *Application) createPlay(w http.ResponseWriter, r *http.Request) {
	var req playRequest
	if !app.readAndValidate(w, r, &req) {
		return
	}
	play, err := app.services.Plays.Create(r.Context(), models.Play{
		Title:    *req.Title,
		Genre:    req.Genre,
		Synopsis: req.Synopsis,
		Duration: req.Duration,
	})
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Created(w, r, envelop{"play": play}, "")
}

func (app *Application) getPlay(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	play, err := app.services.Plays.Get(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"play": play}, "")
}

func (app *Application) listPlays(w http.ResponseWriter, r *http.Request) {
	pagination, ok := app.readPagination(w, r)
	if !ok {
		return
	}
	plays, err := app.services.Plays.List(r.Context(), pagination)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"plays": plays}, "")
}

func (app *Application) updatePlay(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var req playPatchRequest
	if !app.readAndValidate(w, r, &req) {
		return
	}
	play, err := app.services.Plays.Update(r.Context(), id, models.PlayPatch{
		Title:    req.Title,
		Genre:    req.Genre,
		Synopsis: req.Synopsis,
		Duration: req.Duration,
	})
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"play": play}, "")
}

func (app *Application) deletePlay(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	play, err := app.services.Plays.Delete(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"play": play}, "Play deleted")
}
