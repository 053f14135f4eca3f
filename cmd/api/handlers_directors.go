package main

import (
	"net/http"

	"theatre/ticketing/internal/domain/models"
)

type directorRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=255"`
	PlayID *int64  `json:"play_id" validate:"omitempty,gte=1"`
}

func (app *Application) createDirector(w http.ResponseWriter, r *http.Request) {
	var req directorRequest
	if !app.readAndValidate(w, r, &req) {
		return
	}
	director, err := app.services.Directors.Create(r.Context(), models.Director{Name: req.Name, PlayID: req.PlayID})
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Created(w, r, envelop{"director": director}, "")
}

func (app *Application) getDirector(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	director, err := app.services.Directors.Get(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"director": director}, "")
}

func (app *Application) listDirectors(w http.ResponseWriter, r *http.Request) {
	pagination, ok := app.readPagination(w, r)
	if !ok {
		return
	}
	directors, err := app.services.Directors.List(r.Context(), pagination)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"directors": directors}, "")
}

func (app *Application) updateDirector(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var req directorRequest
	if !app.readAndValidate(w, r, &req) {
		return
	}
	director, err := app.services.Directors.Update(r.Context(), id, models.DirectorPatch{Name: req.Name, PlayID: req.PlayID})
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"director": director}, "")
}

func (app *Application) deleteDirector(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	director, err := app.services.Directors.Delete(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"director": director}, "Director deleted")
}
