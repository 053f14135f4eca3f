package main

import (
	"net/http"
	"time"

	"theatre/ticketing/internal/domain/models"
)

// actorRequest serves both create and update; on update absent fields are left as is.
type actorRequest struct {
	Name        *string    `json:"name" validate:"omitempty,max=255"`
	Gender      *string    `json:"gender" validate:"omitempty,max=20"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	PlayID      *int64     `json:"play_id" validate:"omitempty,gte=1"`
}

func (app *Application) createActor(w http.ResponseWriter, r *http.Request) {
	var req actorRequest
	if !app.readAndValidate(w, r, &req) {
		return
	}
	actor, err := app.services.Actors.Create(r.Context(), models.Actor{
		Name:        req.Name,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
		PlayID:      req.PlayID,
	})
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Created(w, r, envelop{"actor": actor}, "")
}

func (app *Application) getActor(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	actor, err := app.services.Actors.Get(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"actor": actor}, "")
}

func (app *Application) listActors(w http.ResponseWriter, r *http.Request) {
	pagination, ok := app.readPagination(w, r)
	if !ok {
		return
	}
	actors, err := app.services.Actors.List(r.Context(), pagination)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"actors": actors}, "")
}

func (app *Application) updateActor(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var req actorRequest
	if !app.readAndValidate(w, r, &req) {
		return
	}
	actor, err := app.services.Actors.Update(r.Context(), id, models.ActorPatch{
		Name:        req.Name,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
		PlayID:      req.PlayID,
	})
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"actor": actor}, "")
}

func (app *Application) deleteActor(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	actor, err := app.services.Actors.Delete(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"actor": actor}, "Actor deleted")
}
