package main

import (
	"net/http"

	"theatre/ticketing/internal/lib/validator"

	"github.com/go-chi/render"
)

func (app *Application) root(w http.ResponseWriter, r *http.Request) {
	app.Http.Ok(w, r, nil, "Welcome to Sierra Leone Concert Association")
}

func (app *Application) healthcheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, struct {
		Status  string `json:"status"`
		Env     string `json:"env"`
		Debug   bool   `json:"debug"`
		Version string `json:"version"`
	}{
		Status:  "available",
		Env:     app.cfg.Env,
		Debug:   app.cfg.Debug,
		Version: version,
	})
}

type tokenRequest struct {
	Username string `schema:"username" json:"username" validate:"required"`
	Password string `schema:"password" json:"password" validate:"required"`
}

// token implements the OAuth2 password flow: a urlencoded form in, a flat
// token body out.
func (app *Application) token(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)
	if err := r.ParseForm(); err != nil {
		app.Http.BadRequest(w, r, "body must be a urlencoded form")
		return
	}
	var req tokenRequest
	fieldErrs, err := app.decoder.Decode(&req, r.PostForm)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if len(fieldErrs) > 0 {
		app.Http.UnprocessableEntity(w, r, fieldErrs)
		return
	}
	if errs := validator.ValidateStruct(app.validator, req); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	res, err := app.services.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	render.JSON(w, r, res)
}
