package main

import (
	"net/http"
)

type createUserRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role" validate:"omitempty,userrole"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,userrole"`
}

func (app *Application) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	app.Http.Ok(w, r, envelop{"user": app.currentUser(r)}, "")
}

func (app *Application) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !app.readAndValidate(w, r, &req) {
		return
	}
	user, err := app.services.Users.Create(r.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Created(w, r, envelop{"user": user}, "")
}

func (app *Application) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	user, err := app.services.Users.Get(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"user": user}, "")
}

func (app *Application) listUsers(w http.ResponseWriter, r *http.Request) {
	pagination, ok := app.readPagination(w, r)
	if !ok {
		return
	}
	users, err := app.services.Users.List(r.Context(), pagination)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"users": users}, "")
}

func (app *Application) updateUserRole(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var req updateRoleRequest
	if !app.readAndValidate(w, r, &req) {
		return
	}
	user, err := app.services.Users.UpdateRole(r.Context(), id, req.Role)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"user": user}, "Role updated")
}

func (app *Application) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	user, err := app.services.Users.Delete(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"user": user}, "User deleted")
}
