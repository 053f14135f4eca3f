package main

import (
	"net/http"

	"theatre/ticketing/internal/domain/models"
)

type customerRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=30"`
	Email       *string `json:"email" validate:"required,email,max=255"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
}

type customerPatchRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=30"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
}

// createCustomer is open to any authenticated user; the welcome email is sent
// in the background and never affects the response.
func (app *Application) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if !app.readAndValidate(w, r, &req) {
		return
	}
	customer, err := app.services.Customers.Create(r.Context(), models.Customer{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
	})
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Created(w, r, envelop{"customer": customer}, "")
}

func (app *Application) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	customer, err := app.services.Customers.Get(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"customer": customer}, "")
}

func (app *Application) listCustomers(w http.ResponseWriter, r *http.Request) {
	pagination, ok := app.readPagination(w, r)
	if !ok {
		return
	}
	customers, err := app.services.Customers.List(r.Context(), pagination)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"customers": customers}, "")
}

func (app *Application) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var req customerPatchRequest
	if !app.readAndValidate(w, r, &req) {
		return
	}
	customer, err := app.services.Customers.Update(r.Context(), id, models.CustomerPatch{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
	})
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"customer": customer}, "")
}

func (app *Application) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	customer, err := app.services.Customers.Delete(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"customer": customer}, "Customer deleted")
}
