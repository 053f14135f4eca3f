package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"theatre/ticketing/internal/domain/filters"
	"theatre/ticketing/internal/domain/models"
	"theatre/ticketing/internal/lib/validator"
	"theatre/ticketing/internal/services/auth"
	"theatre/ticketing/internal/services/tickets"
	"theatre/ticketing/internal/services/users"
	"theatre/ticketing/internal/storage"

	"github.com/go-chi/chi/v5"
)

func parsePositiveInt(raw string, bitSize int) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, bitSize)
	if err != nil {
		return 0, errors.New("must be an integer")
	}
	if n < 1 {
		return 0, errors.New("must be greater than zero")
	}
	return n, nil
}

func (app *Application) extractIDParam(w http.ResponseWriter, r *http.Request) (id int64, extracted bool) {
	id, err := parsePositiveInt(chi.URLParam(r, "id"), 64)
	if err != nil {
		app.Http.BadRequest(w, r, "id "+err.Error())
		return 0, false
	}
	return id, true
}

// extractTicketKey reads the five path segments that identify a ticket.
func (app *Application) extractTicketKey(w http.ResponseWriter, r *http.Request) (key models.TicketKey, extracted bool) {
	params := []struct {
		name    string
		bitSize int
		dst     func(int64)
	}{
		{"showtime_id", 64, func(v int64) { key.ShowtimeID = v }},
		{"play_id", 64, func(v int64) { key.PlayID = v }},
		{"customer_id", 64, func(v int64) { key.CustomerID = v }},
		{"seat_row_no", 32, func(v int64) { key.SeatRowNo = int32(v) }},
		{"seat_no", 32, func(v int64) { key.SeatNo = int32(v) }},
	}
	for _, p := range params {
		v, err := parsePositiveInt(chi.URLParam(r, p.name), p.bitSize)
		if err != nil {
			app.Http.BadRequest(w, r, p.name+" "+err.Error())
			return models.TicketKey{}, false
		}
		p.dst(v)
	}
	return key, true
}

// readPagination decodes skip/limit from the query string, falling back to
// defaults, and writes a 422 when they are out of range.
func (app *Application) readPagination(w http.ResponseWriter, r *http.Request) (filters.Pagination, bool) {
	pagination := filters.NewPagination()
	fieldErrs, err := app.decoder.Decode(&pagination, r.URL.Query())
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return pagination, false
	}
	if len(fieldErrs) > 0 {
		app.Http.UnprocessableEntity(w, r, fieldErrs)
		return pagination, false
	}
	if errs := validator.ValidateStruct(app.validator, pagination); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return pagination, false
	}
	return pagination, true
}

// readAndValidate decodes a JSON body into dst and runs struct validation,
// writing the error response itself when either step fails.
func (app *Application) readAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := app.readJSON(w, r, dst); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return false
	}
	if errs := validator.ValidateStruct(app.validator, dst); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return false
	}
	return true
}

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	src := http.MaxBytesReader(w, r.Body, int64(maxBytes))
	defer io.Copy(io.Discard, src)
	dec := json.NewDecoder(src)
	dec.DisallowUnknownFields()
	err := dec.Decode(dst)
	if err != nil {
		return handleJsonErr(err)
	}
	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func handleJsonErr(err error) error {
	var syntaxError *json.SyntaxError
	var unmarshalTypeError *json.UnmarshalTypeError
	var invalidUnmarshalError *json.InvalidUnmarshalError
	var maxBytesError *http.MaxBytesError
	switch {
	case errors.As(err, &syntaxError):
		return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)

	case errors.Is(err, io.ErrUnexpectedEOF):
		return errors.New("body contains badly-formed JSON")

	case errors.As(err, &unmarshalTypeError):
		if unmarshalTypeError.Field != "" {
			return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
		}
		return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)

	case errors.Is(err, io.EOF):
		return errors.New("body must not be empty")

	case errors.As(err, &maxBytesError):
		return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)

	case errors.As(err, &invalidUnmarshalError):
		panic(err)
	default:
		return err
	}
}

// handleServiceError maps service errors onto HTTP responses.
func (app *Application) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var forbidden *auth.ForbiddenError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		app.Http.NotFound(w, r, err.Error())
	case errors.Is(err, storage.ErrConflict), errors.Is(err, storage.ErrReferenced):
		app.Http.Conflict(w, r, err.Error())
	case errors.Is(err, storage.ErrInvalidReference):
		app.Http.Response(w, r, nil, "referenced play/showtime/customer does not exist", http.StatusUnprocessableEntity)
	case errors.Is(err, tickets.ErrNegativePrice), errors.Is(err, tickets.ErrPriceOutOfRange):
		app.Http.UnprocessableEntity(w, r, map[string]string{"price": err.Error()})
	case errors.Is(err, storage.ErrInvalidValue):
		app.Http.Response(w, r, nil, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, users.ErrInvalidRole):
		app.Http.UnprocessableEntity(w, r, map[string]string{"role": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		app.Http.BadRequest(w, r, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		app.Http.Unauthorized(w, r, err.Error())
	case errors.As(err, &forbidden):
		app.Http.Forbidden(w, r, forbidden.Error())
	default:
		app.Http.ServerError(w, r, err, "")
	}
}

func (app *Application) currentUser(r *http.Request) *models.User {
	user, ok := r.Context().Value(CtxKeyUser).(*models.User)
	if !ok || user == nil {
		return models.AnonymousUser
	}
	return user
}
