package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"theatre/ticketing/internal/domain/models"
	"theatre/ticketing/internal/storage/postgres"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testResponse struct {
	Success bool                       `json:"success"`
	Message string                     `json:"message"`
	Data    map[string]json.RawMessage `json:"data"`
}

func decodeResponse(t *testing.T, body []byte) testResponse {
	t.Helper()
	var res testResponse
	require.NoError(t, json.Unmarshal(body, &res))
	return res
}

func TestRoot(t *testing.T) {
	env := NewTestApplication(t, nil)
	rec := env.do(http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to Sierra Leone Concert Association", decodeResponse(t, rec.Body.Bytes()).Message)
}

func TestHealthcheck(t *testing.T) {
	env := NewTestApplication(t, nil)
	rec := env.do(http.MethodGet, "/healthcheck", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"available"`)
}

func TestToken(t *testing.T) {
	env := NewTestApplication(t, nil)

	t.Run("valid credentials", func(t *testing.T) {
		rec := env.postForm("/token", url.Values{"username": {"admin"}, "password": {testAdminPassword}})
		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["access_token"])
		assert.Equal(t, "bearer", body["token_type"])
		assert.Equal(t, "admin", body["username"])
		assert.Equal(t, models.RoleAdmin, body["role"])
	})
	t.Run("wrong password", func(t *testing.T) {
		rec := env.postForm("/token", url.Values{"username": {"admin"}, "password": {"nope"}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Incorrect username or password", decodeResponse(t, rec.Body.Bytes()).Message)
	})
	t.Run("unknown user", func(t *testing.T) {
		rec := env.postForm("/token", url.Values{"username": {"ghost"}, "password": {"x"}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("missing fields", func(t *testing.T) {
		rec := env.postForm("/token", url.Values{"username": {"admin"}})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestApiRequiresToken(t *testing.T) {
	env := NewTestApplication(t, nil)
	rec := env.do(http.MethodGet, "/api/plays", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
}

func TestCurrentUserHidesHash(t *testing.T) {
	env := NewTestApplication(t, nil)
	rec := env.do(http.MethodGet, "/api/users/me", env.customerToken(t), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hash")
	var user models.User
	require.NoError(t, json.Unmarshal(decodeResponse(t, rec.Body.Bytes()).Data["user"], &user))
	assert.Equal(t, "fatima", user.Username)
	assert.Equal(t, models.RoleCustomer, user.Role)
}

func TestPlayRoutesRoleGuard(t *testing.T) {
	env := NewTestApplication(t, nil)
	admin, customer := env.adminToken(t), env.customerToken(t)
	body := `{"title": "The Trials of Brother Jero", "genre": "Comedy"}`

	rec := env.do(http.MethodPost, "/api/plays", customer, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Access denied: admin role required", decodeResponse(t, rec.Body.Bytes()).Message)
	assert.Empty(t, env.plays.rows)

	rec = env.do(http.MethodPost, "/api/plays", admin, body)
	require.Equal(t, http.StatusCreated, rec.Code)
	var play models.Play
	require.NoError(t, json.Unmarshal(decodeResponse(t, rec.Body.Bytes()).Data["play"], &play))
	assert.Equal(t, "The Trials of Brother Jero", play.Title)

	rec = env.do(http.MethodGet, fmt.Sprintf("/api/plays/%d", play.ID), customer, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreatePlayValidation(t *testing.T) {
	env := NewTestApplication(t, nil)
	admin := env.adminToken(t)

	rec := env.do(http.MethodPost, "/api/plays", admin, `{"genre": "Drama"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"This field is required"`)

	rec = env.do(http.MethodPost, "/api/plays", admin, `{"title": "X", "rating": 5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPost, "/api/plays", admin, `{"title": "X"}{"title": "Y"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePlayOnlyGenre(t *testing.T) {
	env := NewTestApplication(t, nil)
	admin := env.adminToken(t)
	rec := env.do(http.MethodPost, "/api/plays", admin, `{"title": "Kongi's Harvest", "genre": "Satire", "synopsis": "A dictator", "duration": "2h"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodPut, "/api/plays/1", admin, `{"genre": "Drama"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	stored := env.plays.rows[1]
	assert.Equal(t, "Kongi's Harvest", stored.Title)
	assert.Equal(t, "Drama", *stored.Genre)
	assert.Equal(t, "A dictator", *stored.Synopsis)
	assert.Equal(t, "2h", *stored.Duration)
}

func TestDeletePlayThenGet(t *testing.T) {
	env := NewTestApplication(t, nil)
	admin := env.adminToken(t)
	rec := env.do(http.MethodPost, "/api/plays", admin, `{"title": "Opera Wonyosi"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodDelete, "/api/plays/1", admin, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var deleted models.Play
	require.NoError(t, json.Unmarshal(decodeResponse(t, rec.Body.Bytes()).Data["play"], &deleted))
	assert.Equal(t, "Opera Wonyosi", deleted.Title)

	rec = env.do(http.MethodGet, "/api/plays/1", admin, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "play not found", decodeResponse(t, rec.Body.Bytes()).Message)
}

func TestGetPlayBadID(t *testing.T) {
	env := NewTestApplication(t, nil)
	rec := env.do(http.MethodGet, "/api/plays/abc", env.customerToken(t), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = env.do(http.MethodGet, "/api/plays/0", env.customerToken(t), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPlaysPagination(t *testing.T) {
	env := NewTestApplication(t, nil)
	admin := env.adminToken(t)
	for i := 0; i < 15; i++ {
		rec := env.do(http.MethodPost, "/api/plays", admin, fmt.Sprintf(`{"title": "Play %d"}`, i))
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	listPage := func(query string) []models.Play {
		rec := env.do(http.MethodGet, "/api/plays"+query, admin, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var plays []models.Play
		require.NoError(t, json.Unmarshal(decodeResponse(t, rec.Body.Bytes()).Data["plays"], &plays))
		return plays
	}

	first := listPage("")
	second := listPage("?skip=10&limit=10")
	assert.Len(t, first, 10)
	assert.Len(t, second, 5)
	seen := map[int64]bool{}
	for _, p := range append(first, second...) {
		assert.False(t, seen[p.ID], "play %d listed twice", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, seen, 15)

	for _, query := range []string{"?limit=0", "?limit=101", "?skip=-1", "?limit=ten"} {
		rec := env.do(http.MethodGet, "/api/plays"+query, admin, "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, query)
	}
}

func TestUsersAdminOnly(t *testing.T) {
	env := NewTestApplication(t, nil)
	admin, customer := env.adminToken(t), env.customerToken(t)

	rec := env.do(http.MethodGet, "/api/users", customer, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(http.MethodPost, "/api/users", admin, `{"username": "ibrahim", "password": "secret-pw"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(decodeResponse(t, rec.Body.Bytes()).Data["user"], &user))
	assert.Equal(t, models.RoleCustomer, user.Role)

	rec = env.do(http.MethodPost, "/api/users", admin, `{"username": "ibrahim", "password": "another-pw"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(http.MethodPut, fmt.Sprintf("/api/users/%d/role", user.ID), admin, `{"role": "superuser"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = env.do(http.MethodPut, fmt.Sprintf("/api/users/%d/role", user.ID), admin, `{"role": "admin"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RoleAdmin, env.users.rows[user.ID].Role)
}

func TestRoleChangeAppliesToIssuedToken(t *testing.T) {
	env := NewTestApplication(t, nil)
	customer := env.customerToken(t)
	rec := env.do(http.MethodPut, "/api/users/2/role", env.adminToken(t), `{"role": "admin"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/api/users", customer, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateCustomer(t *testing.T) {
	env := NewTestApplication(t, nil)
	customer := env.customerToken(t)
	body := `{"name": "Aminata", "email": "aminata@example.com"}`

	rec := env.do(http.MethodPost, "/api/customers", customer, body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"aminata@example.com"}, env.mailer.sent)

	rec = env.do(http.MethodPost, "/api/customers", customer, body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Len(t, env.mailer.sent, 1)

	rec = env.do(http.MethodPost, "/api/customers", customer, `{"name": "No email"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = env.do(http.MethodGet, "/api/customers", customer, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTicketRoutes(t *testing.T) {
	env := NewTestApplication(t, nil)
	admin, customer := env.adminToken(t), env.customerToken(t)

	rec := env.do(http.MethodPut, "/api/tickets/1/1/1/1/1", customer, `{"ticket_no": "A1"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = env.do(http.MethodDelete, "/api/tickets/1/1/1/1/1", customer, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(http.MethodDelete, "/api/tickets/1/1/x/1/1", admin, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeResponse(t, rec.Body.Bytes()).Message, "customer_id")

	rec = env.do(http.MethodPost, "/api/tickets", customer, `{"seat_no": 4, "price": 25.5}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"showtime_id":"This field is required"`)
}

func TestTicketPriceOutOfRange(t *testing.T) {
	env := NewTestApplication(t, nil)
	customer := env.customerToken(t)

	body := `{"seat_row_no": 1, "seat_no": 4, "showtime_id": 1, "play_id": 1, "customer_id": 1, "price": 1000000000}`
	rec := env.do(http.MethodPost, "/api/tickets", customer, body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	res := decodeResponse(t, rec.Body.Bytes())
	assert.False(t, res.Success)
	assert.Contains(t, string(res.Data["errors"]), `"price":"price must not exceed 99999999.99"`)
}

func TestColumnOverflowIsUnprocessable(t *testing.T) {
	env := NewTestApplication(t, nil)
	err := postgres.ConvertErr(&pgconn.PgError{Code: postgres.ErrOutOfRangeCode, Message: "numeric field overflow"}, false)

	rec := httptest.NewRecorder()
	env.app.handleServiceError(rec, httptest.NewRequest(http.MethodPost, "/api/tickets", nil), err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decodeResponse(t, rec.Body.Bytes()).Message, "numeric field overflow")
}

func TestUnknownRoute(t *testing.T) {
	env := NewTestApplication(t, nil)
	rec := env.do(http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
