package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"theatre/ticketing/internal/config"
	"theatre/ticketing/internal/domain/filters"
	"theatre/ticketing/internal/domain/models"
	"theatre/ticketing/internal/services"
	"theatre/ticketing/internal/storage"

	"github.com/stretchr/testify/require"
)

type usersFake struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.User
}

func (f *usersFake) Get(_ context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.rows[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &u, nil
}

func (f *usersFake) GetByUsername(_ context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.rows {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *usersFake) Insert(_ context.Context, username, passwordHash, role string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.rows {
		if u.Username == username {
			return nil, storage.ErrConflict
		}
	}
	f.nextID++
	u := models.User{ID: f.nextID, Username: username, PasswordHash: passwordHash, Role: role}
	f.rows[u.ID] = u
	return &u, nil
}

func (f *usersFake) List(_ context.Context, p filters.Pagination) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]models.User, 0, len(f.rows))
	for _, u := range f.rows {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, p), nil
}

func (f *usersFake) UpdateRole(_ context.Context, id int64, role string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.rows[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	u.Role = role
	f.rows[id] = u
	return &u, nil
}

func (f *usersFake) Delete(_ context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.rows[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	delete(f.rows, id)
	return &u, nil
}

type playsFake struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.Play
}

func (f *playsFake) Get(_ context.Context, id int64) (*models.Play, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &p, nil
}

func (f *playsFake) Insert(_ context.Context, play *models.Play) (*models.Play, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	p := *play
	p.ID = f.nextID
	f.rows[p.ID] = p
	return &p, nil
}

func (f *playsFake) List(_ context.Context, pg filters.Pagination) ([]models.Play, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]models.Play, 0, len(f.rows))
	for _, p := range f.rows {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, pg), nil
}

func (f *playsFake) Update(_ context.Context, play *models.Play) (*models.Play, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[play.ID]; !ok {
		return nil, storage.ErrNotFound
	}
	f.rows[play.ID] = *play
	p := *play
	return &p, nil
}

func (f *playsFake) Delete(_ context.Context, id int64) (*models.Play, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	delete(f.rows, id)
	return &p, nil
}

type customersFake struct {
	mu     sync.Mutex
	nextID int64
	rows   []models.Customer
}

func (f *customersFake) Get(_ context.Context, id int64) (*models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.rows {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *customersFake) GetByEmail(_ context.Context, email string) (*models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.rows {
		if c.Email != nil && *c.Email == email {
			return &c, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *customersFake) Insert(_ context.Context, customer *models.Customer) (*models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	c := *customer
	c.ID = f.nextID
	f.rows = append(f.rows, c)
	return &c, nil
}

func (f *customersFake) List(_ context.Context, p filters.Pagination) ([]models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return page(f.rows, p), nil
}

func (f *customersFake) Update(_ context.Context, customer *models.Customer) (*models.Customer, error) {
	return nil, storage.ErrNotFound
}

func (f *customersFake) Delete(_ context.Context, id int64) (*models.Customer, error) {
	return nil, storage.ErrNotFound
}

func page[T any](rows []T, p filters.Pagination) []T {
	if p.Skip >= len(rows) {
		return []T{}
	}
	end := min(p.Skip+p.Limit, len(rows))
	return append([]T(nil), rows[p.Skip:end]...)
}

type mailerFake struct {
	mu   sync.Mutex
	sent []string
}

func (m *mailerFake) Send(recipient string, tmplName string, tmplData any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, recipient)
	return nil
}

type inlineTasks struct{}

func (inlineTasks) Add(task func()) bool {
	task()
	return true
}

func (inlineTasks) Shutdown(context.Context) error { return nil }

type testEnv struct {
	app     *Application
	handler http.Handler
	users   *usersFake
	plays   *playsFake
	mailer  *mailerFake
}

const (
	testAdminPassword    = "admin-pass"
	testCustomerPassword = "customer-pass"
)

func NewTestApplication(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{
			Env:            config.EnvDevelopment,
			AppSecret:      "test-secret",
			AccessTokenTTL: time.Minute,
		}
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	env := &testEnv{
		users:  &usersFake{rows: map[int64]models.User{}},
		plays:  &playsFake{rows: map[int64]models.Play{}},
		mailer: &mailerFake{},
	}
	svcs := services.New(log, cfg, services.Storages{
		Users:     env.users,
		Plays:     env.plays,
		Customers: &customersFake{},
	}, env.mailer, inlineTasks{})
	ctx := context.Background()
	require.NoError(t, svcs.Users.EnsureAdmin(ctx, "admin", testAdminPassword))
	_, err := svcs.Users.Create(ctx, "fatima", testCustomerPassword, "")
	require.NoError(t, err)

	env.app = NewApplication(cfg, log, svcs, inlineTasks{})
	env.handler = env.app.routes()
	return env
}

func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()
	res, err := e.app.services.Auth.Login(context.Background(), username, password)
	require.NoError(t, err)
	return res.AccessToken
}

func (e *testEnv) adminToken(t *testing.T) string {
	return e.login(t, "admin", testAdminPassword)
}

func (e *testEnv) customerToken(t *testing.T) string {
	return e.login(t, "fatima", testCustomerPassword)
}

func (e *testEnv) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) postForm(target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}
