package plays

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"theatre/ticketing/internal/domain/filters"
	"theatre/ticketing/internal/domain/models"
	"theatre/ticketing/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type storageMock struct {
	mock.Mock
}

func (m *storageMock) Get(ctx context.Context, id int64) (*models.Play, error) {
	args := m.Called(ctx, id)
	play, _ := args.Get(0).(*models.Play)
	return play, args.Error(1)
}

func (m *storageMock) Insert(ctx context.Context, play *models.Play) (*models.Play, error) {
	args := m.Called(ctx, play)
	created, _ := args.Get(0).(*models.Play)
	return created, args.Error(1)
}

func (m *storageMock) List(ctx context.Context, pagination filters.Pagination) ([]models.Play, error) {
	args := m.Called(ctx, pagination)
	plays, _ := args.Get(0).([]models.Play)
	return plays, args.Error(1)
}

func (m *storageMock) Update(ctx context.Context, play *models.Play) (*models.Play, error) {
	args := m.Called(ctx, play)
	updated, _ := args.Get(0).(*models.Play)
	return updated, args.Error(1)
}

func (m *storageMock) Delete(ctx context.Context, id int64) (*models.Play, error) {
	args := m.Called(ctx, id)
	deleted, _ := args.Get(0).(*models.Play)
	return deleted, args.Error(1)
}

func newTestService() (*PlayService, *storageMock) {
	st := &storageMock{}
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), st), st
}

func strPtr(s string) *string { return &s }

func TestGetNotFound(t *testing.T) {
	svc, st := newTestService()
	ctx := context.Background()
	st.On("Get", ctx, int64(42)).Return(nil, storage.ErrNotFound)

	_, err := svc.Get(ctx, 42)
	assert.ErrorIs(t, err, ErrPlayNotFound)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateOnlyGenre(t *testing.T) {
	svc, st := newTestService()
	ctx := context.Background()
	existing := &models.Play{ID: 1, Title: "The Lion and the Jewel", Genre: strPtr("Comedy"), Synopsis: strPtr("Village"), Duration: strPtr("2h")}
	st.On("Get", ctx, int64(1)).Return(existing, nil)
	st.On("Update", ctx, mock.MatchedBy(func(p *models.Play) bool {
		return p.ID == 1 && p.Title == "The Lion and the Jewel" && *p.Genre == "Drama" &&
			*p.Synopsis == "Village" && *p.Duration == "2h"
	})).Return(&models.Play{ID: 1, Title: "The Lion and the Jewel", Genre: strPtr("Drama"), Synopsis: strPtr("Village"), Duration: strPtr("2h")}, nil)

	updated, err := svc.Update(ctx, 1, models.PlayPatch{Genre: strPtr("Drama")})
	require.NoError(t, err)
	assert.Equal(t, "Drama", *updated.Genre)
	assert.Equal(t, "The Lion and the Jewel", updated.Title)
	assert.Equal(t, "Village", *updated.Synopsis)
	assert.Equal(t, "2h", *updated.Duration)
	st.AssertExpectations(t)
}

func TestUpdateMissingPlay(t *testing.T) {
	svc, st := newTestService()
	ctx := context.Background()
	st.On("Get", ctx, int64(7)).Return(nil, storage.ErrNotFound)

	_, err := svc.Update(ctx, 7, models.PlayPatch{Genre: strPtr("Drama")})
	assert.ErrorIs(t, err, ErrPlayNotFound)
	st.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteReturnsDeletedRow(t *testing.T) {
	svc, st := newTestService()
	ctx := context.Background()
	play := &models.Play{ID: 3, Title: "Death and the King's Horseman"}
	st.On("Delete", ctx, int64(3)).Return(play, nil).Once()
	st.On("Get", ctx, int64(3)).Return(nil, storage.ErrNotFound)

	deleted, err := svc.Delete(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, play, deleted)

	_, err = svc.Get(ctx, 3)
	assert.ErrorIs(t, err, ErrPlayNotFound)
}

func TestDeleteReferencedPlay(t *testing.T) {
	svc, st := newTestService()
	ctx := context.Background()
	st.On("Delete", ctx, int64(4)).Return(nil, storage.ErrReferenced)

	_, err := svc.Delete(ctx, 4)
	assert.ErrorIs(t, err, ErrPlayInUse)
}

func TestListPassesPagination(t *testing.T) {
	svc, st := newTestService()
	ctx := context.Background()
	page := filters.Pagination{Skip: 10, Limit: 10}
	st.On("List", ctx, page).Return([]models.Play{{ID: 11, Title: "Eleven"}}, nil)

	plays, err := svc.List(ctx, page)
	require.NoError(t, err)
	assert.Len(t, plays, 1)
	st.AssertExpectations(t)
}
