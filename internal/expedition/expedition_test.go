package expedition_test

import (
	"context"
	"journal/internal/expedition"
	"journal/pkg/domain"
	"journal/pkg/serrors"
	"journal/pkg/storage"
	mockstorage "journal/pkg/storage/mock"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func newTestService(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, expedition.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return ctrl, st, expedition.New(st)
}

func expectWithTx(ctrl *gomock.Controller, m *mockstorage.MockStorage, fn func(tx *mockstorage.MockAllStorage)) {
	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestCreate(t *testing.T) {
	_, st, svc := newTestService(t)
	author := domain.UserID(uuid.New())
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	st.EXPECT().CreateExpedition(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e domain.Expedition) (*domain.Expedition, error) {
			require.Equal(t, "Annapurna Circuit", e.Title)
			require.Equal(t, domain.ExpeditionPlanned, e.Status)
			require.Equal(t, domain.VisibilityPublic, e.Visibility)

			return &e, nil
		})
	_, err := svc.Create(context.Background(), author, expedition.Input{Title: "Annapurna Circuit", StartDate: start})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), author, expedition.Input{Title: "x", Status: "abandoned"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = svc.Create(context.Background(), author, expedition.Input{
		Title: "x", StartDate: start, EndDate: start.Add(-time.Hour),
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestUpdate_checksMergedDates(t *testing.T) {
	_, st, svc := newTestService(t)
	author := domain.UserID(uuid.New())
	id := domain.ExpeditionID(uuid.New())
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	current := &domain.Expedition{ID: id, AuthorID: author, StartDate: start}

	st.EXPECT().ExpeditionByID(gomock.Any(), id).Return(current, nil)
	_, err := svc.Update(context.Background(), author, id, expedition.UpdateInput{EndDate: ptr(start.Add(-24 * time.Hour))})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	st.EXPECT().ExpeditionByID(gomock.Any(), id).Return(current, nil)
	st.EXPECT().UpdateExpedition(gomock.Any(), id, storage.ExpeditionUpdates{Status: ptr(domain.ExpeditionActive)}).
		Return(current, nil)
	_, err = svc.Update(context.Background(), author, id, expedition.UpdateInput{Status: ptr(domain.ExpeditionActive)})
	require.NoError(t, err)

	st.EXPECT().ExpeditionByID(gomock.Any(), id).Return(current, nil)
	_, err = svc.Update(context.Background(), domain.UserID(uuid.New()), id, expedition.UpdateInput{Title: ptr("mine")})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestDelete_detachesEntries(t *testing.T) {
	ctrl, st, svc := newTestService(t)
	author := domain.UserID(uuid.New())
	id := domain.ExpeditionID(uuid.New())

	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteExpedition(gomock.Any(), author, id).Return(&domain.Expedition{ID: id}, nil)
		tx.EXPECT().DetachExpeditionEntries(gomock.Any(), id).Return(int64(3), nil)
	})
	require.NoError(t, svc.Delete(context.Background(), author, id))

	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteExpedition(gomock.Any(), author, id).Return(nil, nil)
	})
	require.ErrorIs(t, svc.Delete(context.Background(), author, id), serrors.ErrNotFound)
}

func TestGet_buildsPath(t *testing.T) {
	_, st, svc := newTestService(t)
	author := domain.UserID(uuid.New())
	viewer := domain.UserID(uuid.New())
	id := domain.ExpeditionID(uuid.New())
	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	entries := []domain.Entry{
		{ID: domain.EntryID(uuid.New()), Title: "Besisahar", Location: &domain.Point{Lat: 28.23, Lon: 84.38}, Date: day},
		{ID: domain.EntryID(uuid.New()), Title: "Rest day", Date: day.Add(24 * time.Hour)},
		{ID: domain.EntryID(uuid.New()), Title: "Manang", Location: &domain.Point{Lat: 28.67, Lon: 84.02}, Date: day.Add(48 * time.Hour)},
	}

	st.EXPECT().ExpeditionByID(gomock.Any(), id).
		Return(&domain.Expedition{ID: id, AuthorID: author, Visibility: domain.VisibilityPublic}, nil)
	st.EXPECT().ExpeditionEntries(gomock.Any(), id, true).Return(entries, nil)

	details, err := svc.Get(context.Background(), viewer, id)
	require.NoError(t, err)
	require.Len(t, details.Entries, 3)
	require.Len(t, details.Path, 2)
	require.Equal(t, "Besisahar", details.Path[0].Title)
	require.Equal(t, "Manang", details.Path[1].Title)

	st.EXPECT().ExpeditionByID(gomock.Any(), id).
		Return(&domain.Expedition{ID: id, AuthorID: author, Visibility: domain.VisibilityPrivate}, nil)
	_, err = svc.Get(context.Background(), viewer, id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestAttachDetach(t *testing.T) {
	ctrl, st, svc := newTestService(t)
	author := domain.UserID(uuid.New())
	id := domain.ExpeditionID(uuid.New())
	entryID := domain.EntryID(uuid.New())
	exp := &domain.Expedition{ID: id, AuthorID: author}

	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ExpeditionByID(gomock.Any(), id).Return(exp, nil)
		tx.EXPECT().EntryByID(gomock.Any(), entryID).Return(&domain.Entry{ID: entryID, AuthorID: author}, nil)
		tx.EXPECT().UpdateEntry(gomock.Any(), entryID, storage.EntryUpdates{ExpeditionID: &id}).Return(&domain.Entry{}, nil)
	})
	require.NoError(t, svc.AttachEntry(context.Background(), author, id, entryID))

	// entries of other authors cannot be attached
	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ExpeditionByID(gomock.Any(), id).Return(exp, nil)
		tx.EXPECT().EntryByID(gomock.Any(), entryID).Return(&domain.Entry{ID: entryID, AuthorID: domain.UserID(uuid.New())}, nil)
	})
	require.ErrorIs(t, svc.AttachEntry(context.Background(), author, id, entryID), serrors.ErrNotFound)

	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ExpeditionByID(gomock.Any(), id).Return(exp, nil)
		tx.EXPECT().EntryByID(gomock.Any(), entryID).Return(&domain.Entry{ID: entryID, AuthorID: author, ExpeditionID: &id}, nil)
		tx.EXPECT().UpdateEntry(gomock.Any(), entryID, storage.EntryUpdates{ClearExpedition: true}).Return(&domain.Entry{}, nil)
	})
	require.NoError(t, svc.DetachEntry(context.Background(), author, id, entryID))
}
