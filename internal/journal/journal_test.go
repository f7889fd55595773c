package journal_test

import (
	"context"
	"errors"
	"journal/internal/events"
	"journal/internal/journal"
	"journal/pkg/domain"
	"journal/pkg/geocoder"
	mockgeocoder "journal/pkg/geocoder/mock"
	"journal/pkg/logger"
	"journal/pkg/serrors"
	"journal/pkg/storage"
	mockstorage "journal/pkg/storage/mock"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "debug")
	m.Run()
}

func ptr[T any](v T) *T { return &v }

type fixture struct {
	ctrl     *gomock.Controller
	storage  *mockstorage.MockStorage
	geocoder *mockgeocoder.MockGeocoder
	svc      journal.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:     ctrl,
		storage:  mockstorage.NewMockStorage(ctrl),
		geocoder: mockgeocoder.NewMockGeocoder(ctrl),
	}
	f.svc = journal.New(journal.Deps{Storage: f.storage, Geocoder: f.geocoder, Emitter: events.NewEmitter(3)})

	return f
}

func (f *fixture) expectWithTx(fn func(tx *mockstorage.MockAllStorage)) {
	f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(f.ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func echoCreate(id domain.EntryID) func(context.Context, domain.Entry) (*domain.Entry, error) {
	return func(_ context.Context, e domain.Entry) (*domain.Entry, error) {
		e.ID = id

		return &e, nil
	}
}

func TestCreate_publishedFansOut(t *testing.T) {
	f := newFixture(t)
	author := domain.UserID(uuid.New())
	id := domain.EntryID(uuid.New())
	loc := domain.Point{Lat: 27.98, Lon: 86.92}

	f.geocoder.EXPECT().Reverse(gomock.Any(), loc).Return("Mount Everest, Nepal", nil)
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, e domain.Entry) (*domain.Entry, error) {
				require.Equal(t, "Summit day", e.Title)
				require.Equal(t, "<p>We made it</p>", e.Content)
				require.Equal(t, "Mount Everest, Nepal", e.Place)
				require.Equal(t, domain.VisibilityPublic, e.Visibility)
				require.False(t, e.Date.IsZero())

				return echoCreate(id)(ctx, e)
			})
		tx.EXPECT().AddJob(gomock.Any(), events.EntryFanoutJob{EntryID: id}, gomock.Any()).Return(true, nil)
	})

	entry, err := f.svc.Create(context.Background(), author, journal.EntryInput{
		Title:    "  Summit <b>day</b> ",
		Content:  `<p onclick="x()">We made it</p><script>alert(1)</script>`,
		Location: &loc,
	})
	require.NoError(t, err)
	require.Equal(t, id, entry.ID)
}

func TestCreate_draftSkipsFanoutAndGeocodeFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	author := domain.UserID(uuid.New())
	loc := domain.Point{Lat: 1, Lon: 2}

	f.geocoder.EXPECT().Reverse(gomock.Any(), loc).Return("", errors.New("mapbox down"))
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate(domain.EntryID(uuid.New())))
	})

	entry, err := f.svc.Create(context.Background(), author, journal.EntryInput{
		Title: "Notes", Location: &loc, IsDraft: true,
	})
	require.NoError(t, err)
	require.Empty(t, entry.Place)
}

func TestCreate_validation(t *testing.T) {
	f := newFixture(t)
	author := domain.UserID(uuid.New())
	ctx := context.Background()

	_, err := f.svc.Create(ctx, author, journal.EntryInput{Title: "   "})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = f.svc.Create(ctx, author, journal.EntryInput{Title: "x", Location: &domain.Point{Lat: 100}})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = f.svc.Create(ctx, author, journal.EntryInput{Title: "x", Visibility: "friends"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestCreate_foreignExpedition(t *testing.T) {
	f := newFixture(t)
	author := domain.UserID(uuid.New())
	expID := domain.ExpeditionID(uuid.New())

	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ExpeditionByID(gomock.Any(), expID).
			Return(&domain.Expedition{ID: expID, AuthorID: domain.UserID(uuid.New())}, nil)
	})

	_, err := f.svc.Create(context.Background(), author, journal.EntryInput{
		Title: "x", Place: "Camp", ExpeditionID: &expID,
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestUpdate_publishingFansOut(t *testing.T) {
	f := newFixture(t)
	author := domain.UserID(uuid.New())
	id := domain.EntryID(uuid.New())
	current := &domain.Entry{ID: id, AuthorID: author, Visibility: domain.VisibilityPublic, IsDraft: true}
	loc := domain.Point{Lat: 10, Lon: 20}

	gomock.InOrder(
		f.storage.EXPECT().EntryByID(gomock.Any(), id).Return(current, nil),
		f.geocoder.EXPECT().Reverse(gomock.Any(), loc).Return("Somewhere", nil),
		f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cb func(storage.AllStorage) error) error {
				tx := mockstorage.NewMockAllStorage(f.ctrl)
				tx.EXPECT().EntryByID(gomock.Any(), id).Return(current, nil)
				tx.EXPECT().UpdateEntry(gomock.Any(), id, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ domain.EntryID, u storage.EntryUpdates) (*domain.Entry, error) {
						require.False(t, *u.IsDraft)
						require.Equal(t, "Somewhere", *u.Place)

						return &domain.Entry{ID: id, AuthorID: author, Visibility: domain.VisibilityPublic}, nil
					})
				tx.EXPECT().AddJob(gomock.Any(), events.EntryFanoutJob{EntryID: id}, gomock.Any()).Return(true, nil)

				return cb(tx)
			}),
	)

	_, err := f.svc.Update(context.Background(), author, id, journal.EntryUpdateInput{
		IsDraft: ptr(false), Location: &loc,
	})
	require.NoError(t, err)
}

func TestUpdate_sameLocationSkipsGeocoding(t *testing.T) {
	f := newFixture(t)
	author := domain.UserID(uuid.New())
	id := domain.EntryID(uuid.New())
	loc := domain.Point{Lat: 10, Lon: 20}
	current := &domain.Entry{ID: id, AuthorID: author, Visibility: domain.VisibilityPublic, Location: &loc}

	f.storage.EXPECT().EntryByID(gomock.Any(), id).Return(current, nil)
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().EntryByID(gomock.Any(), id).Return(current, nil)
		tx.EXPECT().UpdateEntry(gomock.Any(), id, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.EntryID, u storage.EntryUpdates) (*domain.Entry, error) {
				require.Nil(t, u.Place)

				return current, nil
			})
	})

	_, err := f.svc.Update(context.Background(), author, id, journal.EntryUpdateInput{Location: &loc})
	require.NoError(t, err)
}

func TestUpdate_foreignEntryIsNotGeocoded(t *testing.T) {
	f := newFixture(t)
	id := domain.EntryID(uuid.New())
	loc := domain.Point{Lat: 1, Lon: 2}

	f.storage.EXPECT().EntryByID(gomock.Any(), id).Return(&domain.Entry{ID: id, AuthorID: domain.UserID(uuid.New())}, nil)

	_, err := f.svc.Update(context.Background(), domain.UserID(uuid.New()), id, journal.EntryUpdateInput{Location: &loc})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestUpdate_notOwner(t *testing.T) {
	f := newFixture(t)
	id := domain.EntryID(uuid.New())

	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().EntryByID(gomock.Any(), id).Return(&domain.Entry{ID: id, AuthorID: domain.UserID(uuid.New())}, nil)
	})

	_, err := f.svc.Update(context.Background(), domain.UserID(uuid.New()), id, journal.EntryUpdateInput{Title: ptr("x")})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestGetAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := domain.UserID(uuid.New())
	id := domain.EntryID(uuid.New())
	private := &domain.Entry{ID: id, AuthorID: author, Visibility: domain.VisibilityPrivate}

	f.storage.EXPECT().EntryByID(gomock.Any(), id).Return(private, nil).Times(3)
	_, err := f.svc.Get(ctx, domain.UserID(uuid.New()), id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	_, err = f.svc.Get(ctx, domain.UserID{}, id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	got, err := f.svc.Get(ctx, author, id)
	require.NoError(t, err)
	require.Equal(t, private, got)

	f.storage.EXPECT().DeleteEntry(gomock.Any(), author, id).Return(private, nil)
	require.NoError(t, f.svc.Delete(ctx, author, id))
	f.storage.EXPECT().DeleteEntry(gomock.Any(), author, id).Return(nil, nil)
	require.ErrorIs(t, f.svc.Delete(ctx, author, id), serrors.ErrNotFound)
}

func TestFeeds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	viewer := domain.UserID(uuid.New())
	author := &domain.User{ID: domain.UserID(uuid.New()), Username: "alice"}
	next := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	f.storage.EXPECT().Entries(gomock.Any(), storage.EntryFilter{PublishedOnly: true}, time.Time{}, storage.DefaultPageSize).
		Return(storage.Page[domain.Entry]{Items: []domain.Entry{{}}, NextCursor: &next}, nil)
	items, cursor, err := f.svc.PublicFeed(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "2026-02-01T00:00:00Z", cursor)

	f.storage.EXPECT().Entries(gomock.Any(), storage.EntryFilter{FollowedBy: &viewer, PublishedOnly: true}, next, uint(10)).
		Return(storage.Page[domain.Entry]{}, nil)
	_, cursor, err = f.svc.FollowingFeed(ctx, viewer, "2026-02-01T00:00:00Z", 10)
	require.NoError(t, err)
	require.Empty(t, cursor)

	f.storage.EXPECT().UserByUsername(gomock.Any(), "alice").Return(author, nil)
	f.storage.EXPECT().Entries(gomock.Any(), storage.EntryFilter{AuthorID: &author.ID, PublishedOnly: true}, time.Time{}, storage.DefaultPageSize).
		Return(storage.Page[domain.Entry]{}, nil)
	_, _, err = f.svc.ListByAuthor(ctx, viewer, "alice", "", 0)
	require.NoError(t, err)

	f.storage.EXPECT().UserByUsername(gomock.Any(), "alice").Return(author, nil)
	f.storage.EXPECT().Entries(gomock.Any(), storage.EntryFilter{AuthorID: &author.ID}, time.Time{}, storage.DefaultPageSize).
		Return(storage.Page[domain.Entry]{}, nil)
	_, _, err = f.svc.ListByAuthor(ctx, author.ID, "alice", "", 0)
	require.NoError(t, err)
}

func TestInBoundingBox(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	box := domain.BoundingBox{West: 170, South: -20, East: -170, North: 20}

	f.storage.EXPECT().Entries(gomock.Any(), storage.EntryFilter{Bounds: &box, PublishedOnly: true}, time.Time{}, storage.DefaultPageSize).
		Return(storage.Page[domain.Entry]{}, nil)
	_, _, err := f.svc.InBoundingBox(ctx, box, "", 0)
	require.NoError(t, err)

	_, _, err = f.svc.InBoundingBox(ctx, domain.BoundingBox{South: 10, North: -10}, "", 0)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestSearchPlaces(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.geocoder.EXPECT().Forward(gomock.Any(), "kathmandu", 5).
		Return([]geocoder.Place{{Name: "Kathmandu, Nepal", Point: domain.Point{Lat: 27.7, Lon: 85.3}}}, nil)
	places, err := f.svc.SearchPlaces(ctx, " kathmandu ")
	require.NoError(t, err)
	require.Len(t, places, 1)

	_, err = f.svc.SearchPlaces(ctx, "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
