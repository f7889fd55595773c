package worker_test

import (
	"context"
	"errors"
	"fmt"
	"journal/internal/events"
	mockmembership "journal/internal/membership/mock"
	"journal/internal/worker"
	"journal/pkg/domain"
	"journal/pkg/logger"
	"journal/pkg/mailer"
	mockmailer "journal/pkg/mailer/mock"
	"journal/pkg/payments"
	mockpayments "journal/pkg/payments/mock"
	"journal/pkg/serrors"
	"journal/pkg/storage"
	mockstorage "journal/pkg/storage/mock"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "debug")
	m.Run()
}

func makeJob[T river.JobArgs](args T, attempt int) *river.Job[T] {
	return &river.Job[T]{
		JobRow: &rivertype.JobRow{ID: 1, Attempt: attempt, MaxAttempts: 3},
		Args:   args,
	}
}

func expectWithTx(ctrl *gomock.Controller, st *mockstorage.MockStorage, fn func(tx *mockstorage.MockAllStorage)) {
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			fn(tx)

			return cb(tx)
		},
	)
}

func TestEmailWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mockmailer.NewMockMailer(ctrl)
	w := worker.NewEmailWorker(m)
	args := events.EmailJob{To: "alice@example.com", Template: mailer.TemplateWelcome, Data: map[string]string{"username": "alice"}}

	m.EXPECT().Send(gomock.Any(), args.To, args.Template, args.Data).Return(nil)
	require.NoError(t, w.Work(context.Background(), makeJob(args, 1)))

	m.EXPECT().Send(gomock.Any(), args.To, args.Template, args.Data).Return(errors.New("connection refused"))
	err := w.Work(context.Background(), makeJob(args, 1))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)

	m.EXPECT().Send(gomock.Any(), args.To, "nope", args.Data).Return(fmt.Errorf("%w %q", mailer.ErrUnknownTemplate, "nope"))
	args.Template = "nope"
	err = w.Work(context.Background(), makeJob(args, 1))
	require.ErrorAs(t, err, &cancelErr)
}

func TestNotificationWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	w := worker.NewNotificationWorker(st)
	user := domain.UserID(uuid.New())
	actor := domain.UserID(uuid.New())

	st.EXPECT().CreateNotifications(gomock.Any(), []domain.Notification{{
		UserID: user, ActorID: &actor, Kind: domain.NotificationFollow,
	}}).Return(int64(1), nil)
	require.NoError(t, w.Work(context.Background(), makeJob(events.NotificationJob{
		UserID: user, ActorID: &actor, Type: domain.NotificationFollow,
	}, 1)))

	// self notifications are dropped
	require.NoError(t, w.Work(context.Background(), makeJob(events.NotificationJob{
		UserID: user, ActorID: &user, Type: domain.NotificationFollow,
	}, 1)))
}

func TestEntryFanoutWorker_batches(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	w := worker.NewEntryFanoutWorker(st, 2)
	entry := &domain.Entry{
		ID: domain.EntryID(uuid.New()), AuthorID: domain.UserID(uuid.New()), Visibility: domain.VisibilityPublic,
	}
	followers := []domain.UserID{domain.UserID(uuid.New()), domain.UserID(uuid.New()), domain.UserID(uuid.New())}

	st.EXPECT().EntryByID(gomock.Any(), entry.ID).Return(entry, nil)
	st.EXPECT().FollowerIDs(gomock.Any(), entry.AuthorID).Return(followers, nil)
	var sizes []int
	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CreateNotifications(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ns []domain.Notification) (int64, error) {
				for _, n := range ns {
					require.Equal(t, domain.NotificationEntry, n.Kind)
					require.Equal(t, entry.ID, *n.EntryID)
				}
				sizes = append(sizes, len(ns))

				return int64(len(ns)), nil
			}).Times(2)
	})

	require.NoError(t, w.Work(context.Background(), makeJob(events.EntryFanoutJob{EntryID: entry.ID}, 1)))
	require.Equal(t, []int{2, 1}, sizes)

	// drafts are skipped
	draft := *entry
	draft.IsDraft = true
	st.EXPECT().EntryByID(gomock.Any(), entry.ID).Return(&draft, nil)
	require.NoError(t, w.Work(context.Background(), makeJob(events.EntryFanoutJob{EntryID: entry.ID}, 1)))
}

type payoutFixture struct {
	ctrl     *gomock.Controller
	storage  *mockstorage.MockStorage
	payments *mockpayments.MockClient
	w        *worker.PayoutWorker
	payout   *domain.Payout
	explorer *domain.User
}

func newPayoutFixture(t *testing.T) *payoutFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &payoutFixture{
		ctrl:     ctrl,
		storage:  mockstorage.NewMockStorage(ctrl),
		payments: mockpayments.NewMockClient(ctrl),
		explorer: &domain.User{
			ID: domain.UserID(uuid.New()), Username: "alice", Email: "alice@example.com", StripeAccountID: "acct_1",
		},
	}
	f.payout = &domain.Payout{
		ID: domain.PayoutID(uuid.New()), ExplorerID: f.explorer.ID, Amount: 3000, Currency: "usd", Status: domain.PayoutPending,
	}
	f.w = worker.NewPayoutWorker(f.storage, f.payments, events.NewEmitter(3))

	return f
}

func TestPayoutWorker_paid(t *testing.T) {
	f := newPayoutFixture(t)

	f.storage.EXPECT().PayoutByID(gomock.Any(), f.payout.ID).Return(f.payout, nil)
	f.storage.EXPECT().UserByID(gomock.Any(), f.explorer.ID).Return(f.explorer, nil)
	f.payments.EXPECT().CreateTransfer(gomock.Any(), payments.TransferParams{
		Amount:         3000,
		Currency:       "usd",
		Destination:    "acct_1",
		IdempotencyKey: "payout_" + f.payout.ID.String(),
		TransferGroup:  domain.TransferGroup(f.explorer.ID),
		Metadata:       map[string]string{"payout_id": f.payout.ID.String()},
	}).Return("tr_1", nil)
	expectWithTx(f.ctrl, f.storage, func(tx *mockstorage.MockAllStorage) {
		status, transfer := domain.PayoutPaid, "tr_1"
		tx.EXPECT().UpdatePayout(gomock.Any(), f.payout.ID, storage.PayoutUpdates{Status: &status, TransferID: &transfer}).
			Return(f.payout, nil)
		tx.EXPECT().AddJob(gomock.Any(), events.NotificationJob{UserID: f.explorer.ID, Type: domain.NotificationPayout}, gomock.Any()).
			Return(true, nil)
		tx.EXPECT().AddJob(gomock.Any(), events.EmailJob{
			To:       "alice@example.com",
			Template: mailer.TemplatePayoutPaid,
			Data:     map[string]string{"username": "alice", "amount": "$30.00", "reason": ""},
		}, gomock.Any()).Return(true, nil)
	})

	require.NoError(t, f.w.Work(context.Background(), makeJob(events.PayoutJob{PayoutID: f.payout.ID}, 1)))
}

func TestPayoutWorker_retriesThenFails(t *testing.T) {
	f := newPayoutFixture(t)
	transient := serrors.With(serrors.ErrUnavailable, "stripe unavailable")

	f.storage.EXPECT().PayoutByID(gomock.Any(), f.payout.ID).Return(f.payout, nil).Times(2)
	f.storage.EXPECT().UserByID(gomock.Any(), f.explorer.ID).Return(f.explorer, nil).Times(2)
	f.payments.EXPECT().CreateTransfer(gomock.Any(), gomock.Any()).Return("", transient).Times(2)

	err := f.w.Work(context.Background(), makeJob(events.PayoutJob{PayoutID: f.payout.ID}, 1))
	require.ErrorIs(t, err, serrors.ErrUnavailable)

	expectWithTx(f.ctrl, f.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdatePayout(gomock.Any(), f.payout.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.PayoutID, u storage.PayoutUpdates) (*domain.Payout, error) {
				require.Equal(t, domain.PayoutFailed, *u.Status)
				require.Equal(t, "stripe unavailable", *u.FailureReason)

				return f.payout, nil
			})
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
	})
	require.NoError(t, f.w.Work(context.Background(), makeJob(events.PayoutJob{PayoutID: f.payout.ID}, 3)))
}

func TestPayoutWorker_skipsSettled(t *testing.T) {
	f := newPayoutFixture(t)
	f.payout.Status = domain.PayoutPaid

	f.storage.EXPECT().PayoutByID(gomock.Any(), f.payout.ID).Return(f.payout, nil)
	require.NoError(t, f.w.Work(context.Background(), makeJob(events.PayoutJob{PayoutID: f.payout.ID}, 1)))

	f.storage.EXPECT().PayoutByID(gomock.Any(), f.payout.ID).Return(nil, nil)
	err := f.w.Work(context.Background(), makeJob(events.PayoutJob{PayoutID: f.payout.ID}, 1))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestExpireMembershipsWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mockmembership.NewMockService(ctrl)
	w := worker.NewExpireMembershipsWorker(svc)

	svc.EXPECT().ExpireIncomplete(gomock.Any()).Return(int64(2), nil)
	require.NoError(t, w.Work(context.Background(), makeJob(events.ExpireMembershipsJob{}, 1)))

	svc.EXPECT().ExpireIncomplete(gomock.Any()).Return(int64(0), errors.New("db down"))
	require.Error(t, w.Work(context.Background(), makeJob(events.ExpireMembershipsJob{}, 1)))
}

func TestWorkers_registersEveryKind(t *testing.T) {
	workers := worker.Workers(worker.Deps{}, worker.Options{})
	require.NotNil(t, workers)
}
