package sponsorship_test

import (
	"context"
	"errors"
	"journal/internal/events"
	"journal/internal/sponsorship"
	"journal/pkg/domain"
	"journal/pkg/logger"
	"journal/pkg/money"
	"journal/pkg/payments"
	mockpayments "journal/pkg/payments/mock"
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
	payments *mockpayments.MockClient
	svc      sponsorship.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:     ctrl,
		storage:  mockstorage.NewMockStorage(ctrl),
		payments: mockpayments.NewMockClient(ctrl),
	}
	f.svc = sponsorship.New(sponsorship.Deps{
		Storage:  f.storage,
		Payments: f.payments,
		Emitter:  events.NewEmitter(3),
	}, sponsorship.Options{
		Currency:       "usd",
		FeeBasisPoints: 1000,
		MinAmount:      500,
		ProductID:      "prod_sponsorship",
	})

	return f
}

func explorer() *domain.User {
	return &domain.User{
		ID:              domain.UserID(uuid.New()),
		Username:        "alice",
		Email:           "alice@example.com",
		Role:            domain.RoleCreator,
		StripeAccountID: "acct_alice",
		PayoutsEnabled:  true,
	}
}

func TestCreateTier(t *testing.T) {
	f := newFixture(t)
	owner := domain.Principal{UserID: domain.UserID(uuid.New()), Role: domain.RoleCreator}

	_, err := f.svc.CreateTier(context.Background(), domain.Principal{Role: domain.RoleUser}, sponsorship.TierInput{Title: "Coffee", Price: 500})
	require.ErrorIs(t, err, serrors.ErrPaymentRequired)

	_, err = f.svc.CreateTier(context.Background(), owner, sponsorship.TierInput{Title: "Coffee", Price: 100})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = f.svc.CreateTier(context.Background(), owner, sponsorship.TierInput{Title: "Coffee", Price: 500, Interval: "weekly"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = f.svc.CreateTier(context.Background(), owner, sponsorship.TierInput{Title: "Coffee", Price: money.MaxAmount + 1})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	f.storage.EXPECT().CreateTier(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tier domain.SponsorshipTier) (*domain.SponsorshipTier, error) {
			require.Equal(t, owner.UserID, tier.ExplorerID)
			require.Equal(t, domain.IntervalOneTime, tier.Interval)
			require.True(t, tier.Active)

			return &tier, nil
		})
	tier, err := f.svc.CreateTier(context.Background(), owner, sponsorship.TierInput{Title: "<b>Coffee</b>", Price: 500})
	require.NoError(t, err)
	require.Equal(t, "Coffee", tier.Title)

	f.storage.EXPECT().CreateTier(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tier domain.SponsorshipTier) (*domain.SponsorshipTier, error) {
			return &tier, nil
		})
	tier, err = f.svc.CreateTier(context.Background(), owner, sponsorship.TierInput{
		Title: "&lt;img src=x onerror=alert(1)&gt;", Price: 500,
	})
	require.NoError(t, err)
	require.NotContains(t, tier.Title, "<")
	require.Equal(t, "&lt;img src=x onerror=alert(1)&gt;", tier.Title)
}

func TestUpdateTier_ownerOnly(t *testing.T) {
	f := newFixture(t)
	owner := domain.Principal{UserID: domain.UserID(uuid.New()), Role: domain.RoleCreator}
	id := domain.TierID(uuid.New())

	f.storage.EXPECT().TierByID(gomock.Any(), id).Return(&domain.SponsorshipTier{ID: id, ExplorerID: domain.UserID(uuid.New()), Title: "x"}, nil)
	_, err := f.svc.UpdateTier(context.Background(), owner, id, sponsorship.TierUpdateInput{Active: ptr(false)})
	require.ErrorIs(t, err, serrors.ErrNotFound)

	f.storage.EXPECT().TierByID(gomock.Any(), id).Return(&domain.SponsorshipTier{ID: id, ExplorerID: owner.UserID, Title: "x"}, nil)
	f.storage.EXPECT().UpdateTier(gomock.Any(), id, storage.TierUpdates{Active: ptr(false)}).Return(&domain.SponsorshipTier{ID: id}, nil)
	_, err = f.svc.UpdateTier(context.Background(), owner, id, sponsorship.TierUpdateInput{Active: ptr(false)})
	require.NoError(t, err)
}

func TestCheckout_oneTime(t *testing.T) {
	f := newFixture(t)
	exp := explorer()
	sponsor := &domain.User{ID: domain.UserID(uuid.New()), Username: "bob", Email: "bob@example.com"}

	f.storage.EXPECT().UserByUsername(gomock.Any(), "alice").Return(exp, nil)
	f.storage.EXPECT().UserByID(gomock.Any(), sponsor.ID).Return(sponsor, nil)
	f.payments.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params payments.PaymentIntentParams) (*payments.PaymentIntent, error) {
			require.Equal(t, int64(2500), params.Amount)
			require.Equal(t, domain.TransferGroup(exp.ID), params.TransferGroup)
			require.Equal(t, exp.ID.String(), params.Metadata["explorer_id"])

			return &payments.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil
		})
	f.storage.EXPECT().CreateSponsorship(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sp domain.Sponsorship) (*domain.Sponsorship, error) {
			require.Equal(t, int64(250), sp.Fee)
			require.Equal(t, domain.SponsorshipPending, sp.Status)
			require.Equal(t, "pi_1", sp.PaymentIntentID)
			require.Equal(t, "Keep going!", sp.Message)

			return &sp, nil
		})

	checkout, err := f.svc.Checkout(context.Background(), sponsor.ID, sponsorship.CheckoutInput{
		Explorer: "alice",
		Amount:   2500,
		Message:  "<i>Keep going!</i>",
	})
	require.NoError(t, err)
	require.Equal(t, "pi_1_secret", checkout.ClientSecret)
	require.Equal(t, int64(2250), checkout.Sponsorship.Net())
}

func TestCheckout_monthlyTierCreatesCustomer(t *testing.T) {
	f := newFixture(t)
	exp := explorer()
	sponsor := &domain.User{ID: domain.UserID(uuid.New()), Username: "bob", Email: "bob@example.com"}
	tierID := domain.TierID(uuid.New())
	periodEnd := time.Date(2026, 11, 14, 0, 0, 0, 0, time.UTC)

	f.storage.EXPECT().UserByUsername(gomock.Any(), "alice").Return(exp, nil)
	f.storage.EXPECT().TierByID(gomock.Any(), tierID).Return(&domain.SponsorshipTier{
		ID: tierID, ExplorerID: exp.ID, Price: 1000, Interval: domain.IntervalMonth, Active: true,
	}, nil)
	f.storage.EXPECT().UserByID(gomock.Any(), sponsor.ID).Return(sponsor, nil)
	f.payments.EXPECT().CreateCustomer(gomock.Any(), "bob@example.com", "bob", gomock.Any()).Return("cus_bob", nil)
	f.storage.EXPECT().UpdateUser(gomock.Any(), sponsor.ID, storage.UserUpdates{StripeCustomerID: ptr("cus_bob")}).Return(sponsor, nil)
	f.payments.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params payments.SubscriptionParams) (*payments.Subscription, error) {
			require.Equal(t, "cus_bob", params.CustomerID)
			require.Equal(t, "prod_sponsorship", params.ProductID)
			require.Equal(t, int64(1000), params.Amount)
			require.Equal(t, "month", params.Interval)

			return &payments.Subscription{ID: "sub_1", ClientSecret: "sub_secret", CurrentPeriodEnd: periodEnd}, nil
		})
	f.storage.EXPECT().CreateSponsorship(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sp domain.Sponsorship) (*domain.Sponsorship, error) {
			require.Equal(t, domain.SponsorshipRecurring, sp.Type)
			require.Equal(t, "sub_1", sp.StripeSubscriptionID)
			require.Equal(t, &tierID, sp.TierID)

			return &sp, nil
		})

	checkout, err := f.svc.Checkout(context.Background(), sponsor.ID, sponsorship.CheckoutInput{Explorer: "alice", TierID: &tierID})
	require.NoError(t, err)
	require.Equal(t, "sub_secret", checkout.ClientSecret)
}

func TestCheckout_rejected(t *testing.T) {
	f := newFixture(t)
	exp := explorer()

	f.storage.EXPECT().UserByUsername(gomock.Any(), "alice").Return(exp, nil)
	_, err := f.svc.Checkout(context.Background(), exp.ID, sponsorship.CheckoutInput{Explorer: "alice", Amount: 1000})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	f.storage.EXPECT().UserByUsername(gomock.Any(), "alice").Return(exp, nil)
	_, err = f.svc.Checkout(context.Background(), domain.UserID(uuid.New()), sponsorship.CheckoutInput{Explorer: "alice", Amount: 100})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	notReady := explorer()
	notReady.PayoutsEnabled = false
	f.storage.EXPECT().UserByUsername(gomock.Any(), "alice").Return(notReady, nil)
	_, err = f.svc.Checkout(context.Background(), domain.UserID(uuid.New()), sponsorship.CheckoutInput{Explorer: "alice", Amount: 1000})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	f.storage.EXPECT().UserByUsername(gomock.Any(), "nobody").Return(nil, nil)
	_, err = f.svc.Checkout(context.Background(), domain.UserID(uuid.New()), sponsorship.CheckoutInput{Explorer: "nobody", Amount: 1000})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestCheckout_amountAboveProviderLimit(t *testing.T) {
	f := newFixture(t)
	exp := explorer()

	for _, amount := range []int64{money.MaxAmount + 1, 10_000_000_000_000_000} {
		f.storage.EXPECT().UserByUsername(gomock.Any(), "alice").Return(exp, nil)
		_, err := f.svc.Checkout(context.Background(), domain.UserID(uuid.New()), sponsorship.CheckoutInput{
			Explorer: "alice", Amount: amount,
		})
		require.ErrorIs(t, err, serrors.ErrBadRequest, "amount %d", amount)
	}
}

func TestCancel(t *testing.T) {
	f := newFixture(t)
	sponsor := domain.UserID(uuid.New())
	id := domain.SponsorshipID(uuid.New())

	f.storage.EXPECT().SponsorshipByID(gomock.Any(), id).Return(&domain.Sponsorship{ID: id, SponsorID: sponsor, Type: domain.SponsorshipOneTime}, nil)
	_, err := f.svc.Cancel(context.Background(), sponsor, id)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	f.storage.EXPECT().SponsorshipByID(gomock.Any(), id).Return(&domain.Sponsorship{ID: id, SponsorID: domain.UserID(uuid.New())}, nil)
	_, err = f.svc.Cancel(context.Background(), sponsor, id)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	f.storage.EXPECT().SponsorshipByID(gomock.Any(), id).Return(&domain.Sponsorship{
		ID: id, SponsorID: sponsor, Type: domain.SponsorshipRecurring, Status: domain.SponsorshipConfirmed, StripeSubscriptionID: "sub_1",
	}, nil)
	f.payments.EXPECT().CancelSubscription(gomock.Any(), "sub_1").Return(nil)
	f.storage.EXPECT().UpdateSponsorship(gomock.Any(), id, storage.SponsorshipUpdates{Status: ptr(domain.SponsorshipCanceled)}).
		Return(&domain.Sponsorship{ID: id, Status: domain.SponsorshipCanceled}, nil)
	sp, err := f.svc.Cancel(context.Background(), sponsor, id)
	require.NoError(t, err)
	require.Equal(t, domain.SponsorshipCanceled, sp.Status)
}

func TestHandleEvent_paymentSucceeded(t *testing.T) {
	f := newFixture(t)
	tx := mockstorage.NewMockAllStorage(f.ctrl)
	exp := explorer()
	sponsor := &domain.User{ID: domain.UserID(uuid.New()), Username: "bob"}
	sp := &domain.Sponsorship{
		ID: domain.SponsorshipID(uuid.New()), SponsorID: sponsor.ID, ExplorerID: exp.ID,
		Amount: 2500, Currency: "usd", Type: domain.SponsorshipOneTime, Status: domain.SponsorshipPending,
	}

	tx.EXPECT().SponsorshipByPaymentIntent(gomock.Any(), "pi_1").Return(sp, nil)
	tx.EXPECT().UpdateSponsorship(gomock.Any(), sp.ID, storage.SponsorshipUpdates{
		Status: ptr(domain.SponsorshipConfirmed), IncrementPaid: true,
	}).Return(sp, nil)
	tx.EXPECT().UserByID(gomock.Any(), exp.ID).Return(exp, nil)
	tx.EXPECT().UserByID(gomock.Any(), sponsor.ID).Return(sponsor, nil)
	tx.EXPECT().AddJob(gomock.Any(), events.NotificationJob{
		UserID: exp.ID, ActorID: &sponsor.ID, Type: domain.NotificationSponsorship, SponsorshipID: &sp.ID,
	}, gomock.Any()).Return(true, nil)
	tx.EXPECT().AddJob(gomock.Any(), events.EmailJob{
		To:       exp.Email,
		Template: "sponsorship_received",
		Data:     map[string]string{"username": "alice", "sponsor": "@bob", "amount": "$25.00", "message": ""},
	}, gomock.Any()).Return(true, nil)

	require.NoError(t, f.svc.HandleEvent(context.Background(), tx, payments.Event{Type: payments.EventPaymentSucceeded, ObjectID: "pi_1"}))

	// already confirmed and unknown intents are no-ops
	sp.Status = domain.SponsorshipConfirmed
	tx.EXPECT().SponsorshipByPaymentIntent(gomock.Any(), "pi_1").Return(sp, nil)
	require.NoError(t, f.svc.HandleEvent(context.Background(), tx, payments.Event{Type: payments.EventPaymentSucceeded, ObjectID: "pi_1"}))
	tx.EXPECT().SponsorshipByPaymentIntent(gomock.Any(), "pi_other").Return(nil, nil)
	require.NoError(t, f.svc.HandleEvent(context.Background(), tx, payments.Event{Type: payments.EventPaymentSucceeded, ObjectID: "pi_other"}))
}

func TestHandleEvent_paymentFailed(t *testing.T) {
	f := newFixture(t)
	tx := mockstorage.NewMockAllStorage(f.ctrl)
	sp := &domain.Sponsorship{
		ID: domain.SponsorshipID(uuid.New()), SponsorID: domain.UserID(uuid.New()), ExplorerID: domain.UserID(uuid.New()),
		Amount: 2500, Type: domain.SponsorshipOneTime, Status: domain.SponsorshipPending, PaymentIntentID: "pi_1",
	}
	event := payments.Event{Type: payments.EventPaymentFailed, ObjectID: "pi_1", FailureMessage: "card declined"}

	tx.EXPECT().SponsorshipByPaymentIntent(gomock.Any(), "pi_1").Return(sp, nil)
	tx.EXPECT().UpdateSponsorship(gomock.Any(), sp.ID, storage.SponsorshipUpdates{Status: ptr(domain.SponsorshipFailed)}).
		Return(sp, nil)
	require.NoError(t, f.svc.HandleEvent(context.Background(), tx, event))

	// a confirmed sponsorship is never downgraded by a late failure
	confirmed := *sp
	confirmed.Status = domain.SponsorshipConfirmed
	tx.EXPECT().SponsorshipByPaymentIntent(gomock.Any(), "pi_1").Return(&confirmed, nil)
	require.NoError(t, f.svc.HandleEvent(context.Background(), tx, event))

	tx.EXPECT().SponsorshipByPaymentIntent(gomock.Any(), "pi_1").Return(nil, errors.New("conn closed"))
	require.ErrorContains(t, f.svc.HandleEvent(context.Background(), tx, event), "conn closed")
}

func TestHandleEvent_subscriptionLifecycle(t *testing.T) {
	f := newFixture(t)
	tx := mockstorage.NewMockAllStorage(f.ctrl)
	sp := &domain.Sponsorship{
		ID: domain.SponsorshipID(uuid.New()), SponsorID: domain.UserID(uuid.New()), ExplorerID: domain.UserID(uuid.New()),
		Type: domain.SponsorshipRecurring, Status: domain.SponsorshipConfirmed, StripeSubscriptionID: "sub_1",
	}
	periodEnd := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	tx.EXPECT().SponsorshipBySubscription(gomock.Any(), "sub_1").Return(sp, nil)
	tx.EXPECT().UpdateSponsorship(gomock.Any(), sp.ID, storage.SponsorshipUpdates{
		Status: ptr(domain.SponsorshipConfirmed), CurrentPeriodEnd: &periodEnd, IncrementPaid: true,
	}).Return(sp, nil)
	tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	tx.EXPECT().UserByID(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	require.NoError(t, f.svc.HandleEvent(context.Background(), tx, payments.Event{
		Type: payments.EventInvoicePaid, SubscriptionID: "sub_1", PeriodEnd: periodEnd,
	}))

	tx.EXPECT().SponsorshipBySubscription(gomock.Any(), "sub_1").Return(sp, nil)
	tx.EXPECT().UpdateSponsorship(gomock.Any(), sp.ID, storage.SponsorshipUpdates{Status: ptr(domain.SponsorshipCanceled)}).Return(sp, nil)
	require.NoError(t, f.svc.HandleEvent(context.Background(), tx, payments.Event{
		Type: payments.EventSubscriptionDeleted, SubscriptionID: "sub_1",
	}))

	require.NoError(t, f.svc.HandleEvent(context.Background(), tx, payments.Event{Type: payments.EventAccountUpdated}))
}
