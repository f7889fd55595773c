package membership_test

import (
	"context"
	"journal/internal/membership"
	"journal/pkg/domain"
	"journal/pkg/logger"
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

func newService(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, *mockpayments.MockClient, membership.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	pay := mockpayments.NewMockClient(ctrl)
	svc := membership.New(membership.Deps{Storage: st, Payments: pay}, membership.Options{
		MonthlyPriceID: "price_monthly",
		AnnualPriceID:  "price_annual",
		Expiry:         time.Hour,
	})

	return ctrl, st, pay, svc
}

func TestSubscribe(t *testing.T) {
	_, st, pay, svc := newService(t)
	user := &domain.User{ID: domain.UserID(uuid.New()), Username: "alice", Email: "alice@example.com", StripeCustomerID: "cus_1"}

	_, err := svc.Subscribe(context.Background(), user.ID, "weekly")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	st.EXPECT().CurrentMembership(gomock.Any(), user.ID).Return(nil, nil)
	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
	pay.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params payments.SubscriptionParams) (*payments.Subscription, error) {
			require.Equal(t, "cus_1", params.CustomerID)
			require.Equal(t, "price_annual", params.PriceID)

			return &payments.Subscription{ID: "sub_pro", ClientSecret: "secret"}, nil
		})
	st.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m domain.Membership) (*domain.Membership, error) {
			require.Equal(t, domain.MembershipIncomplete, m.Status)
			require.Equal(t, "sub_pro", m.StripeSubscriptionID)

			return &m, nil
		})
	checkout, err := svc.Subscribe(context.Background(), user.ID, domain.PlanAnnual)
	require.NoError(t, err)
	require.Equal(t, "secret", checkout.ClientSecret)

	st.EXPECT().CurrentMembership(gomock.Any(), user.ID).Return(&domain.Membership{Status: domain.MembershipActive}, nil)
	_, err = svc.Subscribe(context.Background(), user.ID, domain.PlanMonthly)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestCancel(t *testing.T) {
	_, st, pay, svc := newService(t)
	userID := domain.UserID(uuid.New())
	m := &domain.Membership{ID: domain.MembershipID(uuid.New()), UserID: userID, StripeSubscriptionID: "sub_pro"}

	st.EXPECT().CurrentMembership(gomock.Any(), userID).Return(nil, nil)
	_, err := svc.Cancel(context.Background(), userID)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	st.EXPECT().CurrentMembership(gomock.Any(), userID).Return(m, nil)
	pay.EXPECT().CancelSubscription(gomock.Any(), "sub_pro").Return(nil)
	st.EXPECT().UpdateMembership(gomock.Any(), m.ID, storage.MembershipUpdates{Status: ptr(domain.MembershipCanceled)}).Return(m, nil)
	_, err = svc.Cancel(context.Background(), userID)
	require.NoError(t, err)
}

func TestExpireIncomplete(t *testing.T) {
	_, st, _, svc := newService(t)

	st.EXPECT().ExpireIncompleteMemberships(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, before time.Time) (int64, error) {
			require.WithinDuration(t, time.Now().Add(-time.Hour), before, time.Minute)

			return 2, nil
		})
	n, err := svc.ExpireIncomplete(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
}

func TestHandleEvent_roles(t *testing.T) {
	ctrl, _, _, svc := newService(t)
	tx := mockstorage.NewMockAllStorage(ctrl)
	userID := domain.UserID(uuid.New())
	m := &domain.Membership{ID: domain.MembershipID(uuid.New()), UserID: userID}
	periodEnd := time.Date(2026, 11, 14, 0, 0, 0, 0, time.UTC)

	tx.EXPECT().MembershipBySubscription(gomock.Any(), "sub_pro").Return(m, nil)
	tx.EXPECT().UpdateMembership(gomock.Any(), m.ID, storage.MembershipUpdates{
		Status: ptr(domain.MembershipActive), CurrentPeriodEnd: &periodEnd,
	}).Return(m, nil)
	tx.EXPECT().UserByID(gomock.Any(), userID).Return(&domain.User{ID: userID, Role: domain.RoleUser}, nil)
	tx.EXPECT().UpdateUser(gomock.Any(), userID, storage.UserUpdates{Role: ptr(domain.RoleCreator)}).Return(&domain.User{}, nil)
	require.NoError(t, svc.HandleEvent(context.Background(), tx, payments.Event{
		Type: payments.EventInvoicePaid, SubscriptionID: "sub_pro", PeriodEnd: periodEnd,
	}))

	tx.EXPECT().MembershipBySubscription(gomock.Any(), "sub_pro").Return(m, nil)
	tx.EXPECT().UpdateMembership(gomock.Any(), m.ID, storage.MembershipUpdates{Status: ptr(domain.MembershipCanceled)}).Return(m, nil)
	tx.EXPECT().UserByID(gomock.Any(), userID).Return(&domain.User{ID: userID, Role: domain.RoleCreator}, nil)
	tx.EXPECT().UpdateUser(gomock.Any(), userID, storage.UserUpdates{Role: ptr(domain.RoleUser)}).Return(&domain.User{}, nil)
	require.NoError(t, svc.HandleEvent(context.Background(), tx, payments.Event{
		Type: payments.EventSubscriptionDeleted, SubscriptionID: "sub_pro",
	}))

	// admins are never demoted
	tx.EXPECT().MembershipBySubscription(gomock.Any(), "sub_pro").Return(m, nil)
	tx.EXPECT().UpdateMembership(gomock.Any(), m.ID, gomock.Any()).Return(m, nil)
	tx.EXPECT().UserByID(gomock.Any(), userID).Return(&domain.User{ID: userID, Role: domain.RoleAdmin}, nil)
	require.NoError(t, svc.HandleEvent(context.Background(), tx, payments.Event{
		Type: payments.EventSubscriptionDeleted, SubscriptionID: "sub_pro",
	}))

	// sponsorship subscriptions are not memberships
	tx.EXPECT().MembershipBySubscription(gomock.Any(), "sub_sponsor").Return(nil, nil)
	require.NoError(t, svc.HandleEvent(context.Background(), tx, payments.Event{
		Type: payments.EventInvoicePaid, SubscriptionID: "sub_sponsor",
	}))
}
