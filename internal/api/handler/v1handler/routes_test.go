package v1handler_test

import (
	"encoding/json"
	"io"
	"journal/internal/account"
	mockaccount "journal/internal/account/mock"
	"journal/internal/api/handler/v1handler"
	mockexpedition "journal/internal/expedition/mock"
	"journal/internal/journal"
	mockjournal "journal/internal/journal/mock"
	mockmembership "journal/internal/membership/mock"
	mockmessage "journal/internal/message/mock"
	mocknotification "journal/internal/notification/mock"
	mockpayout "journal/internal/payout/mock"
	"journal/internal/sponsorship"
	mocksponsorship "journal/internal/sponsorship/mock"
	mockwebhook "journal/internal/webhook/mock"
	"journal/pkg/controller"
	"journal/pkg/domain"
	"journal/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const firefox = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"

type fixture struct {
	account      *mockaccount.MockService
	journal      *mockjournal.MockService
	expedition   *mockexpedition.MockService
	sponsorship  *mocksponsorship.MockService
	payout       *mockpayout.MockService
	membership   *mockmembership.MockService
	notification *mocknotification.MockService
	message      *mockmessage.MockService
	webhook      *mockwebhook.MockDispatcher

	router http.Handler
}

func newFixture(t *testing.T, limiter *controller.RateLimiter) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		account:      mockaccount.NewMockService(ctrl),
		journal:      mockjournal.NewMockService(ctrl),
		expedition:   mockexpedition.NewMockService(ctrl),
		sponsorship:  mocksponsorship.NewMockService(ctrl),
		payout:       mockpayout.NewMockService(ctrl),
		membership:   mockmembership.NewMockService(ctrl),
		notification: mocknotification.NewMockService(ctrl),
		message:      mockmessage.NewMockService(ctrl),
		webhook:      mockwebhook.NewMockDispatcher(ctrl),
	}

	h := v1handler.New(v1handler.Deps{
		Account:      f.account,
		Journal:      f.journal,
		Expedition:   f.expedition,
		Sponsorship:  f.sponsorship,
		Payout:       f.payout,
		Membership:   f.membership,
		Notification: f.notification,
		Message:      f.message,
		Webhook:      f.webhook,
		AuthLimiter:  limiter,
	}, v1handler.Options{
		CookieName:     "journal_session",
		SecureCookies:  true,
		MaxBodyBytes:   1 << 16,
		TrustedClients: []string{"journal-mobile"},
	})

	r := chi.NewRouter()
	r.Route("/v1", h.Routes)
	f.router = r

	return f
}

func (f *fixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("User-Agent", firefox)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

// signedIn makes token resolve to p.
func (f *fixture) signedIn(token string, p domain.Principal) {
	f.account.EXPECT().Authenticate(gomock.Any(), token).Return(&p, nil).AnyTimes()
}

func alice() domain.Principal {
	return domain.Principal{
		UserID:    domain.UserID(uuid.New()),
		Username:  "alice",
		Role:      domain.RoleCreator,
		SessionID: "sess_1",
	}
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

func TestMe_RequiresSession(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(http.MethodGet, "/v1/me", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"authentication required"}`, rec.Body.String())
}

func TestMe_BearerToken(t *testing.T) {
	f := newFixture(t, nil)
	p := alice()
	f.signedIn("tok", p)
	f.account.EXPECT().Me(gomock.Any(), p.UserID).Return(&domain.User{
		ID:       p.UserID,
		Username: "alice",
		Email:    "alice@example.com",
		Role:     domain.RoleCreator,
	}, nil)

	rec := f.do(http.MethodGet, "/v1/me", "", "tok")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[map[string]any](t, rec)
	require.Equal(t, "alice@example.com", body["email"])
	require.Equal(t, "creator", body["role"])
	require.Equal(t, false, body["canReceiveSponsorships"])
}

func TestLogin_SetsCookie(t *testing.T) {
	f := newFixture(t, nil)
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	f.account.EXPECT().Login(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, in account.LoginInput) (*account.AuthResult, error) {
			require.Equal(t, "alice", in.Login)
			require.Equal(t, "correct horse", in.Password)
			require.Equal(t, firefox, in.UserAgent)
			require.Equal(t, "192.0.2.1", in.RemoteIP)

			return &account.AuthResult{
				User:      domain.User{Username: "alice"},
				SessionID: "sess_1",
				Token:     "tok",
				ExpiresAt: expires,
			}, nil
		})

	rec := f.do(http.MethodPost, "/v1/auth/login", `{"login":"alice","password":"correct horse"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "journal_session", cookies[0].Name)
	require.Equal(t, "tok", cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)
	require.True(t, cookies[0].Secure)
	require.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	body := decodeBody[map[string]any](t, rec)
	require.Equal(t, "tok", body["token"])
}

func TestLogin_InvalidBody(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(http.MethodPost, "/v1/auth/login", `{"login":"alice","password":"x","extra":1}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPost, "/v1/auth/login", `{"login":"alice"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Password")
}

func TestAuth_RateLimited(t *testing.T) {
	f := newFixture(t, controller.NewRateLimiter(60, 1, time.Minute))
	f.account.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrUnauthorized, "invalid username or password"))

	body := `{"login":"alice","password":"guess"}`
	require.Equal(t, http.StatusUnauthorized, f.do(http.MethodPost, "/v1/auth/login", body, "").Code)
	require.Equal(t, http.StatusTooManyRequests, f.do(http.MethodPost, "/v1/auth/login", body, "").Code)
}

func TestAuth_BotGuard(t *testing.T) {
	f := newFixture(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", strings.NewReader(`{}`))
	req.Header.Set("User-Agent", "python-requests/2.31.0")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLogout_RevokesSession(t *testing.T) {
	f := newFixture(t, nil)
	p := alice()
	f.signedIn("tok", p)
	f.account.EXPECT().Logout(gomock.Any(), "sess_1").Return(nil)

	rec := f.do(http.MethodPost, "/v1/auth/logout", "", "tok")
	require.Equal(t, http.StatusNoContent, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Less(t, cookies[0].MaxAge, 0)
}

func TestExpiredSession_ContinuesAnonymously(t *testing.T) {
	f := newFixture(t, nil)
	id := domain.EntryID(uuid.New())
	f.account.EXPECT().Authenticate(gomock.Any(), "stale").
		Return(nil, serrors.With(serrors.ErrUnauthorized, "session expired"))
	f.journal.EXPECT().Get(gomock.Any(), domain.UserID{}, id).Return(&domain.Entry{
		ID:         id,
		Title:      "Summit day",
		Visibility: domain.VisibilityPublic,
	}, nil)

	rec := f.do(http.MethodGet, "/v1/entries/"+id.String(), "", "stale")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Summit day", decodeBody[map[string]any](t, rec)["title"])
}

func TestCreateEntry(t *testing.T) {
	f := newFixture(t, nil)
	p := alice()
	f.signedIn("tok", p)
	f.journal.EXPECT().Create(gomock.Any(), p.UserID, gomock.Any()).DoAndReturn(
		func(_ any, author domain.UserID, in journal.EntryInput) (*domain.Entry, error) {
			require.Equal(t, "Base camp", in.Title)
			require.NotNil(t, in.Location)
			require.InDelta(t, 27.98, in.Location.Lat, 1e-9)
			require.True(t, in.IsDraft)

			return &domain.Entry{
				ID:       domain.EntryID(uuid.New()),
				AuthorID: author,
				Title:    in.Title,
				Location: in.Location,
				IsDraft:  true,
			}, nil
		})

	rec := f.do(http.MethodPost, "/v1/entries",
		`{"title":"Base camp","content":"<p>cold</p>","location":{"lat":27.98,"lon":86.92},"isDraft":true}`, "tok")
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody[map[string]any](t, rec)
	require.Equal(t, p.UserID.String(), body["authorId"])
	require.Equal(t, map[string]any{"lat": 27.98, "lon": 86.92}, body["location"])
}

func TestCreateEntry_RejectsBadCoordinates(t *testing.T) {
	f := newFixture(t, nil)
	f.signedIn("tok", alice())

	rec := f.do(http.MethodPost, "/v1/entries", `{"title":"x","location":{"lat":95,"lon":0}}`, "tok")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetEntry_InvalidID(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(http.MethodGet, "/v1/entries/not-a-uuid", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMap(t *testing.T) {
	f := newFixture(t, nil)
	box := domain.BoundingBox{West: 160, South: -50, East: -170, North: -30}
	f.journal.EXPECT().InBoundingBox(gomock.Any(), box, "", uint(10)).
		Return([]domain.Entry{{Title: "Chatham Islands"}}, "next", nil)

	rec := f.do(http.MethodGet, "/v1/map?west=160&south=-50&east=-170&north=-30&limit=10", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[map[string]any](t, rec)
	require.Equal(t, "next", body["nextCursor"])
	require.Len(t, body["items"], 1)

	rec = f.do(http.MethodGet, "/v1/map?west=160&south=-50&east=-170", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckout(t *testing.T) {
	f := newFixture(t, nil)
	p := alice()
	f.signedIn("tok", p)
	f.sponsorship.EXPECT().Checkout(gomock.Any(), p.UserID, sponsorship.CheckoutInput{
		Explorer: "bob",
		Amount:   2500,
		Type:     domain.SponsorshipOneTime,
		Message:  "good luck",
	}).Return(&domain.Checkout{
		Sponsorship: domain.Sponsorship{
			Amount: 2500,
			Fee:    250,
			Status: domain.SponsorshipPending,
			Type:   domain.SponsorshipOneTime,
		},
		ClientSecret: "pi_1_secret",
	}, nil)

	rec := f.do(http.MethodPost, "/v1/sponsorships/checkout",
		`{"explorer":"bob","amount":2500,"type":"one_time","message":"good luck"}`, "tok")
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody[map[string]any](t, rec)
	require.Equal(t, "pi_1_secret", body["clientSecret"])
}

func TestCreateTier_PaymentRequired(t *testing.T) {
	f := newFixture(t, nil)
	p := alice()
	f.signedIn("tok", p)
	f.sponsorship.EXPECT().CreateTier(gomock.Any(), p, gomock.Any()).
		Return(nil, serrors.KindOnly(serrors.ErrPaymentRequired))

	rec := f.do(http.MethodPost, "/v1/tiers", `{"title":"Base camp","price":500,"interval":"month"}`, "tok")
	require.Equal(t, http.StatusPaymentRequired, rec.Code)
	require.Contains(t, rec.Body.String(), "PAYMENT_REQUIRED")
}

func TestRequestPayout(t *testing.T) {
	f := newFixture(t, nil)
	p := alice()
	f.signedIn("tok", p)
	f.payout.EXPECT().Request(gomock.Any(), p.UserID, int64(5000)).Return(&domain.Payout{
		Amount:   5000,
		Currency: "usd",
		Status:   domain.PayoutPending,
	}, nil)

	rec := f.do(http.MethodPost, "/v1/payouts", `{"amount":5000}`, "tok")
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, "pending", decodeBody[map[string]any](t, rec)["status"])

	rec = f.do(http.MethodPost, "/v1/payouts", `{"amount":0}`, "tok")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBalance(t *testing.T) {
	f := newFixture(t, nil)
	p := alice()
	f.signedIn("tok", p)
	f.payout.EXPECT().Balance(gomock.Any(), p.UserID).
		Return(&domain.Balance{Currency: "usd", Earned: 9000, PaidOut: 2500}, nil)

	rec := f.do(http.MethodGet, "/v1/payouts/balance", "", "tok")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"currency":"usd","earned":9000,"paidOut":2500,"available":6500}`, rec.Body.String())
}

func TestSubscribe_InvalidPlan(t *testing.T) {
	f := newFixture(t, nil)
	f.signedIn("tok", alice())

	rec := f.do(http.MethodPost, "/v1/membership", `{"plan":"lifetime"}`, "tok")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotifications(t *testing.T) {
	f := newFixture(t, nil)
	p := alice()
	f.signedIn("tok", p)
	f.notification.EXPECT().UnreadCount(gomock.Any(), p.UserID).Return(int64(3), nil)
	f.notification.EXPECT().MarkAllRead(gomock.Any(), p.UserID).Return(int64(3), nil)

	rec := f.do(http.MethodGet, "/v1/notifications/unread-count", "", "tok")
	require.JSONEq(t, `{"count":3}`, rec.Body.String())

	rec = f.do(http.MethodPost, "/v1/notifications/read-all", "", "tok")
	require.JSONEq(t, `{"count":3}`, rec.Body.String())
}

func TestSendMessage(t *testing.T) {
	f := newFixture(t, nil)
	p := alice()
	f.signedIn("tok", p)
	f.message.EXPECT().Send(gomock.Any(), p, "bob", "see you at the col").
		Return(&domain.Message{SenderID: p.UserID, Body: "see you at the col"}, nil)

	rec := f.do(http.MethodPost, "/v1/messages/bob", `{"body":"see you at the col"}`, "tok")
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestStripeWebhook(t *testing.T) {
	f := newFixture(t, nil)
	payload := `{"id":"evt_1","type":"payment_intent.succeeded"}`
	f.webhook.EXPECT().Dispatch(gomock.Any(), []byte(payload), "t=1,v1=abc").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", strings.NewReader(payload))
	req.Header.Set("Stripe-Signature", "t=1,v1=abc")
	req.Header.Set("User-Agent", "Stripe/1.0 (+https://stripe.com/docs/webhooks)")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	f.webhook.EXPECT().Dispatch(gomock.Any(), gomock.Any(), "").
		Return(serrors.With(serrors.ErrBadRequest, "invalid signature"))
	rec = f.do(http.MethodPost, "/v1/webhooks/stripe", payload, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
