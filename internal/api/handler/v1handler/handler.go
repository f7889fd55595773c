package v1handler

import (
	"journal/internal/account"
	"journal/internal/config"
	"journal/internal/expedition"
	"journal/internal/journal"
	"journal/internal/membership"
	"journal/internal/message"
	"journal/internal/notification"
	"journal/internal/payout"
	"journal/internal/sponsorship"
	"journal/internal/webhook"
	"journal/pkg/controller"

	"github.com/go-chi/chi/v5"
)

type Deps struct {
	Account      account.Service
	Journal      journal.Service
	Expedition   expedition.Service
	Sponsorship  sponsorship.Service
	Payout       payout.Service
	Membership   membership.Service
	Notification notification.Service
	Message      message.Service
	Webhook      webhook.Dispatcher
	// AuthLimiter throttles /v1/auth per client IP. Nil disables it.
	AuthLimiter *controller.RateLimiter
	// Proxies resolve the client IP passed to captcha checks and sessions.
	// Nil uses the socket peer.
	Proxies *controller.TrustedProxies
}

type Options struct {
	CookieName     string
	CookieDomain   string
	SecureCookies  bool
	MaxBodyBytes   int64
	TrustedClients []string
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		CookieName:     cfg.Session.CookieName,
		CookieDomain:   cfg.Session.CookieDomain,
		SecureCookies:  !cfg.IsDevelopment(),
		MaxBodyBytes:   cfg.HTTP.MaxBodyBytes,
		TrustedClients: cfg.CORS.TrustedClients,
	}
}

// Handler serves the v1 REST API.
type Handler struct {
	Deps

	options Options
}

func New(deps Deps, options Options) *Handler {
	return &Handler{Deps: deps, options: options}
}

// Routes registers every v1 endpoint on r. Paths are relative to /v1.
func (h *Handler) Routes(r chi.Router) {
	botGuard := controller.WithBotGuard(h.options.TrustedClients)

	// Stripe signs the raw body; no session or bot guard applies.
	r.Post("/webhooks/stripe", h.stripeWebhook)

	r.Group(func(r chi.Router) {
		r.Use(h.authenticate)

		r.Route("/auth", func(r chi.Router) {
			r.Use(botGuard)
			if h.AuthLimiter != nil {
				r.Use(h.AuthLimiter.Handler)
			}
			r.Post("/signup", h.signUp)
			r.Post("/login", h.login)
			r.With(requireAuth).Post("/logout", h.logout)
		})

		// Public reads. A session, when present, widens visibility.
		r.Get("/users/{username}", h.getProfile)
		r.Get("/users/{username}/followers", h.listFollowers)
		r.Get("/users/{username}/following", h.listFollowing)
		r.Get("/users/{username}/entries", h.listUserEntries)
		r.Get("/users/{username}/expeditions", h.listUserExpeditions)
		r.Get("/users/{username}/tiers", h.listTiers)
		r.Get("/entries/{id}", h.getEntry)
		r.Get("/expeditions/{id}", h.getExpedition)
		r.Get("/feed", h.publicFeed)
		r.Get("/map", h.mapEntries)
		r.Get("/places", h.searchPlaces)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Get("/me", h.getMe)
			r.Patch("/me", h.updateMe)
			r.Post("/me/password", h.changePassword)

			r.Post("/users/{username}/follow", h.follow)
			r.Delete("/users/{username}/follow", h.unfollow)

			r.Post("/entries", h.createEntry)
			r.Patch("/entries/{id}", h.updateEntry)
			r.Delete("/entries/{id}", h.deleteEntry)
			r.Get("/feed/following", h.followingFeed)

			r.Post("/expeditions", h.createExpedition)
			r.Patch("/expeditions/{id}", h.updateExpedition)
			r.Delete("/expeditions/{id}", h.deleteExpedition)
			r.Put("/expeditions/{id}/entries/{entryID}", h.attachEntry)
			r.Delete("/expeditions/{id}/entries/{entryID}", h.detachEntry)

			r.Post("/tiers", h.createTier)
			r.Patch("/tiers/{id}", h.updateTier)
			r.Delete("/tiers/{id}", h.deleteTier)
			r.With(botGuard).Post("/sponsorships/checkout", h.checkout)
			r.Post("/sponsorships/{id}/cancel", h.cancelSponsorship)
			r.Get("/sponsorships/given", h.listGiven)
			r.Get("/sponsorships/received", h.listReceived)

			r.Post("/payouts/onboard", h.onboard)
			r.Get("/payouts/balance", h.balance)
			r.Get("/payouts", h.listPayouts)
			r.Post("/payouts", h.requestPayout)

			r.Get("/membership", h.getMembership)
			r.With(botGuard).Post("/membership", h.subscribe)
			r.Delete("/membership", h.cancelMembership)

			r.Get("/notifications", h.listNotifications)
			r.Get("/notifications/unread-count", h.unreadCount)
			r.Post("/notifications/{id}/read", h.markRead)
			r.Post("/notifications/read-all", h.markAllRead)

			r.Get("/messages/{username}", h.conversation)
			r.Post("/messages/{username}", h.sendMessage)
		})
	})
}
