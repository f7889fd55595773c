package main

import (
	"context"
	"errors"
	"journal/internal/account"
	"journal/internal/api"
	"journal/internal/api/handler/v1handler"
	"journal/internal/config"
	"journal/internal/events"
	"journal/internal/expedition"
	"journal/internal/journal"
	"journal/internal/membership"
	"journal/internal/message"
	"journal/internal/notification"
	"journal/internal/payout"
	"journal/internal/sponsorship"
	"journal/internal/webhook"
	"journal/internal/worker"
	"journal/pkg/captcha/recaptcha"
	"journal/pkg/controller"
	"journal/pkg/geocoder"
	"journal/pkg/geocoder/cache"
	"journal/pkg/geocoder/mapbox"
	"journal/pkg/logger"
	"journal/pkg/mailer"
	"journal/pkg/mailer/smtp"
	"journal/pkg/payments/stripe"
	"journal/pkg/session"
	"journal/pkg/session/redisstore"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, deps api.Deps, cfg *config.Config) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func getMailer(ctx context.Context, cfg *config.Config) mailer.Mailer {
	templates, err := mailer.LoadTemplates()
	if err != nil {
		logger.Fatal(ctx, "could not load email templates", zap.Error(err))
	}

	if cfg.SMTP.Host == "" {
		logger.Warn(ctx, "smtp host is not configured, emails are logged instead")

		return mailer.NewLogMailer(templates)
	}

	m, err := smtp.New(smtp.Options{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		TLS:      cfg.SMTP.TLS,
		Timeout:  cfg.SMTP.Timeout,
	}, templates)
	if err != nil {
		logger.Fatal(ctx, "could not create smtp mailer", zap.Error(err))
	}

	return m
}

func getGeocoder(ctx context.Context, cfg *config.Config, httpClient *http.Client, rdb redis.Cmdable) geocoder.Geocoder {
	if cfg.Mapbox.Token == "" {
		logger.Warn(ctx, "mapbox token is not configured, geocoding is disabled")

		return geocoder.Disabled{}
	}

	return cache.New(mapbox.New(httpClient, cfg.Mapbox.Token), rdb, cfg.Mapbox.CacheTTL)
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			rdb, closeRedis := getRedis(ctx, cfg)
			defer closeRedis()

			codec, err := session.NewCodec(cfg.Session.Secret, cfg.Session.Issuer)
			if err != nil {
				logger.Fatal(ctx, "could not create session codec", zap.Error(err))
			}

			httpClient := &http.Client{Timeout: cfg.HTTP.ClientTimeout}
			paymentsClient := stripe.New(httpClient, cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret,
				stripe.WithLogger(logger.Get(ctx)))
			emitter := events.NewEmitter(cfg.Worker.MaxAttempts)

			membershipSvc := membership.New(membership.Deps{
				Storage:  strg,
				Payments: paymentsClient,
			}, membership.NewOptions(cfg))
			sponsorshipSvc := sponsorship.New(sponsorship.Deps{
				Storage:  strg,
				Payments: paymentsClient,
				Emitter:  emitter,
			}, sponsorship.NewOptions(cfg))
			payoutSvc := payout.New(payout.Deps{
				Storage:  strg,
				Payments: paymentsClient,
				Emitter:  emitter,
			}, payout.NewOptions(cfg))

			proxies, err := controller.NewTrustedProxies(cfg.RateLimit.TrustedProxies)
			if err != nil {
				logger.Fatal(ctx, "could not parse trusted proxies", zap.Error(err))
			}
			authLimiter := controller.NewRateLimiter(cfg.RateLimit.AuthPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.Cleanup).
				WithTrustedProxies(proxies)
			authLimiter.StartCleanup(ctx, cfg.RateLimit.Cleanup)

			// workers are stopped gracefully below, not by the signal
			riverClient, err := worker.Start(context.WithoutCancel(ctx), strg.Pool, worker.Deps{
				Storage:    strg,
				Mailer:     getMailer(ctx, cfg),
				Payments:   paymentsClient,
				Membership: membershipSvc,
				Emitter:    emitter,
			}, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, api.Deps{
				Deps: v1handler.Deps{
					Account: account.New(account.Deps{
						Storage:  strg,
						Captcha:  recaptcha.New(httpClient, cfg.Captcha.Secret, cfg.Captcha.MinScore),
						Codec:    codec,
						Sessions: redisstore.New(rdb),
						Emitter:  emitter,
					}, account.NewOptions(cfg)),
					Journal: journal.New(journal.Deps{
						Storage:  strg,
						Geocoder: getGeocoder(ctx, cfg, httpClient, rdb),
						Emitter:  emitter,
					}),
					Expedition:   expedition.New(strg),
					Sponsorship:  sponsorshipSvc,
					Payout:       payoutSvc,
					Membership:   membershipSvc,
					Notification: notification.New(strg),
					Message: message.New(message.Deps{
						Storage: strg,
						Emitter: emitter,
					}),
					Webhook:     webhook.New(strg, paymentsClient, sponsorshipSvc, membershipSvc, payoutSvc),
					AuthLimiter: authLimiter,
					Proxies:     proxies,
				},
				HealthChecks: []api.HealthCheck{
					{Name: "postgres", Check: strg.Ping},
					{Name: "redis", Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
				},
			}, cfg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
