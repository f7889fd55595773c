package main

import (
	"context"
	"fmt"
	"journal/internal/config"
	"journal/pkg/domain"
	"journal/pkg/logger"
	"journal/pkg/session"
	"journal/pkg/session/redisstore"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// sessionCommand groups operator tools for API sessions.
func sessionCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Issues and revokes API sessions",
	}

	issue := &cobra.Command{
		Use:   "issue <username>",
		Short: "Creates a session for the user and prints its bearer token",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			ttl, _ := cmd.Flags().GetDuration("ttl")

			user := lookupUser(ctx, cfg, args[0])

			codec, err := session.NewCodec(cfg.Session.Secret, cfg.Session.Issuer)
			if err != nil {
				logger.Fatal(ctx, "could not create session codec", zap.Error(err))
			}

			rdb, closeRedis := getRedis(ctx, cfg)
			defer closeRedis()

			now := time.Now().UTC()
			sess := domain.Session{
				ID:        uuid.New().String(),
				UserID:    user.ID,
				UserAgent: "journal-cli",
				CreatedAt: now,
				ExpiresAt: now.Add(ttl),
			}
			if err = redisstore.New(rdb).Create(ctx, sess); err != nil {
				logger.Fatal(ctx, "could not store session", zap.Error(err))
			}

			token, err := codec.Issue(sess)
			if err != nil {
				logger.Fatal(ctx, "could not sign session token", zap.Error(err))
			}

			fmt.Println(token) //nolint: forbidigo
		},
	}
	issue.Flags().Duration("ttl", 24*time.Hour, "Session TTL (e.g., 30s, 15m, 1h)")

	revoke := &cobra.Command{
		Use:   "revoke <username>",
		Short: "Revokes every session of the user",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			user := lookupUser(ctx, cfg, args[0])

			rdb, closeRedis := getRedis(ctx, cfg)
			defer closeRedis()

			if err := redisstore.New(rdb).DeleteUserSessions(ctx, user.ID, ""); err != nil {
				logger.Fatal(ctx, "could not revoke sessions", zap.Error(err))
			}
			logger.Info(ctx, "sessions revoked", zap.String("username", user.Username))
		},
	}

	cmd.AddCommand(issue, revoke)

	return cmd
}

func lookupUser(ctx context.Context, cfg *config.Config, username string) *domain.User {
	strg, closeStrg := getPostgres(ctx, cfg)
	defer closeStrg()

	user, err := strg.UserByUsername(ctx, username)
	if err != nil {
		logger.Fatal(ctx, "could not find user", zap.String("username", username), zap.Error(err))
	}
	if user == nil {
		logger.Fatal(ctx, "user does not exist", zap.String("username", username))
	}

	return user
}
