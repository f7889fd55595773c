// Package redisstore keeps session records in Redis.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"journal/pkg/domain"
	"journal/pkg/session"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "sess:"
	userKeyPrefix    = "sess:user:"
)

type record struct {
	UserID    string    `json:"uid"`
	UserAgent string    `json:"ua,omitempty"`
	IP        string    `json:"ip,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store indexes sessions by user in a set so they can be revoked together.
type Store struct {
	client redis.Cmdable
}

func sessionKey(id string) string { return sessionKeyPrefix + id }

func userKey(id domain.UserID) string { return userKeyPrefix + id.String() }

func (s *Store) Create(ctx context.Context, sess domain.Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}
	b, err := json.Marshal(record{
		UserID:    sess.UserID.String(),
		UserAgent: sess.UserAgent,
		IP:        sess.IP,
		CreatedAt: sess.CreatedAt,
		ExpiresAt: sess.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("could not encode session: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKey(sess.ID), b, ttl)
	pipe.SAdd(ctx, userKey(sess.UserID), sess.ID)
	// the index lives as long as the newest session
	pipe.ExpireGT(ctx, userKey(sess.UserID), ttl)
	pipe.ExpireNX(ctx, userKey(sess.UserID), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("could not store session: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*domain.Session, error) {
	b, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read session: %w", err)
	}

	var r record
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("could not decode session: %w", err)
	}
	uid, err := uuid.Parse(r.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not decode session user: %w", err)
	}

	return &domain.Session{
		ID:        id,
		UserID:    domain.UserID(uid),
		UserAgent: r.UserAgent,
		IP:        r.IP,
		CreatedAt: r.CreatedAt,
		ExpiresAt: r.ExpiresAt,
	}, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	sess, err := s.Get(ctx, id)
	if err != nil || sess == nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, sessionKey(id))
	pipe.SRem(ctx, userKey(sess.UserID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("could not delete session: %w", err)
	}

	return nil
}

func (s *Store) DeleteUserSessions(ctx context.Context, userID domain.UserID, keepID string) error {
	ids, err := s.client.SMembers(ctx, userKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("could not list user sessions: %w", err)
	}

	pipe := s.client.TxPipeline()
	for _, id := range ids {
		if id == keepID {
			continue
		}
		pipe.Del(ctx, sessionKey(id))
		pipe.SRem(ctx, userKey(userID), id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("could not delete user sessions: %w", err)
	}

	return nil
}

var _ session.Store = (*Store)(nil)

func New(client redis.Cmdable) *Store {
	return &Store{client: client}
}
