package postgres

import (
	"context"
	"fmt"
	"journal/pkg/domain"
	"journal/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const followsTable = "follows"

type pgFollowedUser struct {
	PgUser
	FollowedAt time.Time `db:"followed_at"`
}

func (p *PgSQL) Follow(ctx context.Context, followerID, followeeID domain.UserID) (bool, error) {
	res, err := p.Builder.Insert(followsTable).
		Rows(goqu.Record{
			"follower_id": uuid.UUID(followerID),
			"followee_id": uuid.UUID(followeeID),
		}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not store follow into pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) Unfollow(ctx context.Context, followerID, followeeID domain.UserID) (bool, error) {
	res, err := p.Builder.Delete(followsTable).
		Where(
			goqu.I("follower_id").Eq(uuid.UUID(followerID)),
			goqu.I("followee_id").Eq(uuid.UUID(followeeID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete follow in pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) IsFollowing(ctx context.Context, followerID, followeeID domain.UserID) (bool, error) {
	n, err := p.Builder.From(followsTable).
		Where(
			goqu.I("follower_id").Eq(uuid.UUID(followerID)),
			goqu.I("followee_id").Eq(uuid.UUID(followeeID)),
		).
		CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not check follow in pg: %w", err)
	}

	return n > 0, nil
}

// followPage lists the users on the other side of the follow edge, ordered by
// when the follow happened.
func (p *PgSQL) followPage(ctx context.Context,
	matchCol, otherCol string,
	userID domain.UserID,
	cursor time.Time,
	limit uint) (storage.Page[domain.User], error) {
	ds := p.Builder.From(goqu.T(followsTable).As("f")).
		Join(goqu.T(usersTable).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("f."+otherCol)))).
		Select(goqu.T("u").All(), goqu.I("f.created_at").As("followed_at")).
		Where(goqu.I("f."+matchCol).Eq(uuid.UUID(userID)), notDeleted("u"))

	var rows []pgFollowedUser
	if err := paginate(ds, "f.created_at", "u.id", cursor, limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.Page[domain.User]{}, fmt.Errorf("could not fetch follows from pg: %w", err)
	}

	rows, next := trimPage(rows, limit, func(r *pgFollowedUser) time.Time { return r.FollowedAt })

	return storage.Page[domain.User]{
		Items:      toDomain(rows, func(r *pgFollowedUser) *domain.User { return r.PgUser.ToDomain() }),
		NextCursor: next,
	}, nil
}

func (p *PgSQL) Followers(ctx context.Context,
	userID domain.UserID,
	cursor time.Time,
	limit uint) (storage.Page[domain.User], error) {
	return p.followPage(ctx, "followee_id", "follower_id", userID, cursor, limit)
}

func (p *PgSQL) Following(ctx context.Context,
	userID domain.UserID,
	cursor time.Time,
	limit uint) (storage.Page[domain.User], error) {
	return p.followPage(ctx, "follower_id", "followee_id", userID, cursor, limit)
}

func (p *PgSQL) FollowerIDs(ctx context.Context, userID domain.UserID) ([]domain.UserID, error) {
	var ids []uuid.UUID
	if err := p.Builder.From(followsTable).
		Select("follower_id").
		Where(goqu.I("followee_id").Eq(uuid.UUID(userID))).
		ScanValsContext(ctx, &ids); err != nil {
		return nil, fmt.Errorf("could not fetch follower ids from pg: %w", err)
	}

	out := make([]domain.UserID, len(ids))
	for i, id := range ids {
		out[i] = domain.UserID(id)
	}

	return out, nil
}

// FollowCounts returns the number of followers and followed users.
func (p *PgSQL) FollowCounts(ctx context.Context, userID domain.UserID) (int64, int64, error) {
	var counts struct {
		Followers int64 `db:"followers"`
		Following int64 `db:"following"`
	}
	id := uuid.UUID(userID)
	if _, err := p.Builder.From(followsTable).
		Select(
			goqu.L("COUNT(*) FILTER (WHERE followee_id = ?)", id).As("followers"),
			goqu.L("COUNT(*) FILTER (WHERE follower_id = ?)", id).As("following"),
		).
		Where(goqu.Or(goqu.I("followee_id").Eq(id), goqu.I("follower_id").Eq(id))).
		ScanStructContext(ctx, &counts); err != nil {
		return 0, 0, fmt.Errorf("could not count follows in pg: %w", err)
	}

	return counts.Followers, counts.Following, nil
}
