package postgres

import (
	"context"
	"fmt"
	"journal/pkg/domain"
	"journal/pkg/storage"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const usersTable = "users"

func (p *PgSQL) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	user.Username = strings.ToLower(user.Username)
	user.Email = strings.ToLower(user.Email)

	var row PgUser
	row.FromDomain(user)

	var out PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, wrapWriteErr(err, "could not store user into pg")
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) userWhere(ctx context.Context, where ...exp.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(append(where, notDeleted(""))...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("username").Eq(strings.ToLower(username)))
}

func (p *PgSQL) UserByLogin(ctx context.Context, login string) (*domain.User, error) {
	login = strings.ToLower(login)

	return p.userWhere(ctx, goqu.Or(
		goqu.I("username").Eq(login),
		goqu.I("email").Eq(login),
	))
}

func (p *PgSQL) UserByStripeAccount(ctx context.Context, accountID string) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("stripe_account_id").Eq(accountID))
}

// UpdateUser applies the non-nil fields of updates and returns the updated
// user, or nil when the user does not exist.
func (p *PgSQL) UpdateUser(ctx context.Context, id domain.UserID, updates storage.UserUpdates) (*domain.User, error) {
	rec := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	setIf(rec, "name", updates.Name)
	setIf(rec, "bio", updates.Bio)
	setIf(rec, "location", updates.Location)
	setIf(rec, "avatar_url", updates.AvatarURL)
	setIf(rec, "website", updates.Website)
	setIf(rec, "password_hash", updates.PasswordHash)
	setIf(rec, "stripe_customer_id", updates.StripeCustomerID)
	setIf(rec, "stripe_account_id", updates.StripeAccountID)
	setIf(rec, "payouts_enabled", updates.PayoutsEnabled)
	if updates.Role != nil {
		rec["role"] = string(*updates.Role)
	}

	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id)), notDeleted("")).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapWriteErr(err, "could not update user in pg")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) LockUser(ctx context.Context, id domain.UserID) error {
	var locked uuid.UUID
	if _, err := p.Builder.From(usersTable).
		Select("id").
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		ForUpdate(exp.Wait).
		ScanValContext(ctx, &locked); err != nil {
		return fmt.Errorf("could not lock user in pg: %w", err)
	}

	return nil
}

// setIf adds col to rec when v is non-nil.
func setIf[T any](rec goqu.Record, col string, v *T) {
	if v != nil {
		rec[col] = *v
	}
}
