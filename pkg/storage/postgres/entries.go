package postgres

import (
	"context"
	"fmt"
	"journal/pkg/domain"
	"journal/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const entriesTable = "entries"

func (p *PgSQL) CreateEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error) {
	var row PgEntry
	row.FromDomain(entry)

	var out PgEntry
	if _, err := p.Builder.Insert(entriesTable).
		Rows(row).
		Returning(&PgEntry{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, wrapWriteErr(err, "could not store entry into pg")
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) EntryByID(ctx context.Context, id domain.EntryID) (*domain.Entry, error) {
	var row PgEntry
	found, err := p.Builder.From(entriesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id)), notDeleted("")).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch entry by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateEntry(ctx context.Context, id domain.EntryID, updates storage.EntryUpdates) (*domain.Entry, error) {
	rec := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	setIf(rec, "title", updates.Title)
	setIf(rec, "content", updates.Content)
	setIf(rec, "place", updates.Place)
	setIf(rec, "date", updates.Date)
	setIf(rec, "is_draft", updates.IsDraft)
	if updates.Visibility != nil {
		rec["visibility"] = string(*updates.Visibility)
	}
	switch {
	case updates.ClearLocation:
		rec["lat"] = nil
		rec["lon"] = nil
	case updates.Location != nil:
		rec["lat"] = updates.Location.Lat
		rec["lon"] = updates.Location.Lon
	}
	switch {
	case updates.ClearExpedition:
		rec["expedition_id"] = nil
	case updates.ExpeditionID != nil:
		rec["expedition_id"] = uuid.UUID(*updates.ExpeditionID)
	}

	var row PgEntry
	found, err := p.Builder.Update(entriesTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id)), notDeleted("")).
		Returning(&PgEntry{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update entry in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteEntry performs a soft delete by setting deleted_at for an entry owned
// by authorID, returning the deleted record.
func (p *PgSQL) DeleteEntry(ctx context.Context, authorID domain.UserID, id domain.EntryID) (*domain.Entry, error) {
	var row PgEntry
	found, err := p.Builder.Update(entriesTable).
		Set(goqu.Record{"deleted_at": goqu.L("CURRENT_TIMESTAMP")}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("author_id").Eq(uuid.UUID(authorID)),
			notDeleted(""),
		).
		Returning(&PgEntry{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete entry in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func publishedEntries() []exp.Expression {
	return []exp.Expression{
		goqu.I("visibility").Eq(string(domain.VisibilityPublic)),
		goqu.I("is_draft").IsFalse(),
	}
}

func (p *PgSQL) entryFilter(filter storage.EntryFilter) []exp.Expression {
	w := []exp.Expression{notDeleted("")}
	if filter.AuthorID != nil {
		w = append(w, goqu.I("author_id").Eq(uuid.UUID(*filter.AuthorID)))
	}
	if filter.AuthorIDs != nil {
		ids := make([]uuid.UUID, len(filter.AuthorIDs))
		for i, id := range filter.AuthorIDs {
			ids[i] = uuid.UUID(id)
		}
		if len(ids) == 0 {
			w = append(w, goqu.L("FALSE"))
		} else {
			w = append(w, goqu.I("author_id").In(ids))
		}
	}
	if filter.FollowedBy != nil {
		w = append(w, goqu.I("author_id").In(
			p.Builder.From(followsTable).
				Select("followee_id").
				Where(goqu.I("follower_id").Eq(uuid.UUID(*filter.FollowedBy))),
		))
	}
	if filter.PublishedOnly {
		w = append(w, publishedEntries()...)
	}
	if b := filter.Bounds; b != nil {
		w = append(w,
			goqu.I("lat").IsNotNull(),
			goqu.I("lat").Between(exp.NewRangeVal(b.South, b.North)),
		)
		if b.CrossesAntimeridian() {
			w = append(w, goqu.Or(goqu.I("lon").Gte(b.West), goqu.I("lon").Lte(b.East)))
		} else {
			w = append(w, goqu.I("lon").Between(exp.NewRangeVal(b.West, b.East)))
		}
	}

	return w
}

// Entries returns a page of entries matching filter created before the
// optional cursor, ordered by created_at DESC, id DESC.
func (p *PgSQL) Entries(ctx context.Context,
	filter storage.EntryFilter,
	cursor time.Time,
	limit uint) (storage.Page[domain.Entry], error) {
	ds := p.Builder.From(entriesTable).Where(p.entryFilter(filter)...)

	var rows []PgEntry
	if err := paginate(ds, "created_at", "id", cursor, limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.Page[domain.Entry]{}, fmt.Errorf("could not fetch entries from pg: %w", err)
	}

	rows, next := trimPage(rows, limit, func(r *PgEntry) time.Time { return r.CreatedAt })

	return storage.Page[domain.Entry]{
		Items:      toDomain(rows, (*PgEntry).ToDomain),
		NextCursor: next,
	}, nil
}

func (p *PgSQL) ExpeditionEntries(ctx context.Context,
	expeditionID domain.ExpeditionID,
	publishedOnly bool) ([]domain.Entry, error) {
	w := []exp.Expression{goqu.I("expedition_id").Eq(uuid.UUID(expeditionID)), notDeleted("")}
	if publishedOnly {
		w = append(w, publishedEntries()...)
	}

	var rows []PgEntry
	if err := p.Builder.From(entriesTable).
		Where(w...).
		Order(goqu.I("date").Asc(), goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch expedition entries from pg: %w", err)
	}

	return toDomain(rows, (*PgEntry).ToDomain), nil
}

func (p *PgSQL) CountEntries(ctx context.Context, authorID domain.UserID, publishedOnly bool) (int64, error) {
	w := []exp.Expression{goqu.I("author_id").Eq(uuid.UUID(authorID)), notDeleted("")}
	if publishedOnly {
		w = append(w, publishedEntries()...)
	}

	n, err := p.Builder.From(entriesTable).Where(w...).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count entries in pg: %w", err)
	}

	return n, nil
}

func (p *PgSQL) DetachExpeditionEntries(ctx context.Context, expeditionID domain.ExpeditionID) (int64, error) {
	res, err := p.Builder.Update(entriesTable).
		Set(goqu.Record{
			"expedition_id": nil,
			"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("expedition_id").Eq(uuid.UUID(expeditionID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not detach expedition entries in pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n, nil
}
