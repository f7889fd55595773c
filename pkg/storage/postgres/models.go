package postgres

import (
	"database/sql"
	"journal/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// Row types mirror the tables one to one. Columns filled by the database are
// tagged skipinsert; nullable columns use sql.Null* and are mapped to zero
// values in the domain.

type PgUser struct {
	ID               uuid.UUID      `db:"id"                 goqu:"skipinsert"`
	Username         string         `db:"username"`
	Email            string         `db:"email"`
	PasswordHash     string         `db:"password_hash"`
	Role             string         `db:"role"`
	Name             string         `db:"name"`
	Bio              string         `db:"bio"`
	Location         string         `db:"location"`
	AvatarURL        string         `db:"avatar_url"`
	Website          string         `db:"website"`
	StripeCustomerID sql.NullString `db:"stripe_customer_id"`
	StripeAccountID  sql.NullString `db:"stripe_account_id"`
	PayoutsEnabled   bool           `db:"payouts_enabled"`
	CreatedAt        time.Time      `db:"created_at"         goqu:"skipinsert"`
	UpdatedAt        sql.NullTime   `db:"updated_at"         goqu:"skipinsert"`
	DeletedAt        sql.NullTime   `db:"deleted_at"         goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:               domain.UserID(p.ID),
		Username:         p.Username,
		Email:            p.Email,
		PasswordHash:     p.PasswordHash,
		Role:             domain.Role(p.Role),
		Name:             p.Name,
		Bio:              p.Bio,
		Location:         p.Location,
		AvatarURL:        p.AvatarURL,
		Website:          p.Website,
		StripeCustomerID: p.StripeCustomerID.String,
		StripeAccountID:  p.StripeAccountID.String,
		PayoutsEnabled:   p.PayoutsEnabled,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt.Time,
		DeletedAt:        p.DeletedAt.Time,
	}
}

func (p *PgUser) FromDomain(u domain.User) {
	*p = PgUser{
		ID:               uuid.UUID(u.ID),
		Username:         u.Username,
		Email:            u.Email,
		PasswordHash:     u.PasswordHash,
		Role:             string(u.Role),
		Name:             u.Name,
		Bio:              u.Bio,
		Location:         u.Location,
		AvatarURL:        u.AvatarURL,
		Website:          u.Website,
		StripeCustomerID: nullString(u.StripeCustomerID),
		StripeAccountID:  nullString(u.StripeAccountID),
		PayoutsEnabled:   u.PayoutsEnabled,
	}
}

type PgEntry struct {
	ID           uuid.UUID       `db:"id"            goqu:"skipinsert"`
	AuthorID     uuid.UUID       `db:"author_id"`
	ExpeditionID uuid.NullUUID   `db:"expedition_id"`
	Title        string          `db:"title"`
	Content      string          `db:"content"`
	Place        string          `db:"place"`
	Lat          sql.NullFloat64 `db:"lat"`
	Lon          sql.NullFloat64 `db:"lon"`
	Date         time.Time       `db:"date"`
	Visibility   string          `db:"visibility"`
	IsDraft      bool            `db:"is_draft"`
	CreatedAt    time.Time       `db:"created_at"    goqu:"skipinsert"`
	UpdatedAt    sql.NullTime    `db:"updated_at"    goqu:"skipinsert"`
	DeletedAt    sql.NullTime    `db:"deleted_at"    goqu:"skipinsert"`
}

func (p *PgEntry) ToDomain() *domain.Entry {
	e := &domain.Entry{
		ID:         domain.EntryID(p.ID),
		AuthorID:   domain.UserID(p.AuthorID),
		Title:      p.Title,
		Content:    p.Content,
		Place:      p.Place,
		Date:       p.Date,
		Visibility: domain.Visibility(p.Visibility),
		IsDraft:    p.IsDraft,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt.Time,
		DeletedAt:  p.DeletedAt.Time,
	}
	if p.ExpeditionID.Valid {
		id := domain.ExpeditionID(p.ExpeditionID.UUID)
		e.ExpeditionID = &id
	}
	if p.Lat.Valid && p.Lon.Valid {
		e.Location = &domain.Point{Lat: p.Lat.Float64, Lon: p.Lon.Float64}
	}

	return e
}

func (p *PgEntry) FromDomain(e domain.Entry) {
	*p = PgEntry{
		ID:         uuid.UUID(e.ID),
		AuthorID:   uuid.UUID(e.AuthorID),
		Title:      e.Title,
		Content:    e.Content,
		Place:      e.Place,
		Date:       e.Date,
		Visibility: string(e.Visibility),
		IsDraft:    e.IsDraft,
	}
	if e.ExpeditionID != nil {
		p.ExpeditionID = uuid.NullUUID{UUID: uuid.UUID(*e.ExpeditionID), Valid: true}
	}
	if e.Location != nil {
		p.Lat = sql.NullFloat64{Float64: e.Location.Lat, Valid: true}
		p.Lon = sql.NullFloat64{Float64: e.Location.Lon, Valid: true}
	}
}

type PgExpedition struct {
	ID          uuid.UUID    `db:"id"          goqu:"skipinsert"`
	AuthorID    uuid.UUID    `db:"author_id"`
	Title       string       `db:"title"`
	Description string       `db:"description"`
	Status      string       `db:"status"`
	Visibility  string       `db:"visibility"`
	StartDate   sql.NullTime `db:"start_date"`
	EndDate     sql.NullTime `db:"end_date"`
	CreatedAt   time.Time    `db:"created_at"  goqu:"skipinsert"`
	UpdatedAt   sql.NullTime `db:"updated_at"  goqu:"skipinsert"`
	DeletedAt   sql.NullTime `db:"deleted_at"  goqu:"skipinsert"`
}

func (p *PgExpedition) ToDomain() *domain.Expedition {
	return &domain.Expedition{
		ID:          domain.ExpeditionID(p.ID),
		AuthorID:    domain.UserID(p.AuthorID),
		Title:       p.Title,
		Description: p.Description,
		Status:      domain.ExpeditionStatus(p.Status),
		Visibility:  domain.Visibility(p.Visibility),
		StartDate:   p.StartDate.Time,
		EndDate:     p.EndDate.Time,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
		DeletedAt:   p.DeletedAt.Time,
	}
}

func (p *PgExpedition) FromDomain(e domain.Expedition) {
	*p = PgExpedition{
		ID:          uuid.UUID(e.ID),
		AuthorID:    uuid.UUID(e.AuthorID),
		Title:       e.Title,
		Description: e.Description,
		Status:      string(e.Status),
		Visibility:  string(e.Visibility),
		StartDate:   nullTime(e.StartDate),
		EndDate:     nullTime(e.EndDate),
	}
}

type PgTier struct {
	ID          uuid.UUID    `db:"id"          goqu:"skipinsert"`
	ExplorerID  uuid.UUID    `db:"explorer_id"`
	Title       string       `db:"title"`
	Description string       `db:"description"`
	Price       int64        `db:"price"`
	Interval    string       `db:"interval"`
	Active      bool         `db:"active"`
	CreatedAt   time.Time    `db:"created_at"  goqu:"skipinsert"`
	UpdatedAt   sql.NullTime `db:"updated_at"  goqu:"skipinsert"`
	DeletedAt   sql.NullTime `db:"deleted_at"  goqu:"skipinsert"`
}

func (p *PgTier) ToDomain() *domain.SponsorshipTier {
	return &domain.SponsorshipTier{
		ID:          domain.TierID(p.ID),
		ExplorerID:  domain.UserID(p.ExplorerID),
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Interval:    domain.TierInterval(p.Interval),
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
		DeletedAt:   p.DeletedAt.Time,
	}
}

func (p *PgTier) FromDomain(t domain.SponsorshipTier) {
	*p = PgTier{
		ID:          uuid.UUID(t.ID),
		ExplorerID:  uuid.UUID(t.ExplorerID),
		Title:       t.Title,
		Description: t.Description,
		Price:       t.Price,
		Interval:    string(t.Interval),
		Active:      t.Active,
	}
}

type PgSponsorship struct {
	ID                   uuid.UUID      `db:"id"                     goqu:"skipinsert"`
	SponsorID            uuid.UUID      `db:"sponsor_id"`
	ExplorerID           uuid.UUID      `db:"explorer_id"`
	TierID               uuid.NullUUID  `db:"tier_id"`
	Amount               int64          `db:"amount"`
	Currency             string         `db:"currency"`
	Fee                  int64          `db:"fee"`
	PaidCount            int            `db:"paid_count"`
	Type                 string         `db:"type"`
	Status               string         `db:"status"`
	Message              string         `db:"message"`
	PaymentIntentID      sql.NullString `db:"payment_intent_id"`
	StripeSubscriptionID sql.NullString `db:"stripe_subscription_id"`
	CurrentPeriodEnd     sql.NullTime   `db:"current_period_end"`
	CreatedAt            time.Time      `db:"created_at"             goqu:"skipinsert"`
	UpdatedAt            sql.NullTime   `db:"updated_at"             goqu:"skipinsert"`
}

func (p *PgSponsorship) ToDomain() *domain.Sponsorship {
	s := &domain.Sponsorship{
		ID:                   domain.SponsorshipID(p.ID),
		SponsorID:            domain.UserID(p.SponsorID),
		ExplorerID:           domain.UserID(p.ExplorerID),
		Amount:               p.Amount,
		Currency:             p.Currency,
		Fee:                  p.Fee,
		PaidCount:            p.PaidCount,
		Type:                 domain.SponsorshipType(p.Type),
		Status:               domain.SponsorshipStatus(p.Status),
		Message:              p.Message,
		PaymentIntentID:      p.PaymentIntentID.String,
		StripeSubscriptionID: p.StripeSubscriptionID.String,
		CurrentPeriodEnd:     p.CurrentPeriodEnd.Time,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt.Time,
	}
	if p.TierID.Valid {
		id := domain.TierID(p.TierID.UUID)
		s.TierID = &id
	}

	return s
}

func (p *PgSponsorship) FromDomain(s domain.Sponsorship) {
	*p = PgSponsorship{
		ID:                   uuid.UUID(s.ID),
		SponsorID:            uuid.UUID(s.SponsorID),
		ExplorerID:           uuid.UUID(s.ExplorerID),
		Amount:               s.Amount,
		Currency:             s.Currency,
		Fee:                  s.Fee,
		PaidCount:            s.PaidCount,
		Type:                 string(s.Type),
		Status:               string(s.Status),
		Message:              s.Message,
		PaymentIntentID:      nullString(s.PaymentIntentID),
		StripeSubscriptionID: nullString(s.StripeSubscriptionID),
		CurrentPeriodEnd:     nullTime(s.CurrentPeriodEnd),
	}
	if s.TierID != nil {
		p.TierID = uuid.NullUUID{UUID: uuid.UUID(*s.TierID), Valid: true}
	}
}

type PgPayout struct {
	ID            uuid.UUID      `db:"id"             goqu:"skipinsert"`
	ExplorerID    uuid.UUID      `db:"explorer_id"`
	Amount        int64          `db:"amount"`
	Currency      string         `db:"currency"`
	Status        string         `db:"status"`
	TransferID    sql.NullString `db:"transfer_id"`
	FailureReason sql.NullString `db:"failure_reason"`
	CreatedAt     time.Time      `db:"created_at"     goqu:"skipinsert"`
	UpdatedAt     sql.NullTime   `db:"updated_at"     goqu:"skipinsert"`
}

func (p *PgPayout) ToDomain() *domain.Payout {
	return &domain.Payout{
		ID:            domain.PayoutID(p.ID),
		ExplorerID:    domain.UserID(p.ExplorerID),
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        domain.PayoutStatus(p.Status),
		TransferID:    p.TransferID.String,
		FailureReason: p.FailureReason.String,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}
}

func (p *PgPayout) FromDomain(d domain.Payout) {
	*p = PgPayout{
		ID:            uuid.UUID(d.ID),
		ExplorerID:    uuid.UUID(d.ExplorerID),
		Amount:        d.Amount,
		Currency:      d.Currency,
		Status:        string(d.Status),
		TransferID:    nullString(d.TransferID),
		FailureReason: nullString(d.FailureReason),
	}
}

type PgNotification struct {
	ID            uuid.UUID     `db:"id"             goqu:"skipinsert"`
	UserID        uuid.UUID     `db:"user_id"`
	ActorID       uuid.NullUUID `db:"actor_id"`
	Kind          string        `db:"kind"`
	EntryID       uuid.NullUUID `db:"entry_id"`
	SponsorshipID uuid.NullUUID `db:"sponsorship_id"`
	IsRead        bool          `db:"is_read"`
	CreatedAt     time.Time     `db:"created_at"     goqu:"skipinsert"`
}

func (p *PgNotification) ToDomain() *domain.Notification {
	n := &domain.Notification{
		ID:        domain.NotificationID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Kind:      domain.NotificationKind(p.Kind),
		IsRead:    p.IsRead,
		CreatedAt: p.CreatedAt,
	}
	if p.ActorID.Valid {
		id := domain.UserID(p.ActorID.UUID)
		n.ActorID = &id
	}
	if p.EntryID.Valid {
		id := domain.EntryID(p.EntryID.UUID)
		n.EntryID = &id
	}
	if p.SponsorshipID.Valid {
		id := domain.SponsorshipID(p.SponsorshipID.UUID)
		n.SponsorshipID = &id
	}

	return n
}

func (p *PgNotification) FromDomain(n domain.Notification) {
	*p = PgNotification{
		ID:     uuid.UUID(n.ID),
		UserID: uuid.UUID(n.UserID),
		Kind:   string(n.Kind),
		IsRead: n.IsRead,
	}
	if n.ActorID != nil {
		p.ActorID = uuid.NullUUID{UUID: uuid.UUID(*n.ActorID), Valid: true}
	}
	if n.EntryID != nil {
		p.EntryID = uuid.NullUUID{UUID: uuid.UUID(*n.EntryID), Valid: true}
	}
	if n.SponsorshipID != nil {
		p.SponsorshipID = uuid.NullUUID{UUID: uuid.UUID(*n.SponsorshipID), Valid: true}
	}
}

type PgMembership struct {
	ID                   uuid.UUID    `db:"id"                     goqu:"skipinsert"`
	UserID               uuid.UUID    `db:"user_id"`
	Plan                 string       `db:"plan"`
	Status               string       `db:"status"`
	StripeSubscriptionID string       `db:"stripe_subscription_id"`
	CurrentPeriodEnd     sql.NullTime `db:"current_period_end"`
	CreatedAt            time.Time    `db:"created_at"             goqu:"skipinsert"`
	UpdatedAt            sql.NullTime `db:"updated_at"             goqu:"skipinsert"`
}

func (p *PgMembership) ToDomain() *domain.Membership {
	return &domain.Membership{
		ID:                   domain.MembershipID(p.ID),
		UserID:               domain.UserID(p.UserID),
		Plan:                 domain.MembershipPlan(p.Plan),
		Status:               domain.MembershipStatus(p.Status),
		StripeSubscriptionID: p.StripeSubscriptionID,
		CurrentPeriodEnd:     p.CurrentPeriodEnd.Time,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt.Time,
	}
}

func (p *PgMembership) FromDomain(m domain.Membership) {
	*p = PgMembership{
		ID:                   uuid.UUID(m.ID),
		UserID:               uuid.UUID(m.UserID),
		Plan:                 string(m.Plan),
		Status:               string(m.Status),
		StripeSubscriptionID: m.StripeSubscriptionID,
		CurrentPeriodEnd:     nullTime(m.CurrentPeriodEnd),
	}
}

type PgMessage struct {
	ID          uuid.UUID `db:"id"           goqu:"skipinsert"`
	SenderID    uuid.UUID `db:"sender_id"`
	RecipientID uuid.UUID `db:"recipient_id"`
	Body        string    `db:"body"`
	IsRead      bool      `db:"is_read"`
	CreatedAt   time.Time `db:"created_at"   goqu:"skipinsert"`
}

func (p *PgMessage) ToDomain() *domain.Message {
	return &domain.Message{
		ID:          domain.MessageID(p.ID),
		SenderID:    domain.UserID(p.SenderID),
		RecipientID: domain.UserID(p.RecipientID),
		Body:        p.Body,
		IsRead:      p.IsRead,
		CreatedAt:   p.CreatedAt,
	}
}

func (p *PgMessage) FromDomain(m domain.Message) {
	*p = PgMessage{
		ID:          uuid.UUID(m.ID),
		SenderID:    uuid.UUID(m.SenderID),
		RecipientID: uuid.UUID(m.RecipientID),
		Body:        m.Body,
		IsRead:      m.IsRead,
	}
}

// toDomain converts a slice of rows with the row type's ToDomain.
func toDomain[R any, D any](rows []R, conv func(*R) *D) []D {
	out := make([]D, 0, len(rows))
	for i := range rows {
		out = append(out, *conv(&rows[i]))
	}

	return out
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
