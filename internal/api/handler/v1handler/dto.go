package v1handler

import (
	"journal/pkg/domain"
	"journal/pkg/geocoder"
	"journal/pkg/payments"
	"time"
)

func optTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}

type pointDTO struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

func (p *pointDTO) domain() *domain.Point {
	if p == nil {
		return nil
	}

	return &domain.Point{Lat: p.Lat, Lon: p.Lon}
}

func newPoint(p *domain.Point) *pointDTO {
	if p == nil {
		return nil
	}

	return &pointDTO{Lat: p.Lat, Lon: p.Lon}
}

type userDTO struct {
	ID        domain.UserID `json:"id"`
	Username  string        `json:"username"`
	Role      domain.Role   `json:"role"`
	Name      string        `json:"name,omitempty"`
	Bio       string        `json:"bio,omitempty"`
	Location  string        `json:"location,omitempty"`
	AvatarURL string        `json:"avatarUrl,omitempty"`
	Website   string        `json:"website,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

func newUser(u domain.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		Name:      u.Name,
		Bio:       u.Bio,
		Location:  u.Location,
		AvatarURL: u.AvatarURL,
		Website:   u.Website,
		CreatedAt: u.CreatedAt,
	}
}

// meDTO is the caller's own account, including private fields.
type meDTO struct {
	userDTO

	Email                  string `json:"email"`
	PayoutsEnabled         bool   `json:"payoutsEnabled"`
	CanReceiveSponsorships bool   `json:"canReceiveSponsorships"`
}

func newMe(u domain.User) meDTO {
	return meDTO{
		userDTO:                newUser(u),
		Email:                  u.Email,
		PayoutsEnabled:         u.PayoutsEnabled,
		CanReceiveSponsorships: u.CanReceiveSponsorships(),
	}
}

type profileDTO struct {
	User        userDTO `json:"user"`
	Followers   int64   `json:"followers"`
	Following   int64   `json:"following"`
	Entries     int64   `json:"entries"`
	Expeditions int64   `json:"expeditions"`
	IsFollowing bool    `json:"isFollowing"`
}

func newProfile(p domain.Profile) profileDTO {
	return profileDTO{
		User:        newUser(p.User),
		Followers:   p.Followers,
		Following:   p.Following,
		Entries:     p.Entries,
		Expeditions: p.Expeditions,
		IsFollowing: p.IsFollowing,
	}
}

type sessionDTO struct {
	User      meDTO     `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type entryDTO struct {
	ID           domain.EntryID       `json:"id"`
	AuthorID     domain.UserID        `json:"authorId"`
	ExpeditionID *domain.ExpeditionID `json:"expeditionId,omitempty"`
	Title        string               `json:"title"`
	Content      string               `json:"content"`
	Place        string               `json:"place,omitempty"`
	Location     *pointDTO            `json:"location,omitempty"`
	Date         time.Time            `json:"date"`
	Visibility   domain.Visibility    `json:"visibility"`
	IsDraft      bool                 `json:"isDraft"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

func newEntry(e domain.Entry) entryDTO {
	return entryDTO{
		ID:           e.ID,
		AuthorID:     e.AuthorID,
		ExpeditionID: e.ExpeditionID,
		Title:        e.Title,
		Content:      e.Content,
		Place:        e.Place,
		Location:     newPoint(e.Location),
		Date:         e.Date,
		Visibility:   e.Visibility,
		IsDraft:      e.IsDraft,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

type placeDTO struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

func newPlace(p geocoder.Place) placeDTO {
	return placeDTO{Name: p.Name, Lat: p.Point.Lat, Lon: p.Point.Lon}
}

type expeditionDTO struct {
	ID          domain.ExpeditionID     `json:"id"`
	AuthorID    domain.UserID           `json:"authorId"`
	Title       string                  `json:"title"`
	Description string                  `json:"description,omitempty"`
	Status      domain.ExpeditionStatus `json:"status"`
	Visibility  domain.Visibility       `json:"visibility"`
	StartDate   *time.Time              `json:"startDate,omitempty"`
	EndDate     *time.Time              `json:"endDate,omitempty"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

func newExpedition(e domain.Expedition) expeditionDTO {
	return expeditionDTO{
		ID:          e.ID,
		AuthorID:    e.AuthorID,
		Title:       e.Title,
		Description: e.Description,
		Status:      e.Status,
		Visibility:  e.Visibility,
		StartDate:   optTime(e.StartDate),
		EndDate:     optTime(e.EndDate),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

type waypointDTO struct {
	EntryID domain.EntryID `json:"entryId"`
	Title   string         `json:"title"`
	Place   string         `json:"place,omitempty"`
	Lat     float64        `json:"lat"`
	Lon     float64        `json:"lon"`
	Date    time.Time      `json:"date"`
}

type expeditionDetailsDTO struct {
	expeditionDTO

	Entries []entryDTO    `json:"entries"`
	Path    []waypointDTO `json:"path"`
}

func newExpeditionDetails(d domain.ExpeditionDetails) expeditionDetailsDTO {
	out := expeditionDetailsDTO{
		expeditionDTO: newExpedition(d.Expedition),
		Entries:       make([]entryDTO, 0, len(d.Entries)),
		Path:          make([]waypointDTO, 0, len(d.Path)),
	}
	for _, e := range d.Entries {
		out.Entries = append(out.Entries, newEntry(e))
	}
	for _, w := range d.Path {
		out.Path = append(out.Path, waypointDTO{
			EntryID: w.EntryID,
			Title:   w.Title,
			Place:   w.Place,
			Lat:     w.Point.Lat,
			Lon:     w.Point.Lon,
			Date:    w.Date,
		})
	}

	return out
}

type tierDTO struct {
	ID          domain.TierID       `json:"id"`
	ExplorerID  domain.UserID       `json:"explorerId"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Price       int64               `json:"price"`
	Interval    domain.TierInterval `json:"interval"`
	Active      bool                `json:"active"`
}

func newTier(t domain.SponsorshipTier) tierDTO {
	return tierDTO{
		ID:          t.ID,
		ExplorerID:  t.ExplorerID,
		Title:       t.Title,
		Description: t.Description,
		Price:       t.Price,
		Interval:    t.Interval,
		Active:      t.Active,
	}
}

type sponsorshipDTO struct {
	ID               domain.SponsorshipID     `json:"id"`
	SponsorID        domain.UserID            `json:"sponsorId"`
	ExplorerID       domain.UserID            `json:"explorerId"`
	TierID           *domain.TierID           `json:"tierId,omitempty"`
	Amount           int64                    `json:"amount"`
	Fee              int64                    `json:"fee"`
	Currency         string                   `json:"currency"`
	Type             domain.SponsorshipType   `json:"type"`
	Status           domain.SponsorshipStatus `json:"status"`
	Message          string                   `json:"message,omitempty"`
	PaidCount        int                      `json:"paidCount"`
	CurrentPeriodEnd *time.Time               `json:"currentPeriodEnd,omitempty"`
	CreatedAt        time.Time                `json:"createdAt"`
}

func newSponsorship(s domain.Sponsorship) sponsorshipDTO {
	return sponsorshipDTO{
		ID:               s.ID,
		SponsorID:        s.SponsorID,
		ExplorerID:       s.ExplorerID,
		TierID:           s.TierID,
		Amount:           s.Amount,
		Fee:              s.Fee,
		Currency:         s.Currency,
		Type:             s.Type,
		Status:           s.Status,
		Message:          s.Message,
		PaidCount:        s.PaidCount,
		CurrentPeriodEnd: optTime(s.CurrentPeriodEnd),
		CreatedAt:        s.CreatedAt,
	}
}

type checkoutDTO struct {
	Sponsorship  sponsorshipDTO `json:"sponsorship"`
	ClientSecret string         `json:"clientSecret"`
}

type payoutDTO struct {
	ID            domain.PayoutID     `json:"id"`
	Amount        int64               `json:"amount"`
	Currency      string              `json:"currency"`
	Status        domain.PayoutStatus `json:"status"`
	FailureReason string              `json:"failureReason,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}

func newPayout(p domain.Payout) payoutDTO {
	return payoutDTO{
		ID:            p.ID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        p.Status,
		FailureReason: p.FailureReason,
		CreatedAt:     p.CreatedAt,
	}
}

type balanceDTO struct {
	Currency  string `json:"currency"`
	Earned    int64  `json:"earned"`
	PaidOut   int64  `json:"paidOut"`
	Available int64  `json:"available"`
}

type accountLinkDTO struct {
	URL       string     `json:"url"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func newAccountLink(l payments.AccountLink) accountLinkDTO {
	return accountLinkDTO{URL: l.URL, ExpiresAt: optTime(l.ExpiresAt)}
}

type membershipDTO struct {
	ID               domain.MembershipID     `json:"id"`
	Plan             domain.MembershipPlan   `json:"plan"`
	Status           domain.MembershipStatus `json:"status"`
	CurrentPeriodEnd *time.Time              `json:"currentPeriodEnd,omitempty"`
	CreatedAt        time.Time               `json:"createdAt"`
}

func newMembership(m domain.Membership) membershipDTO {
	return membershipDTO{
		ID:               m.ID,
		Plan:             m.Plan,
		Status:           m.Status,
		CurrentPeriodEnd: optTime(m.CurrentPeriodEnd),
		CreatedAt:        m.CreatedAt,
	}
}

type membershipCheckoutDTO struct {
	Membership   membershipDTO `json:"membership"`
	ClientSecret string        `json:"clientSecret"`
}

type notificationDTO struct {
	ID            domain.NotificationID   `json:"id"`
	ActorID       *domain.UserID          `json:"actorId,omitempty"`
	Kind          domain.NotificationKind `json:"kind"`
	EntryID       *domain.EntryID         `json:"entryId,omitempty"`
	SponsorshipID *domain.SponsorshipID   `json:"sponsorshipId,omitempty"`
	IsRead        bool                    `json:"isRead"`
	CreatedAt     time.Time               `json:"createdAt"`
}

func newNotification(n domain.Notification) notificationDTO {
	return notificationDTO{
		ID:            n.ID,
		ActorID:       n.ActorID,
		Kind:          n.Kind,
		EntryID:       n.EntryID,
		SponsorshipID: n.SponsorshipID,
		IsRead:        n.IsRead,
		CreatedAt:     n.CreatedAt,
	}
}

type messageDTO struct {
	ID          domain.MessageID `json:"id"`
	SenderID    domain.UserID    `json:"senderId"`
	RecipientID domain.UserID    `json:"recipientId"`
	Body        string           `json:"body"`
	IsRead      bool             `json:"isRead"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func newMessage(m domain.Message) messageDTO {
	return messageDTO{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Body:        m.Body,
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt,
	}
}

type countDTO struct {
	Count int64 `json:"count"`
}
