package domain_test

import (
	"journal/pkg/domain"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPoint_Validate(t *testing.T) {
	require.NoError(t, domain.Point{Lat: 27.98, Lon: 86.92}.Validate())
	require.NoError(t, domain.Point{Lat: -90, Lon: 180}.Validate())
	require.ErrorIs(t, domain.Point{Lat: 91}.Validate(), domain.ErrInvalidLatitude)
	require.ErrorIs(t, domain.Point{Lat: math.NaN()}.Validate(), domain.ErrInvalidLatitude)
	require.ErrorIs(t, domain.Point{Lon: -180.5}.Validate(), domain.ErrInvalidLongitude)
}

func TestBoundingBox(t *testing.T) {
	box := domain.BoundingBox{West: 160, South: -50, East: -170, North: -30}
	require.NoError(t, box.Validate())
	require.True(t, box.CrossesAntimeridian())
	require.True(t, box.Contains(domain.Point{Lat: -40, Lon: 175}))
	require.True(t, box.Contains(domain.Point{Lat: -40, Lon: -175}))
	require.False(t, box.Contains(domain.Point{Lat: -40, Lon: 0}))

	alps := domain.BoundingBox{West: 5, South: 44, East: 16, North: 48}
	require.True(t, alps.Contains(domain.Point{Lat: 45.83, Lon: 6.86}))
	require.False(t, alps.Contains(domain.Point{Lat: 50, Lon: 6.86}))

	require.ErrorIs(t, domain.BoundingBox{South: 10, North: 5}.Validate(), domain.ErrInvalidBounds)
}

func TestEntry_VisibleTo(t *testing.T) {
	author := domain.UserID(uuid.New())
	other := domain.UserID(uuid.New())

	published := domain.Entry{AuthorID: author, Visibility: domain.VisibilityPublic}
	require.True(t, published.VisibleTo(domain.UserID{}))
	require.True(t, published.VisibleTo(other))

	draft := domain.Entry{AuthorID: author, Visibility: domain.VisibilityPublic, IsDraft: true}
	require.False(t, draft.VisibleTo(other))
	require.False(t, draft.VisibleTo(domain.UserID{}))
	require.True(t, draft.VisibleTo(author))

	private := domain.Entry{AuthorID: author, Visibility: domain.VisibilityPrivate}
	require.False(t, private.VisibleTo(other))
	require.True(t, private.VisibleTo(author))
}

func TestUser_Capabilities(t *testing.T) {
	u := domain.User{Role: domain.RoleUser, PayoutsEnabled: true, StripeAccountID: "acct_1"}
	require.False(t, u.IsPro())
	require.False(t, u.CanReceiveSponsorships())

	u.Role = domain.RoleCreator
	require.True(t, u.CanReceiveSponsorships())

	u.PayoutsEnabled = false
	require.False(t, u.CanReceiveSponsorships())
}

func TestParseID(t *testing.T) {
	raw := uuid.New()

	id, err := domain.ParseID[domain.EntryID](raw.String())
	require.NoError(t, err)
	require.Equal(t, raw.String(), id.String())

	_, err = domain.ParseID[domain.UserID]("not-a-uuid")
	require.Error(t, err)
}

func TestBalance_Available(t *testing.T) {
	require.EqualValues(t, 700, domain.Balance{Earned: 1000, PaidOut: 300}.Available())
	require.EqualValues(t, 950, domain.Sponsorship{Amount: 1000, Fee: 50}.Net())
}

func TestIDText(t *testing.T) {
	id := domain.UserID(uuid.New())

	b, err := id.MarshalText()
	require.NoError(t, err)
	require.Equal(t, id.String(), string(b))

	var parsed domain.UserID
	require.NoError(t, parsed.UnmarshalText(b))
	require.Equal(t, id, parsed)
}
