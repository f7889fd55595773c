// Package events defines the background side effects of user actions as
// River job arguments. Jobs are enqueued through storage.JobStorage so a job
// inserted inside a transaction only runs once that transaction commits.
package events

import (
	"journal/pkg/domain"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

const (
	KindEmail              = "email"
	KindNotification       = "notification"
	KindEntryFanout        = "entry_fanout"
	KindPayout             = "payout"
	KindExpireMemberships  = "expire_memberships"
	defaultMaxAttempts     = 5
	fanoutUniquenessPeriod = time.Hour
)

// activeStates are the job states in which a unique job blocks duplicates.
//
//nolint: gochecknoglobals
var activeStates = []rivertype.JobState{
	rivertype.JobStateAvailable,
	rivertype.JobStateCompleted,
	rivertype.JobStatePending,
	rivertype.JobStateRunning,
	rivertype.JobStateRetryable,
	rivertype.JobStateScheduled,
}

// EmailJob sends one templated email.
type EmailJob struct {
	To       string            `json:"to"`
	Template string            `json:"template"`
	Data     map[string]string `json:"data,omitempty"`
}

func (EmailJob) Kind() string { return KindEmail }

// NotificationJob creates one in-app notification.
type NotificationJob struct {
	UserID        domain.UserID           `json:"userId"`
	ActorID       *domain.UserID          `json:"actorId,omitempty"`
	Type          domain.NotificationKind `json:"kind"`
	EntryID       *domain.EntryID         `json:"entryId,omitempty"`
	SponsorshipID *domain.SponsorshipID   `json:"sponsorshipId,omitempty"`
}

func (NotificationJob) Kind() string { return KindNotification }

// EntryFanoutJob notifies every follower of the author that an entry was
// published. At most one job per entry runs within an hour so republishing
// does not notify twice.
type EntryFanoutJob struct {
	EntryID domain.EntryID `json:"entryId" river:"unique"`
}

func (EntryFanoutJob) Kind() string { return KindEntryFanout }

func (EntryFanoutJob) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: fanoutUniquenessPeriod,
			ByState:  activeStates,
		},
	}
}

// PayoutJob transfers a pending payout to the explorer's connected account.
// There is only ever one job per payout.
type PayoutJob struct {
	PayoutID domain.PayoutID `json:"payoutId" river:"unique"`
}

func (PayoutJob) Kind() string { return KindPayout }

func (PayoutJob) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByState: activeStates,
		},
	}
}

// ExpireMembershipsJob cancels memberships left incomplete, run periodically.
type ExpireMembershipsJob struct{}

func (ExpireMembershipsJob) Kind() string { return KindExpireMemberships }
