// Package domain contains the entities of the journal platform: explorers and
// their journal entries and expeditions, the sponsorships that fund them,
// payouts, notifications, memberships and messages. The types are free of
// infrastructure concerns so they can be shared by storage, services and the
// API layer.
package domain
