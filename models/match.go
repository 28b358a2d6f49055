package models

import (
	"sort"
	"time"
)

// Match statuses.
const (
	MatchPending = "pending"
	MatchActive  = "active"
)

// ScheduleMatch is the mutual opt-in that allows two friends to query overlaps.
// Users is always sorted so that a pair has exactly one key.
type ScheduleMatch struct {
	MatchID     string    `bson:"match_id" json:"match_id"`
	Users       []string  `bson:"users" json:"users"`
	Status      string    `bson:"status" json:"status"`
	RequestedBy string    `bson:"requested_by" json:"requested_by"`
	CreatedAt   time.Time `bson:"created_at" json:"-"`
}

// MatchPair returns the canonical sorted pair for two usernames.
func MatchPair(a, b string) []string {
	pair := []string{a, b}
	sort.Strings(pair)
	return pair
}
