package swipe

import (
	"time"

	"github.com/google/uuid"

	"github.com/sparkd-app/sparkd/internal/user"
)

// Action is a recorded judgment on a profile.
type Action string

const (
	ActionLike Action = "LIKE"
	ActionPass Action = "PASS"
)

func (a Action) Valid() bool {
	return a == ActionLike || a == ActionPass
}

// Swipe is a directed judgment by one account (UserID) on another (SwipedID).
type Swipe struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	SwipedID  uuid.UUID `json:"swipedId"`
	Action    Action    `json:"action"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HistoryEntry is a swipe row enriched with the target's public projection,
// as served inside the statistics payload.
type HistoryEntry struct {
	ID        uuid.UUID           `json:"id"`
	Action    Action              `json:"action"`
	CreatedAt time.Time           `json:"createdAt"`
	Swiped    *user.SwipedProfile `json:"swiped"`
}

// Stats is the aggregate view over an account's full swipe history.
type Stats struct {
	TotalSwipes      int            `json:"totalSwipes"`
	TotalLikes       int            `json:"totalLikes"`
	TotalPasses      int            `json:"totalPasses"`
	TotalSwipesToday int            `json:"totalSwipesToday"`
	SwipedToday      []HistoryEntry `json:"swipedToday"`
}
