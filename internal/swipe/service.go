package swipe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sparkd-app/sparkd/internal/httputil"
	"github.com/sparkd-app/sparkd/internal/user"
)

// Non-premium accounts get this many swipes per local calendar day.
const dailySwipeLimit = 10

var (
	ErrDailyLimitReached = httputil.NewError(http.StatusForbidden, "swipe/daily-swipe-limit-reached")
	ErrProfileNotFound   = httputil.NewError(http.StatusNotFound, "swipe/profile-not-found")
	ErrSwipeNotFound     = httputil.NewError(http.StatusNotFound, "swipe/not-found")
)

// UserStore is the account surface the matching engine reads from.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindCandidate(ctx context.Context, excludeID uuid.UUID, excludeTargets []uuid.UUID) (*user.Candidate, error)
}

// Store is the swipe persistence surface.
type Store interface {
	ListTargetIDsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]uuid.UUID, error)
	Record(ctx context.Context, userID, targetID uuid.UUID, newCount int) error
	GetOwnedSince(ctx context.Context, id, userID uuid.UUID, since time.Time) (*Swipe, error)
	UpdateAction(ctx context.Context, id uuid.UUID, action Action) (*Swipe, error)
	ListWithTargets(ctx context.Context, userID uuid.UUID) ([]HistoryEntry, error)
}

// Service implements the matching engine, the same-day action mutator and the
// statistics aggregator.
type Service struct {
	users  UserStore
	swipes Store
	now    func() time.Time
}

func NewService(users UserStore, swipes Store) *Service {
	return &Service{users: users, swipes: swipes, now: time.Now}
}

// startOfDay returns local midnight for t. Kept as a pure function of its
// argument so the windowing stays testable and timezone-deterministic.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// NextProfile selects the next candidate for userID, enforcing the daily quota
// and the same-day exclusion, and records the swipe atomically with the quota
// increment. The quota check reads outside the write transaction; concurrent
// calls can both pass it.
func (s *Service) NextProfile(ctx context.Context, userID uuid.UUID) (*user.Candidate, error) {
	current, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, user.ErrCurrentUserNotFound
		}
		return nil, fmt.Errorf("failed to load current user: %w", err)
	}

	if current.DailySwipesCount >= dailySwipeLimit && !current.IsPremium {
		return nil, ErrDailyLimitReached
	}

	since := startOfDay(s.now())
	swipedIDs, err := s.swipes.ListTargetIDsSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's swipes: %w", err)
	}

	candidate, err := s.users.FindCandidate(ctx, userID, swipedIDs)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}

	if err := s.swipes.Record(ctx, userID, candidate.ID, current.DailySwipesCount+1); err != nil {
		return nil, fmt.Errorf("failed to record swipe: %w", err)
	}

	return candidate, nil
}

// UpdateAction corrects the action of a swipe the caller made today. Wrong id,
// wrong owner and not-today all fail identically.
func (s *Service) UpdateAction(ctx context.Context, userID, swipeID uuid.UUID, action Action) (*Swipe, error) {
	since := startOfDay(s.now())

	if _, err := s.swipes.GetOwnedSince(ctx, swipeID, userID, since); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrSwipeNotFound
		}
		return nil, fmt.Errorf("failed to find swipe: %w", err)
	}

	updated, err := s.swipes.UpdateAction(ctx, swipeID, action)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrSwipeNotFound
		}
		return nil, fmt.Errorf("failed to update swipe action: %w", err)
	}

	return updated, nil
}

// Stats derives the aggregate counts from the caller's full swipe history in
// one pass over already-fetched rows.
func (s *Service) Stats(ctx context.Context, userID uuid.UUID) (*Stats, error) {
	entries, err := s.swipes.ListWithTargets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load swipe history: %w", err)
	}

	since := startOfDay(s.now())
	stats := &Stats{
		TotalSwipes: len(entries),
		SwipedToday: []HistoryEntry{},
	}

	for _, entry := range entries {
		switch entry.Action {
		case ActionLike:
			stats.TotalLikes++
		case ActionPass:
			stats.TotalPasses++
		}
		if !entry.CreatedAt.Before(since) {
			stats.SwipedToday = append(stats.SwipedToday, entry)
		}
	}
	stats.TotalSwipesToday = len(stats.SwipedToday)

	return stats, nil
}
