package swipe

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/sparkd-app/sparkd/internal/database"
	"github.com/sparkd-app/sparkd/internal/user"
)

var ErrNotFound = errors.New("swipe not found")

// Repository handles swipe persistence.
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// ListTargetIDsSince returns the ids the actor has swiped on since the given
// instant, used to exclude same-day repeats from candidate selection.
func (r *Repository) ListTargetIDsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.NewSelect().
		Model((*database.Swipe)(nil)).
		Column("swiped_id").
		Where("user_id = ?", userID).
		Where("created_at >= ?", since).
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list swiped ids: %w", err)
	}
	return ids, nil
}

// Record applies the matching engine's write pair in one transaction: the
// actor's daily count is set to newCount (read-value+1, computed by the
// caller) and the swipe row is inserted with the schema-default action.
func (r *Repository) Record(ctx context.Context, userID, targetID uuid.UUID, newCount int) error {
	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().
			Model((*database.User)(nil)).
			Set("daily_swipes_count = ?", newCount).
			Set("updated_at = NOW()").
			Where("id = ?", userID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update daily swipe count: %w", err)
		}

		_, err = tx.NewInsert().
			Model(&database.Swipe{UserID: userID, SwipedID: targetID, Action: string(ActionPass)}).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert swipe: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record swipe: %w", err)
	}
	return nil
}

// GetOwnedSince finds a swipe by id that belongs to userID and was created at
// or after since. Wrong id, wrong owner and too-old all collapse to ErrNotFound.
func (r *Repository) GetOwnedSince(ctx context.Context, id, userID uuid.UUID, since time.Time) (*Swipe, error) {
	dbSwipe := new(database.Swipe)
	err := r.db.NewSelect().
		Model(dbSwipe).
		Where("s.id = ?", id).
		Where("s.user_id = ?", userID).
		Where("s.created_at >= ?", since).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get swipe: %w", err)
	}
	return mapDBSwipeToModel(dbSwipe), nil
}

// UpdateAction overwrites only the action column and returns the updated row.
func (r *Repository) UpdateAction(ctx context.Context, id uuid.UUID, action Action) (*Swipe, error) {
	dbSwipe := new(database.Swipe)
	result, err := r.db.NewUpdate().
		Model(dbSwipe).
		Set("action = ?", string(action)).
		Set("updated_at = NOW()").
		Where("id = ?", id).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update swipe action: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	return mapDBSwipeToModel(dbSwipe), nil
}

// ListWithTargets loads the actor's full swipe history with each row's target
// projection joined in.
func (r *Repository) ListWithTargets(ctx context.Context, userID uuid.UUID) ([]HistoryEntry, error) {
	var dbSwipes []database.Swipe
	err := r.db.NewSelect().
		Model(&dbSwipes).
		Relation("Swiped").
		Where("s.user_id = ?", userID).
		Order("s.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list swipes: %w", err)
	}

	entries := make([]HistoryEntry, 0, len(dbSwipes))
	for i := range dbSwipes {
		s := &dbSwipes[i]
		entry := HistoryEntry{
			ID:        s.ID,
			Action:    Action(s.Action),
			CreatedAt: s.CreatedAt,
		}
		if s.Swiped != nil {
			entry.Swiped = &user.SwipedProfile{
				ID:             s.Swiped.ID,
				Name:           s.Swiped.Name,
				Email:          s.Swiped.Email,
				Gender:         user.Gender(s.Swiped.Gender),
				Bio:            s.Swiped.Bio,
				IsVerified:     s.Swiped.IsVerified,
				DateOfBirth:    s.Swiped.DateOfBirth,
				ProfilePicture: s.Swiped.ProfilePicture,
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func mapDBSwipeToModel(dbs *database.Swipe) *Swipe {
	return &Swipe{
		ID:        dbs.ID,
		UserID:    dbs.UserID,
		SwipedID:  dbs.SwipedID,
		Action:    Action(dbs.Action),
		CreatedAt: dbs.CreatedAt,
		UpdatedAt: dbs.UpdatedAt,
	}
}
