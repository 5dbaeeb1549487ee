package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/sparkd-app/sparkd/internal/database"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// Repository handles account persistence.
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new account. The caller passes an already-hashed password.
func (r *Repository) Create(ctx context.Context, u *User) (*User, error) {
	dbUser := &database.User{
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		Name:           u.Name,
		DateOfBirth:    u.DateOfBirth,
		Gender:         string(u.Gender),
		Bio:            u.Bio,
		ProfilePicture: u.ProfilePicture,
	}

	_, err := r.db.NewInsert().
		Model(dbUser).
		Returning("*").
		Exec(ctx)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// GetByEmail retrieves a user by email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	dbUser := new(database.User)
	err := r.db.NewSelect().
		Model(dbUser).
		Where("email = ?", email).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// GetByID retrieves a user by ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	dbUser := new(database.User)
	err := r.db.NewSelect().
		Model(dbUser).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// GetEntitlements loads the purchase-guard projection (id, isPremium, isVerified).
func (r *Repository) GetEntitlements(ctx context.Context, id uuid.UUID) (*Entitlements, error) {
	dbUser := new(database.User)
	err := r.db.NewSelect().
		Model(dbUser).
		Column("id", "is_premium", "is_verified").
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user entitlements: %w", err)
	}

	return &Entitlements{ID: dbUser.ID, IsPremium: dbUser.IsPremium, IsVerified: dbUser.IsVerified}, nil
}

// FindCandidate selects one account other than excludeID and not in
// excludeTargets. Selection among eligible rows is storage order, no ranking.
func (r *Repository) FindCandidate(ctx context.Context, excludeID uuid.UUID, excludeTargets []uuid.UUID) (*Candidate, error) {
	dbUser := new(database.User)
	q := r.db.NewSelect().
		Model(dbUser).
		Column("id", "name", "bio", "profile_picture", "gender", "date_of_birth", "email").
		Where("id != ?", excludeID)

	if len(excludeTargets) > 0 {
		q = q.Where("id NOT IN (?)", bun.In(excludeTargets))
	}

	err := q.Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}

	return &Candidate{
		ID:             dbUser.ID,
		Name:           dbUser.Name,
		Bio:            dbUser.Bio,
		ProfilePicture: dbUser.ProfilePicture,
		Gender:         Gender(dbUser.Gender),
		DateOfBirth:    dbUser.DateOfBirth,
		Email:          dbUser.Email,
	}, nil
}

// ResetDailySwipes zeroes daily_swipes_count for all accounts. Ran by the
// daily scheduler outside any request.
func (r *Repository) ResetDailySwipes(ctx context.Context) (int64, error) {
	result, err := r.db.NewUpdate().
		Model((*database.User)(nil)).
		Set("daily_swipes_count = ?", 0).
		Set("updated_at = NOW()").
		Where("TRUE").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reset daily swipe counts: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

// mapDBUserToModel converts database model to domain model
func mapDBUserToModel(dbu *database.User) *User {
	return &User{
		ID:               dbu.ID,
		Email:            dbu.Email,
		PasswordHash:     dbu.PasswordHash,
		Name:             dbu.Name,
		DateOfBirth:      dbu.DateOfBirth,
		Gender:           Gender(dbu.Gender),
		Bio:              dbu.Bio,
		ProfilePicture:   dbu.ProfilePicture,
		IsVerified:       dbu.IsVerified,
		IsPremium:        dbu.IsPremium,
		DailySwipesCount: dbu.DailySwipesCount,
		CreatedAt:        dbu.CreatedAt,
		UpdatedAt:        dbu.UpdatedAt,
	}
}
