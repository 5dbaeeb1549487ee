package premium

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
	ErrPackageNotFound   = errors.New("premium package not found")
	ErrDuplicatePurchase = errors.New("package already purchased")
)

// Repository handles catalog reads and purchase writes.
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// List returns the catalog projection of every package.
func (r *Repository) List(ctx context.Context) ([]Package, error) {
	var dbPackages []database.PremiumPackage
	err := r.db.NewSelect().
		Model(&dbPackages).
		Column("id", "name", "price", "description", "code").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list premium packages: %w", err)
	}

	packages := make([]Package, 0, len(dbPackages))
	for i := range dbPackages {
		packages = append(packages, mapDBPackageToModel(&dbPackages[i]))
	}
	return packages, nil
}

// GetByID retrieves a package by id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Package, error) {
	dbPackage := new(database.PremiumPackage)
	err := r.db.NewSelect().
		Model(dbPackage).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to get premium package: %w", err)
	}

	pkg := mapDBPackageToModel(dbPackage)
	return &pkg, nil
}

// CreatePurchase applies the purchase write pair in one transaction: the
// account's entitlement flags are set to the values the caller computed and
// the purchase row is inserted. A unique-constraint violation on
// (user_id, premium_package_id) becomes ErrDuplicatePurchase; every other
// persistence error propagates unchanged.
func (r *Repository) CreatePurchase(ctx context.Context, userID, packageID uuid.UUID, isPremium, isVerified bool) (*Purchase, error) {
	dbPurchase := &database.Purchase{UserID: userID, PremiumPackageID: packageID}

	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().
			Model((*database.User)(nil)).
			Set("is_premium = ?", isPremium).
			Set("is_verified = ?", isVerified).
			Set("updated_at = NOW()").
			Where("id = ?", userID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update entitlements: %w", err)
		}

		_, err = tx.NewInsert().
			Model(dbPurchase).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert purchase: %w", err)
		}

		return nil
	})
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return nil, ErrDuplicatePurchase
		}
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}

	return &Purchase{
		ID:               dbPurchase.ID,
		UserID:           dbPurchase.UserID,
		PremiumPackageID: dbPurchase.PremiumPackageID,
		CreatedAt:        dbPurchase.CreatedAt,
		UpdatedAt:        dbPurchase.UpdatedAt,
	}, nil
}

func mapDBPackageToModel(dbp *database.PremiumPackage) Package {
	return Package{
		ID:          dbp.ID,
		Name:        dbp.Name,
		Price:       dbp.Price,
		Description: dbp.Description,
		Code:        dbp.Code,
	}
}
