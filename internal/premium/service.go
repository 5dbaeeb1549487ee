package premium

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/sparkd-app/sparkd/internal/httputil"
	"github.com/sparkd-app/sparkd/internal/user"
)

var (
	ErrNotFound         = httputil.NewError(http.StatusNotFound, "premium-package/not-found")
	ErrAlreadyPremium   = httputil.NewError(http.StatusBadRequest, "premium-package/user-already-premium")
	ErrAlreadyVerified  = httputil.NewError(http.StatusBadRequest, "premium-package/user-already-verified")
	ErrAlreadyPurchased = httputil.NewError(http.StatusBadRequest, "premium-package/already-purchased")
)

// Store is the catalog/purchase persistence surface.
type Store interface {
	List(ctx context.Context) ([]Package, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Package, error)
	CreatePurchase(ctx context.Context, userID, packageID uuid.UUID, isPremium, isVerified bool) (*Purchase, error)
}

// EntitlementStore loads the account projection the purchase guard checks.
type EntitlementStore interface {
	GetEntitlements(ctx context.Context, id uuid.UUID) (*user.Entitlements, error)
}

// Service implements the purchase engine and the catalog listing.
type Service struct {
	packages Store
	users    EntitlementStore
}

func NewService(packages Store, users EntitlementStore) *Service {
	return &Service{packages: packages, users: users}
}

// List returns the package catalog.
func (s *Service) List(ctx context.Context) ([]Package, error) {
	packages, err := s.packages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return packages, nil
}

// Purchase validates the package against the account's entitlement state, then
// atomically flips the matching flag and records the purchase. Each guard is
// code-specific: a premium package never blocks on isVerified and vice versa.
// The entitlement read happens before the write transaction (same accepted
// race as the swipe quota).
func (s *Service) Purchase(ctx context.Context, userID, packageID uuid.UUID) (*Purchase, error) {
	pkg, err := s.packages.GetByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, ErrPackageNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load package: %w", err)
	}

	entitlements, err := s.users.GetEntitlements(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, user.ErrCurrentUserNotFound
		}
		return nil, fmt.Errorf("failed to load entitlements: %w", err)
	}

	if entitlements.IsPremium && pkg.Code == CodePremium {
		return nil, ErrAlreadyPremium
	}
	if entitlements.IsVerified && pkg.Code == CodeVerification {
		return nil, ErrAlreadyVerified
	}

	purchase, err := s.packages.CreatePurchase(ctx, userID, pkg.ID,
		pkg.Code == CodePremium || entitlements.IsPremium,
		pkg.Code == CodeVerification || entitlements.IsVerified,
	)
	if err != nil {
		if errors.Is(err, ErrDuplicatePurchase) {
			return nil, ErrAlreadyPurchased
		}
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}

	return purchase, nil
}
