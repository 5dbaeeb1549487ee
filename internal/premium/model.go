package premium

import (
	"time"

	"github.com/google/uuid"
)

// Package codes drive the entitlement effect of a purchase.
const (
	CodePremium      = "premium"
	CodeVerification = "verification"
)

// Package is a purchasable catalog entry. Read-only through the API.
type Package struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Code        string    `json:"code"`
}

// Purchase links an account to a package.
type Purchase struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	PremiumPackageID uuid.UUID `json:"premiumPackageId"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
