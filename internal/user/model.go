package user

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sparkd-app/sparkd/internal/httputil"
)

// Gender is the fixed set of profile gender categories.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// ErrCurrentUserNotFound is raised when the account id carried by a verified
// token no longer resolves. Shared by the matching and purchase engines.
var ErrCurrentUserNotFound = httputil.NewError(http.StatusNotFound, "user/current-user-not-found", "Current user not found")

// User is a registered account. The password hash never leaves the service layer.
type User struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	Name             string    `json:"name"`
	DateOfBirth      time.Time `json:"dateOfBirth"`
	Gender           Gender    `json:"gender"`
	Bio              *string   `json:"bio"`
	ProfilePicture   *string   `json:"profilePicture"`
	IsVerified       bool      `json:"isVerified"`
	IsPremium        bool      `json:"isPremium"`
	DailySwipesCount int       `json:"dailySwipesCount"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Profile is the restricted self projection served by /auth/me.
type Profile struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	ProfilePicture   *string   `json:"profilePicture"`
	Bio              *string   `json:"bio"`
	IsVerified       bool      `json:"isVerified"`
	IsPremium        bool      `json:"isPremium"`
	DateOfBirth      time.Time `json:"dateOfBirth"`
	DailySwipesCount int       `json:"dailySwipesCount"`
	Gender           Gender    `json:"gender"`
}

// Candidate is the public projection of an account offered in the swipe feed.
type Candidate struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Bio            *string   `json:"bio"`
	ProfilePicture *string   `json:"profilePicture"`
	Gender         Gender    `json:"gender"`
	DateOfBirth    time.Time `json:"dateOfBirth"`
	Email          string    `json:"email"`
}

// SwipedProfile is the target projection embedded in swipe statistics rows.
type SwipedProfile struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Gender         Gender    `json:"gender"`
	Bio            *string   `json:"bio"`
	IsVerified     bool      `json:"isVerified"`
	DateOfBirth    time.Time `json:"dateOfBirth"`
	ProfilePicture *string   `json:"profilePicture"`
}

// Entitlements is the projection the purchase engine checks before flipping flags.
type Entitlements struct {
	ID         uuid.UUID `json:"id"`
	IsPremium  bool      `json:"isPremium"`
	IsVerified bool      `json:"isVerified"`
}

// Profile returns the self projection of a user.
func (u *User) Profile() *Profile {
	return &Profile{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		ProfilePicture:   u.ProfilePicture,
		Bio:              u.Bio,
		IsVerified:       u.IsVerified,
		IsPremium:        u.IsPremium,
		DateOfBirth:      u.DateOfBirth,
		DailySwipesCount: u.DailySwipesCount,
		Gender:           u.Gender,
	}
}
