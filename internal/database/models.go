package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the bun model for the users table.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID               uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Email            string    `bun:"email,notnull,unique"`
	PasswordHash     string    `bun:"password_hash,notnull"`
	Name             string    `bun:"name,notnull"`
	DateOfBirth      time.Time `bun:"date_of_birth,notnull"`
	Gender           string    `bun:"gender,notnull"`
	Bio              *string   `bun:"bio"`
	ProfilePicture   *string   `bun:"profile_picture"`
	IsVerified       bool      `bun:"is_verified,notnull,default:false"`
	IsPremium        bool      `bun:"is_premium,notnull,default:false"`
	DailySwipesCount int       `bun:"daily_swipes_count,notnull,default:0"`
	CreatedAt        time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt        time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// Swipe is the bun model for the swipes table. user_id is the actor,
// swiped_id the judged profile.
type Swipe struct {
	bun.BaseModel `bun:"table:swipes,alias:s"`

	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	UserID    uuid.UUID `bun:"user_id,notnull,type:uuid"`
	SwipedID  uuid.UUID `bun:"swiped_id,notnull,type:uuid"`
	Action    string    `bun:"action,notnull,default:'PASS'"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`

	Swiped *User `bun:"rel:belongs-to,join:swiped_id=id"`
}

// PremiumPackage is the bun model for the premium_packages catalog table.
type PremiumPackage struct {
	bun.BaseModel `bun:"table:premium_packages,alias:pp"`

	ID          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Code        string    `bun:"code,notnull"`
	Name        string    `bun:"name,notnull"`
	Price       float64   `bun:"price,notnull"`
	Description string    `bun:"description,notnull"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// Purchase is the bun model for the purchases table. (user_id,
// premium_package_id) carries a unique constraint; violations surface as
// conflict errors at the service layer.
type Purchase struct {
	bun.BaseModel `bun:"table:purchases,alias:p"`

	ID               uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	UserID           uuid.UUID `bun:"user_id,notnull,type:uuid"`
	PremiumPackageID uuid.UUID `bun:"premium_package_id,notnull,type:uuid"`
	CreatedAt        time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt        time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
