package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sparkd-app/sparkd/internal/httputil"
	"github.com/sparkd-app/sparkd/internal/logging"
	"github.com/sparkd-app/sparkd/internal/user"
)

// bcrypt work factor, matching the hashing convention of the stored accounts.
const bcryptCost = 12

var (
	ErrInvalidCredentials = httputil.NewError(http.StatusUnauthorized, "auth/invalid-credentials", "Email or password is incorrect")
	ErrEmailAlreadyExists = httputil.NewError(http.StatusConflict, "auth/email-already-exists", "Email already exists")
	ErrUserNotFound       = httputil.NewError(http.StatusNotFound, "auth/user-not-found", "User not found")
)

// UserStore is the account persistence surface the auth service needs.
type UserStore interface {
	Create(ctx context.Context, u *user.User) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// Service handles signup, login and the self lookup.
type Service struct {
	users               UserStore
	tokens              TokenService
	logger              *logging.Logger
	accessTokenDuration time.Duration
}

func NewService(users UserStore, tokens TokenService, logger *logging.Logger, accessTokenDuration time.Duration) *Service {
	return &Service{
		users:               users,
		tokens:              tokens,
		logger:              logger,
		accessTokenDuration: accessTokenDuration,
	}
}

// SignupInput carries the validated signup fields.
type SignupInput struct {
	Email          string
	Password       string
	Name           string
	DateOfBirth    time.Time
	Gender         user.Gender
	Bio            *string
	ProfilePicture *string
}

// PublicIdentity is the identity subset returned on login.
type PublicIdentity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// LoginResult pairs the identity with a fresh access token.
type LoginResult struct {
	User        PublicIdentity `json:"user"`
	AccessToken string         `json:"accessToken"`
}

// Signup persists a new account with the password replaced by its bcrypt hash
// and returns the created account without the credential.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*user.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &user.User{
		Email:          input.Email,
		PasswordHash:   string(hash),
		Name:           input.Name,
		DateOfBirth:    input.DateOfBirth,
		Gender:         input.Gender,
		Bio:            input.Bio,
		ProfilePicture: input.ProfilePicture,
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

// Login verifies credentials and issues an access token. A missing account and
// a wrong password fail identically so emails cannot be enumerated.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(existing.ID, existing.Email, s.accessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}

	return &LoginResult{
		User:        PublicIdentity{ID: existing.ID, Email: existing.Email},
		AccessToken: token,
	}, nil
}

// Me returns the restricted self projection for an already-authenticated id.
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (*user.Profile, error) {
	existing, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return existing.Profile(), nil
}
