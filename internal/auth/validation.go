package auth

import (
	"net/mail"
	"net/url"
	"regexp"
	"time"

	"github.com/sparkd-app/sparkd/internal/user"
)

var dateOfBirthRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// SignupRequest is the raw signup body before validation.
type SignupRequest struct {
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	Name           string  `json:"name"`
	DateOfBirth    string  `json:"dateOfBirth"`
	Gender         string  `json:"gender"`
	Bio            *string `json:"bio,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

// LoginRequest is the raw login body before validation.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the signup body and returns the typed input plus one message
// per failing field.
func (r SignupRequest) Validate() (SignupInput, []string) {
	var details []string

	if _, err := mail.ParseAddress(r.Email); err != nil {
		details = append(details, "email must be a valid email address")
	}
	if len(r.Password) < 8 || len(r.Password) > 100 {
		details = append(details, "password must be between 8 and 100 characters")
	}
	if len(r.Name) < 2 || len(r.Name) > 255 {
		details = append(details, "name must be between 2 and 255 characters")
	}

	var dob time.Time
	if !dateOfBirthRegex.MatchString(r.DateOfBirth) {
		details = append(details, "dateOfBirth must be in YYYY-MM-DD format")
	} else {
		parsed, err := time.Parse("2006-01-02", r.DateOfBirth)
		if err != nil {
			details = append(details, "dateOfBirth must be a valid date")
		} else {
			dob = parsed
		}
	}

	gender := user.Gender(r.Gender)
	if !gender.Valid() {
		details = append(details, "gender must be one of MALE, FEMALE, OTHER")
	}

	if r.Bio != nil && len(*r.Bio) > 255 {
		details = append(details, "bio must be at most 255 characters")
	}
	if r.ProfilePicture != nil {
		if u, err := url.Parse(*r.ProfilePicture); err != nil || u.Scheme == "" || u.Host == "" {
			details = append(details, "profilePicture must be a valid URL")
		}
	}

	if len(details) > 0 {
		return SignupInput{}, details
	}

	return SignupInput{
		Email:          r.Email,
		Password:       r.Password,
		Name:           r.Name,
		DateOfBirth:    dob,
		Gender:         gender,
		Bio:            r.Bio,
		ProfilePicture: r.ProfilePicture,
	}, nil
}

// Validate checks the login body.
func (r LoginRequest) Validate() []string {
	var details []string

	if _, err := mail.ParseAddress(r.Email); err != nil {
		details = append(details, "email must be a valid email address")
	}
	if r.Password == "" {
		details = append(details, "password is required")
	}

	return details
}
