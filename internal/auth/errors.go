package auth

import (
	"errors"
	"strings"
)

// Sentinel errors returned by the Service.
var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotSignedIn        = errors.New("not signed in")
	ErrSessionExpired     = errors.New("session expired, please sign in again")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidEmail       = errors.New("invalid email address")
)

// errorTranslations maps recognized provider-error substrings to the
// user-facing message shown instead of the raw driver text.
var errorTranslations = map[string]string{
	"UNIQUE constraint failed: users.email": "an account with this email already exists",
	"FOREIGN KEY constraint failed":         "account no longer exists",
	"database is locked":                    "the local database is busy, try again",
	"no such table":                         "the local database is out of date, re-run to migrate",
}

// Translate returns a user-facing message for an error, falling back to
// the error's own text when no translation matches.
func Translate(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for needle, friendly := range errorTranslations {
		if strings.Contains(msg, needle) {
			return friendly
		}
	}
	return msg
}
