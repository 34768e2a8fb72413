package auth

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeInvalidEmail     = "INVALID_EMAIL"
	textCodeEmailTaken       = "EMAIL_TAKEN"
	textCodeUserNotFound     = "USER_NOT_FOUND"
	textCodeEmailNotVerified = "EMAIL_NOT_VERIFIED"
	textCodeInvalidCode      = "INVALID_OTP"
	textCodeNotManager       = "INSUFFICIENT_PRIVILEGES"
	textCodeTokenExpired     = "TOKEN_EXPIRED"
	textCodeTokenMalformed   = "TOKEN_MALFORMED"
	textCodeUnauthorized     = "INVALID_CREDENTIALS"
)

// ErrInvalidEmail is returned when the submitted email is not well formed.
var ErrInvalidEmail = goerrors.New("invalid email format", goerrors.CategoryValidation).
	WithTextCode(textCodeInvalidEmail).
	WithCode(goerrors.CodeBadRequest)

// ErrEmailTaken is returned when signing up with an email that is already
// registered. The original API reports this as a 400, not a 409.
var ErrEmailTaken = goerrors.New("email already registered", goerrors.CategoryConflict).
	WithTextCode(textCodeEmailTaken).
	WithCode(goerrors.CodeBadRequest)

// ErrUserNotFound is returned when no record matches the given email.
var ErrUserNotFound = goerrors.New("user not found", goerrors.CategoryNotFound).
	WithTextCode(textCodeUserNotFound).
	WithCode(goerrors.CodeNotFound)

// ErrEmailNotVerified is returned when an operation requires a verified
// account. Once set, is_verified never transitions back to false, so the
// gate check is defensive.
var ErrEmailNotVerified = goerrors.New("email not verified", goerrors.CategoryAuthz).
	WithTextCode(textCodeEmailNotVerified).
	WithCode(goerrors.CodeForbidden)

// ErrInvalidCode is returned on an OTP mismatch, including the case where
// the stored code has already been consumed.
var ErrInvalidCode = goerrors.New("invalid OTP", goerrors.CategoryValidation).
	WithTextCode(textCodeInvalidCode).
	WithCode(goerrors.CodeBadRequest)

// ErrNotManager is returned when a manager-only capability is requested by
// a regular user.
var ErrNotManager = goerrors.New("the user doesn't have enough privileges", goerrors.CategoryAuthz).
	WithTextCode(textCodeNotManager).
	WithCode(goerrors.CodeForbidden)

// ErrTokenExpired is returned when a bearer token is past its expiry.
var ErrTokenExpired = goerrors.New("token is expired", goerrors.CategoryAuth).
	WithTextCode(textCodeTokenExpired).
	WithCode(goerrors.CodeUnauthorized)

// ErrTokenMalformed is returned for tokens that fail to parse or verify.
var ErrTokenMalformed = goerrors.New("token is malformed", goerrors.CategoryAuth).
	WithTextCode(textCodeTokenMalformed).
	WithCode(goerrors.CodeUnauthorized)

// ErrUnauthorized is the generic credential failure for the gate.
var ErrUnauthorized = goerrors.New("could not validate credentials", goerrors.CategoryAuth).
	WithTextCode(textCodeUnauthorized).
	WithCode(goerrors.CodeUnauthorized)

// IsConflict reports whether err carries the conflict category, which the
// store uses to signal unique index violations.
func IsConflict(err error) bool {
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		return false
	}
	return richErr.Category == goerrors.CategoryConflict
}
