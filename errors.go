package auth

import (
	"strings"

	"github.com/goliatone/go-errors"
)

const (
	// TextCodeInvalidCreds marks failed credential verification
	TextCodeInvalidCreds = "invalid_credentials"
	// TextCodeEmailTaken marks a duplicate registration attempt
	TextCodeEmailTaken = "email_taken"
	// TextCodeTokenMissing marks a request without a session token
	TextCodeTokenMissing = "token_missing"
	// TextCodeTokenExpired marks an expired session token
	TextCodeTokenExpired = "token_expired"
	// TextCodeTokenMalformed marks an unparseable or tampered token
	TextCodeTokenMalformed = "token_malformed"
	// TextCodeForbidden marks a valid identity with insufficient role
	TextCodeForbidden = "forbidden"
	// TextCodeEmptyPassword marks an empty plaintext handed to the hasher
	TextCodeEmptyPassword = "empty_password"
)

// ErrIdentityNotFound is returned when no account matches a lookup. It never
// crosses the login boundary; there it collapses into ErrInvalidCredentials.
var ErrIdentityNotFound = errors.New("identity not found", errors.CategoryNotFound).
	WithTextCode("identity_not_found")

// ErrInvalidCredentials covers both unknown email and wrong password so the
// response carries no enumeration signal. The message is the exact client
// contract.
var ErrInvalidCredentials = errors.New("Email or Password is not Valid!", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCreds).
	WithCode(errors.CodeBadRequest)

// ErrEmailTaken is the duplicate-registration conflict. Surfaced with a 400
// like the rest of the client-fixable failures.
var ErrEmailTaken = errors.New("Email Already Registered!", errors.CategoryConflict).
	WithTextCode(TextCodeEmailTaken).
	WithCode(errors.CodeBadRequest)

// ErrTokenMissing is returned when a protected request carries no token.
var ErrTokenMissing = errors.New("token required", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMissing).
	WithCode(errors.CodeBadRequest)

// ErrTokenExpired is returned for tokens whose exp claim has passed.
var ErrTokenExpired = errors.New("token is expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed covers undecodable tokens and signature mismatches.
var ErrTokenMalformed = errors.New("token is malformed", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

// ErrForbidden is returned for a verified identity whose role does not allow
// the operation.
var ErrForbidden = errors.New("insufficient role", errors.CategoryAuthz).
	WithTextCode(TextCodeForbidden).
	WithCode(errors.CodeForbidden)

// ErrMismatchedHashAndPassword is the hasher-level comparison failure.
var ErrMismatchedHashAndPassword = errors.New("the credentials provided are invalid", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCreds)

// ErrNoEmptyString rejects hashing an empty password.
var ErrNoEmptyString = errors.New("value must not be empty", errors.CategoryValidation).
	WithTextCode(TextCodeEmptyPassword)

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}
