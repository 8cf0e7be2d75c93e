package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound)
// into a 404 AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict builds a generic 409.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// Predefined errors for the frequent, static cases.

// ErrEmailAlreadyExists - the email is taken by another account.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User with this email already exists",
	http.StatusConflict,
)

// ErrInvalidCredentials - unknown email or wrong password. The message is
// deliberately identical for both cases.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - unknown, expired, or revoked refresh token.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrUserNotFound - referenced account does not exist.
var ErrUserNotFound = New(
	CodeNotFound,
	"users",
	"User not found",
	http.StatusNotFound,
)

// ErrProjectNotFound - referenced project does not exist.
var ErrProjectNotFound = New(
	CodeNotFound,
	"projects",
	"Project not found",
	http.StatusNotFound,
)

// ErrNotProjectOwner - caller tried to modify somebody else's project.
var ErrNotProjectOwner = New(
	CodeForbidden,
	"projects",
	"You can only modify your own projects",
	http.StatusForbidden,
)

// ErrConversationNotFound - referenced conversation does not exist.
var ErrConversationNotFound = New(
	CodeNotFound,
	"messaging",
	"Conversation not found",
	http.StatusNotFound,
)

// ErrNotParticipant - caller is not a member of the conversation.
var ErrNotParticipant = New(
	CodeForbidden,
	"messaging",
	"Access to conversation denied",
	http.StatusForbidden,
)

// ErrRefreshTokenNotFound - revoke was called with an unknown token.
var ErrRefreshTokenNotFound = New(
	CodeNotFound,
	"auth",
	"Refresh token not found",
	http.StatusNotFound,
)
