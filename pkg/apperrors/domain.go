package apperrors

import (
	"net/http"
)

// Factories and predefined variables for the business-logic errors the
// services raise. Services must only ever return AppError values so handlers
// never leak raw database error text to clients.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidTransition signals a status change the state machine forbids,
// e.g. accepting a rejected application.
func ErrInvalidTransition(domain, message string) *AppError {
	return New(CodeInvalidTransition, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth & accounts ---

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrAccountSuspended = New(
	CodeForbidden,
	"auth",
	"Your account has been suspended",
	http.StatusForbidden,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// --- Gigs ---

var ErrGigNotActive = New(
	CodeInvalidOperation,
	"gig",
	"Gig is not accepting applications",
	http.StatusConflict,
)

var ErrGigDeadlinePassed = New(
	CodeInvalidOperation,
	"gig",
	"Application deadline has passed",
	http.StatusConflict,
)

var ErrInvalidGigStatus = New(
	CodeInvalidTransition,
	"gig",
	"Operation not allowed for the current gig status",
	http.StatusConflict,
)

var ErrCannotApplyToOwnGig = New(
	CodeInvalidOperation,
	"gig",
	"You cannot apply to your own gig",
	http.StatusBadRequest,
)

// --- Applications / bookings ---

var ErrApplicationAlreadyExists = New(
	CodeAlreadyExists,
	"application",
	"You have already applied to this gig",
	http.StatusConflict,
)

var ErrCannotAcceptRejected = New(
	CodeInvalidTransition,
	"application",
	"Cannot accept a rejected application",
	http.StatusConflict,
)

var ErrCannotRejectAccepted = New(
	CodeInvalidTransition,
	"application",
	"Cannot reject an accepted application",
	http.StatusConflict,
)

// --- Client applications ---

var ErrClientApplicationPending = New(
	CodeConflict,
	"client_application",
	"You already have an application under review",
	http.StatusConflict,
)

var ErrAlreadyClient = New(
	CodeConflict,
	"client_application",
	"You already have client access",
	http.StatusConflict,
)

var ErrCannotApproveRejected = New(
	CodeInvalidTransition,
	"client_application",
	"Cannot approve a rejected application",
	http.StatusConflict,
)

var ErrCannotRejectApproved = New(
	CodeInvalidTransition,
	"client_application",
	"Cannot reject an approved application",
	http.StatusConflict,
)

// --- Moderation ---

var ErrCannotFlagOwnContent = New(
	CodeInvalidOperation,
	"moderation",
	"You cannot flag your own content",
	http.StatusBadRequest,
)

var ErrFlagAlreadyClosed = New(
	CodeInvalidTransition,
	"moderation",
	"Flag has already been resolved or dismissed",
	http.StatusConflict,
)
