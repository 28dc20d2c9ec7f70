package domain

import "errors"

// Sentinel errors shared across layers. Each maps to exactly one HTTP
// status at the boundary; handlers must never classify errors by
// message text.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrGrantNotFound      = errors.New("permission grant not found")
	ErrUserNotFound       = errors.New("user not found")

	// ErrForbidden: the caller lacks the capability required by the
	// operation on this task.
	ErrForbidden = errors.New("access forbidden")
	// ErrNotCreator: grant administration is restricted to the task's
	// creator, whatever tier the caller holds.
	ErrNotCreator = errors.New("caller is not the task creator")

	ErrInvalidPayload      = errors.New("invalid payload")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrLoginTaken          = errors.New("login already taken")
	ErrTokenInvalid        = errors.New("token invalid or expired")
	ErrNoFile              = errors.New("no file provided")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)
