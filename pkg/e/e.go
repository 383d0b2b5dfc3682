package e

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrAlreadyRequested = errors.New("user already requested deletion")
	ErrPrecondition     = errors.New("precondition violation")
	ErrUnexpected       = errors.New("an unexpected error occurred")

	ErrConflict        = errors.New("conflict")
	ErrInternal        = errors.New("internal error")
	ErrDeadline        = errors.New("deadline exceeded")
	ErrCanceled        = errors.New("context canceled")
	ErrUniqueViolation = errors.New("unique violation")
	ErrQueueEmpty      = errors.New("event queue is empty")
)

// Validation errors. All of them match ErrInvalidInput with errors.Is.
var (
	ErrInvalidCoordinates    = fmt.Errorf("invalid coordinates: %w", ErrInvalidInput)
	ErrInvalidCategory       = fmt.Errorf("category not found: %w", ErrInvalidInput)
	ErrInvalidEmergencyLevel = fmt.Errorf("emergency level must be one of low, medium, high, critical: %w", ErrInvalidInput)
	ErrInvalidArgument       = fmt.Errorf("invalid argument: %w", ErrInvalidInput)
	ErrInvalidFile           = fmt.Errorf("invalid file: %w", ErrInvalidInput)
)

func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w", op, ErrUniqueViolation)
		case "23503", "23514":
			return fmt.Errorf("%s: %w", op, ErrInvalidInput)
		default:
			return fmt.Errorf("%s: pg error %s: %w", op, pgErr.Code, ErrInternal)
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, ErrInternal)
}

// IsDomain reports whether err is a caller-facing failure that may be
// returned to the client unchanged.
func IsDomain(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrAlreadyRequested)
}

// HTTPStatus maps an error to the response status and the message that is
// safe to show to the client.
func HTTPStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest, "Invalid fields"
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, ErrAlreadyRequested), errors.Is(err, ErrConflict), errors.Is(err, ErrUniqueViolation):
		return http.StatusConflict, "Conflict"
	default:
		return http.StatusInternalServerError, "An unexpected error occurred"
	}
}
