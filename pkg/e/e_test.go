package e

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cases := []struct {
		in   error
		want error
	}{
		{context.DeadlineExceeded, ErrDeadline},
		{context.Canceled, ErrCanceled},
		{&pgconn.PgError{Code: "23505"}, ErrUniqueViolation},
		{&pgconn.PgError{Code: "23503"}, ErrInvalidInput},
		{&pgconn.PgError{Code: "23514"}, ErrInvalidInput},
		{&pgconn.PgError{Code: "42P01"}, ErrInternal},
		{pgx.ErrNoRows, ErrNotFound},
		{errors.New("boom"), ErrInternal},
	}
	for _, tc := range cases {
		got := WrapError(ctx, "op", tc.in)
		assert.ErrorIs(t, got, tc.want, "in=%v", tc.in)
	}
	assert.NoError(t, WrapError(ctx, "op", nil))
}

func TestValidationErrorsAreInvalidInput(t *testing.T) {
	t.Parallel()

	for _, err := range []error{ErrInvalidCoordinates, ErrInvalidCategory, ErrInvalidEmergencyLevel, ErrInvalidArgument, ErrInvalidFile} {
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.True(t, IsDomain(err))
	}
	assert.False(t, IsDomain(ErrPrecondition))
	assert.False(t, IsDomain(ErrInternal))
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	cases := map[error]int{
		fmt.Errorf("x: %w", ErrInvalidCategory): http.StatusBadRequest,
		ErrUnauthorized:                         http.StatusUnauthorized,
		ErrNotFound:                             http.StatusNotFound,
		ErrAlreadyRequested:                     http.StatusConflict,
		ErrConflict:                             http.StatusConflict,
		ErrPrecondition:                         http.StatusInternalServerError,
		ErrUnexpected:                           http.StatusInternalServerError,
	}
	for err, want := range cases {
		code, msg := HTTPStatus(err)
		assert.Equal(t, want, code, "err=%v", err)
		if want == http.StatusInternalServerError {
			assert.Equal(t, "An unexpected error occurred", msg)
		}
	}
}
