package util

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewForbidden("nope")
	mapped := ToDomainError(original)
	assert.Equal(t, "FORBIDDEN", mapped.Code)
	assert.Equal(t, 403, mapped.HTTPStatus)
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, 500, mapped.HTTPStatus)
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	mapped := ToDomainError(fmt.Errorf("lookup: %w", pgx.ErrNoRows))
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, 404, mapped.HTTPStatus)
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := errors.New("db down")
	err := NewStoreUnavailable(cause)
	assert.True(t, errors.Is(err, cause))

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "STORE_UNAVAILABLE", de.Code)
	assert.Equal(t, 503, de.HTTPStatus)
}

func TestInvalidCredentialsIsUniform(t *testing.T) {
	a := ToDomainError(NewInvalidCredentials())
	b := ToDomainError(NewInvalidCredentials())
	assert.Equal(t, a.Message, b.Message)
	assert.Equal(t, 401, a.HTTPStatus)
}
