package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	duplicate := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "geofences_pkey"}

	assert.True(t, isUniqueViolation(duplicate))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", duplicate)))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: pgerrcode.CheckViolation}))
	assert.False(t, isUniqueViolation(pgx.ErrNoRows))
	assert.False(t, isUniqueViolation(errors.New("connection reset")))
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "geofence:hq", cacheKey("hq"))
}
