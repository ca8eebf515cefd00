package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestQuoteTable(t *testing.T) {
	assert.Equal(t, `"farmacia_centro"`, quoteTable("farmacia_centro"))
	assert.Equal(t, `"Farmacia2"`, quoteTable("Farmacia2"))
}

func TestIsUndefinedTable(t *testing.T) {
	wrapped := fmt.Errorf("find: %w", &pgconn.PgError{Code: "42P01"})
	assert.True(t, isUndefinedTable(wrapped))
	assert.False(t, isUndefinedTable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUndefinedTable(errors.New("x")))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, isNoRows(fmt.Errorf("scan: %w", pgx.ErrNoRows)))
	assert.False(t, isNoRows(errors.New("otro")))
}
