package dbx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "uq_assets_serial_number"}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{name: "matching constraint", err: unique, constraint: "uq_assets_serial_number", want: true},
		{name: "wrapped", err: fmt.Errorf("db error: %w", unique), constraint: "uq_assets_serial_number", want: true},
		{name: "any constraint", err: unique, constraint: "", want: true},
		{name: "other constraint", err: unique, constraint: "assets_pkey", want: false},
		{name: "other code", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, constraint: "", want: false},
		{name: "not a pg error", err: errors.New("boom"), constraint: "", want: false},
		{name: "nil", err: nil, constraint: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err, tt.constraint))
		})
	}
}

func TestIsCheckViolation(t *testing.T) {
	assert.True(t, IsCheckViolation(&pgconn.PgError{Code: pgerrcode.CheckViolation}))
	assert.False(t, IsCheckViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, IsCheckViolation(errors.New("boom")))
}
