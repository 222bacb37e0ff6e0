package apperrors

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStorage_NoRowsBecomesNotFound(t *testing.T) {
	err := FromStorage(pgx.ErrNoRows)
	require.NotNil(t, err)
	assert.Equal(t, KindNotFound, err.Kind)
}

func TestFromStorage_PassesThroughClassifiedErrors(t *testing.T) {
	original := Forbidden("no")
	assert.Same(t, original, FromStorage(original))
}

func TestFromStorage_UniqueViolationByConstraint(t *testing.T) {
	tests := []struct {
		constraint string
		message    string
	}{
		{"vehicles_vin_key", "Ya existe un vehículo con ese VIN"},
		{"vehicles_plate_key", "Ya existe un vehículo con esa placa"},
		{"clients_cedula_key", "Ya existe un cliente con esa cédula"},
		{"contracts_contract_number_key", "Ya existe un contrato con ese número"},
		{"something_else_key", "Ya existe un registro con esos datos"},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: "23505", ConstraintName: tt.constraint}
			err := FromStorage(pgErr)
			require.NotNil(t, err)
			assert.Equal(t, KindConflict, err.Kind)
			assert.Equal(t, tt.message, err.Message)
		})
	}
}

func TestFromStorage_ForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "vehicles_concesionario_id_fkey"}
	err := FromStorage(pgErr)
	require.NotNil(t, err)
	assert.Equal(t, KindReference, err.Kind)
}

func TestFromStorage_SubstringFallback(t *testing.T) {
	err := FromStorage(errors.New(`ERROR: duplicate key value violates unique constraint "vehicles_vin_key" (SQLSTATE 23505)`))
	require.NotNil(t, err)
	assert.Equal(t, KindConflict, err.Kind)
	assert.Equal(t, "Ya existe un vehículo con ese VIN", err.Message)

	err = FromStorage(errors.New(`ERROR: insert violates foreign key constraint (SQLSTATE 23503)`))
	require.NotNil(t, err)
	assert.Equal(t, KindReference, err.Kind)
}

func TestFromStorage_UnknownErrorIsInternal(t *testing.T) {
	cause := errors.New("connection refused")
	err := FromStorage(cause)
	require.NotNil(t, err)
	assert.Equal(t, KindInternal, err.Kind)
	assert.ErrorIs(t, err, cause)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation(map[string]string{"vin": "x"})))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}
