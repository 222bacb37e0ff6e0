package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies an operation failure for transport mapping and tests.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthorized
	KindNoDealer
	KindForbidden
	KindValidation
	KindNotFound
	KindConflict
	KindReference
)

type Error struct {
	Kind    Kind
	Message string
	// Fields carries the field→message map for validation failures.
	Fields map[string]string
	cause  error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf extracts the kind from any error, defaulting to internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Message: "No autorizado"}
}

func NoDealer() *Error {
	return &Error{Kind: KindNoDealer, Message: "El usuario no tiene un dealer asociado"}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: "Datos inválidos", Fields: fields}
}

// NotFound deliberately uses the same message whether the row does not
// exist or belongs to another dealer.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Internal(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, cause: cause}
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// conflictMessages maps a substring of the violated constraint (or
// column) name to the user-facing conflict message.
var conflictMessages = []struct {
	match   string
	message string
}{
	{"vin", "Ya existe un vehículo con ese VIN"},
	{"plate", "Ya existe un vehículo con esa placa"},
	{"cedula", "Ya existe un cliente con esa cédula"},
	{"contract_number", "Ya existe un contrato con ese número"},
}

// FromStorage translates a storage-layer error into a user-facing one.
// pgconn gives structured SQLSTATE codes; the substring checks are a
// fallback for drivers/mocks that only surface message text.
func FromStorage(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return NotFound("Registro no encontrado")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return conflictFrom(pgErr.ConstraintName + " " + pgErr.Detail)
		case pgForeignKeyViolation:
			return &Error{Kind: KindReference, Message: "El registro relacionado seleccionado no es válido", cause: err}
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "SQLSTATE 23505"), strings.Contains(msg, "duplicate key"),
		strings.Contains(msg, "unique constraint"):
		return conflictFrom(msg)
	case strings.Contains(msg, "SQLSTATE 23503"), strings.Contains(msg, "foreign key"):
		return &Error{Kind: KindReference, Message: "El registro relacionado seleccionado no es válido", cause: err}
	}
	return Internal("La operación no pudo completarse", err)
}

func conflictFrom(detail string) *Error {
	lower := strings.ToLower(detail)
	for _, cm := range conflictMessages {
		if strings.Contains(lower, cm.match) {
			return &Error{Kind: KindConflict, Message: cm.message}
		}
	}
	return &Error{Kind: KindConflict, Message: "Ya existe un registro con esos datos"}
}
