package db

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// Kind classifies a store failure by who caused it.
type Kind int

const (
	// KindGeneric is any persistence failure not covered below.
	KindGeneric Kind = iota
	// KindConstraint is a broken uniqueness, not-null, foreign-key or check constraint.
	KindConstraint
	// KindStatement is a malformed or unbuildable statement.
	KindStatement
)

func (k Kind) String() string {
	switch k {
	case KindConstraint:
		return "constraint_violation"
	case KindStatement:
		return "statement_error"
	default:
		return "store_error"
	}
}

// StoreError carries the classification together with the store's own code and message.
type StoreError struct {
	Kind   Kind
	Code   string
	Detail string
	Err    error
}

func (e *StoreError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s [%s]: %s", e.Kind, e.Code, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *StoreError) Unwrap() error { return e.Err }

// gorm errors raised while building a statement, before anything reaches the driver.
var statementErrors = []error{
	gorm.ErrInvalidData,
	gorm.ErrInvalidField,
	gorm.ErrInvalidValue,
	gorm.ErrInvalidValueOfLength,
	gorm.ErrMissingWhereClause,
	gorm.ErrUnsupportedRelation,
	gorm.ErrPrimaryKeyRequired,
	gorm.ErrModelValueRequired,
	gorm.ErrModelAccessibleFieldsRequired,
	gorm.ErrSubQueryRequired,
	gorm.ErrUnsupportedDriver,
	gorm.ErrNotImplemented,
	gorm.ErrDryRunModeUnsupported,
}

// Classify wraps err into a *StoreError. nil and gorm.ErrRecordNotFound pass through
// unchanged, as does an error that is already classified.
func Classify(err error) error {
	if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return classifySQLite(sqliteErr, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPostgres(pgErr, err)
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return &StoreError{Kind: KindConstraint, Detail: err.Error(), Err: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &StoreError{Kind: KindGeneric, Code: "TIMEOUT", Detail: err.Error(), Err: err}
	case errors.Is(err, context.Canceled):
		return &StoreError{Kind: KindGeneric, Code: "CANCELED", Detail: err.Error(), Err: err}
	}
	for _, target := range statementErrors {
		if errors.Is(err, target) {
			return &StoreError{Kind: KindStatement, Detail: err.Error(), Err: err}
		}
	}
	return &StoreError{Kind: KindGeneric, Detail: err.Error(), Err: err}
}

func classifySQLite(e sqlite3.Error, wrapped error) *StoreError {
	out := &StoreError{
		Kind:   KindGeneric,
		Code:   strconv.Itoa(int(e.ExtendedCode)),
		Detail: e.Error(),
		Err:    wrapped,
	}
	switch e.Code {
	case sqlite3.ErrConstraint:
		out.Kind = KindConstraint
	case sqlite3.ErrError:
		// SQLITE_ERROR: syntax errors, unknown tables or columns
		out.Kind = KindStatement
	}
	return out
}

func classifyPostgres(e *pgconn.PgError, wrapped error) *StoreError {
	detail := e.Message
	if e.Detail != "" {
		detail += " (" + e.Detail + ")"
	}
	out := &StoreError{Kind: KindGeneric, Code: e.Code, Detail: detail, Err: wrapped}
	if len(e.Code) >= 2 {
		switch e.Code[:2] {
		case "23": // integrity_constraint_violation
			out.Kind = KindConstraint
		case "42": // syntax_error_or_access_rule_violation
			out.Kind = KindStatement
		}
	}
	return out
}

// IsKind reports whether err is a *StoreError of kind k.
func IsKind(err error, k Kind) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Kind == k
}
