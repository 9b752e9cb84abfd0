package database

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// textToString returns the stored string, mapping NULL to "".
func textToString(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// stringToText maps "" to NULL; optional columns never store empty strings.
func stringToText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// int4ToCapacity maps a nullable capacity column to the domain representation
// (nil = unlimited).
func int4ToCapacity(v pgtype.Int4) *int {
	if !v.Valid {
		return nil
	}
	c := int(v.Int32)
	return &c
}

func capacityToInt4(capacity *int) pgtype.Int4 {
	if capacity == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(*capacity), Valid: true}
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (SQLSTATE 23505), optionally on the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// isForeignKeyViolation reports whether err is a PostgreSQL foreign-key
// violation (SQLSTATE 23503) on the named constraint.
func isForeignKeyViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23503" {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
