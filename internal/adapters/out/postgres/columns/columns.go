// Package columns maps kernel values to and from the column types the repositories store.
package columns

import (
	"errors"
	"time"

	"shopdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
)

const uniqueViolation = "23505"

// Date stores the calendar date of a business date. The column keeps no zone, so the
// value is written as UTC midnight of the same year, month and day.
func Date(businessDate time.Time) datatypes.Date {
	y, m, d := businessDate.In(kernel.BusinessLocation).Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// BusinessDate reads a date column back as midnight in the business timezone.
func BusinessDate(column datatypes.Date) time.Time {
	y, m, d := time.Time(column).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, kernel.BusinessLocation)
}

func UUIDs(ids []kernel.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Bytes())
	}
	return out
}

// OptionalUUID maps a nullable uuid column.
func OptionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// IsUniqueViolation reports whether err is a unique violation of the named constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraint
}
