// Package timeutil centralizes the UTC-only timestamp rule used across the
// domain model. Age and bucket computation must never see a zoned or implicit
// instant; every timestamp is validated at the point it enters the domain.
package timeutil

import (
	"time"

	"lead-exchange/internal/pkg/errs"
)

// RequireUTC rejects zero timestamps and timestamps whose zone offset is not 0.
// Error messages stay uniform across the domain; callers wrap with context.
func RequireUTC(name string, t time.Time) error {
	if t.IsZero() {
		return errs.Newf("%s must be set", name)
	}
	if _, offset := t.Zone(); offset != 0 {
		return errs.Newf("%s must be a UTC timestamp (offset 0)", name)
	}
	return nil
}
