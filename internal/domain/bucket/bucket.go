// Package bucket derives the fixed age windows in which a lead becomes
// sellable. Lead age is counted in whole 24-hour days from two explicit UTC
// instants; months are fixed 30-day intervals. Leads younger than 90 days fall
// into no bucket and are not sellable.
package bucket

import (
	"errors"
	"time"

	"lead-exchange/internal/pkg/timeutil"
)

var (
	ErrNegativeAge  = errors.New("age days must be >= 0")
	ErrNotEligible  = errors.New("age days is not eligible for any bucket")
	ErrInvalidOrder = errors.New("as-of instant must not precede creation instant")
)

type Bucket string

const (
	Month3To5   Bucket = "MONTH_3_TO_5"
	Month6To8   Bucket = "MONTH_6_TO_8"
	Month9To11  Bucket = "MONTH_9_TO_11"
	Month12To23 Bucket = "MONTH_12_TO_23"
	Month24Plus Bucket = "MONTH_24_PLUS"
)

// ordering is user-facing: adjacent-bucket suggestions in allocation results
// depend on this exact sequence.
var ordering = [...]Bucket{
	Month3To5,
	Month6To8,
	Month9To11,
	Month12To23,
	Month24Plus,
}

func (b Bucket) String() string {
	return string(b)
}

func (b Bucket) IsValid() bool {
	switch b {
	case Month3To5, Month6To8, Month9To11, Month12To23, Month24Plus:
		return true
	default:
		return false
	}
}

func Parse(s string) (Bucket, error) {
	b := Bucket(s)
	if !b.IsValid() {
		return "", errors.New("unknown age bucket: " + s)
	}
	return b, nil
}

// Ordered returns all buckets youngest first.
func Ordered() []Bucket {
	out := make([]Bucket, len(ordering))
	copy(out, ordering[:])
	return out
}

// Adjacent returns the neighboring buckets, older first then younger,
// matching the order alternatives are suggested in.
func (b Bucket) Adjacent() []Bucket {
	idx := -1
	for i, o := range ordering {
		if o == b {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	var adjacent []Bucket
	if idx+1 < len(ordering) {
		adjacent = append(adjacent, ordering[idx+1])
	}
	if idx-1 >= 0 {
		adjacent = append(adjacent, ordering[idx-1])
	}
	return adjacent
}

// ForAgeDays resolves the bucket for an integer age in days. The second return
// is false when the lead falls into no bucket (age below 90 days). A negative
// age means the caller computed an inconsistent delta and is never swallowed.
func ForAgeDays(ageDays int) (Bucket, bool, error) {
	if ageDays < 0 {
		return "", false, ErrNegativeAge
	}

	switch {
	case ageDays < 90:
		return "", false, nil
	case ageDays <= 179:
		return Month3To5, true, nil
	case ageDays <= 269:
		return Month6To8, true, nil
	case ageDays <= 359:
		return Month9To11, true, nil
	case ageDays <= 719:
		return Month12To23, true, nil
	default:
		return Month24Plus, true, nil
	}
}

// FromAgeDays resolves a bucket and errors when the age is not eligible.
func FromAgeDays(ageDays int) (Bucket, error) {
	b, ok, err := ForAgeDays(ageDays)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNotEligible
	}
	return b, nil
}

// LeadAge evaluates a lead's age from two explicit UTC instants. No implicit
// "now" is ever read here.
type LeadAge struct {
	createdAt time.Time
	asOf      time.Time
}

func NewLeadAge(createdAt, asOf time.Time) (LeadAge, error) {
	if err := timeutil.RequireUTC("created_at", createdAt); err != nil {
		return LeadAge{}, err
	}
	if err := timeutil.RequireUTC("as_of", asOf); err != nil {
		return LeadAge{}, err
	}
	if asOf.Before(createdAt) {
		return LeadAge{}, ErrInvalidOrder
	}
	return LeadAge{createdAt: createdAt, asOf: asOf}, nil
}

// Days is floor((asOf - createdAt) / 24h).
func (a LeadAge) Days() int {
	return int(a.asOf.Sub(a.createdAt) / (24 * time.Hour))
}

// Months is floor(days / 30).
func (a LeadAge) Months() int {
	return a.Days() / 30
}

// Bucket resolves the age bucket for this lead age; ok is false below 90 days.
func (a LeadAge) Bucket() (Bucket, bool) {
	b, ok, err := ForAgeDays(a.Days())
	if err != nil {
		// Days() is non-negative by construction.
		return "", false
	}
	return b, ok
}
