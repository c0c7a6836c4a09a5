package lead

import (
	"errors"
	"time"

	"lead-exchange/internal/pkg/timeutil"

	"github.com/google/uuid"
)

var ErrMissingState = errors.New("lead state is required")

// Lead is a single consumer inquiry. The entity is immutable after ingestion;
// in particular the classification can never be reassigned.
type Lead struct {
	id             uuid.UUID
	source         string
	state          string
	county         *string
	city           *string
	zip            *string
	firstName      *string
	lastName       *string
	phone          *string
	classification Classification
	createdAt      time.Time
}

func NewLead(
	id uuid.UUID,
	source, state string,
	classification Classification,
	createdAt time.Time,
) (*Lead, error) {
	if state == "" {
		return nil, ErrMissingState
	}
	if !classification.IsValid() {
		return nil, ErrInvalidClassification
	}
	if err := timeutil.RequireUTC("created_at", createdAt); err != nil {
		return nil, err
	}

	return &Lead{
		id:             id,
		source:         source,
		state:          state,
		classification: classification,
		createdAt:      createdAt,
	}, nil
}

func ReconstructLead(
	id uuid.UUID,
	source, state string,
	county, city, zip, firstName, lastName, phone *string,
	classification Classification,
	createdAt time.Time,
) *Lead {
	return &Lead{
		id:             id,
		source:         source,
		state:          state,
		county:         county,
		city:           city,
		zip:            zip,
		firstName:      firstName,
		lastName:       lastName,
		phone:          phone,
		classification: classification,
		createdAt:      createdAt,
	}
}

func (l *Lead) ID() uuid.UUID                  { return l.id }
func (l *Lead) Source() string                 { return l.source }
func (l *Lead) State() string                  { return l.state }
func (l *Lead) County() *string                { return l.county }
func (l *Lead) City() *string                  { return l.city }
func (l *Lead) Zip() *string                   { return l.zip }
func (l *Lead) FirstName() *string             { return l.firstName }
func (l *Lead) LastName() *string              { return l.lastName }
func (l *Lead) Phone() *string                 { return l.phone }
func (l *Lead) Classification() Classification { return l.classification }
func (l *Lead) CreatedAt() time.Time           { return l.createdAt }
