// Package sale captures immutable sale events. A lead is sold at most once
// per age bucket; enforcement lives with the inventory ledger and the atomic
// sale primitive, not here.
package sale

import (
	"errors"
	"time"

	"lead-exchange/internal/domain/bucket"
	"lead-exchange/internal/pkg/timeutil"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice        = errors.New("purchase price cannot be negative")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	default:
		return false
	}
}

// Sale is created exactly once per successful atomic sale and immutable after.
type Sale struct {
	id            uuid.UUID
	leadID        uuid.UUID
	clientID      uuid.UUID
	ageBucket     bucket.Bucket
	soldAt        time.Time
	priceCents    int64
	currency      string
	paymentStatus *PaymentStatus
	transactionID *string
	createdAt     time.Time
}

func NewSale(
	id, leadID, clientID uuid.UUID,
	b bucket.Bucket,
	soldAt time.Time,
	priceCents int64,
	currency string,
	paymentStatus *PaymentStatus,
	createdAt time.Time,
) (*Sale, error) {
	if err := timeutil.RequireUTC("sold_at", soldAt); err != nil {
		return nil, err
	}
	if err := timeutil.RequireUTC("created_at", createdAt); err != nil {
		return nil, err
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if paymentStatus != nil && !paymentStatus.IsValid() {
		return nil, ErrInvalidPaymentStatus
	}

	return &Sale{
		id:            id,
		leadID:        leadID,
		clientID:      clientID,
		ageBucket:     b,
		soldAt:        soldAt,
		priceCents:    priceCents,
		currency:      currency,
		paymentStatus: paymentStatus,
		createdAt:     createdAt,
	}, nil
}

func ReconstructSale(
	id, leadID, clientID uuid.UUID,
	b bucket.Bucket,
	soldAt time.Time,
	priceCents int64,
	currency string,
	paymentStatus *PaymentStatus,
	transactionID *string,
	createdAt time.Time,
) *Sale {
	return &Sale{
		id:            id,
		leadID:        leadID,
		clientID:      clientID,
		ageBucket:     b,
		soldAt:        soldAt,
		priceCents:    priceCents,
		currency:      currency,
		paymentStatus: paymentStatus,
		transactionID: transactionID,
		createdAt:     createdAt,
	}
}

func (s *Sale) ID() uuid.UUID                 { return s.id }
func (s *Sale) LeadID() uuid.UUID             { return s.leadID }
func (s *Sale) ClientID() uuid.UUID           { return s.clientID }
func (s *Sale) AgeBucket() bucket.Bucket      { return s.ageBucket }
func (s *Sale) SoldAt() time.Time             { return s.soldAt }
func (s *Sale) PriceCents() int64             { return s.priceCents }
func (s *Sale) Currency() string              { return s.currency }
func (s *Sale) PaymentStatus() *PaymentStatus { return s.paymentStatus }
func (s *Sale) TransactionID() *string        { return s.transactionID }
func (s *Sale) CreatedAt() time.Time          { return s.createdAt }
