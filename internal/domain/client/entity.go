// Package client models buyer accounts. Purchase eligibility is the
// active-and-verified predicate; authentication mechanics live outside the
// domain.
package client

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidStatus = errors.New("invalid client status")

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusClosed    Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusClosed:
		return true
	default:
		return false
	}
}

type Client struct {
	id            uuid.UUID
	email         string
	status        Status
	emailVerified bool
	companyName   *string
	contactName   *string
	phone         *string
	createdAt     time.Time
	lastLoginAt   *time.Time
}

func NewClient(id uuid.UUID, email string, status Status, emailVerified bool, createdAt time.Time) (*Client, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Client{
		id:            id,
		email:         email,
		status:        status,
		emailVerified: emailVerified,
		createdAt:     createdAt,
	}, nil
}

func ReconstructClient(
	id uuid.UUID,
	email string,
	status Status,
	emailVerified bool,
	companyName, contactName, phone *string,
	createdAt time.Time,
	lastLoginAt *time.Time,
) *Client {
	return &Client{
		id:            id,
		email:         email,
		status:        status,
		emailVerified: emailVerified,
		companyName:   companyName,
		contactName:   contactName,
		phone:         phone,
		createdAt:     createdAt,
		lastLoginAt:   lastLoginAt,
	}
}

func (c *Client) ID() uuid.UUID           { return c.id }
func (c *Client) Email() string           { return c.email }
func (c *Client) Status() Status          { return c.status }
func (c *Client) EmailVerified() bool     { return c.emailVerified }
func (c *Client) CompanyName() *string    { return c.companyName }
func (c *Client) ContactName() *string    { return c.contactName }
func (c *Client) Phone() *string          { return c.phone }
func (c *Client) CreatedAt() time.Time    { return c.createdAt }
func (c *Client) LastLoginAt() *time.Time { return c.lastLoginAt }

func (c *Client) IsActive() bool {
	return c.status == StatusActive
}

// CanPurchase gates every purchase and quote: the account must be active and
// its email verified.
func (c *Client) CanPurchase() bool {
	return c.IsActive() && c.emailVerified
}
