package response

import (
	"time"

	"lead-exchange/internal/domain/client"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type ClientResponse struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	Status        string     `json:"status"`
	EmailVerified bool       `json:"email_verified"`
	CanPurchase   bool       `json:"can_purchase"`
	CompanyName   *string    `json:"company_name,omitempty"`
	ContactName   *string    `json:"contact_name,omitempty"`
	Phone         *string    `json:"phone,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
}

func FromClient(c *client.Client) *ClientResponse {
	return &ClientResponse{
		ID:            c.ID(),
		Email:         c.Email(),
		Status:        c.Status().String(),
		EmailVerified: c.EmailVerified(),
		CanPurchase:   c.CanPurchase(),
		CompanyName:   c.CompanyName(),
		ContactName:   c.ContactName(),
		Phone:         c.Phone(),
		CreatedAt:     c.CreatedAt(),
		LastLoginAt:   c.LastLoginAt(),
	}
}
