package commands

import (
	"context"
	"log/slog"

	"lead-exchange/internal/domain/client"
	"lead-exchange/internal/infra"
	"lead-exchange/internal/pkg/clock"
	"lead-exchange/internal/pkg/errs"
	"lead-exchange/internal/pkg/jwt"
	"lead-exchange/internal/pkg/password"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errs.New("invalid email or password")

type AuthCommands interface {
	// Login authenticates a client by email and password and returns a signed
	// access token. Unknown email and wrong password are indistinguishable to
	// the caller.
	Login(ctx context.Context, email, plainPassword string) (string, error)
	GetCurrentClient(ctx context.Context, clientID uuid.UUID) (*client.Client, error)
}

type authCommandsImpl struct {
	clients ClientRepository
	tokens  *jwt.Service
	clock   clock.Clock
	logger  *slog.Logger
}

func NewAuthCommands(clients ClientRepository, tokens *jwt.Service, clk clock.Clock, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{clients: clients, tokens: tokens, clock: clk, logger: logger}
}

func (c *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (string, error) {
	found, hash, err := c.clients.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", errs.Wrap(err, "failed to look up client")
	}

	if err := password.ComparePassword(hash, plainPassword); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := c.tokens.GenerateToken(found.ID())
	if err != nil {
		return "", errs.Wrap(err, "failed to sign token")
	}

	if err := c.clients.UpdateLastLogin(ctx, found.ID(), c.clock.Now()); err != nil {
		// Login still succeeds; the timestamp is best effort.
		c.logger.WarnContext(ctx, "failed to record last login", "client_id", found.ID(), "error", err)
	}

	return token, nil
}

func (c *authCommandsImpl) GetCurrentClient(ctx context.Context, clientID uuid.UUID) (*client.Client, error) {
	found, err := c.clients.FindByID(ctx, clientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrClientNotFound)
		}
		return nil, errs.Wrap(err, "failed to load client")
	}
	return found, nil
}
