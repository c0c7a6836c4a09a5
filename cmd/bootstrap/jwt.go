package bootstrap

import (
	"time"

	"lead-exchange/internal/pkg/config"
	"lead-exchange/internal/pkg/jwt"
	"lead-exchange/internal/usecase"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		func(svc *jwt.Service) usecase.TokenValidator { return svc },
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.JWT.Secret, tokenDuration)
}
