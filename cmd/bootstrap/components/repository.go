package components

import (
	"lead-exchange/internal/infra/readstore"
	repo_impl "lead-exchange/internal/infra/repository"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repo_impl.NewClientRepository,
		repo_impl.NewLeadRepository,
		repo_impl.NewInventoryWriteRepository,
		repo_impl.NewSaleRepository,
		repo_impl.NewPricingRepository,
		readstore.NewInventoryReadStore,
	),
)
