package customer

import (
	"github.com/adboardhq/adboard/internal/customer/repository"
	"github.com/adboardhq/adboard/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
