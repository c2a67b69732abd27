package banner

import (
	"github.com/adboardhq/adboard/internal/banner/repository"
	"github.com/adboardhq/adboard/internal/banner/service"
	"go.uber.org/fx"
)

var Module = fx.Module("banner.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
