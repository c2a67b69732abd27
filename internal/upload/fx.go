package upload

import "go.uber.org/fx"

var Module = fx.Module("upload.store",
	fx.Provide(New),
)
