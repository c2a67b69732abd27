package migration

import (
	bannerdomain "github.com/adboardhq/adboard/internal/banner/domain"
	customerdomain "github.com/adboardhq/adboard/internal/customer/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Module synchronizes the schema at startup. The banner/customer association
// is deliberately migrated without a foreign key constraint (see pkg/db).
var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB) error {
		return conn.AutoMigrate(
			&customerdomain.Customer{},
			&bannerdomain.Banner{},
		)
	}),
)
