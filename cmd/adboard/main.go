package main

import (
	"github.com/adboardhq/adboard/internal/config"
	"github.com/adboardhq/adboard/internal/migration"
	"github.com/adboardhq/adboard/internal/observability"
	"github.com/adboardhq/adboard/internal/server"
	"github.com/adboardhq/adboard/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
