package main

import (
	"Skyline/config"
	"Skyline/pkg/database"
	"Skyline/pkg/log"
	"Skyline/pkg/server"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	// .env 可选，存在时注入环境变量
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.L.Warn("load .env failed", zap.Error(err))
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.SetDebug(cfg.Debug())

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "flight search api",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, InitServer(cfg))
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					db := database.NewDB(cfg)
					if err := database.Migrate(db); err != nil {
						return err
					}
					log.L.Info("migrate done")
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
