package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "controle_pedidos/docs"
	"controle_pedidos/internal/adapter/http/routes"
	"controle_pedidos/internal/config"
	"controle_pedidos/internal/logger"

	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// @title           Order Tracking API
// @version         1.0
// @description     Order (pedido) registration, live list and status tracking backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	app := &cli.App{
		Name:  "order-api",
		Usage: "order tracking service",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: withConfig(routes.Run),
			},
			{
				Name:   "create-table",
				Usage:  "create the DynamoDB orders table when missing",
				Action: withConfig(routes.CreateTable),
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("order-api failed")
	}
}

func withConfig(run func(ctx context.Context, cfg config.Config) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger.Setup(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName).Info("starting")

		ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return run(ctx, cfg)
	}
}
