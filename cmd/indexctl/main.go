// Command indexctl administers the catalog search index: it can create the
// index with its mapping and re-project every catalog item from the primary
// store (bootstrap), or drop the index entirely. Bootstrap is the recovery
// path when the primary store and the index have drifted.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/webshop/catalog-search/internal/config"
	"github.com/webshop/catalog-search/internal/database"
	"github.com/webshop/catalog-search/internal/engine/elastic"
	"github.com/webshop/catalog-search/internal/logger"
	pgrepo "github.com/webshop/catalog-search/internal/repository/postgres"
	"github.com/webshop/catalog-search/internal/service"
	"github.com/webshop/catalog-search/migrations"
)

func main() {
	app := &cli.App{
		Name:  "indexctl",
		Usage: "Administer the catalog search index",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "bootstrap",
				Usage:  "Create the index with its mapping and reindex every catalog item",
				Action: bootstrapCommand,
			},
			{
				Name:   "drop",
				Usage:  "Delete the search index",
				Action: dropCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func bootstrapCommand(c *cli.Context) error {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	lg := logger.New("indexctl", c.String("log-level"))

	eng, err := elastic.New(cfg.ElasticsearchURL, cfg.ElasticsearchIndex, lg)
	if err != nil {
		return fmt.Errorf("connect elasticsearch: %w", err)
	}

	pgCfg := database.DefaultPostgresConfig()
	pgCfg.Host = cfg.PostgresHost
	pgCfg.Port = cfg.PostgresPort
	pgCfg.User = cfg.PostgresUser
	pgCfg.Password = cfg.PostgresPassword
	pgCfg.DBName = cfg.PostgresDB
	pgCfg.SSLMode = cfg.PostgresSSLMode

	pool, err := database.NewPostgresPool(ctx, &pgCfg, lg)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool, migrations.FS, lg); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	svc := service.NewCatalogSearchService(eng, pgrepo.NewItemRepository(pool), lg)
	if err := svc.Reindex(ctx); err != nil {
		return fmt.Errorf("bootstrap reindex: %w", err)
	}

	fmt.Println("catalog items indexed successfully")
	return nil
}

func dropCommand(c *cli.Context) error {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	lg := logger.New("indexctl", c.String("log-level"))

	eng, err := elastic.New(cfg.ElasticsearchURL, cfg.ElasticsearchIndex, lg)
	if err != nil {
		return fmt.Errorf("connect elasticsearch: %w", err)
	}

	if err := eng.DeleteIndex(ctx); err != nil {
		return err
	}

	fmt.Println("index dropped")
	return nil
}
