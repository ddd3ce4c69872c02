// Command seeder imports curricula listed in a YAML manifest: settings
// documents, sample texts and allowed-word lists. It is intended to be run
// offline, not as part of the main server.
//
// Flags:
//
//	--manifest       path to the manifest (overrides the seeder config)
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        build every curriculum in memory without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/synphony-backend/internal/adapter/postgres"
	"github.com/heartmarshall/synphony-backend/internal/adapter/postgres/curriculum"
	"github.com/heartmarshall/synphony-backend/internal/adapter/postgres/sample"
	"github.com/heartmarshall/synphony-backend/internal/app"
	"github.com/heartmarshall/synphony-backend/internal/app/seeder"
	"github.com/heartmarshall/synphony-backend/internal/config"
	"github.com/heartmarshall/synphony-backend/internal/service/readers"
	"github.com/heartmarshall/synphony-backend/migrations"
)

// Compile-time interface assertions.
var (
	_ seeder.Target = (*readers.Service)(nil)
	_ seeder.Target = (*seeder.Offline)(nil)
)

func main() {
	manifestFlag := flag.String("manifest", "", "path to the manifest (overrides the seeder config)")
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "build curricula in memory without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection and engine options).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *manifestFlag != "" {
		seederCfg.ManifestPath = *manifestFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	manifest, err := seeder.LoadManifest(seederCfg.ManifestPath)
	if err != nil {
		logger.Error("load manifest", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	readersCfg := app.ReadersServiceConfig(appCfg.Readers)

	var target seeder.Target
	if seederCfg.DryRun {
		logger.Info("dry run: nothing is written")
		target = seeder.NewOffline(readersCfg)
	} else {
		pool, err := postgres.NewPool(ctx, appCfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()

		if appCfg.Database.MigrateOnStart {
			if _, err := postgres.MigratePool(ctx, pool, migrations.FS); err != nil {
				logger.Error("migrate", slog.String("error", err.Error()))
				os.Exit(1)
			}
		}

		target = readers.NewService(logger,
			curriculum.New(pool),
			sample.New(pool),
			postgres.NewTxManager(pool),
			readersCfg,
		)
	}

	pipeline := seeder.NewPipeline(logger, target, manifest, *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
