package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/yungbote/asmtgen/internal/config"
	"github.com/yungbote/asmtgen/internal/generators/assessment"
	"github.com/yungbote/asmtgen/internal/platform/idgen"
	"github.com/yungbote/asmtgen/internal/platform/logger"
	"github.com/yungbote/asmtgen/internal/runner"
	"github.com/yungbote/asmtgen/internal/writers/csvstar"
	"github.com/yungbote/asmtgen/internal/writers/dbstar"
	"github.com/yungbote/asmtgen/internal/writers/xmlout"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (optional)")
	flag.Parse()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("Config load failed", "error", err)
		os.Exit(1)
	}

	// Engine
	idg := idgen.New()
	engine := assessment.NewEngine(idg, log, cfg.ItemBankSize)
	batchGuid := idg.NewGUID()

	// Outputs
	outputs := []runner.OutputWorker{
		csvstar.New(cfg.Outputs.CSVRoot, batchGuid, log),
		xmlout.New(cfg.Outputs.XMLRoot, log),
	}
	if cfg.Outputs.Postgres {
		dbService, err := dbstar.NewPostgresService(batchGuid, log)
		if err != nil {
			log.Error("Postgres init failed", "error", err)
			os.Exit(1)
		}
		outputs = append(outputs, dbService)
	}

	// Run
	run := runner.New(cfg, engine, idg, log, outputs...)
	stats, err := run.Run(context.Background())
	if err != nil {
		log.Error("Generation failed", "error", err)
		os.Exit(1)
	}
	log.Info("Done",
		"batch_guid", batchGuid,
		"students", stats.Students,
		"outcomes", stats.Outcomes,
	)
}
