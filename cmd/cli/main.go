package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/studentdesk/internal/buildinfo"
	"github.com/dmitrijs2005/studentdesk/internal/cli"
	"github.com/dmitrijs2005/studentdesk/internal/config"
	"github.com/dmitrijs2005/studentdesk/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
