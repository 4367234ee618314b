// cmd/reef/main.go
package main

import (
	"fmt"
	stlog "log"
	"os"

	"github.com/lorikeet/reef/internal/app"
	"github.com/lorikeet/reef/internal/config"
	"github.com/lorikeet/reef/internal/logger"
)

var version = "dev"

func main() {
	flags := &config.Flags{}
	args := flags.ParseFlags()

	if flags.Version != nil && *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		os.Exit(0)
	}

	configPath := ""
	if flags.ConfigFilePath != nil {
		configPath = *flags.ConfigFilePath
	}
	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		stlog.Fatalf("configuration error: %v", err)
	}

	closer, err := logger.Init(cfg.Logger)
	if err != nil {
		stlog.Fatalf("logger initialization failed: %v", err)
	}
	defer closer.Close()

	startPath := "."
	if len(args) > 0 {
		startPath = args[0]
	}

	logger.Infof("starting %s %s in %s", config.AppName, version, startPath)

	reefApp, err := app.New(cfg, startPath)
	if err != nil {
		logger.Errorf("initialization failed: %v", err)
		stlog.Fatalf("initialization failed: %v", err)
	}

	if err := reefApp.Run(); err != nil {
		logger.Errorf("application exited with error: %v", err)
		os.Exit(1)
	}
}
