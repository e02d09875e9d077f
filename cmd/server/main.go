package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/yurifrl/overdraft/pkg/config"
	"github.com/yurifrl/overdraft/pkg/server"
)

func main() {
	flags := pflag.NewFlagSet("overdraft-server", pflag.ExitOnError)
	cfgFile := flags.StringP("config", "c", "", "Config file (default is ./config.yaml)")
	flags.String("addr", config.DefaultAddr, "Listen address")
	flags.String("bank", "", "Default institution: axis, sc or hdfc")
	flags.Float64("rate", config.DefaultRate, "Default annual interest rate in percent")
	flags.Bool("debug", false, "Enable debug logging")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Build(*cfgFile, flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "overdraft",
	})
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	srv := server.New(cfg, logger)
	logger.Info("starting server", "addr", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
