package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/overdraft/pkg/config"
	"github.com/yurifrl/overdraft/pkg/service"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "overdraft",
	})

	var (
		outputPath string
		bank       string
		rate       float64
		xlsx       bool
	)
	flag.StringVar(&outputPath, "o", "", "Output directory (default: same as input file)")
	flag.StringVar(&bank, "bank", "", "Institution: axis, sc or hdfc")
	flag.Float64Var(&rate, "rate", config.DefaultRate, "Annual interest rate in percent")
	flag.BoolVar(&xlsx, "xlsx", false, "Also write an .xlsx report")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		logger.Error("invalid usage", "args", args)
		fmt.Fprintf(os.Stderr, "Usage: overdraft-batch -bank axis|sc|hdfc [-rate 8] [-o output_dir] <directory>\n")
		os.Exit(1)
	}

	cfg := config.New(outputPath)
	cfg.Bank = bank
	cfg.Rate = rate
	cfg.XLSX = xlsx
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid flags", "error", err)
	}

	processor := service.NewProcessor(cfg, logger)
	if err := processor.ProcessDirectory(args[0]); err != nil {
		logger.Fatal("processing failed", "error", err)
	}
}
