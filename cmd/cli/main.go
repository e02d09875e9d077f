package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/yurifrl/overdraft/pkg/config"
	"github.com/yurifrl/overdraft/pkg/parser"
	"github.com/yurifrl/overdraft/pkg/plan"
	"github.com/yurifrl/overdraft/pkg/service"
	"github.com/yurifrl/overdraft/pkg/sheet"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "overdraft",
	Short:         "Overdraft interest from bank statement exports",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

func newLogger(cfg *config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "overdraft",
	})
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportCaller(true)
	}
	return logger
}

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <input_path>",
	Short: "Compute overdraft interest for statement files, directories or globs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		preview, _ := cmd.Flags().GetBool("preview")
		processor := service.NewProcessor(cfg, logger)
		processor.SetPreview(preview)

		matches, err := filepath.Glob(args[0])
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			return fmt.Errorf("no files found matching pattern %s", args[0])
		}

		failed := 0
		for _, match := range matches {
			fileInfo, err := os.Stat(match)
			if err != nil {
				logger.Warn("failed to stat file", "error", err, "file", match)
				failed++
				continue
			}

			if fileInfo.IsDir() {
				err = processor.ProcessDirectory(match)
			} else {
				err = processor.ProcessFile(match)
			}
			if err != nil {
				logger.Error("failed to process", "error", err, "path", match)
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d input(s) failed", failed, len(matches))
		}
		return nil
	},
}

func loadPlan(cmd *cobra.Command, path string) (*config.Config, *service.Processor, *plan.Plan, error) {
	cfg, err := config.Build(cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, nil, err
	}
	p, err := plan.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}
	if cfg.Output == "" {
		cfg.Output = p.Defaults.Output
	}
	return cfg, service.NewProcessor(cfg, newLogger(cfg)), p, nil
}

func runPlan(cmd *cobra.Command, path string, preview bool) error {
	cfg, processor, p, err := loadPlan(cmd, path)
	if err != nil {
		return err
	}
	stmts, err := p.Resolve(cfg.Rate)
	if err != nil {
		return err
	}

	if preview {
		fmt.Printf("Plan preview for %s\n", path)
		p.Print(os.Stdout)
		fmt.Println()
	}
	processor.SetPreview(preview)
	for _, st := range stmts {
		if err := processor.ProcessStatement(st); err != nil {
			return fmt.Errorf("%s: %w", st.FilePath, err)
		}
	}
	return nil
}

var planCmd = &cobra.Command{
	Use:   "plan <plan_file>",
	Short: "Preview the interest report for every statement in a YAML plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd, args[0], true)
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply <plan_file>",
	Short: "Write interest reports for every statement in a YAML plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd, args[0], false)
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Dump the normalized table and parsed rows of a statement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		inst, err := cfg.Institution()
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		grid, err := sheet.Read(data, args[0])
		if err != nil {
			return err
		}

		p := parser.New(newLogger(cfg))
		table, err := p.Table(grid, inst)
		if err != nil {
			return err
		}

		printer := pp.New()
		printer.SetOutput(os.Stdout)
		printer.SetColoringEnabled(false)
		printer.Println(table.Columns)

		rows, err := p.Parse(grid, inst)
		if err != nil {
			return err
		}
		for _, row := range rows {
			printer.Println(map[string]any{
				"line":    row.Line,
				"date":    row.Date.Format("2006-01-02"),
				"balance": row.Balance.String(),
				"extra":   row.Extra,
			})
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringP("bank", "b", "", "Institution: axis, sc or hdfc")
	rootCmd.PersistentFlags().Float64P("rate", "r", config.DefaultRate, "Annual interest rate in percent")

	convertCmd.Flags().StringP("output", "o", "", "Output directory (default: next to the input file)")
	convertCmd.Flags().Bool("xlsx", false, "Also write an .xlsx report")
	convertCmd.Flags().Bool("preview", false, "Print the report instead of writing files")

	applyCmd.Flags().StringP("output", "o", "", "Output directory (overrides the plan's defaults.output)")
	applyCmd.Flags().Bool("xlsx", false, "Also write an .xlsx report")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
