package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kevin07696/checkgen/internal/adapters/pdf"
	"github.com/kevin07696/checkgen/internal/adapters/report"
	"github.com/kevin07696/checkgen/internal/config"
	"github.com/kevin07696/checkgen/internal/services/book"
	"github.com/kevin07696/checkgen/pkg/observability"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	jobFile    string
	outFile    string
	reportFile string
	quiet      bool
	example    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.jobFile, "job", "", "YAML job file describing the issuer and payments")
	flag.StringVar(&opts.outFile, "out", "checks.pdf", "PDF file to write")
	flag.StringVar(&opts.reportFile, "report", "", "Optional report file (.xlsx, .xml or .txt)")
	flag.BoolVar(&opts.quiet, "quiet", false, "Do not print the report table to stdout")
	flag.BoolVar(&opts.example, "example", false, "Print an example job file and exit")
	flag.Parse()

	if opts.example {
		fmt.Print(config.ExampleJobYAML)
		return
	}

	if opts.jobFile == "" {
		fmt.Println("Usage: checkgen -job=<job.yaml> [-out=checks.pdf] [-report=report.xlsx] [-quiet]")
		fmt.Println("       checkgen -example > job.yaml")
		os.Exit(1)
	}

	cfg := config.LoadFromEnv()
	logger := initLogger(cfg.Logger)
	defer func() { _ = logger.Sync() }()

	if err := run(opts, cfg, logger, os.Stdout); err != nil {
		logger.Error("Check generation failed", zap.Error(err))
		os.Exit(1)
	}
}

// run executes one job: schedule, print, save, report
func run(opts options, cfg *config.Config, logger *zap.Logger, stdout io.Writer) error {
	job, err := config.LoadJob(opts.jobFile)
	if err != nil {
		return err
	}

	printer := book.NewPrinter(&job.Issuer, pdf.NewFactory(cfg.Fonts),
		book.WithStartingCheckNumber(job.CheckNumber(cfg.Output.StartingCheckNumber)),
		book.WithLogger(logger),
	)
	if err := job.Apply(printer); err != nil {
		return err
	}

	b, rep, err := printer.Print(job.EmptyChecksPolicy(), job.PrintType())
	if err != nil {
		return err
	}
	if err := b.Save(opts.outFile); err != nil {
		return err
	}

	if opts.reportFile != "" {
		w, err := report.ForPath(opts.reportFile)
		if err != nil {
			return err
		}
		if err := report.Save(opts.reportFile, w, rep); err != nil {
			return err
		}
		logger.Info("Saved report", zap.String("path", opts.reportFile), zap.String("format", w.Format()))
	}

	if !opts.quiet {
		if err := report.NewTableWriter().Write(stdout, rep); err != nil {
			return err
		}
	}

	if cfg.Metrics.TextfilePath != "" {
		// Metrics are best effort; the checks are already written.
		if err := observability.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
			logger.Warn("Failed to write metrics textfile",
				zap.String("path", cfg.Metrics.TextfilePath),
				zap.Error(err),
			)
		}
	}

	return nil
}

// initLogger initializes the logger
func initLogger(cfg config.LoggerConfig) *zap.Logger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		return zap.NewNop()
	}
	return logger
}
