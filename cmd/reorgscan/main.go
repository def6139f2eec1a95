// Command reorgscan reconstructs chain structure from a block log batch and
// reports fork points (parent hashes claimed by more than one block).
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/blockinsight7000-reorgscan/internal/blocklog/decode"
	"github.com/goodnatureofminers/blockinsight7000-reorgscan/internal/blocklog/model"
	"github.com/goodnatureofminers/blockinsight7000-reorgscan/internal/blocklog/report"
	"github.com/goodnatureofminers/blockinsight7000-reorgscan/internal/blocklog/service"
	"github.com/goodnatureofminers/blockinsight7000-reorgscan/internal/metrics"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Input            string `long:"input" env:"REORGSCAN_INPUT" description:"path to the block log JSON file" required:"true"`
	Ticker           string `long:"ticker" env:"REORGSCAN_TICKER" description:"ticker used to label metrics and logs, taken from the batch when empty"`
	Strict           bool   `long:"strict" env:"REORGSCAN_STRICT" description:"validate hashes, addresses and transaction block references"`
	Branches         bool   `long:"branches" env:"REORGSCAN_BRANCHES" description:"print a summary of every branch below each fork point"`
	ChainFrom        string `long:"chain-from" env:"REORGSCAN_CHAIN_FROM" description:"print the chain followed from this block hash"`
	Longest          bool   `long:"longest" env:"REORGSCAN_LONGEST" description:"with --chain-from, follow the longest branch instead of the first child"`
	ShowTransactions bool   `long:"show-transactions" env:"REORGSCAN_SHOW_TRANSACTIONS" description:"with --chain-from, print the transactions of every block in the chain"`
	Workers          int    `long:"workers" env:"REORGSCAN_WORKERS" description:"workers used to walk fork branches" default:"4"`
	MetricsTextfile  string `long:"metrics-textfile" env:"REORGSCAN_METRICS_TEXTFILE" description:"write Prometheus metrics to this file after the run"`
	Debug            bool   `long:"debug" env:"REORGSCAN_DEBUG" description:"enable debug logging"`
}

func main() {
	cfg := config{}

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Fatal("reorgscan failed", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if !debug {
		zcfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return zcfg.Build()
}

func run(ctx context.Context, cfg config, logger *zap.Logger, out io.Writer) (err error) {
	if cfg.MetricsTextfile != "" {
		defer func() {
			if werr := metrics.WriteTextfile(cfg.MetricsTextfile); werr != nil {
				logger.Error("failed to write metrics", zap.String("path", cfg.MetricsTextfile), zap.Error(werr))
			}
		}()
	}

	source := decode.NewFileSource(cfg.Input, &decode.Decoder{Strict: cfg.Strict})
	newMetrics := func(ticker string) service.AnalyzerMetrics {
		return metrics.NewAnalyzer(ticker)
	}
	svc, err := service.NewAnalyzerService(source, newMetrics, cfg.Ticker, cfg.Workers, logger)
	if err != nil {
		return fmt.Errorf("init analyzer: %w", err)
	}

	res, err := svc.Run(ctx)
	if err != nil {
		return err
	}
	if err := report.WriteReorgCount(out, len(res.Forks)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if cfg.Branches {
		if err := writeBranches(ctx, svc, res, out); err != nil {
			return err
		}
	}
	if cfg.ChainFrom != "" {
		if err := writeChain(svc, res, cfg, out); err != nil {
			return err
		}
	}
	return nil
}

func writeBranches(ctx context.Context, svc *service.AnalyzerService, res *service.Result, out io.Writer) error {
	forks, err := svc.ForkBranches(ctx, res)
	if err != nil {
		return err
	}
	for _, fp := range forks {
		for i, br := range fp.Branches {
			name := fmt.Sprintf("Fork at %s, branch %d of %d", fp.Parent, i+1, len(fp.Branches))
			if err := report.WriteChainSummary(out, name, br); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
		}
	}
	return nil
}

func writeChain(svc *service.AnalyzerService, res *service.Result, cfg config, out io.Writer) error {
	hash := model.BlockHash(cfg.ChainFrom)
	name := "Chain from " + cfg.ChainFrom
	follow := svc.ChainFrom
	if cfg.Longest {
		name = "Longest chain from " + cfg.ChainFrom
		follow = svc.LongestFrom
	}

	chain, err := follow(res, hash)
	if err != nil {
		return err
	}
	if err := report.WriteChainSummary(out, name, chain); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if !cfg.ShowTransactions {
		return nil
	}
	for _, b := range chain {
		if len(b.Transactions) == 0 {
			continue
		}
		if _, err := fmt.Fprintln(out, report.BlockLine(b)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if err := report.WriteTransactions(out, b); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
