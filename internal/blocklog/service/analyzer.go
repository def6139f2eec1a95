// Package service wires block log loading, deduplication, fork detection and
// chain walking into a single analysis run.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-reorgscan/internal/blocklog/graph"
	"github.com/goodnatureofminers/blockinsight7000-reorgscan/internal/blocklog/model"
	"github.com/goodnatureofminers/blockinsight7000-reorgscan/pkg/workerpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrBlockNotFound is returned when a requested hash is not part of the batch.
var ErrBlockNotFound = errors.New("block not found")

// Result is the outcome of analyzing one batch. All fields are read-only.
type Result struct {
	// Ticker labels the batch: the configured ticker, or the batch's own.
	Ticker string
	// Input is the number of records before deduplication.
	Input int
	// Blocks is the deduplicated batch in first-seen order.
	Blocks model.Blockchain
	Index  map[model.BlockHash]model.Block
	// Forks lists parent hashes claimed by more than one block, sorted.
	Forks []model.BlockHash
	Graph *graph.Graph
}

// Duplicates returns the number of records dropped by deduplication.
func (r *Result) Duplicates() int {
	return r.Input - len(r.Blocks)
}

// ForkPoint describes every branch observed below one contested parent hash.
type ForkPoint struct {
	Parent model.BlockHash
	// Branches holds one path per reachable tip, each starting at a child of Parent.
	Branches [][]model.Block
}

// AnalyzerService analyzes block log batches.
type AnalyzerService struct {
	logger      *zap.Logger
	source      Source
	newMetrics  MetricsFactory
	ticker      string
	workerCount int
}

// NewAnalyzerService builds an AnalyzerService with the given dependencies.
// An empty ticker is taken from each loaded batch.
func NewAnalyzerService(
	source Source,
	newMetrics MetricsFactory,
	ticker string,
	workerCount int,
	logger *zap.Logger,
) (*AnalyzerService, error) {
	if source == nil {
		return nil, errors.New("block log source is required")
	}
	if newMetrics == nil {
		return nil, errors.New("analyzer metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if ticker != "" {
		logger = logger.With(zap.String("ticker", ticker))
	}
	if workerCount < 1 {
		workerCount = defaultWorkerCount
	}
	return &AnalyzerService{
		logger:      logger,
		source:      source,
		newMetrics:  newMetrics,
		ticker:      ticker,
		workerCount: workerCount,
	}, nil
}

// Run loads the batch, deduplicates it and derives the fork set, the hash
// index and the block graph.
func (s *AnalyzerService) Run(ctx context.Context) (res *Result, err error) {
	started := time.Now()
	var metrics AnalyzerMetrics
	defer func() {
		metrics.ObserveAnalyze(err, started)
	}()

	loadStarted := time.Now()
	chain, err := s.source.Load(ctx)

	ticker, logger := s.ticker, s.logger
	if ticker == "" {
		ticker = chain.Ticker()
		logger = logger.With(zap.String("ticker", ticker))
	}
	metrics = s.newMetrics(ticker)
	metrics.ObserveLoad(err, len(chain), loadStarted)
	if err != nil {
		logger.Error("load batch failed", zap.Error(err))
		return nil, fmt.Errorf("load batch: %w", err)
	}

	unique := graph.Dedup(chain)
	metrics.ObserveDedup(len(chain), len(unique))
	logger.Debug("batch deduplicated",
		zap.Int("input", len(chain)),
		zap.Int("unique", len(unique)),
	)

	res = &Result{Ticker: ticker, Input: len(chain), Blocks: unique}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		index, err := graph.IndexByHashStrict(unique)
		if err != nil {
			return fmt.Errorf("build hash index: %w", err)
		}
		res.Index = index
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		res.Forks = graph.SortedHashes(graph.DuplicatedParents(unique))
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		res.Graph = graph.NewGraph(unique)
		return nil
	})
	if err = g.Wait(); err != nil {
		logger.Error("analyze batch failed", zap.Error(err))
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	metrics.ObserveForks(len(res.Forks))

	logger.Info("batch analyzed",
		zap.Int("blocks", len(unique)),
		zap.Int("duplicates", res.Duplicates()),
		zap.Int("forks", len(res.Forks)),
		zap.Int("transactions", unique.TransactionCount()),
	)
	return res, nil
}

// ForkBranches enumerates the branches below every fork point of res.
func (s *AnalyzerService) ForkBranches(ctx context.Context, res *Result) ([]ForkPoint, error) {
	logger := s.logger.Named("forkBranches")
	metrics := s.newMetrics(res.Ticker)
	return workerpool.Map(ctx, s.workerCount, res.Forks, func(ctx context.Context, parent model.BlockHash) (fp ForkPoint, err error) {
		started := time.Now()
		defer func() {
			metrics.ObserveBranches(err, len(fp.Branches), started)
		}()

		fp.Parent = parent
		for _, child := range res.Graph.Children(parent) {
			if err = ctx.Err(); err != nil {
				return ForkPoint{}, err
			}
			branches, walkErr := res.Graph.Branches(child)
			if walkErr != nil {
				logger.Error("walk branches failed", zap.String("parent", string(parent)), zap.Error(walkErr))
				return ForkPoint{}, fmt.Errorf("walk fork %s: %w", parent, walkErr)
			}
			fp.Branches = append(fp.Branches, branches...)
		}
		logger.Debug("fork walked", zap.String("parent", string(parent)), zap.Int("branches", len(fp.Branches)))
		return fp, nil
	})
}

// ChainFrom follows the first child of every block starting at hash.
func (s *AnalyzerService) ChainFrom(res *Result, hash model.BlockHash) ([]model.Block, error) {
	start, ok := res.Graph.Lookup(hash)
	if !ok {
		return nil, fmt.Errorf("chain from %s: %w", hash, ErrBlockNotFound)
	}
	chain, err := res.Graph.Chain(start)
	if err != nil {
		return nil, fmt.Errorf("chain from %s: %w", hash, err)
	}
	return chain, nil
}

// LongestFrom returns the longest observed descendant path starting at hash.
func (s *AnalyzerService) LongestFrom(res *Result, hash model.BlockHash) ([]model.Block, error) {
	start, ok := res.Graph.Lookup(hash)
	if !ok {
		return nil, fmt.Errorf("longest from %s: %w", hash, ErrBlockNotFound)
	}
	chain, err := res.Graph.Longest(start)
	if err != nil {
		return nil, fmt.Errorf("longest from %s: %w", hash, err)
	}
	return chain, nil
}
