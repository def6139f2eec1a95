package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-reorgscan/internal/blocklog/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Source interface {
		Load(ctx context.Context) (model.Blockchain, error)
	}
	AnalyzerMetrics interface {
		ObserveLoad(err error, blocks int, started time.Time)
		ObserveDedup(input, unique int)
		ObserveForks(forks int)
		ObserveAnalyze(err error, started time.Time)
		ObserveBranches(err error, branches int, started time.Time)
	}
)

// MetricsFactory returns metrics labeled with ticker.
type MetricsFactory func(ticker string) AnalyzerMetrics
