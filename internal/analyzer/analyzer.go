// Package analyzer computes descriptive statistics over historical price
// series for a set of instruments versus a benchmark: volatility profiles,
// correlation and beta decomposition, volume behavior and volatility-regime
// shifts, plus the heuristic insights and strategy recommendations derived
// from them.
package analyzer

import (
	"github.com/rs/zerolog"

	"github.com/tradehunter/market-analyzer/internal/collector"
	"github.com/tradehunter/market-analyzer/internal/insight"
	"github.com/tradehunter/market-analyzer/internal/model"
)

// Options tunes the statistical edges of the analysis.
type Options struct {
	// ClusteringFallbackP substitutes for the Ljung-Box p-value when the
	// test cannot run on a series. The clustering flag is p > 0.05, so this
	// value decides what an untestable series reports.
	ClusteringFallbackP float64
	// LjungBoxLags is the lag count for the autocorrelation test.
	LjungBoxLags int
}

// Analyzer owns the fetched price table and its derived returns table and
// exposes independent read methods over them. It is not safe for concurrent
// use; every computation is recomputed on demand from the two cached tables.
type Analyzer struct {
	symbols   []string
	benchmark string
	lookback  int
	fetcher   collector.Fetcher
	opts      Options
	log       zerolog.Logger

	prices  *model.PriceTable
	returns *model.ReturnsTable
}

// New creates an Analyzer that fetches its data through the given Fetcher.
func New(fetcher collector.Fetcher, symbols []string, benchmark string, lookbackDays int, opts Options, log zerolog.Logger) *Analyzer {
	if benchmark == "" {
		benchmark = "SPY"
	}
	if lookbackDays <= 0 {
		lookbackDays = 252
	}
	if opts.LjungBoxLags <= 0 {
		opts.LjungBoxLags = 10
	}
	if opts.ClusteringFallbackP == 0 {
		opts.ClusteringFallbackP = 0.5
	}
	return &Analyzer{
		symbols:   symbols,
		benchmark: benchmark,
		lookback:  lookbackDays,
		fetcher:   fetcher,
		opts:      opts,
		log:       log.With().Str("component", "analyzer").Logger(),
	}
}

// NewFromTable creates an Analyzer over an already-built price table.
// Volume patterns need a fetcher and come back empty without one.
func NewFromTable(table *model.PriceTable, symbols []string, benchmark string, opts Options, log zerolog.Logger) *Analyzer {
	a := New(nil, symbols, benchmark, table.Len(), opts, log)
	a.setData(table)
	return a
}

// Symbols returns the symbols under analysis.
func (a *Analyzer) Symbols() []string { return a.symbols }

// Benchmark returns the benchmark symbol.
func (a *Analyzer) Benchmark() string { return a.benchmark }

// LookbackDays returns the configured lookback window.
func (a *Analyzer) LookbackDays() int { return a.lookback }

// FetchData builds the price and returns tables. Any fetch failure is fatal
// for the whole analysis; there is no partial table.
func (a *Analyzer) FetchData() error {
	col := collector.NewCollector(a.fetcher, a.symbols, a.benchmark, a.lookback, a.log)
	table, err := col.BuildPriceTable()
	if err != nil {
		return err
	}
	a.setData(table)
	return nil
}

func (a *Analyzer) setData(table *model.PriceTable) {
	a.prices = table
	a.returns = table.Returns()
}

func (a *Analyzer) ensureData() error {
	if a.returns == nil {
		return a.FetchData()
	}
	return nil
}

// TradingInsights evaluates the heuristic rule table over all metric
// families and returns one pipe-joined insight string per symbol.
func (a *Analyzer) TradingInsights() (map[string]string, error) {
	in, err := a.gatherInputs()
	if err != nil {
		return nil, err
	}
	return insight.Generate(a.symbols, in), nil
}

// StrategyRecommendations derives the per-symbol strategy configuration
// record from the volatility, beta and correlation metrics.
func (a *Analyzer) StrategyRecommendations() (map[string]*model.Recommendation, error) {
	in, err := a.gatherInputs()
	if err != nil {
		return nil, err
	}
	return insight.Recommend(a.symbols, in), nil
}

func (a *Analyzer) gatherInputs() (insight.Inputs, error) {
	vol, err := a.VolatilityMetrics()
	if err != nil {
		return insight.Inputs{}, err
	}
	_, benchCorrs, err := a.CorrelationMatrix()
	if err != nil {
		return insight.Inputs{}, err
	}
	beta, err := a.BetaMetrics()
	if err != nil {
		return insight.Inputs{}, err
	}
	return insight.Inputs{
		Volatility:            vol,
		Beta:                  beta,
		BenchmarkCorrelations: benchCorrs,
		Volume:                a.VolumePatterns(),
	}, nil
}
