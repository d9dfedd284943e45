package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradehunter/market-analyzer/internal/analyzer"
	"github.com/tradehunter/market-analyzer/internal/collector"
	"github.com/tradehunter/market-analyzer/internal/config"
	"github.com/tradehunter/market-analyzer/internal/logger"
	"github.com/tradehunter/market-analyzer/internal/notifier"
	"github.com/tradehunter/market-analyzer/internal/report"
	"github.com/tradehunter/market-analyzer/internal/scheduler"
)

func main() {
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		l := logger.New(logger.Config{})
		l.Fatal().Err(err).Msg("load config")
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	log.Info().Msg("market analyzer starting")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	var fetcher collector.Fetcher
	switch cfg.DataSource.Provider {
	case "financego":
		fetcher = collector.NewFinanceGoFetcher()
	case "mock":
		fetcher = &collector.MockFetcher{BasePrice: 100}
	default:
		fetcher = collector.NewYahooFetcher(cfg.DataSource.Proxy)
	}
	log.Info().Str("source", fetcher.Name()).Msg("data source selected")

	var tg *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tg = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.DataSource.Proxy, log)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	run := func() { runAnalysis(ctx, cfg, fetcher, tg, log) }

	// No schedule configured: single run, then exit.
	if cfg.Schedule.Cron == "" {
		run()
		return
	}

	sched := scheduler.New(log)
	if err := sched.Register(cfg.Schedule.Cron, run); err != nil {
		log.Fatal().Err(err).Msg("register analysis job")
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, executing analysis now")
		go run()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Info().Msg("shutdown signal received, stopping")
	cancel()
}

func runAnalysis(ctx context.Context, cfg *config.Config, fetcher collector.Fetcher, tg *notifier.TelegramNotifier, log zerolog.Logger) {
	a := analyzer.New(fetcher, cfg.Symbols, cfg.Benchmark, cfg.LookbackDays, analyzer.Options{
		ClusteringFallbackP: cfg.Analysis.ClusteringFallbackP,
		LjungBoxLags:        cfg.Analysis.LjungBoxLags,
	}, log)

	log.Info().Int("symbols", len(cfg.Symbols)).Msg("fetching market data")
	if err := a.FetchData(); err != nil {
		log.Error().Err(err).Msg("data fetch failed, aborting analysis")
		return
	}

	vol, err := a.VolatilityMetrics()
	if err != nil {
		log.Error().Err(err).Msg("volatility metrics")
		return
	}
	beta, err := a.BetaMetrics()
	if err != nil {
		log.Error().Err(err).Msg("beta metrics")
		return
	}
	regimes, err := a.RegimeChanges()
	if err != nil {
		log.Error().Err(err).Msg("regime changes")
		return
	}
	for sym, flips := range regimes {
		log.Debug().Str("symbol", sym).Int("regime_shifts", len(flips)).Msg("regime detection done")
	}

	insights, err := a.TradingInsights()
	if err != nil {
		log.Error().Err(err).Msg("trading insights")
		return
	}
	recs, err := a.StrategyRecommendations()
	if err != nil {
		log.Error().Err(err).Msg("strategy recommendations")
		return
	}

	rep := &report.Report{
		GeneratedAt:     time.Now(),
		Symbols:         cfg.Symbols,
		Benchmark:       cfg.Benchmark,
		LookbackDays:    cfg.LookbackDays,
		Volatility:      vol,
		Beta:            beta,
		Insights:        insights,
		Recommendations: recs,
	}
	exporter := &report.FileExporter{Dir: cfg.Report.OutputDir, Filename: cfg.Report.Filename}
	path, err := exporter.Export(rep)
	if err != nil {
		log.Error().Err(err).Msg("export report")
		return
	}
	log.Info().Str("path", path).Msg("analysis report exported")

	for _, sym := range cfg.Symbols {
		if insight, ok := insights[sym]; ok {
			log.Info().Str("symbol", sym).Str("insight", insight).Msg("trading insight")
		}
	}

	if tg != nil {
		summary := notifier.FormatInsightSummary(cfg.Symbols, insights, path)
		if err := tg.SendWithRetry(ctx, summary, 3); err != nil {
			log.Error().Err(err).Msg("send summary notification")
		}
	}
}
