package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/pncplay/casino-bot/internal/bet"
	"github.com/pncplay/casino-bot/internal/concurrency"
	"github.com/pncplay/casino-bot/internal/config"
	"github.com/pncplay/casino-bot/internal/database"
	"github.com/pncplay/casino-bot/internal/database/migrations"
	"github.com/pncplay/casino-bot/internal/database/postgres"
	"github.com/pncplay/casino-bot/internal/discord"
	"github.com/pncplay/casino-bot/internal/economy"
	"github.com/pncplay/casino-bot/internal/event"
	"github.com/pncplay/casino-bot/internal/logger"
	"github.com/pncplay/casino-bot/internal/metrics"
	"github.com/pncplay/casino-bot/internal/outcome"
	"github.com/pncplay/casino-bot/internal/paylink"
	"github.com/pncplay/casino-bot/internal/scorer"
	"github.com/pncplay/casino-bot/internal/server"
	"github.com/pncplay/casino-bot/internal/settlement"
	"github.com/pncplay/casino-bot/internal/winrate"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, logger.DefaultServiceName, cfg.Environment, false))

	pool, err := database.NewPool(context.Background(), cfg.GetDBConnString(), database.PoolConfig{
		MaxConns:        config.DefaultMaxConns,
		MaxConnIdleTime: config.DefaultMaxConnIdleTime,
		MaxConnLifetime: config.DefaultMaxConnLifetime,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := runMigrations(cfg.GetDBConnString()); err != nil {
		return err
	}

	// Repositories and core services
	repo := postgres.NewLedgerRepository(pool)
	locks := concurrency.NewLockManager()
	settlementSvc := settlement.NewService(repo, locks)

	bus := event.NewBus()
	metrics.NewEventCollector().Register(bus)

	// Optional collaborators. The interfaces stay nil when disabled so the
	// adjuster takes its fallbacks; assigning a nil pointer would not.
	var scorerSignal winrate.Scorer
	if c := scorer.NewCached(scorer.NewClient(cfg.ScorerURL, cfg.ScorerTimeout), scorer.DefaultCacheSize, scorer.DefaultCacheTTL); c != nil {
		scorerSignal = c
	}

	var paylinkClient paylink.Client
	var reserveSignal winrate.ReserveSignal
	payoutDisabled := cfg.PayoutDisabled
	if cfg.PaylinkURL != "" {
		paylinkClient = paylink.NewClient(cfg.PaylinkURL, cfg.PaylinkAPIKey, cfg.PaylinkTimeout)
		reserveSignal = paylink.NewReserveSignal(paylinkClient)
	} else {
		slog.Warn("No payment provider configured, payouts disabled")
		payoutDisabled = true
	}

	adjuster := winrate.NewAdjuster(scorerSignal, reserveSignal, cfg.ScorerTimeout, cfg.PaylinkTimeout)
	betSvc := bet.NewService(bet.NewRegistry(), repo, adjuster, outcome.NewResolver(), settlementSvc, bus)
	economySvc := economy.NewService(repo, settlementSvc, paylinkClient, bus, payoutDisabled)

	// Operational HTTP surface
	srv := server.NewServer(cfg.Port, pool)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server failed", "error", err)
		}
	}()

	// Discord surface
	var bot *discord.Bot
	if cfg.DiscordToken != "" {
		bot, err = discord.New(discord.Config{Token: cfg.DiscordToken, AppID: cfg.DiscordAppID}, &discord.Services{
			Bet:     betSvc,
			Economy: economySvc,
		})
		if err != nil {
			return err
		}
		bot.RegisterAll()
		if err := bot.Start(); err != nil {
			return err
		}
		if err := bot.RegisterCommands(); err != nil {
			return err
		}
	} else {
		slog.Warn("No Discord token configured, running HTTP only")
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	slog.Info("Shutting down")
	if bot != nil {
		bot.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// runMigrations applies the embedded goose migrations.
func runMigrations(connString string) error {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
