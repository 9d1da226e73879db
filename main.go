package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/pietro1412/fantacontratti/config"
	"github.com/pietro1412/fantacontratti/controller"
	"github.com/pietro1412/fantacontratti/metrics"
	"github.com/pietro1412/fantacontratti/platforms/lega"
	"github.com/pietro1412/fantacontratti/web"
	"golang.org/x/oauth2"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	var tokenSource oauth2.TokenSource
	if cfg.APIToken != "" {
		tokenSource = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIToken})
	}

	legaClient, err := lega.New(cfg.LegaURL, tokenSource)
	if err != nil {
		log.Fatalf("error creating lega client: %v", err)
	}

	clock := clock.New()
	m := metrics.New()

	ctrl, err := controller.New(clock, legaClient, logger, m, cfg.LeagueID, cfg.MemberID, cfg.DebounceDelay())
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}
	defer ctrl.Close()

	// The first load can fail without taking the whole console down; the
	// reload endpoint retries against the same state.
	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := ctrl.Load(loadCtx); err != nil {
		logger.Error("initial player load failed", "err", err)
	}
	cancel()

	server, err := web.NewServer(cfg.Port, ctrl, m, logger)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			logger.Error("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	logger.Info("server shutdown")
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
