// Command rootwalkd serves iterative DNS lookups over a REST API, with
// a SQLite lookup journal and process statistics.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dkoster/rootwalk/internal/api"
	"github.com/dkoster/rootwalk/internal/api/handlers"
	"github.com/dkoster/rootwalk/internal/config"
	"github.com/dkoster/rootwalk/internal/history"
	"github.com/dkoster/rootwalk/internal/logging"
	"github.com/dkoster/rootwalk/internal/resolvers"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to JSON configuration file (or set ROOTWALK_CONFIG)")
		host       = flag.String("host", "", "Override API bind host")
		port       = flag.Int("port", 0, "Override API bind port")
		jsonLogs   = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *host != "" {
		cfg.API.Host = *host
	}
	if *port != 0 {
		cfg.API.Port = *port
	}
	if *jsonLogs {
		cfg.Logging.Format = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}

	logger := logging.Configure(logging.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		IncludePID:  cfg.Logging.IncludePID,
		ExtraFields: cfg.Logging.ExtraFields,
	})

	var journal handlers.Journal
	if cfg.History.Enabled {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open history: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		journal = store
	}

	transport := resolvers.NewUDPTransport(cfg.Resolver.Timeout)
	transport.RecvSize = cfg.Resolver.RecvSize
	transport.Port = cfg.Resolver.Port
	resolver := resolvers.NewIterative(transport,
		resolvers.WithMaxHops(cfg.Resolver.MaxHops),
		resolvers.WithLogger(logger),
	)

	h := handlers.New(cfg, logger, resolver, journal, resolvers.NewLookupStats())
	srv := api.New(cfg, logger, h)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(ctx)
	}()

	logger.Info("rootwalkd listening",
		"addr", srv.Addr(),
		"roots", cfg.Resolver.RootServers,
		"history", cfg.History.Enabled,
	)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
			os.Exit(1)
		}
	}
}
