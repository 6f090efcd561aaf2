package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/app"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/config"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/middleware"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/ui"
)

var (
	version = "dev"
	commit  = "none"
)

type serverFlags struct {
	envFile    string
	listenAddr string
}

func bindServerFlags(fs *pflag.FlagSet, f *serverFlags) {
	fs.StringVar(&f.envFile, "env-file", ".env", "path to a .env file loaded before reading the environment")
	fs.StringVar(&f.listenAddr, "listen", "", "HTTP listen address (overrides LISTEN_ADDR)")
}

func newRootCmd() *cobra.Command {
	var flags serverFlags

	rootCmd := &cobra.Command{
		Use:           "rentmanager-console",
		Short:         "Web console for the RentManager property API",
		Long:          "Server-rendered web console for managing users and browsing the audit history of a remote RentManager deployment.",
		Version:       fmt.Sprintf("%s (commit %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), &flags)
		},
	}
	bindServerFlags(rootCmd.Flags(), &flags)
	return rootCmd
}

func runServer(ctx context.Context, flags *serverFlags) error {
	// .env is optional; a missing file is not an error.
	if err := godotenv.Load(flags.envFile); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: could not load %s: %v\n", flags.envFile, err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flags.listenAddr != "" {
		cfg.ListenAddr = flags.listenAddr
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)
	for _, w := range cfg.Warnings {
		log.Warn(w)
	}

	application := app.New(app.Deps{Cfg: cfg, Logger: log})

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	})
	r.Handle("/metrics", promhttp.Handler())

	ui.MountRoutes(r, application.UI)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("console listening",
			"addr", cfg.ListenAddr,
			"api_base_url", cfg.APIBaseURL,
			"env", cfg.Env,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
