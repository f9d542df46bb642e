package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantrail/fundgen/internal/logging"
	"github.com/quantrail/fundgen/internal/web"
)

var (
	serveListen     string
	serveSessionTTL int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the embedded web form UI",
	Long: `Serve a web form for generating datasets interactively. Generated
tables are held in memory for a limited time and can be downloaded as
CSV; when a connection string is configured they can also be uploaded
to the database.

Example:
  fundgen serve --listen :8080 --connection "postgres://..."`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "",
		"address to listen on (default: :8080)")
	serveCmd.Flags().IntVar(&serveSessionTTL, "session-ttl", 0,
		"minutes generated results stay downloadable (default: 30)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveListen != "" {
		cfg.Serve.Listen = serveListen
	}
	if serveSessionTTL > 0 {
		cfg.Serve.SessionTTLMinutes = serveSessionTTL
	}

	if err := cfg.ValidateServe(); err != nil {
		return err
	}

	srv := web.New(web.Config{
		Connection: cfg.Connection,
		SessionTTL: time.Duration(cfg.Serve.SessionTTLMinutes) * time.Minute,
	})

	httpSrv := &http.Server{
		Addr:              cfg.Serve.Listen,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info().
			Str("listen", cfg.Serve.Listen).
			Bool("upload_enabled", cfg.Connection != "").
			Msg("Web UI listening")
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		logging.Info().Msg("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	return nil
}
