package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"goyo/internal/bootstrap"
	"goyo/internal/bootstrap/logging"
	"goyo/internal/dispatcher"
	"goyo/internal/errs"
	"goyo/internal/usecase/wellbeing"
)

// serveCmd runs the HTTP API until interrupted.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the wellbeing HTTP API",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, svc *wellbeing.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		server := &http.Server{
			Addr:              app.Config.Server.Addr,
			Handler:           dispatcher.New(svc).Router(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		serveErr := make(chan error, 1)
		go func() {
			logging.Info(ctx, "http server listening", slog.String("addr", server.Addr))
			serveErr <- server.ListenAndServe()
		}()

		select {
		case err := <-serveErr:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return errs.Wrap(err, "serve http")
			}
		case <-signalCtx.Done():
			logging.Info(ctx, "shutdown signal received")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return errs.Wrap(err, "shutdown http server")
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), "server stopped"); err != nil {
			return errs.Wrap(err, "write serve output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
