package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	v1 "github.com/spendwise-app/backend/internal/controllers/v1"
	"github.com/spendwise-app/backend/internal/models"
	"github.com/spendwise-app/backend/internal/router"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  serve,
}

func serve(cmd *cobra.Command, _ []string) error {
	db, err := connect()
	if err != nil {
		return err
	}
	defer closeDB(db)

	created, err := models.SeedCategories(db)
	if err != nil {
		return err
	}
	if created > 0 {
		log.Info().Int("count", created).Msg("Created default categories")
	}

	r, teardown, err := router.Config(cfg)
	if err != nil {
		return err
	}
	defer teardown()

	router.AttachRoutes(v1.New(db, cfg.Locale()), r.Group("/"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("url", cfg.APIURL).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	if err != nil {
		return err
	}

	log.Info().Msg("Server stopped")
	return nil
}
