package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/devfolio/devfolio/blog/application"
	"github.com/devfolio/devfolio/blog/persistence"
	"github.com/devfolio/devfolio/internal/middleware"
	"github.com/devfolio/devfolio/internal/rest"
)

const (
	shutdownTimeout = 5 * time.Second
	rebuildDebounce = 500 * time.Millisecond
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the content API and watches content for changes",
	Long: `The serve command builds the post collection, exposes it over a
read-only HTTP API, and watches the content directory so edits show up
without a restart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := buildRepository()
		if err != nil {
			return err
		}
		live := persistence.NewLivePostRepository(repo)

		router := gin.New()
		router.Use(middleware.LoggingMiddleware())
		router.Use(gin.CustomRecovery(middleware.HandlePanics()))
		rest.NewApi(router, live, application.NewMarkdownRenderer(), appConfig)

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create content watcher: %w", err)
		}
		defer watcher.Close()
		if err := watcher.Add(appConfig.ContentDir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", appConfig.ContentDir, err)
		}
		go watchContent(watcher, live)

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", appConfig.Port),
			Handler: router,
		}

		go func() {
			log.Info().Int("port", appConfig.Port).Msg("Starting server")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("Failed to start server")
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt)
		<-quit

		log.Info().Msg("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}

		log.Info().Msg("Server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// watchContent rebuilds the post collection shortly after the content
// directory settles. Each rebuild produces a fresh immutable repository that
// is swapped in whole.
func watchContent(watcher *fsnotify.Watcher, live *persistence.LivePostRepository) {
	var rebuild *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if rebuild != nil {
				rebuild.Stop()
			}
			rebuild = time.AfterFunc(rebuildDebounce, func() {
				repo, err := buildRepository()
				if err != nil {
					log.Error().Err(err).Msg("Failed to rebuild post collection")
					return
				}
				live.Swap(repo)
				log.Info().Int("posts", len(repo.All())).Msg("Post collection rebuilt")
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("Content watcher error")
		}
	}
}
