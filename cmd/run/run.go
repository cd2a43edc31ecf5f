// Package run contains the command to run a graphd admin server.
package run

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/graphd-io/graphd/internal/build"
	"github.com/graphd-io/graphd/internal/httpapi"
	"github.com/graphd-io/graphd/internal/registry"
	"github.com/graphd-io/graphd/pkg/logger"
	"github.com/graphd-io/graphd/pkg/server"
	"github.com/graphd-io/graphd/pkg/storage"
	"github.com/graphd-io/graphd/pkg/storage/memory"
	"github.com/graphd-io/graphd/pkg/storage/sqlite"
)

func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the graphd admin server",
		Long:  "Run the graphd admin server.",
		Run:   run,
		Args:  cobra.NoArgs,
	}

	bindRunFlags(cmd)

	return cmd
}

// ReadConfig returns the graphd admin server configuration based on the
// values by viper. These values are taken by the flags by default, but they
// can also be taken from a config file or env variables.
func ReadConfig() (*Config, error) {
	config := DefaultConfig()

	viper.SetTypeByDefaultValue(true)
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, nil
}

func run(_ *cobra.Command, _ []string) {
	config, err := ReadConfig()
	if err != nil {
		panic(err)
	}

	if err := config.Verify(); err != nil {
		panic(err)
	}

	log := logger.MustNewLogger(config.Log.Format, config.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runServer(ctx, config, log); err != nil {
		log.Fatal("failed to run the graphd admin server", zap.Error(err))
	}
}

func openUserStore(ctx context.Context, config *Config) (storage.UserStore, error) {
	switch config.Datastore.Engine {
	case "memory":
		return memory.New(), nil
	case "sqlite":
		return sqlite.Open(ctx, config.Datastore.URI)
	default:
		return nil, fmt.Errorf("storage engine '%s' is unsupported", config.Datastore.Engine)
	}
}

func runServer(ctx context.Context, config *Config, log logger.Logger) error {
	users, err := openUserStore(ctx, config)
	if err != nil {
		return fmt.Errorf("initialize user directory: %w", err)
	}
	defer users.Close()

	transactions := registry.NewTransactionRegistry()
	connections := registry.NewConnectionRegistry()

	srv := server.New(&server.Dependencies{
		Logger:       log,
		Transactions: transactions,
		Connections:  connections,
		Users:        users,
	})

	handler := http.Handler(httpapi.New(srv, users, log))
	if config.HTTP.UpstreamTimeout > 0 {
		handler = http.TimeoutHandler(handler, config.HTTP.UpstreamTimeout, "request timed out")
	}

	httpServer := &http.Server{
		Addr:    config.HTTP.Addr,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(
			"graphd admin server starting",
			zap.String("version", build.Version),
			zap.String("date", build.Date),
			zap.String("commit", build.Commit),
			zap.String("addr", httpServer.Addr),
			zap.String("datastore-engine", config.Datastore.Engine),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down the graphd admin server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shut down http server: %w", err)
	}

	return nil
}
