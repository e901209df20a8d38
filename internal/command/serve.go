package command

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/norskhelsenett/hecevent/internal/api"
	splunkclient "github.com/norskhelsenett/hecevent/pkg/clients/splunk"
)

const shutdownTimeout = 10 * time.Second

// ServeCommand handles the hecevent serve command
type ServeCommand struct{}

// NewServeCommand creates a new hecevent serve command
func NewServeCommand() *cobra.Command {
	sc := &ServeCommand{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the create event and configuration views over HTTP",
		Long: `Run the HTTP bridge a host UI uses to initialise, validate, switch and
send create event forms, and to edit the extension configuration.

The collector URL and token are taken from each send request, not from the
configuration.

Examples:
  hecevent serve
  hecevent serve --listen 127.0.0.1:9000`,
		RunE: sc.Run,
	}

	cmd.Flags().String("listen", "", "Listen address (overrides configuration)")

	return cmd
}

// Run executes the serve command until its context is canceled
func (c *ServeCommand) Run(cmd *cobra.Command, args []string) error {
	listen, _ := cmd.Flags().GetString("listen")

	ctx := cmd.Context()
	logger := GetLogger(ctx)

	cfg, err := RequireConfig(ctx)
	if err != nil {
		return err
	}
	if listen != "" {
		cfg.Listen = listen
	}

	client := splunkclient.NewSplunkClient(clientOptions(cfg, logger)...)
	e := api.NewServer(api.NewHandler(client, logger, cmd.Root().Version), logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("listen", cfg.Listen))
		errCh <- e.Start(cfg.Listen)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
