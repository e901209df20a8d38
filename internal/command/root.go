// Package command implements the hecevent commands
package command

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/norskhelsenett/hecevent/internal/config"
	splunkclient "github.com/norskhelsenett/hecevent/pkg/clients/splunk"
)

// DefaultConfigFile is read from the working directory when --config is not given.
const DefaultConfigFile = "hecevent.yaml"

// AutoChannel asks for a generated request channel.
const AutoChannel = "auto"

// NewRootCommand creates the hecevent root command with all subcommands attached
func NewRootCommand(version string) *cobra.Command {
	var (
		configPath string
		debug      bool
		url        string
		token      string
	)

	cmd := &cobra.Command{
		Use:   "hecevent",
		Short: "hecevent - Build and send Splunk HTTP Event Collector events",
		Long: `hecevent edits, validates and dispatches the events of a Splunk HEC
"create event" action.

Settings are read from JSON or YAML files. The collector URL and token come
from the configuration file, the HEC_URL and HEC_TOKEN environment variables
or the --url and --token flags, in increasing order of precedence.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(debug)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if url != "" {
				cfg.URL = url
			}
			if token != "" {
				cfg.Token = token
			}

			ctx := WithLogger(cmd.Context(), logger)
			cmd.SetContext(WithConfig(ctx, cfg))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = GetLogger(cmd.Context()).Sync()
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", DefaultConfigFile, "Configuration file (JSON or YAML)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&url, "url", "", "HEC collector URL (overrides configuration)")
	cmd.PersistentFlags().StringVar(&token, "token", "", "HEC token (overrides configuration)")

	cmd.AddCommand(
		NewSendCommand(),
		NewValidateCommand(),
		NewInitCommand(),
		NewBuildCommand(),
		NewFlattenCommand(),
		NewUnflattenCommand(),
		NewCheckCommand(),
		NewServeCommand(),
	)

	cmd.SetVersionTemplate("hecevent version {{.Version}}\n")

	return cmd
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// clientOptions maps the transport settings of cfg onto the Splunk client.
func clientOptions(cfg config.Config, logger *zap.Logger) []splunkclient.Option {
	channel := cfg.Channel
	if channel == AutoChannel {
		channel = uuid.NewString()
	}

	return []splunkclient.Option{
		splunkclient.WithTimeout(cfg.Timeout),
		splunkclient.WithDisableTLS(cfg.DisableTLS),
		splunkclient.WithDisableKeepAlives(cfg.DisableKeepAlives),
		splunkclient.WithRequestChannel(channel),
		splunkclient.WithLogger(logger),
	}
}

// printJSON writes v indented, without HTML escaping, so data element tokens
// and markup in events are printed as typed.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
