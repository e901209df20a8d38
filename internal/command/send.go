package command

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/norskhelsenett/hecevent/internal/config"
	splunkclient "github.com/norskhelsenett/hecevent/pkg/clients/splunk"
	"github.com/norskhelsenett/hecevent/pkg/models/splunkmodels"
)

// SendCommand handles the hecevent send command
type SendCommand struct{}

// NewSendCommand creates a new hecevent send command
func NewSendCommand() *cobra.Command {
	sc := &SendCommand{}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send the event of an action settings file to HEC",
		Long: `Send the splunkEvent of an action settings file to the configured collector.

The event is posted exactly as stored. The collector's answer is printed; a
non-2xx answer makes the command fail.

Examples:
  # Send using the collector from hecevent.yaml
  hecevent send --settings action.json

  # Resolve the collector host before sending
  hecevent send --settings action.yaml --preflight`,
		RunE: sc.Run,
	}

	cmd.Flags().StringP("settings", "s", "", "Action settings file (JSON or YAML)")
	cmd.Flags().Bool("preflight", false, "Resolve the collector host before sending")
	_ = cmd.MarkFlagRequired("settings")

	return cmd
}

// Run executes the send command
func (c *SendCommand) Run(cmd *cobra.Command, args []string) error {
	settingsPath, _ := cmd.Flags().GetString("settings")
	preflight, _ := cmd.Flags().GetBool("preflight")

	ctx := cmd.Context()
	logger := GetLogger(ctx)

	cfg, err := RequireConfig(ctx)
	if err != nil {
		return err
	}
	if err := cfg.ValidateForSend(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	settings, err := config.LoadActionSettings(settingsPath)
	if err != nil {
		return err
	}

	if preflight {
		res, err := splunkclient.Preflight(ctx, cfg.URL, preflightOptions(cfg)...)
		if err != nil {
			return fmt.Errorf("preflight failed: %w", err)
		}
		logger.Info("Collector host resolved",
			zap.String("host", res.Host),
			zap.Strings("addresses", res.Addresses),
			zap.Duration("rtt", res.RTT),
		)
	}

	client := splunkclient.NewSplunkClient(clientOptions(cfg, logger)...)

	resp, err := client.CreateEvent(ctx, settings, splunkmodels.ExtensionSettings{
		URL:   cfg.URL,
		Token: cfg.Token,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", resp.Status, resp.Body)

	if !resp.OK() {
		if ack, err := resp.HEC(); err == nil && ack.Text != "" {
			return fmt.Errorf("collector rejected the event: %s (code %d)", ack.Text, ack.Code)
		}
		return fmt.Errorf("collector rejected the event: %s", resp.Status)
	}

	logger.Info("Successfully sent event to Splunk HEC", zap.Int("status", resp.StatusCode))

	return nil
}
