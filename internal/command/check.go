package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/norskhelsenett/hecevent/internal/config"
	splunkclient "github.com/norskhelsenett/hecevent/pkg/clients/splunk"
)

// CheckCommand handles the hecevent check command
type CheckCommand struct{}

// NewCheckCommand creates a new hecevent check command
func NewCheckCommand() *cobra.Command {
	cc := &CheckCommand{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the collector host resolves",
		Long: `Resolve the host of the configured collector URL without sending an event.

The resolvers from the configuration are tried in turn, falling back to
/etc/resolv.conf when none are configured.

Examples:
  hecevent check
  hecevent check --url https://hec.example.com:8088/services/collector/event --protocol tcp`,
		RunE: cc.Run,
	}

	cmd.Flags().String("protocol", splunkclient.DefaultLookupProtocol, "DNS protocol (udp or tcp)")
	cmd.Flags().Duration("timeout", splunkclient.DefaultLookupTimeout, "Timeout per DNS query")

	return cmd
}

// Run executes the check command
func (c *CheckCommand) Run(cmd *cobra.Command, args []string) error {
	protocol, _ := cmd.Flags().GetString("protocol")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	cfg, err := RequireConfig(cmd.Context())
	if err != nil {
		return err
	}
	if cfg.URL == "" {
		return fmt.Errorf("collector url is required (set url or %s)", config.EnvURL)
	}

	opts := append(preflightOptions(cfg),
		splunkclient.WithLookupProtocol(protocol),
		splunkclient.WithLookupTimeout(timeout),
	)

	res, err := splunkclient.Preflight(cmd.Context(), cfg.URL, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Host:       %s\n", res.Host)
	fmt.Fprintf(out, "Addresses:  %s\n", strings.Join(res.Addresses, ", "))
	if res.Server != "" {
		fmt.Fprintf(out, "Resolver:   %s\n", res.Server)
		fmt.Fprintf(out, "RTT:        %v\n", res.RTT.Round(time.Microsecond))
	}

	return nil
}

func preflightOptions(cfg config.Config) []splunkclient.PreflightOption {
	if len(cfg.Resolvers) == 0 {
		return nil
	}
	return []splunkclient.PreflightOption{splunkclient.WithResolvers(cfg.Resolvers...)}
}
