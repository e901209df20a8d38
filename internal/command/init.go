package command

import (
	"github.com/spf13/cobra"

	"github.com/norskhelsenett/hecevent/internal/config"
	"github.com/norskhelsenett/hecevent/pkg/form"
)

// InitCommand handles the hecevent init command
type InitCommand struct{}

// NewInitCommand creates a new hecevent init command
func NewInitCommand() *cobra.Command {
	ic := &InitCommand{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Print the form state for an action settings file",
		Long: `Print the form state an editor starts from for persisted action settings.

Both editors start in raw mode with object events and fields pretty printed.

Examples:
  hecevent init --settings action.json > form.json`,
		RunE: ic.Run,
	}

	cmd.Flags().StringP("settings", "s", "", "Action settings file (JSON or YAML)")
	_ = cmd.MarkFlagRequired("settings")

	return cmd
}

// Run executes the init command
func (c *InitCommand) Run(cmd *cobra.Command, args []string) error {
	settingsPath, _ := cmd.Flags().GetString("settings")

	settings, err := config.LoadActionSettings(settingsPath)
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), form.InitValues(settings))
}
