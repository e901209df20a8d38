package command

import (
	"github.com/spf13/cobra"

	"github.com/norskhelsenett/hecevent/internal/config"
	"github.com/norskhelsenett/hecevent/pkg/form"
)

// BuildCommand handles the hecevent build command
type BuildCommand struct{}

// NewBuildCommand creates a new hecevent build command
func NewBuildCommand() *cobra.Command {
	bc := &BuildCommand{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Print the action settings for a form state",
		Long: `Collapse a create event form state into the action settings the host persists.

The form is not validated first; run validate for that.

Examples:
  hecevent build --form form.json > action.json`,
		RunE: bc.Run,
	}

	cmd.Flags().StringP("form", "f", "", "Form state file (JSON or YAML)")
	_ = cmd.MarkFlagRequired("form")

	return cmd
}

// Run executes the build command
func (c *BuildCommand) Run(cmd *cobra.Command, args []string) error {
	formPath, _ := cmd.Flags().GetString("form")

	state, err := config.LoadFormState(formPath)
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), form.Settings(state))
}
