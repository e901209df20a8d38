package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/norskhelsenett/hecevent/internal/config"
	"github.com/norskhelsenett/hecevent/pkg/form"
)

// ValidateCommand handles the hecevent validate command
type ValidateCommand struct{}

// NewValidateCommand creates a new hecevent validate command
func NewValidateCommand() *cobra.Command {
	vc := &ValidateCommand{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a create event form state",
		Long: `Validate a create event form state file and list the invalid fields.

Exits non-zero when any field is invalid.

Examples:
  hecevent validate --form form.json`,
		RunE: vc.Run,
	}

	cmd.Flags().StringP("form", "f", "", "Form state file (JSON or YAML)")
	_ = cmd.MarkFlagRequired("form")

	return cmd
}

// Run executes the validate command
func (c *ValidateCommand) Run(cmd *cobra.Command, args []string) error {
	formPath, _ := cmd.Flags().GetString("form")

	state, err := config.LoadFormState(formPath)
	if err != nil {
		return err
	}

	errs := form.Validate(state)
	if errs.Valid() {
		fmt.Fprintln(cmd.OutOrStdout(), "Form is valid")
		return nil
	}

	for _, key := range errs.Keys() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, errs[key])
	}

	return fmt.Errorf("%d invalid field(s): %w", len(errs), errs.Err())
}
