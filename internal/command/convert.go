package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/norskhelsenett/hecevent/internal/config"
	"github.com/norskhelsenett/hecevent/pkg/entity"
	"github.com/norskhelsenett/hecevent/pkg/models/splunkmodels"
)

// NewFlattenCommand creates a new hecevent flatten command
func NewFlattenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flatten <file>",
		Short: "Flatten a JSON or YAML object into key/value rows",
		Long: `Flatten an object into the {"key","value"} rows of the key/value editor.

Nested objects become dotted keys. Arrays and other values are kept as text.

Examples:
  hecevent flatten event.json
  hecevent flatten --prefix event event.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, _ := cmd.Flags().GetString("prefix")

			v, err := config.LoadEntity(args[0])
			if err != nil {
				return err
			}
			if v.Kind() != entity.ObjectKind {
				return fmt.Errorf("%s: expected an object, got %s", args[0], v.Kind())
			}

			variables := entity.AddToVariablesFromEntity([]splunkmodels.Variable{}, v, prefix)
			return printJSON(cmd.OutOrStdout(), variables)
		},
	}

	cmd.Flags().String("prefix", "", "Path prefix for every key")

	return cmd
}

// NewUnflattenCommand creates a new hecevent unflatten command
func NewUnflattenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unflatten <file>",
		Short: "Build an object from key/value rows",
		Long: `Build an object from a list of {"key","value"} rows.

Dotted keys create nested objects. When two keys collide the later row wins.

Examples:
  hecevent unflatten rows.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variables, err := config.LoadVariables(args[0])
			if err != nil {
				return err
			}

			obj := entity.AddToEntityFromVariables(entity.NewObject(), variables)
			text, err := entity.Indent(entity.ObjectValue(obj), "  ")
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
