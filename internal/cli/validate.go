// Package cli provides the command-line interface for weave.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/weave/internal/errors"
	"github.com/mrz1836/weave/internal/tui"
	"github.com/mrz1836/weave/internal/validate"
)

// AddValidateCommand adds the validate command to the root command.
func AddValidateCommand(root *cobra.Command) {
	root.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a workflow configuration without exporting",
		Long: `Run the full validation rule set against the workflow configuration and
report every violation in one pass. Nothing is rendered or written.

Examples:
  weave validate -f workflow.yaml
  weave validate -f workflow.yaml --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidateCmd(cmd.Context(), cmd, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringP("file", "f", "", "workflow configuration file (yaml or json)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runValidateCmd(ctx context.Context, cmd *cobra.Command, w io.Writer) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	outputFormat := cmd.Flag("output").Value.String()
	tui.CheckNoColor()
	out := tui.NewOutput(w, outputFormat)

	cfg, err := loadWorkflow(cmd.Flag("file").Value.String())
	if err != nil {
		out.Error(err)
		return err
	}

	result := validate.Run(cfg)
	if !result.Valid {
		out.ValidationErrors(result.Errors)
		return errors.NewExitCode2Error(errors.ErrExportRejected)
	}

	if outputFormat == OutputJSON {
		return out.JSON(result)
	}
	out.Success("configuration is valid")
	return nil
}
