// Package cli provides the command-line interface for weave.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mrz1836/weave/internal/domain"
	"github.com/mrz1836/weave/internal/errors"
	"github.com/mrz1836/weave/internal/export"
	"github.com/mrz1836/weave/internal/generate"
	"github.com/mrz1836/weave/internal/tui"
)

// AddExportCommand adds the export command to the root command.
func AddExportCommand(root *cobra.Command) {
	root.AddCommand(newExportCmd())
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Validate a workflow configuration and export its archive",
		Long: `Validate the workflow configuration and, when it passes, render every
document and write the zip archive to the output directory.

A rejected configuration prints the complete validation error list and exits
with code 2; no archive is written.

Examples:
  weave export -f workflow.yaml
  weave export -f workflow.yaml -d dist
  weave export -f workflow.yaml --templates ./my-templates
  weave export -f workflow.yaml --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd.Context(), cmd, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringP("file", "f", "", "workflow configuration file (yaml or json)")
	cmd.Flags().StringP("dir", "d", ".", "directory to write the archive into")
	cmd.Flags().String("templates", "", "directory of template overrides")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runExport(ctx context.Context, cmd *cobra.Command, w io.Writer) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	logger := GetLogger()
	outputFormat := cmd.Flag("output").Value.String()
	tui.CheckNoColor()
	out := tui.NewOutput(w, outputFormat)

	cfg, err := loadWorkflow(cmd.Flag("file").Value.String())
	if err != nil {
		out.Error(err)
		return err
	}

	store, err := newTemplateStore(cmd.Flag("templates").Value.String())
	if err != nil {
		out.Error(err)
		return err
	}

	orc := export.NewOrchestrator(
		generate.NewGenerator(store),
		export.WithLogger(logger),
		export.WithProgress(func(state domain.ExportState) {
			logger.Debug().Str("state", state.String()).Msg("export progress")
		}),
	)

	result := orc.Export(ctx, cfg)
	switch result.State {
	case domain.ExportStateRejected:
		out.ValidationErrors(result.Errors)
		return errors.NewExitCode2Error(errors.ErrExportRejected)

	case domain.ExportStateFailed:
		err := fmt.Errorf("%w: %s", errors.ErrExportFailed, result.Message)
		out.Error(err)
		return err

	case domain.ExportStateReady:
		dir := cmd.Flag("dir").Value.String()
		path := filepath.Join(dir, result.Filename)
		if err := os.WriteFile(path, result.Archive, 0o600); err != nil {
			writeErr := fmt.Errorf("failed to write archive: %w", err)
			out.Error(writeErr)
			return writeErr
		}
		if outputFormat == OutputJSON {
			return out.JSON(map[string]any{
				"status":   result.State.String(),
				"filename": result.Filename,
				"path":     path,
				"bytes":    len(result.Archive),
			})
		}
		out.Success("exported " + path)
		return nil
	}

	// Export never returns a non-terminal state; this is a programming error.
	return fmt.Errorf("%w: unexpected terminal state %q", errors.ErrInvalidTransition, result.State)
}
