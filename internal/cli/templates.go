// Package cli provides the command-line interface for weave.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/weave/internal/tui"
)

// AddTemplatesCommand adds the templates command to the root command.
func AddTemplatesCommand(root *cobra.Command) {
	root.AddCommand(newTemplatesCmd())
}

func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the document templates in the catalog",
		Long: `List every template name the export engine can render, including any
overrides loaded from a template directory.

Examples:
  weave templates
  weave templates --templates ./my-templates
  weave templates --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTemplates(cmd.Context(), cmd, cmd.OutOrStdout())
		},
	}

	cmd.Flags().String("templates", "", "directory of template overrides")

	return cmd
}

func runTemplates(ctx context.Context, cmd *cobra.Command, w io.Writer) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	outputFormat := cmd.Flag("output").Value.String()
	tui.CheckNoColor()
	out := tui.NewOutput(w, outputFormat)

	store, err := newTemplateStore(cmd.Flag("templates").Value.String())
	if err != nil {
		out.Error(err)
		return err
	}

	names := store.Names()
	if outputFormat == OutputJSON {
		return out.JSON(map[string]any{"templates": names})
	}
	for _, name := range names {
		out.Info(name)
	}
	return nil
}
