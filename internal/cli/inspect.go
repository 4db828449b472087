// Package cli provides the command-line interface for weave.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/weave/internal/archive"
	"github.com/mrz1836/weave/internal/errors"
	"github.com/mrz1836/weave/internal/tui"
)

// AddInspectCommand adds the inspect command to the root command.
func AddInspectCommand(root *cobra.Command) {
	root.AddCommand(newInspectCmd())
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <archive.zip>",
		Short: "List the documents inside an exported archive",
		Long: `Open an exported archive and list every document entry with its size.

Examples:
  weave inspect claude-workflow-20250101-120000.zip
  weave inspect claude-workflow-20250101-120000.zip --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), cmd, cmd.OutOrStdout(), args[0])
		},
	}
}

func runInspect(ctx context.Context, cmd *cobra.Command, w io.Writer, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	outputFormat := cmd.Flag("output").Value.String()
	tui.CheckNoColor()
	out := tui.NewOutput(w, outputFormat)

	data, err := os.ReadFile(path) //nolint:gosec // user-supplied archive path
	if err != nil {
		readErr := errors.NewExitCode2Error(fmt.Errorf("failed to read archive: %w", err))
		out.Error(readErr)
		return readErr
	}

	docs, err := archive.Extract(data)
	if err != nil {
		extractErr := errors.NewExitCode2Error(err)
		out.Error(extractErr)
		return extractErr
	}

	if outputFormat == OutputJSON {
		type entry struct {
			Path  string `json:"path"`
			Bytes int    `json:"bytes"`
		}
		entries := make([]entry, len(docs))
		for i, doc := range docs {
			entries[i] = entry{Path: doc.Path, Bytes: len(doc.Content)}
		}
		return out.JSON(map[string]any{"archive": path, "entries": entries})
	}

	for _, doc := range docs {
		out.Info(fmt.Sprintf("%8d  %s", len(doc.Content), doc.Path))
	}
	out.Success(fmt.Sprintf("%d document(s)", len(docs)))
	return nil
}
