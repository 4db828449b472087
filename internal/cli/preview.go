// Package cli provides the command-line interface for weave.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrz1836/weave/internal/errors"
	"github.com/mrz1836/weave/internal/generate"
	"github.com/mrz1836/weave/internal/tui"
)

// AddPreviewCommand adds the preview command to the root command.
func AddPreviewCommand(root *cobra.Command) {
	root.AddCommand(newPreviewCmd())
}

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <document-path>",
		Short: "Render one generated document to the terminal",
		Long: `Generate the document set for the workflow configuration and print a single
document, identified by its archive path. On a terminal the markdown renders
styled; otherwise the raw markdown is printed.

The configuration is not validated first, so a draft can be previewed while
it still has validation errors.

Examples:
  weave preview -f workflow.yaml commands/orchestrate.md
  weave preview -f workflow.yaml commands/epics/epic-1.md
  weave preview -f workflow.yaml README.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.Context(), cmd, cmd.OutOrStdout(), args[0])
		},
	}

	cmd.Flags().StringP("file", "f", "", "workflow configuration file (yaml or json)")
	cmd.Flags().String("templates", "", "directory of template overrides")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runPreview(ctx context.Context, cmd *cobra.Command, w io.Writer, docPath string) error {
	tui.CheckNoColor()
	out := tui.NewOutput(w, cmd.Flag("output").Value.String())

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

	docs, err := generate.NewGenerator(store).Run(ctx, cfg)
	if err != nil {
		out.Error(err)
		return err
	}

	for _, doc := range docs {
		if doc.Path != docPath {
			continue
		}
		content := string(doc.Content)
		if term.IsTerminal(int(os.Stdout.Fd())) {
			content = tui.RenderMarkdown(content)
		}
		_, err := fmt.Fprint(w, content)
		return err
	}

	err = errors.NewExitCode2Error(fmt.Errorf("%w: %s", errors.ErrDocumentNotFound, docPath))
	out.Error(err)
	return err
}
