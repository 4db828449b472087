// Package cli provides the command-line interface for weave.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/weave/internal/config"
	"github.com/mrz1836/weave/internal/constants"
	"github.com/mrz1836/weave/internal/tui"
)

// AddNewCommand adds the new command to the root command.
func AddNewCommand(root *cobra.Command) {
	root.AddCommand(newNewCmd())
}

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a starter workflow configuration interactively",
		Long: `Walk through an interactive form and write a starter workflow
configuration file. The wizard only produces the file; run 'weave validate'
or 'weave export' on the result.

Requires an attached terminal.

Examples:
  weave new
  weave new -f my-workflow.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNew(cmd.Context(), cmd, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringP("file", "f", "workflow.yaml", "path to write the configuration to")

	return cmd
}

func runNew(ctx context.Context, cmd *cobra.Command, w io.Writer) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	tui.CheckNoColor()
	out := tui.NewOutput(w, cmd.Flag("output").Value.String())

	file, err := collectWorkflow()
	if err != nil {
		out.Error(err)
		return err
	}

	path := cmd.Flag("file").Value.String()
	if err := config.Save(path, file); err != nil {
		out.Error(err)
		return err
	}

	out.Success("wrote " + path)
	out.Info("next: weave validate -f " + path)
	return nil
}

// collectWorkflow runs the interactive form and builds the file configuration.
func collectWorkflow() (*config.FileConfig, error) {
	projectName, err := tui.Input("Project name", constants.DefaultProjectName, nil)
	if err != nil {
		return nil, err
	}

	countText, err := tui.Input("Number of epics", strconv.Itoa(constants.MinEpicCount), validateEpicCount)
	if err != nil {
		return nil, err
	}
	epicCount, _ := strconv.Atoi(strings.TrimSpace(countText))

	epics := make(map[int]config.FileEpic, epicCount)
	for n := 1; n <= epicCount; n++ {
		epic, err := collectEpic(n)
		if err != nil {
			return nil, err
		}
		epics[n] = epic
	}

	file := &config.FileConfig{
		EpicCount: epicCount,
		Epics:     epics,
	}
	if projectName != "" && projectName != constants.DefaultProjectName {
		file.ProjectName = &projectName
	}

	metaAgent, err := tui.Confirm("Enable the meta-agent document?", false)
	if err != nil {
		return nil, err
	}
	if metaAgent {
		file.Features = append(file.Features, "meta-agent")
	}

	return file, nil
}

// collectEpic prompts for one epic's fields.
func collectEpic(n int) (config.FileEpic, error) {
	title := fmt.Sprintf("Epic %d", n)

	name, err := tui.Input(title+" name", "", requireLength(constants.MinNameLength))
	if err != nil {
		return config.FileEpic{}, err
	}
	purpose, err := tui.TextArea(title+" purpose", "What this epic achieves and why it matters.")
	if err != nil {
		return config.FileEpic{}, err
	}
	definition, err := tui.TextArea(title+" definition", "The concrete work, deliverables, and completion criteria.")
	if err != nil {
		return config.FileEpic{}, err
	}
	collaborators, err := tui.Input(title+" suggested collaborators (comma-separated)", "", nil)
	if err != nil {
		return config.FileEpic{}, err
	}

	return config.FileEpic{
		Name:                   name,
		Purpose:                purpose,
		Definition:             definition,
		SuggestedCollaborators: splitList(collaborators),
	}, nil
}

// validateEpicCount accepts integers at or above the minimum epic count.
func validateEpicCount(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n < constants.MinEpicCount {
		return fmt.Errorf("at least %d epics are required", constants.MinEpicCount)
	}
	return nil
}

// requireLength validates a minimum trimmed length.
func requireLength(minLen int) func(string) error {
	return func(s string) error {
		if len(strings.TrimSpace(s)) < minLen {
			return fmt.Errorf("must be at least %d characters", minLen)
		}
		return nil
	}
}

// splitList parses a comma-separated list, dropping empty items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
