package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/weave/internal/errors"
)

func TestPreviewCmd_PrintsDocument(t *testing.T) {
	workflow := writeWorkflowFile(t, validWorkflowYAML)

	output, err := executeCommand(t, "preview", "-f", workflow, "commands/epics/epic-1.md")
	require.NoError(t, err)

	assert.Contains(t, output, "Epic 1: Setup")
	assert.Contains(t, output, "Demo Project")
}

func TestPreviewCmd_WorksOnInvalidConfiguration(t *testing.T) {
	// Preview skips validation so drafts can be inspected.
	workflow := writeWorkflowFile(t, rejectedWorkflowYAML)

	output, err := executeCommand(t, "preview", "-f", workflow, "commands/orchestrate.md")
	require.NoError(t, err)

	assert.Contains(t, output, "Setup")
}

func TestPreviewCmd_UnknownDocument(t *testing.T) {
	workflow := writeWorkflowFile(t, validWorkflowYAML)

	_, err := executeCommand(t, "preview", "-f", workflow, "commands/epics/epic-9.md")

	require.ErrorIs(t, err, errors.ErrDocumentNotFound)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestNewCmd_RequiresTerminal(t *testing.T) {
	// Test processes have no TTY on stdin, so the wizard must refuse to run
	// instead of hanging, and must not write the output file.
	out := filepath.Join(t.TempDir(), "workflow.yaml")

	_, err := executeCommand(t, "new", "-f", out)

	require.ErrorIs(t, err, errors.ErrInteractiveRequired)
	assert.NoFileExists(t, out)
}
