package cli

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/weave/internal/archive"
	"github.com/mrz1836/weave/internal/errors"
)

var archiveNamePattern = regexp.MustCompile(`^claude-workflow-\d{8}-\d{6}\.zip$`)

func TestExportCmd_WritesArchive(t *testing.T) {
	workflow := writeWorkflowFile(t, validWorkflowYAML)
	outDir := t.TempDir()

	output, err := executeCommand(t, "export", "-f", workflow, "-d", outDir)
	require.NoError(t, err)
	assert.Contains(t, output, "exported")

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Regexp(t, archiveNamePattern, entries[0].Name())

	data, err := os.ReadFile(filepath.Join(outDir, entries[0].Name()))
	require.NoError(t, err)
	docs, err := archive.Extract(data)
	require.NoError(t, err)

	paths := make([]string, len(docs))
	for i, d := range docs {
		paths[i] = d.Path
	}
	assert.Contains(t, paths, "README.md")
	assert.Contains(t, paths, "commands/orchestrate.md")
	assert.Contains(t, paths, "commands/epics/epic-1.md")
	assert.Contains(t, paths, "commands/epics/epic-2.md")
}

func TestExportCmd_RejectedConfiguration(t *testing.T) {
	workflow := writeWorkflowFile(t, rejectedWorkflowYAML)
	outDir := t.TempDir()

	output, err := executeCommand(t, "export", "-f", workflow, "-d", outDir)

	require.ErrorIs(t, err, errors.ErrExportRejected)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
	assert.Contains(t, output, "epicCount")

	// All or nothing: no archive on rejection.
	entries, readErr := os.ReadDir(outDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestExportCmd_MissingFile(t *testing.T) {
	_, err := executeCommand(t, "export", "-f", filepath.Join(t.TempDir(), "absent.yaml"))

	require.ErrorIs(t, err, errors.ErrConfigFileMissing)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestExportCmd_RequiresFileFlag(t *testing.T) {
	_, err := executeCommand(t, "export")

	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestExportCmd_JSONOutput(t *testing.T) {
	workflow := writeWorkflowFile(t, validWorkflowYAML)
	outDir := t.TempDir()

	output, err := executeCommand(t, "export", "-f", workflow, "-d", outDir, "--output", "json")
	require.NoError(t, err)

	assert.Contains(t, output, `"status": "ready"`)
	assert.Contains(t, output, `"filename"`)
}
