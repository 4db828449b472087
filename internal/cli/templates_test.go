package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesCmd_ListsCatalog(t *testing.T) {
	output, err := executeCommand(t, "templates")
	require.NoError(t, err)

	for _, name := range []string{"agent-definition", "epic-definition", "meta-agent", "orchestrator", "readme"} {
		assert.Contains(t, output, name)
	}
}

func TestTemplatesCmd_JSONOutput(t *testing.T) {
	output, err := executeCommand(t, "templates", "--output", "json")
	require.NoError(t, err)

	assert.Contains(t, output, `"templates"`)
	assert.Contains(t, output, `"orchestrator"`)
}

func TestTemplatesCmd_WithOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.md.tmpl"), []byte("# {{TITLE}}\n"), 0o600))

	output, err := executeCommand(t, "templates", "--templates", dir)
	require.NoError(t, err)

	assert.Contains(t, output, "extra")
	assert.Contains(t, output, "orchestrator")
}

func TestTemplatesCmd_MissingOverrideDir(t *testing.T) {
	_, err := executeCommand(t, "templates", "--templates", filepath.Join(t.TempDir(), "absent"))

	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}
