package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const validWorkflowYAML = `
project_name: Demo Project
epic_count: 2
epics:
  1:
    name: Setup
    purpose: Establish the project skeleton and tooling baseline.
    definition: Create the repository layout, CI pipeline, and developer tooling needed by later epics.
    suggested_collaborators:
      - backend-dev
  2:
    name: Ship
    purpose: Deliver the first working increment to users.
    definition: Implement the core feature set, verify it end to end, and package the first release.
    suggested_collaborators:
      - devops
`

const rejectedWorkflowYAML = `
epic_count: 1
epics:
  1:
    name: Setup
    purpose: short
    definition: short
`

// executeCommand runs the CLI with the given args and captures its output.
// WEAVE_HOME is redirected so the file log never touches the real home dir.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("WEAVE_HOME", t.TempDir())

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{Version: "test"})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// writeWorkflowFile writes content to a temp workflow file and returns its path.
func writeWorkflowFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
