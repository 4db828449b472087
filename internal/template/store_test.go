package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/weave/internal/constants"
	weaveerrors "github.com/mrz1836/weave/internal/errors"
)

func TestNewStore_LoadsCatalog(t *testing.T) {
	s := NewStore()

	assert.Equal(t, []string{
		constants.TemplateAgent,
		constants.TemplateEpic,
		constants.TemplateMetaAgent,
		constants.TemplateOrchestrator,
		constants.TemplateReadme,
	}, s.Names())
}

func TestStore_Get_Success(t *testing.T) {
	s := NewStore()

	text, err := s.Get(constants.TemplateEpic)

	require.NoError(t, err)
	assert.Contains(t, text, "{{EPIC_NUMBER}}")
	assert.Contains(t, text, "{{EPIC_DEFINITION}}")
}

func TestStore_Get_NotFound(t *testing.T) {
	s := NewStore()

	_, err := s.Get("nonexistent")

	require.ErrorIs(t, err, weaveerrors.ErrTemplateNotFound)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestStore_CatalogTemplatesHaveExpectedTokens(t *testing.T) {
	s := NewStore()

	orchestrator, err := s.Get(constants.TemplateOrchestrator)
	require.NoError(t, err)
	for _, token := range []string{"{{PROJECT_NAME}}", "{{EPIC_COUNT}}", "{{EPIC_SUMMARY}}", "{{CUSTOM_INSTRUCTIONS}}"} {
		assert.Contains(t, orchestrator, token)
	}

	readme, err := s.Get(constants.TemplateReadme)
	require.NoError(t, err)
	for _, token := range []string{"{{EPIC_LIST}}", "{{AGENT_LIST}}", "{{DIRECTORY_STRUCTURE}}", "{{DURATION_TABLE}}"} {
		assert.Contains(t, readme, token)
	}
}

func TestStore_Register_EmptyName(t *testing.T) {
	s := NewEmptyStore()

	err := s.Register("   ", "text")

	require.ErrorIs(t, err, weaveerrors.ErrTemplateNameEmpty)
}

func TestStore_Register_Replaces(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.Register(constants.TemplateReadme, "custom readme"))

	text, err := s.Get(constants.TemplateReadme)
	require.NoError(t, err)
	assert.Equal(t, "custom readme", text)
}

func TestStore_LoadOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "orchestrator.md.tmpl"),
		[]byte("override {{PROJECT_NAME}}"), 0o600))
	// Non-template files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o600))

	s := NewStore()
	require.NoError(t, s.LoadOverrides(dir))

	text, err := s.Get("orchestrator")
	require.NoError(t, err)
	assert.Equal(t, "override {{PROJECT_NAME}}", text)

	// Other catalog entries are untouched.
	_, err = s.Get("readme")
	assert.NoError(t, err)
}

func TestStore_LoadOverrides_MissingDir(t *testing.T) {
	s := NewStore()

	err := s.LoadOverrides(filepath.Join(t.TempDir(), "does-not-exist"))

	require.ErrorIs(t, err, weaveerrors.ErrTemplateLoadFailed)
}

func TestNewEmptyStore_HasNoTemplates(t *testing.T) {
	s := NewEmptyStore()

	assert.Empty(t, s.Names())
}
