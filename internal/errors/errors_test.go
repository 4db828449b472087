package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrConfigNil,
		ErrConfigFileMissing,
		ErrConfigLoadFailed,
		ErrConfigParse,
		ErrExportRejected,
		ErrExportFailed,
		ErrTemplateNotFound,
		ErrTemplateNameEmpty,
		ErrTemplateLoadFailed,
		ErrArchiveWrite,
		ErrArchiveRead,
		ErrArchiveEmpty,
		ErrDocumentNotFound,
		ErrInvalidCapability,
		ErrInvalidFeatureFlag,
		ErrInvalidTransition,
		ErrInvalidOutputFormat,
		ErrOperationCanceled,
		ErrInteractiveRequired,
	}

	seen := make(map[string]bool, len(sentinels))
	for _, err := range sentinels {
		require.Error(t, err)
		assert.False(t, seen[err.Error()], "duplicate sentinel message: %s", err.Error())
		seen[err.Error()] = true
	}
}

func TestSentinelErrors_MatchWithErrorsIs(t *testing.T) {
	wrapped := fmt.Errorf("%w: epic-definition", ErrTemplateNotFound)

	assert.True(t, stderrors.Is(wrapped, ErrTemplateNotFound))
	assert.False(t, stderrors.Is(wrapped, ErrConfigParse))
}

func TestWrap_NilError(t *testing.T) {
	assert.NoError(t, Wrap(nil, "context"))
}

func TestWrap_PreservesChain(t *testing.T) {
	err := Wrap(ErrArchiveWrite, "assembling export")

	require.Error(t, err)
	assert.True(t, stderrors.Is(err, ErrArchiveWrite))
	assert.Contains(t, err.Error(), "assembling export")
}

func TestWrapf_NilError(t *testing.T) {
	assert.NoError(t, Wrapf(nil, "context %d", 1))
}

func TestWrapf_FormatsAndPreservesChain(t *testing.T) {
	err := Wrapf(ErrTemplateNotFound, "rendering document %s", "README.md")

	require.Error(t, err)
	assert.True(t, stderrors.Is(err, ErrTemplateNotFound))
	assert.Contains(t, err.Error(), "rendering document README.md")
}
