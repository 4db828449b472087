package cli

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrz1836/weave/internal/errors"
)

func TestExitCodeForError_Nil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitSuccess, ExitCodeForError(nil))
}

func TestExitCodeForError_GeneralError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitError, ExitCodeForError(stderrors.New("boom")))
}

func TestExitCodeForError_ExitCode2Wrapper(t *testing.T) {
	t.Parallel()

	err := errors.NewExitCode2Error(stderrors.New("bad input"))
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestExitCodeForError_RejectedConfiguration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitInvalidInput, ExitCodeForError(errors.ErrExportRejected))
}

func TestExitCodeForError_InvalidOutputFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitInvalidInput, ExitCodeForError(errors.ErrInvalidOutputFormat))
}

func TestExitCodeForError_CobraFlagErrors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitInvalidInput, ExitCodeForError(stderrors.New("unknown flag: --bogus")))
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(stderrors.New("required flag(s) \"file\" not set")))
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(stderrors.New("unknown command \"frobnicate\"")))
}

func TestIsValidOutputFormat(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidOutputFormat(OutputText))
	assert.True(t, IsValidOutputFormat(OutputJSON))
	assert.False(t, IsValidOutputFormat("xml"))
	assert.False(t, IsValidOutputFormat(""))
}
