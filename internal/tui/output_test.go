package tui

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/weave/internal/domain"
)

func sampleErrors() []domain.ValidationError {
	return []domain.ValidationError{
		{Category: domain.CategoryConfiguration, Field: "epicCount", Message: "must be at least 2, got 1"},
		{Category: domain.CategoryEpic, SubjectID: "1", Field: "name", Message: "must be at least 3 characters"},
	}
}

func TestNewOutput_SelectsByFormat(t *testing.T) {
	var buf bytes.Buffer

	assert.IsType(t, &JSONOutput{}, NewOutput(&buf, "json"))
	assert.IsType(t, &TTYOutput{}, NewOutput(&buf, "text"))
}

func TestTTYOutput_ValidationErrors(t *testing.T) {
	var buf bytes.Buffer
	out := NewTTYOutput(&buf)

	out.ValidationErrors(sampleErrors())

	text := buf.String()
	assert.Contains(t, text, "2 error(s)")
	assert.Contains(t, text, "epicCount: must be at least 2, got 1")
	assert.Contains(t, text, "epic 1: name: must be at least 3 characters")
}

func TestJSONOutput_ValidationErrors(t *testing.T) {
	var buf bytes.Buffer
	out := NewJSONOutput(&buf)

	out.ValidationErrors(sampleErrors())

	var decoded struct {
		Status string                   `json:"status"`
		Errors []domain.ValidationError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "rejected", decoded.Status)
	assert.Equal(t, sampleErrors(), decoded.Errors)
}

func TestJSONOutput_SuppressesProse(t *testing.T) {
	var buf bytes.Buffer
	out := NewJSONOutput(&buf)

	out.Success("done")
	out.Info("working")
	out.Warning("careful")

	assert.Empty(t, buf.String())
}

func TestJSONOutput_Error(t *testing.T) {
	var buf bytes.Buffer
	out := NewJSONOutput(&buf)

	out.Error(errors.New("boom"))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "boom", decoded["error"])
}

func TestRenderMarkdown_NeverEmpty(t *testing.T) {
	out := RenderMarkdown("# Title\n\nbody\n")

	assert.NotEmpty(t, out)
}

func TestExportStateIcon(t *testing.T) {
	assert.Equal(t, "✓", ExportStateIcon(domain.ExportStateReady))
	assert.Equal(t, "✗", ExportStateIcon(domain.ExportStateRejected))
	assert.Equal(t, "✗", ExportStateIcon(domain.ExportStateFailed))
	assert.NotEmpty(t, ExportStateIcon(domain.ExportStateRendering))
}
