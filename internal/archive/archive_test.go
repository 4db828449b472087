package archive

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/weave/internal/domain"
	weaveerrors "github.com/mrz1836/weave/internal/errors"
)

func sampleDocs() []domain.Document {
	return []domain.Document{
		{Path: "commands/orchestrate.md", Content: []byte("# Orchestrate\n")},
		{Path: "commands/epics/epic-1.md", Content: []byte("# Epic 1\n")},
		{Path: "README.md", Content: []byte("# Readme\n")},
	}
}

func TestAssemble_RoundTrip(t *testing.T) {
	data, err := Assemble(sampleDocs())
	require.NoError(t, err)

	docs, err := Extract(data)
	require.NoError(t, err)

	// Extraction reproduces every document byte for byte, in sorted order.
	require.Len(t, docs, 3)
	assert.Equal(t, "README.md", docs[0].Path)
	assert.Equal(t, "commands/epics/epic-1.md", docs[1].Path)
	assert.Equal(t, "commands/orchestrate.md", docs[2].Path)
	assert.Equal(t, []byte("# Readme\n"), docs[0].Content)
	assert.Equal(t, []byte("# Epic 1\n"), docs[1].Content)
}

func TestAssemble_EmptyDocumentSet(t *testing.T) {
	_, err := Assemble(nil)

	require.ErrorIs(t, err, weaveerrors.ErrArchiveEmpty)
}

func TestAssemble_DoesNotReorderInput(t *testing.T) {
	docs := sampleDocs()

	_, err := Assemble(docs)
	require.NoError(t, err)

	assert.Equal(t, "commands/orchestrate.md", docs[0].Path)
}

func TestAssemble_ForwardSlashPaths(t *testing.T) {
	data, err := Assemble(sampleDocs())
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		assert.False(t, strings.Contains(f.Name, "\\"), "entry %s carries a backslash", f.Name)
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	first, err := Assemble(sampleDocs())
	require.NoError(t, err)
	second, err := Assemble(sampleDocs())
	require.NoError(t, err)

	// Entry names and content are identical across runs. The raw bytes can
	// differ only in zip metadata, so compare through extraction.
	firstDocs, err := Extract(first)
	require.NoError(t, err)
	secondDocs, err := Extract(second)
	require.NoError(t, err)
	assert.Equal(t, firstDocs, secondDocs)
}

func TestExtract_Garbage(t *testing.T) {
	_, err := Extract([]byte("not a zip archive"))

	require.ErrorIs(t, err, weaveerrors.ErrArchiveRead)
}
