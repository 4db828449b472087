// Package archive serializes a document set into a zip artifact and reads
// one back.
//
// Entries are written in sorted path order with forward-slash separators and
// mid-level deflate compression, so the same document set always produces
// the same archive layout.
package archive

import (
	"archive/zip"
	"bytes"
	"compress/flate"
	"fmt"
	"io"
	"sort"

	"github.com/mrz1836/weave/internal/domain"
	weaveerrors "github.com/mrz1836/weave/internal/errors"
)

// Assemble serializes documents into an in-memory zip archive. An empty
// document set is an error: the export never produces a hollow artifact.
func Assemble(docs []domain.Document) ([]byte, error) {
	if len(docs) == 0 {
		return nil, weaveerrors.ErrArchiveEmpty
	}

	sorted := make([]domain.Document, len(docs))
	copy(sorted, docs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.DefaultCompression)
	})

	for _, doc := range sorted {
		entry, err := zw.Create(doc.Path)
		if err != nil {
			return nil, weaveerrors.Wrapf(err, "create entry %s", doc.Path)
		}
		if _, err := entry.Write(doc.Content); err != nil {
			return nil, weaveerrors.Wrapf(err, "write entry %s", doc.Path)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", weaveerrors.ErrArchiveWrite, err)
	}
	return buf.Bytes(), nil
}

// Extract reads an archive produced by Assemble back into its document set,
// in entry order. Content bytes are reproduced exactly.
func Extract(data []byte) ([]domain.Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", weaveerrors.ErrArchiveRead, err)
	}

	docs := make([]domain.Document, 0, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, weaveerrors.Wrapf(err, "open entry %s", f.Name)
		}
		content, err := io.ReadAll(rc)
		closeErr := rc.Close()
		if err != nil {
			return nil, weaveerrors.Wrapf(err, "read entry %s", f.Name)
		}
		if closeErr != nil {
			return nil, weaveerrors.Wrapf(closeErr, "close entry %s", f.Name)
		}
		docs = append(docs, domain.Document{Path: f.Name, Content: content})
	}
	return docs, nil
}
