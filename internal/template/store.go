// Package template provides the template catalog and the placeholder
// substitution renderer for the export engine.
// Templates are plain text documents containing {{TOKEN}} placeholders.
package template

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	weaveerrors "github.com/mrz1836/weave/internal/errors"
)

//go:embed catalog/*.md.tmpl
var catalogFS embed.FS

// templateExt is the file extension of catalog and override template files.
const templateExt = ".md.tmpl"

// Store provides thread-safe access to raw template text by name.
// The built-in catalog is embedded at compile time; overrides loaded from
// disk replace catalog entries of the same name. The store is immutable
// during an export: nothing writes to it after CLI startup.
type Store struct {
	mu        sync.RWMutex
	templates map[string]string
}

// NewStore creates a store preloaded with the embedded catalog.
func NewStore() *Store {
	s := &Store{templates: make(map[string]string)}
	if err := s.loadCatalog(); err != nil {
		// Templates are embedded, so this should never fail.
		// If it does, it's a compile-time bug we want to know about.
		panic(fmt.Sprintf("failed to load embedded templates: %v", err))
	}
	return s
}

// NewEmptyStore creates a store with no templates. Intended for tests that
// exercise missing-template behavior.
func NewEmptyStore() *Store {
	return &Store{templates: make(map[string]string)}
}

// loadCatalog reads every embedded catalog file into the store.
// catalog/orchestrator.md.tmpl registers as "orchestrator".
func (s *Store) loadCatalog() error {
	entries, err := catalogFS.ReadDir("catalog")
	if err != nil {
		return fmt.Errorf("reading catalog directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), templateExt) {
			continue
		}
		content, err := catalogFS.ReadFile("catalog/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading template %s: %w", entry.Name(), err)
		}
		name := strings.TrimSuffix(entry.Name(), templateExt)
		s.templates[name] = string(content)
	}
	return nil
}

// Get retrieves raw template text by exact name.
// Returns ErrTemplateNotFound if the name is not registered; callers treat
// that as fatal for the export attempt.
func (s *Store) Get(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	text, ok := s.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", weaveerrors.ErrTemplateNotFound, name)
	}
	return text, nil
}

// Names returns all registered template names in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds or replaces a template.
// Returns an error if the name is empty after trimming.
func (s *Store) Register(name, text string) error {
	if strings.TrimSpace(name) == "" {
		return weaveerrors.ErrTemplateNameEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[name] = text
	return nil
}

// LoadOverrides reads every *.md.tmpl file in dir and registers it,
// replacing any catalog entry with the same name. The file base name minus
// the extension is the template name. Missing directories are an error;
// callers pass the flag value explicitly, so silence would hide a typo.
func (s *Store) LoadOverrides(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", weaveerrors.ErrTemplateLoadFailed, dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), templateExt) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path) //nolint:gosec // Path comes from a user-provided flag
		if err != nil {
			return fmt.Errorf("%w: %s: %w", weaveerrors.ErrTemplateLoadFailed, path, err)
		}

		name := strings.TrimSuffix(entry.Name(), templateExt)
		if err := s.Register(name, string(content)); err != nil {
			return fmt.Errorf("override %s: %w", path, err)
		}
	}
	return nil
}
