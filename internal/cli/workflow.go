// Package cli provides the command-line interface for weave.
package cli

import (
	"github.com/mrz1836/weave/internal/config"
	"github.com/mrz1836/weave/internal/domain"
	"github.com/mrz1836/weave/internal/errors"
	"github.com/mrz1836/weave/internal/template"
)

// loadWorkflow reads and normalizes a workflow configuration file. File and
// syntax problems are the user's to fix, so they map to exit code 2.
func loadWorkflow(path string) (*domain.WorkflowConfig, error) {
	file, err := config.Load(path)
	if err != nil {
		return nil, errors.NewExitCode2Error(err)
	}
	cfg, err := config.Normalize(file)
	if err != nil {
		return nil, errors.NewExitCode2Error(err)
	}
	return cfg, nil
}

// newTemplateStore builds the template store, applying an override directory
// when one was given.
func newTemplateStore(overridesDir string) (*template.Store, error) {
	store := template.NewStore()
	if overridesDir == "" {
		return store, nil
	}
	if err := store.LoadOverrides(overridesDir); err != nil {
		return nil, errors.NewExitCode2Error(err)
	}
	return store, nil
}
