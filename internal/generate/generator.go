// Package generate renders the export's document set from a validated
// workflow configuration.
//
// Generation is manifest driven: a declarative list of document kinds expands
// into concrete render jobs, the jobs render concurrently, and the results
// land in index-addressed slots so output order never depends on scheduling.
// Generation is pure with respect to the configuration and the template
// catalog; it reads no wall clock and touches no filesystem.
package generate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/weave/internal/domain"
	weaveerrors "github.com/mrz1836/weave/internal/errors"
	"github.com/mrz1836/weave/internal/template"
)

// TemplateStore provides template lookup by catalog name.
type TemplateStore interface {
	Get(name string) (string, error)
}

// Generator renders the full document set for a configuration.
type Generator struct {
	store TemplateStore
}

// NewGenerator returns a Generator backed by the given template store.
func NewGenerator(store TemplateStore) *Generator {
	return &Generator{store: store}
}

// Run renders every document the configuration calls for and returns them in
// manifest order. Any missing template or canceled context aborts the whole
// run with no partial result.
//
// The same configuration and catalog always produce byte-identical documents
// in the same order.
func (g *Generator) Run(ctx context.Context, cfg *domain.WorkflowConfig) ([]domain.Document, error) {
	if cfg == nil {
		return nil, weaveerrors.ErrConfigNil
	}

	jobs := expandManifest(cfg)
	docs := make([]domain.Document, len(jobs))

	grp, ctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tmpl, err := g.store.Get(job.TemplateName)
			if err != nil {
				return weaveerrors.Wrapf(err, "document %s", job.Path)
			}
			docs[i] = domain.Document{
				Path:    job.Path,
				Content: []byte(template.Render(tmpl, job.Vars)),
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
