// Package export drives one export attempt through its state machine:
// validate the configuration, render the document set, assemble the archive.
//
// Failure is all or nothing. A rejected or failed attempt emits no archive
// bytes and leaves nothing behind; the orchestrator holds no state between
// attempts, so a corrected configuration can be resubmitted immediately.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mrz1836/weave/internal/archive"
	"github.com/mrz1836/weave/internal/clock"
	"github.com/mrz1836/weave/internal/constants"
	"github.com/mrz1836/weave/internal/domain"
	"github.com/mrz1836/weave/internal/logging"
	"github.com/mrz1836/weave/internal/validate"
)

// DocumentGenerator renders the document set for a validated configuration.
type DocumentGenerator interface {
	Run(ctx context.Context, cfg *domain.WorkflowConfig) ([]domain.Document, error)
}

// ProgressFunc observes state transitions during an attempt.
type ProgressFunc func(state domain.ExportState)

// Orchestrator runs export attempts. Construct with NewOrchestrator; the
// zero value is not usable.
type Orchestrator struct {
	generator  DocumentGenerator
	clock      clock.Clock
	logger     zerolog.Logger
	onProgress ProgressFunc
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithClock overrides the wall clock used for the archive filename.
func WithClock(c clock.Clock) Option {
	return func(o *Orchestrator) { o.clock = c }
}

// WithLogger sets the attempt logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// WithProgress registers a callback fired on every state transition.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Orchestrator) { o.onProgress = fn }
}

// NewOrchestrator returns an Orchestrator using the given generator. By
// default it reads the system clock and logs nowhere.
func NewOrchestrator(gen DocumentGenerator, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		generator: gen,
		clock:     clock.RealClock{},
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Export runs one attempt to completion and returns its terminal result.
//
// Validation failure yields a rejected result carrying the complete error
// list; generation happens only after a clean validation, so a rejected
// attempt performs zero template lookups. Any later error, including context
// cancellation, yields a failed result with no partial output.
func (o *Orchestrator) Export(ctx context.Context, cfg *domain.WorkflowConfig) domain.ExportResult {
	attemptID := uuid.NewString()
	logger := o.logger.With().Str("attempt_id", attemptID).Logger()
	started := o.clock.Now()

	state := domain.ExportStateIdle
	advance := func(next domain.ExportState) {
		if !state.CanTransition(next) {
			logger.Error().
				Str("from", state.String()).
				Str("to", next.String()).
				Msg("illegal export state transition")
		}
		state = next
		logger.Debug().Str("state", state.String()).Msg("export state changed")
		if o.onProgress != nil {
			o.onProgress(state)
		}
	}

	advance(domain.ExportStateValidating)
	result := validate.Run(cfg)
	if !result.Valid {
		advance(domain.ExportStateRejected)
		logger.Info().Int("error_count", len(result.Errors)).Msg("configuration rejected")
		return domain.ExportResult{State: domain.ExportStateRejected, Errors: result.Errors}
	}

	// Project name and custom instructions are author free text; redact
	// anything credential-shaped before it reaches the log file.
	logger.Debug().
		Str("project", logging.RedactIfSensitive("project_name", cfg.ProjectName)).
		Str("custom_instructions", logging.RedactIfSensitive("custom_instructions", cfg.CustomInstructions)).
		Int("epic_count", cfg.EpicCount).
		Msg("configuration accepted")

	advance(domain.ExportStateRendering)
	if err := ctx.Err(); err != nil {
		return o.fail(logger, advance, err)
	}
	docs, err := o.generator.Run(ctx, cfg)
	if err != nil {
		return o.fail(logger, advance, err)
	}
	logger.Debug().Int("document_count", len(docs)).Msg("documents rendered")

	advance(domain.ExportStateAssembling)
	if err := ctx.Err(); err != nil {
		return o.fail(logger, advance, err)
	}
	data, err := archive.Assemble(docs)
	if err != nil {
		return o.fail(logger, advance, err)
	}

	advance(domain.ExportStateReady)
	filename := Filename(o.clock.Now())
	logger.Info().
		Str("filename", filename).
		Int("archive_bytes", len(data)).
		Dur("elapsed", o.clock.Now().Sub(started)).
		Msg("export ready")
	return domain.ExportResult{
		State:    domain.ExportStateReady,
		Archive:  data,
		Filename: filename,
	}
}

// fail records the fatal error and returns the failed result.
func (o *Orchestrator) fail(logger zerolog.Logger, advance func(domain.ExportState), err error) domain.ExportResult {
	advance(domain.ExportStateFailed)
	logger.Error().Err(err).Msg("export failed")
	return domain.ExportResult{State: domain.ExportStateFailed, Message: err.Error()}
}

// Filename returns the suggested download filename for an archive completed
// at the given instant.
func Filename(at time.Time) string {
	return fmt.Sprintf("%s%s%s",
		constants.ArchiveFilenamePrefix,
		at.Format(constants.ArchiveFilenameTimeLayout),
		constants.ArchiveFilenameExt,
	)
}
