// Package errors provides centralized error handling for weave.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrConfigNil indicates that a nil workflow configuration was passed to
	// the engine.
	ErrConfigNil = errors.New("configuration is nil")

	// ErrConfigFileMissing indicates the workflow configuration file does not exist.
	ErrConfigFileMissing = errors.New("configuration file not found")

	// ErrConfigLoadFailed indicates the workflow configuration file could not be read.
	ErrConfigLoadFailed = errors.New("configuration load failed")

	// ErrConfigParse indicates the workflow configuration file has invalid
	// YAML/JSON syntax.
	ErrConfigParse = errors.New("configuration parse error")

	// ErrExportRejected indicates the configuration failed validation and the
	// export was not started.
	ErrExportRejected = errors.New("configuration rejected by validation")

	// ErrExportFailed indicates the export aborted after validation passed.
	ErrExportFailed = errors.New("export failed")

	// ErrTemplateNotFound indicates the requested template does not exist in
	// the store. This is fatal for an export attempt.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateNameEmpty indicates a template override has an empty name.
	ErrTemplateNameEmpty = errors.New("template name is required")

	// ErrTemplateLoadFailed indicates a template override file could not be loaded.
	ErrTemplateLoadFailed = errors.New("template load failed")

	// ErrArchiveWrite indicates archive serialization failed.
	ErrArchiveWrite = errors.New("archive write failed")

	// ErrArchiveRead indicates an archive could not be opened or decoded.
	ErrArchiveRead = errors.New("archive read failed")

	// ErrArchiveEmpty indicates assembly was requested with no documents.
	ErrArchiveEmpty = errors.New("no documents to assemble")

	// ErrDocumentNotFound indicates a generated document path does not exist
	// in the document set.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidCapability indicates an unknown agent capability identifier.
	ErrInvalidCapability = errors.New("invalid capability")

	// ErrInvalidFeatureFlag indicates an unknown feature flag identifier.
	ErrInvalidFeatureFlag = errors.New("invalid feature flag")

	// ErrInvalidTransition indicates an attempt to make an invalid export
	// state transition.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrOperationCanceled indicates the user canceled an operation.
	ErrOperationCanceled = errors.New("operation canceled by user")

	// ErrInteractiveRequired indicates an interactive prompt is required but
	// no terminal is attached.
	ErrInteractiveRequired = errors.New("interactive prompt required")
)
