package domain

// ExportState represents the state of an export attempt in the weave state machine.
type ExportState string

// Export state constants. Ready and Failed are terminal for the attempt;
// Rejected returns the orchestrator to Idle for a fresh request.
const (
	// ExportStateIdle indicates no export is in flight.
	ExportStateIdle ExportState = "idle"

	// ExportStateValidating indicates the configuration is being validated.
	ExportStateValidating ExportState = "validating"

	// ExportStateRejected indicates validation failed; the full error list is
	// surfaced and no documents were generated.
	ExportStateRejected ExportState = "rejected"

	// ExportStateRendering indicates documents are being generated.
	ExportStateRendering ExportState = "rendering"

	// ExportStateAssembling indicates the archive is being serialized.
	ExportStateAssembling ExportState = "assembling"

	// ExportStateReady indicates the archive and filename are available.
	ExportStateReady ExportState = "ready"

	// ExportStateFailed indicates a fatal error aborted the export with no
	// partial output.
	ExportStateFailed ExportState = "failed"
)

// String returns the string representation of the ExportState.
func (s ExportState) String() string {
	return string(s)
}

// Terminal reports whether the state ends the attempt.
func (s ExportState) Terminal() bool {
	switch s {
	case ExportStateRejected, ExportStateReady, ExportStateFailed:
		return true
	case ExportStateIdle, ExportStateValidating, ExportStateRendering, ExportStateAssembling:
		return false
	}
	return false
}

// exportTransitions defines the legal edges of the export state machine.
var exportTransitions = map[ExportState][]ExportState{
	ExportStateIdle:       {ExportStateValidating},
	ExportStateValidating: {ExportStateRejected, ExportStateRendering},
	ExportStateRendering:  {ExportStateAssembling, ExportStateFailed},
	ExportStateAssembling: {ExportStateReady, ExportStateFailed},
}

// CanTransition reports whether moving from s to next is a legal edge of the
// export state machine.
func (s ExportState) CanTransition(next ExportState) bool {
	for _, allowed := range exportTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// ExportResult is the discriminated outcome of one export attempt.
// Exactly one of the three shapes is populated, selected by State:
//
//   - ExportStateReady: Archive and Filename
//   - ExportStateRejected: Errors
//   - ExportStateFailed: Message
type ExportResult struct {
	// State is the terminal state of the attempt.
	State ExportState `json:"status"`

	// Archive is the serialized zip artifact. Present only when ready.
	Archive []byte `json:"-"`

	// Filename is the suggested download filename. Present only when ready.
	Filename string `json:"filename,omitempty"`

	// Errors is the ordered validation error list. Present only when rejected.
	Errors []ValidationError `json:"errors,omitempty"`

	// Message describes the fatal failure. Present only when failed.
	Message string `json:"message,omitempty"`
}
