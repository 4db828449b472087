package domain

// Capability identifies a skill an agent brings to the workflow.
// This determines the capability listing rendered into agent documents.
type Capability string

// Capability constants define the fixed enumerated set of agent capabilities.
const (
	// CapabilityCodeReview reviews changes for correctness and style.
	CapabilityCodeReview Capability = "code-review"

	// CapabilityTesting writes and maintains automated tests.
	CapabilityTesting Capability = "testing"

	// CapabilityDocumentation writes user and developer documentation.
	CapabilityDocumentation Capability = "documentation"

	// CapabilityArchitecture designs system structure and interfaces.
	CapabilityArchitecture Capability = "architecture"

	// CapabilityDebugging diagnoses and fixes defects.
	CapabilityDebugging Capability = "debugging"

	// CapabilityRefactoring restructures code without changing behavior.
	CapabilityRefactoring Capability = "refactoring"

	// CapabilitySecurity reviews changes for security issues.
	CapabilitySecurity Capability = "security"

	// CapabilityPerformance profiles and optimizes hot paths.
	CapabilityPerformance Capability = "performance"
)

// String returns the string representation of the Capability.
// This implements fmt.Stringer for convenient logging and debugging.
func (c Capability) String() string {
	return string(c)
}

// capabilityDescriptions maps each capability to the human-readable
// description rendered into agent documents. The map is immutable after init.
var capabilityDescriptions = map[Capability]string{
	CapabilityCodeReview:    "Review code changes for correctness, readability, and adherence to project conventions",
	CapabilityTesting:       "Design and implement automated tests, including edge cases and regression coverage",
	CapabilityDocumentation: "Produce and maintain clear user-facing and developer-facing documentation",
	CapabilityArchitecture:  "Design component boundaries, interfaces, and data flow for maintainable systems",
	CapabilityDebugging:     "Diagnose failures, isolate root causes, and implement targeted fixes",
	CapabilityRefactoring:   "Restructure existing code to improve clarity without changing observable behavior",
	CapabilitySecurity:      "Identify and remediate security weaknesses in code and configuration",
	CapabilityPerformance:   "Profile execution, identify bottlenecks, and optimize critical paths",
}

// ValidCapabilities returns all valid capability values in a stable order.
func ValidCapabilities() []Capability {
	return []Capability{
		CapabilityCodeReview,
		CapabilityTesting,
		CapabilityDocumentation,
		CapabilityArchitecture,
		CapabilityDebugging,
		CapabilityRefactoring,
		CapabilitySecurity,
		CapabilityPerformance,
	}
}

// IsValidCapability checks if the capability is a known valid value.
func IsValidCapability(c Capability) bool {
	_, ok := capabilityDescriptions[c]
	return ok
}

// Describe returns the human-readable description of the capability.
// Unknown capabilities return an empty string; the validator rejects them
// before any document is rendered.
func (c Capability) Describe() string {
	return capabilityDescriptions[c]
}
