// Package domain provides shared domain types for the weave export engine.
package domain

import "maps"

// FeatureFlag identifies an optional capability of a workflow configuration.
type FeatureFlag string

// Feature flag constants define the optional export features.
const (
	// FeatureMetaAgent includes the meta-agent command document in the export.
	FeatureMetaAgent FeatureFlag = "meta-agent"

	// FeatureSpecializedAgents includes per-agent documents in the export and
	// enables agent validation rules.
	FeatureSpecializedAgents FeatureFlag = "specialized-agents"
)

// String returns the string representation of the FeatureFlag.
func (f FeatureFlag) String() string {
	return string(f)
}

// ValidFeatureFlags returns all valid feature flag values.
func ValidFeatureFlags() []FeatureFlag {
	return []FeatureFlag{FeatureMetaAgent, FeatureSpecializedAgents}
}

// IsValidFeatureFlag checks if the flag is a known valid feature flag.
func IsValidFeatureFlag(f FeatureFlag) bool {
	for _, valid := range ValidFeatureFlags() {
		if f == valid {
			return true
		}
	}
	return false
}

// FeatureSet is the set of enabled optional capabilities.
type FeatureSet map[FeatureFlag]bool

// NewFeatureSet builds a FeatureSet from the given flags.
func NewFeatureSet(flags ...FeatureFlag) FeatureSet {
	set := make(FeatureSet, len(flags))
	for _, f := range flags {
		set[f] = true
	}
	return set
}

// Enabled reports whether the given feature flag is enabled.
// A nil FeatureSet has no enabled features.
func (s FeatureSet) Enabled(f FeatureFlag) bool {
	return s[f]
}

// WorkflowConfig is the root aggregate describing a user-authored workflow.
// It is constructed by the caller (CLI or wizard), normalized once by the
// config package, and borrowed read-only by the engine for one export.
//
// Invariant: every index in 1..EpicCount maps to exactly one EpicDefinition.
// The validator enforces this; the engine assumes it after validation passes.
type WorkflowConfig struct {
	// ProjectName names the exported workflow. Normalization guarantees it is
	// non-empty.
	ProjectName string `json:"project_name"`

	// EpicCount is the declared number of epics, minimum 2.
	EpicCount int `json:"epic_count"`

	// Epics maps epic index (1..EpicCount) to its definition.
	Epics map[int]EpicDefinition `json:"epics"`

	// Agents maps agent identifier to its definition. Only consulted when the
	// specialized-agents feature is enabled.
	Agents map[string]AgentDefinition `json:"agents,omitempty"`

	// Features is the set of enabled optional capabilities.
	Features FeatureSet `json:"features,omitempty"`

	// CustomInstructions is free text included in the orchestrator document.
	CustomInstructions string `json:"custom_instructions,omitempty"`
}

// EpicDefinition is a named unit of work within the exported workflow.
type EpicDefinition struct {
	// Name identifies the epic. Must be at least 3 characters after trimming
	// and unique across all epics.
	Name string `json:"name"`

	// Purpose states what the epic achieves. At least 20 characters after trimming.
	Purpose string `json:"purpose"`

	// Definition is the free-form rendered content of the epic. At least 50
	// characters after trimming and free of unresolved placeholder tokens.
	Definition string `json:"definition"`

	// SuggestedCollaborators is the ordered, non-empty list of role names
	// recommended for the epic.
	SuggestedCollaborators []string `json:"suggested_collaborators"`
}

// AgentDefinition is an optional specialized role included in the export when
// the specialized-agents feature is enabled.
type AgentDefinition struct {
	// Name identifies the agent. At least 3 characters and unique across agents.
	Name string `json:"name"`

	// Domain is an optional descriptive string for the agent's area.
	Domain string `json:"domain,omitempty"`

	// Description explains the agent's role. At least 20 characters.
	Description string `json:"description"`

	// Capabilities is the non-empty set of capability identifiers, drawn from
	// the fixed enumerated set.
	Capabilities []Capability `json:"capabilities"`

	// Instructions is free text for the agent. Normalization fills a default
	// when the author leaves it blank.
	Instructions string `json:"instructions,omitempty"`

	// ResponseFormat describes the agent's expected output shape. Normalization
	// fills a default when blank.
	ResponseFormat string `json:"response_format,omitempty"`
}

// Clone creates a deep copy of the configuration.
// Value types are copied via struct assignment, while maps and nested slices
// are explicitly deep copied to prevent shared references.
func (c *WorkflowConfig) Clone() *WorkflowConfig {
	clone := *c

	if c.Epics != nil {
		clone.Epics = make(map[int]EpicDefinition, len(c.Epics))
		for n, e := range c.Epics {
			clone.Epics[n] = e.Clone()
		}
	}

	if c.Agents != nil {
		clone.Agents = make(map[string]AgentDefinition, len(c.Agents))
		for id, a := range c.Agents {
			clone.Agents[id] = a.Clone()
		}
	}

	if c.Features != nil {
		clone.Features = make(FeatureSet, len(c.Features))
		maps.Copy(clone.Features, c.Features)
	}

	return &clone
}

// Clone creates a deep copy of the epic definition.
func (e EpicDefinition) Clone() EpicDefinition {
	clone := e
	if e.SuggestedCollaborators != nil {
		clone.SuggestedCollaborators = make([]string, len(e.SuggestedCollaborators))
		copy(clone.SuggestedCollaborators, e.SuggestedCollaborators)
	}
	return clone
}

// Clone creates a deep copy of the agent definition.
func (a AgentDefinition) Clone() AgentDefinition {
	clone := a
	if a.Capabilities != nil {
		clone.Capabilities = make([]Capability, len(a.Capabilities))
		copy(clone.Capabilities, a.Capabilities)
	}
	return clone
}
