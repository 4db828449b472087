package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflowConfig_Clone_DeepCopies(t *testing.T) {
	original := &WorkflowConfig{
		ProjectName: "Demo",
		EpicCount:   2,
		Epics: map[int]EpicDefinition{
			1: {Name: "Setup", SuggestedCollaborators: []string{"backend-dev"}},
			2: {Name: "Ship", SuggestedCollaborators: []string{"devops"}},
		},
		Agents: map[string]AgentDefinition{
			"reviewer": {Name: "Reviewer", Capabilities: []Capability{CapabilityCodeReview}},
		},
		Features: NewFeatureSet(FeatureSpecializedAgents),
	}

	clone := original.Clone()
	require.NotNil(t, clone)

	// Mutating the clone must not leak into the original.
	epic := clone.Epics[1]
	epic.SuggestedCollaborators[0] = "changed"
	clone.Epics[1] = epic
	clone.Agents["reviewer"] = AgentDefinition{Name: "Other"}
	clone.Features[FeatureMetaAgent] = true

	assert.Equal(t, "backend-dev", original.Epics[1].SuggestedCollaborators[0])
	assert.Equal(t, "Reviewer", original.Agents["reviewer"].Name)
	assert.False(t, original.Features.Enabled(FeatureMetaAgent))
}

func TestWorkflowConfig_Clone_NilMaps(t *testing.T) {
	original := &WorkflowConfig{ProjectName: "Demo", EpicCount: 2}

	clone := original.Clone()

	require.NotNil(t, clone)
	assert.Nil(t, clone.Epics)
	assert.Nil(t, clone.Agents)
	assert.Nil(t, clone.Features)
}

func TestFeatureSet_Enabled(t *testing.T) {
	set := NewFeatureSet(FeatureMetaAgent)

	assert.True(t, set.Enabled(FeatureMetaAgent))
	assert.False(t, set.Enabled(FeatureSpecializedAgents))
}

func TestFeatureSet_NilSet(t *testing.T) {
	var set FeatureSet

	assert.False(t, set.Enabled(FeatureMetaAgent))
}

func TestIsValidFeatureFlag(t *testing.T) {
	assert.True(t, IsValidFeatureFlag(FeatureMetaAgent))
	assert.True(t, IsValidFeatureFlag(FeatureSpecializedAgents))
	assert.False(t, IsValidFeatureFlag(FeatureFlag("turbo-mode")))
}

func TestCapability_Describe(t *testing.T) {
	for _, c := range ValidCapabilities() {
		assert.NotEmpty(t, c.Describe(), "capability %s must have a description", c)
	}
	assert.Empty(t, Capability("juggling").Describe())
}

func TestIsValidCapability(t *testing.T) {
	assert.True(t, IsValidCapability(CapabilitySecurity))
	assert.False(t, IsValidCapability(Capability("juggling")))
}

func TestValidCapabilities_StableOrder(t *testing.T) {
	first := ValidCapabilities()
	second := ValidCapabilities()

	assert.Equal(t, first, second)
	assert.Len(t, first, 8)
}

func TestValidationError_String(t *testing.T) {
	withSubject := ValidationError{
		Category:  CategoryEpic,
		SubjectID: "2",
		Field:     "name",
		Message:   "must be at least 3 characters",
	}
	assert.Equal(t, "epic 2: name: must be at least 3 characters", withSubject.String())

	configLevel := ValidationError{
		Category: CategoryConfiguration,
		Field:    "epicCount",
		Message:  "must be at least 2",
	}
	assert.Equal(t, "configuration: epicCount: must be at least 2", configLevel.String())
}

func TestExportState_Terminal(t *testing.T) {
	assert.True(t, ExportStateReady.Terminal())
	assert.True(t, ExportStateFailed.Terminal())
	assert.True(t, ExportStateRejected.Terminal())
	assert.False(t, ExportStateIdle.Terminal())
	assert.False(t, ExportStateValidating.Terminal())
	assert.False(t, ExportStateRendering.Terminal())
	assert.False(t, ExportStateAssembling.Terminal())
}

func TestExportState_CanTransition(t *testing.T) {
	assert.True(t, ExportStateIdle.CanTransition(ExportStateValidating))
	assert.True(t, ExportStateValidating.CanTransition(ExportStateRejected))
	assert.True(t, ExportStateValidating.CanTransition(ExportStateRendering))
	assert.True(t, ExportStateRendering.CanTransition(ExportStateAssembling))
	assert.True(t, ExportStateRendering.CanTransition(ExportStateFailed))
	assert.True(t, ExportStateAssembling.CanTransition(ExportStateReady))
	assert.True(t, ExportStateAssembling.CanTransition(ExportStateFailed))

	assert.False(t, ExportStateIdle.CanTransition(ExportStateReady))
	assert.False(t, ExportStateValidating.CanTransition(ExportStateAssembling))
	assert.False(t, ExportStateReady.CanTransition(ExportStateValidating))
	assert.False(t, ExportStateRejected.CanTransition(ExportStateRendering))
}
