package config

import (
	"fmt"
	"strings"

	"github.com/mrz1836/weave/internal/constants"
	"github.com/mrz1836/weave/internal/domain"
	weaveerrors "github.com/mrz1836/weave/internal/errors"
)

// Normalize converts a file configuration into a domain configuration with
// every default resolved. This is the only place optional fields receive
// their defaults:
//
//   - absent project name        -> constants.DefaultProjectName
//   - absent custom instructions -> empty string
//   - absent agent instructions  -> constants.DefaultAgentInstructions
//   - absent agent response fmt  -> constants.DefaultAgentResponseFormat
//
// Feature flags are checked against the known set here because they select
// engine behavior; an unknown flag is a caller error, not a content rule.
// Capability strings convert verbatim so the validator can report unknown
// capabilities as agent-level errors.
func Normalize(f *FileConfig) (*domain.WorkflowConfig, error) {
	if f == nil {
		return nil, weaveerrors.ErrConfigNil
	}

	features := make(domain.FeatureSet, len(f.Features))
	for _, name := range f.Features {
		flag := domain.FeatureFlag(name)
		if !domain.IsValidFeatureFlag(flag) {
			return nil, fmt.Errorf("%w: %q", weaveerrors.ErrInvalidFeatureFlag, name)
		}
		features[flag] = true
	}

	cfg := &domain.WorkflowConfig{
		ProjectName:        stringOr(f.ProjectName, constants.DefaultProjectName),
		EpicCount:          f.EpicCount,
		CustomInstructions: stringOr(f.CustomInstructions, ""),
		Features:           features,
	}

	cfg.Epics = make(map[int]domain.EpicDefinition, len(f.Epics))
	for n, e := range f.Epics {
		collaborators := make([]string, len(e.SuggestedCollaborators))
		copy(collaborators, e.SuggestedCollaborators)
		cfg.Epics[n] = domain.EpicDefinition{
			Name:                   e.Name,
			Purpose:                e.Purpose,
			Definition:             e.Definition,
			SuggestedCollaborators: collaborators,
		}
	}

	if len(f.Agents) > 0 {
		cfg.Agents = make(map[string]domain.AgentDefinition, len(f.Agents))
		for id, a := range f.Agents {
			capabilities := make([]domain.Capability, len(a.Capabilities))
			for i, c := range a.Capabilities {
				capabilities[i] = domain.Capability(c)
			}
			cfg.Agents[id] = domain.AgentDefinition{
				Name:           a.Name,
				Domain:         stringOr(a.Domain, ""),
				Description:    a.Description,
				Capabilities:   capabilities,
				Instructions:   stringOr(a.Instructions, constants.DefaultAgentInstructions),
				ResponseFormat: stringOr(a.ResponseFormat, constants.DefaultAgentResponseFormat),
			}
		}
	}

	return cfg, nil
}

// stringOr returns the pointed-to value when present and non-blank,
// otherwise the default. Absent and blank are treated the same: a blank
// project name or agent text field would render an empty template section.
func stringOr(s *string, def string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return def
	}
	return *s
}
