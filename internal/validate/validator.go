// Package validate checks workflow configurations against the export engine's
// content rules.
//
// Run is a batch validator, not a fail-fast one: every rule is evaluated
// regardless of earlier failures, and the complete violation list comes back
// in rule-evaluation order. The caller shows all of it in one pass, so the
// author never has to re-run export to discover errors one at a time.
package validate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mrz1836/weave/internal/constants"
	"github.com/mrz1836/weave/internal/domain"
	"github.com/mrz1836/weave/internal/template"
)

// Run validates a workflow configuration and returns every violated rule.
// It is a pure function: it never fails, never mutates cfg, and yields an
// identical error list for an identical configuration.
func Run(cfg *domain.WorkflowConfig) domain.ValidationResult {
	var errs []domain.ValidationError

	if cfg == nil {
		return domain.ValidationResult{
			Valid: false,
			Errors: []domain.ValidationError{{
				Category: domain.CategoryConfiguration,
				Field:    "configuration",
				Message:  "configuration is missing",
			}},
		}
	}

	// Rule 1: minimum epic count.
	if cfg.EpicCount < constants.MinEpicCount {
		errs = append(errs, domain.ValidationError{
			Category: domain.CategoryConfiguration,
			Field:    "epicCount",
			Message:  fmt.Sprintf("must be at least %d, got %d", constants.MinEpicCount, cfg.EpicCount),
		})
	}

	// Rules 2 and 3: per-index presence, then per-epic content rules.
	// A missing index skips the remaining rules for that index only.
	for n := 1; n <= cfg.EpicCount; n++ {
		epic, ok := cfg.Epics[n]
		if !ok {
			errs = append(errs, domain.ValidationError{
				Category:  domain.CategoryEpic,
				SubjectID: strconv.Itoa(n),
				Field:     "epic",
				Message:   "epic is not defined",
			})
			continue
		}
		errs = append(errs, checkEpic(n, epic)...)
	}

	// Rule 4: duplicate trimmed names; every offending index gets its own error.
	errs = append(errs, checkEpicNameUniqueness(cfg.Epics)...)

	// Rule 5: unresolved placeholder tokens inside definitions.
	errs = append(errs, checkUnresolvedTokens(cfg.Epics)...)

	// Rule 6: agent rules, only when the specialized-agents feature is on.
	if cfg.Features.Enabled(domain.FeatureSpecializedAgents) {
		errs = append(errs, checkAgents(cfg.Agents)...)
	}

	// Rule 7: the defined-epic count must equal the declared count even when
	// every per-index rule passed. Catches orphaned entries left behind by
	// renumbering (e.g. an epic stored at index 5 of a 3-epic workflow).
	if len(cfg.Epics) != cfg.EpicCount {
		errs = append(errs, domain.ValidationError{
			Category: domain.CategoryConfiguration,
			Field:    "epics",
			Message:  fmt.Sprintf("%d epics defined but epicCount is %d", len(cfg.Epics), cfg.EpicCount),
		})
	}

	return domain.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// checkEpic applies the independent per-epic content rules.
// A single epic may accrue multiple errors.
func checkEpic(n int, epic domain.EpicDefinition) []domain.ValidationError {
	var errs []domain.ValidationError
	subject := strconv.Itoa(n)

	if trimmedLen(epic.Name) < constants.MinNameLength {
		errs = append(errs, domain.ValidationError{
			Category:  domain.CategoryEpic,
			SubjectID: subject,
			Field:     "name",
			Message:   fmt.Sprintf("must be at least %d characters", constants.MinNameLength),
		})
	}

	if trimmedLen(epic.Purpose) < constants.MinPurposeLength {
		errs = append(errs, domain.ValidationError{
			Category:  domain.CategoryEpic,
			SubjectID: subject,
			Field:     "purpose",
			Message:   fmt.Sprintf("must be at least %d characters", constants.MinPurposeLength),
		})
	}

	if trimmedLen(epic.Definition) < constants.MinDefinitionLength {
		errs = append(errs, domain.ValidationError{
			Category:  domain.CategoryEpic,
			SubjectID: subject,
			Field:     "definition",
			Message:   fmt.Sprintf("must be at least %d characters", constants.MinDefinitionLength),
		})
	}

	if len(epic.SuggestedCollaborators) == 0 {
		errs = append(errs, domain.ValidationError{
			Category:  domain.CategoryEpic,
			SubjectID: subject,
			Field:     "suggestedCollaborators",
			Message:   "must list at least one collaborator",
		})
	}

	return errs
}

// checkEpicNameUniqueness reports every epic whose trimmed name is shared
// with another epic. All offending indices receive an error, not just the
// later one, so the author sees the full collision.
func checkEpicNameUniqueness(epics map[int]domain.EpicDefinition) []domain.ValidationError {
	byName := make(map[string][]int)
	for n, epic := range epics {
		name := strings.TrimSpace(epic.Name)
		if name == "" {
			continue // Emptiness is already reported by the length rule.
		}
		byName[name] = append(byName[name], n)
	}

	var offenders []int
	names := make(map[int]string)
	for name, indices := range byName {
		if len(indices) < 2 {
			continue
		}
		for _, n := range indices {
			offenders = append(offenders, n)
			names[n] = name
		}
	}
	sort.Ints(offenders)

	errs := make([]domain.ValidationError, 0, len(offenders))
	for _, n := range offenders {
		errs = append(errs, domain.ValidationError{
			Category:  domain.CategoryEpic,
			SubjectID: strconv.Itoa(n),
			Field:     "name",
			Message:   fmt.Sprintf("duplicate epic name %q", names[n]),
		})
	}
	return errs
}

// checkUnresolvedTokens reports epics whose definition still carries
// {{TOKEN}} placeholders, listing every token found in one error.
func checkUnresolvedTokens(epics map[int]domain.EpicDefinition) []domain.ValidationError {
	indices := sortedIndices(epics)

	var errs []domain.ValidationError
	for _, n := range indices {
		tokens := template.UnresolvedTokens(epics[n].Definition)
		if len(tokens) == 0 {
			continue
		}
		errs = append(errs, domain.ValidationError{
			Category:  domain.CategoryEpic,
			SubjectID: strconv.Itoa(n),
			Field:     "definition",
			Message:   fmt.Sprintf("contains unresolved placeholder tokens: %s", strings.Join(tokens, ", ")),
		})
	}
	return errs
}

// checkAgents applies the agent rules symmetric to the epic rules:
// name length, description length, capability set, duplicate names.
func checkAgents(agents map[string]domain.AgentDefinition) []domain.ValidationError {
	ids := make([]string, 0, len(agents))
	for id := range agents {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var errs []domain.ValidationError
	for _, id := range ids {
		agent := agents[id]

		if trimmedLen(agent.Name) < constants.MinNameLength {
			errs = append(errs, domain.ValidationError{
				Category:  domain.CategoryAgent,
				SubjectID: id,
				Field:     "name",
				Message:   fmt.Sprintf("must be at least %d characters", constants.MinNameLength),
			})
		}

		if trimmedLen(agent.Description) < constants.MinPurposeLength {
			errs = append(errs, domain.ValidationError{
				Category:  domain.CategoryAgent,
				SubjectID: id,
				Field:     "description",
				Message:   fmt.Sprintf("must be at least %d characters", constants.MinPurposeLength),
			})
		}

		if len(agent.Capabilities) == 0 {
			errs = append(errs, domain.ValidationError{
				Category:  domain.CategoryAgent,
				SubjectID: id,
				Field:     "capabilities",
				Message:   "must list at least one capability",
			})
		}
		for _, c := range agent.Capabilities {
			if !domain.IsValidCapability(c) {
				errs = append(errs, domain.ValidationError{
					Category:  domain.CategoryAgent,
					SubjectID: id,
					Field:     "capabilities",
					Message:   fmt.Sprintf("unknown capability %q", c),
				})
			}
		}
	}

	errs = append(errs, checkAgentNameUniqueness(agents, ids)...)
	errs = append(errs, checkAgentDocNames(ids)...)
	return errs
}

// checkAgentDocNames guards the archive layout: each agent document is named
// after the slug of the agent's identifier, so an identifier must slug to a
// non-empty value no other identifier shares. Both offenders of a collision
// are reported, matching the duplicate-name rule.
func checkAgentDocNames(sortedIDs []string) []domain.ValidationError {
	bySlug := make(map[string][]string)
	for _, id := range sortedIDs {
		bySlug[domain.Slugify(id)] = append(bySlug[domain.Slugify(id)], id)
	}

	var errs []domain.ValidationError
	for _, id := range sortedIDs {
		slug := domain.Slugify(id)
		if slug == "" {
			errs = append(errs, domain.ValidationError{
				Category:  domain.CategoryAgent,
				SubjectID: id,
				Field:     "id",
				Message:   "identifier must contain at least one letter or digit",
			})
			continue
		}
		if len(bySlug[slug]) > 1 {
			errs = append(errs, domain.ValidationError{
				Category:  domain.CategoryAgent,
				SubjectID: id,
				Field:     "id",
				Message:   fmt.Sprintf("identifier produces document name %q, shared with another agent", slug),
			})
		}
	}
	return errs
}

// checkAgentNameUniqueness mirrors the epic duplicate-name rule for agents.
func checkAgentNameUniqueness(agents map[string]domain.AgentDefinition, sortedIDs []string) []domain.ValidationError {
	byName := make(map[string][]string)
	for _, id := range sortedIDs {
		name := strings.TrimSpace(agents[id].Name)
		if name == "" {
			continue
		}
		byName[name] = append(byName[name], id)
	}

	var errs []domain.ValidationError
	for _, id := range sortedIDs {
		name := strings.TrimSpace(agents[id].Name)
		if name == "" {
			continue
		}
		if len(byName[name]) > 1 {
			errs = append(errs, domain.ValidationError{
				Category:  domain.CategoryAgent,
				SubjectID: id,
				Field:     "name",
				Message:   fmt.Sprintf("duplicate agent name %q", name),
			})
		}
	}
	return errs
}

// sortedIndices returns the epic indices in ascending order for
// deterministic error ordering.
func sortedIndices(epics map[int]domain.EpicDefinition) []int {
	indices := make([]int, 0, len(epics))
	for n := range epics {
		indices = append(indices, n)
	}
	sort.Ints(indices)
	return indices
}

// trimmedLen returns the length of s after trimming surrounding whitespace.
func trimmedLen(s string) int {
	return len(strings.TrimSpace(s))
}
