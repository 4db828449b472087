package generate

import (
	"fmt"
	"strings"

	"github.com/mrz1836/weave/internal/constants"
	"github.com/mrz1836/weave/internal/domain"
)

// epicDocPath returns the archive path of the document for epic n.
func epicDocPath(n int) string {
	return fmt.Sprintf("%s/epic-%d.md", constants.EpicsDir, n)
}

// agentDocPath returns the archive path of an agent's document, derived from
// the slug of its map identifier. Identifiers are unique by construction and
// the validator rejects identifiers whose slugs are empty or collide, so two
// agents can never share a path here.
func agentDocPath(id string) string {
	return fmt.Sprintf("%s/agent-%s.md", constants.AgentsDir, domain.Slugify(id))
}

// epicRef formats a neighbor reference for the sequence section, or returns
// an empty string at the boundaries of the epic range.
func epicRef(cfg *domain.WorkflowConfig, n int) string {
	if n < 1 || n > cfg.EpicCount {
		return ""
	}
	return fmt.Sprintf("Epic %d: %s", n, cfg.Epics[n].Name)
}

// epicSummary builds the numbered epic overview embedded in the orchestrator
// document.
func epicSummary(cfg *domain.WorkflowConfig) string {
	lines := make([]string, 0, cfg.EpicCount)
	for n := 1; n <= cfg.EpicCount; n++ {
		epic := cfg.Epics[n]
		lines = append(lines, fmt.Sprintf("%d. **%s**: %s", n, epic.Name, epic.Purpose))
	}
	return strings.Join(lines, "\n")
}

// epicList builds the readme's epic index with a link target per epic.
func epicList(cfg *domain.WorkflowConfig) string {
	lines := make([]string, 0, cfg.EpicCount)
	for n := 1; n <= cfg.EpicCount; n++ {
		lines = append(lines, fmt.Sprintf("- Epic %d: %s (`%s`)", n, cfg.Epics[n].Name, epicDocPath(n)))
	}
	return strings.Join(lines, "\n")
}

// agentList builds the readme's agent index, or the sentinel line when the
// feature is off or no agents are configured.
func agentList(cfg *domain.WorkflowConfig) string {
	if !cfg.Features.Enabled(domain.FeatureSpecializedAgents) || len(cfg.Agents) == 0 {
		return constants.NoAgentsSentinel
	}
	ids := sortedAgentIDs(cfg.Agents)
	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		agent := cfg.Agents[id]
		lines = append(lines, fmt.Sprintf("- %s: %s (`%s`)", agent.Name, agent.Description, agentDocPath(id)))
	}
	return strings.Join(lines, "\n")
}

// bulletList renders items as a markdown bullet list.
func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

// capabilityList renders capabilities with their catalog descriptions.
func capabilityList(caps []domain.Capability) string {
	lines := make([]string, len(caps))
	for i, c := range caps {
		lines[i] = fmt.Sprintf("- %s: %s", c, c.Describe())
	}
	return strings.Join(lines, "\n")
}

// directoryStructure renders the archive layout preview from the same path
// set the manifest produces, so the readme never drifts from the real layout.
func directoryStructure(cfg *domain.WorkflowConfig) string {
	lines := []string{
		constants.ReadmeDocPath,
		constants.CommandsDir + "/",
		"  orchestrate.md",
	}
	if cfg.Features.Enabled(domain.FeatureMetaAgent) {
		lines = append(lines, "  meta-agent.md")
	}
	lines = append(lines, "  epics/")
	for n := 1; n <= cfg.EpicCount; n++ {
		lines = append(lines, fmt.Sprintf("    epic-%d.md", n))
	}
	if cfg.Features.Enabled(domain.FeatureSpecializedAgents) && len(cfg.Agents) > 0 {
		lines = append(lines, constants.AgentsDir+"/")
		for _, id := range sortedAgentIDs(cfg.Agents) {
			lines = append(lines, fmt.Sprintf("  agent-%s.md", domain.Slugify(id)))
		}
	}
	return strings.Join(lines, "\n")
}

// durationTable renders the placeholder estimate table for the readme.
// Estimates scale with definition length only as a rough starting point.
func durationTable(cfg *domain.WorkflowConfig) string {
	lines := []string{
		"| Epic | Estimate |",
		"| ---- | -------- |",
	}
	for n := 1; n <= cfg.EpicCount; n++ {
		epic := cfg.Epics[n]
		estimate := "1-2 days"
		if len(epic.Definition) > 500 {
			estimate = "3-5 days"
		}
		lines = append(lines, fmt.Sprintf("| Epic %d: %s | %s |", n, epic.Name, estimate))
	}
	return strings.Join(lines, "\n")
}
