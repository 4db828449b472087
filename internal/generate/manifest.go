package generate

import (
	"fmt"
	"sort"

	"github.com/mrz1836/weave/internal/constants"
	"github.com/mrz1836/weave/internal/domain"
)

// renderJob is one document to produce: a template name, the archive path the
// rendered bytes go to, and the fully computed variable map.
type renderJob struct {
	TemplateName string
	Path         string
	Vars         map[string]string
}

// documentSpec declares one kind of document the export produces. Expand
// turns the configuration into zero or more concrete render jobs; feature
// flags live only in Include, so the expansion functions never branch on them.
type documentSpec struct {
	Kind         string
	TemplateName string
	Include      func(cfg *domain.WorkflowConfig) bool
	Expand       func(cfg *domain.WorkflowConfig) []renderJob
}

func always(*domain.WorkflowConfig) bool { return true }

// manifest is the ordered list of document kinds. Expansion order is output
// order, so the archive layout is stable across runs: orchestrator first,
// then the optional meta-agent, the epics in numeric order, the agents in
// identifier order, and the readme last.
var manifest = []documentSpec{
	{
		Kind:         "orchestrator",
		TemplateName: constants.TemplateOrchestrator,
		Include:      always,
		Expand: func(cfg *domain.WorkflowConfig) []renderJob {
			return []renderJob{{
				TemplateName: constants.TemplateOrchestrator,
				Path:         constants.OrchestratorDocPath,
				Vars: map[string]string{
					"PROJECT_NAME":        cfg.ProjectName,
					"EPIC_COUNT":          fmt.Sprintf("%d", cfg.EpicCount),
					"EPIC_SUMMARY":        epicSummary(cfg),
					"CUSTOM_INSTRUCTIONS": cfg.CustomInstructions,
				},
			}}
		},
	},
	{
		Kind:         "meta-agent",
		TemplateName: constants.TemplateMetaAgent,
		Include: func(cfg *domain.WorkflowConfig) bool {
			return cfg.Features.Enabled(domain.FeatureMetaAgent)
		},
		Expand: func(cfg *domain.WorkflowConfig) []renderJob {
			return []renderJob{{
				TemplateName: constants.TemplateMetaAgent,
				Path:         constants.MetaAgentDocPath,
				Vars: map[string]string{
					"PROJECT_NAME": cfg.ProjectName,
					"EPIC_COUNT":   fmt.Sprintf("%d", cfg.EpicCount),
				},
			}}
		},
	},
	{
		Kind:         "epic",
		TemplateName: constants.TemplateEpic,
		Include:      always,
		Expand: func(cfg *domain.WorkflowConfig) []renderJob {
			jobs := make([]renderJob, 0, cfg.EpicCount)
			for n := 1; n <= cfg.EpicCount; n++ {
				epic := cfg.Epics[n]
				jobs = append(jobs, renderJob{
					TemplateName: constants.TemplateEpic,
					Path:         epicDocPath(n),
					Vars: map[string]string{
						"EPIC_NUMBER":     fmt.Sprintf("%d", n),
						"EPIC_NAME":       epic.Name,
						"PROJECT_NAME":    cfg.ProjectName,
						"EPIC_PURPOSE":    epic.Purpose,
						"EPIC_DEFINITION": epic.Definition,
						"COLLABORATORS":   bulletList(epic.SuggestedCollaborators),
						"PREV_EPIC":       epicRef(cfg, n-1),
						"NEXT_EPIC":       epicRef(cfg, n+1),
					},
				})
			}
			return jobs
		},
	},
	{
		Kind:         "agent",
		TemplateName: constants.TemplateAgent,
		Include: func(cfg *domain.WorkflowConfig) bool {
			return cfg.Features.Enabled(domain.FeatureSpecializedAgents) && len(cfg.Agents) > 0
		},
		Expand: func(cfg *domain.WorkflowConfig) []renderJob {
			ids := sortedAgentIDs(cfg.Agents)
			jobs := make([]renderJob, 0, len(ids))
			for _, id := range ids {
				agent := cfg.Agents[id]
				jobs = append(jobs, renderJob{
					TemplateName: constants.TemplateAgent,
					Path:         agentDocPath(id),
					Vars: map[string]string{
						"AGENT_NAME":         agent.Name,
						"AGENT_DOMAIN":       agent.Domain,
						"AGENT_DESCRIPTION":  agent.Description,
						"AGENT_CAPABILITIES": capabilityList(agent.Capabilities),
						"AGENT_INSTRUCTIONS": agent.Instructions,
						"RESPONSE_FORMAT":    agent.ResponseFormat,
					},
				})
			}
			return jobs
		},
	},
	{
		Kind:         "readme",
		TemplateName: constants.TemplateReadme,
		Include:      always,
		Expand: func(cfg *domain.WorkflowConfig) []renderJob {
			return []renderJob{{
				TemplateName: constants.TemplateReadme,
				Path:         constants.ReadmeDocPath,
				Vars: map[string]string{
					"PROJECT_NAME":        cfg.ProjectName,
					"EPIC_COUNT":          fmt.Sprintf("%d", cfg.EpicCount),
					"EPIC_LIST":           epicList(cfg),
					"AGENT_LIST":          agentList(cfg),
					"DIRECTORY_STRUCTURE": directoryStructure(cfg),
					"DURATION_TABLE":      durationTable(cfg),
				},
			}}
		},
	},
}

// expandManifest turns the configuration into the full ordered job list.
func expandManifest(cfg *domain.WorkflowConfig) []renderJob {
	var jobs []renderJob
	for _, spec := range manifest {
		if !spec.Include(cfg) {
			continue
		}
		jobs = append(jobs, spec.Expand(cfg)...)
	}
	return jobs
}

func sortedAgentIDs(agents map[string]domain.AgentDefinition) []string {
	ids := make([]string, 0, len(agents))
	for id := range agents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
