// Package constants provides centralized constant values used throughout weave.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

// Directory names and paths used by weave for organizing data.
const (
	// WeaveHome is the hidden directory name where weave stores all its data.
	// This directory is created in the user's home directory.
	WeaveHome = ".weave"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// CLILogFileName is the name of the rotating CLI log file.
	CLILogFileName = "weave.log"
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size in megabytes before log rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the maximum number of rotated log files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age in days before rotated logs are deleted.
	LogMaxAgeDays = 30

	// LogCompress enables gzip compression of rotated log files.
	LogCompress = true
)

// Archive layout paths. Every path inside the exported archive is relative
// and uses forward slashes regardless of host platform.
const (
	// CommandsDir is the archive directory holding orchestration command documents.
	CommandsDir = "commands"

	// EpicsDir is the archive directory (under CommandsDir) holding per-epic documents.
	EpicsDir = "commands/epics"

	// AgentsDir is the archive directory holding per-agent documents.
	AgentsDir = "agents"

	// OrchestratorDocPath is the archive path of the project orchestrator document.
	OrchestratorDocPath = "commands/orchestrate.md"

	// MetaAgentDocPath is the archive path of the optional meta-agent document.
	MetaAgentDocPath = "commands/meta-agent.md"

	// ReadmeDocPath is the archive path of the root summary document.
	ReadmeDocPath = "README.md"
)

// Template catalog names. A missing name is a fatal export error.
const (
	// TemplateOrchestrator renders the project orchestrator document.
	TemplateOrchestrator = "orchestrator"

	// TemplateMetaAgent renders the optional meta-agent document.
	TemplateMetaAgent = "meta-agent"

	// TemplateEpic renders one document per epic.
	TemplateEpic = "epic-definition"

	// TemplateAgent renders one document per specialized agent.
	TemplateAgent = "agent-definition"

	// TemplateReadme renders the root summary document.
	TemplateReadme = "readme"
)

// Export artifact naming.
const (
	// ArchiveFilenamePrefix is the prefix of the suggested download filename.
	ArchiveFilenamePrefix = "claude-workflow-"

	// ArchiveFilenameTimeLayout formats the wall-clock portion of the suggested
	// filename. Seconds precision keeps successive exports from colliding.
	ArchiveFilenameTimeLayout = "20060102-150405"

	// ArchiveFilenameExt is the extension of the exported archive.
	ArchiveFilenameExt = ".zip"
)

// Validation thresholds for workflow configurations.
const (
	// MinEpicCount is the minimum number of epics a workflow must define.
	MinEpicCount = 2

	// MinNameLength is the minimum trimmed length of epic and agent names.
	MinNameLength = 3

	// MinPurposeLength is the minimum trimmed length of an epic purpose
	// and an agent description.
	MinPurposeLength = 20

	// MinDefinitionLength is the minimum trimmed length of an epic definition.
	MinDefinitionLength = 50
)

// Defaults applied during configuration normalization. Normalization is the
// single place optional fields receive these values; nothing downstream
// default-coalesces at read sites.
const (
	// DefaultProjectName is used when the author leaves the project unnamed.
	DefaultProjectName = "Agentic Workflow"

	// DefaultAgentInstructions fills an agent's instructions field when blank.
	DefaultAgentInstructions = "Follow the epic definition exactly. Ask the orchestrator when requirements are ambiguous."

	// DefaultAgentResponseFormat fills an agent's response format field when blank.
	DefaultAgentResponseFormat = "Respond with a short summary of changes followed by a file-by-file breakdown."

	// NoAgentsSentinel appears in the root summary when the specialized-agents
	// feature is disabled or no agents are configured.
	NoAgentsSentinel = "No specialized agents configured."
)
