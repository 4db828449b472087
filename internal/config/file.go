// Package config loads user-authored workflow configuration files and
// normalizes them into domain values.
//
// The file-facing types model optional fields as pointers (present|absent).
// Normalize is the single place defaults are applied; after it runs, the
// engine never default-coalesces at read sites.
package config

// FileConfig represents the YAML/JSON structure of a workflow configuration.
// Field names use both yaml and json tags for dual format support.
type FileConfig struct {
	ProjectName        *string              `yaml:"project_name,omitempty" json:"project_name,omitempty"`
	EpicCount          int                  `yaml:"epic_count" json:"epic_count"`
	Epics              map[int]FileEpic     `yaml:"epics" json:"epics"`
	Agents             map[string]FileAgent `yaml:"agents,omitempty" json:"agents,omitempty"`
	Features           []string             `yaml:"features,omitempty" json:"features,omitempty"`
	CustomInstructions *string              `yaml:"custom_instructions,omitempty" json:"custom_instructions,omitempty"`
}

// FileEpic represents one epic in the configuration file.
type FileEpic struct {
	Name                   string   `yaml:"name" json:"name"`
	Purpose                string   `yaml:"purpose" json:"purpose"`
	Definition             string   `yaml:"definition" json:"definition"`
	SuggestedCollaborators []string `yaml:"suggested_collaborators,omitempty" json:"suggested_collaborators,omitempty"`
}

// FileAgent represents one specialized agent in the configuration file.
type FileAgent struct {
	Name           string   `yaml:"name" json:"name"`
	Domain         *string  `yaml:"domain,omitempty" json:"domain,omitempty"`
	Description    string   `yaml:"description" json:"description"`
	Capabilities   []string `yaml:"capabilities,omitempty" json:"capabilities,omitempty"`
	Instructions   *string  `yaml:"instructions,omitempty" json:"instructions,omitempty"`
	ResponseFormat *string  `yaml:"response_format,omitempty" json:"response_format,omitempty"`
}
