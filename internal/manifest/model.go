// Package manifest defines the codexsync.yaml configuration: remote skill
// targets and the local deploy allowlist. A compiled-in default configuration
// is used when no manifest file exists.
package manifest

// Config represents the top-level codexsync.yaml manifest.
type Config struct {
	Version int     `yaml:"version"`
	Skills  []Skill `yaml:"skills"`
	Deploy  Deploy  `yaml:"deploy"`
}

// Skill maps a directory in a remote repository to a local skill directory.
type Skill struct {
	Name       string `yaml:"name"`
	RepoURL    string `yaml:"repo_url"`
	Branch     string `yaml:"branch,omitempty"`
	RemotePath string `yaml:"remote_path"`
	LocalPath  string `yaml:"local_path"`
}

// EffectiveBranch returns the branch for this skill, defaulting to "main".
func (s *Skill) EffectiveBranch() string {
	if s.Branch != "" {
		return s.Branch
	}
	return "main"
}

// Deploy configures the local-to-destination sync: an explicit file
// allowlist, directories whose git-tracked files are included, and the
// destination root the files are copied into.
type Deploy struct {
	Files       []string `yaml:"files"`
	Dirs        []string `yaml:"dirs"`
	Destination string   `yaml:"destination,omitempty"`
}

// Default returns the built-in configuration used when no codexsync.yaml is
// present: the production skill mappings and the ~/.codex deploy allowlist.
func Default() *Config {
	return &Config{
		Version: 1,
		Skills: []Skill{
			{
				Name:       "ask-questions-if-underspecified",
				RepoURL:    "https://github.com/trailofbits/skills.git",
				Branch:     "main",
				RemotePath: "plugins/ask-questions-if-underspecified/skills/ask-questions-if-underspecified",
				LocalPath:  "skills/ask-questions-if-underspecified",
			},
			{
				Name:       "agent-browser",
				RepoURL:    "https://github.com/vercel-labs/agent-browser.git",
				Branch:     "main",
				RemotePath: "skills/agent-browser",
				LocalPath:  "skills/agent-browser",
			},
			{
				Name:       "pdf",
				RepoURL:    "https://github.com/anthropics/skills.git",
				Branch:     "main",
				RemotePath: "skills/pdf",
				LocalPath:  "skills/pdf",
			},
			{
				Name:       "frontend-design",
				RepoURL:    "https://github.com/anthropics/skills.git",
				Branch:     "main",
				RemotePath: "skills/frontend-design",
				LocalPath:  "skills/frontend-design",
			},
		},
		Deploy: Deploy{
			Files:       []string{"config.toml", "AGENTS.md", "notify.ps1"},
			Dirs:        []string{"agents", "skills"},
			Destination: "~/.codex",
		},
	}
}
