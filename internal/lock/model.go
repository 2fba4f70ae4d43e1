package lock

// File represents codexsync.lock.yaml.
type File struct {
	Version     int               `yaml:"version"`
	GeneratedAt string            `yaml:"generated_at"`
	ToolVersion string            `yaml:"tool_version"`
	Skills      map[string]*Skill `yaml:"skills"`
}

// Skill records the synced state of a single remote skill target.
type Skill struct {
	RepoURL    string `yaml:"repo_url"`
	Branch     string `yaml:"branch"`
	RemotePath string `yaml:"remote_path"`
	Commit     string `yaml:"commit"`
}
