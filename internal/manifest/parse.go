package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Validate checks a configuration for errors.
func Validate(cfg *Config) error { return validate(cfg) }

// Save validates and writes a configuration to disk.
func Save(path string, cfg *Config) error {
	if err := validate(cfg); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Load reads and validates a codexsync.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates codexsync.yaml content.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", cfg.Version)
	}

	seen := make(map[string]bool, len(cfg.Skills))
	for i, s := range cfg.Skills {
		if err := validateSkill(i, s, seen); err != nil {
			return err
		}
		seen[s.Name] = true
	}

	for _, f := range cfg.Deploy.Files {
		if err := ValidatePath(f, "deploy.files"); err != nil {
			return err
		}
	}
	for _, d := range cfg.Deploy.Dirs {
		if err := ValidatePath(d, "deploy.dirs"); err != nil {
			return err
		}
	}
	return nil
}

func validateSkill(i int, s Skill, seen map[string]bool) error {
	if s.Name == "" {
		return fmt.Errorf("config: skills[%d].name is required", i)
	}
	if seen[s.Name] {
		return fmt.Errorf("config: duplicate skill name %q", s.Name)
	}
	if s.RepoURL == "" {
		return fmt.Errorf("config: skills[%d] (%s).repo_url is required", i, s.Name)
	}
	if s.RemotePath == "" {
		return fmt.Errorf("config: skills[%d] (%s).remote_path is required", i, s.Name)
	}
	if s.LocalPath == "" {
		return fmt.Errorf("config: skills[%d] (%s).local_path is required", i, s.Name)
	}
	if err := ValidatePath(s.RemotePath, s.Name+".remote_path"); err != nil {
		return err
	}
	return ValidatePath(s.LocalPath, s.Name+".local_path")
}

// ValidatePath ensures a path is relative and does not escape the repository
// root. Rejection is purely lexical; existence is not checked.
func ValidatePath(p, label string) error {
	if filepath.IsAbs(p) || strings.HasPrefix(p, "/") {
		return fmt.Errorf("config: %s: absolute path is not allowed: %s", label, p)
	}
	for _, part := range strings.Split(filepath.ToSlash(p), "/") {
		if part == ".." {
			return fmt.Errorf("config: %s: path must not escape the repository (contains ..): %s", label, p)
		}
	}
	return nil
}

// FilterByNames returns skills matching --only / --skip flags.
func FilterByNames(skills []Skill, only, skip []string) []Skill {
	if len(only) == 0 && len(skip) == 0 {
		return skills
	}
	onlySet := toSet(only)
	skipSet := toSet(skip)

	var result []Skill
	for _, s := range skills {
		if len(onlySet) > 0 && !onlySet[s.Name] {
			continue
		}
		if skipSet[s.Name] {
			continue
		}
		result = append(result, s)
	}
	return result
}

func toSet(ss []string) map[string]bool {
	m := make(map[string]bool, len(ss))
	for _, s := range ss {
		m[s] = true
	}
	return m
}
