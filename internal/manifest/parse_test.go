package manifest

import (
	"strings"
	"testing"
)

func TestParse_valid(t *testing.T) {
	data := []byte(`
version: 1
skills:
  - name: pdf
    repo_url: https://github.com/anthropics/skills.git
    remote_path: skills/pdf
    local_path: skills/pdf
  - name: agent-browser
    repo_url: https://github.com/vercel-labs/agent-browser.git
    branch: release
    remote_path: skills/agent-browser
    local_path: skills/agent-browser
deploy:
  files: [config.toml]
  dirs: [skills]
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Skills) != 2 {
		t.Fatalf("skills count = %d, want 2", len(cfg.Skills))
	}
	if got := cfg.Skills[0].EffectiveBranch(); got != "main" {
		t.Errorf("default branch = %q, want main", got)
	}
	if got := cfg.Skills[1].EffectiveBranch(); got != "release" {
		t.Errorf("branch = %q, want release", got)
	}
}

func TestParse_missingVersion(t *testing.T) {
	if _, err := Parse([]byte("skills: []\n")); err == nil {
		t.Fatal("expected error for missing version")
	}
}

func TestParse_duplicateSkillName(t *testing.T) {
	data := []byte(`
version: 1
skills:
  - name: pdf
    repo_url: u
    remote_path: skills/pdf
    local_path: skills/pdf
  - name: pdf
    repo_url: u
    remote_path: skills/pdf2
    local_path: skills/pdf2
`)
	_, err := Parse(data)
	if err == nil || !strings.Contains(err.Error(), "duplicate skill name") {
		t.Fatalf("expected duplicate-name error, got %v", err)
	}
}

func TestParse_rejectsUnsafePaths(t *testing.T) {
	for _, path := range []string{"/etc/passwd", "../outside", "skills/../../outside"} {
		data := []byte(`
version: 1
skills:
  - name: bad
    repo_url: u
    remote_path: skills/bad
    local_path: ` + path + "\n")
		if _, err := Parse(data); err == nil {
			t.Errorf("local_path %q should be rejected", path)
		}
	}
}

func TestValidatePath(t *testing.T) {
	if err := ValidatePath("skills/pdf", "t"); err != nil {
		t.Errorf("relative path rejected: %v", err)
	}
	// Rejected regardless of existence.
	if err := ValidatePath("..", "t"); err == nil {
		t.Error(".. should be rejected")
	}
	if err := ValidatePath("a/../../b", "t"); err == nil {
		t.Error("escaping path should be rejected")
	}
	if err := ValidatePath("/abs", "t"); err == nil {
		t.Error("absolute path should be rejected")
	}
}

func TestDefault_isValidAndCoversProductionTargets(t *testing.T) {
	cfg := Default()
	if err := Validate(cfg); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	byName := make(map[string]Skill, len(cfg.Skills))
	for _, s := range cfg.Skills {
		if _, dup := byName[s.Name]; dup {
			t.Errorf("duplicate skill name %q", s.Name)
		}
		byName[s.Name] = s
	}

	pdf, ok := byName["pdf"]
	if !ok {
		t.Fatal("default config should include the pdf mapping")
	}
	if pdf.RepoURL != "https://github.com/anthropics/skills.git" || pdf.RemotePath != "skills/pdf" || pdf.LocalPath != "skills/pdf" {
		t.Errorf("pdf mapping = %+v", pdf)
	}

	fd, ok := byName["frontend-design"]
	if !ok {
		t.Fatal("default config should include the frontend-design mapping")
	}
	if fd.RemotePath != "skills/frontend-design" {
		t.Errorf("frontend-design mapping = %+v", fd)
	}

	if _, ok := byName["ask-questions-if-underspecified"]; !ok {
		t.Error("default config should include ask-questions-if-underspecified")
	}
	if _, ok := byName["agent-browser"]; !ok {
		t.Error("default config should include agent-browser")
	}
}

func TestFilterByNames(t *testing.T) {
	skills := []Skill{{Name: "a"}, {Name: "b"}, {Name: "c"}}

	got := FilterByNames(skills, []string{"b"}, nil)
	if len(got) != 1 || got[0].Name != "b" {
		t.Errorf("only filter = %v", got)
	}

	got = FilterByNames(skills, nil, []string{"b"})
	if len(got) != 2 || got[0].Name != "a" || got[1].Name != "c" {
		t.Errorf("skip filter = %v", got)
	}

	got = FilterByNames(skills, nil, nil)
	if len(got) != 3 {
		t.Errorf("no filter should keep all, got %v", got)
	}
}
