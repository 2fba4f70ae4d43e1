package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noahacgn/codex-config/internal/manifest"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// --- inputModel: bubbletea model for text input with validation ---

type inputModel struct {
	textInput textinput.Model
	title     string
	validate  func(string) error
	errMsg    string
	done      bool
	aborted   bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			val := m.textInput.Value()
			if m.validate != nil {
				if err := m.validate(val); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
	}
	m.errMsg = ""
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(m.textInput.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// --- confirmModel: bubbletea model for yes/no confirmation ---

type confirmModel struct {
	title   string
	value   bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "y", "Y":
			m.value = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.value = false
			m.done = true
			return m, tea.Quit
		case "left", "right", "tab", "h", "l":
			m.value = !m.value
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yes := " Yes "
	no := " No "
	if m.value {
		yes = selectedStyle.Render(" Yes ")
	} else {
		no = selectedStyle.Render(" No ")
	}
	return fmt.Sprintf("%s %s / %s\n", titleStyle.Render(m.title), yes, no)
}

// --- prompt helpers ---

func promptInput(title, placeholder string, validate func(string) error) (string, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	m := inputModel{
		textInput: ti,
		title:     title,
		validate:  validate,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}
	rm := result.(inputModel)
	if rm.aborted {
		return "", fmt.Errorf("user aborted")
	}
	return rm.textInput.Value(), nil
}

func promptConfirm(title string) (bool, error) {
	m := confirmModel{
		title: title,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, err
	}
	rm := result.(confirmModel)
	if rm.aborted {
		return false, fmt.Errorf("user aborted")
	}
	return rm.value, nil
}

// interactiveBuildConfig collects skill targets from the user, starting from
// the built-in deploy allowlist so only the remote mappings need typing.
func interactiveBuildConfig() (*manifest.Config, error) {
	cfg := &manifest.Config{Version: 1, Deploy: manifest.Default().Deploy}
	seen := make(map[string]bool)

	for {
		name, err := promptInput(
			"Skill name (empty to finish)",
			"pdf",
			func(s string) error {
				s = strings.TrimSpace(s)
				if s == "" {
					return nil
				}
				if seen[s] {
					return fmt.Errorf("skill %q is already added", s)
				}
				return nil
			},
		)
		if err != nil {
			return nil, err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			break
		}

		repoURL, err := promptInput(
			"Remote repository URL",
			"https://github.com/anthropics/skills.git",
			func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("repository URL is required")
				}
				return nil
			},
		)
		if err != nil {
			return nil, err
		}

		remotePath, err := promptInput(
			"Path inside the remote repository",
			"skills/"+name,
			func(s string) error { return manifest.ValidatePath(strings.TrimSpace(s), "remote path") },
		)
		if err != nil {
			return nil, err
		}
		remotePath = strings.TrimSpace(remotePath)
		if remotePath == "" {
			remotePath = "skills/" + name
		}

		cfg.Skills = append(cfg.Skills, manifest.Skill{
			Name:       name,
			RepoURL:    strings.TrimSpace(repoURL),
			Branch:     "main",
			RemotePath: remotePath,
			LocalPath:  "skills/" + name,
		})
		seen[name] = true

		more, err := promptConfirm("Add another skill target?")
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}

	if len(cfg.Skills) == 0 {
		return nil, fmt.Errorf("no skill targets configured")
	}
	return cfg, nil
}
