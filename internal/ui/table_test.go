package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable_render(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "SKILL", "PRESENT", "DIRTY")
	tbl.Row("pdf", true, false)
	tbl.Row("frontend-design", false, false)
	if err := tbl.Flush(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "SKILL") {
		t.Errorf("header missing SKILL: %q", lines[0])
	}
	if !strings.Contains(lines[1], "pdf") {
		t.Errorf("row 1 missing pdf: %q", lines[1])
	}
}

func TestTable_headerOnly(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "SKILL", "DIRTY")
	if err := tbl.Flush(); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("expected header only, got %d lines", len(lines))
	}
}
