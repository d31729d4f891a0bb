package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderCommandWritesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	configPath := filepath.Join(dir, "jobform.yaml")
	if err := os.WriteFile(configPath, []byte("title: Careers at Acme\nsink:\n  kind: none\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	output := filepath.Join(dir, "form.html")

	var stdout bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetArgs([]string{"render", "--config", configPath, "--output", output})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if !strings.Contains(stdout.String(), "Form written to") {
		t.Fatalf("unexpected stdout %q", stdout.String())
	}
	html, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(html), "<title>Careers at Acme</title>") {
		t.Fatalf("unexpected html\n%s", html)
	}
}

func TestRootRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	configPath := filepath.Join(dir, "jobform.yaml")
	if err := os.WriteFile(configPath, []byte("sink:\n  kind: carrier-pigeon\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"render", "--config", configPath})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected config validation error")
	}
}
