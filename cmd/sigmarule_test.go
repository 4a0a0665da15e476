package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const lintRule = `title: Suspicious Installation of Zenmap
logsource:
  product: linux
  service: shell
detection:
  keywords:
    - 'apt-get install zenmap'
  condition: keywords
level: high
`

func TestSigmaLintCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zenmap.yml")
	if err := os.WriteFile(path, []byte(lintRule), 0600); err != nil {
		t.Fatal(err)
	}

	command := sigmaLintCommand()
	command.Flags().Parse([]string{filepath.Join(dir, "*.yml")}) // nolint

	var runErr error
	output := stdout(func() {
		runErr = command.RunE(command, command.Flags().Args())
	})
	if runErr != nil {
		t.Fatalf("lint returned error: %v", runErr)
	}

	want := path + " ok\n"
	if string(output) != want {
		t.Errorf("lint output = %q, want %q", output, want)
	}
}

func TestSigmaLintCommandFlawedRule(t *testing.T) {
	dir := t.TempDir()
	rule := "title: No logsource\ndetection:\n  keywords:\n    - 'x'\n  condition: keywords\n"
	if err := os.WriteFile(filepath.Join(dir, "bad.yml"), []byte(rule), 0600); err != nil {
		t.Fatal(err)
	}

	command := sigmaLintCommand()
	command.Flags().Parse([]string{filepath.Join(dir, "*.yml")}) // nolint

	var runErr error
	output := stdout(func() {
		runErr = command.RunE(command, command.Flags().Args())
	})
	if runErr == nil {
		t.Error("lint did not report the flawed rule")
	}
	if !strings.Contains(string(output), "failed to validate rule") {
		t.Errorf("lint output = %q, want validation flaws", output)
	}
}

func TestSigmaLintCommandNoMatches(t *testing.T) {
	command := sigmaLintCommand()
	command.Flags().Parse([]string{filepath.Join(t.TempDir(), "*.yml")}) // nolint

	if err := command.RunE(command, command.Flags().Args()); err == nil {
		t.Error("lint did not fail on an empty glob")
	}
}
