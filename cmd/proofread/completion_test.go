package main

import (
	"strings"
	"testing"
)

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := execute(t, "", "", "completion", shell)
			if err != nil {
				t.Fatalf("completion %s returned error: %v", shell, err)
			}
			if !strings.Contains(out, "proofread") {
				t.Errorf("expected script to mention proofread, got %d bytes", len(out))
			}
		})
	}
}

func TestCompletionCommand_RejectsUnknownShell(t *testing.T) {
	for _, args := range [][]string{{"completion", "tcsh"}, {"completion"}} {
		if _, err := execute(t, "", "", args...); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}
}
