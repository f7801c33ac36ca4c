package cli

import (
	"bytes"
	"context"
	"io"
	"slices"
	"strings"
	"testing"
)

func TestCompleteFormats(t *testing.T) {
	tests := []struct {
		input    string
		contains string
		excludes string
	}{
		{"", "svg", ""},
		{"s", "png", ""},
		{"svg,", "svg,txt", "svg,svg"},
		{"svg,png,", "svg,png,tree", "svg,png,png"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, _ := completeFormats(nil, nil, tt.input)
			if !slices.Contains(got, tt.contains) {
				t.Errorf("completeFormats(%q) = %v, missing %q", tt.input, got, tt.contains)
			}
			if tt.excludes != "" && slices.Contains(got, tt.excludes) {
				t.Errorf("completeFormats(%q) = %v, should not offer %q", tt.input, got, tt.excludes)
			}
		})
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			c := New(io.Discard, LogInfo)
			root := c.RootCommand()
			var buf bytes.Buffer
			root.SetOut(&buf)
			root.SetArgs([]string{"completion", shell})
			if err := root.ExecuteContext(context.Background()); err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(buf.String(), appName) {
				t.Errorf("completion %s output does not mention %s", shell, appName)
			}
		})
	}
}

func TestCompletionCommandRejectsUnknownShell(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"completion", "tcsh"})
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Error("expected error for unsupported shell")
	}
}
