package notify

import (
	"strings"
	"testing"
)

func TestCompletionMessage(t *testing.T) {
	tests := []struct {
		name     string
		exitCode int
		contains string
	}{
		{name: "success", exitCode: 0, contains: "completed"},
		{name: "failure includes code", exitCode: 3, contains: "failed (exit 3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := CompletionMessage(tt.exitCode)
			if !strings.Contains(msg, tt.contains) {
				t.Errorf("CompletionMessage(%d) = %q, want substring %q", tt.exitCode, msg, tt.contains)
			}
		})
	}

	if CompletionMessage(0) == CompletionMessage(1) {
		t.Error("success and failure must be distinguishable")
	}
}

func TestBackgroundMessage(t *testing.T) {
	msg := BackgroundMessage(1234, 0)
	if !strings.Contains(msg, "1234") || !strings.Contains(msg, "finished") {
		t.Errorf("BackgroundMessage(1234, 0) = %q", msg)
	}

	msg = BackgroundMessage(1234, 9)
	if !strings.Contains(msg, "exit 9") || !strings.Contains(msg, "failed") {
		t.Errorf("BackgroundMessage(1234, 9) = %q", msg)
	}
}
