// Package notify sends desktop notifications for completed runs.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Title is the fixed notification title.
const Title = "Codex"

// Send fires a desktop notification. Failures are returned so callers can
// log them, but a failed notification never masks the run's own result.
func Send(title, message string) error {
	return beeep.Notify(title, message, "")
}

// CompletionMessage renders the completion text for an exit status.
// Success and failure must be distinguishable at a glance.
func CompletionMessage(exitCode int) string {
	if exitCode == 0 {
		return "Headless task completed"
	}
	return fmt.Sprintf("Headless task failed (exit %d)", exitCode)
}

// BackgroundMessage renders the completion text for a background run.
func BackgroundMessage(pid, exitCode int) string {
	if exitCode == 0 {
		return fmt.Sprintf("Background task finished (PID %d)", pid)
	}
	return fmt.Sprintf("Background task failed (PID %d, exit %d)", pid, exitCode)
}
