package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joneshong-skills/codex-headless/internal/models"
)

// Background log files are named codex-<timestamp>-<uuid8>.log. The timestamp
// prefix keeps directory listings sortable; the uuid suffix keeps two launches
// within the same second from colliding.
const logTimeLayout = "20060102-150405"

// NewLogName returns a fresh log file name for a run started at t.
func NewLogName(t time.Time) string {
	return fmt.Sprintf("codex-%s-%s.log", t.Format(logTimeLayout), uuid.NewString()[:8])
}

// NewLogPath returns a fresh log file path inside dir, creating dir if needed.
func NewLogPath(dir string, t time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}
	return filepath.Join(dir, NewLogName(t)), nil
}

// WriteLogHeader writes the wrapper's own comment lines at the top of a log.
// Everything after the blank line is raw bytes from the wrapped tool.
func WriteLogHeader(w io.Writer, command []string, startedAt time.Time, cwd string) error {
	if _, err := fmt.Fprintf(w, "# Command: %s\n", strings.Join(command, " ")); err != nil {
		return err
	}
	fmt.Fprintf(w, "# Started: %s\n", startedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "# CWD: %s\n", cwd)
	_, err := fmt.Fprintln(w)
	return err
}

// WriteLogPID records the wrapped process id once it is known.
func WriteLogPID(w io.Writer, pid int) error {
	_, err := fmt.Fprintf(w, "# PID: %d\n", pid)
	return err
}

// WriteLogTrailer appends the exit status after the wrapped tool's output
// has been fully written.
func WriteLogTrailer(w io.Writer, exitCode int, endedAt time.Time) error {
	if _, err := fmt.Fprintf(w, "\n# Exit: %d\n", exitCode); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "# Ended: %s\n", endedAt.Format("2006-01-02 15:04:05"))
	return err
}

// ParseLogHeader reads the leading "# " comment lines of a log file.
func ParseLogHeader(path string) (*models.LogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entry := &models.LogEntry{
		Name: filepath.Base(path),
		Path: path,
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "# ") {
			break
		}
		parseLogHeaderLine(entry, strings.TrimPrefix(line, "# "))
	}

	return entry, nil
}

func parseLogHeaderLine(entry *models.LogEntry, line string) {
	parts := strings.SplitN(line, ": ", 2)
	if len(parts) != 2 {
		return
	}
	key := strings.TrimSpace(parts[0])
	val := strings.TrimSpace(parts[1])

	switch key {
	case "Command":
		entry.Command = val
	case "Started":
		entry.StartedAt = val
	case "CWD":
		entry.CWD = val
	case "PID":
		if pid, err := strconv.Atoi(val); err == nil {
			entry.PID = pid
		}
	}
}

// ListLogs reads all log files in dir and returns their metadata, newest first.
// A missing directory is not an error: there are simply no logs yet.
func ListLogs(dir string) ([]*models.LogEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var logs []*models.LogEntry
	for _, e := range dirEntries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".log") {
			continue
		}

		entry, err := ParseLogHeader(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		logs = append(logs, entry)
	}

	// Timestamp is embedded in the name, so lexical order is chronological.
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Name > logs[j].Name
	})

	return logs, nil
}

// LatestLog returns the most recent log in dir, or nil if there are none.
func LatestLog(dir string) (*models.LogEntry, error) {
	logs, err := ListLogs(dir)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, nil
	}
	return logs[0], nil
}
