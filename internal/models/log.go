package models

// LogEntry describes a background run log discovered on disk.
// The header fields come from the wrapper's own "# " comment lines;
// everything after them is raw bytes from the wrapped tool.
type LogEntry struct {
	Name      string // file name, e.g. codex-20260829-143015-a1b2c3d4.log
	Path      string // absolute path
	Command   string // launched command line
	StartedAt string // wall-clock start time as written
	CWD       string // working directory of the run
	PID       int    // wrapped process id, 0 if the header was incomplete
}
