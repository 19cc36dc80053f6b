// Package shell implements the toy command terminal revealed by the "exit"
// sequence. It is a fixed command table, not a real shell.
package shell

import (
	"strings"
	"time"
)

// DefaultUser is what whoami prints when no user is configured.
const DefaultUser = "guest-user"

// Welcome is the history a new terminal starts with.
var Welcome = []string{
	"> Welcome to mini-terminal v1.0",
	`> Type "help" for available commands`,
}

var helpLines = []string{
	"  Available commands:",
	"  help     - Show this help menu",
	"  clear    - Clear terminal screen",
	"  date     - Show current date and time",
	"  echo     - Echo text back to terminal",
	"  exit     - Close the terminal",
	"  ls       - List directory contents (fake)",
	"  whoami   - Display current user",
}

var lsLines = []string{
	"  Documents/  Pictures/  Music/",
	"  secret.txt  notes.md  config.json",
}

// Result is what running one command did.
type Result struct {
	Command string   // normalized input
	Lines   []string // output lines, including the "$ cmd" echo
	Clear   bool     // history must be emptied; Lines is empty
	Exit    bool     // the terminal should close
}

// Shell runs commands against the fixed table.
type Shell struct {
	User string
	Now  func() time.Time
}

// New creates a Shell. An empty user falls back to DefaultUser.
func New(user string) *Shell {
	if user == "" {
		user = DefaultUser
	}
	return &Shell{User: user, Now: time.Now}
}

// Run executes one line of input.
func (s *Shell) Run(input string) Result {
	cmd := strings.ToLower(strings.TrimSpace(input))
	res := Result{Command: cmd, Lines: []string{"$ " + cmd}}

	switch {
	case cmd == "":
	case cmd == "help":
		res.Lines = append(res.Lines, helpLines...)
	case cmd == "clear":
		res.Lines = nil
		res.Clear = true
	case cmd == "date":
		res.Lines = append(res.Lines, "  "+s.now().Format("Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"))
	case strings.HasPrefix(cmd, "echo "):
		res.Lines = append(res.Lines, "  "+cmd[len("echo "):])
	case cmd == "exit":
		res.Exit = true
	case cmd == "ls":
		res.Lines = append(res.Lines, lsLines...)
	case cmd == "whoami":
		res.Lines = append(res.Lines, "  "+s.User)
	default:
		res.Lines = append(res.Lines, "  Command not found: "+cmd)
	}
	return res
}

func (s *Shell) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// History is a terminal transcript that applies Results.
type History struct {
	lines []string
}

// NewHistory returns a transcript holding the welcome banner.
func NewHistory() History {
	return History{lines: append([]string(nil), Welcome...)}
}

// Apply returns the history after res.
func (h History) Apply(res Result) History {
	if res.Clear {
		return History{}
	}
	lines := make([]string, 0, len(h.lines)+len(res.Lines))
	lines = append(lines, h.lines...)
	lines = append(lines, res.Lines...)
	return History{lines: lines}
}

// Lines returns a copy of the transcript.
func (h History) Lines() []string {
	return append([]string(nil), h.lines...)
}
