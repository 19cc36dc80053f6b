package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
	"time"
)

func fixedShell() *Shell {
	s := New("")
	s.Now = func() time.Time { return time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC) }
	return s
}

func TestNew_DefaultUser(t *testing.T) {
	if got := New("").User; got != DefaultUser {
		t.Errorf("User = %q, want %q", got, DefaultUser)
	}
	if got := New("neo").User; got != "neo" {
		t.Errorf("User = %q, want neo", got)
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLines []string
		wantClear bool
		wantExit  bool
	}{
		{"empty", "   ", []string{"$ "}, false, false},
		{"help", "help", append([]string{"$ help"}, helpLines...), false, false},
		{"help is case-folded", "  HELP ", append([]string{"$ help"}, helpLines...), false, false},
		{"clear", "clear", nil, true, false},
		{"date", "date", []string{"$ date", "  Sat Mar 14 2026 15:09:26 GMT+0000 (UTC)"}, false, false},
		{"echo", "echo Hello There", []string{"$ echo hello there", "  hello there"}, false, false},
		{"bare echo is unknown", "echo", []string{"$ echo", "  Command not found: echo"}, false, false},
		{"exit", "exit", []string{"$ exit"}, false, true},
		{"ls", "ls", append([]string{"$ ls"}, lsLines...), false, false},
		{"whoami", "whoami", []string{"$ whoami", "  guest-user"}, false, false},
		{"unknown", "rm -rf /", []string{"$ rm -rf /", "  Command not found: rm -rf /"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := fixedShell().Run(tt.input)
			if !reflect.DeepEqual(res.Lines, tt.wantLines) {
				t.Errorf("Lines = %q, want %q", res.Lines, tt.wantLines)
			}
			if res.Clear != tt.wantClear {
				t.Errorf("Clear = %v, want %v", res.Clear, tt.wantClear)
			}
			if res.Exit != tt.wantExit {
				t.Errorf("Exit = %v, want %v", res.Exit, tt.wantExit)
			}
		})
	}
}

func TestHistory(t *testing.T) {
	s := fixedShell()
	h := NewHistory()
	if got := h.Lines(); !reflect.DeepEqual(got, Welcome) {
		t.Fatalf("NewHistory() = %q, want welcome banner", got)
	}

	h = h.Apply(s.Run("whoami"))
	want := append(append([]string(nil), Welcome...), "$ whoami", "  guest-user")
	if got := h.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("after whoami = %q, want %q", got, want)
	}

	h = h.Apply(s.Run("clear"))
	if got := h.Lines(); len(got) != 0 {
		t.Errorf("after clear = %q, want empty", got)
	}
}

func TestHistory_ApplyDoesNotAlias(t *testing.T) {
	s := fixedShell()
	base := NewHistory()
	a := base.Apply(s.Run("ls"))
	_ = base.Apply(s.Run("whoami"))
	if n := len(base.Lines()); n != len(Welcome) {
		t.Errorf("base history grew to %d lines", n)
	}
	if !strings.Contains(strings.Join(a.Lines(), "\n"), "secret.txt") {
		t.Errorf("history a lost its ls output: %q", a.Lines())
	}
}

func TestServe(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("whoami\necho hi\nexit\nls\n")

	if err := fixedShell().Serve(context.Background(), in, &out); err != nil {
		t.Fatalf("Serve() error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Welcome to mini-terminal", "guest-user", "  hi"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "secret.txt") {
		t.Errorf("commands after exit were run:\n%s", got)
	}
}

func TestServe_EOF(t *testing.T) {
	var out bytes.Buffer
	if err := fixedShell().Serve(context.Background(), strings.NewReader("date"), &out); err != nil {
		t.Fatalf("Serve() error: %v", err)
	}
	if !strings.Contains(out.String(), "2026") {
		t.Errorf("date output missing:\n%s", out.String())
	}
}

func TestServe_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r, w := io.Pipe()
	defer w.Close()

	var out bytes.Buffer
	if err := fixedShell().Serve(ctx, r, &out); !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() error = %v, want context.Canceled", err)
	}
}
