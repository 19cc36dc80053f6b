package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"pkt.systems/pslog"
)

// Serve runs the toy terminal in line mode: one command per input line,
// output written to w, until exit, EOF or ctx is done.
func (s *Shell) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	log := pslog.Ctx(ctx)
	for _, line := range Welcome {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("shell: write: %w", err)
		}
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		if _, err := fmt.Fprint(w, "$ "); err != nil {
			return fmt.Errorf("shell: write: %w", err)
		}
		var input string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(w)
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("shell: read: %w", err)
					}
				default:
				}
				return nil
			}
			input = l
		}

		res := s.Run(input)
		log.Debug("shell command", "command", res.Command)
		if res.Clear {
			// ANSI clear screen and home cursor.
			fmt.Fprint(w, "\x1b[2J\x1b[H")
			continue
		}
		// The prompt already echoed the command; skip the "$ cmd" line.
		for _, out := range res.Lines[1:] {
			if _, err := fmt.Fprintln(w, out); err != nil {
				return fmt.Errorf("shell: write: %w", err)
			}
		}
		if res.Exit {
			return nil
		}
	}
}
