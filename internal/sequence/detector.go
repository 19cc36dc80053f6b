// Package sequence recognizes typed key sequences. A Detector keeps a rolling
// buffer of recent key identifiers and fires a handler when the buffer's tail
// matches one of its configured sequences.
package sequence

import (
	"strings"
	"time"
)

// DefaultTimeout is the maximum gap between two keys before the buffer is
// discarded as stale.
const DefaultTimeout = 1500 * time.Millisecond

// Sequence is a named target pattern of key identifiers.
type Sequence struct {
	Name string
	Keys []string
}

// Pattern returns the concatenated key identifiers.
func (s Sequence) Pattern() string {
	return strings.Join(s.Keys, "")
}

// Table is the ordered set of sequences a Detector recognizes. Order matters:
// when several sequences match at once, the earliest one wins.
type Table []Sequence

// Handlers binds sequence names to callbacks. A name present in only one of
// Table and Handlers never fires.
type Handlers map[string]func()

// Option configures a Detector.
type Option func(*Detector)

// WithTimeout sets the inter-key timeout. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(det *Detector) {
		if d > 0 {
			det.timeout = d
		}
	}
}

// Detector is the key-sequence recognizer. It is not safe for concurrent use;
// the host drives it from its single event loop.
type Detector struct {
	table   Table
	timeout time.Duration
	maxKeys int

	keys []string
	last time.Time
}

// New creates a Detector for the given table. The table is copied.
func New(table Table, opts ...Option) *Detector {
	det := &Detector{
		table:   cloneTable(table),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(det)
	}
	for _, s := range det.table {
		if n := len(s.Pattern()); n > det.maxKeys {
			det.maxKeys = n
		}
	}
	return det
}

// Timeout returns the configured inter-key timeout.
func (d *Detector) Timeout() time.Duration { return d.timeout }

// Table returns a copy of the configured sequences.
func (d *Detector) Table() Table { return cloneTable(d.table) }

// OnKey records a key press. If more than the timeout has passed since the
// previous key, the stale buffer is cleared before key is appended. OnKey does
// not match; call CheckMatches afterwards.
func (d *Detector) OnKey(key string, ts time.Time) {
	if key == "" {
		return
	}
	if len(d.keys) > 0 && ts.Sub(d.last) > d.timeout {
		d.keys = d.keys[:0]
	}
	d.last = ts
	d.keys = append(d.keys, key)

	// Each key is at least one character long, so the last maxKeys keys
	// always cover the longest pattern.
	if d.maxKeys > 0 && len(d.keys) > d.maxKeys {
		d.keys = append(d.keys[:0], d.keys[len(d.keys)-d.maxKeys:]...)
	}
}

// CheckMatches tests the buffer against every sequence that has a handler, in
// table order. The first sequence the buffer ends with has its handler invoked
// and the buffer cleared; no further sequences are tried. It reports the name
// of the sequence that fired.
func (d *Detector) CheckMatches(handlers Handlers) (string, bool) {
	if len(d.keys) == 0 {
		return "", false
	}
	current := strings.Join(d.keys, "")
	for _, s := range d.table {
		handler, ok := handlers[s.Name]
		if !ok || handler == nil {
			continue
		}
		pattern := s.Pattern()
		if pattern == "" || !strings.HasSuffix(current, pattern) {
			continue
		}
		d.keys = d.keys[:0]
		handler()
		return s.Name, true
	}
	return "", false
}

// Reset empties the buffer.
func (d *Detector) Reset() {
	d.keys = d.keys[:0]
}

// Keys returns a copy of the buffered key identifiers, oldest first.
func (d *Detector) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Pending returns the buffered keys concatenated, or "" when the buffer is empty.
func (d *Detector) Pending() string {
	return strings.Join(d.keys, "")
}

// LastKeyAt returns the arrival time of the most recent key.
func (d *Detector) LastKeyAt() time.Time { return d.last }

func cloneTable(t Table) Table {
	out := make(Table, len(t))
	for i, s := range t {
		keys := make([]string, len(s.Keys))
		copy(keys, s.Keys)
		out[i] = Sequence{Name: s.Name, Keys: keys}
	}
	return out
}
