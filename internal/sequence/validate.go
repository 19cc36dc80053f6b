package sequence

import (
	"fmt"
	"sort"
	"strings"
)

// Validate reports configuration problems that make a binding unable to fire.
// The results are warnings: a Detector works with any table and handler set,
// it just never fires the broken bindings.
func Validate(table Table, handlers Handlers) []string {
	var warnings []string

	seen := make(map[string]bool, len(table))
	for i, s := range table {
		switch {
		case s.Name == "":
			warnings = append(warnings, fmt.Sprintf("sequence #%d has no name", i+1))
		case seen[s.Name]:
			warnings = append(warnings, fmt.Sprintf("sequence %q is declared more than once", s.Name))
		}
		seen[s.Name] = true

		pattern := s.Pattern()
		if pattern == "" {
			warnings = append(warnings, fmt.Sprintf("sequence %q has no keys and never fires", s.Name))
			continue
		}
		if handlers != nil {
			if _, ok := handlers[s.Name]; !ok {
				warnings = append(warnings, fmt.Sprintf("sequence %q has no handler", s.Name))
			}
		}
		if other, ok := shadowedBy(table, i, handlers); ok {
			warnings = append(warnings, fmt.Sprintf("sequence %q is shadowed by %q, which always fires first", s.Name, other))
		}
	}

	var orphans []string
	for name := range handlers {
		if !seen[name] {
			orphans = append(orphans, name)
		}
	}
	sort.Strings(orphans)
	for _, name := range orphans {
		warnings = append(warnings, fmt.Sprintf("handler %q has no sequence", name))
	}

	return warnings
}

// shadowedBy finds a sequence that fires before table[i] can ever complete:
// one whose pattern ends inside table[i]'s pattern, or an earlier one that
// is a suffix of it.
func shadowedBy(table Table, i int, handlers Handlers) (string, bool) {
	pattern := table[i].Pattern()
	for j, other := range table {
		if j == i || other.Name == table[i].Name {
			continue
		}
		if handlers != nil {
			if _, ok := handlers[other.Name]; !ok {
				continue
			}
		}
		op := other.Pattern()
		if op == "" {
			continue
		}
		if strings.Contains(pattern[:len(pattern)-1], op) {
			return other.Name, true
		}
		if j < i && strings.HasSuffix(pattern, op) {
			return other.Name, true
		}
	}
	return "", false
}
