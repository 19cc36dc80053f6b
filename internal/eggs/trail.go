package eggs

// Trail records which eggs have been found this session.
type Trail struct {
	order []string
	found map[string]bool
}

// NewTrail creates an empty trail over the catalog's eggs.
func NewTrail(c Catalog) Trail {
	return Trail{order: c.Names(), found: make(map[string]bool, len(c))}
}

// Mark returns a trail with name marked as found. Unknown names are ignored.
func (t Trail) Mark(name string) Trail {
	if t.found[name] {
		return t
	}
	known := false
	for _, n := range t.order {
		if n == name {
			known = true
			break
		}
	}
	if !known {
		return t
	}
	found := make(map[string]bool, len(t.found)+1)
	for k, v := range t.found {
		found[k] = v
	}
	found[name] = true
	t.found = found
	return t
}

// Found reports whether name has been found.
func (t Trail) Found(name string) bool { return t.found[name] }

// Count returns how many eggs were found and how many exist.
func (t Trail) Count() (found, total int) {
	return len(t.found), len(t.order)
}

// Names returns the tracked egg names in catalog order.
func (t Trail) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}
