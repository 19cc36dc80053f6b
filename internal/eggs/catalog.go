// Package eggs describes the hidden easter eggs: the sequence that reveals
// each one, the toast it raises and the kind of panel the host shows.
package eggs

import (
	"strings"

	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/sequence"
)

// Kind selects how the host presents an egg.
type Kind int

const (
	KindFloating Kind = iota // small card at a random spot on screen
	KindLights               // full-screen lights out panel
	KindHacker               // fake terminal with a typing animation
	KindAbout                // about card listing the hidden keys
	KindShell                // interactive toy terminal
)

// Egg is one hidden surprise.
type Egg struct {
	Name  string
	Keys  []string
	Kind  Kind
	Icon  string
	Title string // panel heading
	Body  string // panel text
	Blurb string // one-line description on the about card; empty keeps it unlisted

	ToastTitle string
	ToastBody  string
}

// Hint returns the egg's sequence as the visitor types it.
func (e Egg) Hint() string {
	return strings.Join(e.Keys, "")
}

// Catalog is the ordered list of eggs. Order is the match priority.
type Catalog []Egg

// Default returns the built-in eggs.
func Default() Catalog {
	return Catalog{
		{
			Name: "sparkles", Blurb: "Sparkles animation", Keys: split("spa"), Kind: KindFloating, Icon: "✨",
			Title: "Magic Found!", Body: "You discovered a hidden sparkle.",
			ToastTitle: "Sparkles activated!", ToastBody: "You found a hidden animation.",
		},
		{
			Name: "ghost", Blurb: "Ghost appearance", Keys: split("boo"), Kind: KindFloating, Icon: "👻",
			Title: "Boo!", Body: "A friendly ghost appeared.",
			ToastTitle: "Ghost appeared!", ToastBody: "Something spooky is happening.",
		},
		{
			Name: "rabbit", Blurb: "Follow the rabbit", Keys: split("hop"), Kind: KindFloating, Icon: "🐇",
			Title: "Down the Rabbit Hole", Body: "How deep does it go?",
			ToastTitle: "Rabbit found!", ToastBody: "You've gone down the rabbit hole.",
		},
		{
			Name: "lightbulb", Blurb: "Lights out mode", Keys: split("night"), Kind: KindLights, Icon: "💡",
			Title: "Lights Out Mode", Body: "Working late? This hidden mode is easier on the eyes.",
			ToastTitle: "Lights out mode", ToastBody: "You've found the night mode easter egg.",
		},
		{
			Name: "terminal", Blurb: "Terminal mode", Keys: split("hack"), Kind: KindHacker, Icon: "🔑",
			Title: "Terminal",
			Body: "> Initializing system...\n" +
				"> Accessing hidden files...\n" +
				"> Welcome to the secret terminal.\n" +
				"> This website contains 6 easter eggs.\n" +
				"> Have you found them all yet?\n" +
				"> Type 'exit' or press Escape to return.",
			ToastTitle: "Terminal mode", ToastBody: "Hacker mode activated.",
		},
		{
			Name: "about", Blurb: "This screen", Keys: split("about"), Kind: KindAbout, Icon: "⌘",
			Title: "About Me",
			Body: "I'm a designer and developer who loves creating minimal, elegant solutions. " +
				"This page intentionally starts with almost nothing, rewarding the curious " +
				"with hidden experiences.",
			ToastTitle: "About screen", ToastBody: "You've found the secret about page.",
		},
		{
			Name: "exit", Keys: split("exit"), Kind: KindShell, Icon: ">_",
			Title:      "mini-terminal",
			ToastTitle: "Terminal activated", ToastBody: "Type 'help' to see available commands.",
		},
	}
}

// Lookup returns the egg with the given name.
func (c Catalog) Lookup(name string) (Egg, bool) {
	for _, e := range c {
		if e.Name == name {
			return e, true
		}
	}
	return Egg{}, false
}

// Listed returns the eggs that carry a blurb, in catalog order.
func (c Catalog) Listed() Catalog {
	var out Catalog
	for _, e := range c {
		if e.Blurb != "" {
			out = append(out, e)
		}
	}
	return out
}

// Names returns the egg names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, e := range c {
		names[i] = e.Name
	}
	return names
}

// Table converts the catalog into a detector table.
func (c Catalog) Table() sequence.Table {
	t := make(sequence.Table, len(c))
	for i, e := range c {
		t[i] = sequence.Sequence{Name: e.Name, Keys: e.Keys}
	}
	return t
}

// WithSequences returns a catalog whose sequences come from overrides.
// An override for a known egg replaces its keys and moves it to the
// override's position; eggs without an override keep their default keys
// and follow in catalog order. Overrides naming unknown eggs are kept in
// the returned table but have no egg, so nothing can handle them.
func (c Catalog) WithSequences(overrides sequence.Table) (Catalog, sequence.Table) {
	if len(overrides) == 0 {
		return c, c.Table()
	}

	out := make(Catalog, 0, len(c))
	table := make(sequence.Table, 0, len(c)+len(overrides))
	used := make(map[string]bool, len(overrides))
	for _, o := range overrides {
		table = append(table, o)
		if e, ok := c.Lookup(o.Name); ok && !used[o.Name] {
			e.Keys = append([]string(nil), o.Keys...)
			out = append(out, e)
		}
		used[o.Name] = true
	}
	for _, e := range c {
		if used[e.Name] {
			continue
		}
		out = append(out, e)
		table = append(table, sequence.Sequence{Name: e.Name, Keys: e.Keys})
	}
	return out, table
}

// split breaks a word into single-character key identifiers.
func split(word string) []string {
	keys := make([]string, 0, len(word))
	for _, r := range word {
		keys = append(keys, string(r))
	}
	return keys
}
