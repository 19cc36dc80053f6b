package tui

// Scene is what currently owns the screen.
type Scene int

const (
	SceneIntro    Scene = iota // blank page before it fades in
	SceneIdle                  // "nothing to see here"
	SceneEgg                   // an egg panel is showing
	SceneTerminal              // the toy terminal holds the keyboard
)

// validTransitions defines the allowed Scene transitions.
var validTransitions = map[Scene][]Scene{
	SceneIntro:    {SceneIdle, SceneEgg, SceneTerminal},
	SceneIdle:     {SceneEgg, SceneTerminal},
	SceneEgg:      {SceneIdle, SceneEgg, SceneTerminal},
	SceneTerminal: {SceneIdle},
}

// CanTransitionTo reports whether moving from s to next is valid.
func (s Scene) CanTransitionTo(next Scene) bool {
	for _, valid := range validTransitions[s] {
		if valid == next {
			return true
		}
	}
	return false
}

// String returns the lowercase scene name used in hints and logs.
func (s Scene) String() string {
	switch s {
	case SceneIntro:
		return "intro"
	case SceneIdle:
		return "idle"
	case SceneEgg:
		return "egg"
	case SceneTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// FeedsDetector reports whether keys pressed in this scene go to the
// sequence detector.
func (s Scene) FeedsDetector() bool {
	return s != SceneTerminal
}
