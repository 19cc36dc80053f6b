package tui

import "time"

// introDoneMsg ends the intro fade.
type introDoneMsg struct{}

// toastExpiredMsg dismisses one toast once its TTL has passed.
type toastExpiredMsg struct{ id int }

// pulseMsg advances the lights animation. gen ties it to the egg view that
// scheduled it; ticks from a closed view are dropped.
type pulseMsg struct{ gen int }

// typeMsg reveals the next rune of the hacker text.
type typeMsg struct{ gen int }

// Animation timing.
const (
	pulseInterval = 100 * time.Millisecond
	typeMinDelay  = 20 * time.Millisecond
	typeMaxDelay  = 50 * time.Millisecond
)
