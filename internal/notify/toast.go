// Package notify keeps the short-lived toast notifications raised when an
// egg is found. Toasts live in memory only and expire after a fixed time.
package notify

import "time"

// Defaults used when a Queue is created with zero values.
const (
	DefaultTTL = 3 * time.Second
	DefaultMax = 3
)

// Toast is one notification.
type Toast struct {
	ID          int
	Title       string
	Description string
	ExpiresAt   time.Time
}

// Queue holds visible toasts, newest first. The zero value is not usable;
// create one with NewQueue.
type Queue struct {
	ttl    time.Duration
	max    int
	nextID int
	toasts []Toast
}

// NewQueue creates a Queue. Non-positive ttl or max fall back to the defaults.
func NewQueue(ttl time.Duration, max int) Queue {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if max <= 0 {
		max = DefaultMax
	}
	return Queue{ttl: ttl, max: max, nextID: 1}
}

// TTL returns how long a toast stays visible.
func (q Queue) TTL() time.Duration { return q.ttl }

// Push adds a toast and returns the updated queue with the new toast's ID.
// The oldest toasts are dropped once more than max are visible.
func (q Queue) Push(title, description string, now time.Time) (Queue, int) {
	t := Toast{
		ID:          q.nextID,
		Title:       title,
		Description: description,
		ExpiresAt:   now.Add(q.ttl),
	}
	q.nextID++

	toasts := make([]Toast, 0, len(q.toasts)+1)
	toasts = append(toasts, t)
	toasts = append(toasts, q.toasts...)
	if len(toasts) > q.max {
		toasts = toasts[:q.max]
	}
	q.toasts = toasts
	return q, t.ID
}

// Dismiss removes the toast with the given ID, if present.
func (q Queue) Dismiss(id int) Queue {
	toasts := make([]Toast, 0, len(q.toasts))
	for _, t := range q.toasts {
		if t.ID != id {
			toasts = append(toasts, t)
		}
	}
	q.toasts = toasts
	return q
}

// Expire removes every toast whose expiry is not after now.
func (q Queue) Expire(now time.Time) Queue {
	toasts := make([]Toast, 0, len(q.toasts))
	for _, t := range q.toasts {
		if t.ExpiresAt.After(now) {
			toasts = append(toasts, t)
		}
	}
	q.toasts = toasts
	return q
}

// Visible returns the current toasts, newest first.
func (q Queue) Visible() []Toast {
	out := make([]Toast, len(q.toasts))
	copy(out, q.toasts)
	return out
}

// Len returns the number of visible toasts.
func (q Queue) Len() int { return len(q.toasts) }
