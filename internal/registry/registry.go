// Package registry holds the in-memory activity registry and its operations.
package registry

import (
	"sync"

	"example.com/signup/internal/domain"
)

// Registry is the authoritative store of activities for the process
// lifetime. All access goes through the mutex so concurrent handlers never
// race on a participant list.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// New constructs a Registry populated with the built-in seed set.
func New() *Registry {
	r := &Registry{activities: make(map[string]*domain.Activity)}
	r.seed()
	return r
}

func (r *Registry) seed() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, activity := range seedActivities() {
		r.activities[name] = activity
	}
}

// List returns a copy of every activity keyed by name. Participant slices
// are copied so callers cannot mutate registry state.
func (r *Registry) List() map[string]domain.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		copied := *activity
		copied.Participants = make([]string, len(activity.Participants))
		copy(copied.Participants, activity.Participants)
		out[name] = copied
	}
	return out
}

// Signup appends email to the activity's participant list.
func (r *Registry) Signup(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for _, participant := range activity.Participants {
		if participant == email {
			return domain.ErrAlreadyRegistered
		}
	}

	// max_participants is advisory; signup does not enforce capacity.
	activity.Participants = append(activity.Participants, email)
	return nil
}

// Unregister removes email from the activity's participant list, preserving
// the order of the remaining entries.
func (r *Registry) Unregister(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for i, participant := range activity.Participants {
		if participant == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotRegistered
}
