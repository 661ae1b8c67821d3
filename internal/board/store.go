package board

import "github.com/mmynk/classboard/internal/models"

// Store holds the current AppState. It performs no validation: invariants are
// the Board's job. Values are cloned on the way in and out so neither callers
// nor history snapshots can alias the live state.
type Store struct {
	state models.AppState
	hooks []func(models.AppState)
}

// NewStore creates a store holding initial.
func NewStore(initial models.AppState) *Store {
	return &Store{state: initial.Clone()}
}

// State returns a copy of the current state.
func (s *Store) State() models.AppState {
	return s.state.Clone()
}

// SetState replaces the whole state and runs change hooks. There is no
// partial merge; callers supply a fully formed tuple.
func (s *Store) SetState(next models.AppState) {
	s.state = next.Clone()
	for _, hook := range s.hooks {
		hook(s.state.Clone())
	}
}

// OnChange registers fn to run after every SetState.
func (s *Store) OnChange(fn func(models.AppState)) {
	s.hooks = append(s.hooks, fn)
}
