// Package history provides snapshot-based undo/redo.
//
// The engine never inspects state; it copies whole values in and out of a
// Holder. Callers take a snapshot before every mutation, and a snapshot
// discards the redo stack, so there is only ever one timeline.
package history

// Holder owns the live state. State must return a value that does not alias
// the holder's internals, and SetState must replace it wholesale.
type Holder[S any] interface {
	State() S
	SetState(S)
}

// Engine keeps past states oldest→newest and future states nearest→farthest.
type Engine[S any] struct {
	holder Holder[S]
	past   []S
	future []S
	limit  int
}

// New creates an engine over holder. A limit of 0 keeps every snapshot;
// otherwise the oldest entries are dropped once past exceeds limit.
func New[S any](holder Holder[S], limit int) *Engine[S] {
	return &Engine[S]{holder: holder, limit: limit}
}

// Snapshot records the current state as the newest past entry and clears
// the future. Call it exactly once before applying a mutation.
func (e *Engine[S]) Snapshot() {
	e.past = append(e.past, e.holder.State())
	if e.limit > 0 && len(e.past) > e.limit {
		e.past = e.past[len(e.past)-e.limit:]
	}
	e.future = nil
}

// Undo restores the newest past entry, moving the current state to the front
// of the future. It reports false (and does nothing) when there is nothing to undo.
func (e *Engine[S]) Undo() bool {
	if len(e.past) == 0 {
		return false
	}
	prev := e.past[len(e.past)-1]
	e.past = e.past[:len(e.past)-1]

	e.future = append([]S{e.holder.State()}, e.future...)
	e.holder.SetState(prev)
	return true
}

// Redo restores the nearest future entry, pushing the current state onto past.
func (e *Engine[S]) Redo() bool {
	if len(e.future) == 0 {
		return false
	}
	next := e.future[0]
	e.future = e.future[1:]

	e.past = append(e.past, e.holder.State())
	e.holder.SetState(next)
	return true
}

// CanUndo reports whether Undo would change state.
func (e *Engine[S]) CanUndo() bool { return len(e.past) > 0 }

// CanRedo reports whether Redo would change state.
func (e *Engine[S]) CanRedo() bool { return len(e.future) > 0 }

// Depth returns the sizes of the past and future stacks.
func (e *Engine[S]) Depth() (past, future int) {
	return len(e.past), len(e.future)
}

// Clear drops all history without touching the holder.
func (e *Engine[S]) Clear() {
	e.past = nil
	e.future = nil
}
