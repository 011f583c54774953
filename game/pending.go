package game

// PendingEdit holds a control value while it is being dragged so that
// settings which regenerate the particle store are applied once, when the
// drag ends.
type PendingEdit struct {
	value  float32
	active bool
}

// Set records v as the value being dragged.
func (e *PendingEdit) Set(v float32) {
	e.value = v
	e.active = true
}

// Value returns the dragged value, or current when nothing is pending.
func (e *PendingEdit) Value(current float32) float32 {
	if e.active {
		return e.value
	}
	return current
}

// Active reports whether a value is waiting to be committed.
func (e *PendingEdit) Active() bool {
	return e.active
}

// Commit passes the pending value to apply and clears it. It returns false
// when nothing was pending.
func (e *PendingEdit) Commit(apply func(float32)) bool {
	if !e.active {
		return false
	}
	e.active = false
	apply(e.value)
	return true
}
