package body

import "github.com/san-kum/orbitview/internal/vec"

// Trajectory is a fixed-capacity ring buffer of past positions.
// Samples are addressed by logical index: 0 is the oldest retained
// sample, Len()-1 the newest. Consumers never see the wraparound.
type Trajectory struct {
	data []vec.Vec3
	head int
	size int
}

// NewTrajectory creates a Trajectory holding up to capacity samples.
func NewTrajectory(capacity int) *Trajectory {
	return &Trajectory{data: make([]vec.Vec3, capacity)}
}

// Push appends a sample, evicting the oldest once full.
func (t *Trajectory) Push(p vec.Vec3) {
	t.data[t.head] = p
	t.head = (t.head + 1) % len(t.data)
	if t.size < len(t.data) {
		t.size++
	}
}

// Len returns the number of retained samples.
func (t *Trajectory) Len() int { return t.size }

// Cap returns the fixed capacity.
func (t *Trajectory) Cap() int { return len(t.data) }

// At returns the sample at logical index k, oldest first.
func (t *Trajectory) At(k int) vec.Vec3 {
	return t.data[(t.head-t.size+k+len(t.data))%len(t.data)]
}
