// Package clock provides cancellation tokens for the game's two scheduled
// tasks: the per-frame step while running and the fixed-interval countdown.
//
// The host owns the actual timers. Every scheduled callback carries the Token
// it was issued with, and the callback is honored only while that token is
// still current. Cancelling a task bumps its generation, which turns every
// callback already in flight into a no-op.
package clock

import "time"

// Task identifies a schedulable task.
type Task int

const (
	TaskFrame     Task = iota // One simulation step per display frame
	TaskCountdown             // One countdown step per interval
	taskCount
)

// String returns a human-readable task name.
func (t Task) String() string {
	switch t {
	case TaskFrame:
		return "frame"
	case TaskCountdown:
		return "countdown"
	default:
		return "unknown"
	}
}

// Token identifies one scheduling of a task.
type Token struct {
	Task Task
	Gen  uint64
}

// Tokens tracks the current generation of each task. The zero value is ready
// to use and has no live tokens.
type Tokens struct {
	gens   [taskCount]uint64
	active [taskCount]bool
}

// Issue cancels any live token for task and returns a fresh one.
func (t *Tokens) Issue(task Task) Token {
	t.gens[task]++
	t.active[task] = true
	return Token{Task: task, Gen: t.gens[task]}
}

// Cancel invalidates the live token for task, if any. It reports whether a
// live token was actually cancelled.
func (t *Tokens) Cancel(task Task) bool {
	if !t.active[task] {
		return false
	}
	t.gens[task]++
	t.active[task] = false
	return true
}

// CancelAll invalidates every live token.
func (t *Tokens) CancelAll() {
	for task := Task(0); task < taskCount; task++ {
		t.Cancel(task)
	}
}

// Valid reports whether tok is the live token for its task.
func (t *Tokens) Valid(tok Token) bool {
	if tok.Task < 0 || tok.Task >= taskCount {
		return false
	}
	return t.active[tok.Task] && t.gens[tok.Task] == tok.Gen
}

// Active reports whether task currently has a live token.
func (t *Tokens) Active(task Task) bool {
	return t.active[task]
}

// FrameInterval converts a frame rate to the delay between frames.
// Non-positive rates fall back to 60 FPS.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}
