// Package debugger implements the reversible stepping engine described in
// spec.md §4.5: an append-only history of machine snapshots with a cursor
// that can move forward (extending history by executing one more Step) or
// backward (re-pointing at an already-recorded snapshot) without ever
// re-running or inverting an instruction.
package debugger

import (
	"errors"

	"github.com/chip8deck/chip8deck/internal/chip8"
)

// Debugger owns an ordered, append-only history of machine snapshots and a
// cursor into it. Snapshot 0 is the post-load state.
type Debugger struct {
	history []*chip8.Machine
	cursor  int
	diff    bool
	rnd     chip8.RandSource
}

// New returns a Debugger whose history starts at the given machine. initial
// is cloned so later callers mutating their own copy cannot corrupt
// snapshot 0.
func New(initial *chip8.Machine) *Debugger {
	return &Debugger{
		history: []*chip8.Machine{initial.Clone()},
		cursor:  0,
		rnd:     chip8.DefaultRand,
	}
}

// SetRand overrides the random source used by StepForward, for deterministic
// tests.
func (d *Debugger) SetRand(rnd chip8.RandSource) {
	d.rnd = rnd
}

// Peek returns the machine snapshot at the cursor.
func (d *Debugger) Peek() *chip8.Machine {
	return d.history[d.cursor]
}

// PeekPrev returns the snapshot immediately before the cursor, or nil if
// the cursor is already at the start of history.
func (d *Debugger) PeekPrev() *chip8.Machine {
	if d.cursor == 0 {
		return nil
	}
	return d.history[d.cursor-1]
}

// Cursor returns the current history index.
func (d *Debugger) Cursor() int {
	return d.cursor
}

// Len returns the number of snapshots recorded so far.
func (d *Debugger) Len() int {
	return len(d.history)
}

// Diff reports whether diff highlighting is currently toggled on.
func (d *Debugger) Diff() bool {
	return d.diff
}

// ToggleDiff flips the diff-highlighting UI flag.
func (d *Debugger) ToggleDiff() {
	d.diff = !d.diff
}

// ErrAtEnd describes a backward step from index 0. StepBack itself does not
// return it: it reports that case by returning false.
var ErrAtEnd = errors.New("debugger: already at the oldest snapshot")

// StepForward advances the cursor by one instruction. If the cursor is
// already at the newest snapshot, it clones that snapshot, executes one
// chip8.Step against the clone, and appends the result to history only on
// success — a failing step leaves history and the cursor untouched and
// returns the interpreter's error. If the cursor is behind the end of
// history (the user stepped back earlier), it simply advances into the
// already-recorded snapshot.
func (d *Debugger) StepForward() error {
	if d.cursor == len(d.history)-1 {
		next := d.Peek().Clone()
		if err := chip8.Step(next, d.rnd); err != nil {
			return err
		}
		d.history = append(d.history, next)
	}
	d.cursor++
	return nil
}

// StepBack moves the cursor back one snapshot. It reports false (and does
// nothing) if the cursor is already at the start of history.
func (d *Debugger) StepBack() bool {
	if d.cursor == 0 {
		return false
	}
	d.cursor--
	return true
}

// StepsForward repeats StepForward up to n times, stopping early (and
// returning the error) on the first failure.
func (d *Debugger) StepsForward(n int) error {
	for i := 0; i < n; i++ {
		if err := d.StepForward(); err != nil {
			return err
		}
	}
	return nil
}

// StepsBack repeats StepBack up to n times, stopping early once the cursor
// reaches index 0.
func (d *Debugger) StepsBack(n int) {
	for i := 0; i < n; i++ {
		if !d.StepBack() {
			return
		}
	}
}

// RegisterDiff reports which pieces of visible state changed between two
// snapshots, for the TUI's diff-highlighting mode.
type RegisterDiff struct {
	V    [16]bool
	I    bool
	PC   bool
	SP   bool
	Delay bool
	Sound bool
}

// DiffSnapshots compares cur against prev and reports which fields differ.
// prev may be nil (the first snapshot has nothing to diff against), in
// which case nothing is reported as changed.
func DiffSnapshots(cur, prev *chip8.Machine) RegisterDiff {
	var rd RegisterDiff
	if prev == nil {
		return rd
	}
	for i := range cur.V {
		rd.V[i] = cur.V[i] != prev.V[i]
	}
	rd.I = cur.I != prev.I
	rd.PC = cur.PC != prev.PC
	rd.SP = cur.SP != prev.SP
	rd.Delay = cur.Delay != prev.Delay
	rd.Sound = cur.Sound != prev.Sound
	return rd
}
