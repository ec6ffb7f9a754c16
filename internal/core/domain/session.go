package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionState is a state of the build session state machine:
// Init -> CompilingSimulator -> CompilingDevice -> Assembling -> Done,
// with any stage able to move to Failed.
type SessionState string

const (
	// SessionInit is the state before any stage has run.
	SessionInit SessionState = "init"
	// SessionCompilingSimulator is the simulator compile stage.
	SessionCompilingSimulator SessionState = "compiling-simulator"
	// SessionCompilingDevice is the device compile stage.
	SessionCompilingDevice SessionState = "compiling-device"
	// SessionAssembling covers bundle assembly.
	SessionAssembling SessionState = "assembling"
	// SessionDone is the terminal success state.
	SessionDone SessionState = "done"
	// SessionFailed is the terminal failure state.
	SessionFailed SessionState = "failed"
)

// IsTerminal reports whether no further transition is possible.
func (s SessionState) IsTerminal() bool {
	return s == SessionDone || s == SessionFailed
}

// Session tracks one run of the build pipeline.
type Session struct {
	ID        uuid.UUID
	State     SessionState
	Target    string
	Archs     ArchitectureSet
	Bundle    string
	Err       error
	StartedAt time.Time
	History   []SessionState
}

// NewSession creates a session in the Init state.
func NewSession() *Session {
	return &Session{
		ID:        uuid.New(),
		State:     SessionInit,
		StartedAt: time.Now(),
		History:   []SessionState{SessionInit},
	}
}

// Transition moves the session to next. Transitions out of a terminal state are ignored.
func (s *Session) Transition(next SessionState) {
	if s.State.IsTerminal() {
		return
	}
	s.State = next
	s.History = append(s.History, next)
}

// Fail moves the session to Failed and records err.
func (s *Session) Fail(err error) {
	if s.State.IsTerminal() {
		return
	}
	s.Err = err
	s.Transition(SessionFailed)
}
