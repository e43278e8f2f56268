package state

import (
	"time"

	tele "gopkg.in/telebot.v4"
)

// State identifies a finite-state-machine step used in conversations.
type State string

const (
	// StateIdle indicates there is no active conversation with the user.
	StateIdle State = "idle"
)

// Session stores the conversation step and the scratch data collected across
// a multi-step flow. Values returned by Manager.Get are snapshots: mutating a
// returned Session never changes the stored one; all writes go through the
// Manager methods.
type Session struct {
	Step     State
	Scratch  map[string]interface{}
	LastSeen time.Time
}

// Manager orchestrates user sessions and FSM step transitions.
type Manager interface {
	Get(userID int64) Session
	SetStep(userID int64, st State)
	Step(userID int64) State
	MergeScratch(userID int64, partial map[string]interface{})
	Scratch(userID int64, key string) (interface{}, bool)
	Reset(userID int64)

	InProgress(userID int64) bool
	ManagerHandler(c tele.Context) error

	// Sweep evicts sessions idle longer than the configured TTL and reports
	// how many were removed. A zero TTL disables eviction.
	Sweep(now time.Time) int
	// Run sweeps periodically until done is closed.
	Run(done <-chan struct{})
}
