package state

import (
	"sync"
	"time"

	"kinobot/core/logger"
	tghelpers "kinobot/core/telegram/helpers"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

const defaultSweepInterval = 10 * time.Minute

type memoryManager struct {
	mu            sync.RWMutex
	sessions      map[int64]*Session
	ttl           time.Duration
	sweepInterval time.Duration
}

// NewMemoryManager constructs an in-memory Manager. Sessions idle longer than
// ttl are evicted by Sweep; ttl <= 0 keeps sessions for the process lifetime.
func NewMemoryManager(ttl time.Duration) Manager {
	return &memoryManager{
		sessions:      make(map[int64]*Session),
		ttl:           ttl,
		sweepInterval: defaultSweepInterval,
	}
}

func newSession() *Session {
	return &Session{
		Step:     StateIdle,
		Scratch:  make(map[string]interface{}),
		LastSeen: time.Now(),
	}
}

// locked returns the live session for a user, creating it if absent.
func (m *memoryManager) locked(userID int64) *Session {
	sess, ok := m.sessions[userID]
	if !ok {
		sess = newSession()
		m.sessions[userID] = sess
	}
	sess.LastSeen = time.Now()
	return sess
}

// Get returns a snapshot of the user session, creating an idle session with
// empty scratch on first access.
func (m *memoryManager) Get(userID int64) Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess := m.locked(userID)
	snap := Session{
		Step:     sess.Step,
		Scratch:  make(map[string]interface{}, len(sess.Scratch)),
		LastSeen: sess.LastSeen,
	}
	for k, v := range sess.Scratch {
		snap.Scratch[k] = v
	}
	return snap
}

// SetStep updates the conversation step for a user.
func (m *memoryManager) SetStep(userID int64, st State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locked(userID).Step = st
}

// Step returns the current step of a user, or StateIdle if no session exists.
func (m *memoryManager) Step(userID int64) State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if sess, ok := m.sessions[userID]; ok {
		return sess.Step
	}
	return StateIdle
}

// MergeScratch shallow-merges the given keys into the session scratch,
// leaving untouched keys intact.
func (m *memoryManager) MergeScratch(userID int64, partial map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess := m.locked(userID)
	for k, v := range partial {
		sess.Scratch[k] = v
	}
}

// Scratch retrieves a single scratch value by key.
func (m *memoryManager) Scratch(userID int64, key string) (interface{}, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[userID]
	if !ok {
		return nil, false
	}
	val, ok := sess.Scratch[key]
	return val, ok
}

// Reset returns the session to the idle step with empty scratch.
func (m *memoryManager) Reset(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = newSession()
}

// InProgress reports whether the user currently has an active step.
func (m *memoryManager) InProgress(userID int64) bool {
	return m.Step(userID) != StateIdle
}

// Sweep evicts sessions idle longer than the configured TTL.
func (m *memoryManager) Sweep(now time.Time) int {
	if m.ttl <= 0 {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	evicted := 0
	for id, sess := range m.sessions {
		if now.Sub(sess.LastSeen) > m.ttl {
			delete(m.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Run sweeps idle sessions periodically until done is closed.
func (m *memoryManager) Run(done <-chan struct{}) {
	if m.ttl <= 0 {
		return
	}
	ticker := time.NewTicker(m.sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case now := <-ticker.C:
			if n := m.Sweep(now); n > 0 {
				logger.TG.Debug("sessions evicted",
					slog.String("event", "fsm.sweep"),
					slog.Int("evicted", n),
				)
			}
		}
	}
}

// ManagerHandler executes the handler function registered for the user's
// current step, if any.
func (m *memoryManager) ManagerHandler(c tele.Context) error {
	userID := c.Sender().ID
	current := m.Step(userID)
	ctx := tghelpers.BuildContext(c)
	logger.Debug(ctx, "tg", "fsm.manager",
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
		slog.String("state", string(current)),
	)

	if handler, ok := fsmHandlers[current]; ok {
		return handler(c)
	}
	return nil
}
