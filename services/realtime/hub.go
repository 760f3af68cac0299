// Package realtime owns the live-session registry. One Hub is created at
// process start and handed to everything that pushes events; there is no
// ambient global.
package realtime

import (
	"sync"

	"campuscare/models"
	"campuscare/utils"

	"go.uber.org/zap"
)

// Transport is the write side of one live connection. *websocket.Conn
// satisfies it.
type Transport interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Session is one live real-time connection belonging to a user. The write
// mutex serializes sends because the underlying transport allows at most
// one concurrent writer.
type Session struct {
	conn Transport
	mu   sync.Mutex
}

// NewSession wraps a connection for hub delivery.
func NewSession(conn Transport) *Session {
	return &Session{conn: conn}
}

// Send transmits one event on the session.
func (s *Session) Send(ev models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(ev)
}

// Close tears down the underlying connection.
func (s *Session) Close() error {
	return s.conn.Close()
}

// Hub maps user ids to their live sessions and multiplexes outbound
// delivery. All registry mutations are guarded by one mutex; the actual
// network writes happen outside it.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]map[*Session]struct{}
}

// NewHub creates an empty session registry.
func NewHub() *Hub {
	return &Hub{sessions: make(map[string]map[*Session]struct{})}
}

// Register adds a session to the user's set. Registering the same session
// twice is a no-op.
func (h *Hub) Register(userID string, s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.sessions[userID]
	if !ok {
		set = make(map[*Session]struct{})
		h.sessions[userID] = set
	}
	set[s] = struct{}{}
}

// Unregister removes a session; when the user's set becomes empty the user
// entry is dropped so the registry never accumulates dead keys.
func (h *Hub) Unregister(userID string, s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.sessions[userID]
	if !ok {
		return
	}
	delete(set, s)
	if len(set) == 0 {
		delete(h.sessions, userID)
	}
}

// Deliver pushes one event to every session of the user, best effort. A
// write failure drops exactly the failing session and never aborts
// delivery to its siblings. A user with zero sessions is a silent no-op;
// the record the event announces is already durable, so Deliver never
// reports an error to its caller.
func (h *Hub) Deliver(userID string, ev models.Event) {
	h.mu.Lock()
	set := h.sessions[userID]
	targets := make([]*Session, 0, len(set))
	for s := range set {
		targets = append(targets, s)
	}
	h.mu.Unlock()

	for _, s := range targets {
		if err := s.Send(ev); err != nil {
			utils.GetLogger().Debug("dropping dead session",
				zap.String("userID", userID), zap.String("event", ev.Type), zap.Error(err))
			h.Unregister(userID, s)
			_ = s.Close()
		}
	}
}

// SessionCount reports how many live sessions a user currently holds.
func (h *Hub) SessionCount(userID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions[userID])
}
