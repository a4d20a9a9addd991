// Package webscene implements a render.Scene that streams primitive state to
// viewers over websockets. Each primitive's creation, mutation, and removal
// becomes a JSON message; newly connected viewers receive a snapshot of the
// current scene before any updates.
package webscene

import (
	"net/http"
	"sync"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/viam-labs/armviz/render"
	"github.com/viam-labs/armviz/spatialmath"
)

// Message types sent to viewers.
const (
	MessageTypeBox    = "box"
	MessageTypeTriad  = "triad"
	MessageTypeUpdate = "update"
	MessageTypeRemove = "remove"

	// MessageTypeReady is sent once per connection, after the snapshot;
	// everything that follows is a live update.
	MessageTypeReady = "ready"
)

// Message is one scene event on the wire. Primitive is set for everything
// but removals.
type Message struct {
	Type      string          `json:"type"`
	ID        string          `json:"id"`
	Primitive *PrimitiveState `json:"primitive,omitempty"`
}

// PrimitiveState is the full drawable state of one primitive.
type PrimitiveState struct {
	Shape    string      `json:"shape"` // "box" or "triad"
	ID       string      `json:"id"`
	Position [3]float64  `json:"position"`
	Axis     [3]float64  `json:"axis"`
	Up       [3]float64  `json:"up"`
	Size     *[3]float64 `json:"size,omitempty"`
	Visible  bool        `json:"visible"`
}

// Scene streams its primitives to connected websocket clients. The geometry
// side is driven by a single logical thread; the mutex serializes it against
// client connects and disconnects.
type Scene struct {
	logger   golog.Logger
	upgrader websocket.Upgrader

	mu         sync.Mutex
	clients    map[*websocket.Conn]bool
	primitives map[string]*PrimitiveState
	order      []string
}

// NewScene returns an empty scene ready to accept viewers.
func NewScene(logger golog.Logger) *Scene {
	return &Scene{
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients:    map[*websocket.Conn]bool{},
		primitives: map[string]*PrimitiveState{},
	}
}

// NewBox adds a box and announces it to all viewers.
func (s *Scene) NewBox(pos, axis, size, up r3.Vector) render.Box {
	sizeArr := toArray(size)
	state := &PrimitiveState{
		Shape:    MessageTypeBox,
		ID:       uuid.NewString(),
		Position: toArray(pos),
		Axis:     toArray(axis),
		Up:       toArray(up),
		Size:     &sizeArr,
		Visible:  true,
	}
	s.addPrimitive(MessageTypeBox, state)
	return &box{scene: s, state: state}
}

// NewTriadAxes adds axis indicators and announces them to all viewers.
func (s *Scene) NewTriadAxes(origin, axis r3.Vector, angle float64) render.TriadAxes {
	up := spatialmath.PerpendicularUp(axis)
	if angle != 0 {
		up = spatialmath.RotateVectorAboutAxis(up, axis, angle)
	}
	state := &PrimitiveState{
		Shape:    MessageTypeTriad,
		ID:       uuid.NewString(),
		Position: toArray(origin),
		Axis:     toArray(axis),
		Up:       toArray(up),
		Visible:  true,
	}
	s.addPrimitive(MessageTypeTriad, state)
	return &triad{scene: s, state: state}
}

// Remove drops the primitive and announces the removal.
func (s *Scene) Remove(p render.Primitive) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := p.ID()
	if _, ok := s.primitives[id]; !ok {
		return
	}
	delete(s.primitives, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.broadcastLocked(&Message{Type: MessageTypeRemove, ID: id})
}

// Handler returns the HTTP handler exposing the websocket endpoint at /ws.
func (s *Scene) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebsocket)
	return mux
}

// Close disconnects all viewers.
func (s *Scene) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		if err := conn.Close(); err != nil {
			s.logger.Debugw("error closing viewer connection", "error", err)
		}
		delete(s.clients, conn)
	}
}

func (s *Scene) addPrimitive(msgType string, state *PrimitiveState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.primitives[state.ID] = state
	s.order = append(s.order, state.ID)
	s.broadcastLocked(&Message{Type: msgType, ID: state.ID, Primitive: state})
}

// mutate applies a state change under the scene lock and announces the
// primitive's new state. Called by the handle mutators so changes never race
// snapshot writes.
func (s *Scene) mutate(state *PrimitiveState, change func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	change()
	s.broadcastLocked(&Message{Type: MessageTypeUpdate, ID: state.ID, Primitive: state})
}

// broadcastLocked sends msg to every client, dropping clients whose writes
// fail. s.mu must be held.
func (s *Scene) broadcastLocked(msg *Message) {
	for conn := range s.clients {
		if err := conn.WriteJSON(msg); err != nil {
			s.logger.Debugw("dropping viewer after write error", "error", err)
			if err := conn.Close(); err != nil {
				s.logger.Debugw("error closing viewer connection", "error", err)
			}
			delete(s.clients, conn)
		}
	}
}

func (s *Scene) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debugw("websocket upgrade failed", "error", err)
		return
	}

	// Send the snapshot and register atomically so the client sees every
	// update that follows its snapshot exactly once.
	s.mu.Lock()
	for _, id := range s.order {
		state := s.primitives[id]
		if err := conn.WriteJSON(&Message{Type: state.Shape, ID: id, Primitive: state}); err != nil {
			s.mu.Unlock()
			s.logger.Debugw("snapshot write failed", "error", err)
			if err := conn.Close(); err != nil {
				s.logger.Debugw("error closing viewer connection", "error", err)
			}
			return
		}
	}
	if err := conn.WriteJSON(&Message{Type: MessageTypeReady}); err != nil {
		s.mu.Unlock()
		s.logger.Debugw("snapshot write failed", "error", err)
		if err := conn.Close(); err != nil {
			s.logger.Debugw("error closing viewer connection", "error", err)
		}
		return
	}
	s.clients[conn] = true
	s.mu.Unlock()
	s.logger.Debugw("viewer connected", "remote", conn.RemoteAddr().String())

	// Viewers do not send anything meaningful yet; read until the
	// connection goes away so we notice the disconnect.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	if err := conn.Close(); err != nil {
		s.logger.Debugw("error closing viewer connection", "error", err)
	}
	s.logger.Debugw("viewer disconnected", "remote", conn.RemoteAddr().String())
}

func toArray(v r3.Vector) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func toVector(a [3]float64) r3.Vector {
	return r3.Vector{X: a[0], Y: a[1], Z: a[2]}
}
