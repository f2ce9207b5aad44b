package web

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/samaamohammed255-droid/leaf-grace/internal/game"
)

const (
	// Simulation rate per session; snapshots go out every broadcastEvery
	// ticks (30 Hz at a 60 Hz simulation).
	simTickHz      = 60
	broadcastHz    = 30
	broadcastEvery = simTickHz / broadcastHz

	writeDeadline = 5 * time.Second
	readDeadline  = 60 * time.Second
	maxReadBytes  = 1 << 20 // 1MB

	sendQueueSize  = 64
	eventQueueSize = 64
)

// session is one WebSocket connection with its private game. The tick
// goroutine owns the game; the read pump only feeds the events channel, so
// the core stays single-goroutine.
type session struct {
	ws     *websocket.Conn
	send   chan []byte
	events chan clientMessage
	done   chan struct{} // Closed when the tick loop exits
	game   *game.Game
	log    *zap.SugaredLogger
}

func newSession(ws *websocket.Conn, g *game.Game, log *zap.SugaredLogger) *session {
	return &session{
		ws:     ws,
		send:   make(chan []byte, sendQueueSize),
		events: make(chan clientMessage, eventQueueSize),
		done:   make(chan struct{}),
		game:   g,
		log:    log,
	}
}

// enqueue queues an outgoing frame without blocking: when the client can't
// keep up, stale snapshots are dropped so the tick loop never stalls.
func (s *session) enqueue(b []byte) {
	select {
	case s.send <- b:
	default:
	}
}

// enqueueJSON marshals and queues one message.
func (s *session) enqueueJSON(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.Errorw("marshal message", "err", err)
		return
	}
	s.enqueue(b)
}

// writePump drains the send queue to the socket.
func (s *session) writePump() {
	defer s.ws.Close()
	for msg := range s.send {
		s.ws.SetWriteDeadline(time.Now().Add(writeDeadline))
		if err := s.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// readPump decodes inbound messages into the events channel. Closing the
// channel on exit is what stops the tick loop.
func (s *session) readPump() {
	defer close(s.events)
	defer s.ws.Close()
	s.ws.SetReadLimit(maxReadBytes)
	s.ws.SetReadDeadline(time.Now().Add(readDeadline))
	s.ws.SetPongHandler(func(string) error {
		s.ws.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	for {
		_, payload, err := s.ws.ReadMessage()
		if err != nil {
			return
		}
		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			continue
		}
		if !s.forward(msg) {
			return
		}
	}
}

// forward hands one decoded message to the tick loop. It returns false
// once the tick loop has exited, so a full queue can never strand the
// read pump after shutdown.
func (s *session) forward(msg clientMessage) bool {
	select {
	case s.events <- msg:
		return true
	case <-s.done:
		return false
	}
}

// run owns the session: it sends the config message, then ticks the game
// at the simulation rate, applying queued events before each tick and
// broadcasting a snapshot every broadcastEvery ticks.
func (s *session) run(ctx context.Context) {
	defer close(s.send)
	defer close(s.done)

	s.enqueueJSON(newConfigMessage(s.game.Params()))

	ticker := time.NewTicker(time.Second / simTickHz)
	defer ticker.Stop()

	tickCount := 0
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if !s.drainEvents(now) {
				return
			}
			s.game.Tick(now)
			tickCount++
			if tickCount%broadcastEvery == 0 {
				s.enqueueJSON(newSnapshotMessage(s.game.Snapshot()))
			}
		}
	}
}

// drainEvents applies every queued client event in arrival order. It
// returns false once the read pump has closed the channel.
func (s *session) drainEvents(now time.Time) bool {
	for {
		select {
		case msg, ok := <-s.events:
			if !ok {
				return false
			}
			s.apply(msg, now)
		default:
			return true
		}
	}
}

// apply maps one client message onto the core's input contract. Unknown
// types are ignored.
func (s *session) apply(msg clientMessage, now time.Time) {
	switch msg.Type {
	case "start", "restart":
		s.game.Start(now)
	case "dragStart":
		s.game.DragStart()
	case "dragMove":
		s.game.DragMove(msg.ClientX)
	case "dragEnd":
		s.game.DragEnd()
	case "surface":
		s.game.SetSurface(game.Surface{Left: msg.Left, Width: msg.Width, Height: msg.Height})
	}
}
