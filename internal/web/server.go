package web

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/samaamohammed255-droid/leaf-grace/internal/game"
)

// Server hands out one game session per WebSocket connection.
type Server struct {
	params   game.Params
	log      *zap.SugaredLogger
	upgrader websocket.Upgrader

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates the session server. The context returned by Shutdown
// stops every running session tick loop.
func NewServer(params game.Params, log *zap.SugaredLogger) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		params: params,
		log:    log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// The game is stateless per connection and carries no
				// credentials, so cross-origin play is allowed.
				return true
			},
		},
		ctx:    ctx,
		cancel: cancel,
	}
}

// HandleWS upgrades the request and runs a private game session until the
// client disconnects or the server shuts down.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warnw("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	g := game.New(s.params, rand.New(rand.NewSource(time.Now().UnixNano())))
	sess := newSession(ws, g, s.log)
	s.log.Infow("session started", "remote", r.RemoteAddr)

	go sess.writePump()
	go sess.readPump()
	go func() {
		sess.run(s.ctx)
		ws.Close()
		s.log.Infow("session ended", "remote", r.RemoteAddr)
	}()
}

// HandleHealthz is the liveness probe.
func (s *Server) HandleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Write([]byte("ok"))
}

// Shutdown stops all session tick loops.
func (s *Server) Shutdown() {
	s.cancel()
}
