package network

import (
	"log"
	"net/http"
	"time"

	"go-invaders/internal/app"
	"go-invaders/internal/component"
	"go-invaders/internal/protocol"

	"github.com/gorilla/websocket"
)

const (
	readLimit    = 1 << 16
	pongWait     = 60 * time.Second
	pingInterval = 25 * time.Second
	writeWait    = 10 * time.Second
)

// Server bridges one match to remote frontends over websockets.
type Server struct {
	runner   *app.Runner
	upgrader websocket.Upgrader
}

func NewServer(runner *app.Runner) *Server {
	return &Server{
		runner: runner,
		upgrader: websocket.Upgrader{
			// For dev, allow all origins.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler returns a mux serving the websocket endpoint at /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.ServeWS)
	return mux
}

func (s *Server) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	defer conn.Close()

	sub, ok := s.runner.Subscribe()
	if !ok {
		closeConn(conn, websocket.CloseGoingAway, "match is over")
		return
	}
	defer s.runner.Unsubscribe(sub.ID)

	c := &client{
		conn:    conn,
		binary:  r.URL.Query().Get("codec") == protocol.CodecMsgpack,
		replies: make(chan []byte, 16),
		done:    make(chan struct{}),
	}
	go c.writeLoop(sub.C)
	c.readLoop(s.runner)
}

type client struct {
	conn    *websocket.Conn
	binary  bool
	replies chan []byte
	done    chan struct{}
}

func (c *client) readLoop(runner *app.Runner) {
	defer close(c.done)

	c.conn.SetReadLimit(readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Println("read:", err)
			}
			return
		}
		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			log.Println("bad message:", err)
			continue
		}
		if err := c.handle(runner, env); err != nil {
			log.Printf("bad %s payload: %v", env.T, err)
		}
	}
}

func (c *client) handle(runner *app.Runner, env protocol.Envelope) error {
	switch env.T {
	case protocol.MsgFire:
		p, err := protocol.DecodePayload[protocol.Fire](env)
		if err != nil {
			return err
		}
		runner.Fire(component.Position{X: p.X, Y: p.Y})
	case protocol.MsgMove:
		p, err := protocol.DecodePayload[protocol.Move](env)
		if err != nil {
			return err
		}
		runner.MovePlayer(p.X)
	case protocol.MsgPosition:
		p, err := protocol.DecodePayload[protocol.Position](env)
		if err != nil {
			return err
		}
		out, ok := runner.Resolve(p.ID, p.Y)
		if !ok {
			return nil
		}
		b, err := protocol.Encode(protocol.MsgOutcome, protocol.Outcome{ID: p.ID, Result: out.String()})
		if err != nil {
			return err
		}
		select {
		case c.replies <- b:
		default:
			// клиент не читает, ответ не важен
		}
	case protocol.MsgRemove:
		p, err := protocol.DecodePayload[protocol.Remove](env)
		if err != nil {
			return err
		}
		runner.RemoveProjectile(p.ID)
	case protocol.MsgClear:
		runner.ClearExplosion()
	case protocol.MsgRetry:
		runner.Retry()
	case protocol.MsgExit:
		runner.Exit()
	default:
		log.Printf("unknown message type %q", env.T)
	}
	return nil
}

func (c *client) writeLoop(snapshots <-chan component.Snapshot) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case s, ok := <-snapshots:
			if !ok {
				closeConn(c.conn, websocket.CloseNormalClosure, "match closed")
				return
			}
			if err := c.writeSnapshot(s); err != nil {
				log.Println("write:", err)
				_ = c.conn.Close()
				return
			}
		case b := <-c.replies:
			if err := c.write(websocket.TextMessage, b); err != nil {
				log.Println("write:", err)
				_ = c.conn.Close()
				return
			}
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				_ = c.conn.Close()
				return
			}
		}
	}
}

func (c *client) writeSnapshot(s component.Snapshot) error {
	if c.binary {
		b, err := protocol.EncodeSnapshot(s)
		if err != nil {
			return err
		}
		return c.write(websocket.BinaryMessage, b)
	}
	b, err := protocol.Encode(protocol.MsgState, s)
	if err != nil {
		return err
	}
	return c.write(websocket.TextMessage, b)
}

func (c *client) write(messageType int, b []byte) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(messageType, b)
}

func closeConn(conn *websocket.Conn, code int, text string) {
	msg := websocket.FormatCloseMessage(code, text)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}
