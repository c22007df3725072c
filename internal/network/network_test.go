package network

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-invaders/internal/app"
	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/protocol"

	"github.com/gorilla/websocket"
)

func testOptions() config.Options {
	opts := config.DefaultOptions()
	opts.ShootingProbability = 0
	opts.StartingSpeed = 60000
	opts.Seed = 1
	return opts
}

func startServer(t *testing.T, opts config.Options) (*app.Runner, *httptest.Server) {
	t.Helper()
	r := app.NewRunner(opts)
	ctx, cancel := context.WithCancel(context.Background())
	go r.Run(ctx)

	srv := httptest.NewServer(NewServer(r).Handler())
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return r, srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	return conn
}

func send(t *testing.T, conn *websocket.Conn, typ string, payload any) {
	t.Helper()
	b, err := protocol.Encode(typ, payload)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		t.Fatalf("write: %v", err)
	}
}

// next reads envelopes until one of type typ arrives.
func next(t *testing.T, conn *websocket.Conn, typ string) protocol.Envelope {
	t.Helper()
	for {
		_, b, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		env, err := protocol.DecodeEnvelope(b)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if env.T == typ {
			return env
		}
	}
}

func TestStateOnConnect(t *testing.T) {
	_, srv := startServer(t, testOptions())
	conn := dial(t, srv, "")

	s, err := protocol.DecodePayload[component.Snapshot](next(t, conn, protocol.MsgState))
	if err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if s.Phase != component.Playing || len(s.Aliens) != 15 || s.Lives != 3 {
		t.Fatalf("state: phase %v, %d aliens, %d lives", s.Phase, len(s.Aliens), s.Lives)
	}
}

func TestFireAndHit(t *testing.T) {
	opts := testOptions()
	_, srv := startServer(t, opts)
	conn := dial(t, srv, "")

	s, _ := protocol.DecodePayload[component.Snapshot](next(t, conn, protocol.MsgState))
	target := s.Aliens[0]

	send(t, conn, protocol.MsgFire, protocol.Fire{X: target.X - 2.5, Y: opts.CannonSize})
	var rocket component.Projectile
	for {
		s, err := protocol.DecodePayload[component.Snapshot](next(t, conn, protocol.MsgState))
		if err != nil {
			t.Fatalf("decode state: %v", err)
		}
		if len(s.Projectiles) == 1 {
			rocket = s.Projectiles[0]
			break
		}
	}
	if rocket.Owner != component.OwnerPlayer {
		t.Fatalf("rocket: %+v", rocket)
	}

	send(t, conn, protocol.MsgPosition, protocol.Position{ID: rocket.ID, Y: target.Y + opts.AlienSize/2})
	out, err := protocol.DecodePayload[protocol.Outcome](next(t, conn, protocol.MsgOutcome))
	if err != nil {
		t.Fatalf("decode outcome: %v", err)
	}
	if out.ID != rocket.ID || out.Result != "hit" {
		t.Fatalf("outcome: %+v", out)
	}
}

func TestMsgpackSnapshots(t *testing.T) {
	_, srv := startServer(t, testOptions())
	conn := dial(t, srv, "?codec=msgpack")

	mt, b, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if mt != websocket.BinaryMessage {
		t.Fatalf("message type: %d", mt)
	}
	s, err := protocol.DecodeSnapshot(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(s.Aliens) != 15 {
		t.Fatalf("aliens: %d", len(s.Aliens))
	}
}

func TestExitClosesConnection(t *testing.T) {
	r, srv := startServer(t, testOptions())
	conn := dial(t, srv, "")
	next(t, conn, protocol.MsgState)

	send(t, conn, protocol.MsgExit, nil)
	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop")
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				t.Fatalf("expected a normal close, got %v", err)
			}
			return
		}
	}
}
