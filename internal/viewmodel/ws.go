package viewmodel

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	pkgLog "github.com/instructure/canvas-android-sub046/pkg/log"
)

const (
	wsReadBufferSize  = 1024
	wsWriteBufferSize = 1024
	wsPingInterval    = 30 * time.Second
	wsPongWait        = 60 * time.Second
	wsWriteWait       = 10 * time.Second
	wsMaxMessageSize  = 4096
)

// Stream message types.
const (
	FrameState = "state"
	FrameEvent = "event"
)

// Frame is one message written to a websocket subscriber.
type Frame struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Origins lists the browser origins, such as "https://app.example.com",
// allowed to open a stream besides the server's own host. Requests without
// an Origin header come from non-browser clients and are always allowed.
type Origins []string

// Allow reports whether r may be upgraded.
func (o Origins) Allow(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	for _, allowed := range o {
		if strings.EqualFold(strings.TrimRight(allowed, "/"), u.Scheme+"://"+u.Host) {
			return true
		}
	}
	return false
}

// ServeWS upgrades the request and streams snapshots of store and events
// of ev until the client goes away or the view model is closed. Incoming
// client messages are ignored apart from pong handling. Cross-origin
// upgrades outside origins are refused with 403.
func ServeWS[S, E any](ctx context.Context, l pkgLog.Logger, origins Origins, w http.ResponseWriter, r *http.Request, store *Store[S], ev *Events[E]) error {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  wsReadBufferSize,
		WriteBufferSize: wsWriteBufferSize,
		CheckOrigin:     origins.Allow,
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	states, cancelStates := store.Subscribe()
	defer cancelStates()
	events, cancelEvents := ev.Subscribe()
	defer cancelEvents()

	gone := make(chan struct{})
	go readPump(conn, gone)

	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	write := func(f Frame) bool {
		if err := conn.SetWriteDeadline(time.Now().Add(wsWriteWait)); err != nil {
			return false
		}
		if err := conn.WriteJSON(f); err != nil {
			l.Warnf(ctx, "viewmodel.ServeWS: write failed: %v", err)
			return false
		}
		return true
	}

	for {
		select {
		case snap, ok := <-states:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"),
					time.Now().Add(wsWriteWait))
				return nil
			}
			if !write(Frame{Type: FrameState, Data: snap}) {
				return nil
			}
		case e, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if !write(Frame{Type: FrameEvent, Data: e}) {
				return nil
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return nil
			}
		case <-gone:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

// readPump keeps the read deadline fresh on pongs and reports when the
// peer disconnects.
func readPump(conn *websocket.Conn, gone chan<- struct{}) {
	defer close(gone)
	conn.SetReadLimit(wsMaxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
