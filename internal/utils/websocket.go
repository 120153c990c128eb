package utils

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/highcard-dev/companion/internal/utils/logger"
	"go.uber.org/zap"
)

const (
	writeTimeout = 10 * time.Second
	pongTimeout  = 60 * time.Second
)

// WebSocketConnection wraps a server side connection that only pushes data.
// Incoming frames are read and discarded so that a closed peer is noticed.
type WebSocketConnection struct {
	conn      *websocket.Conn
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
	// closed when monitor stopped reading
	monitored chan struct{}
}

func NewWebSocketConnection(c *websocket.Conn) *WebSocketConnection {
	ctx, cancel := context.WithCancel(context.Background())

	wsc := &WebSocketConnection{
		conn:      c,
		ctx:       ctx,
		cancel:    cancel,
		monitored: make(chan struct{}),
	}

	go wsc.monitor()

	return wsc
}

// Close is safe to call more than once. It returns after the reader stopped,
// the connection must not be touched once the fiber handler returned.
func (wsc *WebSocketConnection) Close() {
	wsc.closeOnce.Do(func() {
		wsc.cancel()
		wsc.conn.Close()
		<-wsc.monitored
	})
}

func (wsc *WebSocketConnection) WriteText(data []byte) error {
	wsc.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return wsc.conn.WriteMessage(websocket.TextMessage, data)
}

func (wsc *WebSocketConnection) WritePing() error {
	wsc.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return wsc.conn.WriteMessage(websocket.PingMessage, nil)
}

// Done is closed once the peer went away or Close was called.
func (wsc *WebSocketConnection) Done() <-chan struct{} {
	return wsc.ctx.Done()
}

func (wsc *WebSocketConnection) monitor() {
	defer close(wsc.monitored)

	wsc.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	wsc.conn.SetPongHandler(func(string) error {
		wsc.conn.SetReadDeadline(time.Now().Add(pongTimeout))
		return nil
	})

	for {
		if _, _, err := wsc.conn.ReadMessage(); err != nil {
			logger.Log().Debug("WebSocket disconnected",
				zap.String(logger.LogKeyContext, logger.LogContextHttp),
				zap.Error(err),
			)
			wsc.cancel()
			return
		}
	}
}
