package api

import (
	"net/http"
	"time"

	xlogger "QuantScout/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const writeWait = 5 * time.Second

// StreamHandler pushes every completed scan to connected websocket clients.
type StreamHandler struct {
	logger   *xlogger.Logger
	scanner  ScanStream
	upgrader websocket.Upgrader
}

func NewStreamHandler(logger *xlogger.Logger, scanner ScanStream) *StreamHandler {
	return &StreamHandler{
		logger:  logger,
		scanner: scanner,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (h *StreamHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/scans", h.Stream)
}

// Stream upgrades the connection and relays scans until the client closes or
// a write fails. The latest completed scan is sent immediately on connect.
func (h *StreamHandler) Stream(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	sub, cancel := h.scanner.Subscribe()
	defer cancel()

	if last := h.scanner.Latest(); last != nil {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(last); err != nil {
			return nil
		}
	}

	// Drain client frames so close handshakes are noticed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return nil
		case <-c.Request().Context().Done():
			return nil
		case res := <-sub:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(res); err != nil {
				h.logger.Debug("scan stream write failed", xlogger.Error(err))
				return nil
			}
		}
	}
}
