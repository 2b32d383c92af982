package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/application"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// How often the stats snapshot is recomputed for connected dashboards.
	statsInterval = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSHandler struct {
	svc *application.TicketService
}

func NewWSHandler(svc *application.TicketService) *WSHandler {
	return &WSHandler{svc: svc}
}

// Stats streams the dashboard statistics snapshot over a websocket. A frame is
// pushed on connect and then only when the snapshot actually changes; the
// dashboard's HTTP polling keeps working independently.
func (h *WSHandler) Stats(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	go func() {
		defer func() { _ = conn.Close() }()

		pingTicker := time.NewTicker(pingPeriod)
		defer pingTicker.Stop()

		statsTicker := time.NewTicker(statsInterval)
		defer statsTicker.Stop()

		var lastFrame []byte

		push := func() error {
			stats, err := h.svc.Stats(nil)
			if err != nil {
				log.Printf("stats push skipped: %v", err)
				return nil
			}

			// LastUpdated changes every call; blank it so identical
			// snapshots compare equal.
			snapshot := *stats
			snapshot.LastUpdated = time.Time{}
			frame, err := json.Marshal(snapshot)
			if err != nil {
				return err
			}
			if string(frame) == string(lastFrame) {
				return nil
			}
			lastFrame = frame

			data, err := json.Marshal(stats)
			if err != nil {
				return err
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			return conn.WriteMessage(websocket.TextMessage, data)
		}

		if err := push(); err != nil {
			cancel()
			return
		}

		for {
			select {
			case <-statsTicker.C:
				if err := push(); err != nil {
					cancel()
					return
				}

			case <-pingTicker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					cancel()
					return
				}

			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket error: %v", err)
			}
			break
		}
	}
}
