// Package ws streams live cart snapshots over a websocket so the UI
// can render totals without polling.
package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"foodiehub/cart"
	"foodiehub/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type CartStream struct {
	Carts *cart.Manager
	Log   *zap.Logger
}

func NewCartStream(carts *cart.Manager, log *zap.Logger) *CartStream {
	return &CartStream{Carts: carts, Log: log}
}

// WS route: /ws/cart. Auth middleware has already put userId in the
// context. Each connection gets its own subscription; the write loop
// ends when either side closes.
func (s *CartStream) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Log.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	snaps, cancel := s.Carts.For(userID).Subscribe()

	// reader: only watches for the client going away
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	defer conn.Close()
	for snap := range snaps {
		if err := conn.WriteJSON(snap); err != nil {
			s.Log.Debug("ws write failed, dropping subscriber",
				zap.Uint("userId", userID), zap.Error(err))
			cancel()
			return
		}
	}
}
