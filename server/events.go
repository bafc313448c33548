package server

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"go.uber.org/zap"

	"github.com/foundrly/foundrly/wizard"
)

// handleEvents streams the wizard's phase transitions as JSON frames
// over a websocket until the client hangs up or the wizard closes.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request, wz *wizard.Wizard) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.logger.Debug("websocket accept failed", zap.Error(err))
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-wz.Events():
			if !ok {
				_ = conn.Close(websocket.StatusNormalClosure, "wizard closed")
				return
			}
			if err := wsjson.Write(ctx, conn, ev); err != nil {
				return
			}
		}
	}
}
