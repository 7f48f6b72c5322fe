package handlers

import (
	"net/http"

	"kotoba_keep/internal/middleware"
	"kotoba_keep/internal/session"
	"kotoba_keep/internal/webutil"
)

type SessionHandler struct {
	guests *session.Store
}

func NewSessionHandler(guests *session.Store) *SessionHandler {
	return &SessionHandler{guests: guests}
}

// CreateSession はゲスト用のセッションIDを発行します。
// クライアントは以降のリクエストで X-Session-ID ヘッダに載せて送ります。
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	sessionID := h.guests.NewSession()
	logger.Info("Guest session created", "session_id", sessionID)

	webutil.RespondWithJSON(w, http.StatusCreated, map[string]string{
		"session_id": sessionID.String(),
	})
}
