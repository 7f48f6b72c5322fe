package handlers

import (
	"net/http"

	"kotoba_keep/internal/middleware"
	"kotoba_keep/internal/model"
	"kotoba_keep/internal/service"
	"kotoba_keep/internal/webutil"

	"github.com/google/uuid"
)

type SyncHandler struct {
	service service.SyncService
}

func NewSyncHandler(s service.SyncService) *SyncHandler {
	return &SyncHandler{service: s}
}

// SyncProgress はゲストとして蓄積した進捗をログイン済みアカウントへ移行します。
// ボディのエントリに加えて、X-Session-ID があればサーバー側セッションの内容も統合します。
func (h *SyncHandler) SyncProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証が必要です。", "", model.ErrLoginRequired))
		return
	}

	var req model.SyncProgressRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid sync request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	// JWT 認証済みリクエストでもゲスト時代のセッションIDはヘッダで渡ってくる
	var sessionID *uuid.UUID
	if raw := r.Header.Get("X-Session-ID"); raw != "" {
		if sid, err := uuid.Parse(raw); err == nil {
			sessionID = &sid
		} else {
			logger.Warn("Ignoring malformed session ID on sync", "session_id", raw)
		}
	}

	resp, err := h.service.SyncGuestProgress(r.Context(), learnerID, req.Entries, sessionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
