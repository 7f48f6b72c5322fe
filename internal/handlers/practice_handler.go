package handlers

import (
	"net/http"
	"strconv"

	"kotoba_keep/internal/middleware"
	"kotoba_keep/internal/model"
	"kotoba_keep/internal/service"
	"kotoba_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PracticeHandler struct {
	service service.PracticeService
}

func NewPracticeHandler(s service.PracticeService) *PracticeHandler {
	return &PracticeHandler{service: s}
}

// GetPracticeBatch は練習問題の出題セットを返します。ログイン必須。
func (h *PracticeHandler) GetPracticeBatch(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証が必要です。", "", model.ErrLoginRequired))
		return
	}

	// limit は任意。範囲外や非数値はサービス側でデフォルトに丸める
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil {
			limit = n
		}
	}

	resp, err := h.service.FetchPracticeBatch(r.Context(), learnerID, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// SubmitResult は練習問題の正誤結果を反映します。
func (h *PracticeHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証が必要です。", "", model.ErrLoginRequired))
		return
	}

	practiceIDStr := chi.URLParam(r, "practice_id")
	practiceID, err := uuid.Parse(practiceIDStr)
	if err != nil {
		logger.Warn("Invalid practice ID format", "practice_id", practiceIDStr)
		appErr := model.NewAppError("INVALID_INPUT", "練習問題IDの形式が正しくありません。", "practice_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.SubmitReviewRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid practice result request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.SubmitPractice(r.Context(), learnerID, practiceID, *req.IsCorrect)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
