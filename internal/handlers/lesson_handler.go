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

type LessonHandler struct {
	service service.LessonService
}

func NewLessonHandler(s service.LessonService) *LessonHandler {
	return &LessonHandler{service: s}
}

// GetLessonCards はレッスン学習用のカード一式を返します。
// 未ログインのゲストにも開放されています (レッスン1の先頭のみ)。
func (h *LessonHandler) GetLessonCards(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	lessonStr := chi.URLParam(r, "lesson")
	lesson, err := strconv.Atoi(lessonStr)
	if err != nil || lesson < 1 {
		logger.Warn("Invalid lesson number", "lesson", lessonStr)
		appErr := model.NewAppError("INVALID_INPUT", "レッスン番号が正しくありません。", "lesson", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	learnerID := middleware.GetOptionalLearnerID(r.Context())
	resp, err := h.service.FetchLessonBatch(r.Context(), learnerID, lesson)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// MarkFlashcard はレッスン流しの二値マーキング (知っている/知らない)。
func (h *LessonHandler) MarkFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	flashcardIDStr := chi.URLParam(r, "flashcard_id")
	flashcardID, err := uuid.Parse(flashcardIDStr)
	if err != nil {
		logger.Warn("Invalid flashcard ID format", "flashcard_id", flashcardIDStr)
		appErr := model.NewAppError("INVALID_INPUT", "フラッシュカードIDの形式が正しくありません。", "flashcard_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.MarkFlashcardRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid mark request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	learnerID := middleware.GetOptionalLearnerID(r.Context())
	sessionID := middleware.GetOptionalSessionID(r.Context())
	resp, err := h.service.MarkFlashcard(r.Context(), learnerID, sessionID, flashcardID, *req.Known)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// GetNextLesson は学習者が次に進むべきレッスンを返します。
func (h *LessonHandler) GetNextLesson(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証が必要です。", "", model.ErrLoginRequired))
		return
	}

	resp, err := h.service.ResolveNextLesson(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// GetCounts はダッシュボード用の件数サマリを返します。
func (h *LessonHandler) GetCounts(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証が必要です。", "", model.ErrLoginRequired))
		return
	}

	resp, err := h.service.FetchCounts(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
