package handlers

import (
	"net/http"

	"kotoba_keep/internal/middleware"
	"kotoba_keep/internal/model"
	"kotoba_keep/internal/service"
	"kotoba_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(s service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: s}
}

// GetReviews はレビュー対象カードを返します。mode=immediate なら
// 直前に間違えたカード (level 0) を、省略時は期限の来たカードを返します。
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	mode := model.ReviewMode(r.URL.Query().Get("mode"))
	learnerID := middleware.GetOptionalLearnerID(r.Context())

	resp, err := h.service.FetchDueReview(r.Context(), learnerID, mode)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// SubmitResult は段階式レビューの正誤結果を反映します。
func (h *ReviewHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	flashcardIDStr := chi.URLParam(r, "flashcard_id")
	flashcardID, err := uuid.Parse(flashcardIDStr)
	if err != nil {
		logger.Warn("Invalid flashcard ID format", "flashcard_id", flashcardIDStr)
		appErr := model.NewAppError("INVALID_INPUT", "フラッシュカードIDの形式が正しくありません。", "flashcard_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.SubmitReviewRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid review result request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	learnerID := middleware.GetOptionalLearnerID(r.Context())
	sessionID := middleware.GetOptionalSessionID(r.Context())
	resp, err := h.service.SubmitReview(r.Context(), learnerID, sessionID, flashcardID, *req.IsCorrect)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// CheckAnswer は入力回答の正誤を判定します。進捗には触れません。
func (h *ReviewHandler) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	flashcardIDStr := chi.URLParam(r, "flashcard_id")
	flashcardID, err := uuid.Parse(flashcardIDStr)
	if err != nil {
		logger.Warn("Invalid flashcard ID format", "flashcard_id", flashcardIDStr)
		appErr := model.NewAppError("INVALID_INPUT", "フラッシュカードIDの形式が正しくありません。", "flashcard_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.CheckAnswerRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid check answer request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.CheckAnswer(r.Context(), flashcardID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
