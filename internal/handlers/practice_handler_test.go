package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kotoba_keep/internal/handlers"
	"kotoba_keep/internal/model"
	svc_mocks "kotoba_keep/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPracticeHandler_GetPracticeBatch(t *testing.T) {
	learnerID := uuid.New()

	t.Run("正常系: limitクエリがサービスへ渡る", func(t *testing.T) {
		mockService := new(svc_mocks.PracticeService)
		resp := &model.PracticeBatchResponse{Practice: []*model.PracticeItem{
			{PracticeID: uuid.New(), FlashcardID: uuid.New(), Question: "＿＿を読みます"},
		}}
		mockService.On("FetchPracticeBatch", mock.Anything, learnerID, 5).Return(resp, nil).Once()
		handler := handlers.NewPracticeHandler(mockService)

		req := newJsonRequest(t, http.MethodGet, "/practice?limit=5", nil)
		req = req.WithContext(context.WithValue(req.Context(), model.LearnerIDKey, learnerID))

		rr := httptest.NewRecorder()
		handler.GetPracticeBatch(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got model.PracticeBatchResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Len(t, got.Practice, 1)
		mockService.AssertExpectations(t)
	})

	t.Run("limit未指定は0でサービスに委ねる", func(t *testing.T) {
		mockService := new(svc_mocks.PracticeService)
		mockService.On("FetchPracticeBatch", mock.Anything, learnerID, 0).
			Return(&model.PracticeBatchResponse{Practice: []*model.PracticeItem{}}, nil).Once()
		handler := handlers.NewPracticeHandler(mockService)

		req := newJsonRequest(t, http.MethodGet, "/practice", nil)
		req = req.WithContext(context.WithValue(req.Context(), model.LearnerIDKey, learnerID))

		rr := httptest.NewRecorder()
		handler.GetPracticeBatch(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: 認証コンテキストが無ければ401", func(t *testing.T) {
		mockService := new(svc_mocks.PracticeService)
		handler := handlers.NewPracticeHandler(mockService)

		req := newJsonRequest(t, http.MethodGet, "/practice", nil)
		rr := httptest.NewRecorder()
		handler.GetPracticeBatch(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockService.AssertNotCalled(t, "FetchPracticeBatch")
	})
}

func TestPracticeHandler_SubmitResult(t *testing.T) {
	learnerID := uuid.New()
	practiceID := uuid.New()
	boolPtr := func(b bool) *bool { return &b }

	t.Run("正常系: 結果が反映される", func(t *testing.T) {
		mockService := new(svc_mocks.PracticeService)
		mockService.On("SubmitPractice", mock.Anything, learnerID, practiceID, false).
			Return(&model.SubmitReviewResponse{Level: 0}, nil).Once()
		handler := handlers.NewPracticeHandler(mockService)

		req := newJsonRequest(t, http.MethodPost, "/practice/"+practiceID.String()+"/result",
			model.SubmitReviewRequest{IsCorrect: boolPtr(false)})
		ctx := contextWithChiURLParam(req.Context(), "practice_id", practiceID.String())
		ctx = context.WithValue(ctx, model.LearnerIDKey, learnerID)
		req = req.WithContext(ctx)

		rr := httptest.NewRecorder()
		handler.SubmitResult(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: 存在しない問題は404", func(t *testing.T) {
		mockService := new(svc_mocks.PracticeService)
		mockService.On("SubmitPractice", mock.Anything, learnerID, practiceID, true).
			Return(nil, model.NewAppError("NOT_FOUND", "練習問題が見つかりません。", "", model.ErrNotFound)).Once()
		handler := handlers.NewPracticeHandler(mockService)

		req := newJsonRequest(t, http.MethodPost, "/practice/"+practiceID.String()+"/result",
			model.SubmitReviewRequest{IsCorrect: boolPtr(true)})
		ctx := contextWithChiURLParam(req.Context(), "practice_id", practiceID.String())
		ctx = context.WithValue(ctx, model.LearnerIDKey, learnerID)
		req = req.WithContext(ctx)

		rr := httptest.NewRecorder()
		handler.SubmitResult(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertExpectations(t)
	})
}
