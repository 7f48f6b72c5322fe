package handlers_test // テスト対象とは別のパッケージ名

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kotoba_keep/internal/handlers"
	"kotoba_keep/internal/model"
	svc_mocks "kotoba_keep/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- ヘルパー: JSONボディの作成 ---
func newJsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		if bodyStr, ok := body.(string); ok {
			reqBody = strings.NewReader(bodyStr)
		} else {
			jsonData, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(jsonData)
		}
	}
	req, err := http.NewRequest(method, target, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// --- ヘルパー: chi の RouteContext を設定 ---
func contextWithChiURLParam(ctx context.Context, key, value string) context.Context {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}

func TestReviewHandler_GetReviews(t *testing.T) {
	learnerID := uuid.New()
	cardID := uuid.New()

	tests := []struct {
		name           string
		url            string
		learnerID      *uuid.UUID
		setupMock      func(m *svc_mocks.ReviewService)
		expectedStatus int
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name:      "正常系: ログイン済み学習者のレビュー取得",
			url:       "/reviews",
			learnerID: &learnerID,
			setupMock: func(m *svc_mocks.ReviewService) {
				resp := &model.ReviewListResponse{Flashcards: []*model.ReviewCardResponse{
					{Flashcard: &model.Flashcard{FlashcardID: cardID, Term: "海"}, Level: 2},
				}}
				m.On("FetchDueReview", mock.Anything, &learnerID, model.ReviewMode("")).Return(resp, nil).Once()
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var got model.ReviewListResponse
				require.NoError(t, json.Unmarshal(body, &got))
				require.Len(t, got.Flashcards, 1)
				assert.Equal(t, "海", got.Flashcards[0].Flashcard.Term)
			},
		},
		{
			name:      "modeクエリはそのままサービスへ渡る",
			url:       "/reviews?mode=immediate",
			learnerID: nil,
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("FetchDueReview", mock.Anything, (*uuid.UUID)(nil), model.ReviewModeImmediate).
					Return(&model.ReviewListResponse{Flashcards: []*model.ReviewCardResponse{}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "ゲストのnormalレビューは401",
			url:       "/reviews",
			learnerID: nil,
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("FetchDueReview", mock.Anything, (*uuid.UUID)(nil), model.ReviewMode("")).
					Return(nil, model.NewAppError("LOGIN_REQUIRED", "ログインしてください。", "", model.ErrLoginRequired)).Once()
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(svc_mocks.ReviewService)
			tt.setupMock(mockService)
			handler := handlers.NewReviewHandler(mockService)

			req := newJsonRequest(t, http.MethodGet, tt.url, nil)
			if tt.learnerID != nil {
				req = req.WithContext(context.WithValue(req.Context(), model.LearnerIDKey, *tt.learnerID))
			}
			rr := httptest.NewRecorder()
			handler.GetReviews(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rr.Body.Bytes())
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestReviewHandler_SubmitResult(t *testing.T) {
	learnerID := uuid.New()
	flashcardID := uuid.New()
	boolPtr := func(b bool) *bool { return &b }

	tests := []struct {
		name           string
		flashcardID    string
		body           interface{}
		setupMock      func(m *svc_mocks.ReviewService)
		expectedStatus int
	}{
		{
			name:        "正常系: 正解の提出",
			flashcardID: flashcardID.String(),
			body:        model.SubmitReviewRequest{IsCorrect: boolPtr(true)},
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("SubmitReview", mock.Anything, &learnerID, (*uuid.UUID)(nil), flashcardID, true).
					Return(&model.SubmitReviewResponse{Level: 3}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: 不正なUUID",
			flashcardID:    "not-a-uuid",
			body:           model.SubmitReviewRequest{IsCorrect: boolPtr(true)},
			setupMock:      func(m *svc_mocks.ReviewService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: is_correct欠落はバリデーションエラー",
			flashcardID:    flashcardID.String(),
			body:           `{}`,
			setupMock:      func(m *svc_mocks.ReviewService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: 壊れたJSON",
			flashcardID:    flashcardID.String(),
			body:           `{"is_correct":`,
			setupMock:      func(m *svc_mocks.ReviewService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(svc_mocks.ReviewService)
			tt.setupMock(mockService)
			handler := handlers.NewReviewHandler(mockService)

			req := newJsonRequest(t, http.MethodPost, "/reviews/"+tt.flashcardID+"/result", tt.body)
			ctx := contextWithChiURLParam(req.Context(), "flashcard_id", tt.flashcardID)
			ctx = context.WithValue(ctx, model.LearnerIDKey, learnerID)
			req = req.WithContext(ctx)

			rr := httptest.NewRecorder()
			handler.SubmitResult(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestReviewHandler_CheckAnswer(t *testing.T) {
	flashcardID := uuid.New()

	t.Run("正常系: 回答判定の結果が返る", func(t *testing.T) {
		mockService := new(svc_mocks.ReviewService)
		mockService.On("CheckAnswer", mock.Anything, flashcardID, mock.AnythingOfType("*model.CheckAnswerRequest")).
			Return(&model.CheckAnswerResponse{IsCorrect: true, CorrectAnswers: []string{"water"}}, nil).Once()
		handler := handlers.NewReviewHandler(mockService)

		req := newJsonRequest(t, http.MethodPost, "/reviews/"+flashcardID.String()+"/check",
			model.CheckAnswerRequest{Answer: "water", AnswerType: "meaning"})
		req = req.WithContext(contextWithChiURLParam(req.Context(), "flashcard_id", flashcardID.String()))

		rr := httptest.NewRecorder()
		handler.CheckAnswer(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got model.CheckAnswerResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.True(t, got.IsCorrect)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: answer_typeが不正", func(t *testing.T) {
		mockService := new(svc_mocks.ReviewService)
		handler := handlers.NewReviewHandler(mockService)

		req := newJsonRequest(t, http.MethodPost, "/reviews/"+flashcardID.String()+"/check",
			model.CheckAnswerRequest{Answer: "water", AnswerType: "audio"})
		req = req.WithContext(contextWithChiURLParam(req.Context(), "flashcard_id", flashcardID.String()))

		rr := httptest.NewRecorder()
		handler.CheckAnswer(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "CheckAnswer")
	})
}
