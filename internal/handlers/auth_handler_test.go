package handlers_test

import (
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

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *svc_mocks.AuthService)
		expectedStatus int
	}{
		{
			name: "正常系: 登録成功で201",
			body: model.RegisterRequest{Name: "太郎", Email: "taro@example.com", Password: "password123"},
			setupMock: func(m *svc_mocks.AuthService) {
				m.On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterRequest")).
					Return(&model.RegisterResponse{LearnerID: uuid.New(), Token: "jwt-token"}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: メールアドレスの形式が不正",
			body:           model.RegisterRequest{Name: "太郎", Email: "not-an-email", Password: "password123"},
			setupMock:      func(m *svc_mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: パスワードが短すぎる",
			body:           model.RegisterRequest{Name: "太郎", Email: "taro@example.com", Password: "short"},
			setupMock:      func(m *svc_mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: メールアドレス重複は409",
			body: model.RegisterRequest{Name: "太郎", Email: "taro@example.com", Password: "password123"},
			setupMock: func(m *svc_mocks.AuthService) {
				m.On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterRequest")).
					Return(nil, model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "異常系: 壊れたJSON",
			body:           `{"email":`,
			setupMock:      func(m *svc_mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(svc_mocks.AuthService)
			tt.setupMock(mockService)
			handler := handlers.NewAuthHandler(mockService)

			req := newJsonRequest(t, http.MethodPost, "/auth/register", tt.body)
			rr := httptest.NewRecorder()
			handler.Register(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("正常系: トークンが返る", func(t *testing.T) {
		mockService := new(svc_mocks.AuthService)
		mockService.On("Login", mock.Anything, mock.AnythingOfType("*model.LoginRequest")).
			Return(&model.LoginResponse{Token: "jwt-token"}, nil).Once()
		handler := handlers.NewAuthHandler(mockService)

		req := newJsonRequest(t, http.MethodPost, "/auth/login",
			model.LoginRequest{Email: "taro@example.com", Password: "password123"})
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got model.LoginResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "jwt-token", got.Token)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: 資格情報不一致は403", func(t *testing.T) {
		mockService := new(svc_mocks.AuthService)
		mockService.On("Login", mock.Anything, mock.AnythingOfType("*model.LoginRequest")).
			Return(nil, model.NewAppError("INVALID_CREDENTIALS", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrForbidden)).Once()
		handler := handlers.NewAuthHandler(mockService)

		req := newJsonRequest(t, http.MethodPost, "/auth/login",
			model.LoginRequest{Email: "taro@example.com", Password: "wrong"})
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockService.AssertExpectations(t)
	})
}
