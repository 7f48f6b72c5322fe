// internal/service/auth_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"kotoba_keep/internal/config"
	"kotoba_keep/internal/model"
	"kotoba_keep/internal/repository/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// captureMailer は送信内容を覚えるだけのテスト用Mailer
type captureMailer struct {
	to      string
	subject string
	sent    int
	err     error
}

func (m *captureMailer) Send(ctx context.Context, to, subject, body string) error {
	m.sent++
	m.to = to
	m.subject = subject
	return m.err
}

func setupTestDBAuth(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Learner{}))
	return db
}

func testAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key"
	cfg.JWT.ExpiryHours = 24
	return cfg
}

func Test_authService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 登録に成功しトークンとウェルカムメールが出る", func(t *testing.T) {
		db := setupTestDBAuth(t)
		learnerRepo := new(mocks.LearnerRepository)
		mailer := &captureMailer{}
		cfg := testAuthConfig()

		learnerRepo.On("FindByEmail", ctx, mock.Anything, "taro@example.com").
			Return(nil, model.ErrNotFound).Once()
		learnerRepo.On("Create", ctx, mock.Anything, mock.AnythingOfType("*model.Learner")).
			Run(func(args mock.Arguments) {
				learner := args.Get(2).(*model.Learner)
				assert.NotEmpty(t, learner.PasswordHash)
				assert.NotEqual(t, "password123", learner.PasswordHash)
			}).
			Return(nil).Once()

		svc := NewAuthService(db, learnerRepo, mailer, cfg)
		resp, err := svc.Register(ctx, &model.RegisterRequest{
			Name:     "太郎",
			Email:    "taro@example.com",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, resp.LearnerID)
		assert.Equal(t, 1, mailer.sent)
		assert.Equal(t, "taro@example.com", mailer.to)

		// 発行されたトークンのsubjectが学習者IDと一致する
		token, err := jwt.ParseWithClaims(resp.Token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWT.SecretKey), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(*jwt.RegisteredClaims)
		assert.Equal(t, resp.LearnerID.String(), claims.Subject)
		learnerRepo.AssertExpectations(t)
	})

	t.Run("異常系: メールアドレス重複はDUPLICATE_EMAIL", func(t *testing.T) {
		db := setupTestDBAuth(t)
		learnerRepo := new(mocks.LearnerRepository)
		mailer := &captureMailer{}

		existing := &model.Learner{LearnerID: uuid.New(), Email: "taro@example.com"}
		learnerRepo.On("FindByEmail", ctx, mock.Anything, "taro@example.com").
			Return(existing, nil).Once()

		svc := NewAuthService(db, learnerRepo, mailer, testAuthConfig())
		_, err := svc.Register(ctx, &model.RegisterRequest{
			Name: "太郎", Email: "taro@example.com", Password: "password123",
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrConflict))
		var appErr *model.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "DUPLICATE_EMAIL", appErr.Code)
		assert.Equal(t, 0, mailer.sent)
		learnerRepo.AssertNotCalled(t, "Create")
	})

	t.Run("メール送信失敗でも登録は成功扱い", func(t *testing.T) {
		db := setupTestDBAuth(t)
		learnerRepo := new(mocks.LearnerRepository)
		mailer := &captureMailer{err: errors.New("smtp down")}

		learnerRepo.On("FindByEmail", ctx, mock.Anything, mock.AnythingOfType("string")).
			Return(nil, model.ErrNotFound).Once()
		learnerRepo.On("Create", ctx, mock.Anything, mock.AnythingOfType("*model.Learner")).
			Return(nil).Once()

		svc := NewAuthService(db, learnerRepo, mailer, testAuthConfig())
		resp, err := svc.Register(ctx, &model.RegisterRequest{
			Name: "花子", Email: "hanako@example.com", Password: "password123",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})
}

func Test_authService_Login(t *testing.T) {
	ctx := context.Background()
	learnerID := uuid.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)
	learner := &model.Learner{
		LearnerID:    learnerID,
		Name:         "太郎",
		Email:        "taro@example.com",
		PasswordHash: string(hash),
	}

	tests := []struct {
		name      string
		email     string
		password  string
		setupMock func(learnerRepo *mocks.LearnerRepository)
		wantErr   bool
	}{
		{
			name:     "正常系: 正しい資格情報でトークンが返る",
			email:    "taro@example.com",
			password: "correct-password",
			setupMock: func(learnerRepo *mocks.LearnerRepository) {
				learnerRepo.On("FindByEmail", ctx, mock.Anything, "taro@example.com").Return(learner, nil).Once()
			},
		},
		{
			name:     "異常系: パスワード不一致",
			email:    "taro@example.com",
			password: "wrong-password",
			setupMock: func(learnerRepo *mocks.LearnerRepository) {
				learnerRepo.On("FindByEmail", ctx, mock.Anything, "taro@example.com").Return(learner, nil).Once()
			},
			wantErr: true,
		},
		{
			name:     "異常系: 未登録のメールアドレスでも同じエラー (存在を漏らさない)",
			email:    "unknown@example.com",
			password: "whatever",
			setupMock: func(learnerRepo *mocks.LearnerRepository) {
				learnerRepo.On("FindByEmail", ctx, mock.Anything, "unknown@example.com").Return(nil, model.ErrNotFound).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDBAuth(t)
			learnerRepo := new(mocks.LearnerRepository)
			tt.setupMock(learnerRepo)

			cfg := testAuthConfig()
			svc := NewAuthService(db, learnerRepo, &captureMailer{}, cfg)
			resp, err := svc.Login(ctx, &model.LoginRequest{Email: tt.email, Password: tt.password})

			if tt.wantErr {
				require.Error(t, err)
				var appErr *model.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, "INVALID_CREDENTIALS", appErr.Code)
			} else {
				require.NoError(t, err)
				token, err := jwt.ParseWithClaims(resp.Token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
					return []byte(cfg.JWT.SecretKey), nil
				})
				require.NoError(t, err)
				assert.Equal(t, learnerID.String(), token.Claims.(*jwt.RegisteredClaims).Subject)
				assert.False(t, resp.ExpiresAt.IsZero())
			}
			learnerRepo.AssertExpectations(t)
		})
	}
}
