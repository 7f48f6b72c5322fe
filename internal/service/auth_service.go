package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kotoba_keep/internal/config"
	"kotoba_keep/internal/middleware"
	"kotoba_keep/internal/model"
	"kotoba_keep/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

type authService struct {
	db          *gorm.DB
	learnerRepo repository.LearnerRepository
	mailer      Mailer
	cfg         *config.Config
}

func NewAuthService(db *gorm.DB, learnerRepo repository.LearnerRepository, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{
		db:          db,
		learnerRepo: learnerRepo,
		mailer:      mailer,
		cfg:         cfg,
	}
}

func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	logger := middleware.GetLogger(ctx)
	var newLearner *model.Learner

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Emailでの重複チェック
		_, err := s.learnerRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			logger.Warn("Email already exists", "email", req.Email)
			return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return storeErr(err)
		}

		// パスワードのハッシュ化
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		newLearner = &model.Learner{
			LearnerID:    uuid.New(),
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(hash),
		}
		if err := s.learnerRepo.Create(ctx, tx, newLearner); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
			}
			logger.Error("Failed to create learner", "error", err)
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// ウェルカムメールはベストエフォート。失敗しても登録は成功扱い
	subject := fmt.Sprintf("%s へようこそ", config.AppName)
	body := fmt.Sprintf("%s さん、登録ありがとうございます。レッスン1から始めましょう！", newLearner.Name)
	if mailErr := s.mailer.Send(ctx, newLearner.Email, subject, body); mailErr != nil {
		logger.Warn("Failed to send welcome email", "error", mailErr, "email", newLearner.Email)
	}

	token, _, err := s.issueToken(newLearner.LearnerID)
	if err != nil {
		logger.Error("Failed to issue token after registration", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの発行に失敗しました。", "", err)
	}

	logger.Info("Learner registered", "learner_id", newLearner.LearnerID)
	return &model.RegisterResponse{LearnerID: newLearner.LearnerID, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)

	learner, err := s.learnerRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// メールアドレスの存在有無は漏らさない
			return nil, model.NewAppError("INVALID_CREDENTIALS", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrForbidden)
		}
		logger.Error("Failed to look up learner by email", "error", err)
		return nil, storeErr(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(learner.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "learner_id", learner.LearnerID)
		return nil, model.NewAppError("INVALID_CREDENTIALS", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrForbidden)
	}

	token, expires, err := s.issueToken(learner.LearnerID)
	if err != nil {
		logger.Error("Failed to issue token", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの発行に失敗しました。", "", err)
	}

	logger.Info("Login succeeded", "learner_id", learner.LearnerID)
	return &model.LoginResponse{Token: token, ExpiresAt: expires}, nil
}

func (s *authService) issueToken(learnerID uuid.UUID) (string, time.Time, error) {
	expires := time.Now().Add(time.Duration(s.cfg.JWT.ExpiryHours) * time.Hour)
	claims := jwt.RegisteredClaims{
		Subject:   learnerID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expires),
		Issuer:    config.AppName,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}
