// internal/middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"kotoba_keep/internal/config"
	"kotoba_keep/internal/model"
	"kotoba_keep/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// parseBearerToken は Authorization ヘッダーのJWTを検証して学習者IDを返します。
func parseBearerToken(r *http.Request, cfg *config.Config) (uuid.UUID, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return uuid.Nil, model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーが必要です。", "", model.ErrForbidden)
	}

	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
		return uuid.Nil, model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrForbidden)
	}
	tokenString := headerParts[1]

	// jwt.Parse は署名と有効期限(exp)の両方を検証してくれる
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWT.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrForbidden)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrForbidden)
	}
	subject, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_TOKEN", "トークンにユーザー情報が含まれていません。", "", model.ErrForbidden)
	}
	learnerID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_TOKEN", "トークンのユーザー情報が不正です。", "", model.ErrForbidden)
	}
	return learnerID, nil
}

// JWTAuthMiddleware は Bearer トークン必須のミドルウェアです。
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			learnerID, err := parseBearerToken(r, cfg)
			if err != nil {
				logger.Warn("JWT auth failed", "error", err)
				webutil.HandleError(w, logger, err)
				return
			}

			ctx := context.WithValue(r.Context(), model.LearnerIDKey, learnerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthMiddleware はトークンがあれば学習者IDを、無ければゲストとして
// X-Session-ID ヘッダーのセッションIDをコンテキストに積みます。
// レッスン1やimmediateレビューはゲストにも開放されているため、認証失敗では落とさず
// 「学習者なし」として通します (不正なトークンだけは拒否)。
func OptionalAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())
			ctx := r.Context()

			if r.Header.Get("Authorization") != "" {
				learnerID, err := parseBearerToken(r, cfg)
				if err != nil {
					// トークンを出してきたのに不正、は明示的に拒否する
					logger.Warn("Optional auth: invalid token supplied", "error", err)
					webutil.HandleError(w, logger, err)
					return
				}
				ctx = context.WithValue(ctx, model.LearnerIDKey, learnerID)
			} else if raw := r.Header.Get("X-Session-ID"); raw != "" {
				if sessionID, err := uuid.Parse(raw); err == nil {
					ctx = context.WithValue(ctx, model.SessionIDKey, sessionID)
				} else {
					logger.Warn("Optional auth: malformed session id, ignoring", "session_id", raw)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetLearnerIDFromContext は認証必須エンドポイント用。
func GetLearnerIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.LearnerIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コンテキストからユーザー情報を取得できませんでした。", "", model.ErrInternalServer)
	}
	return value, nil
}

// GetOptionalLearnerID はゲスト許可エンドポイント用。学習者が居なければ nil。
func GetOptionalLearnerID(ctx context.Context) *uuid.UUID {
	if value, ok := ctx.Value(model.LearnerIDKey).(uuid.UUID); ok {
		return &value
	}
	return nil
}

// GetOptionalSessionID はゲストセッションIDを返します。無ければ nil。
func GetOptionalSessionID(ctx context.Context) *uuid.UUID {
	if value, ok := ctx.Value(model.SessionIDKey).(uuid.UUID); ok {
		return &value
	}
	return nil
}
