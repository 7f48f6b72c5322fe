// internal/model/learner.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Learner は登録済みユーザーを表します。
// ゲストは耐久ストアを持たず、セッションIDだけで識別されます (session パッケージ参照)。
type Learner struct {
	LearnerID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"learner_id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

func (Learner) TableName() string {
	return "learners"
}

// コンテキストキー
type ctxKey string

const (
	LearnerIDKey ctxKey = "learner_id"
	SessionIDKey ctxKey = "session_id"
)

// 登録リクエストDTO
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type RegisterResponse struct {
	LearnerID uuid.UUID `json:"learner_id"`
	Token     string    `json:"token"`
}

// ログインリクエストDTO
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
