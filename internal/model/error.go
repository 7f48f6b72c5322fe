// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInternalServer   = errors.New("internal server error")
	ErrForbidden        = errors.New("forbidden")
	ErrConflict         = errors.New("resource conflict") // 重複エラー用
	ErrLessonLocked     = errors.New("lesson locked")     // 前のレッスンの習熟度が足りない
	ErrLoginRequired    = errors.New("login required")    // ゲストには許可されていない操作
	ErrStoreUnavailable = errors.New("store unavailable") // DB等の一時的な障害
)

// AppError はエラーコードと表示用メッセージを持つアプリケーションエラーです。
// Err に sentinel エラーをラップして、HTTPステータスへのマッピングに使います。
type AppError struct {
	Code    string // 例: "LESSON_LOCKED"
	Message string // クライアント表示用メッセージ
	Field   string // バリデーションエラー等で問題のあったフィールド名
	Err     error  // ラップされた根本エラー
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{Code: code, Message: message, Field: field, Err: err}
}

// LessonLockedError はレッスン解放条件を満たしていないことを表します。
// 判定済みの習熟度パーセントを診断情報として持ち回ります。
type LessonLockedError struct {
	Lesson         int     // 解放されなかったレッスン
	RequiredLesson int     // 習熟が必要な一つ前のレッスン
	MasteryPercent float64 // 計算済みの習熟度 (0-100)
}

func (e *LessonLockedError) Error() string {
	return fmt.Sprintf("lesson %d locked: lesson %d mastery %.0f%% < 90%%",
		e.Lesson, e.RequiredLesson, e.MasteryPercent)
}

func (e *LessonLockedError) Unwrap() error {
	return ErrLessonLocked
}

// ErrorDetail はAPIエラーレスポンスの中身
type ErrorDetail struct {
	Code           string   `json:"code"`
	Message        string   `json:"message"`
	Field          string   `json:"field,omitempty"`
	MasteryPercent *float64 `json:"mastery_percent,omitempty"` // LESSON_LOCKED のときのみ
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
