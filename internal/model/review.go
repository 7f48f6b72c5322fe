// internal/model/review.go
package model

import (
	"time"
)

type ReviewMode string

const (
	ReviewModeNormal    ReviewMode = "normal"    // next_review が過ぎたものだけ
	ReviewModeImmediate ReviewMode = "immediate" // level 0 をすぐに再確認するモード
)

// LessonBatchResponse はレッスン学習用のカード一式
type LessonBatchResponse struct {
	Lesson     int          `json:"lesson"`
	Flashcards []*Flashcard `json:"flashcards"`
}

// ReviewCardResponse はレビュー対象カード1枚分のレスポンスDTO
type ReviewCardResponse struct {
	Flashcard  *Flashcard `json:"flashcard"`
	Level      int        `json:"level"`
	NextReview *time.Time `json:"next_review"`
}

// SubmitReviewRequest は段階式レビュー結果の送信DTO。
// ポインタ型なのは required バリデーションで false と未指定を区別するため。
type SubmitReviewRequest struct {
	IsCorrect *bool `json:"is_correct" validate:"required"`
}

// SubmitReviewResponse は更新後の進捗
type SubmitReviewResponse struct {
	Level      int        `json:"level"`
	NextReview *time.Time `json:"next_review"`
	MasteredAt *time.Time `json:"mastered_at,omitempty"`
}

// MarkFlashcardRequest はレッスン流しの二値マーキングDTO (known = 知っている/知らない)。
// 段階式レビューとは別経路で、ラダーを通りません。
type MarkFlashcardRequest struct {
	Known *bool `json:"known" validate:"required"`
}

type MarkFlashcardResponse struct {
	Message string `json:"message"`
}

// CheckAnswerRequest は回答判定DTO
type CheckAnswerRequest struct {
	Answer     string `json:"answer" validate:"required"`
	AnswerType string `json:"answer_type" validate:"required,oneof=reading meaning"`
}

type CheckAnswerResponse struct {
	IsCorrect      bool     `json:"is_correct"`
	CorrectAnswers []string `json:"correct_answers"`
	EditDistance   *int     `json:"edit_distance,omitempty"`
}

// PracticeBatchResponse は練習問題の出題一式
type PracticeBatchResponse struct {
	Practice []*PracticeItem `json:"practice"`
}

// NextLessonResponse は次レッスン解決の結果。NextLesson が nil ならカリキュラム完走。
type NextLessonResponse struct {
	NextLesson *int   `json:"next_lesson"`
	Locked     bool   `json:"locked"`
	Message    string `json:"message,omitempty"`
}

// CountsResponse はダッシュボード用の件数サマリ
type CountsResponse struct {
	NextLesson         *int `json:"next_lesson"`
	Locked             bool `json:"locked"`
	NewLessonCardCount int  `json:"new_lesson_card_count"`
	ReviewCount        int  `json:"review_count"`
}

// SyncProgressRequest はゲスト進捗の一括同期DTO
type SyncProgressRequest struct {
	Entries []ProgressEntry `json:"entries" validate:"dive"`
}

type SyncProgressResponse struct {
	Message string `json:"message"`
	Synced  int    `json:"synced"`
}

// ReviewListResponse はレビュー取得のレスポンス
type ReviewListResponse struct {
	Flashcards []*ReviewCardResponse `json:"flashcards"`
}
