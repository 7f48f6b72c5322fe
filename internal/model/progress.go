// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ItemKind string

const (
	ItemFlashcard ItemKind = "flashcard"
	ItemPractice  ItemKind = "practice"
)

// ProgressRecord は (learner, item) ペアごとの可変な学習状態を表します。
// フラッシュカードと練習問題の両方をこの1テーブルに統合しています。
// (learner_id, item_id) の複合ユニーク制約が「ペアごとに高々1レコード」の不変条件を守ります。
type ProgressRecord struct {
	ProgressID     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	LearnerID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_learner_item,unique"`
	ItemID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_learner_item,unique"`
	ItemKind       ItemKind   `gorm:"not null"`
	Level          int        `gorm:"not null;default:0"`
	CorrectCount   int        `gorm:"not null;default:0"` // 単調増加、リセットされない
	IncorrectCount int        `gorm:"not null;default:0"`
	NextReview     *time.Time `gorm:"index"` // NULL = 即時レビュー可 (未レビュー)
	MasteredAt     *time.Time // 初めて level>=3 に到達した時刻。一度設定されたら消えない
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// 関連 (Preload用)
	Flashcard *Flashcard `gorm:"foreignKey:ItemID;references:FlashcardID" json:"-"`
}

func (ProgressRecord) TableName() string {
	return "progress_records"
}

// IsDue は now 時点でレビュー対象かどうかを返します。比較は常にUTC。
func (p *ProgressRecord) IsDue(now time.Time) bool {
	if p.NextReview == nil {
		return true
	}
	return !p.NextReview.UTC().After(now.UTC())
}

// ProgressEntry はゲスト同期ペイロードの1件分です。
type ProgressEntry struct {
	ItemID         uuid.UUID  `json:"item_id" validate:"required"`
	ItemKind       ItemKind   `json:"item_kind" validate:"omitempty,oneof=flashcard practice"`
	Level          int        `json:"level" validate:"gte=0"`
	CorrectCount   int        `json:"correct_count" validate:"gte=0"`
	IncorrectCount int        `json:"incorrect_count" validate:"gte=0"`
	NextReview     *time.Time `json:"next_review"`
	MasteredAt     *time.Time `json:"mastered_at,omitempty"`
}
