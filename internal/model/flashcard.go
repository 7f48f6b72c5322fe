// internal/model/flashcard.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type FlashcardType string

const (
	FlashcardKanji   FlashcardType = "kanji"
	FlashcardVocab   FlashcardType = "vocab"
	FlashcardGrammar FlashcardType = "grammar"
)

// Flashcard は学習コンテンツの1枚を表します。
// 取り込みパイプライン（スコープ外）が作成する不変データで、エンジンは読むだけです。
type Flashcard struct {
	FlashcardID uuid.UUID     `gorm:"type:uuid;primaryKey" json:"flashcard_id"`
	Type        FlashcardType `gorm:"not null" json:"type"`
	Term        string        `gorm:"not null" json:"term"`
	Reading     string        `json:"reading"`
	Meaning     string        `gorm:"not null" json:"meaning"` // 複数の意味は ';' 区切り
	Lesson      int           `gorm:"not null;index:idx_lesson_sequence" json:"lesson"`
	Sequence    int           `gorm:"not null;index:idx_lesson_sequence" json:"sequence"` // レッスン内の表示順
	CreatedAt   time.Time     `json:"-"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}

// PracticeItem は1枚のFlashcardから派生した穴埋め問題です。
type PracticeItem struct {
	PracticeID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"practice_id"`
	FlashcardID uuid.UUID `gorm:"type:uuid;not null;index" json:"flashcard_id"`
	Question    string    `gorm:"not null" json:"question"`
	Answer      string    `gorm:"not null" json:"answer"`
	English     string    `json:"english"`
	CreatedAt   time.Time `json:"-"`

	// 関連 (Preload用)
	Flashcard *Flashcard `gorm:"foreignKey:FlashcardID;references:FlashcardID" json:"-"`
}

func (PracticeItem) TableName() string {
	return "practice_items"
}
