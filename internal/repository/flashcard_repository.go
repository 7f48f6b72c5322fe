// internal/repository/flashcard_repository.go
package repository

import (
	"context"

	"kotoba_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FlashcardRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, flashcardID uuid.UUID) (*model.Flashcard, error)
	// FindLessonHead はレッスン先頭から sequence 順に limit 枚返します (ゲスト用の非パーソナライズ取得)。
	FindLessonHead(ctx context.Context, db *gorm.DB, lesson, limit int) ([]*model.Flashcard, error)
	// FindUnseenInLesson は指定学習者の ProgressRecord がまだ無いカードを sequence 順に返します。
	FindUnseenInLesson(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, lesson, limit int) ([]*model.Flashcard, error)
	CountInLesson(ctx context.Context, db *gorm.DB, lesson int) (int64, error)
	CountUnseenInLesson(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, lesson int) (int64, error)
	LessonExists(ctx context.Context, db *gorm.DB, lesson int) (bool, error)
}

type gormFlashcardRepository struct{}

func NewGormFlashcardRepository() FlashcardRepository {
	return &gormFlashcardRepository{}
}

func (r *gormFlashcardRepository) FindByID(ctx context.Context, db *gorm.DB, flashcardID uuid.UUID) (*model.Flashcard, error) {
	var card model.Flashcard
	result := db.WithContext(ctx).Where("flashcard_id = ?", flashcardID).First(&card)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &card, nil
}

func (r *gormFlashcardRepository) FindLessonHead(ctx context.Context, db *gorm.DB, lesson, limit int) ([]*model.Flashcard, error) {
	var cards []*model.Flashcard
	result := db.WithContext(ctx).
		Where("lesson = ?", lesson).
		Order("sequence ASC").
		Limit(limit).
		Find(&cards)
	if result.Error != nil {
		return nil, result.Error
	}
	return cards, nil
}

func (r *gormFlashcardRepository) FindUnseenInLesson(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, lesson, limit int) ([]*model.Flashcard, error) {
	var cards []*model.Flashcard
	// NOT EXISTS サブクエリで「まだ進捗レコードの無いカード」に絞る
	result := db.WithContext(ctx).
		Where("lesson = ?", lesson).
		Where("NOT EXISTS (SELECT 1 FROM progress_records pr WHERE pr.learner_id = ? AND pr.item_id = flashcards.flashcard_id)", learnerID).
		Order("sequence ASC").
		Limit(limit).
		Find(&cards)
	if result.Error != nil {
		return nil, result.Error
	}
	return cards, nil
}

func (r *gormFlashcardRepository) CountInLesson(ctx context.Context, db *gorm.DB, lesson int) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Flashcard{}).Where("lesson = ?", lesson).Count(&count)
	return count, result.Error
}

func (r *gormFlashcardRepository) CountUnseenInLesson(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, lesson int) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Flashcard{}).
		Where("lesson = ?", lesson).
		Where("NOT EXISTS (SELECT 1 FROM progress_records pr WHERE pr.learner_id = ? AND pr.item_id = flashcards.flashcard_id)", learnerID).
		Count(&count)
	return count, result.Error
}

func (r *gormFlashcardRepository) LessonExists(ctx context.Context, db *gorm.DB, lesson int) (bool, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Flashcard{}).Where("lesson = ?", lesson).Limit(1).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
