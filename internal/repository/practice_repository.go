// internal/repository/practice_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"kotoba_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PracticeRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, practiceID uuid.UUID) (*model.PracticeItem, error)
	// FindFresh は「親のフラッシュカードは学習開始済みだが、練習問題自体は未着手」の
	// 問題をランダム順で返します。同じ親カードの問題が複数ある場合は1問だけ。
	FindFresh(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, limit int) ([]*model.PracticeItem, error)
	// FindDue は進捗レコードが既にあり next_review が NULL か過去の問題を、
	// next_review ASC (NULL先頭)、同時刻なら incorrect_count DESC で返します。
	FindDue(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time, limit int) ([]*model.PracticeItem, error)
}

type gormPracticeRepository struct{}

func NewGormPracticeRepository() PracticeRepository {
	return &gormPracticeRepository{}
}

func (r *gormPracticeRepository) FindByID(ctx context.Context, db *gorm.DB, practiceID uuid.UUID) (*model.PracticeItem, error) {
	var item model.PracticeItem
	result := db.WithContext(ctx).Where("practice_id = ?", practiceID).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &item, nil
}

func (r *gormPracticeRepository) FindFresh(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, limit int) ([]*model.PracticeItem, error) {
	var items []*model.PracticeItem
	// 親カードに進捗があり、問題自体には進捗が無い候補から、ウィンドウ関数で
	// 親カードごとにランダムな1問に絞ってから limit を切る。クライアント側で
	// 間引くと、同じ親の問題が多い学習者で取得枠を食い潰して不足が出る。
	fresh := db.
		Table("practice_items").
		Select("practice_items.*, ROW_NUMBER() OVER (PARTITION BY practice_items.flashcard_id ORDER BY RANDOM()) AS rn").
		Joins("JOIN progress_records parent ON parent.item_id = practice_items.flashcard_id AND parent.learner_id = ?", learnerID).
		Where("NOT EXISTS (SELECT 1 FROM progress_records own WHERE own.learner_id = ? AND own.item_id = practice_items.practice_id)", learnerID)

	result := db.WithContext(ctx).
		Table("(?) AS fresh", fresh).
		Where("fresh.rn = 1").
		Order("RANDOM()").
		Limit(limit).
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return items, nil
}

func (r *gormPracticeRepository) FindDue(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time, limit int) ([]*model.PracticeItem, error) {
	var items []*model.PracticeItem
	result := db.WithContext(ctx).
		Joins("JOIN progress_records pr ON pr.item_id = practice_items.practice_id AND pr.learner_id = ?", learnerID).
		Where("pr.next_review IS NULL OR pr.next_review <= ?", now.UTC()).
		Order("pr.next_review ASC NULLS FIRST, pr.incorrect_count DESC").
		Limit(limit).
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return items, nil
}
