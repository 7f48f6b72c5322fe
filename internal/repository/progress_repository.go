// internal/repository/progress_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"kotoba_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressRepository は (learner, item) ごとの進捗状態を扱います。
// 書き込みは全て ON CONFLICT による原子的な upsert で、カウンタの加算は
// ストア側の式で行います (読み出し→クライアント計算→上書き、はロストアップデートの元)。
type ProgressRepository interface {
	Find(ctx context.Context, db *gorm.DB, learnerID, itemID uuid.UUID) (*model.ProgressRecord, error)
	HasAny(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (bool, error)
	// UpsertAnswer は段階式レビューの唯一の書き込み経路。レベルと次回レビューは
	// 呼び出し側 (ラダー) が計算済み。カウンタはDB側で加算。
	UpsertAnswer(ctx context.Context, db *gorm.DB, learnerID, itemID uuid.UUID, kind model.ItemKind, newLevel int, correct bool, nextReview *time.Time, now time.Time) error
	// UpsertBinary はレッスン流しの二値マーキング。known=true は level 3 直行、
	// known=false は level 0。ラダーを通らない別経路。
	UpsertBinary(ctx context.Context, db *gorm.DB, learnerID, itemID uuid.UUID, known bool, now time.Time) error
	// BulkUpsert はゲスト移行用。呼び出し側がトランザクションを張る前提で、
	// 1件ごとに last-write-wins の upsert を行います (冪等)。
	BulkUpsert(ctx context.Context, tx *gorm.DB, learnerID uuid.UUID, entries []model.ProgressEntry, now time.Time) error
	CountMasteredInLesson(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, lesson int) (int64, error)
	CountSeenInLesson(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, lesson int) (int64, error)
	// FindDueFlashcards は normal モードでは next_review が NULL か過去のレコードを
	// next_review ASC (NULL先頭) で、immediate モードでは level 0 のレコードを返します。
	FindDueFlashcards(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, mode model.ReviewMode, now time.Time, limit int) ([]*model.ProgressRecord, error)
	CountDueFlashcards(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time) (int64, error)
	// HighestLesson は進捗レコードのあるフラッシュカードの最大レッスン番号。1件も無ければ 0。
	HighestLesson(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (int, error)
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Find(ctx context.Context, db *gorm.DB, learnerID, itemID uuid.UUID) (*model.ProgressRecord, error) {
	var rec model.ProgressRecord
	result := db.WithContext(ctx).
		Where("learner_id = ? AND item_id = ?", learnerID, itemID).
		First(&rec)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &rec, nil
}

func (r *gormProgressRepository) HasAny(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (bool, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.ProgressRecord{}).
		Where("learner_id = ?", learnerID).
		Limit(1).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (r *gormProgressRepository) UpsertAnswer(ctx context.Context, db *gorm.DB, learnerID, itemID uuid.UUID, kind model.ItemKind, newLevel int, correct bool, nextReview *time.Time, now time.Time) error {
	incCorrect := 0
	incIncorrect := 0
	if correct {
		incCorrect = 1
	} else {
		incIncorrect = 1
	}

	var masteredAt *time.Time
	if newLevel >= 3 {
		masteredAt = &now
	}

	rec := &model.ProgressRecord{
		ProgressID:     uuid.New(),
		LearnerID:      learnerID,
		ItemID:         itemID,
		ItemKind:       kind,
		Level:          newLevel,
		CorrectCount:   incCorrect,
		IncorrectCount: incIncorrect,
		NextReview:     nextReview,
		MasteredAt:     masteredAt,
	}

	// カウンタ加算と mastered_at の「一度設定されたら消えない」はDB側の式で保証する
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "learner_id"}, {Name: "item_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"level":           newLevel,
			"next_review":     nextReview,
			"correct_count":   gorm.Expr("progress_records.correct_count + ?", incCorrect),
			"incorrect_count": gorm.Expr("progress_records.incorrect_count + ?", incIncorrect),
			"mastered_at":     gorm.Expr("CASE WHEN ? >= 3 AND progress_records.mastered_at IS NULL THEN ? ELSE progress_records.mastered_at END", newLevel, now),
			"updated_at":      now,
		}),
	}).Create(rec)
	return result.Error
}

func (r *gormProgressRepository) UpsertBinary(ctx context.Context, db *gorm.DB, learnerID, itemID uuid.UUID, known bool, now time.Time) error {
	level := 0
	var masteredAt *time.Time
	if known {
		level = 3
		masteredAt = &now
	}

	rec := &model.ProgressRecord{
		ProgressID: uuid.New(),
		LearnerID:  learnerID,
		ItemID:     itemID,
		ItemKind:   model.ItemFlashcard,
		Level:      level,
		NextReview: nil, // 二値マーキングは即時レビュー可のまま
		MasteredAt: masteredAt,
	}

	// mastered_at は最初に設定された値を保持する (再マーキングでは動かさない)
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "learner_id"}, {Name: "item_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"level":       level,
			"next_review": nil,
			"mastered_at": gorm.Expr("CASE WHEN ? = 3 AND progress_records.mastered_at IS NULL THEN ? ELSE progress_records.mastered_at END", level, now),
			"updated_at":  now,
		}),
	}).Create(rec)
	return result.Error
}

func (r *gormProgressRepository) BulkUpsert(ctx context.Context, tx *gorm.DB, learnerID uuid.UUID, entries []model.ProgressEntry, now time.Time) error {
	for _, e := range entries {
		kind := e.ItemKind
		if kind == "" {
			kind = model.ItemFlashcard
		}

		// mastered_at は level >= 3 のときだけ。指定が無ければ now。
		var masteredAt *time.Time
		if e.Level >= 3 {
			if e.MasteredAt != nil {
				masteredAt = e.MasteredAt
			} else {
				masteredAt = &now
			}
		}

		rec := &model.ProgressRecord{
			ProgressID:     uuid.New(),
			LearnerID:      learnerID,
			ItemID:         e.ItemID,
			ItemKind:       kind,
			Level:          e.Level,
			CorrectCount:   e.CorrectCount,
			IncorrectCount: e.IncorrectCount,
			NextReview:     e.NextReview,
			MasteredAt:     masteredAt,
		}

		// ゲストの進捗を無条件で上書き (加算ではなく last-write-wins なので冪等)
		result := tx.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "learner_id"}, {Name: "item_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"level":           e.Level,
				"correct_count":   e.CorrectCount,
				"incorrect_count": e.IncorrectCount,
				"next_review":     e.NextReview,
				"mastered_at":     gorm.Expr("CASE WHEN ? >= 3 THEN ? ELSE progress_records.mastered_at END", e.Level, masteredAt),
				"updated_at":      now,
			}),
		}).Create(rec)
		if result.Error != nil {
			return result.Error
		}
	}
	return nil
}

func (r *gormProgressRepository) CountMasteredInLesson(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, lesson int) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.ProgressRecord{}).
		Joins("JOIN flashcards ON flashcards.flashcard_id = progress_records.item_id").
		Where("flashcards.lesson = ? AND progress_records.learner_id = ? AND progress_records.level >= 3", lesson, learnerID).
		Count(&count)
	return count, result.Error
}

func (r *gormProgressRepository) CountSeenInLesson(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, lesson int) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.ProgressRecord{}).
		Joins("JOIN flashcards ON flashcards.flashcard_id = progress_records.item_id").
		Where("flashcards.lesson = ? AND progress_records.learner_id = ?", lesson, learnerID).
		Count(&count)
	return count, result.Error
}

func (r *gormProgressRepository) FindDueFlashcards(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, mode model.ReviewMode, now time.Time, limit int) ([]*model.ProgressRecord, error) {
	var records []*model.ProgressRecord

	query := db.WithContext(ctx).
		Preload("Flashcard").
		Joins("JOIN flashcards ON flashcards.flashcard_id = progress_records.item_id").
		Where("progress_records.learner_id = ? AND progress_records.item_kind = ?", learnerID, model.ItemFlashcard)

	if mode == model.ReviewModeImmediate {
		// level 0 をすぐさらうモード。順序保証は「安定」であれば良い
		query = query.Where("progress_records.level = 0").
			Order("progress_records.created_at ASC")
	} else {
		// due判定は常にUTCで比較。NULL は「未レビュー = 即時対象」で先頭に並べる
		query = query.Where("progress_records.next_review IS NULL OR progress_records.next_review <= ?", now.UTC()).
			Order("progress_records.next_review ASC NULLS FIRST")
	}

	result := query.Limit(limit).Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

func (r *gormProgressRepository) CountDueFlashcards(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.ProgressRecord{}).
		Where("learner_id = ? AND item_kind = ?", learnerID, model.ItemFlashcard).
		Where("next_review IS NULL OR next_review <= ?", now.UTC()).
		Count(&count)
	return count, result.Error
}

func (r *gormProgressRepository) HighestLesson(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (int, error) {
	var highest *int
	result := db.WithContext(ctx).Model(&model.ProgressRecord{}).
		Select("MAX(flashcards.lesson)").
		Joins("JOIN flashcards ON flashcards.flashcard_id = progress_records.item_id").
		Where("progress_records.learner_id = ?", learnerID).
		Scan(&highest)
	if result.Error != nil {
		return 0, result.Error
	}
	if highest == nil {
		return 0, nil
	}
	return *highest, nil
}
