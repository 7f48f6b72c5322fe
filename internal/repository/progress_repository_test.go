// internal/repository/progress_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"kotoba_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Flashcard{}, &model.PracticeItem{}, &model.ProgressRecord{}))
	return db
}

func createTestFlashcard(t *testing.T, db *gorm.DB, lesson, sequence int) *model.Flashcard {
	t.Helper()
	card := &model.Flashcard{
		FlashcardID: uuid.New(),
		Type:        model.FlashcardVocab,
		Term:        "水",
		Reading:     "みず",
		Meaning:     "water",
		Lesson:      lesson,
		Sequence:    sequence,
	}
	require.NoError(t, db.Create(card).Error)
	return card
}

func Test_gormProgressRepository_UpsertBinary(t *testing.T) {
	ctx := context.Background()
	repo := NewGormProgressRepository()

	t.Run("再マーキングしてもmastered_atは最初の時刻のまま", func(t *testing.T) {
		db := setupRepoTestDB(t)
		learnerID := uuid.New()
		card := createTestFlashcard(t, db, 1, 1)

		first := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
		second := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

		require.NoError(t, repo.UpsertBinary(ctx, db, learnerID, card.FlashcardID, true, first))
		require.NoError(t, repo.UpsertBinary(ctx, db, learnerID, card.FlashcardID, true, second))

		rec, err := repo.Find(ctx, db, learnerID, card.FlashcardID)
		require.NoError(t, err)
		assert.Equal(t, 3, rec.Level)
		require.NotNil(t, rec.MasteredAt)
		assert.WithinDuration(t, first, *rec.MasteredAt, time.Second)
	})

	t.Run("unknownに落としてもmastered_atは消えない", func(t *testing.T) {
		db := setupRepoTestDB(t)
		learnerID := uuid.New()
		card := createTestFlashcard(t, db, 1, 1)

		first := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
		later := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

		require.NoError(t, repo.UpsertBinary(ctx, db, learnerID, card.FlashcardID, true, first))
		require.NoError(t, repo.UpsertBinary(ctx, db, learnerID, card.FlashcardID, false, later))

		rec, err := repo.Find(ctx, db, learnerID, card.FlashcardID)
		require.NoError(t, err)
		assert.Equal(t, 0, rec.Level)
		require.NotNil(t, rec.MasteredAt)
		assert.WithinDuration(t, first, *rec.MasteredAt, time.Second)

		// known に戻しても同じ
		require.NoError(t, repo.UpsertBinary(ctx, db, learnerID, card.FlashcardID, true, later))
		rec, err = repo.Find(ctx, db, learnerID, card.FlashcardID)
		require.NoError(t, err)
		assert.Equal(t, 3, rec.Level)
		assert.WithinDuration(t, first, *rec.MasteredAt, time.Second)
	})

	t.Run("ペアごとに1レコードのまま", func(t *testing.T) {
		db := setupRepoTestDB(t)
		learnerID := uuid.New()
		card := createTestFlashcard(t, db, 1, 1)
		now := time.Now().UTC()

		require.NoError(t, repo.UpsertBinary(ctx, db, learnerID, card.FlashcardID, true, now))
		require.NoError(t, repo.UpsertBinary(ctx, db, learnerID, card.FlashcardID, false, now))

		var count int64
		require.NoError(t, db.Model(&model.ProgressRecord{}).
			Where("learner_id = ? AND item_id = ?", learnerID, card.FlashcardID).
			Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}

func Test_gormProgressRepository_FindDueFlashcards(t *testing.T) {
	ctx := context.Background()
	repo := NewGormProgressRepository()
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	seedProgress := func(t *testing.T, db *gorm.DB, learnerID uuid.UUID, card *model.Flashcard, level int, nextReview *time.Time) {
		t.Helper()
		require.NoError(t, db.Create(&model.ProgressRecord{
			ProgressID: uuid.New(),
			LearnerID:  learnerID,
			ItemID:     card.FlashcardID,
			ItemKind:   model.ItemFlashcard,
			Level:      level,
			NextReview: nextReview,
		}).Error)
	}

	t.Run("normal: NULLと過去だけが対象でNULLが先頭", func(t *testing.T) {
		db := setupRepoTestDB(t)
		learnerID := uuid.New()

		cardNull := createTestFlashcard(t, db, 1, 1)
		cardPast := createTestFlashcard(t, db, 1, 2)
		cardFuture := createTestFlashcard(t, db, 1, 3)

		past := now.AddDate(0, 0, -1)
		future := now.AddDate(0, 0, 1)
		seedProgress(t, db, learnerID, cardPast, 1, &past)
		seedProgress(t, db, learnerID, cardFuture, 1, &future)
		seedProgress(t, db, learnerID, cardNull, 1, nil)

		records, err := repo.FindDueFlashcards(ctx, db, learnerID, model.ReviewModeNormal, now, 100)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Nil(t, records[0].NextReview)
		assert.Equal(t, cardNull.FlashcardID, records[0].ItemID)
		require.NotNil(t, records[1].NextReview)
		assert.Equal(t, cardPast.FlashcardID, records[1].ItemID)
	})

	t.Run("normal: 練習問題種別のレコードは含まれない", func(t *testing.T) {
		db := setupRepoTestDB(t)
		learnerID := uuid.New()
		card := createTestFlashcard(t, db, 1, 1)

		require.NoError(t, db.Create(&model.ProgressRecord{
			ProgressID: uuid.New(),
			LearnerID:  learnerID,
			ItemID:     card.FlashcardID,
			ItemKind:   model.ItemPractice,
			Level:      1,
		}).Error)

		records, err := repo.FindDueFlashcards(ctx, db, learnerID, model.ReviewModeNormal, now, 100)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("immediate: level 0のレコードだけが対象", func(t *testing.T) {
		db := setupRepoTestDB(t)
		learnerID := uuid.New()

		cardZero := createTestFlashcard(t, db, 1, 1)
		cardLearned := createTestFlashcard(t, db, 1, 2)
		seedProgress(t, db, learnerID, cardZero, 0, nil)
		seedProgress(t, db, learnerID, cardLearned, 2, nil)

		records, err := repo.FindDueFlashcards(ctx, db, learnerID, model.ReviewModeImmediate, now, 100)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, cardZero.FlashcardID, records[0].ItemID)
	})
}
