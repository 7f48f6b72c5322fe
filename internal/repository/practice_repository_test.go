// internal/repository/practice_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"kotoba_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestPracticeItem(t *testing.T, db *gorm.DB, flashcardID uuid.UUID) *model.PracticeItem {
	t.Helper()
	item := &model.PracticeItem{
		PracticeID:  uuid.New(),
		FlashcardID: flashcardID,
		Question:    "＿＿を飲みます",
		Answer:      "みず",
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func seedPracticeProgress(t *testing.T, db *gorm.DB, learnerID, itemID uuid.UUID, kind model.ItemKind, nextReview *time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&model.ProgressRecord{
		ProgressID: uuid.New(),
		LearnerID:  learnerID,
		ItemID:     itemID,
		ItemKind:   kind,
		Level:      1,
		NextReview: nextReview,
	}).Error)
}

func Test_gormPracticeRepository_FindFresh(t *testing.T) {
	ctx := context.Background()
	repo := NewGormPracticeRepository()

	t.Run("親カードごとに1問だけ、未学習の親と着手済みの問題は除外", func(t *testing.T) {
		db := setupRepoTestDB(t)
		learnerID := uuid.New()

		// 親A: 学習済み、未着手の問題が5問 → 1問だけ選ばれる
		parentA := createTestFlashcard(t, db, 1, 1)
		seedPracticeProgress(t, db, learnerID, parentA.FlashcardID, model.ItemFlashcard, nil)
		for i := 0; i < 5; i++ {
			createTestPracticeItem(t, db, parentA.FlashcardID)
		}

		// 親B: 学習済み、未着手1問と着手済み1問 → 未着手の1問だけ
		parentB := createTestFlashcard(t, db, 1, 2)
		seedPracticeProgress(t, db, learnerID, parentB.FlashcardID, model.ItemFlashcard, nil)
		freshB := createTestPracticeItem(t, db, parentB.FlashcardID)
		attemptedB := createTestPracticeItem(t, db, parentB.FlashcardID)
		seedPracticeProgress(t, db, learnerID, attemptedB.PracticeID, model.ItemPractice, nil)

		// 親C: 未学習 → 問題があっても出題しない
		parentC := createTestFlashcard(t, db, 2, 1)
		createTestPracticeItem(t, db, parentC.FlashcardID)

		items, err := repo.FindFresh(ctx, db, learnerID, 10)
		require.NoError(t, err)
		require.Len(t, items, 2)

		parents := map[uuid.UUID]bool{}
		for _, item := range items {
			assert.False(t, parents[item.FlashcardID])
			parents[item.FlashcardID] = true
		}
		assert.True(t, parents[parentA.FlashcardID])
		for _, item := range items {
			if item.FlashcardID == parentB.FlashcardID {
				assert.Equal(t, freshB.PracticeID, item.PracticeID)
			}
			assert.NotEqual(t, attemptedB.PracticeID, item.PracticeID)
		}
	})

	t.Run("1つの親に問題が集中していてもlimit分の親が埋まる", func(t *testing.T) {
		db := setupRepoTestDB(t)
		learnerID := uuid.New()

		// 親Aだけ問題が20問あっても、親B/Cの問題が押し出されないこと
		parents := make([]*model.Flashcard, 3)
		for i := range parents {
			parents[i] = createTestFlashcard(t, db, 1, i+1)
			seedPracticeProgress(t, db, learnerID, parents[i].FlashcardID, model.ItemFlashcard, nil)
		}
		for i := 0; i < 20; i++ {
			createTestPracticeItem(t, db, parents[0].FlashcardID)
		}
		createTestPracticeItem(t, db, parents[1].FlashcardID)
		createTestPracticeItem(t, db, parents[2].FlashcardID)

		items, err := repo.FindFresh(ctx, db, learnerID, 3)
		require.NoError(t, err)
		require.Len(t, items, 3)

		seen := map[uuid.UUID]bool{}
		for _, item := range items {
			seen[item.FlashcardID] = true
		}
		assert.Len(t, seen, 3)
	})
}

func Test_gormPracticeRepository_FindDue(t *testing.T) {
	ctx := context.Background()
	repo := NewGormPracticeRepository()
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("NULLと過去だけが対象でNULLが先頭", func(t *testing.T) {
		db := setupRepoTestDB(t)
		learnerID := uuid.New()
		parent := createTestFlashcard(t, db, 1, 1)

		itemNull := createTestPracticeItem(t, db, parent.FlashcardID)
		itemPast := createTestPracticeItem(t, db, parent.FlashcardID)
		itemFuture := createTestPracticeItem(t, db, parent.FlashcardID)

		past := now.AddDate(0, 0, -1)
		future := now.AddDate(0, 0, 1)
		seedPracticeProgress(t, db, learnerID, itemPast.PracticeID, model.ItemPractice, &past)
		seedPracticeProgress(t, db, learnerID, itemFuture.PracticeID, model.ItemPractice, &future)
		seedPracticeProgress(t, db, learnerID, itemNull.PracticeID, model.ItemPractice, nil)

		items, err := repo.FindDue(ctx, db, learnerID, now, 10)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, itemNull.PracticeID, items[0].PracticeID)
		assert.Equal(t, itemPast.PracticeID, items[1].PracticeID)
	})

	t.Run("進捗の無い問題は対象外", func(t *testing.T) {
		db := setupRepoTestDB(t)
		learnerID := uuid.New()
		parent := createTestFlashcard(t, db, 1, 1)
		createTestPracticeItem(t, db, parent.FlashcardID)

		items, err := repo.FindDue(ctx, db, learnerID, now, 10)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}
