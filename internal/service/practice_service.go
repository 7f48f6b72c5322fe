package service

import (
	"context"
	"errors"
	"time"

	"kotoba_keep/internal/config"
	"kotoba_keep/internal/middleware"
	"kotoba_keep/internal/model"
	"kotoba_keep/internal/repository"
	"kotoba_keep/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PracticeService は穴埋め練習の出題と結果反映を担当します。
// 練習はログイン必須です (ゲストにはレッスン/immediateレビューのみ開放)。
type PracticeService interface {
	// FetchPracticeBatch は二段階で出題を埋めます:
	// 1) fresh: 親カードは学習済みだが問題自体は未着手のもの (親カードごとに1問、ランダム順)
	// 2) due:   1で埋まらなければ、期限の来た既着手問題で補充
	FetchPracticeBatch(ctx context.Context, learnerID uuid.UUID, limit int) (*model.PracticeBatchResponse, error)
	SubmitPractice(ctx context.Context, learnerID, practiceID uuid.UUID, correct bool) (*model.SubmitReviewResponse, error)
}

type practiceService struct {
	db           *gorm.DB
	practiceRepo repository.PracticeRepository
	progRepo     repository.ProgressRepository
	cfg          *config.Config
}

func NewPracticeService(db *gorm.DB, practiceRepo repository.PracticeRepository, progRepo repository.ProgressRepository, cfg *config.Config) PracticeService {
	return &practiceService{
		db:           db,
		practiceRepo: practiceRepo,
		progRepo:     progRepo,
		cfg:          cfg,
	}
}

func (s *practiceService) FetchPracticeBatch(ctx context.Context, learnerID uuid.UUID, limit int) (*model.PracticeBatchResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)
	now := time.Now().UTC()

	if limit <= 0 || limit > s.cfg.App.PracticeLimit {
		limit = s.cfg.App.PracticeLimit
	}

	// --- フェーズ1: fresh ---
	// 親カードごとの1問絞り込みはリポジトリのクエリ側で済んでいる
	fresh, err := s.practiceRepo.FindFresh(ctx, s.db, learnerID, limit)
	if err != nil {
		logger.Error("Failed to fetch fresh practice items", "error", err)
		return nil, storeErr(err)
	}

	if len(fresh) >= limit {
		logger.Info("Practice batch filled with fresh items", "count", len(fresh))
		return &model.PracticeBatchResponse{Practice: fresh}, nil
	}

	// --- フェーズ2: due で残りを補充 ---
	remaining := limit - len(fresh)
	due, err := s.practiceRepo.FindDue(ctx, s.db, learnerID, now, remaining)
	if err != nil {
		logger.Error("Failed to fetch due practice items", "error", err)
		return nil, storeErr(err)
	}

	batch := append(fresh, due...)
	logger.Info("Practice batch fetched", "fresh", len(fresh), "due", len(due))
	return &model.PracticeBatchResponse{Practice: batch}, nil
}

func (s *practiceService) SubmitPractice(ctx context.Context, learnerID, practiceID uuid.UUID, correct bool) (*model.SubmitReviewResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "practice_id", practiceID, "is_correct", correct)
	now := time.Now().UTC()

	// 出題対象が実在することを確認
	if _, err := s.practiceRepo.FindByID(ctx, s.db, practiceID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "練習問題が見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to look up practice item", "error", err)
		return nil, storeErr(err)
	}

	var resp *model.SubmitReviewResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record, err := s.progRepo.Find(ctx, tx, learnerID, practiceID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding practice progress", "error", err)
			return storeErr(err)
		}

		currentLevel := 0
		var priorMastered *time.Time
		if record != nil {
			currentLevel = record.Level
			priorMastered = record.MasteredAt
		}

		newLevel, next := srs.Step(currentLevel, correct, now, time.UTC)

		if err := s.progRepo.UpsertAnswer(ctx, tx, learnerID, practiceID, model.ItemPractice, newLevel, correct, &next, now); err != nil {
			logger.Error("Error upserting practice progress", "error", err)
			return storeErr(err)
		}

		masteredAt := priorMastered
		if newLevel >= 3 && masteredAt == nil {
			masteredAt = &now
		}
		resp = &model.SubmitReviewResponse{Level: newLevel, NextReview: &next, MasteredAt: masteredAt}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Practice submitted", "new_level", resp.Level)
	return resp, nil
}
