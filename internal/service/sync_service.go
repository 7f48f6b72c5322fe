package service

import (
	"context"
	"errors"
	"time"

	"kotoba_keep/internal/middleware"
	"kotoba_keep/internal/model"
	"kotoba_keep/internal/repository"
	"kotoba_keep/internal/session"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SyncService はゲスト進捗をアカウントの耐久ストアへ移行します。
type SyncService interface {
	// SyncGuestProgress は進捗エントリを一括で upsert します。
	// 全件が1トランザクションで適用され、途中で失敗したら何も残りません。
	// per-item の last-write-wins なので、同じ入力で何度呼んでも結果は同じ (冪等)。
	// sessionID が指定されていればサーバー側セッションの内容も統合し、成功後に破棄します。
	SyncGuestProgress(ctx context.Context, learnerID uuid.UUID, entries []model.ProgressEntry, sessionID *uuid.UUID) (*model.SyncProgressResponse, error)
}

type syncService struct {
	db          *gorm.DB
	learnerRepo repository.LearnerRepository
	progRepo    repository.ProgressRepository
	guests      *session.Store
}

func NewSyncService(db *gorm.DB, learnerRepo repository.LearnerRepository, progRepo repository.ProgressRepository, guests *session.Store) SyncService {
	return &syncService{
		db:          db,
		learnerRepo: learnerRepo,
		progRepo:    progRepo,
		guests:      guests,
	}
}

func (s *syncService) SyncGuestProgress(ctx context.Context, learnerID uuid.UUID, entries []model.ProgressEntry, sessionID *uuid.UUID) (*model.SyncProgressResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)
	now := time.Now().UTC()

	// 移行先の学習者が実在することを確認
	if _, err := s.learnerRepo.FindByID(ctx, s.db, learnerID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "移行先の学習者が見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to look up learner", "error", err)
		return nil, storeErr(err)
	}

	// サーバー側セッションの進捗とペイロードを統合する。
	// item_id が重複した場合はペイロード側を優先 (クライアントが最新を知っている前提)。
	merged := entries
	if sessionID != nil {
		snapshot := s.guests.Snapshot(*sessionID)
		if len(snapshot) > 0 {
			fromPayload := make(map[uuid.UUID]bool, len(entries))
			for _, e := range entries {
				fromPayload[e.ItemID] = true
			}
			for _, e := range snapshot {
				if !fromPayload[e.ItemID] {
					merged = append(merged, e)
				}
			}
		}
	}

	if len(merged) == 0 {
		return &model.SyncProgressResponse{Message: "No progress to sync.", Synced: 0}, nil
	}

	// 全件を1トランザクションで。部分的な移行は正しさのバグとして扱う
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.progRepo.BulkUpsert(ctx, tx, learnerID, merged, now)
	})
	if err != nil {
		logger.Error("Guest progress sync failed, rolled back", "error", err, "entries", len(merged))
		return nil, storeErr(err)
	}

	// 移行に成功したらセッションは破棄 (二重移行しても冪等だが、残す理由が無い)
	if sessionID != nil {
		s.guests.Clear(*sessionID)
	}

	logger.Info("Guest progress synced", "entries", len(merged))
	return &model.SyncProgressResponse{Message: "Guest progress synced successfully.", Synced: len(merged)}, nil
}
