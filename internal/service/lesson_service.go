package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kotoba_keep/internal/config"
	"kotoba_keep/internal/middleware"
	"kotoba_keep/internal/model"
	"kotoba_keep/internal/repository"
	"kotoba_keep/internal/session"
	"kotoba_keep/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LessonService はレッスン学習の取得・マーキング・進行解決を担当します。
type LessonService interface {
	// FetchLessonBatch はレッスン学習用のカード一式を返します。
	// learnerID が nil (ゲスト) の場合はレッスン1の先頭をゲート無しで返します。
	FetchLessonBatch(ctx context.Context, learnerID *uuid.UUID, lesson int) (*model.LessonBatchResponse, error)
	// MarkFlashcard はレッスン流しの二値マーキング (known/unknown)。
	// ラダーを通らず level 3 / 0 を直接設定する別経路です。
	MarkFlashcard(ctx context.Context, learnerID, sessionID *uuid.UUID, flashcardID uuid.UUID, known bool) (*model.MarkFlashcardResponse, error)
	// ResolveNextLesson は学習者が次に進むべきレッスンを解決します。
	ResolveNextLesson(ctx context.Context, learnerID uuid.UUID) (*model.NextLessonResponse, error)
	// FetchCounts はダッシュボード用の件数サマリを返します。
	FetchCounts(ctx context.Context, learnerID uuid.UUID) (*model.CountsResponse, error)
}

type lessonService struct {
	db       *gorm.DB
	cardRepo repository.FlashcardRepository
	progRepo repository.ProgressRepository
	guests   *session.Store
	cfg      *config.Config
}

func NewLessonService(db *gorm.DB, cardRepo repository.FlashcardRepository, progRepo repository.ProgressRepository, guests *session.Store, cfg *config.Config) LessonService {
	return &lessonService{
		db:       db,
		cardRepo: cardRepo,
		progRepo: progRepo,
		guests:   guests,
		cfg:      cfg,
	}
}

// storeErr はリポジトリ障害を STORE_UNAVAILABLE として包みます。
// ビジネスルールエラー (習熟不足など) と混同しないこと。
func storeErr(err error) *model.AppError {
	return model.NewAppError("STORE_UNAVAILABLE", "データストアにアクセスできません。", "",
		fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err))
}

func (s *lessonService) FetchLessonBatch(ctx context.Context, learnerID *uuid.UUID, lesson int) (*model.LessonBatchResponse, error) {
	logger := middleware.GetLogger(ctx)
	batchSize := s.cfg.App.LessonBatchSize

	if lesson < 1 {
		return nil, model.NewAppError("INVALID_LESSON", "レッスン番号が不正です。", "lesson", model.ErrInvalidInput)
	}

	// ゲストはレッスン1の先頭をそのまま返す。ゲート判定も習熟チェックも無し。
	// これが唯一のゲート無し経路。
	if learnerID == nil {
		logger.Info("Guest user detected. Returning head of lesson 1.")
		cards, err := s.cardRepo.FindLessonHead(ctx, s.db, 1, batchSize)
		if err != nil {
			logger.Error("Failed to fetch lesson head for guest", "error", err)
			return nil, storeErr(err)
		}
		return &model.LessonBatchResponse{Lesson: 1, Flashcards: cards}, nil
	}

	logger = logger.With("learner_id", *learnerID, "lesson", lesson)

	// レッスン2以降は前のレッスンの習熟度ゲートがかかる
	if lesson > 1 {
		prev := lesson - 1
		total, err := s.cardRepo.CountInLesson(ctx, s.db, prev)
		if err != nil {
			logger.Error("Failed to count lesson cards", "error", err)
			return nil, storeErr(err)
		}
		mastered, err := s.progRepo.CountMasteredInLesson(ctx, s.db, *learnerID, prev)
		if err != nil {
			logger.Error("Failed to count mastered cards", "error", err)
			return nil, storeErr(err)
		}

		percent := srs.MasteryPercent(int(total), int(mastered))
		logger.Info("Lesson gate check", "prev_lesson", prev, "mastery_percent", percent)

		if !srs.IsMastered(int(total), int(mastered)) {
			return nil, &model.LessonLockedError{
				Lesson:         lesson,
				RequiredLesson: prev,
				MasteryPercent: percent,
			}
		}
	}

	cards, err := s.cardRepo.FindUnseenInLesson(ctx, s.db, *learnerID, lesson, batchSize)
	if err != nil {
		logger.Error("Failed to fetch unseen lesson cards", "error", err)
		return nil, storeErr(err)
	}

	logger.Info("Lesson batch fetched", "count", len(cards))
	return &model.LessonBatchResponse{Lesson: lesson, Flashcards: cards}, nil
}

func (s *lessonService) MarkFlashcard(ctx context.Context, learnerID, sessionID *uuid.UUID, flashcardID uuid.UUID, known bool) (*model.MarkFlashcardResponse, error) {
	logger := middleware.GetLogger(ctx).With("flashcard_id", flashcardID, "known", known)
	now := time.Now().UTC()

	// セッションも持たないゲストは保存しない (元の挙動をそのまま保存)
	if learnerID == nil && sessionID == nil {
		logger.Info("Guest without session: progress not saved")
		return &model.MarkFlashcardResponse{Message: "Guest user: progress not saved."}, nil
	}

	// マーク対象のカードが実在することを確認
	if _, err := s.cardRepo.FindByID(ctx, s.db, flashcardID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "フラッシュカードが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to look up flashcard", "error", err)
		return nil, storeErr(err)
	}

	if learnerID == nil {
		// ゲストセッション: インメモリストアに二値マーキングを記録
		_, err := s.guests.Upsert(*sessionID, flashcardID, model.ItemFlashcard, func(rec *model.ProgressRecord) {
			if known {
				rec.Level = 3
				if rec.MasteredAt == nil {
					rec.MasteredAt = &now
				}
			} else {
				rec.Level = 0
			}
			rec.NextReview = nil
		})
		if err != nil {
			logger.Error("Failed to mark flashcard in session store", "error", err)
			return nil, storeErr(err)
		}
		return &model.MarkFlashcardResponse{Message: "Flashcard marked (session)."}, nil
	}

	if err := s.progRepo.UpsertBinary(ctx, s.db, *learnerID, flashcardID, known, now); err != nil {
		logger.Error("Failed to mark flashcard", "error", err)
		return nil, storeErr(err)
	}

	logger.Info("Flashcard marked")
	return &model.MarkFlashcardResponse{Message: "Flashcard updated successfully."}, nil
}

func (s *lessonService) ResolveNextLesson(ctx context.Context, learnerID uuid.UUID) (*model.NextLessonResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	// 1) 進捗が全く無ければレッスン1から
	hasAny, err := s.progRepo.HasAny(ctx, s.db, learnerID)
	if err != nil {
		logger.Error("Failed to check progress existence", "error", err)
		return nil, storeErr(err)
	}
	if !hasAny {
		one := 1
		return &model.NextLessonResponse{NextLesson: &one, Locked: false}, nil
	}

	// 2) 着手済みの最大レッスンを探す
	highest, err := s.progRepo.HighestLesson(ctx, s.db, learnerID)
	if err != nil {
		logger.Error("Failed to resolve highest lesson", "error", err)
		return nil, storeErr(err)
	}
	if highest == 0 {
		// 進捗はあるがフラッシュカードに紐付かない (練習のみ等)。レッスン1にフォールバック
		one := 1
		return &model.NextLessonResponse{NextLesson: &one, Locked: false}, nil
	}

	// 3) そのレッスンに未着手カードが残っていれば続行
	total, err := s.cardRepo.CountInLesson(ctx, s.db, highest)
	if err != nil {
		return nil, storeErr(err)
	}
	seen, err := s.progRepo.CountSeenInLesson(ctx, s.db, learnerID, highest)
	if err != nil {
		return nil, storeErr(err)
	}
	if seen < total {
		return &model.NextLessonResponse{NextLesson: &highest, Locked: false}, nil
	}

	// 4) 全部見たが習熟していなければロック
	mastered, err := s.progRepo.CountMasteredInLesson(ctx, s.db, learnerID, highest)
	if err != nil {
		return nil, storeErr(err)
	}
	if !srs.IsMastered(int(total), int(mastered)) {
		return &model.NextLessonResponse{NextLesson: &highest, Locked: true}, nil
	}

	// 5) 次のレッスンがあれば解放
	next := highest + 1
	exists, err := s.cardRepo.LessonExists(ctx, s.db, next)
	if err != nil {
		return nil, storeErr(err)
	}
	if !exists {
		// カリキュラム完走
		return &model.NextLessonResponse{
			NextLesson: nil,
			Locked:     false,
			Message:    "All lessons mastered! Congratulations!",
		}, nil
	}
	return &model.NextLessonResponse{NextLesson: &next, Locked: false}, nil
}

func (s *lessonService) FetchCounts(ctx context.Context, learnerID uuid.UUID) (*model.CountsResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)
	now := time.Now().UTC()

	next, err := s.ResolveNextLesson(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	resp := &model.CountsResponse{
		NextLesson: next.NextLesson,
		Locked:     next.Locked,
	}

	// ロック中または完走済みなら新規カードは0
	if next.NextLesson != nil && !next.Locked {
		unseen, err := s.cardRepo.CountUnseenInLesson(ctx, s.db, learnerID, *next.NextLesson)
		if err != nil {
			logger.Error("Failed to count unseen cards", "error", err)
			return nil, storeErr(err)
		}
		resp.NewLessonCardCount = int(unseen)
	}

	due, err := s.progRepo.CountDueFlashcards(ctx, s.db, learnerID, now)
	if err != nil {
		logger.Error("Failed to count due reviews", "error", err)
		return nil, storeErr(err)
	}
	resp.ReviewCount = int(due)

	return resp, nil
}
