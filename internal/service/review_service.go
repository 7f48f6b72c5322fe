package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"kotoba_keep/internal/config"
	"kotoba_keep/internal/middleware"
	"kotoba_keep/internal/model"
	"kotoba_keep/internal/repository"
	"kotoba_keep/internal/session"
	"kotoba_keep/internal/srs"

	"github.com/google/uuid"
	edlib "github.com/hbollon/go-edlib"
	"gorm.io/gorm"
)

// ReviewService は段階式レビューの取得・結果反映・回答判定を担当します。
type ReviewService interface {
	// FetchDueReview はレビュー対象カードを返します。
	// ゲストの normal モードはログイン必須エラー、immediate はレッスン1の先頭を返します。
	FetchDueReview(ctx context.Context, learnerID *uuid.UUID, mode model.ReviewMode) (*model.ReviewListResponse, error)
	// SubmitReview は段階式レビュー結果を反映します。(learner, item) への
	// level / next_review の書き込みはこの経路だけです (二値マーキングを除く)。
	SubmitReview(ctx context.Context, learnerID, sessionID *uuid.UUID, itemID uuid.UUID, correct bool) (*model.SubmitReviewResponse, error)
	// CheckAnswer は入力回答の正誤を判定します。読みは完全一致、
	// 意味は編集距離の許容つき (タイプミスを救済)。
	CheckAnswer(ctx context.Context, flashcardID uuid.UUID, req *model.CheckAnswerRequest) (*model.CheckAnswerResponse, error)
}

type reviewService struct {
	db       *gorm.DB
	cardRepo repository.FlashcardRepository
	progRepo repository.ProgressRepository
	guests   *session.Store
	cfg      *config.Config
}

func NewReviewService(db *gorm.DB, cardRepo repository.FlashcardRepository, progRepo repository.ProgressRepository, guests *session.Store, cfg *config.Config) ReviewService {
	return &reviewService{
		db:       db,
		cardRepo: cardRepo,
		progRepo: progRepo,
		guests:   guests,
		cfg:      cfg,
	}
}

func (s *reviewService) FetchDueReview(ctx context.Context, learnerID *uuid.UUID, mode model.ReviewMode) (*model.ReviewListResponse, error) {
	logger := middleware.GetLogger(ctx)
	now := time.Now().UTC()

	if mode == "" {
		mode = model.ReviewModeNormal
	}
	if mode != model.ReviewModeNormal && mode != model.ReviewModeImmediate {
		return nil, model.NewAppError("INVALID_MODE", "modeは normal か immediate を指定してください。", "mode", model.ErrInvalidInput)
	}

	if learnerID == nil {
		if mode == model.ReviewModeNormal {
			// ゲストは normal レビューを使えない
			logger.Info("Guest tried normal review, blocked")
			return nil, model.NewAppError("LOGIN_REQUIRED", "通常レビューを使うにはログインしてください。", "", model.ErrLoginRequired)
		}

		// immediate はレッスン1の先頭 (ブートストラップ用コンテンツ、個人化なし)
		cards, err := s.cardRepo.FindLessonHead(ctx, s.db, 1, s.cfg.App.ReviewLimit)
		if err != nil {
			logger.Error("Failed to fetch bootstrap review cards", "error", err)
			return nil, storeErr(err)
		}
		responses := make([]*model.ReviewCardResponse, 0, len(cards))
		for _, c := range cards {
			responses = append(responses, &model.ReviewCardResponse{Flashcard: c, Level: 0})
		}
		return &model.ReviewListResponse{Flashcards: responses}, nil
	}

	records, err := s.progRepo.FindDueFlashcards(ctx, s.db, *learnerID, mode, now, s.cfg.App.ReviewLimit)
	if err != nil {
		logger.Error("Failed to find due flashcards", "error", err, "mode", mode)
		return nil, storeErr(err)
	}

	responses := make([]*model.ReviewCardResponse, 0, len(records))
	for _, rec := range records {
		if rec.Flashcard == nil {
			logger.Warn("Progress record without flashcard, skipping", "progress_id", rec.ProgressID)
			continue
		}
		responses = append(responses, &model.ReviewCardResponse{
			Flashcard:  rec.Flashcard,
			Level:      rec.Level,
			NextReview: rec.NextReview,
		})
	}

	logger.Info("Due review fetched", "mode", mode, "count", len(responses))
	return &model.ReviewListResponse{Flashcards: responses}, nil
}

func (s *reviewService) SubmitReview(ctx context.Context, learnerID, sessionID *uuid.UUID, itemID uuid.UUID, correct bool) (*model.SubmitReviewResponse, error) {
	logger := middleware.GetLogger(ctx).With("item_id", itemID, "is_correct", correct)
	now := time.Now().UTC()

	if learnerID == nil && sessionID == nil {
		return nil, model.NewAppError("LOGIN_REQUIRED", "レビュー結果を保存するにはログインしてください。", "", model.ErrLoginRequired)
	}

	// ゲストセッション: インメモリストアに対して同じラダーを回す
	if learnerID == nil {
		rec, err := s.guests.Upsert(*sessionID, itemID, model.ItemFlashcard, func(r *model.ProgressRecord) {
			newLevel, next := srs.Step(r.Level, correct, now, time.UTC)
			r.Level = newLevel
			r.NextReview = &next
			if correct {
				r.CorrectCount++
			} else {
				r.IncorrectCount++
			}
			if newLevel >= 3 && r.MasteredAt == nil {
				r.MasteredAt = &now
			}
		})
		if err != nil {
			return nil, storeErr(err)
		}
		return &model.SubmitReviewResponse{Level: rec.Level, NextReview: rec.NextReview, MasteredAt: rec.MasteredAt}, nil
	}

	var resp *model.SubmitReviewResponse

	// 現在レベルの読み取りとupsertをトランザクションで括る。カウンタ加算自体は
	// upsert内のDB式なので、並行提出でも加算は失われない。
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record, err := s.progRepo.Find(ctx, tx, *learnerID, itemID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding progress in transaction", "error", err)
			return storeErr(err)
		}

		// 未レビューなら zero-default から始める
		currentLevel := 0
		var priorMastered *time.Time
		if record != nil {
			currentLevel = record.Level
			priorMastered = record.MasteredAt
		}

		newLevel, next := srs.Step(currentLevel, correct, now, time.UTC)

		if err := s.progRepo.UpsertAnswer(ctx, tx, *learnerID, itemID, model.ItemFlashcard, newLevel, correct, &next, now); err != nil {
			logger.Error("Error upserting progress", "error", err)
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

	logger.Info("Review submitted", "new_level", resp.Level)
	return resp, nil
}

func (s *reviewService) CheckAnswer(ctx context.Context, flashcardID uuid.UUID, req *model.CheckAnswerRequest) (*model.CheckAnswerResponse, error) {
	logger := middleware.GetLogger(ctx).With("flashcard_id", flashcardID)

	card, err := s.cardRepo.FindByID(ctx, s.db, flashcardID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "フラッシュカードが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to look up flashcard", "error", err)
		return nil, storeErr(err)
	}

	userInput := strings.ToLower(strings.TrimSpace(req.Answer))

	if req.AnswerType == "reading" {
		// 読みは完全一致のみ
		correct := []string{strings.TrimSpace(card.Reading)}
		return &model.CheckAnswerResponse{
			IsCorrect:      userInput == strings.ToLower(correct[0]) && correct[0] != "",
			CorrectAnswers: correct,
		}, nil
	}

	// 意味は ';' 区切りの候補それぞれと編集距離で比較し、
	// 長い回答ほど大きなタイプミスまで許容する
	candidates := strings.Split(strings.ToLower(card.Meaning), ";")
	resp := &model.CheckAnswerResponse{CorrectAnswers: make([]string, 0, len(candidates))}
	for _, c := range candidates {
		candidate := strings.TrimSpace(c)
		resp.CorrectAnswers = append(resp.CorrectAnswers, candidate)

		dist := edlib.DamerauLevenshteinDistance(userInput, candidate)
		maxLen := len(userInput)
		if len(candidate) > maxLen {
			maxLen = len(candidate)
		}
		threshold := 1
		if maxLen > 4 {
			threshold = 2
		}
		if dist <= threshold {
			resp.IsCorrect = true
			d := dist
			resp.EditDistance = &d
		}
	}
	return resp, nil
}
