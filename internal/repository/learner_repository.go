// internal/repository/learner_repository.go
package repository

import (
	"context"
	"errors"

	"kotoba_keep/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type LearnerRepository interface {
	Create(ctx context.Context, tx *gorm.DB, learner *model.Learner) error
	FindByID(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (*model.Learner, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Learner, error)
}

type gormLearnerRepository struct{}

func NewGormLearnerRepository() LearnerRepository {
	return &gormLearnerRepository{}
}

func (r *gormLearnerRepository) Create(ctx context.Context, tx *gorm.DB, learner *model.Learner) error {
	result := tx.WithContext(ctx).Create(learner)
	if result.Error != nil {
		// Postgres の一意制約違反 (23505) は重複エラーとして返す
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			return model.ErrConflict
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (r *gormLearnerRepository) FindByID(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (*model.Learner, error) {
	var learner model.Learner
	result := db.WithContext(ctx).Where("learner_id = ?", learnerID).First(&learner)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &learner, nil
}

func (r *gormLearnerRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Learner, error) {
	var learner model.Learner
	result := db.WithContext(ctx).Where("email = ?", email).First(&learner)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &learner, nil
}
