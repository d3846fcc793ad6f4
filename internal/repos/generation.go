package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/uiforge/uiforge-backend/internal/logger"
	"github.com/uiforge/uiforge-backend/internal/types"
)

type GenerationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, generations []*types.Generation) ([]*types.Generation, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, generationIDs []uuid.UUID) ([]*types.Generation, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Generation, error)
	GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Generation, error)
}

type generationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGenerationRepo(db *gorm.DB, baseLog *logger.Logger) GenerationRepo {
	return &generationRepo{db: db, log: baseLog.With("repo", "GenerationRepo")}
}

func (gr *generationRepo) Create(ctx context.Context, tx *gorm.DB, generations []*types.Generation) ([]*types.Generation, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	if len(generations) == 0 {
		return []*types.Generation{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&generations).Error; err != nil {
		return nil, err
	}
	return generations, nil
}

func (gr *generationRepo) GetByIDs(ctx context.Context, tx *gorm.DB, generationIDs []uuid.UUID) ([]*types.Generation, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	var results []*types.Generation
	if len(generationIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", generationIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetAll returns every generation row, oldest first.
func (gr *generationRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Generation, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	results := []*types.Generation{}
	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (gr *generationRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Generation, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	var results []*types.Generation
	if len(userIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
