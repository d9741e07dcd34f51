package repository

import (
	"context"
	"errors"

	"github.com/Hardik699/hanuram-sale-new/internal/domain/entity"
	domainRepo "github.com/Hardik699/hanuram-sale-new/internal/domain/repository"
	"github.com/Hardik699/hanuram-sale-new/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type rowBatchRepository struct {
	db *gorm.DB
}

// NewRowBatchRepository creates a new row-batch repository
func NewRowBatchRepository(db *gorm.DB) domainRepo.RowBatchRepository {
	return &rowBatchRepository{db: db}
}

func (r *rowBatchRepository) Create(ctx context.Context, batch *entity.RowBatch) error {
	return r.db.WithContext(ctx).Create(batch).Error
}

func (r *rowBatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.RowBatch, error) {
	var batch entity.RowBatch
	err := r.db.WithContext(ctx).First(&batch, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &batch, err
}

func (r *rowBatchRepository) ListAll(ctx context.Context) ([]entity.RowBatch, error) {
	var batches []entity.RowBatch
	err := r.db.WithContext(ctx).
		Order("year ASC, month ASC, created_at ASC").
		Find(&batches).Error
	return batches, err
}

// ListMeta omits the row payload column; listings only need batch metadata.
func (r *rowBatchRepository) ListMeta(ctx context.Context, params *pagination.PaginationParams) ([]entity.RowBatch, int64, error) {
	var batches []entity.RowBatch
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.RowBatch{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.
		Select("id", "source_type", "year", "month", "header", "row_count", "created_at").
		Order("created_at DESC").
		Offset(params.Offset()).Limit(params.PerPage).
		Find(&batches).Error
	if err != nil {
		return nil, 0, err
	}

	return batches, total, nil
}

func (r *rowBatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.RowBatch{}, "id = ?", id).Error
}
