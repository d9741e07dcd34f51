package service

import (
	"context"
	"strings"

	"github.com/Hardik699/hanuram-sale-new/internal/domain/entity"
	"github.com/Hardik699/hanuram-sale-new/internal/domain/repository"
	"github.com/Hardik699/hanuram-sale-new/pkg/apperror"
	"github.com/Hardik699/hanuram-sale-new/pkg/logger"
	"github.com/Hardik699/hanuram-sale-new/pkg/pagination"
	"github.com/google/uuid"
)

// RowBatchService manages the upload lifecycle: storing new batches,
// listing their metadata, and deleting them.
type RowBatchService struct {
	batchRepo repository.RowBatchRepository
	log       *logger.Logger
}

func NewRowBatchService(batchRepo repository.RowBatchRepository, log *logger.Logger) *RowBatchService {
	return &RowBatchService{batchRepo: batchRepo, log: log}
}

// CreateRowBatch stores one uploaded table. data[0] is the header row;
// the rest are data rows, kept verbatim with no validation of their
// contents beyond shape. Rows are judged at query time, not here.
func (s *RowBatchService) CreateRowBatch(ctx context.Context, sourceType string, year, month int, data [][]entity.Cell) (*entity.RowBatch, error) {
	sourceType = strings.TrimSpace(sourceType)
	if sourceType == "" {
		return nil, apperror.NewBadRequestError("source type is required")
	}
	if year < 2000 || year > 2099 {
		return nil, apperror.NewBadRequestError("year must be between 2000 and 2099")
	}
	if month < 1 || month > 12 {
		return nil, apperror.NewBadRequestError("month must be between 1 and 12")
	}
	if len(data) < 2 {
		return nil, apperror.NewBadRequestError("data must contain a header row and at least one data row")
	}

	header := make(entity.Header, len(data[0]))
	for i, cell := range data[0] {
		header[i] = cell.Text()
	}

	rows := entity.CellGrid(data[1:])
	batch := &entity.RowBatch{
		SourceType: sourceType,
		Year:       year,
		Month:      month,
		Header:     header,
		Rows:       rows,
		RowCount:   len(rows),
	}

	if err := s.batchRepo.Create(ctx, batch); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("batch_id", batch.ID.String()).
		Str("source_type", sourceType).
		Int("year", year).
		Int("month", month).
		Int("rows", batch.RowCount).
		Msg("row batch stored")

	return batch, nil
}

// ListBatches returns batch metadata newest first, without row payloads.
func (s *RowBatchService) ListBatches(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.RowBatch], error) {
	params.Validate()

	batches, total, err := s.batchRepo.ListMeta(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(batches, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// DeleteBatch removes one batch and all the sales rows it carried.
func (s *RowBatchService) DeleteBatch(ctx context.Context, id uuid.UUID) error {
	batch, err := s.batchRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if batch == nil {
		return apperror.NewNotFoundError("Row batch")
	}

	if err := s.batchRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("batch_id", id.String()).Msg("row batch deleted")
	return nil
}
