package repository

import (
	"context"

	"github.com/Hardik699/hanuram-sale-new/internal/domain/entity"
	"github.com/Hardik699/hanuram-sale-new/pkg/pagination"
	"github.com/google/uuid"
)

// RowBatchRepository is the row-batch store: an append-only collection of
// uploaded tables. Batches are never updated in place; the aggregation
// engine only reads them.
type RowBatchRepository interface {
	// Create appends a new immutable batch
	Create(ctx context.Context, batch *entity.RowBatch) error

	// GetByID returns a batch with its full row payload, or nil when absent
	GetByID(ctx context.Context, id uuid.UUID) (*entity.RowBatch, error)

	// ListAll returns every batch with full row payloads, for aggregation scans
	ListAll(ctx context.Context) ([]entity.RowBatch, error)

	// ListMeta returns batch metadata (no row payloads), newest first
	ListMeta(ctx context.Context, params *pagination.PaginationParams) ([]entity.RowBatch, int64, error)

	// Delete removes a batch; the only way sales data ever disappears
	Delete(ctx context.Context, id uuid.UUID) error
}
