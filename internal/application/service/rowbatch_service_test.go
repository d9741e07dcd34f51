package service

import (
	"context"
	"testing"

	"github.com/Hardik699/hanuram-sale-new/internal/domain/entity"
	"github.com/Hardik699/hanuram-sale-new/pkg/apperror"
	"github.com/Hardik699/hanuram-sale-new/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadData() [][]entity.Cell {
	return [][]entity.Cell{
		{entity.StringCell("sap_code"), entity.StringCell("item_quantity")},
		{entity.StringCell("SAP1"), entity.NumberCell(2)},
		{entity.StringCell("SAP2"), entity.NumberCell(5)},
	}
}

func TestCreateRowBatch(t *testing.T) {
	repo := &fakeBatchRepo{}
	svc := NewRowBatchService(repo, logger.Nop())

	created, err := svc.CreateRowBatch(context.Background(), "pos", 2024, 1, uploadData())
	require.NoError(t, err)

	assert.Equal(t, entity.Header{"sap_code", "item_quantity"}, created.Header)
	assert.Equal(t, 2, created.RowCount)
	assert.Len(t, created.Rows, 2)
	require.Len(t, repo.batches, 1)
}

func TestCreateRowBatchValidation(t *testing.T) {
	svc := NewRowBatchService(&fakeBatchRepo{}, logger.Nop())
	ctx := context.Background()

	_, err := svc.CreateRowBatch(ctx, "  ", 2024, 1, uploadData())
	assert.True(t, apperror.IsAppError(err))

	_, err = svc.CreateRowBatch(ctx, "pos", 1999, 1, uploadData())
	assert.True(t, apperror.IsAppError(err))

	_, err = svc.CreateRowBatch(ctx, "pos", 2024, 13, uploadData())
	assert.True(t, apperror.IsAppError(err))

	// Header alone is not a batch
	_, err = svc.CreateRowBatch(ctx, "pos", 2024, 1, uploadData()[:1])
	assert.True(t, apperror.IsAppError(err))
}

func TestDeleteBatch(t *testing.T) {
	repo := &fakeBatchRepo{}
	svc := NewRowBatchService(repo, logger.Nop())

	created, err := svc.CreateRowBatch(context.Background(), "pos", 2024, 1, uploadData())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBatch(context.Background(), created.ID))
	assert.Empty(t, repo.batches)
}

func TestDeleteBatchNotFound(t *testing.T) {
	svc := NewRowBatchService(&fakeBatchRepo{}, logger.Nop())

	err := svc.DeleteBatch(context.Background(), uuid.New())
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
}
