package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Hardik699/hanuram-sale-new/internal/application/service"
	"github.com/Hardik699/hanuram-sale-new/internal/domain/entity"
	"github.com/Hardik699/hanuram-sale-new/internal/domain/enum"
	"github.com/Hardik699/hanuram-sale-new/internal/infrastructure/cache"
	"github.com/Hardik699/hanuram-sale-new/pkg/logger"
	"github.com/Hardik699/hanuram-sale-new/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubItemRepo struct {
	items map[string]*entity.Item
}

func (s *stubItemRepo) GetByItemID(_ context.Context, itemID string) (*entity.Item, error) {
	return s.items[itemID], nil
}

func (s *stubItemRepo) List(_ context.Context) ([]entity.Item, error) {
	return nil, nil
}

type stubBatchRepo struct {
	batches []entity.RowBatch
}

func (s *stubBatchRepo) Create(_ context.Context, _ *entity.RowBatch) error { return nil }

func (s *stubBatchRepo) GetByID(_ context.Context, _ uuid.UUID) (*entity.RowBatch, error) {
	return nil, nil
}

func (s *stubBatchRepo) ListAll(_ context.Context) ([]entity.RowBatch, error) {
	return s.batches, nil
}

func (s *stubBatchRepo) ListMeta(_ context.Context, _ *pagination.PaginationParams) ([]entity.RowBatch, int64, error) {
	return nil, 0, nil
}

func (s *stubBatchRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	items := map[string]*entity.Item{
		"ITM-1": {
			ItemID:   "ITM-1",
			ItemName: "Besan Ladoo",
			Variations: entity.VariationList{
				{Value: "Regular", SAPCode: "SAP1", SaleType: enum.SaleTypeQty},
			},
		},
	}
	batches := []entity.RowBatch{{
		SourceType: "pos",
		Year:       2024,
		Month:      1,
		Header:     entity.Header{"sap_code", "restaurant_name", "New Date", "area", "order_type", "item_quantity", "item_price"},
		Rows: entity.CellGrid{{
			entity.StringCell("SAP1"),
			entity.StringCell("Hanuram Central"),
			entity.StringCell("05-01-2024"),
			entity.StringCell("Zomato"),
			entity.StringCell(""),
			entity.NumberCell(2),
			entity.NumberCell(100),
		}},
		RowCount: 1,
	}}

	svc := service.NewSalesService(
		&stubItemRepo{items: items},
		&stubBatchRepo{batches: batches},
		cache.NoopSalesCache{},
		time.Minute,
		logger.Nop(),
	)
	h := NewSalesHandler(svc)

	router := gin.New()
	router.GET("/api/v1/sales/items/:item_id", h.GetItemSales)
	router.GET("/api/v1/sales/restaurants", h.ListRestaurants)
	return router
}

func TestGetItemSalesHTTP(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales/items/ITM-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                  `json:"success"`
		Data    entity.SalesAggregate `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "ITM-1", body.Data.ItemID)
	assert.InDelta(t, 2, body.Data.Zomato.Quantity, 1e-9)
	assert.InDelta(t, 200, body.Data.Zomato.Value, 1e-9)
}

func TestGetItemSalesHTTPUnknownItem(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales/items/NOPE", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data entity.SalesAggregate `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOPE", body.Data.ItemID)
	assert.InDelta(t, 0, body.Data.Zomato.Quantity, 1e-9)
}

func TestListRestaurantsHTTP(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales/restaurants", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"Hanuram Central"}, body.Data)
}
