package repository

import (
	"context"

	"github.com/Hardik699/hanuram-sale-new/internal/domain/entity"
)

// ItemRepository is the item catalog the sales engine resolves SAP codes
// against. The engine never writes to the catalog.
type ItemRepository interface {
	// GetByItemID returns the item with the given external id, or nil when absent
	GetByItemID(ctx context.Context, itemID string) (*entity.Item, error)

	// List returns every catalog item, for the SAP match report
	List(ctx context.Context) ([]entity.Item, error)
}
