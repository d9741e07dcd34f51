package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Header is the column-name row of an uploaded batch, stored as JSONB.
type Header []string

func (h Header) Value() (driver.Value, error) {
	return json.Marshal(h)
}

func (h *Header) Scan(value interface{}) error {
	return scanJSON(value, h)
}

// CellGrid is the data rows of an uploaded batch, stored as JSONB.
type CellGrid [][]Cell

func (g CellGrid) Value() (driver.Value, error) {
	return json.Marshal(g)
}

func (g *CellGrid) Scan(value interface{}) error {
	return scanJSON(value, g)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	}
	return errors.New("unsupported column type for JSON scan")
}

// RowBatch is one uploaded point-of-sale export: a header row plus data
// rows, already parsed into primitive cells by the uploader. Batches are
// immutable after creation and removed only by explicit delete.
type RowBatch struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SourceType string    `gorm:"size:100;not null;index" json:"source_type"`
	Year       int       `gorm:"not null" json:"year"`
	Month      int       `gorm:"not null" json:"month"`
	Header     Header    `gorm:"type:jsonb;not null" json:"header"`
	Rows       CellGrid  `gorm:"type:jsonb;not null" json:"-"`
	RowCount   int       `gorm:"default:0" json:"row_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before inserting a new batch
func (b *RowBatch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the RowBatch model
func (RowBatch) TableName() string {
	return "row_batches"
}
