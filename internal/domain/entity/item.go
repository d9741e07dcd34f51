package entity

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/Hardik699/hanuram-sale-new/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Variation is one sellable size/portion of an item. The SAP code ties
// catalog variations to point-of-sale rows.
type Variation struct {
	Value    string        `json:"value"`
	SAPCode  string        `json:"sap_code"`
	SaleType enum.SaleType `json:"sale_type"`
}

// VariationList is stored as a JSONB column.
type VariationList []Variation

func (l VariationList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *VariationList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// Item is a catalog entry in the menu admin portal. The sales engine
// only reads items; catalog maintenance lives elsewhere.
type Item struct {
	ID         uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	ItemID     string        `gorm:"size:100;unique;not null;index" json:"item_id"`
	ItemName   string        `gorm:"size:255;not null" json:"item_name"`
	ShortCode  string        `gorm:"size:100" json:"short_code"`
	Group      string        `gorm:"size:255" json:"group"`
	Category   string        `gorm:"size:255" json:"category"`
	Variations VariationList `gorm:"type:jsonb" json:"variations"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// BeforeCreate generates a UUID before inserting a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}
