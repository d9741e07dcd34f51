package enum

// SaleType declares how an item variation is sold: by count or by weight.
type SaleType string

const (
	SaleTypeQty SaleType = "QTY"
	SaleTypeKG  SaleType = "KG"
)

func (s SaleType) String() string {
	return string(s)
}

// Normalize maps unknown or empty values to the count-based default.
// Catalog data predates the enum and may carry anything.
func (s SaleType) Normalize() SaleType {
	if s == SaleTypeKG {
		return SaleTypeKG
	}
	return SaleTypeQty
}
