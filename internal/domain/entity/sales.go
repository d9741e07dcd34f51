package entity

// VariationSales is one variation's contribution within a channel.
// Quantity is in the variation's declared sale unit (count, or kilograms
// after weight adjustment); Value is money computed from the raw
// unconverted quantity so it reconciles to source receipts.
type VariationSales struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Value    float64 `json:"value"`
}

// ChannelSales is one canonical channel's totals with its per-variation
// breakdown.
type ChannelSales struct {
	Quantity   float64          `json:"quantity"`
	Value      float64          `json:"value"`
	Variations []VariationSales `json:"variations"`
}

// MonthlySalesPoint is one month of the monthly series, split by channel
// with per-channel variation breakdowns.
type MonthlySalesPoint struct {
	Month            string             `json:"month"`
	ZomatoQty        float64            `json:"zomato_qty"`
	SwiggyQty        float64            `json:"swiggy_qty"`
	DiningQty        float64            `json:"dining_qty"`
	ParcelQty        float64            `json:"parcel_qty"`
	TotalQty         float64            `json:"total_qty"`
	ZomatoVariations map[string]float64 `json:"zomato_variations"`
	SwiggyVariations map[string]float64 `json:"swiggy_variations"`
	DiningVariations map[string]float64 `json:"dining_variations"`
	ParcelVariations map[string]float64 `json:"parcel_variations"`
}

// DailySalesPoint is one day of the daily series, split by channel.
type DailySalesPoint struct {
	Date      string  `json:"date"`
	ZomatoQty float64 `json:"zomato_qty"`
	SwiggyQty float64 `json:"swiggy_qty"`
	DiningQty float64 `json:"dining_qty"`
	ParcelQty float64 `json:"parcel_qty"`
	TotalQty  float64 `json:"total_qty"`
}

// SalesAggregate is the full multi-dimensional answer to "how did this
// item sell": four channel blocks, chronological monthly and daily
// series, and per-restaurant totals. An item with no sales yields the
// zero-valued shape, never an error.
type SalesAggregate struct {
	ItemID          string              `json:"item_id"`
	Zomato          ChannelSales        `json:"zomato_data"`
	Swiggy          ChannelSales        `json:"swiggy_data"`
	Dining          ChannelSales        `json:"dining_data"`
	Parcel          ChannelSales        `json:"parcel_data"`
	Monthly         []MonthlySalesPoint `json:"monthly_data"`
	Daily           []DailySalesPoint   `json:"date_wise_data"`
	RestaurantSales map[string]float64  `json:"restaurant_sales"`
}
