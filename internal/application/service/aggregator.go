package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Hardik699/hanuram-sale-new/internal/domain/entity"
	"github.com/Hardik699/hanuram-sale-new/internal/domain/enum"
)

// Column names resolved per batch; different uploads order their columns
// differently, so positions are never assumed.
const (
	colSAPCode    = "sap_code"
	colRestaurant = "restaurant_name"
	colDate       = "New Date"
	colArea       = "area"
	colOrderType  = "order_type"
	colQuantity   = "item_quantity"
	colPrice      = "item_price"
	colCategory   = "category_name"
)

// variationInfo is the resolved identity of one SAP code: the variation
// it sells and the precomputed weight factor for KG variations.
type variationInfo struct {
	Name     string
	SaleType enum.SaleType
	KgFactor float64
}

// variationIndex maps trimmed SAP codes (case-sensitive) to their
// variation. Rebuilt from the catalog on every query since the catalog
// can change between queries.
type variationIndex map[string]variationInfo

func buildVariationIndex(item *entity.Item) variationIndex {
	idx := make(variationIndex)
	if item == nil {
		return idx
	}
	for i, v := range item.Variations {
		code := strings.TrimSpace(v.SAPCode)
		if code == "" {
			continue
		}
		name := v.Value
		if name == "" {
			name = fmt.Sprintf("Variation %d", i+1)
		}
		saleType := v.SaleType.Normalize()
		factor := 1.0
		if saleType == enum.SaleTypeKG {
			factor = KgFactor(name)
		}
		idx[code] = variationInfo{Name: name, SaleType: saleType, KgFactor: factor}
	}
	return idx
}

// dateWindow is an inclusive [start, end] filter over calendar dates.
type dateWindow struct {
	Start time.Time
	End   time.Time
}

// Sentinel bounds used when a caller supplies no (or unparseable)
// window, so a missing bound never truncates historical data.
var (
	windowFarPast   = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	windowFarFuture = time.Date(2099, time.December, 31, 0, 0, 0, 0, time.UTC)
)

func unboundedWindow() dateWindow {
	return dateWindow{Start: windowFarPast, End: windowFarFuture}
}

func (w dateWindow) contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

type channelVariationTotals struct {
	Quantity float64
	Value    float64
}

type monthChannelTotals struct {
	Total      float64
	Variations map[string]float64
}

// aggregationState is the working accumulator of one query: four views
// fed by the same single pass, so they always sum to the same grand
// total. Fresh per query, discarded after rendering.
type aggregationState struct {
	byChannelVariation map[enum.Channel]map[string]*channelVariationTotals
	byMonthChannel     map[string]map[enum.Channel]*monthChannelTotals
	byDayChannel       map[string]map[enum.Channel]float64
	byRestaurant       map[string]float64

	scanned        int
	matched        int
	skippedDate    int
	skippedBatches int
}

func newAggregationState() *aggregationState {
	byChannel := make(map[enum.Channel]map[string]*channelVariationTotals, 4)
	for _, ch := range enum.Channels() {
		byChannel[ch] = make(map[string]*channelVariationTotals)
	}
	return &aggregationState{
		byChannelVariation: byChannel,
		byMonthChannel:     make(map[string]map[enum.Channel]*monthChannelTotals),
		byDayChannel:       make(map[string]map[enum.Channel]float64),
		byRestaurant:       make(map[string]float64),
	}
}

// columnIndex resolves a column by case-insensitive trimmed header name,
// or -1 when the batch has no such column.
func columnIndex(header entity.Header, name string) int {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, h := range header {
		if strings.ToLower(strings.TrimSpace(h)) == want {
			return i
		}
	}
	return -1
}

// cellAt reads a cell defensively; a missing column or a short row is an
// absent cell, never a panic.
func cellAt(row []entity.Cell, idx int) entity.Cell {
	if idx < 0 || idx >= len(row) {
		return entity.AbsentCell()
	}
	return row[idx]
}

// aggregate folds every matching row of every batch into a fresh
// aggregation state. Rows with unparseable or out-of-window dates are
// skipped and counted, not errors; a batch with no SAP-code column
// contributes nothing.
func aggregate(batches []entity.RowBatch, idx variationIndex, window dateWindow, restaurantFilter string) *aggregationState {
	st := newAggregationState()

	for _, batch := range batches {
		if len(batch.Rows) == 0 {
			continue
		}

		sapIdx := columnIndex(batch.Header, colSAPCode)
		if sapIdx == -1 {
			st.skippedBatches++
			continue
		}
		restaurantIdx := columnIndex(batch.Header, colRestaurant)
		dateIdx := columnIndex(batch.Header, colDate)
		areaIdx := columnIndex(batch.Header, colArea)
		orderTypeIdx := columnIndex(batch.Header, colOrderType)
		quantityIdx := columnIndex(batch.Header, colQuantity)
		priceIdx := columnIndex(batch.Header, colPrice)

		for _, row := range batch.Rows {
			st.scanned++

			info, ok := idx[cellAt(row, sapIdx).Text()]
			if !ok {
				continue
			}

			date, ok := ParseSalesDate(cellAt(row, dateIdx).Text())
			if !ok || !window.contains(date) {
				st.skippedDate++
				continue
			}

			restaurant := cellAt(row, restaurantIdx).Text()
			if restaurant == "" {
				restaurant = "Unknown"
			}
			if restaurantFilter != "" && restaurant != restaurantFilter {
				continue
			}

			st.matched++

			quantity := cellAt(row, quantityIdx).Float()
			price := cellAt(row, priceIdx).Float()
			// Money stays on raw quantities so it reconciles to receipts
			// even when the displayed quantity is weight-adjusted.
			value := math.Round(quantity * price)

			channel := ClassifyChannel(cellAt(row, areaIdx).Text(), cellAt(row, orderTypeIdx).Text())
			adjusted := quantity * info.KgFactor

			slot := st.byChannelVariation[channel][info.Name]
			if slot == nil {
				slot = &channelVariationTotals{}
				st.byChannelVariation[channel][info.Name] = slot
			}
			slot.Quantity += adjusted
			slot.Value += value

			month := date.Format("2006-01")
			monthChannels := st.byMonthChannel[month]
			if monthChannels == nil {
				monthChannels = make(map[enum.Channel]*monthChannelTotals)
				st.byMonthChannel[month] = monthChannels
			}
			monthSlot := monthChannels[channel]
			if monthSlot == nil {
				monthSlot = &monthChannelTotals{Variations: make(map[string]float64)}
				monthChannels[channel] = monthSlot
			}
			monthSlot.Total += adjusted
			monthSlot.Variations[info.Name] += adjusted

			day := date.Format("2006-01-02")
			dayChannels := st.byDayChannel[day]
			if dayChannels == nil {
				dayChannels = make(map[enum.Channel]float64)
				st.byDayChannel[day] = dayChannels
			}
			dayChannels[channel] += adjusted

			st.byRestaurant[restaurant] += adjusted
		}
	}

	return st
}
