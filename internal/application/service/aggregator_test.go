package service

import (
	"testing"
	"time"

	"github.com/Hardik699/hanuram-sale-new/internal/domain/entity"
	"github.com/Hardik699/hanuram-sale-new/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHeader = entity.Header{
	"sap_code", "restaurant_name", "New Date", "area", "order_type", "item_quantity", "item_price",
}

func row(sap, restaurant, date, area, orderType string, qty, price float64) []entity.Cell {
	return []entity.Cell{
		entity.StringCell(sap),
		entity.StringCell(restaurant),
		entity.StringCell(date),
		entity.StringCell(area),
		entity.StringCell(orderType),
		entity.NumberCell(qty),
		entity.NumberCell(price),
	}
}

func batch(header entity.Header, rows ...[]entity.Cell) entity.RowBatch {
	return entity.RowBatch{
		SourceType: "pos",
		Year:       2024,
		Month:      1,
		Header:     header,
		Rows:       rows,
		RowCount:   len(rows),
	}
}

func qtyIndex() variationIndex {
	return variationIndex{
		"SAP1": {Name: "Regular", SaleType: enum.SaleTypeQty, KgFactor: 1},
	}
}

func (st *aggregationState) channelTotal() float64 {
	var total float64
	for _, variations := range st.byChannelVariation {
		for _, v := range variations {
			total += v.Quantity
		}
	}
	return total
}

func TestAggregateConservationAcrossViews(t *testing.T) {
	batches := []entity.RowBatch{batch(testHeader,
		row("SAP1", "Hanuram Central", "05-01-2024", "Zomato", "", 2, 100),
		row("SAP1", "Hanuram Central", "06-01-2024", "Main Hall", "Dine In", 1, 100),
		row("SAP1", "Hanuram North", "20-02-2024", "Swiggy", "", 3, 50),
	)}

	st := aggregate(batches, qtyIndex(), unboundedWindow(), "")

	assert.Equal(t, 3, st.matched)
	assert.InDelta(t, 6, st.channelTotal(), 1e-9)

	var monthly float64
	for _, channels := range st.byMonthChannel {
		for _, m := range channels {
			monthly += m.Total
		}
	}
	assert.InDelta(t, 6, monthly, 1e-9)

	var daily float64
	for _, channels := range st.byDayChannel {
		for _, q := range channels {
			daily += q
		}
	}
	assert.InDelta(t, 6, daily, 1e-9)

	var restaurants float64
	for _, q := range st.byRestaurant {
		restaurants += q
	}
	assert.InDelta(t, 6, restaurants, 1e-9)
}

func TestAggregateWindowIsInclusive(t *testing.T) {
	batches := []entity.RowBatch{batch(testHeader,
		row("SAP1", "R", "04-01-2024", "Zomato", "", 1, 10),
		row("SAP1", "R", "05-01-2024", "Zomato", "", 1, 10),
		row("SAP1", "R", "10-01-2024", "Zomato", "", 1, 10),
		row("SAP1", "R", "11-01-2024", "Zomato", "", 1, 10),
	)}

	window := dateWindow{
		Start: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
	}
	st := aggregate(batches, qtyIndex(), window, "")

	assert.Equal(t, 2, st.matched)
	assert.Equal(t, 2, st.skippedDate)
	assert.InDelta(t, 2, st.channelTotal(), 1e-9)
}

func TestAggregateRestaurantFilter(t *testing.T) {
	batches := []entity.RowBatch{batch(testHeader,
		row("SAP1", "Hanuram Central", "05-01-2024", "Zomato", "", 2, 10),
		row("SAP1", "Hanuram North", "05-01-2024", "Zomato", "", 5, 10),
	)}

	st := aggregate(batches, qtyIndex(), unboundedWindow(), "Hanuram Central")

	assert.Equal(t, 1, st.matched)
	assert.InDelta(t, 2, st.channelTotal(), 1e-9)
	assert.NotContains(t, st.byRestaurant, "Hanuram North")
}

func TestAggregateMissingRestaurantDefaultsToUnknown(t *testing.T) {
	batches := []entity.RowBatch{batch(testHeader,
		row("SAP1", "", "05-01-2024", "Zomato", "", 1, 10),
	)}

	st := aggregate(batches, qtyIndex(), unboundedWindow(), "")

	assert.InDelta(t, 1, st.byRestaurant["Unknown"], 1e-9)
}

func TestAggregateSkipsBatchWithoutSAPColumn(t *testing.T) {
	noSAP := entity.Header{"restaurant_name", "New Date", "area", "order_type", "item_quantity", "item_price"}
	batches := []entity.RowBatch{
		{SourceType: "pos", Year: 2024, Month: 1, Header: noSAP, Rows: entity.CellGrid{
			{entity.StringCell("R"), entity.StringCell("05-01-2024"), entity.StringCell("Zomato"), entity.StringCell(""), entity.NumberCell(1), entity.NumberCell(10)},
		}, RowCount: 1},
		batch(testHeader, row("SAP1", "R", "05-01-2024", "Zomato", "", 1, 10)),
	}

	st := aggregate(batches, qtyIndex(), unboundedWindow(), "")

	assert.Equal(t, 1, st.skippedBatches)
	assert.Equal(t, 1, st.matched)
}

func TestAggregateHeaderLookupIsCaseInsensitive(t *testing.T) {
	shuffled := entity.Header{" Item_Price ", "SAP_CODE", "new date", "AREA", "Order_Type", "Restaurant_Name", "Item_Quantity"}
	batches := []entity.RowBatch{batch(shuffled, []entity.Cell{
		entity.NumberCell(40),
		entity.StringCell("SAP1"),
		entity.StringCell("05-01-2024"),
		entity.StringCell("Swiggy"),
		entity.StringCell(""),
		entity.StringCell("R"),
		entity.NumberCell(2),
	})}

	st := aggregate(batches, qtyIndex(), unboundedWindow(), "")

	require.Equal(t, 1, st.matched)
	slot := st.byChannelVariation[enum.ChannelSwiggy]["Regular"]
	require.NotNil(t, slot)
	assert.InDelta(t, 2, slot.Quantity, 1e-9)
	assert.InDelta(t, 80, slot.Value, 1e-9)
}

func TestAggregateKgAdjustmentAndRawMoney(t *testing.T) {
	idx := variationIndex{
		"SAPKG": {Name: "250 Gms", SaleType: enum.SaleTypeKG, KgFactor: 0.25},
	}
	batches := []entity.RowBatch{batch(testHeader,
		row("SAPKG", "R", "05-01-2024", "Zomato", "", 4, 120),
	)}

	st := aggregate(batches, idx, unboundedWindow(), "")

	slot := st.byChannelVariation[enum.ChannelZomato]["250 Gms"]
	require.NotNil(t, slot)
	// Quantity is weight-adjusted; money stays on the raw count
	assert.InDelta(t, 1.0, slot.Quantity, 1e-9)
	assert.InDelta(t, 480, slot.Value, 1e-9)
}

func TestAggregateValueIsRoundedPerRow(t *testing.T) {
	batches := []entity.RowBatch{batch(testHeader,
		row("SAP1", "R", "05-01-2024", "Zomato", "", 3, 33.33),
	)}

	st := aggregate(batches, qtyIndex(), unboundedWindow(), "")

	slot := st.byChannelVariation[enum.ChannelZomato]["Regular"]
	require.NotNil(t, slot)
	assert.InDelta(t, 100, slot.Value, 1e-9)
}

func TestAggregateUnparseableDateSkipped(t *testing.T) {
	batches := []entity.RowBatch{batch(testHeader,
		row("SAP1", "R", "32-13-2024", "Zomato", "", 1, 10),
		row("SAP1", "R", "not a date", "Zomato", "", 1, 10),
		row("SAP1", "R", "05-01-2024", "Zomato", "", 1, 10),
	)}

	st := aggregate(batches, qtyIndex(), unboundedWindow(), "")

	assert.Equal(t, 2, st.skippedDate)
	assert.Equal(t, 1, st.matched)
	assert.InDelta(t, 1, st.channelTotal(), 1e-9)
}

func TestAggregateShortRowsAreSafe(t *testing.T) {
	batches := []entity.RowBatch{batch(testHeader,
		[]entity.Cell{entity.StringCell("SAP1"), entity.StringCell("R"), entity.StringCell("05-01-2024")},
	)}

	st := aggregate(batches, qtyIndex(), unboundedWindow(), "")

	require.Equal(t, 1, st.matched)
	slot := st.byChannelVariation[enum.ChannelDining]["Regular"]
	require.NotNil(t, slot)
	assert.InDelta(t, 0, slot.Quantity, 1e-9)
	assert.InDelta(t, 0, slot.Value, 1e-9)
}

func TestBuildVariationIndex(t *testing.T) {
	item := &entity.Item{
		ItemID:   "ITM-1",
		ItemName: "Besan Ladoo",
		Variations: entity.VariationList{
			{Value: "250 Gms", SAPCode: " SAPKG ", SaleType: enum.SaleTypeKG},
			{Value: "Regular", SAPCode: "SAP1", SaleType: enum.SaleTypeQty},
			{Value: "", SAPCode: "SAP3"},
			{Value: "No Code", SAPCode: "  "},
		},
	}

	idx := buildVariationIndex(item)

	require.Len(t, idx, 3)
	assert.InDelta(t, 0.25, idx["SAPKG"].KgFactor, 1e-9)
	assert.InDelta(t, 1.0, idx["SAP1"].KgFactor, 1e-9)
	// Unnamed variations get a positional placeholder name
	assert.Equal(t, "Variation 3", idx["SAP3"].Name)
}

func TestBuildVariationIndexNilItem(t *testing.T) {
	assert.Empty(t, buildVariationIndex(nil))
}
