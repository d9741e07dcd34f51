package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellText(t *testing.T) {
	assert.Equal(t, "SAP1", StringCell("  SAP1  ").Text())
	assert.Equal(t, "2.5", NumberCell(2.5).Text())
	assert.Equal(t, "45292", NumberCell(45292).Text())
	assert.Equal(t, "", AbsentCell().Text())
}

func TestCellFloat(t *testing.T) {
	assert.InDelta(t, 2.5, NumberCell(2.5).Float(), 1e-9)
	assert.InDelta(t, 12, StringCell(" 12 ").Float(), 1e-9)
	assert.InDelta(t, 0, StringCell("twelve").Float(), 1e-9)
	assert.InDelta(t, 0, AbsentCell().Float(), 1e-9)
}

func TestCellUnmarshalMixedRow(t *testing.T) {
	var row []Cell
	require.NoError(t, json.Unmarshal([]byte(`["SAP1", 2, null, true, {"x":1}]`), &row))
	require.Len(t, row, 5)

	assert.Equal(t, "SAP1", row[0].Text())
	assert.InDelta(t, 2, row[1].Float(), 1e-9)
	assert.True(t, row[2].IsAbsent())
	assert.Equal(t, "true", row[3].Text())
	// Structured values carry no usable cell data
	assert.True(t, row[4].IsAbsent())
}

func TestCellMarshalPreservesKind(t *testing.T) {
	row := []Cell{StringCell("12"), NumberCell(12), AbsentCell()}
	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `["12", 12, null]`, string(data))
}
