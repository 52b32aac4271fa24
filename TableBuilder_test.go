package main

import (
	"testing"

	"github.com/gooms-gusto/excel-generation-api/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestTableBuilder_Build(t *testing.T) {
	builder := NewTableBuilder()

	t.Run("header and positional rows", func(t *testing.T) {
		file := excelize.NewFile()
		defer file.Close()

		table := &contracts.TableConfig{
			Sheet:     "Sheet1",
			TableName: "Totals",
			StartCell: "A1",
			Columns:   []string{"P", "Q"},
		}
		rows := []any{
			[]any{float64(1), float64(2)},
			[]any{float64(3), float64(4)},
		}

		assert.NoError(t, builder.Build(file, table, rows, true))

		for cell, expected := range map[string]string{
			"A1": "P", "B1": "Q",
			"A2": "1", "B2": "2",
			"A3": "3", "B3": "4",
		} {
			value, _ := file.GetCellValue("Sheet1", cell)
			assert.Equal(t, expected, value, cell)
		}

		tables, err := file.GetTables("Sheet1")
		assert.NoError(t, err)
		assert.Len(t, tables, 1)
		assert.Equal(t, "Totals", tables[0].Name)
		assert.Equal(t, "A1:B3", tables[0].Range)
	})

	t.Run("object rows look up column names", func(t *testing.T) {
		file := excelize.NewFile()
		defer file.Close()

		table := &contracts.TableConfig{
			Sheet:     "Sheet1",
			TableName: "People",
			StartCell: "B2",
			Columns:   []string{"Name", "City"},
		}
		rows := []any{
			map[string]any{"Name": "John", "City": "Springfield"},
			map[string]any{"Name": "Jane"},
		}

		assert.NoError(t, builder.Build(file, table, rows, true))

		value, _ := file.GetCellValue("Sheet1", "B3")
		assert.Equal(t, "John", value)

		value, _ = file.GetCellValue("Sheet1", "C3")
		assert.Equal(t, "Springfield", value)

		value, _ = file.GetCellValue("Sheet1", "B4")
		assert.Equal(t, "Jane", value)

		// absent key becomes an empty string
		value, _ = file.GetCellValue("Sheet1", "C4")
		assert.Equal(t, "", value)
	})

	t.Run("excess positional values are ignored", func(t *testing.T) {
		file := excelize.NewFile()
		defer file.Close()

		table := &contracts.TableConfig{
			Sheet:     "Sheet1",
			TableName: "Narrow",
			StartCell: "A1",
			Columns:   []string{"Only"},
		}
		rows := []any{[]any{"kept", "dropped"}}

		assert.NoError(t, builder.Build(file, table, rows, true))

		value, _ := file.GetCellValue("Sheet1", "A2")
		assert.Equal(t, "kept", value)

		value, _ = file.GetCellValue("Sheet1", "B2")
		assert.Equal(t, "", value)
	})

	t.Run("alternating row colors", func(t *testing.T) {
		file := excelize.NewFile()
		defer file.Close()

		table := &contracts.TableConfig{
			Sheet:     "Sheet1",
			TableName: "Striped",
			StartCell: "A1",
			Columns:   []string{"V"},
			Style: &contracts.TableStyle{
				RowBgColor:          "DDDDDD",
				AlternateRowBgColor: "FFFFFF",
			},
		}
		rows := []any{[]any{"r0"}, []any{"r1"}, []any{"r2"}}

		assert.NoError(t, builder.Build(file, table, rows, true))

		fillColor := func(cell string) string {
			styleId, err := file.GetCellStyle("Sheet1", cell)
			assert.NoError(t, err)

			style, err := file.GetStyle(styleId)
			assert.NoError(t, err)
			if len(style.Fill.Color) == 0 {
				return ""
			}
			return style.Fill.Color[0]
		}

		assert.Equal(t, "FFDDDDDD", fillColor("A2"))
		assert.Equal(t, "FFFFFFFF", fillColor("A3"))
		assert.Equal(t, "FFDDDDDD", fillColor("A4"))
	})

	t.Run("odd rows fall back to rowBgColor", func(t *testing.T) {
		style := &contracts.TableStyle{RowBgColor: "DDDDDD"}

		descriptor := NewTableBuilder().rowStyle(style, 1)

		assert.Equal(t, "FFDDDDDD", *descriptor.BgColor)
	})

	t.Run("no zebra styling without colors", func(t *testing.T) {
		assert.True(t, NewTableBuilder().rowStyle(nil, 0).IsZero())
		assert.True(t, NewTableBuilder().rowStyle(&contracts.TableStyle{}, 1).IsZero())
	})

	t.Run("header style overrides", func(t *testing.T) {
		file := excelize.NewFile()
		defer file.Close()

		table := &contracts.TableConfig{
			Sheet:     "Sheet1",
			TableName: "Headers",
			StartCell: "A1",
			Columns:   []string{"H"},
			Style: &contracts.TableStyle{
				HeaderBgColor:   "4472C4",
				HeaderFontColor: "FFFFFF",
			},
		}

		assert.NoError(t, builder.Build(file, table, []any{[]any{"v"}}, true))

		styleId, err := file.GetCellStyle("Sheet1", "A1")
		assert.NoError(t, err)

		style, err := file.GetStyle(styleId)
		assert.NoError(t, err)
		assert.True(t, style.Font.Bold)
		assert.Equal(t, "FFFFFFFF", style.Font.Color)
		assert.Equal(t, []string{"FF4472C4"}, style.Fill.Color)
	})

	t.Run("headers can be disabled", func(t *testing.T) {
		file := excelize.NewFile()
		defer file.Close()

		table := &contracts.TableConfig{
			Sheet:     "Sheet1",
			TableName: "NoHeader",
			StartCell: "A1",
			Columns:   []string{"P", "Q"},
		}
		rows := []any{[]any{"x", "y"}}

		assert.NoError(t, builder.Build(file, table, rows, false))

		value, _ := file.GetCellValue("Sheet1", "A1")
		assert.Equal(t, "x", value)

		tables, err := file.GetTables("Sheet1")
		assert.NoError(t, err)
		assert.Equal(t, "A1:B1", tables[0].Range)
	})

	t.Run("empty data set is a no-op", func(t *testing.T) {
		file := excelize.NewFile()
		defer file.Close()

		table := &contracts.TableConfig{
			Sheet:     "Sheet1",
			TableName: "Empty",
			StartCell: "A1",
			Columns:   []string{"P"},
		}

		assert.NoError(t, builder.Build(file, table, nil, true))

		tables, err := file.GetTables("Sheet1")
		assert.NoError(t, err)
		assert.Empty(t, tables)
	})

	t.Run("bad start cell aborts", func(t *testing.T) {
		file := excelize.NewFile()
		defer file.Close()

		table := &contracts.TableConfig{
			Sheet:     "Sheet1",
			TableName: "Bad",
			StartCell: "nope",
			Columns:   []string{"P"},
		}

		err := builder.Build(file, table, []any{[]any{"v"}}, true)

		assert.ErrorIs(t, err, contracts.InvalidCellReferenceError)
	})
}
