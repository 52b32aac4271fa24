package main

import (
	"fmt"

	"github.com/gooms-gusto/excel-generation-api/contracts"
	"github.com/xuri/excelize/v2"
)

const tableStyleName = "TableStyleMedium2"

// TableBuilder writes a header row plus data rows at a start cell and
// registers the block as a native worksheet table.
type TableBuilder struct{}

func NewTableBuilder() *TableBuilder {
	return &TableBuilder{}
}

// Build is a no-op when rows is empty. Each row is either an ordered value
// list (positional, excess values ignored) or a keyed object (looked up by
// column name, absent keys become empty strings).
func (b *TableBuilder) Build(file *excelize.File, table *contracts.TableConfig, rows []any, includeHeaders bool) error {
	if len(rows) == 0 {
		return nil
	}

	if err := EnsureSheet(file, table.Sheet); err != nil {
		return err
	}

	startCol, startRow, err := ParseCellReference(table.StartCell)
	if err != nil {
		return err
	}

	dataStartRow := startRow
	if includeHeaders {
		if err := b.writeHeaderRow(file, table, startCol, startRow); err != nil {
			return err
		}
		dataStartRow++
	}

	for i, row := range rows {
		if err := b.writeDataRow(file, table, row, startCol, dataStartRow+i, i); err != nil {
			return fmt.Errorf("table %s row %d: %w", table.TableName, i, err)
		}
	}

	return b.registerTable(file, table, startCol, startRow, dataStartRow+len(rows)-1, includeHeaders)
}

func (b *TableBuilder) writeHeaderRow(file *excelize.File, table *contracts.TableConfig, startCol int, startRow int) error {
	descriptor := b.headerStyle(table.Style)

	for j, column := range table.Columns {
		cell := CellName(startCol+j, startRow)

		if err := file.SetCellValue(table.Sheet, cell, column); err != nil {
			return err
		}
		if err := descriptor.Apply(file, table.Sheet, cell); err != nil {
			return err
		}
	}

	return nil
}

func (b *TableBuilder) writeDataRow(file *excelize.File, table *contracts.TableConfig, row any, startCol int, rowNumber int, rowIndex int) error {
	descriptor := b.rowStyle(table.Style, rowIndex)

	for j, column := range table.Columns {
		cell := CellName(startCol+j, rowNumber)

		if err := file.SetCellValue(table.Sheet, cell, b.columnValue(row, column, j)); err != nil {
			return err
		}
		if err := descriptor.Apply(file, table.Sheet, cell); err != nil {
			return err
		}
	}

	return nil
}

func (b *TableBuilder) columnValue(row any, column string, position int) any {
	switch typed := row.(type) {
	case []any:
		if position < len(typed) {
			return typed[position]
		}
		return ""
	case map[string]any:
		if value, ok := typed[column]; ok && value != nil {
			return value
		}
		return ""
	default:
		return ""
	}
}

// header cells are bold by default; explicit header colors override
func (b *TableBuilder) headerStyle(style *contracts.TableStyle) StyleDescriptor {
	bold := true
	descriptor := StyleDescriptor{Bold: &bold}

	if style == nil {
		return descriptor
	}

	if style.HeaderBgColor != "" {
		color := argb(style.HeaderBgColor)
		descriptor.BgColor = &color
	}
	if style.HeaderFontColor != "" {
		color := argb(style.HeaderFontColor)
		descriptor.FontColor = &color
	}

	return descriptor
}

// even row indexes take rowBgColor, odd ones alternateRowBgColor with
// rowBgColor as the fallback
func (b *TableBuilder) rowStyle(style *contracts.TableStyle, rowIndex int) StyleDescriptor {
	if style == nil || (style.RowBgColor == "" && style.AlternateRowBgColor == "") {
		return StyleDescriptor{}
	}

	color := style.RowBgColor
	if rowIndex%2 == 1 && style.AlternateRowBgColor != "" {
		color = style.AlternateRowBgColor
	}

	if color == "" {
		return StyleDescriptor{}
	}

	fill := argb(color)
	return StyleDescriptor{BgColor: &fill}
}

func (b *TableBuilder) registerTable(file *excelize.File, table *contracts.TableConfig, startCol int, startRow int, endRow int, includeHeaders bool) error {
	endCell := CellName(startCol+len(table.Columns)-1, endRow)
	showHeaderRow := includeHeaders
	showRowStripes := true

	return file.AddTable(table.Sheet, &excelize.Table{
		Range:          table.StartCell + ":" + endCell,
		Name:           table.TableName,
		StyleName:      tableStyleName,
		ShowHeaderRow:  &showHeaderRow,
		ShowRowStripes: &showRowStripes,
	})
}
