package main

import (
	"bytes"

	"github.com/gooms-gusto/excel-generation-api/contracts"
	"github.com/xuri/excelize/v2"
)

// TemplateInspector loads workbook buffers and reports their structure.
type TemplateInspector struct{}

func NewTemplateInspector() *TemplateInspector {
	return &TemplateInspector{}
}

func (i *TemplateInspector) Validate(buffer []byte) *contracts.TemplateValidation {
	file, err := excelize.OpenReader(bytes.NewReader(buffer))
	if err != nil {
		return &contracts.TemplateValidation{IsValid: false, Error: err.Error()}
	}
	defer file.Close()

	return &contracts.TemplateValidation{
		IsValid: true,
		Sheets:  file.GetSheetList(),
	}
}

func (i *TemplateInspector) Info(buffer []byte) ([]contracts.SheetInfo, error) {
	file, err := excelize.OpenReader(bytes.NewReader(buffer))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sheets := file.GetSheetList()
	infos := make([]contracts.SheetInfo, 0, len(sheets))

	for _, sheet := range sheets {
		rows, err := file.GetRows(sheet)
		if err != nil {
			return nil, err
		}

		infos = append(infos, sheetInfo(sheet, rows))
	}

	return infos, nil
}

func sheetInfo(name string, rows [][]string) contracts.SheetInfo {
	info := contracts.SheetInfo{Name: name, RowCount: len(rows)}

	for _, row := range rows {
		if len(row) > info.ColumnCount {
			info.ColumnCount = len(row)
		}

		if !info.HasData {
			for _, value := range row {
				if value != "" {
					info.HasData = true
					break
				}
			}
		}
	}

	return info
}
