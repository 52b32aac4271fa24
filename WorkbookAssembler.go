package main

import (
	"bytes"
	"fmt"

	"github.com/gooms-gusto/excel-generation-api/contracts"
	"github.com/xuri/excelize/v2"
)

const autoFitColumnCount = 10
const autoFitColumnWidth = 18.0

// WorkbookAssembler builds one workbook per request: template (or a fresh
// workbook), mappings, tables, per-sheet options, serialized buffer. Any
// failure along the way surfaces as a single generation error and no buffer
// escapes.
type WorkbookAssembler struct {
	mappingEngine *MappingEngine
	tableBuilder  *TableBuilder
}

func NewWorkbookAssembler(mappingEngine *MappingEngine, tableBuilder *TableBuilder) *WorkbookAssembler {
	return &WorkbookAssembler{
		mappingEngine: mappingEngine,
		tableBuilder:  tableBuilder,
	}
}

func (a *WorkbookAssembler) Generate(request *contracts.GenerateRequest, template []byte) ([]byte, error) {
	file, err := a.openWorkbook(template)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", contracts.GenerationError, err)
	}
	defer file.Close()

	if err = a.assemble(file, request); err != nil {
		return nil, fmt.Errorf("%w: %s", contracts.GenerationError, err)
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", contracts.GenerationError, err)
	}

	return buffer.Bytes(), nil
}

func (a *WorkbookAssembler) openWorkbook(template []byte) (*excelize.File, error) {
	if len(template) == 0 {
		return excelize.NewFile(), nil
	}

	return excelize.OpenReader(bytes.NewReader(template))
}

func (a *WorkbookAssembler) assemble(file *excelize.File, request *contracts.GenerateRequest) error {
	if err := a.mappingEngine.Apply(file, request.JsonData, request.MappingConfig); err != nil {
		return err
	}

	rows := a.tableRows(request.JsonData)
	includeHeaders := request.Options.IncludeHeadersOn()

	for i := range request.Tables {
		if err := a.tableBuilder.Build(file, &request.Tables[i], rows, includeHeaders); err != nil {
			return err
		}
	}

	return a.applySheetOptions(file, request.Options)
}

// every table draws from the same top-level tableData field
func (a *WorkbookAssembler) tableRows(document map[string]any) []any {
	resolved := ResolveField(document, contracts.TableDataField)
	rows, _ := resolved.Value.([]any)
	return rows
}

// sheet options cover every sheet, including template sheets no mapping
// ever touched
func (a *WorkbookAssembler) applySheetOptions(file *excelize.File, options *contracts.ExcelOptions) error {
	for _, sheet := range file.GetSheetList() {
		if options.AutoFitColumnsOn() {
			lastColumn := ColumnNumberToName(autoFitColumnCount)
			if err := file.SetColWidth(sheet, "A", lastColumn, autoFitColumnWidth); err != nil {
				return err
			}
		}

		if options.FreezeFirstRowOn() {
			err := file.SetPanes(sheet, &excelize.Panes{
				Freeze:      true,
				YSplit:      1,
				TopLeftCell: "A2",
				ActivePane:  "bottomLeft",
			})
			if err != nil {
				return err
			}
		}

		if options.ProtectSheetOn() {
			err := file.ProtectSheet(sheet, &excelize.SheetProtectionOptions{
				Password:            options.SheetPassword(),
				SelectLockedCells:   true,
				SelectUnlockedCells: true,
				EditScenarios:       true,
			})
			if err != nil {
				return err
			}
		}
	}

	return nil
}
