package main

import (
	"fmt"

	"github.com/gooms-gusto/excel-generation-api/contracts"
	"github.com/xuri/excelize/v2"
)

// MappingEngine applies field-to-cell mapping rules to a workbook, in list
// order. Sheets are created lazily; unresolved fields become blank cells; a
// malformed cell reference aborts the run.
type MappingEngine struct {
	executor contracts.ExpressionExecutor
}

func NewMappingEngine(executor contracts.ExpressionExecutor) *MappingEngine {
	return &MappingEngine{executor: executor}
}

func (m *MappingEngine) Apply(file *excelize.File, document map[string]any, mappings []contracts.CellMapping) error {
	for i, mapping := range mappings {
		if err := m.applyMapping(file, document, &mapping); err != nil {
			return fmt.Errorf("mapping %d: %w", i, err)
		}
	}

	return nil
}

func (m *MappingEngine) applyMapping(file *excelize.File, document map[string]any, mapping *contracts.CellMapping) error {
	if err := EnsureSheet(file, mapping.Sheet); err != nil {
		return err
	}

	if _, _, err := ParseCellReference(mapping.Cell); err != nil {
		return err
	}

	value, err := m.resolveValue(document, mapping)
	if err != nil {
		return err
	}

	if mapping.Formula != "" {
		// cached display result first: SetCellValue drops any stored
		// formula, SetCellFormula keeps the stored value
		if err := file.SetCellValue(mapping.Sheet, mapping.Cell, value.CachedResult()); err != nil {
			return err
		}
		if err := file.SetCellFormula(mapping.Sheet, mapping.Cell, mapping.Formula); err != nil {
			return err
		}
	} else if err := file.SetCellValue(mapping.Sheet, mapping.Cell, value.CellValue()); err != nil {
		return err
	}

	descriptor := StyleFromCellStyle(mapping.Style).Combine(StyleFromFormat(mapping.Format))

	return descriptor.Apply(file, mapping.Sheet, mapping.Cell)
}

func (m *MappingEngine) resolveValue(document map[string]any, mapping *contracts.CellMapping) (FieldValue, error) {
	if mapping.Expression == "" {
		return ResolveField(document, mapping.FieldName), nil
	}

	output, err := m.executor.Evaluate(mapping.Expression, document)
	if err != nil {
		return AbsentField, err
	}

	return FieldValue{Value: output, Present: true}, nil
}

// EnsureSheet creates the named sheet when it does not exist yet.
func EnsureSheet(file *excelize.File, sheet string) error {
	index, err := file.GetSheetIndex(sheet)
	if err != nil {
		return err
	}

	if index < 0 {
		_, err = file.NewSheet(sheet)
	}

	return err
}
