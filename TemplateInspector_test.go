package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestTemplateInspector_Validate(t *testing.T) {
	inspector := NewTemplateInspector()

	t.Run("valid workbook", func(t *testing.T) {
		buffer := _templateBuffer(t, func(file *excelize.File) {
			_, err := file.NewSheet("Data")
			assert.NoError(t, err)
		})

		validation := inspector.Validate(buffer)

		assert.True(t, validation.IsValid)
		assert.Equal(t, []string{"Sheet1", "Data"}, validation.Sheets)
		assert.Empty(t, validation.Error)
	})

	t.Run("corrupt buffer never raises", func(t *testing.T) {
		validation := inspector.Validate([]byte("definitely not a workbook"))

		assert.False(t, validation.IsValid)
		assert.NotEmpty(t, validation.Error)
		assert.Empty(t, validation.Sheets)
	})

	t.Run("empty buffer", func(t *testing.T) {
		validation := inspector.Validate(nil)

		assert.False(t, validation.IsValid)
		assert.NotEmpty(t, validation.Error)
	})
}

func TestTemplateInspector_Info(t *testing.T) {
	inspector := NewTemplateInspector()

	t.Run("per sheet stats", func(t *testing.T) {
		buffer := _templateBuffer(t, func(file *excelize.File) {
			assert.NoError(t, file.SetCellValue("Sheet1", "A1", "header"))
			assert.NoError(t, file.SetCellValue("Sheet1", "C2", 42))

			_, err := file.NewSheet("Empty")
			assert.NoError(t, err)
		})

		infos, err := inspector.Info(buffer)

		assert.NoError(t, err)
		assert.Len(t, infos, 2)

		assert.Equal(t, "Sheet1", infos[0].Name)
		assert.Equal(t, 2, infos[0].RowCount)
		assert.Equal(t, 3, infos[0].ColumnCount)
		assert.True(t, infos[0].HasData)

		assert.Equal(t, "Empty", infos[1].Name)
		assert.Equal(t, 0, infos[1].RowCount)
		assert.Equal(t, 0, infos[1].ColumnCount)
		assert.False(t, infos[1].HasData)
	})

	t.Run("corrupt buffer returns the parser error", func(t *testing.T) {
		_, err := inspector.Info([]byte("broken"))

		assert.Error(t, err)
	})
}
