package main

import (
	"strings"

	"github.com/gooms-gusto/excel-generation-api/contracts"
	"github.com/xuri/excelize/v2"
)

// Recognized number format keywords; any other non-empty format string is
// used verbatim as a custom format code.
var numberFormatCodes = map[string]string{
	"currency":   "$#,##0.00",
	"percentage": "0.00%",
	"date":       "mm/dd/yyyy",
	"datetime":   "mm/dd/yyyy hh:mm:ss",
	"number":     "#,##0.00",
	"integer":    "#,##0",
}

func NumberFormatCode(format string) string {
	if code, ok := numberFormatCodes[strings.ToLower(format)]; ok {
		return code
	}
	return format
}

// StyleDescriptor is an immutable set of optional style attributes. Nil
// fields mean "leave the cell as it is"; descriptors are combined first and
// applied to the target cell exactly once.
type StyleDescriptor struct {
	BgColor   *string
	FontColor *string
	FontSize  *float64
	Bold      *bool
	Italic    *bool
	Underline *bool
	NumFmt    *string
}

const solidFillPattern = 1

// fill and font colors use ARGB with a fixed opaque alpha
func argb(hexColor string) string {
	return "FF" + strings.ToUpper(hexColor)
}

func StyleFromCellStyle(style *contracts.CellStyle) StyleDescriptor {
	descriptor := StyleDescriptor{}
	if style == nil {
		return descriptor
	}

	if style.BgColor != "" {
		color := argb(style.BgColor)
		descriptor.BgColor = &color
	}
	if style.FontColor != "" {
		color := argb(style.FontColor)
		descriptor.FontColor = &color
	}
	if style.FontSize != 0 {
		size := style.FontSize
		descriptor.FontSize = &size
	}
	if style.Bold {
		bold := true
		descriptor.Bold = &bold
	}
	if style.Italic {
		italic := true
		descriptor.Italic = &italic
	}
	if style.Underline {
		underline := true
		descriptor.Underline = &underline
	}

	return descriptor
}

func StyleFromFormat(format string) StyleDescriptor {
	if format == "" {
		return StyleDescriptor{}
	}

	code := NumberFormatCode(format)
	return StyleDescriptor{NumFmt: &code}
}

// Combine overlays other on top of the receiver: non-nil fields of other
// win, everything else is kept.
func (d StyleDescriptor) Combine(other StyleDescriptor) StyleDescriptor {
	combined := d

	if other.BgColor != nil {
		combined.BgColor = other.BgColor
	}
	if other.FontColor != nil {
		combined.FontColor = other.FontColor
	}
	if other.FontSize != nil {
		combined.FontSize = other.FontSize
	}
	if other.Bold != nil {
		combined.Bold = other.Bold
	}
	if other.Italic != nil {
		combined.Italic = other.Italic
	}
	if other.Underline != nil {
		combined.Underline = other.Underline
	}
	if other.NumFmt != nil {
		combined.NumFmt = other.NumFmt
	}

	return combined
}

func (d StyleDescriptor) IsZero() bool {
	return d == StyleDescriptor{}
}

// Apply merges the descriptor onto the cell's current style and assigns the
// result in a single SetCellStyle call. Font attributes are merged onto the
// existing font rather than replacing it wholesale.
func (d StyleDescriptor) Apply(file *excelize.File, sheet string, cell string) error {
	if d.IsZero() {
		return nil
	}

	style, err := d.mergedStyle(file, sheet, cell)
	if err != nil {
		return err
	}

	styleId, err := file.NewStyle(style)
	if err != nil {
		return err
	}

	return file.SetCellStyle(sheet, cell, cell, styleId)
}

func (d StyleDescriptor) mergedStyle(file *excelize.File, sheet string, cell string) (*excelize.Style, error) {
	style := &excelize.Style{}

	currentStyleId, err := file.GetCellStyle(sheet, cell)
	if err != nil {
		return nil, err
	}

	if currentStyleId != 0 {
		current, err := file.GetStyle(currentStyleId)
		if err != nil {
			return nil, err
		}
		if current != nil {
			*style = *current
		}
	}

	if d.BgColor != nil {
		style.Fill = excelize.Fill{
			Type:    "pattern",
			Color:   []string{*d.BgColor},
			Pattern: solidFillPattern,
		}
	}

	if d.FontColor != nil || d.FontSize != nil || d.Bold != nil || d.Italic != nil || d.Underline != nil {
		font := &excelize.Font{}
		if style.Font != nil {
			*font = *style.Font
		}

		if d.FontColor != nil {
			font.Color = *d.FontColor
		}
		if d.FontSize != nil {
			font.Size = *d.FontSize
		}
		if d.Bold != nil {
			font.Bold = *d.Bold
		}
		if d.Italic != nil {
			font.Italic = *d.Italic
		}
		if d.Underline != nil && *d.Underline {
			font.Underline = "single"
		}

		style.Font = font
	}

	if d.NumFmt != nil {
		style.CustomNumFmt = d.NumFmt
	}

	return style, nil
}
