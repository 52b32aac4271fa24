package main

import (
	"fmt"
	"regexp"

	"github.com/gooms-gusto/excel-generation-api/contracts"
)

const minFontSize = 8
const maxFontSize = 72

// RequestValidator checks a generation request structurally and returns
// every failure as a field-path/message pair. Conditional requirements
// (emailAddress with mode=email) are explicit cross-field checks.
type RequestValidator struct {
	cellReferenceRegex *regexp.Regexp
	colorRegex         *regexp.Regexp
	emailRegex         *regexp.Regexp
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		cellReferenceRegex: regexp.MustCompile(`^[A-Z]+[0-9]+$`),
		colorRegex:         regexp.MustCompile(`^[0-9A-Fa-f]{6}$`),
		// https://regex101.com/r/O9oCj8/1
		emailRegex: regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`),
	}
}

func (v *RequestValidator) Validate(request *contracts.GenerateRequest) []contracts.FieldError {
	errors := make([]contracts.FieldError, 0)

	if request.JsonData == nil {
		errors = append(errors, contracts.FieldError{Field: "jsonData", Message: "jsonData is required"})
	}

	if len(request.MappingConfig) == 0 {
		errors = append(errors, contracts.FieldError{Field: "mappingConfig", Message: "mappingConfig must contain at least one mapping"})
	}

	for i := range request.MappingConfig {
		errors = append(errors, v.validateMapping(&request.MappingConfig[i], fmt.Sprintf("mappingConfig[%d]", i))...)
	}

	for i := range request.Tables {
		errors = append(errors, v.validateTable(&request.Tables[i], fmt.Sprintf("tables[%d]", i))...)
	}

	errors = append(errors, v.validateDelivery(request)...)

	return errors
}

func (v *RequestValidator) validateMapping(mapping *contracts.CellMapping, path string) []contracts.FieldError {
	errors := make([]contracts.FieldError, 0)

	if mapping.Sheet == "" {
		errors = append(errors, contracts.FieldError{Field: path + ".sheet", Message: "sheet is required"})
	}

	if !v.cellReferenceRegex.MatchString(mapping.Cell) {
		errors = append(errors, contracts.FieldError{Field: path + ".cell", Message: "cell must match ^[A-Z]+[0-9]+$"})
	}

	if mapping.FieldName == "" && mapping.Expression == "" {
		errors = append(errors, contracts.FieldError{Field: path + ".fieldName", Message: "fieldName or expression is required"})
	}

	if mapping.Style != nil {
		errors = append(errors, v.validateStyle(mapping.Style, path+".style")...)
	}

	return errors
}

func (v *RequestValidator) validateStyle(style *contracts.CellStyle, path string) []contracts.FieldError {
	errors := make([]contracts.FieldError, 0)

	errors = append(errors, v.validateColor(style.BgColor, path+".bgColor")...)
	errors = append(errors, v.validateColor(style.FontColor, path+".fontColor")...)

	if style.FontSize != 0 && (style.FontSize < minFontSize || style.FontSize > maxFontSize) {
		errors = append(errors, contracts.FieldError{
			Field:   path + ".fontSize",
			Message: fmt.Sprintf("fontSize must be between %d and %d", minFontSize, maxFontSize),
		})
	}

	return errors
}

func (v *RequestValidator) validateTable(table *contracts.TableConfig, path string) []contracts.FieldError {
	errors := make([]contracts.FieldError, 0)

	if table.Sheet == "" {
		errors = append(errors, contracts.FieldError{Field: path + ".sheet", Message: "sheet is required"})
	}

	if table.TableName == "" {
		errors = append(errors, contracts.FieldError{Field: path + ".tableName", Message: "tableName is required"})
	}

	if !v.cellReferenceRegex.MatchString(table.StartCell) {
		errors = append(errors, contracts.FieldError{Field: path + ".startCell", Message: "startCell must match ^[A-Z]+[0-9]+$"})
	}

	if len(table.Columns) == 0 {
		errors = append(errors, contracts.FieldError{Field: path + ".columns", Message: "columns must contain at least one header"})
	}

	if table.Style != nil {
		errors = append(errors, v.validateColor(table.Style.HeaderBgColor, path+".style.headerBgColor")...)
		errors = append(errors, v.validateColor(table.Style.HeaderFontColor, path+".style.headerFontColor")...)
		errors = append(errors, v.validateColor(table.Style.RowBgColor, path+".style.rowBgColor")...)
		errors = append(errors, v.validateColor(table.Style.AlternateRowBgColor, path+".style.alternateRowBgColor")...)
	}

	return errors
}

func (v *RequestValidator) validateColor(color string, path string) []contracts.FieldError {
	if color == "" || v.colorRegex.MatchString(color) {
		return nil
	}

	return []contracts.FieldError{{Field: path, Message: "color must be 6 hex digits without #"}}
}

func (v *RequestValidator) validateDelivery(request *contracts.GenerateRequest) []contracts.FieldError {
	errors := make([]contracts.FieldError, 0)

	switch request.Mode {
	case "", contracts.ModeDownload:
	case contracts.ModeEmail:
		if request.EmailAddress == "" {
			errors = append(errors, contracts.FieldError{Field: "emailAddress", Message: "emailAddress is required when mode is email"})
		} else if !v.emailRegex.MatchString(request.EmailAddress) {
			errors = append(errors, contracts.FieldError{Field: "emailAddress", Message: "emailAddress is not a valid email address"})
		}
	default:
		errors = append(errors, contracts.FieldError{Field: "mode", Message: "mode must be download or email"})
	}

	return errors
}
