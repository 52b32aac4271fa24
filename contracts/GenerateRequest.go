package contracts

const ModeDownload = "download"
const ModeEmail = "email"

const DefaultFileName = "generated.xlsx"

// TableDataField is the fixed top-level field every table draws its rows
// from, no matter how many table configs a request carries.
const TableDataField = "tableData"

type CellStyle struct {
	BgColor   string  `json:"bgColor,omitempty"`
	FontColor string  `json:"fontColor,omitempty"`
	FontSize  float64 `json:"fontSize,omitempty"`
	Bold      bool    `json:"bold,omitempty"`
	Italic    bool    `json:"italic,omitempty"`
	Underline bool    `json:"underline,omitempty"`
}

type CellMapping struct {
	Sheet      string     `json:"sheet"`
	Cell       string     `json:"cell"`
	FieldName  string     `json:"fieldName"`
	Expression string     `json:"expression,omitempty"`
	Style      *CellStyle `json:"style,omitempty"`
	Formula    string     `json:"formula,omitempty"`
	Format     string     `json:"format,omitempty"`
}

type TableStyle struct {
	HeaderBgColor       string `json:"headerBgColor,omitempty"`
	HeaderFontColor     string `json:"headerFontColor,omitempty"`
	RowBgColor          string `json:"rowBgColor,omitempty"`
	AlternateRowBgColor string `json:"alternateRowBgColor,omitempty"`
}

type TableConfig struct {
	Sheet     string      `json:"sheet"`
	TableName string      `json:"tableName"`
	StartCell string      `json:"startCell"`
	Columns   []string    `json:"columns"`
	Style     *TableStyle `json:"style,omitempty"`
}

type ExcelOptions struct {
	IncludeHeaders *bool  `json:"includeHeaders,omitempty"`
	AutoFitColumns *bool  `json:"autoFitColumns,omitempty"`
	FreezeFirstRow bool   `json:"freezeFirstRow,omitempty"`
	ProtectSheet   bool   `json:"protectSheet,omitempty"`
	Password       string `json:"password,omitempty"`
}

func (o *ExcelOptions) IncludeHeadersOn() bool {
	return o == nil || o.IncludeHeaders == nil || *o.IncludeHeaders
}

func (o *ExcelOptions) AutoFitColumnsOn() bool {
	return o == nil || o.AutoFitColumns == nil || *o.AutoFitColumns
}

func (o *ExcelOptions) FreezeFirstRowOn() bool {
	return o != nil && o.FreezeFirstRow
}

func (o *ExcelOptions) ProtectSheetOn() bool {
	return o != nil && o.ProtectSheet
}

func (o *ExcelOptions) SheetPassword() string {
	if o == nil {
		return ""
	}
	return o.Password
}

type GenerateRequest struct {
	JsonData      map[string]any `json:"jsonData"`
	MappingConfig []CellMapping  `json:"mappingConfig"`
	Tables        []TableConfig  `json:"tables,omitempty"`
	Mode          string         `json:"mode,omitempty"`
	EmailAddress  string         `json:"emailAddress,omitempty"`
	FileName      string         `json:"fileName,omitempty"`
	TemplateName  string         `json:"templateName,omitempty"`
	Options       *ExcelOptions  `json:"options,omitempty"`
}

func (r *GenerateRequest) OutputFileName() string {
	if r.FileName == "" {
		return DefaultFileName
	}
	return r.FileName
}

// FieldError is one structural validation failure, addressed by a
// dotted/indexed field path (e.g. mappingConfig[2].cell).
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
