package contracts

type TemplateValidation struct {
	IsValid bool     `json:"isValid"`
	Sheets  []string `json:"sheets,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type SheetInfo struct {
	Name        string `json:"name"`
	RowCount    int    `json:"rowCount"`
	ColumnCount int    `json:"columnCount"`
	HasData     bool   `json:"hasData"`
}

type TemplateInspector interface {
	// Validate never fails: a broken buffer yields IsValid=false with the
	// parser message.
	Validate(buffer []byte) *TemplateValidation
	Info(buffer []byte) ([]SheetInfo, error)
}
