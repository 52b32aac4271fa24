package contracts

import "errors"

type WorkbookGenerator interface {
	Generate(request *GenerateRequest, template []byte) ([]byte, error)
}

var GenerationError = errors.New("excel generation failed")

var InvalidCellReferenceError = errors.New("invalid cell reference")
