package contracts

import "errors"

var FileTooLargeError = errors.New("uploaded file exceeds the size limit")

var WrongFileTypeError = errors.New("uploaded file must be an .xlsx workbook")
