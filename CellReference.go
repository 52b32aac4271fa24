package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gooms-gusto/excel-generation-api/contracts"
)

// https://regex101.com/r/CbLV8H/1
var cellReferencePattern = regexp.MustCompile(`^([A-Z]+)([0-9]+)$`)

// ParseCellReference splits a reference like "B12" into a 1-based
// (column, row) pair. Anything outside ^[A-Z]+[0-9]+$ is rejected,
// including forms the spreadsheet library itself would tolerate ($B$12,
// lowercase letters, sheet-qualified names).
func ParseCellReference(reference string) (col int, row int, err error) {
	match := cellReferencePattern.FindStringSubmatch(reference)
	if match == nil {
		err = fmt.Errorf("`%s`: %w", reference, contracts.InvalidCellReferenceError)
		return
	}

	col = ColumnNameToNumber(match[1])
	row, err = strconv.Atoi(match[2])

	if err == nil && row < 1 {
		err = fmt.Errorf("`%s`: %w", reference, contracts.InvalidCellReferenceError)
	}

	return
}

// ColumnNameToNumber converts column letters to a 1-based index using
// base-26 with 1-origin digits (A=1, Z=26, AA=27).
func ColumnNameToNumber(name string) int {
	number := 0
	for _, letter := range name {
		number = number*26 + int(letter-'A') + 1
	}
	return number
}

func ColumnNumberToName(number int) string {
	var builder strings.Builder
	for number > 0 {
		number--
		builder.WriteByte(byte('A' + number%26))
		number /= 26
	}

	name := []byte(builder.String())
	for left, right := 0, len(name)-1; left < right; left, right = left+1, right-1 {
		name[left], name[right] = name[right], name[left]
	}

	return string(name)
}

// CellName renders a (column, row) pair back into an A1-style reference.
func CellName(col int, row int) string {
	return ColumnNumberToName(col) + strconv.Itoa(row)
}
