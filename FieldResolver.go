package main

import "strings"

// FieldValue distinguishes "field present (possibly null)" from "field
// missing" instead of collapsing both into a nil sentinel.
type FieldValue struct {
	Value   any
	Present bool
}

const FieldPathSeparator = "."

var AbsentField = FieldValue{}

// ResolveField walks a dotted path through nested objects of a decoded
// JSON document. Any missing or non-object segment yields AbsentField.
func ResolveField(document map[string]any, fieldPath string) FieldValue {
	if document == nil || fieldPath == "" {
		return AbsentField
	}

	segments := strings.Split(fieldPath, FieldPathSeparator)

	var current any = document
	for _, segment := range segments {
		object, ok := current.(map[string]any)
		if !ok {
			return AbsentField
		}

		current, ok = object[segment]
		if !ok {
			return AbsentField
		}
	}

	return FieldValue{Value: current, Present: true}
}

// CellValue is the value written into a worksheet cell: the resolved
// value as-is, with absent and null both rendered as an empty string.
func (v FieldValue) CellValue() any {
	if !v.Present || v.Value == nil {
		return ""
	}
	return v.Value
}

// CachedResult is the display result stored next to a live formula:
// the resolved value, or 0 when the field is absent or null.
func (v FieldValue) CachedResult() any {
	if !v.Present || v.Value == nil {
		return 0
	}
	return v.Value
}
