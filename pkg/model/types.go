package model

import internalmodel "github.com/goliatone/go-formtree/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeString  = internalmodel.FieldTypeString
	FieldTypeInteger = internalmodel.FieldTypeInteger
	FieldTypeNumber  = internalmodel.FieldTypeNumber
	FieldTypeBoolean = internalmodel.FieldTypeBoolean
	FieldTypeArray   = internalmodel.FieldTypeArray
	FieldTypeObject  = internalmodel.FieldTypeObject
)

type Field = internalmodel.Field
type FormModel = internalmodel.FormModel

// Labeler derives a field label from its name.
type Labeler = internalmodel.Labeler

// ItemsSuffix marks a collection item step in field paths ("tags[]").
const ItemsSuffix = internalmodel.ItemsSuffix

// CutItems splits a path segment into its field name and collection depth.
func CutItems(segment string) (string, int) {
	return internalmodel.CutItems(segment)
}

// DefaultLabeler humanizes a field name ("ownerEmail" becomes "Owner Email").
func DefaultLabeler(name string) string {
	return internalmodel.DefaultLabeler(name)
}
