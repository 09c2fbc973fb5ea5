package forms

import (
	formTypes "github.com/Nithin0620/DynoForm/pkg/forms/types"
)

// Airtable field types that can back a question
const (
	AIRTABLE_FIELD_TYPE_SINGLE_LINE_TEXT     = "singleLineText"
	AIRTABLE_FIELD_TYPE_MULTILINE_TEXT       = "multilineText"
	AIRTABLE_FIELD_TYPE_SINGLE_SELECT        = "singleSelect"
	AIRTABLE_FIELD_TYPE_MULTIPLE_SELECTS     = "multipleSelects"
	AIRTABLE_FIELD_TYPE_MULTIPLE_ATTACHMENTS = "multipleAttachments"
)

var airtableFieldTypeToQuestionType = map[string]string{
	AIRTABLE_FIELD_TYPE_SINGLE_LINE_TEXT:     formTypes.QUESTION_TYPE_SHORT_TEXT,
	AIRTABLE_FIELD_TYPE_MULTILINE_TEXT:       formTypes.QUESTION_TYPE_LONG_TEXT,
	AIRTABLE_FIELD_TYPE_SINGLE_SELECT:        formTypes.QUESTION_TYPE_SINGLE_SELECT,
	AIRTABLE_FIELD_TYPE_MULTIPLE_SELECTS:     formTypes.QUESTION_TYPE_MULTI_SELECT,
	AIRTABLE_FIELD_TYPE_MULTIPLE_ATTACHMENTS: formTypes.QUESTION_TYPE_ATTACHMENT,
}

// IsSupportedFieldType reports whether an Airtable field type can be mapped
// onto one of the question types.
func IsSupportedFieldType(airtableType string) bool {
	_, ok := airtableFieldTypeToQuestionType[airtableType]
	return ok
}

// MapAirtableFieldType translates an Airtable field type into the question
// type it backs. The second return value is false for unsupported types.
func MapAirtableFieldType(airtableType string) (string, bool) {
	questionType, ok := airtableFieldTypeToQuestionType[airtableType]
	return questionType, ok
}
