package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// question types
const (
	QUESTION_TYPE_SHORT_TEXT    = "shortText"
	QUESTION_TYPE_LONG_TEXT     = "longText"
	QUESTION_TYPE_SINGLE_SELECT = "singleSelect"
	QUESTION_TYPE_MULTI_SELECT  = "multiSelect"
	QUESTION_TYPE_ATTACHMENT    = "attachment"
)

// condition operators
const (
	CONDITION_OPERATOR_EQUALS     = "equals"
	CONDITION_OPERATOR_NOT_EQUALS = "notEquals"
	CONDITION_OPERATOR_CONTAINS   = "contains"
)

// condition logic
const (
	CONDITION_LOGIC_AND = "AND"
	CONDITION_LOGIC_OR  = "OR"
)

type Condition struct {
	QuestionKey string      `bson:"questionKey" json:"questionKey"`
	Operator    string      `bson:"operator" json:"operator"`
	Value       interface{} `bson:"value" json:"value"`
}

// ConditionalRules controls the visibility of a question based on answers
// given to questions earlier in the sequence. A nil value means the question
// is always shown.
type ConditionalRules struct {
	Logic      string      `bson:"logic" json:"logic"`
	Conditions []Condition `bson:"conditions" json:"conditions"`
}

type Question struct {
	QuestionKey      string            `bson:"questionKey" json:"questionKey"`
	FieldID          string            `bson:"fieldId" json:"fieldId"`
	Label            string            `bson:"label" json:"label"`
	Type             string            `bson:"type" json:"type"`
	Required         bool              `bson:"required" json:"required"`
	Options          []string          `bson:"options,omitempty" json:"options,omitempty"`
	ConditionalRules *ConditionalRules `bson:"conditionalRules,omitempty" json:"conditionalRules,omitempty"`
}

type FormDefinition struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Owner           primitive.ObjectID `bson:"owner" json:"owner"`
	AirtableBaseID  string             `bson:"airtableBaseId" json:"airtableBaseId"`
	AirtableTableID string             `bson:"airtableTableId" json:"airtableTableId"`
	Questions       []Question         `bson:"questions" json:"questions"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
