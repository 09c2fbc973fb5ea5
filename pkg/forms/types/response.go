package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RESPONSE_STATUS_SUBMITTED = "submitted"
)

// FormResponse mirrors one submitted Airtable record locally. Answers keep
// the submission's raw shape; webhook reconciliation overwrites single
// answers and flips DeletedInAirtable (never removes the document).
type FormResponse struct {
	ID                primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	FormID            primitive.ObjectID     `bson:"formId" json:"formId"`
	AirtableRecordID  string                 `bson:"airtableRecordId" json:"airtableRecordId"`
	Answers           map[string]interface{} `bson:"answers" json:"answers"`
	Status            string                 `bson:"status" json:"status"`
	DeletedInAirtable bool                   `bson:"deletedInAirtable" json:"deletedInAirtable"`
	CreatedAt         time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time              `bson:"updatedAt" json:"updatedAt"`
}
