package forms

import (
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	formTypes "github.com/Nithin0620/DynoForm/pkg/forms/types"
)

// WebhookEvent is the Airtable change notification shape this service
// consumes.
type WebhookEvent struct {
	BaseID         string          `json:"baseId"`
	WebhookID      string          `json:"webhookId"`
	Timestamp      string          `json:"timestamp"`
	ActionMetadata *ActionMetadata `json:"actionMetadata"`
}

type ActionMetadata struct {
	ChangedTablesByID map[string]TableChanges `json:"changedTablesById"`
}

type TableChanges struct {
	CreatedRecordsByID map[string]interface{}  `json:"createdRecordsById,omitempty"`
	ChangedRecordsByID map[string]RecordChange `json:"changedRecordsById,omitempty"`
	DestroyedRecordIDs []string                `json:"destroyedRecordIds,omitempty"`
}

type RecordChange struct {
	Current *RecordCellValues `json:"current,omitempty"`
}

type RecordCellValues struct {
	CellValuesByFieldID map[string]interface{} `json:"cellValuesByFieldId"`
}

// BuildFieldIndex maps Airtable field ids to question keys for one form.
func BuildFieldIndex(questions []formTypes.Question) map[string]string {
	index := make(map[string]string, len(questions))
	for _, question := range questions {
		index[question.FieldID] = question.QuestionKey
	}
	return index
}

// ApplyCellChanges overwrites answers for every changed field id that the
// form maps to a question. The input map is not mutated; the second return
// value reports whether anything changed.
func ApplyCellChanges(answers map[string]interface{}, fieldIndex map[string]string, cellValuesByFieldID map[string]interface{}) (map[string]interface{}, bool) {
	updated := make(map[string]interface{}, len(answers))
	for key, value := range answers {
		updated[key] = value
	}

	changed := false
	for fieldID, newValue := range cellValuesByFieldID {
		questionKey, ok := fieldIndex[fieldID]
		if !ok {
			continue
		}
		updated[questionKey] = newValue
		changed = true
	}
	return updated, changed
}

// ProcessWebhookEvent replays one Airtable change notification against the
// locally mirrored form responses: answer overwrites for updated records,
// soft deletes for destroyed ones. Created records are only observed.
// Records without a matching response are skipped; store failures abort and
// are reported to the caller (which still answers the delivery with 200).
func ProcessWebhookEvent(event WebhookEvent) error {
	if event.ActionMetadata == nil || len(event.ActionMetadata.ChangedTablesByID) == 0 {
		slog.Debug("no table changes in webhook event", slog.String("baseId", event.BaseID))
		return nil
	}

	for tableID, changes := range event.ActionMetadata.ChangedTablesByID {
		if len(changes.CreatedRecordsByID) > 0 {
			slog.Info("webhook reported created records", slog.String("tableId", tableID), slog.Int("count", len(changes.CreatedRecordsByID)))
		}

		for recordID, recordChange := range changes.ChangedRecordsByID {
			if err := applyRecordUpdate(recordID, recordChange); err != nil {
				return err
			}
		}

		for _, recordID := range changes.DestroyedRecordIDs {
			if err := applyRecordDeletion(recordID); err != nil {
				return err
			}
		}
	}
	return nil
}

func applyRecordUpdate(recordID string, recordChange RecordChange) error {
	if recordChange.Current == nil || len(recordChange.Current.CellValuesByFieldID) == 0 {
		return nil
	}

	response, err := formsDBService.GetFormResponseByAirtableRecordID(recordID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			slog.Debug("no response for updated record", slog.String("recordId", recordID))
			return nil
		}
		return err
	}

	form, err := formsDBService.GetFormDefinitionByID(response.FormID.Hex())
	if err != nil {
		return err
	}

	fieldIndex := BuildFieldIndex(form.Questions)
	updatedAnswers, changed := ApplyCellChanges(response.Answers, fieldIndex, recordChange.Current.CellValuesByFieldID)
	if !changed {
		return nil
	}

	if err := formsDBService.UpdateFormResponseAnswers(response.ID.Hex(), updatedAnswers); err != nil {
		return err
	}
	slog.Info("updated response from webhook", slog.String("responseId", response.ID.Hex()), slog.String("recordId", recordID))
	return nil
}

func applyRecordDeletion(recordID string) error {
	response, err := formsDBService.GetFormResponseByAirtableRecordID(recordID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			slog.Debug("no response for destroyed record", slog.String("recordId", recordID))
			return nil
		}
		return err
	}

	if err := formsDBService.MarkFormResponseDeletedInAirtable(response.ID.Hex()); err != nil {
		return err
	}
	slog.Info("marked response as deleted in Airtable", slog.String("responseId", response.ID.Hex()), slog.String("recordId", recordID))
	return nil
}
