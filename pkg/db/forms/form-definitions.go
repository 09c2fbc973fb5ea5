package forms

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	formTypes "github.com/Nithin0620/DynoForm/pkg/forms/types"
)

// CreateFormDefinition persists a new form definition. Question keys must be
// unique within the form; this is checked here as well so the constraint
// holds even for callers that bypass the creation validator.
func (dbService *FormsDBService) CreateFormDefinition(form formTypes.FormDefinition) (formTypes.FormDefinition, error) {
	seenKeys := map[string]bool{}
	for _, question := range form.Questions {
		if seenKeys[question.QuestionKey] {
			return form, fmt.Errorf("question key %q is used more than once", question.QuestionKey)
		}
		seenKeys[question.QuestionKey] = true
	}

	ctx, cancel := dbService.getContext()
	defer cancel()

	form.ID = primitive.NilObjectID
	form.CreatedAt = time.Now()
	form.UpdatedAt = form.CreatedAt

	res, err := dbService.collectionFormDefinitions().InsertOne(ctx, form)
	if err != nil {
		return form, err
	}
	form.ID = res.InsertedID.(primitive.ObjectID)
	return form, nil
}

func (dbService *FormsDBService) GetFormDefinitionByID(formID string) (form formTypes.FormDefinition, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(formID)
	if err != nil {
		return form, err
	}

	filter := bson.M{
		"_id": _id,
	}

	err = dbService.collectionFormDefinitions().FindOne(ctx, filter).Decode(&form)
	return form, err
}

// GetFormDefinitionsByOwner returns all forms of one owner, newest first.
func (dbService *FormsDBService) GetFormDefinitionsByOwner(ownerID string) (forms []formTypes.FormDefinition, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_ownerID, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return forms, err
	}

	filter := bson.M{
		"owner": _ownerID,
	}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := dbService.collectionFormDefinitions().Find(ctx, filter, opts)
	if err != nil {
		return forms, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &forms)
	return forms, err
}
