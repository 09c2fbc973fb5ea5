package forms

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	formTypes "github.com/Nithin0620/DynoForm/pkg/forms/types"
)

func (dbService *FormsDBService) CreateFormResponse(response formTypes.FormResponse) (formTypes.FormResponse, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	response.ID = primitive.NilObjectID
	response.Status = formTypes.RESPONSE_STATUS_SUBMITTED
	response.CreatedAt = time.Now()
	response.UpdatedAt = response.CreatedAt

	res, err := dbService.collectionFormResponses().InsertOne(ctx, response)
	if err != nil {
		return response, err
	}
	response.ID = res.InsertedID.(primitive.ObjectID)
	return response, nil
}

func (dbService *FormsDBService) GetFormResponseByID(responseID string) (response formTypes.FormResponse, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(responseID)
	if err != nil {
		return response, err
	}

	filter := bson.M{
		"_id": _id,
	}

	err = dbService.collectionFormResponses().FindOne(ctx, filter).Decode(&response)
	return response, err
}

func (dbService *FormsDBService) GetFormResponseByAirtableRecordID(recordID string) (response formTypes.FormResponse, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"airtableRecordId": recordID,
	}

	err = dbService.collectionFormResponses().FindOne(ctx, filter).Decode(&response)
	return response, err
}

// get paginated responses for one form
func (dbService *FormsDBService) GetFormResponses(formID string, includeDeleted bool, page int64, limit int64) (responses []formTypes.FormResponse, paginationInfo *PaginationInfos, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_formID, err := primitive.ObjectIDFromHex(formID)
	if err != nil {
		return responses, nil, err
	}

	filter := bson.M{
		"formId": _formID,
	}
	if !includeDeleted {
		filter["deletedInAirtable"] = false
	}

	totalCount, err := dbService.GetFormResponsesCount(formID, includeDeleted)
	if err != nil {
		return responses, nil, err
	}

	paginationInfo = prepPaginationInfos(
		totalCount,
		page,
		limit,
	)

	skip := (paginationInfo.CurrentPage - 1) * paginationInfo.PageSize

	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetSkip(skip).SetLimit(paginationInfo.PageSize)
	cursor, err := dbService.collectionFormResponses().Find(ctx, filter, opts)
	if err != nil {
		return responses, nil, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &responses)
	if err != nil {
		return responses, nil, err
	}

	return responses, paginationInfo, nil
}

func (dbService *FormsDBService) GetFormResponsesCount(formID string, includeDeleted bool) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_formID, err := primitive.ObjectIDFromHex(formID)
	if err != nil {
		return 0, err
	}

	filter := bson.M{
		"formId": _formID,
	}
	if !includeDeleted {
		filter["deletedInAirtable"] = false
	}

	return dbService.collectionFormResponses().CountDocuments(ctx, filter)
}

// UpdateFormResponseAnswers overwrites the stored answer set of one response.
func (dbService *FormsDBService) UpdateFormResponseAnswers(responseID string, answers map[string]interface{}) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(responseID)
	if err != nil {
		return err
	}

	filter := bson.M{
		"_id": _id,
	}
	update := bson.M{
		"$set": bson.M{
			"answers":   answers,
			"updatedAt": time.Now(),
		},
	}

	res, err := dbService.collectionFormResponses().UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// MarkFormResponseDeletedInAirtable flips the soft-delete flag. The response
// document itself is never removed.
func (dbService *FormsDBService) MarkFormResponseDeletedInAirtable(responseID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(responseID)
	if err != nil {
		return err
	}

	filter := bson.M{
		"_id": _id,
	}
	update := bson.M{
		"$set": bson.M{
			"deletedInAirtable": true,
			"updatedAt":         time.Now(),
		},
	}

	res, err := dbService.collectionFormResponses().UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
