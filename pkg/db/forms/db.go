package forms

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Nithin0620/DynoForm/pkg/db"
)

// collection names
const (
	COLLECTION_NAME_FORM_DEFINITIONS = "formDefinitions"
	COLLECTION_NAME_FORM_RESPONSES   = "formResponses"
)

type FormsDBService struct {
	DBClient        *mongo.Client
	timeout         int
	noCursorTimeout bool
	DBNamePrefix    string
}

func NewFormsDBService(configs db.DBConfig) (*FormsDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)

	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()

	if err != nil {
		return nil, err
	}

	formsDBSc := &FormsDBService{
		DBClient:        dbClient,
		timeout:         configs.Timeout,
		noCursorTimeout: configs.NoCursorTimeout,
		DBNamePrefix:    configs.DBNamePrefix,
	}

	if err := formsDBSc.ensureIndexes(); err != nil {
		slog.Error("Error ensuring indexes for forms DB", slog.String("error", err.Error()))
	}

	return formsDBSc, nil
}

func (dbService *FormsDBService) getDBName() string {
	return dbService.DBNamePrefix + "formsDB"
}

func (dbService *FormsDBService) collectionFormDefinitions() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_FORM_DEFINITIONS)
}

func (dbService *FormsDBService) collectionFormResponses() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_FORM_RESPONSES)
}

func (dbService *FormsDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *FormsDBService) ensureIndexes() error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionFormDefinitions().Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys: bson.D{
					{Key: "owner", Value: 1},
				},
			},
			{
				Keys: bson.D{
					{Key: "createdAt", Value: 1},
				},
			},
		},
	)
	if err != nil {
		slog.Error("Error creating index for form definitions", slog.String("error", err.Error()))
	}

	_, err = dbService.collectionFormResponses().Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys: bson.D{
					{Key: "formId", Value: 1},
				},
			},
			{
				Keys: bson.D{
					{Key: "airtableRecordId", Value: 1},
				},
			},
			{
				Keys: bson.D{
					{Key: "formId", Value: 1},
					{Key: "deletedInAirtable", Value: 1},
				},
			},
		},
	)
	if err != nil {
		slog.Error("Error creating index for form responses", slog.String("error", err.Error()))
	}

	return nil
}
