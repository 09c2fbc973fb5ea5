package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// user roles (stored for forward compatibility, access is owner-only)
const (
	USER_ROLE_USER  = "user"
	USER_ROLE_ADMIN = "admin"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	AirtableUserID string             `bson:"airtableUserId" json:"airtableUserId"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	AccessToken    string             `bson:"accessToken" json:"-"`
	RefreshToken   string             `bson:"refreshToken,omitempty" json:"-"`
	Role           string             `bson:"role" json:"role"`
	LoginTimestamp time.Time          `bson:"loginTimestamp" json:"loginTimestamp"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (dbService *UserDBService) CreateUser(user User) (User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	user.ID = primitive.NilObjectID
	if user.Role == "" {
		user.Role = USER_ROLE_USER
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	res, err := dbService.collectionUsers().InsertOne(ctx, user)
	if err != nil {
		return user, err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (dbService *UserDBService) GetUserByID(userID string) (user User, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return user, err
	}

	filter := bson.M{
		"_id": _id,
	}

	err = dbService.collectionUsers().FindOne(ctx, filter).Decode(&user)
	return user, err
}

func (dbService *UserDBService) GetUserByAirtableUserID(airtableUserID string) (user User, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"airtableUserId": airtableUserID,
	}

	err = dbService.collectionUsers().FindOne(ctx, filter).Decode(&user)
	return user, err
}

// UpdateUserOnLogin refreshes the stored Airtable tokens and login time of
// an existing user.
func (dbService *UserDBService) UpdateUserOnLogin(userID string, email string, accessToken string, refreshToken string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return err
	}

	filter := bson.M{
		"_id": _id,
	}
	update := bson.M{
		"$set": bson.M{
			"email":          email,
			"accessToken":    accessToken,
			"refreshToken":   refreshToken,
			"loginTimestamp": time.Now(),
			"updatedAt":      time.Now(),
		},
	}

	res, err := dbService.collectionUsers().UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
