package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sv6095/InnerEcho/internal/models"
)

type profileDocument struct {
	ID    primitive.ObjectID `bson:"_id"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
}

func (d profileDocument) model() models.UserProfile {
	return models.UserProfile{
		ID:    d.ID.Hex(),
		Name:  d.Name,
		Email: d.Email,
	}
}

// MongoProfileStore persists user profiles in the "userProfiles" collection.
type MongoProfileStore struct {
	profiles *mongo.Collection
}

func NewMongoProfileStore(db *mongo.Database) *MongoProfileStore {
	return &MongoProfileStore{profiles: db.Collection("userProfiles")}
}

func (s *MongoProfileStore) All(ctx context.Context) ([]models.UserProfile, error) {
	cursor, err := s.profiles.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []profileDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}

	out := make([]models.UserProfile, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.model())
	}
	return out, nil
}

func (s *MongoProfileStore) ByID(ctx context.Context, id string) (models.UserProfile, bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.UserProfile{}, false, nil
	}
	return s.findOne(ctx, bson.M{"_id": oid})
}

// ByEmail returns a profile with the given email. Email uniqueness is not
// enforced; with duplicates, whichever the cursor yields first wins.
func (s *MongoProfileStore) ByEmail(ctx context.Context, email string) (models.UserProfile, bool, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

// Insert persists p under a fresh ObjectID and returns it with the assigned id.
func (s *MongoProfileStore) Insert(ctx context.Context, p models.UserProfile) (models.UserProfile, error) {
	doc := profileDocument{
		ID:    primitive.NewObjectID(),
		Name:  p.Name,
		Email: p.Email,
	}
	if _, err := s.profiles.InsertOne(ctx, doc); err != nil {
		return models.UserProfile{}, fmt.Errorf("insert profile: %w", err)
	}
	return doc.model(), nil
}

// Replace overwrites the profile identified by p.ID, reporting whether a
// record matched. A malformed id matches nothing.
func (s *MongoProfileStore) Replace(ctx context.Context, p models.UserProfile) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return false, nil
	}
	doc := profileDocument{ID: oid, Name: p.Name, Email: p.Email}
	res, err := s.profiles.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return false, fmt.Errorf("replace profile: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// Delete removes the profile with the given id. Deleting an absent profile
// is not an error.
func (s *MongoProfileStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := s.profiles.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

func (s *MongoProfileStore) findOne(ctx context.Context, filter bson.M) (models.UserProfile, bool, error) {
	var doc profileDocument
	err := s.profiles.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.UserProfile{}, false, nil
	}
	if err != nil {
		return models.UserProfile{}, false, fmt.Errorf("find profile: %w", err)
	}
	return doc.model(), true, nil
}
