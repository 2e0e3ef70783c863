package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sv6095/InnerEcho/internal/models"
)

// journalDocument is the MongoDB shape of a journal entry. Conversion to and
// from models.JournalEntry (including ObjectID <-> hex id) happens only here.
type journalDocument struct {
	ID     primitive.ObjectID   `bson:"_id"`
	Title  string               `bson:"title"`
	Body   string               `bson:"body"`
	Date   models.LocalDateTime `bson:"date"`
	Tags   []string             `bson:"tags"`
	UserID string               `bson:"userId"`
}

func newJournalDocument(e models.JournalEntry) journalDocument {
	return journalDocument{
		Title:  e.Title,
		Body:   e.Body,
		Date:   e.Date,
		Tags:   e.Tags,
		UserID: e.UserID,
	}
}

func (d journalDocument) model() models.JournalEntry {
	return models.JournalEntry{
		ID:     d.ID.Hex(),
		Title:  d.Title,
		Body:   d.Body,
		Date:   d.Date,
		Tags:   d.Tags,
		UserID: d.UserID,
	}
}

// MongoEntryStore persists journal entries in the "journalEntries" collection.
type MongoEntryStore struct {
	entries *mongo.Collection
}

func NewMongoEntryStore(db *mongo.Database) *MongoEntryStore {
	return &MongoEntryStore{entries: db.Collection("journalEntries")}
}

// EnsureIndexes creates the lookup indexes used by the owner and tag filters.
func (s *MongoEntryStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.entries.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
	})
	return err
}

func (s *MongoEntryStore) All(ctx context.Context) ([]models.JournalEntry, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoEntryStore) ByUser(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	return s.find(ctx, bson.M{"userId": userID})
}

// ByTag matches entries whose tag array contains tag (exact, case-sensitive).
func (s *MongoEntryStore) ByTag(ctx context.Context, tag string) ([]models.JournalEntry, error) {
	return s.find(ctx, bson.M{"tags": tag})
}

func (s *MongoEntryStore) ByUserAndTag(ctx context.Context, userID, tag string) ([]models.JournalEntry, error) {
	return s.find(ctx, bson.M{"userId": userID, "tags": tag})
}

// Search matches entries where text occurs case-insensitively in title or
// body. The needle is regex-quoted so it always means a plain substring.
func (s *MongoEntryStore) Search(ctx context.Context, text string) ([]models.JournalEntry, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
	return s.find(ctx, bson.M{"$or": bson.A{
		bson.M{"title": pattern},
		bson.M{"body": pattern},
	}})
}

// ByID returns the entry with the given id. A malformed or unknown id is
// absence, not an error.
func (s *MongoEntryStore) ByID(ctx context.Context, id string) (models.JournalEntry, bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.JournalEntry{}, false, nil
	}
	var doc journalDocument
	err = s.entries.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.JournalEntry{}, false, nil
	}
	if err != nil {
		return models.JournalEntry{}, false, fmt.Errorf("find journal entry: %w", err)
	}
	return doc.model(), true, nil
}

// Insert persists entry under a fresh ObjectID and returns it with the
// assigned id. Any caller-supplied id is ignored.
func (s *MongoEntryStore) Insert(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	doc := newJournalDocument(entry)
	doc.ID = primitive.NewObjectID()
	if _, err := s.entries.InsertOne(ctx, doc); err != nil {
		return models.JournalEntry{}, fmt.Errorf("insert journal entry: %w", err)
	}
	return doc.model(), nil
}

// Replace overwrites the whole document identified by entry.ID.
func (s *MongoEntryStore) Replace(ctx context.Context, entry models.JournalEntry) error {
	oid, err := primitive.ObjectIDFromHex(entry.ID)
	if err != nil {
		return fmt.Errorf("invalid journal entry id %q: %w", entry.ID, err)
	}
	doc := newJournalDocument(entry)
	doc.ID = oid
	if _, err := s.entries.ReplaceOne(ctx, bson.M{"_id": oid}, doc); err != nil {
		return fmt.Errorf("replace journal entry: %w", err)
	}
	return nil
}

// Delete removes the entry with the given id, reporting whether anything
// was removed.
func (s *MongoEntryStore) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := s.entries.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete journal entry: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (s *MongoEntryStore) find(ctx context.Context, filter bson.M) ([]models.JournalEntry, error) {
	cursor, err := s.entries.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find journal entries: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []journalDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode journal entries: %w", err)
	}

	out := make([]models.JournalEntry, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.model())
	}
	return out, nil
}
