package services

import (
	"context"

	"github.com/sv6095/InnerEcho/internal/models"
)

// EntryStore is the persistence surface JournalService needs. Point lookups
// report absence as a boolean rather than an error.
type EntryStore interface {
	All(ctx context.Context) ([]models.JournalEntry, error)
	ByUser(ctx context.Context, userID string) ([]models.JournalEntry, error)
	ByTag(ctx context.Context, tag string) ([]models.JournalEntry, error)
	ByUserAndTag(ctx context.Context, userID, tag string) ([]models.JournalEntry, error)
	Search(ctx context.Context, text string) ([]models.JournalEntry, error)
	ByID(ctx context.Context, id string) (models.JournalEntry, bool, error)
	Insert(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error)
	Replace(ctx context.Context, entry models.JournalEntry) error
	Delete(ctx context.Context, id string) (bool, error)
}

// JournalService applies the business rules for journal entries: creation
// defaults, the update immutability contract, and the filtered lookups.
// Filter arguments are assumed non-empty; the handler layer treats empty
// query parameters as "filter absent" and never forwards them.
type JournalService struct {
	store EntryStore
}

func NewJournalService(store EntryStore) *JournalService {
	return &JournalService{store: store}
}

func (s *JournalService) All(ctx context.Context) ([]models.JournalEntry, error) {
	return s.store.All(ctx)
}

func (s *JournalService) ByUser(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	return s.store.ByUser(ctx, userID)
}

func (s *JournalService) ByTag(ctx context.Context, tag string) ([]models.JournalEntry, error) {
	return s.store.ByTag(ctx, tag)
}

// ByUserAndTag returns entries that match both filters (logical AND).
func (s *JournalService) ByUserAndTag(ctx context.Context, userID, tag string) ([]models.JournalEntry, error) {
	return s.store.ByUserAndTag(ctx, userID, tag)
}

// Search returns entries where text occurs case-insensitively in the title
// or the body.
func (s *JournalService) Search(ctx context.Context, text string) ([]models.JournalEntry, error) {
	return s.store.Search(ctx, text)
}

func (s *JournalService) ByID(ctx context.Context, id string) (models.JournalEntry, bool, error) {
	return s.store.ByID(ctx, id)
}

// Create persists a new entry. A zero date gets the current time; a
// caller-supplied date is preserved. The id is assigned by the store.
func (s *JournalService) Create(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	if entry.Date.IsZero() {
		entry.Date = models.Now()
	}
	return s.store.Insert(ctx, entry)
}

// Update merges patch onto the stored entry and persists the result. If no
// entry has the given id, found is false and nothing is written; there is
// no upsert.
func (s *JournalService) Update(ctx context.Context, id string, patch models.JournalEntry) (models.JournalEntry, bool, error) {
	existing, found, err := s.store.ByID(ctx, id)
	if err != nil || !found {
		return models.JournalEntry{}, false, err
	}
	merged := mergeEntry(existing, patch)
	if err := s.store.Replace(ctx, merged); err != nil {
		return models.JournalEntry{}, false, err
	}
	return merged, true, nil
}

// Delete removes the entry with the given id, reporting whether it existed.
// Deleting an absent entry is a no-op that returns false.
func (s *JournalService) Delete(ctx context.Context, id string) (bool, error) {
	return s.store.Delete(ctx, id)
}

// mergeEntry overwrites the mutable fields of existing with patch's values:
// title, body and tags. id, date and userId always come from the stored
// entry and are never changed by an update.
func mergeEntry(existing, patch models.JournalEntry) models.JournalEntry {
	existing.Title = patch.Title
	existing.Body = patch.Body
	existing.Tags = patch.Tags
	return existing
}
