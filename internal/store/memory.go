package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/sv6095/InnerEcho/internal/models"
)

// MemoryEntryStore is an in-memory EntryStore with uuid-assigned ids.
// Listings come back in insertion order.
type MemoryEntryStore struct {
	mu      sync.RWMutex
	entries map[string]models.JournalEntry
	order   []string
}

func NewMemoryEntryStore() *MemoryEntryStore {
	return &MemoryEntryStore{entries: make(map[string]models.JournalEntry)}
}

func (s *MemoryEntryStore) All(ctx context.Context) ([]models.JournalEntry, error) {
	return s.filter(func(models.JournalEntry) bool { return true })
}

func (s *MemoryEntryStore) ByUser(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	return s.filter(func(e models.JournalEntry) bool { return e.UserID == userID })
}

func (s *MemoryEntryStore) ByTag(ctx context.Context, tag string) ([]models.JournalEntry, error) {
	return s.filter(func(e models.JournalEntry) bool { return slices.Contains(e.Tags, tag) })
}

func (s *MemoryEntryStore) ByUserAndTag(ctx context.Context, userID, tag string) ([]models.JournalEntry, error) {
	return s.filter(func(e models.JournalEntry) bool {
		return e.UserID == userID && slices.Contains(e.Tags, tag)
	})
}

func (s *MemoryEntryStore) Search(ctx context.Context, text string) ([]models.JournalEntry, error) {
	needle := strings.ToLower(text)
	return s.filter(func(e models.JournalEntry) bool {
		return strings.Contains(strings.ToLower(e.Title), needle) ||
			strings.Contains(strings.ToLower(e.Body), needle)
	})
}

func (s *MemoryEntryStore) ByID(ctx context.Context, id string) (models.JournalEntry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[id]
	if !ok {
		return models.JournalEntry{}, false, nil
	}
	return cloneEntry(entry), true, nil
}

func (s *MemoryEntryStore) Insert(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = uuid.NewString()
	s.entries[entry.ID] = cloneEntry(entry)
	s.order = append(s.order, entry.ID)
	return entry, nil
}

func (s *MemoryEntryStore) Replace(ctx context.Context, entry models.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[entry.ID]; !ok {
		return fmt.Errorf("journal entry %q not found", entry.ID)
	}
	s.entries[entry.ID] = cloneEntry(entry)
	return nil
}

func (s *MemoryEntryStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return false, nil
	}
	delete(s.entries, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	return true, nil
}

func (s *MemoryEntryStore) filter(keep func(models.JournalEntry) bool) ([]models.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.JournalEntry, 0, len(s.order))
	for _, id := range s.order {
		if entry := s.entries[id]; keep(entry) {
			out = append(out, cloneEntry(entry))
		}
	}
	return out, nil
}

func cloneEntry(e models.JournalEntry) models.JournalEntry {
	e.Tags = slices.Clone(e.Tags)
	return e
}

// MemoryProfileStore is an in-memory ProfileStore with uuid-assigned ids.
type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]models.UserProfile
	order    []string
}

func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profiles: make(map[string]models.UserProfile)}
}

func (s *MemoryProfileStore) All(ctx context.Context) ([]models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.UserProfile, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.profiles[id])
	}
	return out, nil
}

func (s *MemoryProfileStore) ByID(ctx context.Context, id string) (models.UserProfile, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[id]
	return p, ok, nil
}

func (s *MemoryProfileStore) ByEmail(ctx context.Context, email string) (models.UserProfile, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if s.profiles[id].Email == email {
			return s.profiles[id], true, nil
		}
	}
	return models.UserProfile{}, false, nil
}

func (s *MemoryProfileStore) Insert(ctx context.Context, p models.UserProfile) (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	s.profiles[p.ID] = p
	s.order = append(s.order, p.ID)
	return p, nil
}

func (s *MemoryProfileStore) Replace(ctx context.Context, p models.UserProfile) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[p.ID]; !ok {
		return false, nil
	}
	s.profiles[p.ID] = p
	return true, nil
}

func (s *MemoryProfileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[id]; !ok {
		return nil
	}
	delete(s.profiles, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	return nil
}
