package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sv6095/InnerEcho/internal/models"
)

func TestMemoryEntryStoreInsertAssignsID(t *testing.T) {
	s := NewMemoryEntryStore()

	created, err := s.Insert(context.Background(), models.JournalEntry{Title: "Day 1", UserID: "u1"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, found, err := s.ByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, created, got)
}

func TestMemoryEntryStoreFilters(t *testing.T) {
	s := NewMemoryEntryStore()
	ctx := context.Background()

	a, _ := s.Insert(ctx, models.JournalEntry{Title: "morning", UserID: "u1", Tags: []string{"mood"}})
	b, _ := s.Insert(ctx, models.JournalEntry{Title: "evening", UserID: "u1", Tags: []string{"sleep"}})
	c, _ := s.Insert(ctx, models.JournalEntry{Title: "noon", UserID: "u2", Tags: []string{"mood"}})

	byUser, err := s.ByUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []models.JournalEntry{a, b}, byUser)

	byTag, err := s.ByTag(ctx, "mood")
	require.NoError(t, err)
	require.Equal(t, []models.JournalEntry{a, c}, byTag)

	both, err := s.ByUserAndTag(ctx, "u1", "mood")
	require.NoError(t, err)
	require.Equal(t, []models.JournalEntry{a}, both)

	all, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestMemoryEntryStoreTagMatchIsExact(t *testing.T) {
	s := NewMemoryEntryStore()
	ctx := context.Background()

	s.Insert(ctx, models.JournalEntry{Tags: []string{"Mood"}})

	got, err := s.ByTag(ctx, "mood")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestMemoryEntryStoreSearchIsCaseInsensitive(t *testing.T) {
	s := NewMemoryEntryStore()
	ctx := context.Background()

	a, _ := s.Insert(ctx, models.JournalEntry{Title: "FOOBAR"})
	b, _ := s.Insert(ctx, models.JournalEntry{Body: "some food notes"})
	s.Insert(ctx, models.JournalEntry{Title: "unrelated"})

	got, err := s.Search(ctx, "foo")
	require.NoError(t, err)
	require.Equal(t, []models.JournalEntry{a, b}, got)
}

func TestMemoryEntryStoreDelete(t *testing.T) {
	s := NewMemoryEntryStore()
	ctx := context.Background()

	created, _ := s.Insert(ctx, models.JournalEntry{Title: "gone soon"})

	deleted, err := s.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	_, found, err := s.ByID(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, found)

	deleted, err = s.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestMemoryEntryStoreReplaceUnknownID(t *testing.T) {
	s := NewMemoryEntryStore()

	err := s.Replace(context.Background(), models.JournalEntry{ID: "nope"})
	require.Error(t, err)
}

func TestMemoryEntryStoreCopiesTags(t *testing.T) {
	s := NewMemoryEntryStore()
	ctx := context.Background()

	tags := []string{"mood"}
	created, _ := s.Insert(ctx, models.JournalEntry{Tags: tags})
	tags[0] = "mutated"

	got, _, err := s.ByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"mood"}, got.Tags)

	got.Tags[0] = "mutated again"
	again, _, _ := s.ByID(ctx, created.ID)
	require.Equal(t, []string{"mood"}, again.Tags)
}

func TestMemoryProfileStoreCRUD(t *testing.T) {
	s := NewMemoryProfileStore()
	ctx := context.Background()

	created, err := s.Insert(ctx, models.UserProfile{Name: "Test User", Email: "test@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	byEmail, found, err := s.ByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, created, byEmail)

	_, found, err = s.ByEmail(ctx, "other@example.com")
	require.NoError(t, err)
	require.False(t, found)

	replaced, err := s.Replace(ctx, models.UserProfile{ID: created.ID, Name: "Renamed", Email: created.Email})
	require.NoError(t, err)
	require.True(t, replaced)

	replaced, err = s.Replace(ctx, models.UserProfile{ID: "unknown"})
	require.NoError(t, err)
	require.False(t, replaced)

	require.NoError(t, s.Delete(ctx, created.ID))
	require.NoError(t, s.Delete(ctx, created.ID)) // idempotent

	all, err := s.All(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}
