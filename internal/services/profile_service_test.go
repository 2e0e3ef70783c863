package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sv6095/InnerEcho/internal/models"
	"github.com/sv6095/InnerEcho/internal/services"
	"github.com/sv6095/InnerEcho/internal/store"
)

func newProfileService() *services.ProfileService {
	return services.NewProfileService(store.NewMemoryProfileStore())
}

func TestSaveWithoutIDCreates(t *testing.T) {
	svc := newProfileService()

	saved, err := svc.Save(context.Background(), models.UserProfile{Name: "Test User", Email: "test@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	require.Equal(t, "Test User", saved.Name)
}

func TestSaveWithKnownIDOverwrites(t *testing.T) {
	svc := newProfileService()
	ctx := context.Background()

	saved, err := svc.Save(ctx, models.UserProfile{Name: "Before", Email: "a@example.com"})
	require.NoError(t, err)

	updated, err := svc.Save(ctx, models.UserProfile{ID: saved.ID, Name: "After", Email: "a@example.com"})
	require.NoError(t, err)
	require.Equal(t, saved.ID, updated.ID)

	got, found, err := svc.ByID(ctx, saved.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "After", got.Name)

	all, err := svc.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestSaveWithUnknownIDCreatesFreshRecord(t *testing.T) {
	svc := newProfileService()

	saved, err := svc.Save(context.Background(), models.UserProfile{ID: "never-seen", Name: "New"})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	require.NotEqual(t, "never-seen", saved.ID)
}

func TestByEmailAbsence(t *testing.T) {
	svc := newProfileService()

	_, found, err := svc.ByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	require.False(t, found)
}

func TestByEmailWithDuplicatesReturnsOne(t *testing.T) {
	svc := newProfileService()
	ctx := context.Background()

	first, err := svc.Save(ctx, models.UserProfile{Name: "First", Email: "shared@example.com"})
	require.NoError(t, err)
	second, err := svc.Save(ctx, models.UserProfile{Name: "Second", Email: "shared@example.com"})
	require.NoError(t, err)

	got, found, err := svc.ByEmail(ctx, "shared@example.com")
	require.NoError(t, err)
	require.True(t, found)
	require.Contains(t, []string{first.ID, second.ID}, got.ID)
}

func TestDeleteAbsentProfileIsNotAnError(t *testing.T) {
	svc := newProfileService()

	require.NoError(t, svc.Delete(context.Background(), "nonexistent"))
}

func TestCurrentPrefersEmailThenFallsBackToID(t *testing.T) {
	svc := newProfileService()
	ctx := context.Background()

	byEmail, err := svc.Save(ctx, models.UserProfile{Name: "Mail", Email: "me@example.com"})
	require.NoError(t, err)
	byID, err := svc.Save(ctx, models.UserProfile{Name: "ID", Email: "other@example.com"})
	require.NoError(t, err)

	got, found, err := svc.Current(ctx, "me@example.com")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, byEmail.ID, got.ID)

	got, found, err = svc.Current(ctx, byID.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, byID.ID, got.ID)

	_, found, err = svc.Current(ctx, "unknown")
	require.NoError(t, err)
	require.False(t, found)
}
