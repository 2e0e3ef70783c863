package services

import (
	"context"

	"github.com/sv6095/InnerEcho/internal/models"
)

// ProfileStore is the persistence surface ProfileService needs.
type ProfileStore interface {
	All(ctx context.Context) ([]models.UserProfile, error)
	ByID(ctx context.Context, id string) (models.UserProfile, bool, error)
	ByEmail(ctx context.Context, email string) (models.UserProfile, bool, error)
	Insert(ctx context.Context, p models.UserProfile) (models.UserProfile, error)
	Replace(ctx context.Context, p models.UserProfile) (bool, error)
	Delete(ctx context.Context, id string) error
}

// ProfileService applies the business rules for user profiles: save-as-upsert
// and the email/id lookups.
type ProfileService struct {
	store ProfileStore
}

func NewProfileService(store ProfileStore) *ProfileService {
	return &ProfileService{store: store}
}

// Save upserts a profile: an id already known to the store gets its record
// overwritten; anything else (no id, or an id the store has never seen)
// becomes a new record with a store-assigned id.
func (s *ProfileService) Save(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	if profile.ID != "" {
		replaced, err := s.store.Replace(ctx, profile)
		if err != nil {
			return models.UserProfile{}, err
		}
		if replaced {
			return profile, nil
		}
	}
	profile.ID = ""
	return s.store.Insert(ctx, profile)
}

func (s *ProfileService) All(ctx context.Context) ([]models.UserProfile, error) {
	return s.store.All(ctx)
}

func (s *ProfileService) ByID(ctx context.Context, id string) (models.UserProfile, bool, error) {
	return s.store.ByID(ctx, id)
}

// ByEmail is an exact-match lookup. Email uniqueness is not enforced; with
// duplicates any one of them may come back.
func (s *ProfileService) ByEmail(ctx context.Context, email string) (models.UserProfile, bool, error) {
	return s.store.ByEmail(ctx, email)
}

// Delete removes the profile with the given id. Absence is not an error, so
// callers cannot infer existence from the result.
func (s *ProfileService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// Current resolves a profile from a token that doubles as either an email or
// an id: email lookup first, id lookup on absence. Two sequential point
// lookups, not a joined query.
func (s *ProfileService) Current(ctx context.Context, identifier string) (models.UserProfile, bool, error) {
	profile, found, err := s.store.ByEmail(ctx, identifier)
	if err != nil || found {
		return profile, found, err
	}
	return s.store.ByID(ctx, identifier)
}
