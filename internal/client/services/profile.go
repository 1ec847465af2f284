package services

import (
	"context"

	"github.com/dmitrijs2005/habitkeeper/internal/client/kvstore"
	"github.com/dmitrijs2005/habitkeeper/internal/client/models"
	"github.com/dmitrijs2005/habitkeeper/internal/logging"
)

// ProfileService reads and replaces the profile attached to an account.
type ProfileService interface {
	// GetProfile returns the saved profile, or models.DefaultProfile when
	// none was saved or the account does not exist. saved reports which.
	GetProfile(ctx context.Context, email string) (p models.Profile, saved bool, err error)
	// SaveProfile replaces the profile wholesale, creating the account
	// record if the session points at a missing one.
	SaveProfile(ctx context.Context, email string, p models.Profile) error
}

type profileService struct {
	users usersTable
	log   logging.Logger
}

func NewProfileService(store kvstore.Store, log logging.Logger) ProfileService {
	return &profileService{users: usersTable{store: store, log: log}, log: log}
}

func (s *profileService) GetProfile(ctx context.Context, email string) (models.Profile, bool, error) {
	users, err := s.users.load(ctx)
	if err != nil {
		return models.Profile{}, false, err
	}
	r, ok := users[email]
	if !ok || r.Profile == nil {
		return models.DefaultProfile(), false, nil
	}
	return *r.Profile, true, nil
}

func (s *profileService) SaveProfile(ctx context.Context, email string, p models.Profile) error {
	users, err := s.users.load(ctx)
	if err != nil {
		return err
	}

	r := s.users.upsert(ctx, users, email)
	r.Profile = &p

	if err := s.users.save(ctx, users); err != nil {
		return err
	}
	s.log.Debug(ctx, "profile saved", "email", email, "level", string(p.Level))
	return nil
}
