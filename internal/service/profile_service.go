package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kmazur/tweetvault/internal/models"
	"github.com/kmazur/tweetvault/internal/repository"
)

// ErrProfileNotFound is returned when no profile row matches the requested id.
var ErrProfileNotFound = errors.New("profile not found")

type ProfileService interface {
	ProfileInfo(ctx context.Context, id string) (*models.Profile, error)
	ListPosts(ctx context.Context, id string) ([]*models.Post, error)
}

type profileService struct {
	pr repository.ProfileRepository
	po repository.PostRepository
}

func NewProfileService(pr repository.ProfileRepository, po repository.PostRepository) ProfileService {
	return &profileService{pr: pr, po: po}
}

func (s *profileService) ProfileInfo(ctx context.Context, id string) (*models.Profile, error) {
	profile, err := s.pr.GetByID(ctx, id)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func (s *profileService) ListPosts(ctx context.Context, id string) ([]*models.Post, error) {
	profile, err := s.pr.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return s.po.GetByOwnerID(ctx, id)
}
