package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/microtweet/microtweet/internal/models"
	"github.com/microtweet/microtweet/internal/repository"
	"github.com/microtweet/microtweet/pkg/logger"
	"gorm.io/gorm"
)

type UserService struct {
	db         *repository.Database
	userRepo   *repository.UserRepository
	followRepo *repository.FollowRepository
	logger     *logger.Logger
}

func NewUserService(db *repository.Database, userRepo *repository.UserRepository, followRepo *repository.FollowRepository, logger *logger.Logger) *UserService {
	return &UserService{
		db:         db,
		userRepo:   userRepo,
		followRepo: followRepo,
		logger:     logger,
	}
}

func (s *UserService) GetByAPIKey(ctx context.Context, key string) (*models.User, error) {
	user, err := s.userRepo.GetByAPIKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user with api-key '%s' doesn't exist: %w", key, ErrNotFound)
	}
	return user, nil
}

// Profile renders the user together with the resolved follower and
// following sets.
func (s *UserService) Profile(ctx context.Context, id uint64) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user with id %d doesn't exist: %w", id, ErrNotFound)
	}

	followers, err := s.userRepo.GetFollowers(ctx, id)
	if err != nil {
		return nil, err
	}

	following, err := s.userRepo.GetFollowing(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Profile{
		ID:        user.ID,
		Name:      user.Name,
		Followers: shortUsers(followers),
		Following: shortUsers(following),
	}, nil
}

// Follow inserts the (follower, target) edge. A second attempt on the
// same pair is not idempotent: the unique key violation is reported as a
// constraint violation.
func (s *UserService) Follow(ctx context.Context, follower *models.User, targetID uint64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		target, err := users.GetByID(ctx, targetID)
		if err != nil {
			return err
		}
		if target == nil {
			return fmt.Errorf("user with id %d doesn't exist: %w", targetID, ErrNotFound)
		}

		follows := repository.NewFollowRepository(tx)
		if err := follows.Create(ctx, &models.Follow{
			FollowerID: follower.ID,
			FolloweeID: targetID,
		}); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("follow edge (%d, %d) already exists: %w",
					follower.ID, targetID, ErrConstraintViolation)
			}
			return fmt.Errorf("failed to create follow: %w", ErrWriteFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"follower_id": follower.ID,
		"followee_id": targetID,
	}).Info("Follow created")

	return nil
}

func (s *UserService) Unfollow(ctx context.Context, follower *models.User, targetID uint64) error {
	deleted, err := s.followRepo.Delete(ctx, follower.ID, targetID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("follow edge (%d, %d) doesn't exist: %w",
			follower.ID, targetID, ErrNotFound)
	}

	s.logger.WithFields(map[string]interface{}{
		"follower_id": follower.ID,
		"followee_id": targetID,
	}).Info("Follow removed")

	return nil
}
