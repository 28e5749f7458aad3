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

type LikeService struct {
	db       *repository.Database
	likeRepo *repository.LikeRepository
	logger   *logger.Logger
}

func NewLikeService(db *repository.Database, likeRepo *repository.LikeRepository, logger *logger.Logger) *LikeService {
	return &LikeService{
		db:       db,
		likeRepo: likeRepo,
		logger:   logger,
	}
}

// Like inserts the (user, tweet) edge. There is no idempotent dedupe: a
// second like of the same tweet fails as a write error.
func (s *LikeService) Like(ctx context.Context, user *models.User, tweetID uint64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tweets := repository.NewTweetRepository(tx)
		tweet, err := tweets.GetByID(ctx, tweetID)
		if err != nil {
			return err
		}
		if tweet == nil {
			return fmt.Errorf("tweet with id %d doesn't exist: %w", tweetID, ErrNotFound)
		}

		likes := repository.NewLikeRepository(tx)
		if err := likes.Create(ctx, &models.Like{
			UserID:  user.ID,
			TweetID: tweetID,
		}); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("tweet %d already liked by user %d: %w",
					tweetID, user.ID, ErrWriteFailed)
			}
			return fmt.Errorf("failed to create like: %w", ErrWriteFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":  user.ID,
		"tweet_id": tweetID,
	}).Info("Like created")

	return nil
}

func (s *LikeService) Unlike(ctx context.Context, user *models.User, tweetID uint64) error {
	deleted, err := s.likeRepo.Delete(ctx, user.ID, tweetID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("like (%d, %d) doesn't exist: %w", user.ID, tweetID, ErrNotFound)
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":  user.ID,
		"tweet_id": tweetID,
	}).Info("Like removed")

	return nil
}
