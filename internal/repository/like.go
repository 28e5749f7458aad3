package repository

import (
	"context"
	"fmt"

	"github.com/microtweet/microtweet/internal/models"
	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Create inserts the edge as-is; a duplicate (user, tweet) pair surfaces
// as gorm.ErrDuplicatedKey for the caller to classify.
func (r *LikeRepository) Create(ctx context.Context, like *models.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

// Delete removes the (user, tweet) edge and reports whether a row
// actually matched.
func (r *LikeRepository) Delete(ctx context.Context, userID, tweetID uint64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Delete(&models.Like{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete like: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *LikeRepository) DeleteByTweet(ctx context.Context, tweetID uint64) error {
	if err := r.db.WithContext(ctx).
		Where("tweet_id = ?", tweetID).
		Delete(&models.Like{}).Error; err != nil {
		return fmt.Errorf("failed to delete likes by tweet: %w", err)
	}
	return nil
}
