package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/microtweet/microtweet/internal/models"
	"gorm.io/gorm"
)

type TweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) *TweetRepository {
	return &TweetRepository{db: db}
}

func (r *TweetRepository) Create(ctx context.Context, tweet *models.Tweet) error {
	if err := r.db.WithContext(ctx).Create(tweet).Error; err != nil {
		return fmt.Errorf("failed to create tweet: %w", err)
	}
	return nil
}

func (r *TweetRepository) GetByID(ctx context.Context, id uint64) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := r.db.WithContext(ctx).First(&tweet, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tweet: %w", err)
	}
	return &tweet, nil
}

// GetByIDAndAuthor looks a tweet up scoped to its author, so a tweet
// owned by someone else reads the same as one that does not exist.
func (r *TweetRepository) GetByIDAndAuthor(ctx context.Context, id, authorID uint64) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := r.db.WithContext(ctx).
		First(&tweet, "id = ? AND author_id = ?", id, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tweet by author: %w", err)
	}
	return &tweet, nil
}

// Timeline returns the tweets authored by userID plus the tweets of every
// user userID follows, in insertion order, with author, pictures and
// likers resolved.
func (r *TweetRepository) Timeline(ctx context.Context, userID uint64) ([]*models.Tweet, error) {
	var tweets []*models.Tweet
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Pictures", func(db *gorm.DB) *gorm.DB {
			return db.Order("pictures.id")
		}).
		Preload("Likes.User").
		Where("author_id = ? OR author_id IN (?)",
			userID,
			r.db.Model(&models.Follow{}).Select("followee_id").Where("follower_id = ?", userID),
		).
		Order("tweets.id").
		Find(&tweets).Error; err != nil {
		return nil, fmt.Errorf("failed to load timeline: %w", err)
	}
	return tweets, nil
}

func (r *TweetRepository) Delete(ctx context.Context, id uint64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Tweet{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete tweet: %w", err)
	}
	return nil
}
