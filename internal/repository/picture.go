package repository

import (
	"context"
	"fmt"

	"github.com/microtweet/microtweet/internal/models"
	"gorm.io/gorm"
)

type PictureRepository struct {
	db *gorm.DB
}

func NewPictureRepository(db *gorm.DB) *PictureRepository {
	return &PictureRepository{db: db}
}

func (r *PictureRepository) Create(ctx context.Context, picture *models.Picture) error {
	if err := r.db.WithContext(ctx).Create(picture).Error; err != nil {
		return fmt.Errorf("failed to create picture: %w", err)
	}
	return nil
}

// Attach points an unattached picture at tweetID and reports whether a
// row matched. Pictures already linked to a tweet do not match.
func (r *PictureRepository) Attach(ctx context.Context, pictureID, tweetID uint64) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Picture{}).
		Where("id = ? AND tweet_id IS NULL", pictureID).
		Update("tweet_id", tweetID)
	if result.Error != nil {
		return false, fmt.Errorf("failed to attach picture: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *PictureRepository) GetByTweet(ctx context.Context, tweetID uint64) ([]*models.Picture, error) {
	var pictures []*models.Picture
	if err := r.db.WithContext(ctx).
		Where("tweet_id = ?", tweetID).
		Order("id").
		Find(&pictures).Error; err != nil {
		return nil, fmt.Errorf("failed to get pictures by tweet: %w", err)
	}
	return pictures, nil
}

func (r *PictureRepository) DeleteByTweet(ctx context.Context, tweetID uint64) error {
	if err := r.db.WithContext(ctx).
		Where("tweet_id = ?", tweetID).
		Delete(&models.Picture{}).Error; err != nil {
		return fmt.Errorf("failed to delete pictures by tweet: %w", err)
	}
	return nil
}
