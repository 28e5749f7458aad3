package repository

import (
	"context"
	"fmt"

	"github.com/microtweet/microtweet/internal/models"
	"gorm.io/gorm"
)

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Create inserts the edge as-is. A duplicate pair surfaces as
// gorm.ErrDuplicatedKey for the caller to classify.
func (r *FollowRepository) Create(ctx context.Context, follow *models.Follow) error {
	return r.db.WithContext(ctx).Create(follow).Error
}

// Delete removes the (follower, followee) edge and reports whether a row
// actually matched.
func (r *FollowRepository) Delete(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete follow: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
