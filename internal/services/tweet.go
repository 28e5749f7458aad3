package services

import (
	"context"
	"fmt"

	"github.com/microtweet/microtweet/internal/models"
	"github.com/microtweet/microtweet/internal/repository"
	"github.com/microtweet/microtweet/pkg/logger"
	"gorm.io/gorm"
)

type TweetService struct {
	db        *repository.Database
	tweetRepo *repository.TweetRepository
	logger    *logger.Logger
}

func NewTweetService(db *repository.Database, tweetRepo *repository.TweetRepository, logger *logger.Logger) *TweetService {
	return &TweetService{
		db:        db,
		tweetRepo: tweetRepo,
		logger:    logger,
	}
}

// Create inserts the tweet and links every referenced picture to it in
// one transaction. A media id that does not name an unattached picture
// rolls the whole operation back, tweet included.
func (s *TweetService) Create(ctx context.Context, author *models.User, content string, mediaIDs []uint64) (uint64, error) {
	var tweetID uint64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tweets := repository.NewTweetRepository(tx)
		tweet := &models.Tweet{
			Content:  content,
			AuthorID: author.ID,
		}
		if err := tweets.Create(ctx, tweet); err != nil {
			return fmt.Errorf("%s: %w", err, ErrWriteFailed)
		}

		pictures := repository.NewPictureRepository(tx)
		for _, mediaID := range mediaIDs {
			attached, err := pictures.Attach(ctx, mediaID, tweet.ID)
			if err != nil {
				return fmt.Errorf("%s: %w", err, ErrWriteFailed)
			}
			if !attached {
				return fmt.Errorf("picture with id %d doesn't exist: %w", mediaID, ErrNotFound)
			}
		}

		tweetID = tweet.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.WithFields(map[string]interface{}{
		"tweet_id":  tweetID,
		"author_id": author.ID,
	}).Info("Tweet created")

	return tweetID, nil
}

// Delete removes the tweet with its likes and pictures, but only when
// author owns it. A tweet owned by someone else reports not-found, same
// as one that does not exist.
func (s *TweetService) Delete(ctx context.Context, author *models.User, tweetID uint64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tweets := repository.NewTweetRepository(tx)
		tweet, err := tweets.GetByIDAndAuthor(ctx, tweetID, author.ID)
		if err != nil {
			return err
		}
		if tweet == nil {
			return fmt.Errorf("tweet with id %d doesn't exist: %w", tweetID, ErrNotFound)
		}

		if err := repository.NewLikeRepository(tx).DeleteByTweet(ctx, tweetID); err != nil {
			return fmt.Errorf("%s: %w", err, ErrWriteFailed)
		}
		if err := repository.NewPictureRepository(tx).DeleteByTweet(ctx, tweetID); err != nil {
			return fmt.Errorf("%s: %w", err, ErrWriteFailed)
		}
		if err := tweets.Delete(ctx, tweetID); err != nil {
			return fmt.Errorf("%s: %w", err, ErrWriteFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"tweet_id":  tweetID,
		"author_id": author.ID,
	}).Info("Tweet deleted")

	return nil
}

// Timeline composes the home timeline for user: own tweets plus the
// tweets of everyone the user follows.
func (s *TweetService) Timeline(ctx context.Context, user *models.User) ([]TweetView, error) {
	tweets, err := s.tweetRepo.Timeline(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	views := make([]TweetView, 0, len(tweets))
	for _, tweet := range tweets {
		attachments := make([]string, 0, len(tweet.Pictures))
		for _, picture := range tweet.Pictures {
			attachments = append(attachments, picture.FilePath)
		}

		likes := make([]ShortUser, 0, len(tweet.Likes))
		for _, like := range tweet.Likes {
			likes = append(likes, shortUser(&like.User))
		}

		views = append(views, TweetView{
			ID:          tweet.ID,
			Content:     tweet.Content,
			Author:      shortUser(&tweet.Author),
			Attachments: attachments,
			Likes:       likes,
		})
	}
	return views, nil
}
