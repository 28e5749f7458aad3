package services

import (
	"context"
	"fmt"
	"io"

	"github.com/microtweet/microtweet/internal/models"
	"github.com/microtweet/microtweet/internal/repository"
	"github.com/microtweet/microtweet/pkg/logger"
	"github.com/microtweet/microtweet/pkg/storage"
)

type MediaService struct {
	pictureRepo *repository.PictureRepository
	store       storage.Store
	logger      *logger.Logger
}

func NewMediaService(pictureRepo *repository.PictureRepository, store storage.Store, logger *logger.Logger) *MediaService {
	return &MediaService{
		pictureRepo: pictureRepo,
		store:       store,
		logger:      logger,
	}
}

// Upload stores the payload in the blob store under the uploader's
// namespace and records an unattached picture row pointing at it. The
// row is linked to a tweet later, at tweet creation.
func (s *MediaService) Upload(ctx context.Context, uploader *models.User, filename string, r io.Reader) (uint64, error) {
	path, err := s.store.Save(ctx, uploader.APIKey, filename, r)
	if err != nil {
		return 0, fmt.Errorf("failed to store media: %w", ErrWriteFailed)
	}

	picture := &models.Picture{FilePath: path}
	if err := s.pictureRepo.Create(ctx, picture); err != nil {
		s.logger.WithError(err).WithField("file_path", path).
			Warn("Picture row insert failed, blob left orphaned")
		return 0, fmt.Errorf("failed to record media: %w", ErrWriteFailed)
	}

	s.logger.WithFields(map[string]interface{}{
		"media_id":    picture.ID,
		"uploader_id": uploader.ID,
		"file_path":   path,
	}).Info("Media uploaded")

	return picture.ID, nil
}
